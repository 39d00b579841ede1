package domain

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	ErrUnknownAvailability = errors.New("unknown availability")
	ErrUnknownSortOption   = errors.New("unknown sort option")
	ErrInvalidPriceRange   = errors.New("invalid price range")
)

type Availability string

const (
	AvailabilityAll        Availability = "all"
	AvailabilityInStock    Availability = "in-stock"
	AvailabilityOutOfStock Availability = "out-of-stock"
)

func ParseAvailability(s string) (Availability, error) {
	switch a := Availability(s); a {
	case AvailabilityAll, AvailabilityInStock, AvailabilityOutOfStock:
		return a, nil
	case "":
		return AvailabilityAll, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAvailability, s)
}

// PriceRange bounds are inclusive.
type PriceRange struct {
	Min int64
	Max int64
}

func FullPriceRange() PriceRange {
	return PriceRange{Min: 0, Max: math.MaxInt64}
}

func (r PriceRange) Validate() error {
	if r.Min < 0 || r.Max < r.Min {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidPriceRange, r.Min, r.Max)
	}
	return nil
}

func (r PriceRange) Contains(price int64) bool {
	return price >= r.Min && price <= r.Max
}

// FilterState narrows the catalog. An empty list disables its dimension.
type FilterState struct {
	Availability Availability
	Brands       []string
	PriceRange   PriceRange
	ProductTypes []ProductType
	Needs        []ProductNeed
}

func NewFilterState() FilterState {
	return FilterState{
		Availability: AvailabilityAll,
		PriceRange:   FullPriceRange(),
	}
}

// ApplyFilter returns the products matching every active dimension,
// keeping their relative order. The input slice is left untouched.
func ApplyFilter(ps []Product, f FilterState) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func (f FilterState) matches(p Product) bool {
	switch f.Availability {
	case AvailabilityInStock:
		if !p.InStock {
			return false
		}
	case AvailabilityOutOfStock:
		if p.InStock {
			return false
		}
	}

	if !f.PriceRange.Contains(p.Price) {
		return false
	}

	if len(f.Brands) != 0 && !slices.Contains(f.Brands, p.Brand) {
		return false
	}

	if len(f.ProductTypes) != 0 &&
		!slices.Contains(f.ProductTypes, p.ProductType) {
		return false
	}

	if len(f.Needs) != 0 {
		need, ok := p.Need.Get()
		if !ok || !slices.Contains(f.Needs, need) {
			return false
		}
	}

	return true
}

type SortOption string

const (
	SortBestSellers  SortOption = "best-sellers"
	SortPriceAsc     SortOption = "price-asc"
	SortPriceDesc    SortOption = "price-desc"
	SortNewest       SortOption = "newest"
	SortHighestRated SortOption = "highest-rated"
)

var SortOptions = []SortOption{
	SortBestSellers, SortPriceAsc, SortPriceDesc, SortNewest, SortHighestRated,
}

func ParseSortOption(s string) (SortOption, error) {
	if s == "" {
		return SortBestSellers, nil
	}
	opt := SortOption(s)
	if _, ok := comparators[opt]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSortOption, s)
	}
	return opt, nil
}

// Best sellers keep catalog order: no sales data exists.
var comparators = map[SortOption]func(a, b Product) int{
	SortBestSellers: func(a, b Product) int { return 0 },
	SortPriceAsc: func(a, b Product) int {
		return cmp.Compare(a.Price, b.Price)
	},
	SortPriceDesc: func(a, b Product) int {
		return cmp.Compare(b.Price, a.Price)
	},
	SortNewest: func(a, b Product) int {
		return cmp.Compare(boolRank(b.IsNew), boolRank(a.IsNew))
	},
	SortHighestRated: func(a, b Product) int {
		ra, okA := a.Rating.Get()
		rb, okB := b.Rating.Get()
		switch {
		case okA && okB:
			return cmp.Compare(rb, ra)
		case okA:
			return -1
		case okB:
			return 1
		}
		return 0
	},
}

// SortProducts returns a stably sorted copy of ps.
func SortProducts(ps []Product, opt SortOption) []Product {
	out := slices.Clone(ps)
	cmpFn, ok := comparators[opt]
	if !ok {
		return out
	}
	slices.SortStableFunc(out, cmpFn)
	return out
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

type AvailabilityCounts struct {
	InStock    int
	OutOfStock int
}

func CountAvailability(ps []Product) (c AvailabilityCounts) {
	for _, p := range ps {
		if p.InStock {
			c.InStock++
		} else {
			c.OutOfStock++
		}
	}
	return c
}

// PriceBounds returns the cheapest and dearest prices, or the zero range
// for an empty list.
func PriceBounds(ps []Product) PriceRange {
	if len(ps) == 0 {
		return PriceRange{}
	}
	r := PriceRange{Min: ps[0].Price, Max: ps[0].Price}
	for _, p := range ps[1:] {
		r.Min = min(r.Min, p.Price)
		r.Max = max(r.Max, p.Price)
	}
	return r
}

// Brands lists distinct brands in first-seen order.
func Brands(ps []Product) []string {
	var brands []string
	for _, p := range ps {
		if !slices.Contains(brands, p.Brand) {
			brands = append(brands, p.Brand)
		}
	}
	return brands
}

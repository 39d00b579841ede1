package port

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/niksmo/storefront/internal/core/domain"
)

type ProductQuery struct {
	Filter domain.FilterState
	Sort   domain.SortOption
}

// ProductList is a filtered and sorted catalog page with the facets
// computed over the whole catalog.
type ProductList struct {
	Products    []domain.Product
	Counts      domain.AvailabilityCounts
	PriceBounds domain.PriceRange
	Brands      []string
}

type CartItem struct {
	ProductID string
	Quantity  int
	Lang      domain.Language
}

type CheckoutOrder struct {
	CartItem
	Customer domain.CustomerDetails
}

// Handoff is a composed message and the deep link carrying it.
type Handoff struct {
	Message string
	URL     string
}

// FieldErrors maps each invalid form field to a localized message.
type FieldErrors map[domain.Field]string

// ValidationError is returned when customer details are rejected.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	fields := slices.Sorted(maps.Keys(e.Fields))
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return fmt.Sprintf("invalid customer details: %s", strings.Join(names, ", "))
}

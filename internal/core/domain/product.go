package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnknownProductType = errors.New("unknown product type")
	ErrUnknownProductNeed = errors.New("unknown product need")
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidQuantity    = errors.New("invalid quantity")
)

// MaxQuantity bounds one order line.
const MaxQuantity = 1000

func ValidateQuantity(q int) error {
	if q < 1 || q > MaxQuantity {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidQuantity, q, MaxQuantity)
	}
	return nil
}

type ProductType string

const (
	TypeJacket    ProductType = "Veste"
	TypeSweater   ProductType = "Pull"
	TypeTShirt    ProductType = "T-Shirt"
	TypeTrousers  ProductType = "Pantalon"
	TypeAccessory ProductType = "Accessoire"
)

var ProductTypes = []ProductType{
	TypeJacket, TypeSweater, TypeTShirt, TypeTrousers, TypeAccessory,
}

func ParseProductType(s string) (ProductType, error) {
	for _, t := range ProductTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProductType, s)
}

type ProductNeed string

const (
	NeedWinter  ProductNeed = "Hiver"
	NeedDaily   ProductNeed = "Quotidien"
	NeedSport   ProductNeed = "Sport"
	NeedElegant ProductNeed = "Élégant"
)

var ProductNeeds = []ProductNeed{NeedWinter, NeedDaily, NeedSport, NeedElegant}

func ParseProductNeed(s string) (ProductNeed, error) {
	for _, n := range ProductNeeds {
		if string(n) == s {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProductNeed, s)
}

type (
	Product struct {
		ID                string
		Slug              string
		Name              LocalizedText
		Brand             string
		Price             int64
		OriginalPrice     Optional[int64]
		Image             string
		Images            []string
		Category          LocalizedText
		ProductType       ProductType
		Need              Optional[ProductNeed]
		InStock           bool
		IsPromo           bool
		IsNew             bool
		Rating            Optional[float64]
		Description       LocalizedText
		Benefits          []LocalizedText
		Ingredients       LocalizedText
		UsageInstructions LocalizedText
		DeliveryEstimate  LocalizedText
		ViewersCount      int
		CountdownEndDate  Optional[time.Time]
		AdditionalInfo    AdditionalInfo
	}

	AdditionalInfo struct {
		Shipping        LocalizedText
		Returns         LocalizedText
		Payment         LocalizedText
		ExclusiveOffers Optional[LocalizedText]
	}
)

// Discount returns the crossed-out price when it is above the current one.
func (p Product) Discount() (int64, bool) {
	orig, ok := p.OriginalPrice.Get()
	if !ok || orig <= p.Price {
		return 0, false
	}
	return orig, true
}

// DiscountPercent is the rounded-down reduction, zero without a discount.
func (p Product) DiscountPercent() int {
	orig, ok := p.Discount()
	if !ok {
		return 0
	}
	return int((orig - p.Price) * 100 / orig)
}

// CountdownRemaining reports the time left before the countdown end date.
// The countdown is display-only; an elapsed date yields zero.
func (p Product) CountdownRemaining(now time.Time) (time.Duration, bool) {
	end, ok := p.CountdownEndDate.Get()
	if !ok {
		return 0, false
	}
	return max(end.Sub(now), 0), true
}

// LocalizedTexts lists every localized field of the product keyed by
// a field path, used for completeness checks.
func (p Product) LocalizedTexts() map[string]LocalizedText {
	texts := map[string]LocalizedText{
		"name":                    p.Name,
		"category":                p.Category,
		"description":             p.Description,
		"ingredients":             p.Ingredients,
		"usageInstructions":       p.UsageInstructions,
		"deliveryEstimate":        p.DeliveryEstimate,
		"additionalInfo.shipping": p.AdditionalInfo.Shipping,
		"additionalInfo.returns":  p.AdditionalInfo.Returns,
		"additionalInfo.payment":  p.AdditionalInfo.Payment,
	}
	if offers, ok := p.AdditionalInfo.ExclusiveOffers.Get(); ok {
		texts["additionalInfo.exclusiveOffers"] = offers
	}
	for i, b := range p.Benefits {
		texts[fmt.Sprintf("benefits[%d]", i)] = b
	}
	return texts
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	c := p
	c.Images = append([]string(nil), p.Images...)
	c.Benefits = append([]LocalizedText(nil), p.Benefits...)
	return c
}

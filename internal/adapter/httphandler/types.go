package httphandler

import (
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/i18n"
	"github.com/niksmo/storefront/internal/core/port"
)

type (
	ProductCard struct {
		ID                 string   `json:"id"`
		Slug               string   `json:"slug"`
		Name               string   `json:"name"`
		Brand              string   `json:"brand"`
		Price              int64    `json:"price"`
		PriceLabel         string   `json:"priceLabel"`
		OriginalPrice      *int64   `json:"originalPrice,omitempty"`
		OriginalPriceLabel string   `json:"originalPriceLabel,omitempty"`
		DiscountPercent    int      `json:"discountPercent,omitempty"`
		Image              string   `json:"image"`
		Category           string   `json:"category"`
		ProductType        string   `json:"productType"`
		ProductTypeLabel   string   `json:"productTypeLabel"`
		Need               string   `json:"need,omitempty"`
		NeedLabel          string   `json:"needLabel,omitempty"`
		InStock            bool     `json:"inStock"`
		AvailabilityLabel  string   `json:"availabilityLabel"`
		IsPromo            bool     `json:"isPromo"`
		PromoBadge         string   `json:"promoBadge,omitempty"`
		IsNew              bool     `json:"isNew"`
		Rating             *float64 `json:"rating,omitempty"`
	}

	ProductDetail struct {
		ProductCard
		Images                    []string       `json:"images"`
		Description               string         `json:"description"`
		Benefits                  []string       `json:"benefits"`
		Ingredients               string         `json:"ingredients"`
		UsageInstructions         string         `json:"usageInstructions"`
		DeliveryEstimate          string         `json:"deliveryEstimate"`
		ViewersCount              int            `json:"viewersCount"`
		ViewersLabel              string         `json:"viewersLabel"`
		CountdownEndDate          *time.Time     `json:"countdownEndDate,omitempty"`
		CountdownRemainingSeconds *int64         `json:"countdownRemainingSeconds,omitempty"`
		AdditionalInfo            AdditionalInfo `json:"additionalInfo"`
	}

	AdditionalInfo struct {
		Shipping        string `json:"shipping"`
		Returns         string `json:"returns"`
		Payment         string `json:"payment"`
		ExclusiveOffers string `json:"exclusiveOffers,omitempty"`
	}
)

type (
	ProductListResponse struct {
		Presentation i18n.Presentation `json:"presentation"`
		Total        int               `json:"total"`
		CountLabel   string            `json:"countLabel"`
		Products     []ProductCard     `json:"products"`
		Availability []Facet           `json:"availability"`
		PriceBounds  PriceBounds       `json:"priceBounds"`
		Brands       []string          `json:"brands"`
		Sort         string            `json:"sort"`
		Sorts        []Facet           `json:"sorts"`
	}

	Facet struct {
		Value string `json:"value"`
		Label string `json:"label"`
	}

	PriceBounds struct {
		Min int64 `json:"min"`
		Max int64 `json:"max"`
	}

	ProductDetailResponse struct {
		Presentation i18n.Presentation `json:"presentation"`
		Product      ProductDetail     `json:"product"`
	}
)

type (
	Customer struct {
		Name         string `json:"name"`
		Phone        string `json:"phone"`
		Region       string `json:"region"`
		Commune      string `json:"commune"`
		DeliveryType string `json:"delivery_type"`
		Address      string `json:"address"`
	}

	CartLinkRequest struct {
		Quantity int    `json:"quantity"`
		Lang     string `json:"lang"`
	}

	CheckoutValidateRequest struct {
		Lang     string   `json:"lang"`
		Customer Customer `json:"customer"`
	}

	CheckoutValidateResponse struct {
		Valid  bool              `json:"valid"`
		Errors map[string]string `json:"errors"`
	}

	CheckoutRequest struct {
		ProductID string   `json:"product_id"`
		Quantity  int      `json:"quantity"`
		Lang      string   `json:"lang"`
		Customer  Customer `json:"customer"`
	}

	HandoffResponse struct {
		Message string `json:"message"`
		URL     string `json:"url"`
	}

	LanguageRequest struct {
		Language string `json:"language"`
	}

	RegionsResponse struct {
		Regions []string `json:"regions"`
	}
)

func (c Customer) toDomain() (domain.CustomerDetails, error) {
	delivery, err := domain.ParseDeliveryType(c.DeliveryType)
	if err != nil {
		return domain.CustomerDetails{}, err
	}
	return domain.CustomerDetails{
		Name:         c.Name,
		Phone:        c.Phone,
		Region:       c.Region,
		Commune:      c.Commune,
		DeliveryType: delivery,
		Address:      c.Address,
	}, nil
}

func toHandoffResponse(h port.Handoff) HandoffResponse {
	return HandoffResponse{Message: h.Message, URL: h.URL}
}

// A view renders domain values in one language.
type view struct {
	lang domain.Language
	d    i18n.Dictionary
	now  time.Time
}

func (v view) presentation() i18n.Presentation {
	return i18n.PresentationOf(v.lang)
}

func (v view) text(t domain.LocalizedText) string {
	return i18n.Resolve(t, v.lang)
}

func (v view) card(p domain.Product) ProductCard {
	c := ProductCard{
		ID:               p.ID,
		Slug:             p.Slug,
		Name:             v.text(p.Name),
		Brand:            p.Brand,
		Price:            p.Price,
		PriceLabel:       v.d.FormatPrice(p.Price),
		Image:            p.Image,
		Category:         v.text(p.Category),
		ProductType:      string(p.ProductType),
		ProductTypeLabel: v.d.ProductTypeLabel(p.ProductType),
		InStock:          p.InStock,
		IsPromo:          p.IsPromo,
		IsNew:            p.IsNew,
	}

	if orig, ok := p.Discount(); ok {
		c.OriginalPrice = &orig
		c.OriginalPriceLabel = v.d.FormatPrice(orig)
		c.DiscountPercent = p.DiscountPercent()
	}

	if need, ok := p.Need.Get(); ok {
		c.Need = string(need)
		c.NeedLabel = v.d.NeedLabel(need)
	}

	if p.InStock {
		c.AvailabilityLabel = v.d.Product.InStock
	} else {
		c.AvailabilityLabel = v.d.Product.OutOfStock
	}

	if p.IsPromo {
		c.PromoBadge = v.d.Product.PromoBadge
	}

	if rating, ok := p.Rating.Get(); ok {
		c.Rating = &rating
	}
	return c
}

func (v view) detail(p domain.Product) ProductDetail {
	d := ProductDetail{
		ProductCard:       v.card(p),
		Images:            append([]string(nil), p.Images...),
		Description:       v.text(p.Description),
		Benefits:          make([]string, len(p.Benefits)),
		Ingredients:       v.text(p.Ingredients),
		UsageInstructions: v.text(p.UsageInstructions),
		DeliveryEstimate:  v.text(p.DeliveryEstimate),
		ViewersCount:      p.ViewersCount,
		ViewersLabel:      v.d.Product.ViewersLabel(p.ViewersCount),
		AdditionalInfo: AdditionalInfo{
			Shipping: v.text(p.AdditionalInfo.Shipping),
			Returns:  v.text(p.AdditionalInfo.Returns),
			Payment:  v.text(p.AdditionalInfo.Payment),
		},
	}

	for i, b := range p.Benefits {
		d.Benefits[i] = v.text(b)
	}

	if offers, ok := p.AdditionalInfo.ExclusiveOffers.Get(); ok {
		d.AdditionalInfo.ExclusiveOffers = v.text(offers)
	}

	if end, ok := p.CountdownEndDate.Get(); ok {
		remaining, _ := p.CountdownRemaining(v.now)
		secs := int64(remaining / time.Second)
		d.CountdownEndDate = &end
		d.CountdownRemainingSeconds = &secs
	}
	return d
}

func (v view) list(l port.ProductList, sort domain.SortOption) ProductListResponse {
	resp := ProductListResponse{
		Presentation: v.presentation(),
		Total:        len(l.Products),
		CountLabel:   v.d.Controls.Count(len(l.Products)),
		Products:     make([]ProductCard, len(l.Products)),
		Availability: []Facet{
			{Value: string(domain.AvailabilityAll), Label: v.d.Filters.AvailabilityAll},
			{Value: string(domain.AvailabilityInStock), Label: v.d.Filters.InStock(l.Counts.InStock)},
			{Value: string(domain.AvailabilityOutOfStock), Label: v.d.Filters.OutOfStock(l.Counts.OutOfStock)},
		},
		PriceBounds: PriceBounds{Min: l.PriceBounds.Min, Max: l.PriceBounds.Max},
		Brands:      l.Brands,
		Sort:        string(sort),
		Sorts:       make([]Facet, len(domain.SortOptions)),
	}

	for i, p := range l.Products {
		resp.Products[i] = v.card(p)
	}
	for i, opt := range domain.SortOptions {
		resp.Sorts[i] = Facet{Value: string(opt), Label: v.d.Controls.Sorts[opt]}
	}
	return resp
}

// DictionaryResponse is the dictionary of one language plus its
// count-dependent labels as fill-in templates.
type DictionaryResponse struct {
	i18n.Dictionary
	Templates map[string]i18n.Template `json:"templates"`
}

package i18n

import (
	"strconv"
	"strings"

	"github.com/niksmo/storefront/internal/core/domain"
)

// A Dictionary holds every UI string of one language. Both languages are
// values of this type, so their key sets and parameters always agree.
type Dictionary struct {
	Navbar   NavbarTexts   `json:"navbar"`
	Filters  FilterTexts   `json:"shopFilters"`
	Controls ControlTexts  `json:"productControls"`
	Product  ProductTexts  `json:"product"`
	Checkout CheckoutTexts `json:"checkout"`
	Message  MessageTexts  `json:"message"`
	WhatsApp WhatsAppTexts `json:"whatsapp"`
}

type NavbarTexts struct {
	Announcement        string `json:"announcement"`
	Home                string `json:"home"`
	Services            string `json:"services"`
	LanguageToggleAria  string `json:"languageToggleAria"`
	LanguageToggleShort string `json:"languageToggleShort"`
}

type FilterTexts struct {
	Title             string                        `json:"title"`
	AvailabilityLabel string                        `json:"availabilityLabel"`
	AvailabilityAll   string                        `json:"availabilityAll"`
	InStock           func(count int) string        `json:"-"`
	OutOfStock        func(count int) string        `json:"-"`
	Price             string                        `json:"price"`
	Brand             string                        `json:"brand"`
	Category          string                        `json:"category"`
	Clear             string                        `json:"clear"`
	Usage             string                        `json:"usage"`
	Needs             map[domain.ProductNeed]string `json:"needs"`
}

type ControlTexts struct {
	Count     func(count int) string       `json:"-"`
	SortLabel string                       `json:"sortLabel"`
	Sorts     map[domain.SortOption]string `json:"sorts"`
}

type ProductTexts struct {
	PromoBadge   string                        `json:"promoBadge"`
	ViewersLabel func(count int) string        `json:"-"`
	InStock      string                        `json:"inStock"`
	OutOfStock   string                        `json:"outOfStock"`
	Quantity     string                        `json:"quantity"`
	AddToCart    string                        `json:"addToCart"`
	BuyNow       string                        `json:"buyNow"`
	ProductTypes map[domain.ProductType]string `json:"productTypes"`
	Needs        map[domain.ProductNeed]string `json:"needs"`
	Accordion    AccordionTexts                `json:"accordion"`
	EmptyState   string                        `json:"emptyState"`
}

type AccordionTexts struct {
	Info        string `json:"info"`
	Ingredients string `json:"ingredients"`
	Usage       string `json:"usage"`
	Benefits    string `json:"benefits"`
	Delivery    string `json:"delivery"`
	Returns     string `json:"returns"`
	Exclusive   string `json:"exclusive"`
	Payment     string `json:"payment"`
}

type CheckoutTexts struct {
	Title   string     `json:"title"`
	Summary string     `json:"summary"`
	Form    FormTexts  `json:"form"`
	Errors  ErrorTexts `json:"errors"`
	Recap   RecapTexts `json:"recap"`
	Success string     `json:"success"`
}

type FormTexts struct {
	Name     string              `json:"name"`
	Phone    string              `json:"phone"`
	Region   string              `json:"city"`
	Commune  string              `json:"commune"`
	Delivery string              `json:"delivery"`
	House    DeliveryOptionTexts `json:"house"`
	Office   DeliveryOptionTexts `json:"office"`
	Address  string              `json:"address"`
	Submit   string              `json:"submit"`
	Cancel   string              `json:"cancel"`
}

type DeliveryOptionTexts struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ErrorTexts struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	PhoneInvalid  string `json:"phoneInvalid"`
	Region        string `json:"city"`
	RegionUnknown string `json:"cityUnknown"`
	Commune       string `json:"commune"`
	Address       string `json:"address"`
}

type RecapTexts struct {
	Title    string `json:"title"`
	Product  string `json:"product"`
	Category string `json:"category"`
	Quantity string `json:"quantity"`
	Total    string `json:"total"`
}

// MessageTexts frame the messages sent through the WhatsApp handoff.
type MessageTexts struct {
	OrderGreeting string `json:"orderGreeting"`
	CartGreeting  string `json:"cartGreeting"`
	Closing       string `json:"closing"`
	Currency      string `json:"currency"`
}

type WhatsAppTexts struct {
	Label   string `json:"label"`
	Aria    string `json:"aria"`
	Message string `json:"message"`
}

// DeliveryTitle returns the label of the delivery option.
func (d Dictionary) DeliveryTitle(t domain.DeliveryType) string {
	if t == domain.DeliveryOffice {
		return d.Checkout.Form.Office.Title
	}
	return d.Checkout.Form.House.Title
}

// NeedLabel returns the product card label of the need, falling back to
// the raw value for an unknown need.
func (d Dictionary) NeedLabel(n domain.ProductNeed) string {
	if s, ok := d.Product.Needs[n]; ok {
		return s
	}
	return string(n)
}

func (d Dictionary) ProductTypeLabel(t domain.ProductType) string {
	if s, ok := d.Product.ProductTypes[t]; ok {
		return s
	}
	return string(t)
}

// ViolationText maps a validation code of a form field to its message.
func (d Dictionary) ViolationText(f domain.Field, v domain.Violation) string {
	e := d.Checkout.Errors
	switch v {
	case domain.ViolationPhoneInvalid:
		return e.PhoneInvalid
	case domain.ViolationRegionUnknown:
		return e.RegionUnknown
	}
	switch f {
	case domain.FieldName:
		return e.Name
	case domain.FieldPhone:
		return e.Phone
	case domain.FieldRegion:
		return e.Region
	case domain.FieldCommune:
		return e.Commune
	case domain.FieldAddress:
		return e.Address
	}
	return string(v)
}

// CountPlaceholder marks where the count goes in an exported Template.
const CountPlaceholder = "{count}"

// A Template is a count-dependent label in a form clients can fill in
// themselves. One applies to a count of exactly 1, Other to the rest.
type Template struct {
	One   string `json:"one"`
	Other string `json:"other"`
}

// Templates exports the count-dependent labels keyed by the JSON path
// they would have inside the dictionary.
func (d Dictionary) Templates() map[string]Template {
	return map[string]Template{
		"shopFilters.inStock":    templateOf(d.Filters.InStock),
		"shopFilters.outOfStock": templateOf(d.Filters.OutOfStock),
		"productControls.count":  templateOf(d.Controls.Count),
		"product.viewersLabel":   templateOf(d.Product.ViewersLabel),
	}
}

func templateOf(label func(count int) string) Template {
	const other = 2
	return Template{
		One:   placeholder(label(1), 1),
		Other: placeholder(label(other), other),
	}
}

func placeholder(rendered string, count int) string {
	return strings.Replace(rendered, strconv.Itoa(count), CountPlaceholder, 1)
}

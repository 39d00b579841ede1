package storage

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"gopkg.in/yaml.v3"
)

var _ port.CatalogReader = (*Catalog)(nil)

var ErrInvalidCatalog = errors.New("invalid catalog")

//go:embed catalog.yaml
var embeddedCatalog []byte

// Catalog is the immutable in-memory product list.
type Catalog struct {
	products []domain.Product
	byID     map[string]int
	bySlug   map[string]int
}

// LoadCatalog reads the catalog file at path, or the built-in catalog when
// path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	const op = "LoadCatalog"
	log := slog.With("op", op)

	data := embeddedCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		data = b
	}

	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("catalog loaded", "nProducts", len(c.products), "file", path)
	return c, nil
}

func ParseCatalog(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f catalogFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	ps := make([]domain.Product, 0, len(f.Products))
	var errs []error
	for i, r := range f.Products {
		p, err := r.toDomain()
		if err != nil {
			errs = append(errs, fmt.Errorf("products[%d] %q: %w", i, r.ID, err))
			continue
		}
		ps = append(ps, p)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	return NewCatalog(ps)
}

// NewCatalog checks identifiers are unique and every localized field is
// complete for all supported languages.
func NewCatalog(ps []domain.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]domain.Product, len(ps)),
		byID:     make(map[string]int, len(ps)),
		bySlug:   make(map[string]int, len(ps)),
	}

	var errs []error
	for i, p := range ps {
		if err := validateProduct(p); err != nil {
			errs = append(errs, fmt.Errorf("product %q: %w", p.ID, err))
		}
		if _, dup := c.byID[p.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate id %q", p.ID))
		}
		if _, dup := c.bySlug[p.Slug]; dup {
			errs = append(errs, fmt.Errorf("duplicate slug %q", p.Slug))
		}
		c.products[i] = p.Clone()
		c.byID[p.ID] = i
		c.bySlug[p.Slug] = i
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	return c, nil
}

func validateProduct(p domain.Product) error {
	var errs []error
	if strings.TrimSpace(p.ID) == "" {
		errs = append(errs, errors.New("empty id"))
	}
	if strings.TrimSpace(p.Slug) == "" {
		errs = append(errs, errors.New("empty slug"))
	}
	if p.Price < 0 {
		errs = append(errs, fmt.Errorf("negative price %d", p.Price))
	}
	if orig, ok := p.OriginalPrice.Get(); ok && orig < 0 {
		errs = append(errs, fmt.Errorf("negative original price %d", orig))
	}
	// NaN fails every comparison, so the range is checked positively
	if rating, ok := p.Rating.Get(); ok && !(rating >= 0 && rating <= 5) {
		errs = append(errs, fmt.Errorf("rating %v out of [0, 5]", rating))
	}
	if p.ViewersCount < 0 {
		errs = append(errs, fmt.Errorf("negative viewers count %d", p.ViewersCount))
	}
	for field, text := range p.LocalizedTexts() {
		if missing := text.Missing(); len(missing) != 0 {
			errs = append(errs, fmt.Errorf("%s: missing %v", field, missing))
		}
	}
	return errors.Join(errs...)
}

// GetAll returns copies of the products in catalog order.
func (c *Catalog) GetAll() []domain.Product {
	out := make([]domain.Product, len(c.products))
	for i, p := range c.products {
		out[i] = p.Clone()
	}
	return out
}

func (c *Catalog) GetByID(id string) (domain.Product, bool) {
	return c.lookup(c.byID, id)
}

func (c *Catalog) GetBySlug(slug string) (domain.Product, bool) {
	return c.lookup(c.bySlug, slug)
}

func (c *Catalog) lookup(idx map[string]int, key string) (domain.Product, bool) {
	i, ok := idx[key]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i].Clone(), true
}

type (
	catalogFile struct {
		Templates map[string]any  `yaml:"templates"`
		Products  []productRecord `yaml:"products"`
	}

	productRecord struct {
		ID                string            `yaml:"id"`
		Slug              string            `yaml:"slug"`
		Name              localizedRecord   `yaml:"name"`
		Brand             string            `yaml:"brand"`
		Price             int64             `yaml:"price"`
		OriginalPrice     *int64            `yaml:"original_price"`
		Image             string            `yaml:"image"`
		Images            []string          `yaml:"images"`
		Category          localizedRecord   `yaml:"category"`
		ProductType       string            `yaml:"product_type"`
		Need              *string           `yaml:"need"`
		InStock           bool              `yaml:"in_stock"`
		IsPromo           bool              `yaml:"is_promo"`
		IsNew             bool              `yaml:"is_new"`
		Rating            *float64          `yaml:"rating"`
		Description       localizedRecord   `yaml:"description"`
		Benefits          []localizedRecord `yaml:"benefits"`
		Ingredients       localizedRecord   `yaml:"ingredients"`
		UsageInstructions localizedRecord   `yaml:"usage_instructions"`
		DeliveryEstimate  localizedRecord   `yaml:"delivery_estimate"`
		ViewersCount      int               `yaml:"viewers_count"`
		CountdownEndDate  *string           `yaml:"countdown_end_date"`
		AdditionalInfo    additionalRecord  `yaml:"additional_info"`
	}

	additionalRecord struct {
		Shipping        localizedRecord  `yaml:"shipping"`
		Returns         localizedRecord  `yaml:"returns"`
		Payment         localizedRecord  `yaml:"payment"`
		ExclusiveOffers *localizedRecord `yaml:"exclusive_offers"`
	}

	localizedRecord map[string]string
)

func (r productRecord) toDomain() (domain.Product, error) {
	var errs []error
	text := func(field string, lr localizedRecord) domain.LocalizedText {
		t, err := lr.toDomain()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
		return t
	}

	p := domain.Product{
		ID:                r.ID,
		Slug:              r.Slug,
		Name:              text("name", r.Name),
		Brand:             r.Brand,
		Price:             r.Price,
		Image:             r.Image,
		Images:            r.Images,
		Category:          text("category", r.Category),
		InStock:           r.InStock,
		IsPromo:           r.IsPromo,
		IsNew:             r.IsNew,
		Description:       text("description", r.Description),
		Ingredients:       text("ingredients", r.Ingredients),
		UsageInstructions: text("usage_instructions", r.UsageInstructions),
		DeliveryEstimate:  text("delivery_estimate", r.DeliveryEstimate),
		ViewersCount:      r.ViewersCount,
		AdditionalInfo: domain.AdditionalInfo{
			Shipping: text("additional_info.shipping", r.AdditionalInfo.Shipping),
			Returns:  text("additional_info.returns", r.AdditionalInfo.Returns),
			Payment:  text("additional_info.payment", r.AdditionalInfo.Payment),
		},
	}

	for i, b := range r.Benefits {
		p.Benefits = append(p.Benefits, text(fmt.Sprintf("benefits[%d]", i), b))
	}

	if r.AdditionalInfo.ExclusiveOffers != nil {
		offers := text("additional_info.exclusive_offers", *r.AdditionalInfo.ExclusiveOffers)
		p.AdditionalInfo.ExclusiveOffers = domain.Some(offers)
	}

	pt, err := domain.ParseProductType(r.ProductType)
	if err != nil {
		errs = append(errs, err)
	}
	p.ProductType = pt

	if r.Need != nil {
		need, err := domain.ParseProductNeed(*r.Need)
		if err != nil {
			errs = append(errs, err)
		}
		p.Need = domain.Some(need)
	}

	if r.OriginalPrice != nil {
		p.OriginalPrice = domain.Some(*r.OriginalPrice)
	}

	if r.Rating != nil {
		p.Rating = domain.Some(*r.Rating)
	}

	if r.CountdownEndDate != nil {
		end, err := parseDate(*r.CountdownEndDate)
		if err != nil {
			errs = append(errs, fmt.Errorf("countdown_end_date: %w", err))
		}
		p.CountdownEndDate = domain.Some(end)
	}

	return p, errors.Join(errs...)
}

func (lr localizedRecord) toDomain() (domain.LocalizedText, error) {
	t := make(domain.LocalizedText, len(lr))
	for k, v := range lr {
		l, err := domain.ParseLanguage(k)
		if err != nil {
			return nil, err
		}
		t[l] = v
	}
	return t, nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func parseDate(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

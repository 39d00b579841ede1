package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/i18n"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.ProductLister = (*Service)(nil)
var _ port.Localizer = (*Service)(nil)
var _ port.LanguageSwitcher = (*Service)(nil)
var _ port.OrderComposer = (*Service)(nil)

type Service struct {
	catalog    port.CatalogReader
	translator i18n.Translator
	languages  *LanguageStore
	whatsApp   WhatsApp
	activity   port.ActivityPublisher
	now        func() time.Time
}

// New returns the storefront service. A nil activity publisher disables
// activity events.
func New(
	catalog port.CatalogReader,
	translator i18n.Translator,
	languages *LanguageStore,
	whatsApp WhatsApp,
	activity port.ActivityPublisher,
) Service {
	if activity == nil {
		activity = nopPublisher{}
	}
	return Service{
		catalog:    catalog,
		translator: translator,
		languages:  languages,
		whatsApp:   whatsApp,
		activity:   activity,
		now:        time.Now,
	}
}

func (s Service) ListProducts(
	ctx context.Context, q port.ProductQuery,
) (port.ProductList, error) {
	const op = "Service.ListProducts"

	if err := ctx.Err(); err != nil {
		return port.ProductList{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := q.Filter.PriceRange.Validate(); err != nil {
		return port.ProductList{}, fmt.Errorf("%s: %w", op, err)
	}

	all := s.catalog.GetAll()
	ps := domain.SortProducts(domain.ApplyFilter(all, q.Filter), q.Sort)

	return port.ProductList{
		Products:    ps,
		Counts:      domain.CountAvailability(all),
		PriceBounds: domain.PriceBounds(all),
		Brands:      domain.Brands(all),
	}, nil
}

func (s Service) ProductByID(
	ctx context.Context, id string, lang domain.Language,
) (domain.Product, error) {
	const op = "Service.ProductByID"

	p, ok := s.catalog.GetByID(id)
	if !ok {
		return domain.Product{}, fmt.Errorf("%s: %w: %q", op, domain.ErrProductNotFound, id)
	}
	s.publish(ctx, domain.ActivityProductViewed, p.ID, lang, 0)
	return p, nil
}

func (s Service) ProductBySlug(
	ctx context.Context, slug string, lang domain.Language,
) (domain.Product, error) {
	const op = "Service.ProductBySlug"

	p, ok := s.catalog.GetBySlug(slug)
	if !ok {
		return domain.Product{}, fmt.Errorf("%s: %w: %q", op, domain.ErrProductNotFound, slug)
	}
	s.publish(ctx, domain.ActivityProductViewed, p.ID, lang, 0)
	return p, nil
}

func (s Service) Dictionary(lang domain.Language) (i18n.Dictionary, error) {
	return s.translator.Dictionary(lang)
}

func (s Service) Regions() []string {
	return append([]string(nil), domain.Regions...)
}

func (s Service) CurrentLanguage() i18n.Presentation {
	return s.languages.Presentation()
}

func (s Service) SetLanguage(
	ctx context.Context, lang domain.Language,
) (i18n.Presentation, error) {
	return s.languages.Set(ctx, lang)
}

func (s Service) ToggleLanguage(ctx context.Context) (i18n.Presentation, error) {
	return s.languages.Toggle(ctx)
}

func (s Service) ValidateCheckout(
	lang domain.Language, c domain.CustomerDetails,
) (port.FieldErrors, error) {
	const op = "Service.ValidateCheckout"

	d, err := s.translator.Dictionary(lang)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return localize(d, c.Validate()), nil
}

// Checkout validates the customer details and composes the order
// handoff. Invalid details yield a *port.ValidationError.
func (s Service) Checkout(
	ctx context.Context, order port.CheckoutOrder,
) (port.Handoff, error) {
	const op = "Service.Checkout"

	d, p, err := s.prepare(order.CartItem)
	if err != nil {
		return port.Handoff{}, fmt.Errorf("%s: %w", op, err)
	}

	form := domain.NewCheckoutForm()
	fill(form, order.Customer)
	customer, err := form.Submit()
	if errors.Is(err, domain.ErrFormNotValid) {
		return port.Handoff{}, &port.ValidationError{
			Fields: localize(d, form.Violations()),
		}
	}
	if err != nil {
		return port.Handoff{}, fmt.Errorf("%s: %w", op, err)
	}

	msg := ComposeOrder(d, order.Lang, p, order.Quantity, customer)
	s.publish(ctx, domain.ActivityHandoffOpened, p.ID, order.Lang, order.Quantity)

	return port.Handoff{Message: msg, URL: s.whatsApp.URL(msg)}, nil
}

func (s Service) CartLink(
	ctx context.Context, item port.CartItem,
) (port.Handoff, error) {
	const op = "Service.CartLink"

	d, p, err := s.prepare(item)
	if err != nil {
		return port.Handoff{}, fmt.Errorf("%s: %w", op, err)
	}

	msg := ComposeCart(d, item.Lang, p, item.Quantity)
	s.publish(ctx, domain.ActivityHandoffOpened, p.ID, item.Lang, item.Quantity)

	return port.Handoff{Message: msg, URL: s.whatsApp.URL(msg)}, nil
}

// ContactLink is the generic enquiry link of the floating WhatsApp button.
func (s Service) ContactLink(lang domain.Language) (port.Handoff, error) {
	const op = "Service.ContactLink"

	d, err := s.translator.Dictionary(lang)
	if err != nil {
		return port.Handoff{}, fmt.Errorf("%s: %w", op, err)
	}
	msg := d.WhatsApp.Message
	return port.Handoff{Message: msg, URL: s.whatsApp.URL(msg)}, nil
}

func (s Service) prepare(
	item port.CartItem,
) (i18n.Dictionary, domain.Product, error) {
	d, err := s.translator.Dictionary(item.Lang)
	if err != nil {
		return i18n.Dictionary{}, domain.Product{}, err
	}

	if err := domain.ValidateQuantity(item.Quantity); err != nil {
		return i18n.Dictionary{}, domain.Product{}, err
	}

	p, ok := s.catalog.GetByID(item.ProductID)
	if !ok {
		return i18n.Dictionary{}, domain.Product{}, fmt.Errorf(
			"%w: %q", domain.ErrProductNotFound, item.ProductID,
		)
	}
	return d, p, nil
}

func (s Service) publish(
	ctx context.Context,
	kind domain.ActivityKind,
	productID string,
	lang domain.Language,
	quantity int,
) {
	s.activity.PublishActivity(ctx, domain.ActivityEvent{
		ID:         uuid.NewString(),
		Kind:       kind,
		ProductID:  productID,
		Language:   lang,
		Quantity:   quantity,
		OccurredAt: s.now().UTC(),
	})
}

func fill(form *domain.CheckoutForm, c domain.CustomerDetails) {
	const op = "service.fill"

	values := map[domain.Field]string{
		domain.FieldName:     c.Name,
		domain.FieldPhone:    c.Phone,
		domain.FieldRegion:   c.Region,
		domain.FieldCommune:  c.Commune,
		domain.FieldDelivery: string(c.DeliveryType),
		domain.FieldAddress:  c.Address,
	}
	for field, v := range values {
		if err := form.Edit(field, v); err != nil {
			slog.Warn("ignore form value", "op", op, "field", field, "err", err)
		}
	}
}

func localize(d i18n.Dictionary, vs domain.Violations) port.FieldErrors {
	errs := make(port.FieldErrors, len(vs))
	for f, v := range vs {
		errs[f] = d.ViolationText(f, v)
	}
	return errs
}

type nopPublisher struct{}

func (nopPublisher) PublishActivity(context.Context, domain.ActivityEvent) {}

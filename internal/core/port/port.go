package port

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/i18n"
)

type CatalogReader interface {
	GetAll() []domain.Product
	GetByID(id string) (domain.Product, bool)
	GetBySlug(slug string) (domain.Product, bool)
}

type PreferenceStore interface {
	GetPreference(ctx context.Context, key string) (string, bool, error)
	PutPreference(ctx context.Context, key, value string) error
}

// ActivityPublisher must not block the caller.
type ActivityPublisher interface {
	PublishActivity(context.Context, domain.ActivityEvent)
}

type ProductLister interface {
	ListProducts(context.Context, ProductQuery) (ProductList, error)
	ProductByID(ctx context.Context, id string, lang domain.Language) (domain.Product, error)
	ProductBySlug(ctx context.Context, slug string, lang domain.Language) (domain.Product, error)
}

type Localizer interface {
	Dictionary(domain.Language) (i18n.Dictionary, error)
	Regions() []string
}

type LanguageSwitcher interface {
	CurrentLanguage() i18n.Presentation
	SetLanguage(context.Context, domain.Language) (i18n.Presentation, error)
	ToggleLanguage(context.Context) (i18n.Presentation, error)
}

type OrderComposer interface {
	ValidateCheckout(domain.Language, domain.CustomerDetails) (FieldErrors, error)
	Checkout(context.Context, CheckoutOrder) (Handoff, error)
	CartLink(context.Context, CartItem) (Handoff, error)
	ContactLink(domain.Language) (Handoff, error)
}

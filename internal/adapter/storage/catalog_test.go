package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalog(t *testing.T) {
	c, err := storage.LoadCatalog("")
	require.NoError(t, err)

	all := c.GetAll()
	require.Len(t, all, 12)
	assert.Equal(t, "wf-1", all[0].ID)
	assert.Equal(t, "m-6", all[11].ID)

	t.Run("EveryLocalizedFieldResolves", func(t *testing.T) {
		for _, p := range all {
			for _, l := range domain.Languages {
				for field, text := range p.LocalizedTexts() {
					s, ok := text.Get(l)
					assert.True(t, ok, "%s %s %s", p.ID, field, l)
					assert.NotEmpty(t, s)
				}
			}
		}
	})

	t.Run("FlagshipProduct", func(t *testing.T) {
		p, ok := c.GetByID("wf-1")
		require.True(t, ok)
		assert.Equal(t, "Veste North Face Noire", p.Name[domain.LangFR])
		assert.Equal(t, int64(15000), p.Price)
		assert.Equal(t, domain.Some[int64](18000), p.OriginalPrice)
		assert.Equal(t, domain.TypeJacket, p.ProductType)
		assert.Equal(t, domain.Some(domain.NeedWinter), p.Need)
		assert.True(t, p.IsNew)
		assert.Equal(t, 45, p.ViewersCount)
		assert.True(t, p.AdditionalInfo.ExclusiveOffers.IsSome())
		assert.Len(t, p.Benefits, 4)
	})

	t.Run("EqualOriginalPriceIsNoDiscount", func(t *testing.T) {
		p, ok := c.GetBySlug("pull-gris")
		require.True(t, ok)
		_, discounted := p.Discount()
		assert.False(t, discounted)
	})

	t.Run("LookupMiss", func(t *testing.T) {
		_, ok := c.GetByID("missing")
		assert.False(t, ok)
		_, ok = c.GetBySlug("missing")
		assert.False(t, ok)
	})

	t.Run("ConsumersGetCopies", func(t *testing.T) {
		p, _ := c.GetByID("wf-1")
		p.Images[0] = "/tampered.png"
		p.Benefits[0] = nil

		again, _ := c.GetByID("wf-1")
		assert.Equal(t, "/winter/black north face.png", again.Images[0])
		assert.NotNil(t, again.Benefits[0])
	})
}

const minimalCatalog = `
products:
  - id: rose
    slug: rose
    name: {fr: Rose, ar: وردة}
    brand: Maison
    price: 1000
    image: /rose.png
    images: [/rose.png]
    category: {fr: Parfums, ar: عطور}
    product_type: Accessoire
    in_stock: false
    is_promo: false
    description: {fr: Un parfum, ar: عطر}
    ingredients: {fr: Rose, ar: ورد}
    usage_instructions: {fr: Vaporiser, ar: رش}
    delivery_estimate: {fr: 2 jours, ar: يومان}
    viewers_count: 3
    countdown_end_date: "2026-01-31T23:59:59"
    additional_info:
      shipping: {fr: Gratuit, ar: مجاني}
      returns: {fr: 7 jours, ar: 7 أيام}
      payment: {fr: Espèces, ar: نقداً}
`

func TestParseCatalog(t *testing.T) {
	t.Run("OptionalFieldsAbsent", func(t *testing.T) {
		c, err := storage.ParseCatalog([]byte(minimalCatalog))
		require.NoError(t, err)

		p, ok := c.GetByID("rose")
		require.True(t, ok)
		assert.False(t, p.Need.IsSome())
		assert.False(t, p.Rating.IsSome())
		assert.False(t, p.OriginalPrice.IsSome())
		assert.False(t, p.AdditionalInfo.ExclusiveOffers.IsSome())

		end, ok := p.CountdownEndDate.Get()
		require.True(t, ok)
		assert.Equal(t, 2026, end.Year())
	})

	t.Run("MissingTranslationFails", func(t *testing.T) {
		data := []byte(`
products:
  - id: rose
    slug: rose
    name: {fr: Rose}
    brand: Maison
    price: 1000
    category: {fr: Parfums, ar: عطور}
    product_type: Accessoire
    description: {fr: Un parfum, ar: عطر}
    ingredients: {fr: Rose, ar: ورد}
    usage_instructions: {fr: Vaporiser, ar: رش}
    delivery_estimate: {fr: 2 jours, ar: يومان}
    additional_info:
      shipping: {fr: Gratuit, ar: مجاني}
      returns: {fr: 7 jours, ar: 7 أيام}
      payment: {fr: Espèces, ar: نقداً}
`)
		_, err := storage.ParseCatalog(data)
		require.ErrorIs(t, err, storage.ErrInvalidCatalog)
		assert.Contains(t, err.Error(), "name: missing [ar]")
	})

	t.Run("UnknownEnumFails", func(t *testing.T) {
		data := []byte(`
products:
  - id: rose
    slug: rose
    product_type: Robe
    need: Plage
`)
		_, err := storage.ParseCatalog(data)
		require.ErrorIs(t, err, storage.ErrInvalidCatalog)
		assert.ErrorIs(t, err, domain.ErrUnknownProductType)
		assert.ErrorIs(t, err, domain.ErrUnknownProductNeed)
	})

	t.Run("UnknownLanguageKeyFails", func(t *testing.T) {
		data := []byte(`
products:
  - id: rose
    slug: rose
    name: {fr: Rose, en: Rose}
    product_type: Accessoire
`)
		_, err := storage.ParseCatalog(data)
		assert.ErrorIs(t, err, domain.ErrUnsupportedLanguage)
	})

	t.Run("OutOfRangeNumbersFail", func(t *testing.T) {
		tests := []struct {
			name  string
			extra string
			want  string
		}{
			{"NaNRating", "    rating: .nan\n", "rating NaN out of [0, 5]"},
			{"InfRating", "    rating: .inf\n", "rating +Inf out of [0, 5]"},
			{"RatingAboveFive", "    rating: 5.5\n", "rating 5.5 out of [0, 5]"},
			{"NegativeOriginalPrice", "    original_price: -5\n", "negative original price -5"},
			{"NegativeViewersCount", "    viewers_count: -1\n", "negative viewers count -1"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				data := minimalCatalog + tt.extra
				if strings.Contains(tt.extra, "viewers_count") {
					data = strings.Replace(minimalCatalog, "    viewers_count: 3\n", tt.extra, 1)
				}
				_, err := storage.ParseCatalog([]byte(data))
				require.ErrorIs(t, err, storage.ErrInvalidCatalog)
				assert.Contains(t, err.Error(), tt.want)
			})
		}
	})

	t.Run("UnknownFieldFails", func(t *testing.T) {
		_, err := storage.ParseCatalog([]byte("products:\n  - id: a\n    colour: red\n"))
		assert.ErrorIs(t, err, storage.ErrInvalidCatalog)
	})
}

func TestNewCatalogDuplicates(t *testing.T) {
	c, err := storage.ParseCatalog([]byte(minimalCatalog))
	require.NoError(t, err)
	p, _ := c.GetByID("rose")

	_, err = storage.NewCatalog([]domain.Product{p, p})
	require.ErrorIs(t, err, storage.ErrInvalidCatalog)
	assert.Contains(t, err.Error(), `duplicate id "rose"`)
	assert.Contains(t, err.Error(), `duplicate slug "rose"`)
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalCatalog), 0o600))

	c, err := storage.LoadCatalog(path)
	require.NoError(t, err)
	assert.Len(t, c.GetAll(), 1)

	_, err = storage.LoadCatalog(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

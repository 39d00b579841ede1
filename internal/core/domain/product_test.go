package domain_test

import (
	"testing"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductDiscount(t *testing.T) {
	p := newTestProduct("wf-1", 15000)

	_, ok := p.Discount()
	assert.False(t, ok)

	p.OriginalPrice = domain.Some[int64](15000)
	_, ok = p.Discount()
	assert.False(t, ok, "equal original price is not a discount")

	p.OriginalPrice = domain.Some[int64](18000)
	orig, ok := p.Discount()
	require.True(t, ok)
	assert.Equal(t, int64(18000), orig)
	assert.Equal(t, 16, p.DiscountPercent())
}

func TestProductCountdownRemaining(t *testing.T) {
	now := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)
	p := newTestProduct("wf-1", 15000)

	_, ok := p.CountdownRemaining(now)
	assert.False(t, ok)

	p.CountdownEndDate = domain.Some(now.Add(90 * time.Minute))
	left, ok := p.CountdownRemaining(now)
	require.True(t, ok)
	assert.Equal(t, 90*time.Minute, left)

	left, _ = p.CountdownRemaining(now.Add(3 * time.Hour))
	assert.Zero(t, left)
}

func TestParseEnums(t *testing.T) {
	for _, pt := range domain.ProductTypes {
		got, err := domain.ParseProductType(string(pt))
		require.NoError(t, err)
		assert.Equal(t, pt, got)
	}
	_, err := domain.ParseProductType("Robe")
	assert.ErrorIs(t, err, domain.ErrUnknownProductType)

	for _, n := range domain.ProductNeeds {
		got, err := domain.ParseProductNeed(string(n))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
	_, err = domain.ParseProductNeed("Plage")
	assert.ErrorIs(t, err, domain.ErrUnknownProductNeed)
}

func TestLanguage(t *testing.T) {
	l, err := domain.ParseLanguage(" AR ")
	require.NoError(t, err)
	assert.Equal(t, domain.LangAR, l)
	assert.Equal(t, "rtl", l.Dir())
	assert.Equal(t, domain.LangFR, l.Toggle())
	assert.Equal(t, "ltr", domain.LangFR.Dir())

	_, err = domain.ParseLanguage("en")
	assert.ErrorIs(t, err, domain.ErrUnsupportedLanguage)
}

func TestLocalizedTextMissing(t *testing.T) {
	text := domain.LocalizedText{domain.LangFR: "Veste", domain.LangAR: "  "}
	assert.Equal(t, []domain.Language{domain.LangAR}, text.Missing())

	_, ok := text.Get(domain.LangAR)
	assert.False(t, ok)
}

func TestProductClone(t *testing.T) {
	p := newTestProduct("wf-1", 15000)
	p.Images = []string{"/a.png"}
	c := p.Clone()
	c.Images[0] = "/b.png"
	assert.Equal(t, "/a.png", p.Images[0])
}

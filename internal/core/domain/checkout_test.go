package domain_test

import (
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() domain.CustomerDetails {
	return domain.CustomerDetails{
		Name:         "Amina Belkacem",
		Phone:        "0671389113",
		Region:       "Alger",
		Commune:      "Bab Ezzouar",
		DeliveryType: domain.DeliveryHouse,
		Address:      "12 rue des Frères Bouadou",
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"0671389113", true},
		{"067138911", false},
		{"+213671389113", true},
		{"06713891134", false},
		{"+213 671 38 91 13", true},
		{"0571 38 91 13", true},
		{"0471389113", false},
		{"213671389113", false},
	}
	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.valid, domain.IsValidPhone(tt.phone))
		})
	}
}

func TestCustomerDetailsValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.True(t, validDetails().Validate().Valid())
	})

	t.Run("AllEmptyReportsFiveErrors", func(t *testing.T) {
		vs := domain.CustomerDetails{}.Validate()
		require.Len(t, vs, 5)
		for _, f := range domain.ValidatedFields {
			assert.Equal(t, domain.ViolationRequired, vs[f], f)
		}
	})

	t.Run("WhitespaceOnlyIsRequired", func(t *testing.T) {
		d := validDetails()
		d.Name = "   "
		d.Address = "\t"
		vs := d.Validate()
		assert.Equal(t, domain.Violations{
			domain.FieldName:    domain.ViolationRequired,
			domain.FieldAddress: domain.ViolationRequired,
		}, vs)
	})

	t.Run("InvalidPhone", func(t *testing.T) {
		d := validDetails()
		d.Phone = "067138911"
		assert.Equal(t,
			domain.Violations{domain.FieldPhone: domain.ViolationPhoneInvalid},
			d.Validate(),
		)
	})

	t.Run("UnknownRegion", func(t *testing.T) {
		d := validDetails()
		d.Region = "Paris"
		assert.Equal(t,
			domain.Violations{domain.FieldRegion: domain.ViolationRegionUnknown},
			d.Validate(),
		)
	})
}

func TestRegions(t *testing.T) {
	assert.Len(t, domain.Regions, 58)
	assert.True(t, domain.IsKnownRegion("Béjaïa"))
	assert.False(t, domain.IsKnownRegion("bejaia"))
}

func TestCheckoutForm(t *testing.T) {
	fill := func(t *testing.T, f *domain.CheckoutForm, d domain.CustomerDetails) {
		t.Helper()
		require.NoError(t, f.Edit(domain.FieldName, d.Name))
		require.NoError(t, f.Edit(domain.FieldPhone, d.Phone))
		require.NoError(t, f.Edit(domain.FieldRegion, d.Region))
		require.NoError(t, f.Edit(domain.FieldCommune, d.Commune))
		require.NoError(t, f.Edit(domain.FieldDelivery, string(d.DeliveryType)))
		require.NoError(t, f.Edit(domain.FieldAddress, d.Address))
	}

	t.Run("StartsEmptyWithHouseDelivery", func(t *testing.T) {
		f := domain.NewCheckoutForm()
		assert.Equal(t, domain.FormEmpty, f.State())
		assert.Equal(t, domain.DeliveryHouse, f.Details().DeliveryType)
	})

	t.Run("SubmitInvalidKeepsInput", func(t *testing.T) {
		f := domain.NewCheckoutForm()
		require.NoError(t, f.Edit(domain.FieldName, "Amina"))
		assert.Equal(t, domain.FormEditing, f.State())

		_, err := f.Submit()
		require.ErrorIs(t, err, domain.ErrFormNotValid)
		assert.Equal(t, domain.FormInvalid, f.State())
		assert.Len(t, f.Violations(), 4)
		assert.Equal(t, "Amina", f.Details().Name)
	})

	t.Run("EditClearsOnlyThatFieldError", func(t *testing.T) {
		f := domain.NewCheckoutForm()
		f.Validate()
		require.Len(t, f.Violations(), 5)

		require.NoError(t, f.Edit(domain.FieldPhone, "1"))
		vs := f.Violations()
		assert.Len(t, vs, 4)
		assert.NotContains(t, vs, domain.FieldPhone)
		assert.Equal(t, domain.FormEditing, f.State())
	})

	t.Run("SubmitValidResetsForm", func(t *testing.T) {
		f := domain.NewCheckoutForm()
		want := validDetails()
		want.DeliveryType = domain.DeliveryOffice
		fill(t, f, want)

		assert.True(t, f.Validate().Valid())
		assert.Equal(t, domain.FormValidatedPending, f.State())

		got, err := f.Submit()
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, domain.FormSubmitted, f.State())
		assert.Equal(t, domain.CustomerDetails{DeliveryType: domain.DeliveryHouse}, f.Details())
	})

	t.Run("EditAfterSubmitStartsNewAttempt", func(t *testing.T) {
		f := domain.NewCheckoutForm()
		fill(t, f, validDetails())
		_, err := f.Submit()
		require.NoError(t, err)

		require.NoError(t, f.Edit(domain.FieldName, "Karim"))
		assert.Equal(t, domain.FormEditing, f.State())
		assert.Equal(t, "Karim", f.Details().Name)
		assert.Empty(t, f.Details().Phone)
	})

	t.Run("CancelDiscardsInput", func(t *testing.T) {
		f := domain.NewCheckoutForm()
		fill(t, f, validDetails())
		f.Cancel()
		assert.Equal(t, domain.FormCancelled, f.State())
		assert.Empty(t, f.Details().Name)
	})

	t.Run("UnknownDeliveryType", func(t *testing.T) {
		f := domain.NewCheckoutForm()
		err := f.Edit(domain.FieldDelivery, "drone")
		assert.ErrorIs(t, err, domain.ErrUnknownDeliveryType)
	})

	t.Run("UnknownField", func(t *testing.T) {
		f := domain.NewCheckoutForm()
		err := f.Edit(domain.Field("email"), "a@b.c")
		assert.ErrorIs(t, err, domain.ErrUnknownField)
	})
}

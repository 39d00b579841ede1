package service_test

import (
	"strings"
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/i18n"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
)

func rose() domain.Product {
	return domain.Product{
		ID:       "rose",
		Slug:     "rose",
		Name:     domain.LocalizedText{domain.LangFR: "Rose", domain.LangAR: "وردة"},
		Category: domain.LocalizedText{domain.LangFR: "Parfums", domain.LangAR: "عطور"},
		Brand:    "Maison",
		Price:    1000,
		InStock:  true,
	}
}

func customer() domain.CustomerDetails {
	return domain.CustomerDetails{
		Name:         "Amina Belkacem",
		Phone:        "0671389113",
		Region:       "Alger",
		Commune:      "Bab Ezzouar",
		DeliveryType: domain.DeliveryOffice,
		Address:      "12 rue Didouche Mourad",
	}
}

func TestComposeOrder(t *testing.T) {
	t.Run("FrenchWithoutNeed", func(t *testing.T) {
		msg := service.ComposeOrder(i18n.French(), domain.LangFR, rose(), 2, customer())

		want := strings.Join([]string{
			"Bonjour ! Je souhaite acheter maintenant :",
			"",
			"Récapitulatif",
			"------------------------------",
			"Produit: Rose",
			"Quantité: 2",
			"Total: 2 000 DA",
			"Catégorie: Parfums",
			"",
			"Informations de Commande",
			"------------------------------",
			"Nom complet: Amina Belkacem",
			"Numéro de téléphone: 0671389113",
			"Wilaya: Alger",
			"Baladia (Commune): Bab Ezzouar",
			"",
			"Type de livraison",
			"------------------------------",
			"Type de livraison: Au bureau",
			"Adresse complète: 12 rue Didouche Mourad",
			"",
			"Merci !",
		}, "\n")
		assert.Equal(t, want, msg)
		assert.NotContains(t, msg, "Usage:")
	})

	t.Run("NeedLineWhenPresent", func(t *testing.T) {
		p := rose()
		p.Need = domain.Some(domain.NeedWinter)
		msg := service.ComposeOrder(i18n.French(), domain.LangFR, p, 1, customer())
		assert.Contains(t, msg, "Catégorie: Parfums\nUsage: Hiver\n\n")
	})

	t.Run("Arabic", func(t *testing.T) {
		p := rose()
		p.Need = domain.Some(domain.NeedSport)
		c := customer()
		c.DeliveryType = domain.DeliveryHouse
		msg := service.ComposeOrder(i18n.Arabic(), domain.LangAR, p, 3, c)

		assert.True(t, strings.HasPrefix(msg, "مرحباً! أود الشراء الآن:\n\nملخص الطلب\n"))
		assert.Contains(t, msg, "المنتج: وردة")
		assert.Contains(t, msg, "الإجمالي: 3 000 DA")
		assert.Contains(t, msg, "الاستعمال: رياضي")
		assert.Contains(t, msg, "طريقة التوصيل: لمنزلك")
		assert.True(t, strings.HasSuffix(msg, "\n\nشكراً لكم!"))
	})

	t.Run("CustomerValuesTrimmed", func(t *testing.T) {
		c := customer()
		c.Name = "  Amina Belkacem\t"
		c.Address = "\n12 rue Didouche Mourad  "
		msg := service.ComposeOrder(i18n.French(), domain.LangFR, rose(), 1, c)
		assert.Contains(t, msg, "Nom complet: Amina Belkacem\n")
		assert.True(t, strings.HasSuffix(msg, "Adresse complète: 12 rue Didouche Mourad\n\nMerci !"))
	})

	t.Run("Deterministic", func(t *testing.T) {
		a := service.ComposeOrder(i18n.French(), domain.LangFR, rose(), 2, customer())
		b := service.ComposeOrder(i18n.French(), domain.LangFR, rose(), 2, customer())
		assert.Equal(t, a, b)
	})
}

func TestComposeCart(t *testing.T) {
	p := rose()
	p.Price = 15000
	p.Need = domain.Some(domain.NeedDaily)

	msg := service.ComposeCart(i18n.French(), domain.LangFR, p, 3)
	want := "Bonjour ! Je souhaite ajouter au panier :\n\n" +
		"Produit: Rose\nQuantité: 3\nTotal: 45 000 DA\nCatégorie: Parfums\nUsage: Quotidien" +
		"\n\nMerci !"
	assert.Equal(t, want, msg)

	ar := service.ComposeCart(i18n.Arabic(), domain.LangAR, p, 1)
	assert.True(t, strings.HasPrefix(ar, "مرحباً! أود إضافة المنتج التالي إلى السلة:\n\n"))
}

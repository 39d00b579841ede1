package i18n

import (
	"fmt"

	"github.com/niksmo/storefront/internal/core/domain"
)

func French() Dictionary {
	return Dictionary{
		Navbar: NavbarTexts{
			Announcement:        "Livraison 58 wilayas · Paiement à la livraison",
			Home:                "Boutique",
			Services:            "Services",
			LanguageToggleAria:  "Basculer entre le français et l’arabe",
			LanguageToggleShort: "AR",
		},
		Filters: FilterTexts{
			Title:             "Filtres",
			AvailabilityLabel: "Disponibilité",
			AvailabilityAll:   "Tous",
			InStock: func(count int) string {
				return fmt.Sprintf("En stock (%d)", count)
			},
			OutOfStock: func(count int) string {
				return fmt.Sprintf("Épuisé (%d)", count)
			},
			Price:    "Prix",
			Brand:    "Marque",
			Category: "Catégorie",
			Clear:    "Effacer",
			Usage:    "Usage",
			Needs: map[domain.ProductNeed]string{
				domain.NeedWinter:  "Pour l’hiver",
				domain.NeedDaily:   "Usage quotidien",
				domain.NeedSport:   "Sport & Activités",
				domain.NeedElegant: "Style élégant",
			},
		},
		Controls: ControlTexts{
			Count: func(count int) string {
				if count == 1 {
					return fmt.Sprintf("%d Produit", count)
				}
				return fmt.Sprintf("%d Produits", count)
			},
			SortLabel: "Trier par",
			Sorts: map[domain.SortOption]string{
				domain.SortBestSellers:  "Meilleures ventes",
				domain.SortPriceAsc:     "Prix croissant",
				domain.SortPriceDesc:    "Prix décroissant",
				domain.SortNewest:       "Nouveautés",
				domain.SortHighestRated: "Mieux notés",
			},
		},
		Product: ProductTexts{
			PromoBadge: "PROMO",
			ViewersLabel: func(count int) string {
				return fmt.Sprintf("%d personnes regardent cet article.", count)
			},
			InStock:    "✓ En stock",
			OutOfStock: "En rupture de stock",
			Quantity:   "Quantité",
			AddToCart:  "AJOUTER AU PANIER",
			BuyNow:     "ACHETER MAINTENANT",
			ProductTypes: map[domain.ProductType]string{
				domain.TypeJacket:    "Veste",
				domain.TypeSweater:   "Pull",
				domain.TypeTShirt:    "T-Shirt",
				domain.TypeTrousers:  "Pantalon",
				domain.TypeAccessory: "Accessoire",
			},
			Needs: map[domain.ProductNeed]string{
				domain.NeedWinter:  "Hiver",
				domain.NeedDaily:   "Quotidien",
				domain.NeedSport:   "Sport",
				domain.NeedElegant: "Élégant",
			},
			Accordion: AccordionTexts{
				Info:        "Informations supplémentaires",
				Ingredients: "Ingrédients",
				Usage:       "Conseils d’utilisation",
				Benefits:    "Bénéfices",
				Delivery:    "Livraison",
				Returns:     "Retours",
				Exclusive:   "Offres Exclusives",
				Payment:     "Paiements Sécurisés",
			},
			EmptyState: "Aucun produit ne correspond à vos critères de recherche.",
		},
		Checkout: CheckoutTexts{
			Title:   "Informations de Commande",
			Summary: "Résumé de la commande",
			Form: FormTexts{
				Name:     "Nom complet",
				Phone:    "Numéro de téléphone",
				Region:   "Wilaya",
				Commune:  "Baladia (Commune)",
				Delivery: "Type de livraison",
				House: DeliveryOptionTexts{
					Title:       "À domicile",
					Description: "Livraison à votre adresse",
				},
				Office: DeliveryOptionTexts{
					Title:       "Au bureau",
					Description: "Livraison au lieu de travail",
				},
				Address: "Adresse complète",
				Submit:  "Confirmer la commande",
				Cancel:  "Annuler",
			},
			Errors: ErrorTexts{
				Name:          "Le nom est requis",
				Phone:         "Le téléphone est requis",
				PhoneInvalid:  "Numéro de téléphone invalide",
				Region:        "La wilaya est requise",
				RegionUnknown: "Wilaya inconnue",
				Commune:       "La baladia est requise",
				Address:       "L’adresse est requise",
			},
			Recap: RecapTexts{
				Title:    "Récapitulatif",
				Product:  "Produit",
				Category: "Catégorie",
				Quantity: "Quantité",
				Total:    "Total",
			},
			Success: "Votre demande a été envoyée avec succès !",
		},
		Message: MessageTexts{
			OrderGreeting: "Bonjour ! Je souhaite acheter maintenant :",
			CartGreeting:  "Bonjour ! Je souhaite ajouter au panier :",
			Closing:       "Merci !",
			Currency:      "DA",
		},
		WhatsApp: WhatsAppTexts{
			Label:   "WhatsApp",
			Aria:    "Discuter sur WhatsApp",
			Message: "Bonjour ! Je suis intéressé(e) par vos produits.",
		},
	}
}

package i18n

import (
	"fmt"

	"github.com/niksmo/storefront/internal/core/domain"
)

func Arabic() Dictionary {
	return Dictionary{
		Navbar: NavbarTexts{
			Announcement:        "توصيل إلى 58 ولاية · الدفع عند الاستلام",
			Home:                "المتجر",
			Services:            "الخدمات",
			LanguageToggleAria:  "التبديل بين الفرنسية والعربية",
			LanguageToggleShort: "FR",
		},
		Filters: FilterTexts{
			Title:             "الفلاتر",
			AvailabilityLabel: "التوفر",
			AvailabilityAll:   "الكل",
			InStock: func(count int) string {
				return fmt.Sprintf("متوفر (%d)", count)
			},
			OutOfStock: func(count int) string {
				return fmt.Sprintf("غير متوفر (%d)", count)
			},
			Price:    "السعر",
			Brand:    "العلامة",
			Category: "الفئة",
			Clear:    "مسح الاختيار",
			Usage:    "الاستعمال",
			Needs: map[domain.ProductNeed]string{
				domain.NeedWinter:  "للشتاء",
				domain.NeedDaily:   "لاستخدام يومي",
				domain.NeedSport:   "للرياضة والنشاط",
				domain.NeedElegant: "للمناسبات الأنيقة",
			},
		},
		Controls: ControlTexts{
			Count: func(count int) string {
				if count == 1 {
					return fmt.Sprintf("%d منتج", count)
				}
				return fmt.Sprintf("%d منتجات", count)
			},
			SortLabel: "ترتيب حسب",
			Sorts: map[domain.SortOption]string{
				domain.SortBestSellers:  "الأكثر مبيعاً",
				domain.SortPriceAsc:     "السعر تصاعدي",
				domain.SortPriceDesc:    "السعر تنازلي",
				domain.SortNewest:       "الأحدث",
				domain.SortHighestRated: "الأعلى تقييماً",
			},
		},
		Product: ProductTexts{
			PromoBadge: "عرض",
			ViewersLabel: func(count int) string {
				return fmt.Sprintf("%d شخصاً يشاهدون هذا المنتج.", count)
			},
			InStock:    "✓ متوفر",
			OutOfStock: "غير متوفر حالياً",
			Quantity:   "الكمية",
			AddToCart:  "أضف إلى السلة",
			BuyNow:     "اطلب الآن",
			ProductTypes: map[domain.ProductType]string{
				domain.TypeJacket:    "سترة",
				domain.TypeSweater:   "كنزة",
				domain.TypeTShirt:    "قميص خفيف",
				domain.TypeTrousers:  "بنطال",
				domain.TypeAccessory: "إكسسوار",
			},
			Needs: map[domain.ProductNeed]string{
				domain.NeedWinter:  "شتوي",
				domain.NeedDaily:   "يومي",
				domain.NeedSport:   "رياضي",
				domain.NeedElegant: "أنيق",
			},
			Accordion: AccordionTexts{
				Info:        "معلومات إضافية",
				Ingredients: "المكوّنات",
				Usage:       "طريقة الاستخدام",
				Benefits:    "الفوائد",
				Delivery:    "التوصيل",
				Returns:     "الاسترجاع",
				Exclusive:   "عروض حصرية",
				Payment:     "دفعات آمنة",
			},
			EmptyState: "لا يوجد أي منتج مطابق لمعايير البحث.",
		},
		Checkout: CheckoutTexts{
			Title:   "معلومات الطلب",
			Summary: "ملخص الطلب",
			Form: FormTexts{
				Name:     "الاسم الكامل",
				Phone:    "رقم الهاتف",
				Region:   "الولاية",
				Commune:  "البلدية",
				Delivery: "طريقة التوصيل",
				House: DeliveryOptionTexts{
					Title:       "لمنزلك",
					Description: "توصيل مباشرة إلى عنوانك",
				},
				Office: DeliveryOptionTexts{
					Title:       "لمكان العمل",
					Description: "توصيل إلى مقر العمل",
				},
				Address: "العنوان الكامل",
				Submit:  "تأكيد الطلب",
				Cancel:  "إلغاء",
			},
			Errors: ErrorTexts{
				Name:          "الاسم مطلوب",
				Phone:         "رقم الهاتف مطلوب",
				PhoneInvalid:  "رقم الهاتف غير صحيح",
				Region:        "الولاية مطلوبة",
				RegionUnknown: "الولاية غير معروفة",
				Commune:       "البلدية مطلوبة",
				Address:       "العنوان مطلوب",
			},
			Recap: RecapTexts{
				Title:    "ملخص الطلب",
				Product:  "المنتج",
				Category: "الفئة",
				Quantity: "الكمية",
				Total:    "الإجمالي",
			},
			Success: "تم إرسال طلبك بنجاح!",
		},
		Message: MessageTexts{
			OrderGreeting: "مرحباً! أود الشراء الآن:",
			CartGreeting:  "مرحباً! أود إضافة المنتج التالي إلى السلة:",
			Closing:       "شكراً لكم!",
			Currency:      "DA",
		},
		WhatsApp: WhatsAppTexts{
			Label:   "واتساب",
			Aria:    "التواصل عبر واتساب",
			Message: "مرحباً! أنا مهتم بمنتجاتكم.",
		},
	}
}

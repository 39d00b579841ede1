package httphandler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET v1/products?lang=&availability=&brand=&type=&need=&min_price=&max_price=&sort= (200 OK, 400 Bad request)
// GET v1/products/{id}, GET v1/products/slug/{slug} (200 OK, 404 Not found)
// POST v1/products/{id}/cart-link JSON {"quantity" int, "lang" string} (200 OK, 400 Bad request, 404 Not found)

type ProductsHandler struct {
	products  port.ProductLister
	localizer port.Localizer
	languages port.LanguageSwitcher
	orders    port.OrderComposer
	now       func() time.Time
}

func RegisterProducts(
	mux *http.ServeMux,
	products port.ProductLister,
	localizer port.Localizer,
	languages port.LanguageSwitcher,
	orders port.OrderComposer,
) {
	h := ProductsHandler{
		products:  products,
		localizer: localizer,
		languages: languages,
		orders:    orders,
		now:       time.Now,
	}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
	mux.HandleFunc("GET /v1/products/slug/{slug}", h.GetProductBySlug)
	mux.HandleFunc("POST /v1/products/{id}/cart-link", h.PostCartLink)
}

func (h ProductsHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProducts"
	log := slog.With("op", op)

	query := r.URL.Query()
	lang, err := requestLanguage(r, query.Get("lang"), h.languages)
	if err != nil {
		writeError(w, log, err)
		return
	}

	q, err := parseProductQuery(query)
	if err != nil {
		writeError(w, log, err)
		return
	}

	v, err := h.view(lang)
	if err != nil {
		writeError(w, log, err)
		return
	}

	list, err := h.products.ListProducts(r.Context(), q)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, v.list(list, q.Sort))
	log.Debug("products listed", "lang", lang, "nProducts", len(list.Products))
}

func (h ProductsHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProduct"
	h.getProduct(w, r, op, h.products.ProductByID, r.PathValue("id"))
}

func (h ProductsHandler) GetProductBySlug(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProductBySlug"
	h.getProduct(w, r, op, h.products.ProductBySlug, r.PathValue("slug"))
}

func (h ProductsHandler) getProduct(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	lookup func(ctx context.Context, key string, lang domain.Language) (domain.Product, error),
	key string,
) {
	log := slog.With("op", op)

	lang, err := requestLanguage(r, r.URL.Query().Get("lang"), h.languages)
	if err != nil {
		writeError(w, log, err)
		return
	}

	v, err := h.view(lang)
	if err != nil {
		writeError(w, log, err)
		return
	}

	p, err := lookup(r.Context(), key, lang)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, ProductDetailResponse{
		Presentation: v.presentation(),
		Product:      v.detail(p),
	})
}

func (h ProductsHandler) PostCartLink(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.PostCartLink"
	log := slog.With("op", op)

	var req CartLinkRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	lang, err := requestLanguage(r, req.Lang, h.languages)
	if err != nil {
		writeError(w, log, err)
		return
	}

	handoff, err := h.orders.CartLink(r.Context(), port.CartItem{
		ProductID: r.PathValue("id"),
		Quantity:  req.Quantity,
		Lang:      lang,
	})
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, toHandoffResponse(handoff))
	log.Info("cart link composed", "productID", r.PathValue("id"))
}

func (h ProductsHandler) view(lang domain.Language) (view, error) {
	d, err := h.localizer.Dictionary(lang)
	if err != nil {
		return view{}, err
	}
	return view{lang: lang, d: d, now: h.now()}, nil
}

func parseProductQuery(q url.Values) (port.ProductQuery, error) {
	f := domain.NewFilterState()

	a, err := domain.ParseAvailability(q.Get("availability"))
	if err != nil {
		return port.ProductQuery{}, err
	}
	f.Availability = a

	f.Brands = nonEmpty(q["brand"])

	for _, s := range nonEmpty(q["type"]) {
		t, err := domain.ParseProductType(s)
		if err != nil {
			return port.ProductQuery{}, err
		}
		f.ProductTypes = append(f.ProductTypes, t)
	}

	for _, s := range nonEmpty(q["need"]) {
		n, err := domain.ParseProductNeed(s)
		if err != nil {
			return port.ProductQuery{}, err
		}
		f.Needs = append(f.Needs, n)
	}

	if f.PriceRange.Min, err = parsePrice(q, "min_price", f.PriceRange.Min); err != nil {
		return port.ProductQuery{}, err
	}
	if f.PriceRange.Max, err = parsePrice(q, "max_price", f.PriceRange.Max); err != nil {
		return port.ProductQuery{}, err
	}
	if err := f.PriceRange.Validate(); err != nil {
		return port.ProductQuery{}, err
	}

	sort, err := domain.ParseSortOption(q.Get("sort"))
	if err != nil {
		return port.ProductQuery{}, err
	}

	return port.ProductQuery{Filter: f, Sort: sort}, nil
}

func parsePrice(q url.Values, key string, fallback int64) (int64, error) {
	s := q.Get(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errMalformedRequest, key, errors.Unwrap(err))
	}
	return n, nil
}

func nonEmpty(ss []string) []string {
	var out []string
	for _, s := range ss {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

package httpx

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/martify/go-storefront/internal/catalog"
)

type CatalogHandler struct {
	Catalog *catalog.Catalog
}

func (h *CatalogHandler) Register(r *chi.Mux) {
	r.Get("/products", h.listProducts)
	r.Get("/products/{slug}", h.getProduct)
	r.Get("/categories", h.listCategories)
	r.Get("/brands", h.listBrands)
	r.Get("/deals", h.listDeals)
	r.Get("/featured", h.listFeatured)
	r.Get("/bestsellers", h.listBestsellers)
}

// listProducts runs the filter/sort engine. Absent parameters mean "no
// filter"; an unknown category slug simply matches nothing.
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := catalog.Query{
		CategorySlug: r.URL.Query().Get("category"),
		Search:       r.URL.Query().Get("q"),
		Brands:       r.URL.Query()["brand"],
		InStockOnly:  r.URL.Query().Get("in_stock") == "true",
		Sort:         catalog.SortKey(r.URL.Query().Get("sort")),
	}
	if v := r.URL.Query().Get("price_min"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			q.PriceMin = f
		}
	}
	if v := r.URL.Query().Get("price_max"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			q.PriceMax = f
		}
	}
	if v := r.URL.Query().Get("min_rating"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			q.MinRating = f
		}
	}

	products := h.Catalog.FilterSort(q)
	writeJSON(w, http.StatusOK, map[string]any{
		"products": products,
		"count":    len(products),
	})
}

func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	p, ok := h.Catalog.BySlug(slug)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Categories())
}

func (h *CatalogHandler) listBrands(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Brands())
}

func (h *CatalogHandler) listDeals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Deals())
}

func (h *CatalogHandler) listFeatured(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Featured())
}

func (h *CatalogHandler) listBestsellers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Bestsellers())
}

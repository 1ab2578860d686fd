package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/martify/go-storefront/internal/catalog"
)

type WishlistHandler struct {
	Catalog  *catalog.Catalog
	Sessions *Sessions
}

type wishlistToggleReq struct {
	ProductID string `json:"product_id"`
}

func (h *WishlistHandler) Register(r *chi.Mux) {
	r.Get("/wishlist", h.get)
	r.Post("/wishlist/toggle", h.toggle)
}

func (h *WishlistHandler) get(w http.ResponseWriter, r *http.Request) {
	st := h.Sessions.State(r.Context(), SessionID(w, r))
	st.Lock()
	defer st.Unlock()

	ids := st.Wishlist.Items()
	products := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := h.Catalog.ByID(id); ok {
			products = append(products, p)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": products})
}

func (h *WishlistHandler) toggle(w http.ResponseWriter, r *http.Request) {
	var req wishlistToggleReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if _, ok := h.Catalog.ByID(req.ProductID); !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	st := h.Sessions.State(r.Context(), SessionID(w, r))
	st.Lock()
	defer st.Unlock()
	wishlisted := st.Wishlist.Toggle(req.ProductID)
	writeJSON(w, http.StatusOK, map[string]any{
		"product_id": req.ProductID,
		"wishlisted": wishlisted,
	})
}

package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/martify/go-storefront/internal/catalog"
	"github.com/martify/go-storefront/internal/compare"
)

type CompareHandler struct {
	Catalog  *catalog.Catalog
	Sessions *Sessions
}

type compareAddReq struct {
	ProductID string `json:"product_id"`
}

type compareResponse struct {
	Items []catalog.Product `json:"items"`
	Rows  []compare.Row     `json:"rows"`
}

func (h *CompareHandler) Register(r *chi.Mux) {
	r.Get("/compare", h.get)
	r.Post("/compare", h.add)
	r.Delete("/compare/{id}", h.remove)
	r.Delete("/compare", h.clear)
}

func (h *CompareHandler) get(w http.ResponseWriter, r *http.Request) {
	st := h.Sessions.State(r.Context(), SessionID(w, r))
	st.Lock()
	defer st.Unlock()
	items := st.Compare.Items()
	writeJSON(w, http.StatusOK, compareResponse{Items: items, Rows: compare.Rows(items)})
}

// add is a silent no-op when the product is already selected or the set
// is full, mirroring the storefront behavior.
func (h *CompareHandler) add(w http.ResponseWriter, r *http.Request) {
	var req compareAddReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	p, ok := h.Catalog.ByID(req.ProductID)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	st := h.Sessions.State(r.Context(), SessionID(w, r))
	st.Lock()
	defer st.Unlock()
	st.Compare.Add(p)
	items := st.Compare.Items()
	writeJSON(w, http.StatusOK, compareResponse{Items: items, Rows: compare.Rows(items)})
}

func (h *CompareHandler) remove(w http.ResponseWriter, r *http.Request) {
	st := h.Sessions.State(r.Context(), SessionID(w, r))
	st.Lock()
	defer st.Unlock()
	st.Compare.Remove(chi.URLParam(r, "id"))
	items := st.Compare.Items()
	writeJSON(w, http.StatusOK, compareResponse{Items: items, Rows: compare.Rows(items)})
}

func (h *CompareHandler) clear(w http.ResponseWriter, r *http.Request) {
	st := h.Sessions.State(r.Context(), SessionID(w, r))
	st.Lock()
	defer st.Unlock()
	st.Compare.Clear()
	writeJSON(w, http.StatusOK, compareResponse{Items: []catalog.Product{}, Rows: nil})
}

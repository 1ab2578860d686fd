package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/martify/go-storefront/internal/catalog"
)

type RecentHandler struct {
	Catalog  *catalog.Catalog
	Sessions *Sessions
}

type recordViewReq struct {
	ProductID string `json:"product_id"`
}

func (h *RecentHandler) Register(r *chi.Mux) {
	r.Get("/recently-viewed", h.list)
	r.Post("/recently-viewed", h.record)
}

// list returns the rail front-to-back. The exclude parameter keeps the
// currently-viewed product out of its own rail.
func (h *RecentHandler) list(w http.ResponseWriter, r *http.Request) {
	st := h.Sessions.State(r.Context(), SessionID(w, r))
	st.Lock()
	defer st.Unlock()

	ids := st.Recent.IDs(r.URL.Query().Get("exclude"))
	products := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := h.Catalog.ByID(id); ok {
			products = append(products, p)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": products})
}

func (h *RecentHandler) record(w http.ResponseWriter, r *http.Request) {
	var req recordViewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if _, ok := h.Catalog.ByID(req.ProductID); !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	sid := SessionID(w, r)
	st := h.Sessions.State(r.Context(), sid)
	st.Lock()
	defer st.Unlock()
	st.Recent.RecordView(req.ProductID)
	if snap, err := st.Recent.Encode(); err == nil {
		h.Sessions.SaveRecent(r.Context(), sid, snap)
	}
	writeJSON(w, http.StatusOK, map[string]any{"ids": st.Recent.IDs("")})
}

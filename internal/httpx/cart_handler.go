package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/martify/go-storefront/internal/cart"
	"github.com/martify/go-storefront/internal/catalog"
	"github.com/martify/go-storefront/internal/coupon"
	"github.com/martify/go-storefront/internal/session"
)

type CartHandler struct {
	Catalog  *catalog.Catalog
	Coupons  *coupon.Book
	Sessions *Sessions
}

type addItemReq struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

type updateQtyReq struct {
	Qty int `json:"qty"`
}

type applyCouponReq struct {
	Code string `json:"code"`
}

type cartLine struct {
	Product   catalog.Product `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal float64         `json:"line_total"`
}

type cartResponse struct {
	Items     []cartLine     `json:"items"`
	ItemCount int            `json:"item_count"`
	Coupon    *coupon.Coupon `json:"coupon,omitempty"`
	Summary   coupon.Summary `json:"summary"`
}

func (h *CartHandler) Register(r *chi.Mux) {
	r.Get("/cart", h.getCart)
	r.Post("/cart/items", h.addItem)
	r.Patch("/cart/items/{id}", h.updateQuantity)
	r.Delete("/cart/items/{id}", h.removeItem)
	r.Delete("/cart", h.clear)
	r.Post("/cart/coupon", h.applyCoupon)
	r.Delete("/cart/coupon", h.removeCoupon)
}

func cartView(st *session.State) cartResponse {
	items := st.Cart.Items()
	lines := make([]cartLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, cartLine{
			Product:   it.Product,
			Quantity:  it.Quantity,
			LineTotal: coupon.Round2(it.Product.Price * float64(it.Quantity)),
		})
	}
	return cartResponse{
		Items:     lines,
		ItemCount: st.Cart.ItemCount(),
		Coupon:    st.Applied,
		Summary:   coupon.Totals(st.Cart.Subtotal(), st.Applied).Rounded(),
	}
}

func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	sid := SessionID(w, r)
	st := h.Sessions.State(r.Context(), sid)
	st.Lock()
	defer st.Unlock()
	writeJSON(w, http.StatusOK, cartView(st))
}

func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	p, ok := h.Catalog.ByID(req.ProductID)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	if req.Qty == 0 {
		req.Qty = 1
	}

	sid := SessionID(w, r)
	st := h.Sessions.State(r.Context(), sid)
	st.Lock()
	defer st.Unlock()
	st.Cart.AddItem(p, req.Qty)
	h.persist(r, sid, st.Cart)
	writeJSON(w, http.StatusOK, cartView(st))
}

func (h *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQtyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	sid := SessionID(w, r)
	st := h.Sessions.State(r.Context(), sid)
	st.Lock()
	defer st.Unlock()
	st.Cart.UpdateQuantity(chi.URLParam(r, "id"), req.Qty)
	h.persist(r, sid, st.Cart)
	writeJSON(w, http.StatusOK, cartView(st))
}

func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	sid := SessionID(w, r)
	st := h.Sessions.State(r.Context(), sid)
	st.Lock()
	defer st.Unlock()
	st.Cart.RemoveItem(chi.URLParam(r, "id"))
	h.persist(r, sid, st.Cart)
	writeJSON(w, http.StatusOK, cartView(st))
}

func (h *CartHandler) clear(w http.ResponseWriter, r *http.Request) {
	sid := SessionID(w, r)
	st := h.Sessions.State(r.Context(), sid)
	st.Lock()
	defer st.Unlock()
	st.Cart.Clear()
	st.Applied = nil
	h.Sessions.ClearCart(r.Context(), sid)
	writeJSON(w, http.StatusOK, cartView(st))
}

// applyCoupon validates the code against the current subtotal. A new
// coupon replaces any previously applied one.
func (h *CartHandler) applyCoupon(w http.ResponseWriter, r *http.Request) {
	var req applyCouponReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	sid := SessionID(w, r)
	st := h.Sessions.State(r.Context(), sid)
	st.Lock()
	defer st.Unlock()

	c, err := h.Coupons.Redeem(req.Code, st.Cart.Subtotal())
	if err != nil {
		switch {
		case errors.Is(err, coupon.ErrUnknownCode):
			writeError(w, http.StatusNotFound, "invalid coupon code")
		case errors.Is(err, coupon.ErrMinOrderNotMet):
			writeError(w, http.StatusUnprocessableEntity, "minimum order not met")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	st.Applied = &c
	writeJSON(w, http.StatusOK, cartView(st))
}

func (h *CartHandler) removeCoupon(w http.ResponseWriter, r *http.Request) {
	sid := SessionID(w, r)
	st := h.Sessions.State(r.Context(), sid)
	st.Lock()
	defer st.Unlock()
	st.Applied = nil
	writeJSON(w, http.StatusOK, cartView(st))
}

func (h *CartHandler) persist(r *http.Request, sid string, l *cart.Ledger) {
	snap, err := l.Encode()
	if err != nil {
		return
	}
	h.Sessions.SaveCart(r.Context(), sid, snap)
}

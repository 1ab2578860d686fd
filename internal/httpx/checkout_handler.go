package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/martify/go-storefront/internal/checkout"
	"github.com/martify/go-storefront/internal/coupon"
	"github.com/martify/go-storefront/internal/session"
)

// OrderReader is the read side of the order store.
type OrderReader interface {
	GetOrder(ctx context.Context, orderID string) (checkout.Order, []checkout.OrderItem, error)
	ListByUser(ctx context.Context, userID string) ([]checkout.Order, error)
}

type CheckoutHandler struct {
	Service  *checkout.Service
	Orders   OrderReader
	Sessions *Sessions
}

type setAddressReq struct {
	Address checkout.Address `json:"address"`
}

type setPaymentReq struct {
	Method string `json:"method"`
}

type checkoutResponse struct {
	Step          string           `json:"step"`
	Address       checkout.Address `json:"address"`
	PaymentMethod string           `json:"payment_method"`
	Summary       coupon.Summary   `json:"summary"`
}

func (h *CheckoutHandler) Register(r *chi.Mux) {
	r.Get("/checkout", h.get)
	r.Post("/checkout/address", h.setAddress)
	r.Post("/checkout/payment", h.setPayment)
	r.Post("/checkout/back", h.back)
	r.Post("/checkout/place", h.place)
	r.Get("/orders", h.listOrders)
	r.Get("/orders/{id}", h.getOrder)
}

func checkoutView(st *session.State) checkoutResponse {
	return checkoutResponse{
		Step:          st.Checkout.Step.String(),
		Address:       st.Checkout.Address,
		PaymentMethod: st.Checkout.PaymentMethod,
		Summary:       coupon.Totals(st.Cart.Subtotal(), st.Applied).Rounded(),
	}
}

func (h *CheckoutHandler) get(w http.ResponseWriter, r *http.Request) {
	st := h.Sessions.State(r.Context(), SessionID(w, r))
	st.Lock()
	defer st.Unlock()
	writeJSON(w, http.StatusOK, checkoutView(st))
}

// setAddress stores the address and advances to payment when it is
// complete. Only valid at the address step; later steps edit nothing.
func (h *CheckoutHandler) setAddress(w http.ResponseWriter, r *http.Request) {
	var req setAddressReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	st := h.Sessions.State(r.Context(), SessionID(w, r))
	st.Lock()
	defer st.Unlock()

	if st.Checkout.Step != checkout.StepAddress {
		writeError(w, http.StatusConflict, "checkout is not at the address step")
		return
	}
	if err := st.Checkout.SetAddress(req.Address); err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if err := st.Checkout.Next(); err != nil {
		if errors.Is(err, checkout.ErrIncompleteAddress) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, checkoutView(st))
}

func (h *CheckoutHandler) setPayment(w http.ResponseWriter, r *http.Request) {
	var req setPaymentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	st := h.Sessions.State(r.Context(), SessionID(w, r))
	st.Lock()
	defer st.Unlock()

	if st.Checkout.Step != checkout.StepPayment {
		writeError(w, http.StatusConflict, "checkout is not at the payment step")
		return
	}
	if err := st.Checkout.SetPaymentMethod(req.Method); err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if err := st.Checkout.Next(); err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, checkoutView(st))
}

func (h *CheckoutHandler) back(w http.ResponseWriter, r *http.Request) {
	st := h.Sessions.State(r.Context(), SessionID(w, r))
	st.Lock()
	defer st.Unlock()

	if err := st.Checkout.Back(); err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, checkoutView(st))
}

// place finalizes the order for the signed-in user. On success the cart
// mirror in Redis is dropped along with the applied coupon, and a fresh
// flow replaces the placed one so the session can shop again.
func (h *CheckoutHandler) place(w http.ResponseWriter, r *http.Request) {
	sid := SessionID(w, r)
	user, ok := h.Sessions.CurrentUser(r.Context(), sid)
	if !ok {
		writeError(w, http.StatusUnauthorized, "sign in to place an order")
		return
	}

	st := h.Sessions.State(r.Context(), sid)
	st.Lock()
	defer st.Unlock()

	o, err := h.Service.PlaceOrder(r.Context(), user.ID, st.Cart, st.Applied, st.Checkout)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrNotAtReview):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, checkout.ErrEmptyCart):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "could not place order")
		}
		return
	}

	st.Applied = nil
	st.Checkout = checkout.NewFlow()
	h.Sessions.ClearCart(r.Context(), sid)
	writeJSON(w, http.StatusCreated, map[string]any{"order": o})
}

func (h *CheckoutHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	user, ok := h.Sessions.CurrentUser(r.Context(), SessionID(w, r))
	if !ok {
		writeError(w, http.StatusUnauthorized, "sign in to view orders")
		return
	}

	orders, err := h.Orders.ListByUser(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not load orders")
		return
	}
	if orders == nil {
		orders = []checkout.Order{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

// getOrder returns one order with its lines. Orders belonging to other
// users are indistinguishable from missing ones.
func (h *CheckoutHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := h.Sessions.CurrentUser(r.Context(), SessionID(w, r))
	if !ok {
		writeError(w, http.StatusUnauthorized, "sign in to view orders")
		return
	}

	o, items, err := h.Orders.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, checkout.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "order not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "could not load order")
		return
	}
	if o.UserID != user.ID {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"order": o, "items": items})
}

package httpx

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martify/go-storefront/internal/auth"
	"github.com/martify/go-storefront/internal/catalog"
	"github.com/martify/go-storefront/internal/checkout"
	"github.com/martify/go-storefront/internal/coupon"
	"github.com/martify/go-storefront/internal/session"
)

type stubOrderStore struct{ saved []checkout.Order }

func (m *stubOrderStore) SaveOrder(_ context.Context, o checkout.Order, _ []checkout.OrderItem) error {
	m.saved = append(m.saved, o)
	return nil
}

type stubPublisher struct{ published int }

func (m *stubPublisher) Publish(_, _ []byte, _ ...kafkago.Header) { m.published++ }

type stubOrderReader struct {
	orders map[string]checkout.Order
	items  map[string][]checkout.OrderItem
}

func (m *stubOrderReader) GetOrder(_ context.Context, orderID string) (checkout.Order, []checkout.OrderItem, error) {
	o, ok := m.orders[orderID]
	if !ok {
		return checkout.Order{}, nil, checkout.ErrOrderNotFound
	}
	return o, m.items[orderID], nil
}

func (m *stubOrderReader) ListByUser(_ context.Context, userID string) ([]checkout.Order, error) {
	var out []checkout.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

type checkoutFixture struct {
	srv      *httptest.Server
	client   *http.Client
	sessions *Sessions
	store    *stubOrderStore
	pub      *stubPublisher
	reader   *stubOrderReader
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	cat := catalog.Default()
	sessions := &Sessions{Manager: session.NewManager(), Catalog: cat}
	store := &stubOrderStore{}
	pub := &stubPublisher{}
	reader := &stubOrderReader{orders: map[string]checkout.Order{}, items: map[string][]checkout.OrderItem{}}

	r := NewRouter()
	(&CartHandler{Catalog: cat, Coupons: coupon.Default(), Sessions: sessions}).Register(r)
	(&CheckoutHandler{
		Service:  &checkout.Service{Orders: store, Producer: pub, Service: "storefront-api"},
		Orders:   reader,
		Sessions: sessions,
	}).Register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &checkoutFixture{
		srv:      srv,
		client:   &http.Client{Jar: jar},
		sessions: sessions,
		store:    store,
		pub:      pub,
		reader:   reader,
	}
}

// signIn mints a session cookie and marks it as belonging to user.
func (f *checkoutFixture) signIn(t *testing.T, user auth.SessionUser) {
	t.Helper()
	doJSON(t, f.client, http.MethodGet, f.srv.URL+"/checkout", nil, nil)
	u, err := url.Parse(f.srv.URL)
	require.NoError(t, err)
	for _, c := range f.client.Jar.Cookies(u) {
		if c.Name == sessionCookie {
			f.sessions.SaveUser(context.Background(), c.Value, user)
			return
		}
	}
	t.Fatal("no session cookie minted")
}

func validAddress() checkout.Address {
	return checkout.Address{
		Name: "Asha Rao", Phone: "9876543210",
		Line1: "12 Lake View Road", City: "Bengaluru", State: "KA", Pincode: "560001",
	}
}

func TestCheckoutPlace(t *testing.T) {
	f := newCheckoutFixture(t)
	f.signIn(t, auth.SessionUser{ID: "u1", Name: "Asha", Email: "asha@example.com"})

	var view checkoutResponse
	doJSON(t, f.client, http.MethodPost, f.srv.URL+"/cart/items", addItemReq{ProductID: "p1", Qty: 1}, nil)
	doJSON(t, f.client, http.MethodPost, f.srv.URL+"/checkout/address", setAddressReq{Address: validAddress()}, &view)
	assert.Equal(t, "payment", view.Step)
	doJSON(t, f.client, http.MethodPost, f.srv.URL+"/checkout/payment", setPaymentReq{Method: "card"}, &view)
	assert.Equal(t, "review", view.Step)

	var placed struct {
		Order checkout.Order `json:"order"`
	}
	resp := doJSON(t, f.client, http.MethodPost, f.srv.URL+"/checkout/place", nil, &placed)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "u1", placed.Order.UserID)
	assert.Equal(t, checkout.StatusPlaced, placed.Order.Status)

	require.Len(t, f.store.saved, 1)
	assert.Equal(t, 1, f.pub.published)

	var cartAfter cartResponse
	doJSON(t, f.client, http.MethodGet, f.srv.URL+"/cart", nil, &cartAfter)
	assert.Empty(t, cartAfter.Items)

	doJSON(t, f.client, http.MethodGet, f.srv.URL+"/checkout", nil, &view)
	assert.Equal(t, "address", view.Step, "a fresh flow replaces the placed one")
}

func TestCheckoutPlaceRequiresSignIn(t *testing.T) {
	f := newCheckoutFixture(t)
	resp := doJSON(t, f.client, http.MethodPost, f.srv.URL+"/checkout/place", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCheckoutAddressOnlyAtAddressStep(t *testing.T) {
	f := newCheckoutFixture(t)

	var view checkoutResponse
	doJSON(t, f.client, http.MethodPost, f.srv.URL+"/checkout/address", setAddressReq{Address: validAddress()}, &view)
	require.Equal(t, "payment", view.Step)

	resp := doJSON(t, f.client, http.MethodPost, f.srv.URL+"/checkout/address", setAddressReq{Address: validAddress()}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	doJSON(t, f.client, http.MethodGet, f.srv.URL+"/checkout", nil, &view)
	assert.Equal(t, "payment", view.Step, "a repeated address post must not advance the flow")
}

func TestCheckoutIncompleteAddress(t *testing.T) {
	f := newCheckoutFixture(t)
	resp := doJSON(t, f.client, http.MethodPost, f.srv.URL+"/checkout/address",
		setAddressReq{Address: checkout.Address{Name: "only a name"}}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var view checkoutResponse
	doJSON(t, f.client, http.MethodGet, f.srv.URL+"/checkout", nil, &view)
	assert.Equal(t, "address", view.Step)
}

func TestGetOrder(t *testing.T) {
	f := newCheckoutFixture(t)
	f.reader.orders["o1"] = checkout.Order{ID: "o1", Number: "MTF-AAAAAA", UserID: "u1", Status: checkout.StatusConfirmed}
	f.reader.items["o1"] = []checkout.OrderItem{{ID: "i1", OrderID: "o1", ProductID: "p1", Qty: 2}}
	f.reader.orders["o2"] = checkout.Order{ID: "o2", Number: "MTF-BBBBBB", UserID: "someone-else"}

	t.Run("requires sign in", func(t *testing.T) {
		resp := doJSON(t, f.client, http.MethodGet, f.srv.URL+"/orders/o1", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	f.signIn(t, auth.SessionUser{ID: "u1", Name: "Asha", Email: "asha@example.com"})

	t.Run("owner sees the order with its lines", func(t *testing.T) {
		var body struct {
			Order checkout.Order         `json:"order"`
			Items []checkout.OrderItem   `json:"items"`
		}
		resp := doJSON(t, f.client, http.MethodGet, f.srv.URL+"/orders/o1", nil, &body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, checkout.StatusConfirmed, body.Order.Status)
		require.Len(t, body.Items, 1)
		assert.Equal(t, "p1", body.Items[0].ProductID)
	})

	t.Run("someone else's order reads as missing", func(t *testing.T) {
		resp := doJSON(t, f.client, http.MethodGet, f.srv.URL+"/orders/o2", nil, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("unknown order", func(t *testing.T) {
		resp := doJSON(t, f.client, http.MethodGet, f.srv.URL+"/orders/ghost", nil, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestListOrders(t *testing.T) {
	f := newCheckoutFixture(t)
	f.reader.orders["o1"] = checkout.Order{ID: "o1", UserID: "u1"}
	f.reader.orders["o2"] = checkout.Order{ID: "o2", UserID: "someone-else"}
	f.signIn(t, auth.SessionUser{ID: "u1", Name: "Asha", Email: "asha@example.com"})

	var body struct {
		Orders []checkout.Order `json:"orders"`
	}
	resp := doJSON(t, f.client, http.MethodGet, f.srv.URL+"/orders", nil, &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body.Orders, 1)
	assert.Equal(t, "o1", body.Orders[0].ID)
}

package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/martify/go-storefront/internal/auth"
	"github.com/martify/go-storefront/internal/cart"
	"github.com/martify/go-storefront/internal/catalog"
	"github.com/martify/go-storefront/internal/recent"
	"github.com/martify/go-storefront/internal/redisx"
	"github.com/martify/go-storefront/internal/session"
)

const sessionCookie = "martify_session"

// Sessions binds the in-memory session manager to its Redis mirror.
// The signed-in user, cart snapshot and recently-viewed list survive
// restarts; the rest of the session state (wishlist, compare, checkout
// progress) is deliberately ephemeral.
type Sessions struct {
	Manager *session.Manager
	Redis   *redis.Client
	Catalog *catalog.Catalog
}

// SessionID reads the session cookie, minting one on first contact.
func SessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(redisx.TTLSession),
	})
	return id
}

// State returns the session state, restoring the persisted user, cart
// and recently-viewed list from Redis on first access. Stored snapshots
// are validated against the catalog, never trusted raw.
func (s *Sessions) State(ctx context.Context, sid string) *session.State {
	st := s.Manager.Get(sid)
	st.Lock()
	defer st.Unlock()
	if !st.Hydrated {
		if s.Redis != nil {
			st.Cart = cart.Decode(redisx.GetBytes(ctx, s.Redis, fmt.Sprintf(redisx.KeyCart, sid)), s.Catalog)
			st.Recent = recent.Decode(redisx.GetBytes(ctx, s.Redis, fmt.Sprintf(redisx.KeyRecentlyViewed, sid)))
			if raw := redisx.GetBytes(ctx, s.Redis, fmt.Sprintf(redisx.KeySessionUser, sid)); raw != nil {
				var u auth.SessionUser
				if err := json.Unmarshal(raw, &u); err == nil && u.ID != "" {
					st.User = &u
				}
			}
		}
		st.Hydrated = true
	}
	return st
}

// SaveCart mirrors an encoded cart snapshot to Redis. Persistence is
// best-effort; the in-memory ledger stays authoritative.
func (s *Sessions) SaveCart(ctx context.Context, sid string, snapshot []byte) {
	if s.Redis == nil {
		return
	}
	_ = s.Redis.Set(ctx, fmt.Sprintf(redisx.KeyCart, sid), snapshot, redisx.TTLCart).Err()
}

func (s *Sessions) SaveRecent(ctx context.Context, sid string, snapshot []byte) {
	if s.Redis == nil {
		return
	}
	_ = s.Redis.Set(ctx, fmt.Sprintf(redisx.KeyRecentlyViewed, sid), snapshot, redisx.TTLRecentlyViewed).Err()
}

func (s *Sessions) ClearCart(ctx context.Context, sid string) {
	if s.Redis == nil {
		return
	}
	_ = s.Redis.Del(ctx, fmt.Sprintf(redisx.KeyCart, sid)).Err()
}

// SaveUser signs the user into the session and mirrors the projection
// to Redis.
func (s *Sessions) SaveUser(ctx context.Context, sid string, user auth.SessionUser) {
	st := s.State(ctx, sid)
	st.Lock()
	st.User = &user
	st.Unlock()

	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return
	}
	_ = s.Redis.Set(ctx, fmt.Sprintf(redisx.KeySessionUser, sid), raw, redisx.TTLSession).Err()
}

// CurrentUser reports the signed-in user for the session, if any.
func (s *Sessions) CurrentUser(ctx context.Context, sid string) (auth.SessionUser, bool) {
	st := s.State(ctx, sid)
	st.Lock()
	defer st.Unlock()
	if st.User == nil {
		return auth.SessionUser{}, false
	}
	return *st.User, true
}

func (s *Sessions) ClearUser(ctx context.Context, sid string) {
	st := s.State(ctx, sid)
	st.Lock()
	st.User = nil
	st.Unlock()

	if s.Redis == nil {
		return
	}
	_ = s.Redis.Del(ctx, fmt.Sprintf(redisx.KeySessionUser, sid)).Err()
}

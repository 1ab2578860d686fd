package redisx

import "time"

// Redis is the storefront's durable keyed storage, the server-side
// analogue of the browser's local storage.
const (
	// Signed-in user projection: session:user:{session_id} -> SessionUser JSON
	KeySessionUser = "session:user:%s"

	// Cart snapshot: cart:{session_id} -> [{product_id, quantity}]
	KeyCart = "cart:%s"

	// Recently viewed ids, most-recent-first: recent:{session_id} -> [ids]
	KeyRecentlyViewed = "recent:%s"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLSession = 30 * 24 * time.Hour
	TTLCart    = 30 * 24 * time.Hour
	// No expiry: the recently-viewed list lives until overwritten,
	// matching local-storage semantics.
	TTLRecentlyViewed = time.Duration(0)
	TTLDedup          = 48 * time.Hour
)

package domain

// Notification is one record of the append-only feed shown in the header.
// The feed is kept newest-first and records are never mutated after creation;
// the only destructive operation is a bulk clear.
type Notification struct {
	// ID is derived from the creation time in milliseconds and is unique and
	// strictly monotonic within a store.
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"` // human-readable, locale style
}

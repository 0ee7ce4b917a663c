package ports

import (
	"context"
	"errors"
	"fmt"
)

// ErrKeyNotFound is returned by Mirror.Get for keys that were never written.
var ErrKeyNotFound = errors.New("mirror: key not found")

// Mirror keys used by the stores. Values are flat strings; collection values
// are JSON-serialized arrays.
const (
	KeyIsLoggedIn    = "isLoggedIn"
	KeyUsername      = "username"
	KeyPassword      = "password"
	KeyEmail         = "email"
	KeyUserRole      = "userRole"
	KeyReports       = "reports"
	KeyUsers         = "users"
	KeyNotifications = "notifications"
)

// CommentsKey returns the mirror key holding the comment list for a report.
func CommentsKey(reportID int) string {
	return fmt.Sprintf("report_comments_%d", reportID)
}

// Mirror is the durable key/value layer backing the in-memory stores across
// restarts. Writes are synchronous and never retried; callers treat them as
// fire-and-forget except where a contract says otherwise (logout).
type Mirror interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

package ports

import (
	"context"

	"github.com/roadwatch/report-system/internal/core/domain"
)

// SessionService is the single source of truth for who is using the dashboard
// and whether they hold the admin role. Identity is rehydrated from the
// mirror at construction, so a restart resumes the previous session state.
//
// The boolean results mirror the form-handler contract of the UI: a false
// return means "show an inline message", never an exception path.
type SessionService interface {
	// Login validates the pair against the built-in admin credentials or the
	// single stored credential record. On failure the identity is unchanged.
	Login(ctx context.Context, username, password string) bool
	// Logout clears the login marker and role, keeping username and password
	// so the account can log back in. All-or-nothing: on a mirror failure it
	// returns false and leaves the in-memory identity untouched.
	Logout(ctx context.Context) bool
	// Signup overwrites the single stored credential record unconditionally
	// and always reports success. An empty role defaults to RoleUser.
	Signup(ctx context.Context, username, email, password, role string) bool
	// UpdateUserInfo changes the stored username and/or password, gated on
	// currentPassword matching the stored one ("1234" when none was stored).
	UpdateUserInfo(ctx context.Context, newUsername, currentPassword, newPassword string) bool

	Identity() *domain.Identity
	IsLoggedIn() bool
	IsAdmin() bool
}

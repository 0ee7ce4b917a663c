package domain

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Built-in administrator credentials. The login gate accepts this pair
// regardless of what the mirror holds.
const (
	AdminUsername = "admin"
	AdminPassword = "1234"
)

// Identity is the currently authenticated session. The admin flag is derived,
// not stored here: a session is admin when the mirrored role is RoleAdmin or
// the username is the admin literal.
type Identity struct {
	Username string `json:"username"`
}

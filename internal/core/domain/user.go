package domain

// UserStatus marks whether an end-user account is active.
type UserStatus string

const (
	UserActive   UserStatus = "Active"
	UserInactive UserStatus = "Inactive"
)

// User is an application end-user record managed on the users page. It is
// distinct from Identity, which models the operator of the dashboard itself.
type User struct {
	ID     int        `json:"id"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Status UserStatus `json:"status"`
	Joined string     `json:"joined"` // ISO date, set on creation
}

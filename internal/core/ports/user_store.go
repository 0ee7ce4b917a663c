package ports

import (
	"context"

	"github.com/roadwatch/report-system/internal/core/domain"
)

// CreateUserInput carries the caller-supplied fields for a new end-user
// record. The joined date is assigned by the store.
type CreateUserInput struct {
	Name   string            `validate:"required"`
	Email  string            `validate:"required,email"`
	Status domain.UserStatus `validate:"omitempty,oneof=Active Inactive"`
}

// UserStore owns the end-user collection, with the same mutation contract as
// ReportStore.
type UserStore interface {
	Users() []domain.User
	AddUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	UpdateUserStatus(ctx context.Context, id int, status domain.UserStatus) []domain.User
	DeleteUser(ctx context.Context, id int) []domain.User
}

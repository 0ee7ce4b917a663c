package service

import (
	"context"
	"fmt"
	"time"

	"github.com/roadwatch/report-system/internal/core/domain"
	"github.com/roadwatch/report-system/internal/core/ports"
	"github.com/roadwatch/report-system/internal/metrics"
)

// Users returns a copy of the end-user collection in insertion order.
func (s *DataService) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.usersCopy()
}

func (s *DataService) usersCopy() []domain.User {
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

func nextUserID(users []domain.User) int {
	max := 0
	for _, u := range users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

// AddUser creates an end-user record. The id and joined date are forced by
// the store; an unset status defaults to Active.
func (s *DataService) AddUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	status := input.Status
	if status == "" {
		status = domain.UserActive
	}
	user := domain.User{
		ID:     nextUserID(s.users),
		Name:   input.Name,
		Email:  input.Email,
		Status: status,
		Joined: time.Now().Format(dateLayout),
	}
	s.users = append(s.users, user)
	s.persist(ctx, ports.KeyUsers, s.users)
	s.note(ctx, fmt.Sprintf("New user added: %s", user.Name))

	metrics.UsersCreatedTotal.Inc()
	s.logger.Info().Int("id", user.ID).Str("name", user.Name).Msg("user added")
	return &user, nil
}

// UpdateUserStatus flips an end-user record between Active and Inactive.
// Unknown ids leave the collection untouched and skip the notification.
func (s *DataService) UpdateUserStatus(ctx context.Context, id int, status domain.UserStatus) []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Status = status
			s.persist(ctx, ports.KeyUsers, s.users)
			s.note(ctx, fmt.Sprintf("User status updated: %s to %s", s.users[i].Name, status))
			break
		}
	}
	return s.usersCopy()
}

// DeleteUser removes an end-user record by id; missing ids are a no-op.
func (s *DataService) DeleteUser(ctx context.Context, id int) []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			name := s.users[i].Name
			s.users = append(s.users[:i], s.users[i+1:]...)
			s.persist(ctx, ports.KeyUsers, s.users)
			s.note(ctx, fmt.Sprintf("User deleted: %s", name))
			break
		}
	}
	return s.usersCopy()
}

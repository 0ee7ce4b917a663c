package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/roadwatch/report-system/internal/core/domain"
	"github.com/roadwatch/report-system/internal/core/ports"
	"github.com/roadwatch/report-system/internal/metrics"
)

// SessionService is the session store: it tracks the active identity and its
// derived admin flag, and keeps the credential fields mirrored. State is
// rehydrated from the mirror at construction, so a restart resumes whatever
// session the previous run persisted.
type SessionService struct {
	mirror ports.Mirror
	logger zerolog.Logger

	mu       sync.Mutex
	identity *domain.Identity
	isAdmin  bool
}

func NewSessionService(ctx context.Context, mirror ports.Mirror, logger zerolog.Logger) *SessionService {
	s := &SessionService{mirror: mirror, logger: logger}
	s.rehydrate(ctx)
	return s
}

func (s *SessionService) rehydrate(ctx context.Context) {
	username := s.read(ctx, ports.KeyUsername)
	if s.read(ctx, ports.KeyIsLoggedIn) != "true" || username == "" {
		return
	}
	s.identity = &domain.Identity{Username: username}
	role := s.read(ctx, ports.KeyUserRole)
	s.isAdmin = role == domain.RoleAdmin || username == domain.AdminUsername
	s.logger.Info().Str("username", username).Bool("admin", s.isAdmin).Msg("session rehydrated")
}

// read returns the mirrored value for key, or "" when absent or unreadable.
func (s *SessionService) read(ctx context.Context, key string) string {
	v, err := s.mirror.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			s.logger.Warn().Err(err).Str("key", key).Msg("mirror read failed")
		}
		return ""
	}
	return v
}

// write persists fire-and-forget: failures are logged and counted, never
// propagated.
func (s *SessionService) write(ctx context.Context, key, value string) {
	if err := s.mirror.Set(ctx, key, value); err != nil {
		metrics.MirrorWriteErrorsTotal.WithLabelValues(key).Inc()
		s.logger.Error().Err(err).Str("key", key).Msg("mirror write failed")
	}
}

// Login validates the submitted pair against the built-in admin credentials
// or the single stored credential record. On success the identity is set and
// mirrored; on failure nothing changes and the caller owns the user-visible
// messaging.
func (s *SessionService) Login(ctx context.Context, username, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	valid := (username == domain.AdminUsername && password == domain.AdminPassword) ||
		(username != "" && username == s.read(ctx, ports.KeyUsername) && password == s.read(ctx, ports.KeyPassword))
	if !valid {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		s.logger.Info().Str("username", username).Msg("login rejected")
		return false
	}

	s.identity = &domain.Identity{Username: username}
	s.isAdmin = username == domain.AdminUsername

	s.write(ctx, ports.KeyIsLoggedIn, "true")
	s.write(ctx, ports.KeyUsername, username)
	if s.isAdmin {
		s.write(ctx, ports.KeyUserRole, domain.RoleAdmin)
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("username", username).Bool("admin", s.isAdmin).Msg("login accepted")
	return true
}

// Logout clears the login marker and role from the mirror, then the in-memory
// identity. Username and password stay mirrored so the same account can log
// back in. All-or-nothing: when a mirror delete fails the in-memory state is
// left untouched and false is returned.
func (s *SessionService) Logout(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.mirror.Delete(ctx, ports.KeyIsLoggedIn); err != nil {
		s.logger.Error().Err(err).Msg("logout: clearing login marker failed")
		return false
	}
	if err := s.mirror.Delete(ctx, ports.KeyUserRole); err != nil {
		s.logger.Error().Err(err).Msg("logout: clearing role failed")
		return false
	}

	s.identity = nil
	s.isAdmin = false
	s.logger.Info().Msg("logged out")
	return true
}

// Signup overwrites the single stored credential record. Single-tenant by
// construction: there is no duplicate check and the previous record is lost.
func (s *SessionService) Signup(ctx context.Context, username, email, password, role string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if role == "" {
		role = domain.RoleUser
	}
	s.write(ctx, ports.KeyUsername, username)
	s.write(ctx, ports.KeyEmail, email)
	s.write(ctx, ports.KeyPassword, password)
	s.write(ctx, ports.KeyUserRole, role)
	s.logger.Info().Str("username", username).Str("role", role).Msg("credentials registered")
	return true
}

// UpdateUserInfo changes the stored username and/or password, gated on the
// current password. The gate falls back to the built-in password when none
// was ever stored. On a mismatch nothing changes. The active identity follows
// a rename only while logged in; a rename never establishes a session.
func (s *SessionService) UpdateUserInfo(ctx context.Context, newUsername, currentPassword, newPassword string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.read(ctx, ports.KeyPassword)
	if stored == "" {
		stored = domain.AdminPassword
	}
	if currentPassword != stored {
		return false
	}

	if newUsername != "" {
		s.write(ctx, ports.KeyUsername, newUsername)
		if s.identity != nil {
			s.identity = &domain.Identity{Username: newUsername}
		}
	}
	if newPassword != "" {
		s.write(ctx, ports.KeyPassword, newPassword)
	}
	return true
}

// Identity returns a copy of the active identity, or nil when logged out.
func (s *SessionService) Identity() *domain.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

func (s *SessionService) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity != nil
}

func (s *SessionService) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isAdmin
}

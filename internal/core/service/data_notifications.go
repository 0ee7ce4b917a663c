package service

import (
	"context"
	"time"

	"github.com/roadwatch/report-system/internal/core/domain"
	"github.com/roadwatch/report-system/internal/core/ports"
	"github.com/roadwatch/report-system/internal/metrics"
)

// Notifications returns a copy of the feed, newest first.
func (s *DataService) Notifications() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// AddNotification prepends a record to the feed.
func (s *DataService) AddNotification(ctx context.Context, message string) domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.note(ctx, message)
}

// note appends a feed record; the store lock must be held. The id comes from
// the wall clock in milliseconds; sequential mutations can share a
// millisecond, so the id is bumped past the previous one to stay unique and
// monotonic.
func (s *DataService) note(ctx context.Context, message string) domain.Notification {
	now := time.Now()
	id := now.UnixMilli()
	if id <= s.lastNoteID {
		id = s.lastNoteID + 1
	}
	s.lastNoteID = id

	n := domain.Notification{
		ID:        id,
		Message:   message,
		Timestamp: now.Format(timestampLayout),
	}
	s.notifications = append([]domain.Notification{n}, s.notifications...)
	s.persist(ctx, ports.KeyNotifications, s.notifications)
	metrics.NotificationsEmittedTotal.Inc()
	return n
}

// ClearNotifications empties the feed unconditionally.
func (s *DataService) ClearNotifications(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = nil
	s.persist(ctx, ports.KeyNotifications, []domain.Notification{})
}

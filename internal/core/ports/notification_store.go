package ports

import (
	"context"

	"github.com/roadwatch/report-system/internal/core/domain"
)

// NotificationSink is the write side of the notification feed. Mutating
// operations on the other stores fan a human-readable record out through it.
type NotificationSink interface {
	AddNotification(ctx context.Context, message string) domain.Notification
}

// NotificationStore is the full feed surface: newest-first reads plus the
// bulk clear.
type NotificationStore interface {
	NotificationSink
	Notifications() []domain.Notification
	ClearNotifications(ctx context.Context)
}

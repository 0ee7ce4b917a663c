package ports

import (
	"context"

	"github.com/roadwatch/report-system/internal/core/domain"
)

// CommentStore keeps per-report comment lists, oldest first. Lists live under
// their own mirror keys, independently of the report they annotate: deleting
// a report does not remove its comments.
type CommentStore interface {
	Comments(ctx context.Context, reportID int) []domain.Comment
	// AddComment appends a user comment and fans a notification out through
	// the domain store. Blank text is rejected.
	AddComment(ctx context.Context, reportID int, text, user string) (*domain.Comment, error)
	// AddSystemComment records an automatic annotation (status change, edit).
	// System comments do not notify.
	AddSystemComment(ctx context.Context, reportID int, text string) (*domain.Comment, error)
}

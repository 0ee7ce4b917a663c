package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/roadwatch/report-system/internal/core/domain"
	"github.com/roadwatch/report-system/internal/core/ports"
	"github.com/roadwatch/report-system/internal/metrics"
)

// CommentService keeps the per-report comment lists. Each report's list lives
// under its own mirror key (report_comments_<id>) and is loaded on demand.
// Lists are not touched when the report itself is deleted; orphaned lists
// simply stay in the mirror.
type CommentService struct {
	mirror ports.Mirror
	sink   ports.NotificationSink
	logger zerolog.Logger

	mu     sync.Mutex
	lastID int64
}

func NewCommentService(mirror ports.Mirror, sink ports.NotificationSink, logger zerolog.Logger) *CommentService {
	return &CommentService{mirror: mirror, sink: sink, logger: logger}
}

// Comments returns the stored list for a report, oldest first.
func (s *CommentService) Comments(ctx context.Context, reportID int) []domain.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadComments(ctx, reportID)
}

func (s *CommentService) loadComments(ctx context.Context, reportID int) []domain.Comment {
	raw, err := s.mirror.Get(ctx, ports.CommentsKey(reportID))
	if err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			s.logger.Warn().Err(err).Int("report_id", reportID).Msg("comment read failed")
		}
		return nil
	}
	var comments []domain.Comment
	if err := json.Unmarshal([]byte(raw), &comments); err != nil {
		s.logger.Warn().Err(err).Int("report_id", reportID).Msg("comment list corrupt, ignoring")
		return nil
	}
	return comments
}

// AddComment appends a user comment and fans a notification out through the
// domain store. Blank text is rejected; an empty user attributes the comment
// to the admin operating the dashboard.
func (s *CommentService) AddComment(ctx context.Context, reportID int, text, user string) (*domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment text is required", domain.ErrInvalidInput)
	}
	if user == "" {
		user = "Admin"
	}

	c, err := s.append(ctx, reportID, domain.Comment{Text: text, User: user})
	if err != nil {
		return nil, err
	}
	if s.sink != nil {
		s.sink.AddNotification(ctx, fmt.Sprintf("A new comment has been added to report #%d", reportID))
	}
	return c, nil
}

// AddSystemComment records an automatic annotation, e.g. a status change or
// an edit made on the detail view. System comments do not notify.
func (s *CommentService) AddSystemComment(ctx context.Context, reportID int, text string) (*domain.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment text is required", domain.ErrInvalidInput)
	}
	return s.append(ctx, reportID, domain.Comment{Text: text, User: "System", IsSystem: true})
}

func (s *CommentService) append(ctx context.Context, reportID int, c domain.Comment) (*domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	c.ID = id
	c.Timestamp = now.Format(timestampLayout)

	comments := append(s.loadComments(ctx, reportID), c)
	raw, err := json.Marshal(comments)
	if err != nil {
		return nil, fmt.Errorf("marshal comments: %w", err)
	}
	key := ports.CommentsKey(reportID)
	if err := s.mirror.Set(ctx, key, string(raw)); err != nil {
		// Fire-and-forget like every non-logout mirror write.
		metrics.MirrorWriteErrorsTotal.WithLabelValues(key).Inc()
		s.logger.Error().Err(err).Str("key", key).Msg("mirror write failed")
	}
	return &c, nil
}

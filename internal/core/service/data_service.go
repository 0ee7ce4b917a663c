package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/roadwatch/report-system/internal/core/domain"
	"github.com/roadwatch/report-system/internal/core/ports"
	"github.com/roadwatch/report-system/internal/metrics"
)

const (
	dateLayout = "2006-01-02"
	// timestampLayout matches the human-readable format the feed shows.
	timestampLayout = "1/2/2006, 3:04:05 PM"
)

// DataService is the domain store: it owns the report and user collections,
// the notification feed, and the simulated telemetry counters. Every mutation
// is a transform of the in-memory collection followed by a mirror write of
// the whole collection and, usually, a notification append.
type DataService struct {
	mirror ports.Mirror
	logger zerolog.Logger

	mu            sync.Mutex
	reports       []domain.Report
	users         []domain.User
	notifications []domain.Notification
	dashboard     domain.DashboardStats
	charts        domain.ChartStats
	lastNoteID    int64
	rng           *rand.Rand
}

// NewDataService builds the store, rehydrating each collection from the
// mirror and falling back to the seed data for collections never persisted.
func NewDataService(ctx context.Context, mirror ports.Mirror, logger zerolog.Logger) *DataService {
	s := &DataService{
		mirror:    mirror,
		logger:    logger,
		dashboard: domain.DashboardStats{TotalIssues: 150, ActiveUsers: 75, RoadsMonitored: 20},
		charts:    domain.ChartStats{IssueTypes: [4]int{50, 30, 20, 10}, StatusDistribution: [2]int{70, 30}},
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if !s.load(ctx, ports.KeyReports, &s.reports) {
		s.reports = seedReports()
	}
	if !s.load(ctx, ports.KeyUsers, &s.users) {
		s.users = seedUsers()
	}
	s.load(ctx, ports.KeyNotifications, &s.notifications)
	for _, n := range s.notifications {
		if n.ID > s.lastNoteID {
			s.lastNoteID = n.ID
		}
	}
	return s
}

func seedReports() []domain.Report {
	return []domain.Report{
		{ID: 1, Location: "Tahrir Street", Type: domain.TypePothole, Date: "2025-03-10", Status: domain.StatusPending, Details: "Large pothole near the square", Priority: domain.PriorityHigh, AssignedTo: "Ahmed"},
		{ID: 2, Location: "Nasr Road", Type: domain.TypeCrack, Date: "2025-03-11", Status: domain.StatusResolved, Details: "Crack fixed by team", Priority: domain.PriorityMedium, AssignedTo: "Sara"},
		{ID: 3, Location: "October Bridge", Type: domain.TypeBump, Date: "2025-03-12", Status: domain.StatusPending, Details: "Dangerous bump causing accidents", Priority: domain.PriorityHigh},
		{ID: 4, Location: "Giza Street", Type: domain.TypeFlood, Date: "2025-03-13", Status: domain.StatusPending, Details: "Street flooded after rain", Priority: domain.PriorityMedium},
	}
}

func seedUsers() []domain.User {
	return []domain.User{
		{ID: 1, Name: "Elsayed Allaw", Email: "sayedallaw@gmail.com", Status: domain.UserActive, Joined: "2025-04-07"},
		{ID: 2, Name: "Test", Email: "test@example.com", Status: domain.UserInactive, Joined: "2025-05-05"},
	}
}

// load decodes the mirrored JSON for key into dst, reporting whether anything
// usable was found.
func (s *DataService) load(ctx context.Context, key string, dst any) bool {
	raw, err := s.mirror.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			s.logger.Warn().Err(err).Str("key", key).Msg("mirror read failed")
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("mirror value corrupt, ignoring")
		return false
	}
	return true
}

// persist mirrors a whole collection under key, fire-and-forget.
func (s *DataService) persist(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("mirror marshal failed")
		return
	}
	if err := s.mirror.Set(ctx, key, string(raw)); err != nil {
		metrics.MirrorWriteErrorsTotal.WithLabelValues(key).Inc()
		s.logger.Error().Err(err).Str("key", key).Msg("mirror write failed")
	}
}

// ---------------------------------------------------------------------------
// Reports
// ---------------------------------------------------------------------------

// Reports returns a copy of the report collection in insertion order.
func (s *DataService) Reports() []domain.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reportsCopy()
}

func (s *DataService) reportsCopy() []domain.Report {
	out := make([]domain.Report, len(s.reports))
	copy(out, s.reports)
	return out
}

// nextReportID assigns max(existing)+1, starting at 1 on an empty collection.
// After the max record is deleted its id is reused; ids of surviving records
// are never reassigned.
func nextReportID(reports []domain.Report) int {
	max := 0
	for _, r := range reports {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}

// findReport returns a pointer into the stored collection, or nil.
func findReport(reports []domain.Report, id int) *domain.Report {
	for i := range reports {
		if reports[i].ID == id {
			return &reports[i]
		}
	}
	return nil
}

// AddReport creates a report from caller-supplied fields. The id, creation
// date, and initial Pending status are forced by the store.
func (s *DataService) AddReport(ctx context.Context, input ports.CreateReportInput) (*domain.Report, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	report := domain.Report{
		ID:         nextReportID(s.reports),
		Location:   input.Location,
		Type:       input.Type,
		Date:       time.Now().Format(dateLayout),
		Status:     domain.StatusPending,
		Details:    input.Details,
		Priority:   input.Priority,
		AssignedTo: input.AssignedTo,
	}
	s.reports = append(s.reports, report)
	s.persist(ctx, ports.KeyReports, s.reports)
	s.note(ctx, fmt.Sprintf("New report added: %s", report.Location))

	metrics.ReportsCreatedTotal.WithLabelValues(string(report.Type)).Inc()
	s.logger.Info().Int("id", report.ID).Str("location", report.Location).Msg("report added")
	return &report, nil
}

// UpdateReportStatus flips the status of a single report. Unknown ids leave
// the collection untouched and skip the notification.
func (s *DataService) UpdateReportStatus(ctx context.Context, id int, status domain.ReportStatus) []domain.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r := findReport(s.reports, id); r != nil {
		r.Status = status
		s.persist(ctx, ports.KeyReports, s.reports)
		s.note(ctx, fmt.Sprintf("Report status updated: %s to %s", r.Location, status))
		metrics.ReportStatusUpdatesTotal.WithLabelValues(string(status)).Inc()
	}
	return s.reportsCopy()
}

// EditReport merges the provided fields into the report in place, preserving
// collection order. Nil fields stay as they were.
func (s *DataService) EditReport(ctx context.Context, id int, input ports.EditReportInput) []domain.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r := findReport(s.reports, id); r != nil {
		if input.Location != nil {
			r.Location = *input.Location
		}
		if input.Type != nil {
			r.Type = *input.Type
		}
		if input.Date != nil {
			r.Date = *input.Date
		}
		if input.Status != nil {
			r.Status = *input.Status
		}
		if input.Details != nil {
			r.Details = *input.Details
		}
		if input.Priority != nil {
			r.Priority = *input.Priority
		}
		if input.AssignedTo != nil {
			r.AssignedTo = *input.AssignedTo
		}
		s.persist(ctx, ports.KeyReports, s.reports)

		subject := "a report"
		if input.Location != nil && *input.Location != "" {
			subject = *input.Location
		}
		s.note(ctx, fmt.Sprintf("Report edited: %s", subject))
	}
	return s.reportsCopy()
}

// SetReportPriority changes the priority of a single report.
func (s *DataService) SetReportPriority(ctx context.Context, id int, priority domain.Priority) []domain.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r := findReport(s.reports, id); r != nil {
		r.Priority = priority
		s.persist(ctx, ports.KeyReports, s.reports)
		s.note(ctx, fmt.Sprintf("Report priority updated: %s to %s", r.Location, priority))
	}
	return s.reportsCopy()
}

// AssignReport sets or clears the assignee. An empty assignee reads as
// "Not specified" in the feed.
func (s *DataService) AssignReport(ctx context.Context, id int, assignedTo string) []domain.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r := findReport(s.reports, id); r != nil {
		r.AssignedTo = assignedTo
		s.persist(ctx, ports.KeyReports, s.reports)
		who := assignedTo
		if who == "" {
			who = "Not specified"
		}
		s.note(ctx, fmt.Sprintf("Report %s assigned to %s", r.Location, who))
	}
	return s.reportsCopy()
}

// DeleteReport removes a report by id. Missing ids are a no-op, not an error.
// Comments attached to the report stay in the mirror.
func (s *DataService) DeleteReport(ctx context.Context, id int) []domain.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r := findReport(s.reports, id); r != nil {
		location := r.Location
		kept := make([]domain.Report, 0, len(s.reports)-1)
		for _, rep := range s.reports {
			if rep.ID != id {
				kept = append(kept, rep)
			}
		}
		s.reports = kept
		s.persist(ctx, ports.KeyReports, s.reports)
		s.note(ctx, fmt.Sprintf("Report deleted: %s", location))
		metrics.ReportsDeletedTotal.Inc()
	}
	return s.reportsCopy()
}

// BulkUpdateReportStatus applies status to every listed id in one pass and
// appends exactly one aggregate notification naming the count.
func (s *DataService) BulkUpdateReportStatus(ctx context.Context, ids []int, status domain.ReportStatus) []domain.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[int]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	for i := range s.reports {
		if wanted[s.reports[i].ID] {
			s.reports[i].Status = status
		}
	}
	s.persist(ctx, ports.KeyReports, s.reports)
	s.note(ctx, fmt.Sprintf("%d reports updated to %s", len(ids), status))
	metrics.ReportStatusUpdatesTotal.WithLabelValues(string(status)).Add(float64(len(ids)))
	return s.reportsCopy()
}

// BulkDeleteReports removes every listed id and appends one aggregate
// notification naming the count of reports actually removed.
func (s *DataService) BulkDeleteReports(ctx context.Context, ids []int) []domain.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[int]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	kept := make([]domain.Report, 0, len(s.reports))
	removed := 0
	for _, r := range s.reports {
		if wanted[r.ID] {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	if removed > 0 {
		s.reports = kept
		s.persist(ctx, ports.KeyReports, s.reports)
		s.note(ctx, fmt.Sprintf("%d reports deleted", removed))
		metrics.ReportsDeletedTotal.Add(float64(removed))
	}
	return s.reportsCopy()
}

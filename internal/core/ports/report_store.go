package ports

import (
	"context"

	"github.com/roadwatch/report-system/internal/core/domain"
)

// CreateReportInput carries the caller-supplied fields for a new report.
// Lifecycle fields (id, date, status) are assigned by the store.
type CreateReportInput struct {
	Location   string            `validate:"required"`
	Type       domain.ReportType `validate:"required,oneof=Pothole Crack Bump Flood"`
	Details    string
	Priority   domain.Priority `validate:"omitempty,oneof=Low Medium High"`
	AssignedTo string
}

// EditReportInput is a partial update; nil fields are left untouched.
type EditReportInput struct {
	Location   *string
	Type       *domain.ReportType
	Date       *string
	Status     *domain.ReportStatus
	Details    *string
	Priority   *domain.Priority
	AssignedTo *string
}

// ReportStore owns the report collection. Every mutation mirrors the whole
// collection and appends a notification; mutations against unknown ids leave
// the collection untouched and skip the notification instead of failing.
// Mutating methods return the resulting collection as a defensive copy.
type ReportStore interface {
	Reports() []domain.Report
	AddReport(ctx context.Context, input CreateReportInput) (*domain.Report, error)
	UpdateReportStatus(ctx context.Context, id int, status domain.ReportStatus) []domain.Report
	EditReport(ctx context.Context, id int, input EditReportInput) []domain.Report
	SetReportPriority(ctx context.Context, id int, priority domain.Priority) []domain.Report
	AssignReport(ctx context.Context, id int, assignedTo string) []domain.Report
	DeleteReport(ctx context.Context, id int) []domain.Report
	BulkUpdateReportStatus(ctx context.Context, ids []int, status domain.ReportStatus) []domain.Report
	BulkDeleteReports(ctx context.Context, ids []int) []domain.Report
	// ExportReportsCSV renders the collection with the fixed column order
	// ID,Location,Type,Date,Status,Priority,Details.
	ExportReportsCSV() string
}

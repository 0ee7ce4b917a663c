package domain

import "errors"

// ReportType classifies the kind of road damage reported.
type ReportType string

const (
	TypePothole ReportType = "Pothole"
	TypeCrack   ReportType = "Crack"
	TypeBump    ReportType = "Bump"
	TypeFlood   ReportType = "Flood"
)

// ReportStatus is the lifecycle state of a report. New reports always start
// Pending.
type ReportStatus string

const (
	StatusPending  ReportStatus = "Pending"
	StatusResolved ReportStatus = "Resolved"
)

// Priority ranks how urgently a report needs attention.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

var ErrReportNotFound = errors.New("report not found")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidInput = errors.New("invalid input")

// Report is a single road-damage report. The JSON keys double as the
// persisted mirror format and must stay stable across versions.
type Report struct {
	ID       int        `json:"id"`
	Location string     `json:"location"`
	Type     ReportType `json:"type"`
	// Date is the ISO creation day (YYYY-MM-DD). It does not move after
	// creation unless explicitly edited.
	Date       string       `json:"date"`
	Status     ReportStatus `json:"status"`
	Details    string       `json:"details"`
	Priority   Priority     `json:"priority"`
	AssignedTo string       `json:"assignedTo"` // empty = unassigned
}

// Package metrics defines and registers all custom Prometheus metrics for the
// roadwatch dashboard core. It is the single source of truth for metric
// names, labels, and help strings.
//
// All instruments register with the default Prometheus registry via promauto;
// how (and whether) they are exposed is the consumer's concern.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "roadwatch"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Domain store metrics ──────────────────────────────────────────────────────

// ReportsCreatedTotal counts newly created reports.
// Label:
//   - type: the report type ("Pothole", "Crack", "Bump", "Flood")
var ReportsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_created_total",
		Help:      "Total number of reports created, by damage type.",
	},
	[]string{"type"},
)

// ReportsDeletedTotal counts deleted reports (single and bulk deletes).
var ReportsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_deleted_total",
		Help:      "Total number of reports deleted.",
	},
)

// ReportStatusUpdatesTotal counts status changes applied to reports.
// Label:
//   - status: the target status ("Pending" or "Resolved")
var ReportStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_status_updates_total",
		Help:      "Total number of report status updates, by target status.",
	},
	[]string{"status"},
)

// UsersCreatedTotal counts newly created end-user records.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of end-user records created.",
	},
)

// NotificationsEmittedTotal counts records appended to the notification feed.
var NotificationsEmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_emitted_total",
		Help:      "Total number of notifications appended to the feed.",
	},
)

// ── Persistence metrics ───────────────────────────────────────────────────────

// MirrorWriteErrorsTotal counts failed mirror writes. Writes are
// fire-and-forget, so this counter is the only trace a lost write leaves.
// Label:
//   - key: the mirror key whose write failed
var MirrorWriteErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mirror_write_errors_total",
		Help:      "Total number of failed mirror writes, by key.",
	},
	[]string{"key"},
)

// ── Telemetry metrics ─────────────────────────────────────────────────────────

// TelemetryTicksTotal counts completed telemetry refresh ticks.
var TelemetryTicksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "telemetry_ticks_total",
		Help:      "Total number of completed telemetry refresh ticks.",
	},
)

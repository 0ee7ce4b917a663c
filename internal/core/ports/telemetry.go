package ports

import (
	"context"
	"time"

	"github.com/roadwatch/report-system/internal/core/domain"
)

// TelemetryStore exposes the simulated dashboard and chart counters and their
// refresh tick. The counters are a liveliness simulation: they move on timers
// and must not be wired to the real collection sizes.
type TelemetryStore interface {
	DashboardStats() domain.DashboardStats
	ChartStats() domain.ChartStats
	RefreshDashboard()
	RefreshCharts()
	// StartTelemetry runs both refreshes on a repeating ticker until ctx is
	// cancelled. Views may additionally drive the refresh methods at their
	// own cadence.
	StartTelemetry(ctx context.Context, interval time.Duration)
}

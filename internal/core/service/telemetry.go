package service

import (
	"context"
	"time"

	"github.com/roadwatch/report-system/internal/core/domain"
	"github.com/roadwatch/report-system/internal/metrics"
)

// The telemetry counters simulate live field data: they move by small random
// increments on a timer and are never reconciled against the report or user
// collections. Wiring them to collection sizes would change what the
// dashboard shows.

const defaultTelemetryInterval = 5 * time.Second

func (s *DataService) DashboardStats() domain.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dashboard
}

func (s *DataService) ChartStats() domain.ChartStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.charts
}

// RefreshDashboard perturbs the coarse overview counters.
func (s *DataService) RefreshDashboard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dashboard.TotalIssues += s.rng.Intn(3)
	s.dashboard.ActiveUsers += s.rng.Intn(2)
	if s.rng.Float64() > 0.8 {
		s.dashboard.RoadsMonitored++
	}
}

// RefreshCharts perturbs the per-category chart counters.
func (s *DataService) RefreshCharts() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.charts.IssueTypes {
		s.charts.IssueTypes[i] += s.rng.Intn(3)
	}
	for i := range s.charts.StatusDistribution {
		s.charts.StatusDistribution[i] += s.rng.Intn(2)
	}
}

// StartTelemetry runs both refreshes on a repeating ticker until ctx is
// cancelled. Views may drive extra refreshes at their own cadence through the
// refresh methods; there is no coordination beyond the store lock.
func (s *DataService) StartTelemetry(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultTelemetryInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.RefreshDashboard()
				s.RefreshCharts()
				metrics.TelemetryTicksTotal.Inc()
			}
		}
	}()
}

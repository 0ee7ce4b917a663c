package service

import (
	"fmt"
	"strings"

	"github.com/roadwatch/report-system/internal/core/domain"
)

// ExportReportsCSV renders the report collection in the fixed column order
// ID,Location,Type,Date,Status,Priority,Details. Fields are comma-joined
// as-is: embedded commas are not escaped or quoted, matching the format
// existing consumers already parse. A missing priority exports as Medium.
func (s *DataService) ExportReportsCSV() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b strings.Builder
	b.WriteString("ID,Location,Type,Date,Status,Priority,Details\n")
	for _, r := range s.reports {
		priority := r.Priority
		if priority == "" {
			priority = domain.PriorityMedium
		}
		fmt.Fprintf(&b, "%d,%s,%s,%s,%s,%s,%s\n", r.ID, r.Location, r.Type, r.Date, r.Status, priority, r.Details)
	}
	return b.String()
}

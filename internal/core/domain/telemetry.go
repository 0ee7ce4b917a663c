package domain

// DashboardStats are the coarse liveliness counters on the dashboard
// overview cards. They are perturbed by the telemetry tick and deliberately
// never reconciled against the real collections.
type DashboardStats struct {
	TotalIssues    int `json:"totalIssues"`
	ActiveUsers    int `json:"activeUsers"`
	RoadsMonitored int `json:"roadsMonitored"`
}

// ChartStats back the statistics charts: one counter per report type in the
// order Pothole, Crack, Bump, Flood, and one per status slice in the order
// Pending, Resolved.
type ChartStats struct {
	IssueTypes         [4]int `json:"issueTypes"`
	StatusDistribution [2]int `json:"statusDistribution"`
}

package domain

// Comment annotates a report on its detail view. Comments live in their own
// mirror key per report and their lifecycle is independent of the report's:
// deleting a report leaves its comments behind.
type Comment struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
	User      string `json:"user"`
	IsSystem  bool   `json:"isSystem,omitempty"`
}

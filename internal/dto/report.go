package dto

// ReportResponse report with team name
type ReportResponse struct {
	ID          int64   `json:"id"`
	TeamID      int64   `json:"team_id"`
	TeamName    string  `json:"team_name"`
	Title       string  `json:"title"`
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
	Status      string  `json:"status"`
	DeliveredOn *string `json:"delivered_on"`
}

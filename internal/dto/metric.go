package dto

// ── metrics ──

// MetricListQuery list filters
type MetricListQuery struct {
	TeamID     *int64  `form:"team_id"     binding:"omitempty,gt=0"`
	MetricType *string `form:"metric_type"`
}

// CreateMetricRequest create metric body
type CreateMetricRequest struct {
	AthleteID  int64    `json:"athlete_id"  binding:"required,gt=0"`
	MetricDate string   `json:"metric_date" binding:"required,isodate"`
	MetricType string   `json:"metric_type" binding:"required,max=80"`
	Value      *float64 `json:"value"       binding:"required"`
	Unit       string   `json:"unit"        binding:"required,max=20"`
}

// MetricResponse metric with athlete and team names
type MetricResponse struct {
	ID         int64   `json:"id"`
	AthleteID  int64   `json:"athlete_id"`
	MetricDate string  `json:"metric_date"`
	MetricType string  `json:"metric_type"`
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	TeamName   string  `json:"team_name"`
}

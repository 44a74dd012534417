package dto

// ── teams ──

// CreateTeamRequest create team body
type CreateTeamRequest struct {
	Name         string `json:"name"          binding:"required,max=120"`
	ShortName    string `json:"short_name"    binding:"required,max=20"`
	Level        string `json:"level"         binding:"required,max=60"`
	Coach        string `json:"coach"         binding:"required,max=120"`
	TrainingDays string `json:"training_days" binding:"required,max=120"`
	FocusTheme   string `json:"focus_theme"   binding:"required,max=200"`
}

// TeamResponse team with derived summary fields
type TeamResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	ShortName       string  `json:"short_name"`
	Level           string  `json:"level"`
	Coach           string  `json:"coach"`
	TrainingDays    string  `json:"training_days"`
	FocusTheme      string  `json:"focus_theme"`
	AthleteCount    int64   `json:"athlete_count"`
	UpcomingSession *string `json:"upcoming_session"`
}

// TeamInfo plain team record
type TeamInfo struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ShortName    string `json:"short_name"`
	Level        string `json:"level"`
	Coach        string `json:"coach"`
	TrainingDays string `json:"training_days"`
	FocusTheme   string `json:"focus_theme"`
}

// TeamDetailResponse team with its recent sessions and session count per status
type TeamDetailResponse struct {
	Team            TeamInfo          `json:"team"`
	RecentSessions  []SessionResponse `json:"recent_sessions"`
	StatusBreakdown map[string]int64  `json:"status_breakdown"`
}

package model

// Athlete team member (athletes)
type Athlete struct {
	ID               int64    `gorm:"primaryKey;autoIncrement"   json:"id"`
	FirstName        string   `gorm:"type:varchar(80);not null"  json:"first_name"`
	LastName         string   `gorm:"type:varchar(80);not null"  json:"last_name"`
	BirthYear        int      `gorm:"not null"                   json:"birth_year"`
	PrimaryStroke    string   `gorm:"type:varchar(40);not null"  json:"primary_stroke"`
	BestEvent        string   `gorm:"type:varchar(60);not null"  json:"best_event"`
	PersonalBest     *float64 `json:"personal_best"`
	PersonalBestUnit *string  `gorm:"type:varchar(20)"           json:"personal_best_unit"`
	FocusNote        *string  `gorm:"type:text"                  json:"focus_note"`
	TeamID           int64    `gorm:"not null;index"             json:"team_id"`
}

// TableName maps the table.
func (Athlete) TableName() string { return "athletes" }

// FullName is "first last" as shown in the activity feed.
func (a *Athlete) FullName() string {
	return a.FirstName + " " + a.LastName
}

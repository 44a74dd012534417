package model

// Team swim squad (teams)
type Team struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"     json:"id"`
	Name         string `gorm:"type:varchar(120);not null"   json:"name"`
	ShortName    string `gorm:"type:varchar(20);not null"    json:"short_name"`
	Level        string `gorm:"type:varchar(60);not null"    json:"level"`
	Coach        string `gorm:"type:varchar(120);not null"   json:"coach"`
	TrainingDays string `gorm:"type:varchar(120);not null"   json:"training_days"`
	FocusTheme   string `gorm:"type:varchar(200);not null"   json:"focus_theme"`
}

// TableName maps the table.
func (Team) TableName() string { return "teams" }

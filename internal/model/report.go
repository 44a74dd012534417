package model

// Report periodic team report (reports)
type Report struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"   json:"id"`
	TeamID      int64  `gorm:"not null"                   json:"team_id"`
	Title       string `gorm:"type:varchar(160);not null" json:"title"`
	PeriodStart Date   `gorm:"type:date;not null"         json:"period_start"`
	PeriodEnd   Date   `gorm:"type:date;not null"         json:"period_end"`
	Status      string `gorm:"type:varchar(30);not null"  json:"status"`
	DeliveredOn *Date  `gorm:"type:date"                  json:"delivered_on"`
}

// TableName maps the table.
func (Report) TableName() string { return "reports" }

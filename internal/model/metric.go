package model

// Metric dated performance measurement (metrics)
type Metric struct {
	ID         int64   `gorm:"primaryKey;autoIncrement"  json:"id"`
	AthleteID  int64   `gorm:"not null;index"            json:"athlete_id"`
	MetricDate Date    `gorm:"type:date;not null;index"  json:"metric_date"`
	MetricType string  `gorm:"type:varchar(80);not null" json:"metric_type"`
	Value      float64 `gorm:"not null"                  json:"value"`
	Unit       string  `gorm:"type:varchar(20);not null" json:"unit"`
}

// TableName maps the table.
func (Metric) TableName() string { return "metrics" }

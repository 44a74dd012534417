package model

// All lists every entity in dependency order, for AutoMigrate in tests and tools.
func All() []interface{} {
	return []interface{}{
		&Team{},
		&Athlete{},
		&Session{},
		&Attendance{},
		&Metric{},
		&Report{},
		&CoachNote{},
	}
}

// Package model contain gorm model for recording data to database
package model

// MigrateAble is array of model instance, use for migrating database
var MigrateAble []interface{}

// ApplicationPairIndex is the partial unique index that keeps one live application per (job, employee).
const ApplicationPairIndex = "idx_applications_job_employee_live"

// Indexes are created after AutoMigrate; gorm tags cannot express partial indexes.
var Indexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS ` + ApplicationPairIndex +
		` ON applications (job_id, employee_id) WHERE status <> 'Withdrawn'`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_required_skills ON jobs USING GIN (required_skills)`,
	`CREATE INDEX IF NOT EXISTS idx_questions_job_order ON questions (job_id, sort_order)`,
}

func init() {
	MigrateAble = append(
		MigrateAble,
		&Admin{},
		&Company{},
		&Employee{},
		&Job{},
		&Question{},
		&Application{},
		&Answer{},
		&ReviewNote{},
		&TimelineEntry{},
	)
}

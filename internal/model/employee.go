package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/alimadkour96/4a8lny/internal/errs"
)

// Enumerations of employee profile fields
var (
	ExperienceLevels = []string{"Entry", "Junior", "Mid", "Senior", "Lead", "Executive"}
	DegreeLevels     = []string{"High School", "Bachelor", "Master", "PhD", "Other"}
	Availabilities   = []string{"Immediately", "2 weeks", "1 month", "3 months", "Flexible"}
)

// Experience describes how long and at what level an employee has worked.
type Experience struct {
	Years int    `gorm:"default:0" json:"years"`
	Level string `gorm:"type:text" json:"level"`
}

// Education is the highest completed education of an employee.
type Education struct {
	Degree         string `gorm:"type:text" json:"degree"`
	Field          string `gorm:"type:text" json:"field"`
	Institution    string `gorm:"type:text" json:"institution"`
	GraduationYear int    `json:"graduation_year,omitempty"`
}

// EditableEmployeeInfo is the part of an employee profile that can be updated.
type EditableEmployeeInfo struct {
	Name           string         `gorm:"type:text;not null" json:"name"`
	JobType        string         `gorm:"type:text;not null" json:"job_type"`
	Skills         pq.StringArray `gorm:"type:text[]" json:"skills"`
	Experience     Experience     `gorm:"embedded;embeddedPrefix:experience_" json:"experience"`
	Education      Education      `gorm:"embedded;embeddedPrefix:education_" json:"education"`
	CV             string         `gorm:"type:text" json:"cv"`
	Portfolio      string         `gorm:"type:text" json:"portfolio"`
	ExpectedSalary *float64       `json:"expected_salary,omitempty"`
	Location       string         `gorm:"type:text" json:"location"`
	IsRemote       bool           `gorm:"default:false" json:"is_remote"`
	Availability   string         `gorm:"type:text;default:'Flexible'" json:"availability"`
}

// Employee is gorm model for a job seeker
type Employee struct {
	Base
	Credentials `gorm:"embedded"`
	EditableEmployeeInfo

	// AppliedJobIDs is a read index of the jobs this employee applied to.
	// The applications table is the source of truth.
	AppliedJobIDs pq.StringArray `gorm:"column:applications;type:text[];default:'{}'" json:"applications"`

	IsActive   bool      `gorm:"default:true" json:"is_active"`
	IsVerified bool      `gorm:"default:false" json:"is_verified"`
	LastActive time.Time `gorm:"autoCreateTime" json:"last_active"`
}

// Normalize trims the free-text fields and lower-cases the email.
func (e *Employee) Normalize() {
	e.normalize()
	e.Name = strings.TrimSpace(e.Name)
	e.JobType = strings.TrimSpace(e.JobType)
	e.Location = strings.TrimSpace(e.Location)
	e.Skills = trimAll(e.Skills)
	if e.Availability == "" {
		e.Availability = "Flexible"
	}
}

// Validate checks the employee constraints.
func (e *Employee) Validate() error {
	if err := e.validate(); err != nil {
		return err
	}
	if err := lengthBetween("Name", e.Name, 2, 100); err != nil {
		return err
	}
	if err := lengthBetween("Job type", e.JobType, 2, 0); err != nil {
		return err
	}
	for _, s := range e.Skills {
		if err := lengthBetween("Skill", s, 2, 0); err != nil {
			return err
		}
	}
	if e.Experience.Years < 0 {
		return errs.Validation("Experience years cannot be negative")
	}
	if e.Experience.Level != "" {
		if err := oneOf("Experience level", e.Experience.Level, ExperienceLevels); err != nil {
			return err
		}
	}
	if e.Education.Degree != "" {
		if err := oneOf("Degree", e.Education.Degree, DegreeLevels); err != nil {
			return err
		}
	}
	if y := e.Education.GraduationYear; y != 0 && y < 1950 {
		return errs.Validation("Graduation year must be 1950 or later")
	}
	if e.ExpectedSalary != nil {
		if err := nonNegative("Expected salary", *e.ExpectedSalary); err != nil {
			return err
		}
	}
	return firstErr(
		optionalURL("CV", e.CV),
		optionalURL("portfolio", e.Portfolio),
		oneOf("Availability", e.Availability, Availabilities),
	)
}

// ApplicationsCount is the number of jobs this employee applied to.
func (e *Employee) ApplicationsCount() int {
	return len(e.AppliedJobIDs)
}

// ExperienceDisplay renders the experience as "<years> years (<level>)".
func (e *Employee) ExperienceDisplay() string {
	if e.Experience.Level == "" {
		return fmt.Sprintf("%d years", e.Experience.Years)
	}
	return fmt.Sprintf("%d years (%s)", e.Experience.Years, e.Experience.Level)
}

// EmployeeResponse is an employee with its derived fields.
type EmployeeResponse struct {
	*Employee
	ApplicationsCount int    `json:"applications_count"`
	ExperienceDisplay string `json:"experience_display"`
}

// ToEmployeeResponse attaches the derived fields.
func (e *Employee) ToEmployeeResponse() EmployeeResponse {
	return EmployeeResponse{
		Employee:          e,
		ApplicationsCount: e.ApplicationsCount(),
		ExperienceDisplay: e.ExperienceDisplay(),
	}
}

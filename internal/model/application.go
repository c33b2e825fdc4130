package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alimadkour96/4a8lny/internal/errs"
)

// Application statuses
const (
	// ApplicationStatusPending indicates that the application is waiting for a first review
	ApplicationStatusPending = "Pending"
	// ApplicationStatusUnderReview indicates that the company is reviewing the application
	ApplicationStatusUnderReview = "Under Review"
	// ApplicationStatusShortlisted indicates that the applicant made the short list
	ApplicationStatusShortlisted = "Shortlisted"
	// ApplicationStatusInterviewScheduled indicates that an interview has been arranged
	ApplicationStatusInterviewScheduled = "Interview Scheduled"
	// ApplicationStatusInterviewCompleted indicates that the interview took place
	ApplicationStatusInterviewCompleted = "Interview Completed"
	// ApplicationStatusRejected indicates that the application has been rejected
	ApplicationStatusRejected = "Rejected"
	// ApplicationStatusWithdrawn indicates that the applicant withdrew
	ApplicationStatusWithdrawn = "Withdrawn"
	// ApplicationStatusHired indicates that the applicant got the job
	ApplicationStatusHired = "Hired"
)

// ApplicationStatuses lists every known status.
var ApplicationStatuses = []string{
	ApplicationStatusPending,
	ApplicationStatusUnderReview,
	ApplicationStatusShortlisted,
	ApplicationStatusInterviewScheduled,
	ApplicationStatusInterviewCompleted,
	ApplicationStatusRejected,
	ApplicationStatusWithdrawn,
	ApplicationStatusHired,
}

// InterviewTypes are the allowed interview formats.
var InterviewTypes = []string{"Phone", "Video", "In-person", "Technical Test"}

// Timeline actions
const (
	TimelineApplied            = "Applied"
	TimelineStatusChanged      = "Status Changed"
	TimelineInterviewScheduled = "Interview Scheduled"
	TimelineWithdrawn          = "Withdrawn"
)

// InterviewDetails is the interview arrangement of an application
type InterviewDetails struct {
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	InterviewType string     `gorm:"type:text" json:"interview_type,omitempty"`
	InterviewerID *uuid.UUID `gorm:"type:uuid" json:"interviewer_id,omitempty"`
	Location      string     `gorm:"type:text" json:"location,omitempty"`
	Notes         string     `gorm:"type:text" json:"notes,omitempty"`
}

// Validate checks the interview constraints.
func (d *InterviewDetails) Validate() error {
	if d.InterviewType == "" {
		d.InterviewType = "Video"
	}
	if err := oneOf("Interview type", d.InterviewType, InterviewTypes); err != nil {
		return err
	}
	return maxLength("Interview notes", d.Notes, 1000)
}

// Application represents a job application record
type Application struct {
	Base
	JobID      uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"job_id"`
	Job        *Job      `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"job,omitempty"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"employee_id"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"employee,omitempty"`

	CV             string   `gorm:"type:text" json:"cv"`
	Portfolio      string   `gorm:"type:text" json:"portfolio"`
	CoverLetter    string   `gorm:"type:text" json:"cover_letter"`
	ExpectedSalary *float64 `json:"expected_salary,omitempty"`

	Status           string           `gorm:"type:text;not null;default:'Pending';index" json:"status"`
	ApplicationScore *int             `json:"application_score"`
	ScreeningScore   *int             `json:"screening_score"`
	InterviewDetails InterviewDetails `gorm:"embedded;embeddedPrefix:interview_" json:"interview_details"`
	IsActive         bool             `gorm:"default:true" json:"is_active"`

	Answers     []Answer        `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
	ReviewNotes []ReviewNote    `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE" json:"review_notes,omitempty"`
	Timeline    []TimelineEntry `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE" json:"timeline,omitempty"`
}

// Validate checks the application constraints.
func (a *Application) Validate() error {
	if a.JobID == uuid.Nil || a.EmployeeID == uuid.Nil {
		return errs.Validation("Application must reference a job and an employee")
	}
	if a.Status == "" {
		a.Status = ApplicationStatusPending
	}
	if err := firstErr(
		optionalURL("CV", a.CV),
		optionalURL("portfolio", a.Portfolio),
		maxLength("Cover letter", a.CoverLetter, 2000),
		oneOf("Status", a.Status, ApplicationStatuses),
		scoreInRange("Application score", a.ApplicationScore),
		scoreInRange("Screening score", a.ScreeningScore),
	); err != nil {
		return err
	}
	if a.ExpectedSalary != nil {
		if err := nonNegative("Expected salary", *a.ExpectedSalary); err != nil {
			return err
		}
	}
	if a.InterviewDetails.ScheduledDate != nil {
		return a.InterviewDetails.Validate()
	}
	return nil
}

// ApplicationAge renders how long ago the application was submitted.
func (a *Application) ApplicationAge(now time.Time) string {
	days := int(now.Sub(a.CreatedAt).Hours() / 24)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

// StatusColor is the display color of the current status.
func (a *Application) StatusColor() string {
	switch a.Status {
	case ApplicationStatusPending:
		return "yellow"
	case ApplicationStatusUnderReview:
		return "blue"
	case ApplicationStatusShortlisted:
		return "purple"
	case ApplicationStatusInterviewScheduled, ApplicationStatusInterviewCompleted:
		return "orange"
	case ApplicationStatusHired:
		return "green"
	case ApplicationStatusRejected:
		return "red"
	default:
		return "gray"
	}
}

// ApplicationResponse is an application with its derived display fields
type ApplicationResponse struct {
	*Application
	ApplicationAge string `json:"application_age"`
	StatusColor    string `json:"status_color"`
}

// ToApplicationResponse attaches the derived fields evaluated at now.
func (a *Application) ToApplicationResponse(now time.Time) ApplicationResponse {
	return ApplicationResponse{
		Application:    a,
		ApplicationAge: a.ApplicationAge(now),
		StatusColor:    a.StatusColor(),
	}
}

// ReviewNote is a reviewer's rated note on an application
type ReviewNote struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	ApplicationID uuid.UUID `gorm:"type:uuid;not null;index" json:"application_id"`
	ReviewerID    uuid.UUID `gorm:"type:uuid;not null" json:"reviewer_id"`
	Note          string    `gorm:"type:text" json:"note"`
	Rating        int       `gorm:"not null" json:"rating"`
	CreatedAt     time.Time `json:"created_at"`
}

// Validate checks the review note constraints.
func (n *ReviewNote) Validate() error {
	if n.ReviewerID == uuid.Nil {
		return errs.Validation("Reviewer is required")
	}
	if n.Rating < 1 || n.Rating > 5 {
		return errs.Validation("Rating must be between 1 and 5")
	}
	return maxLength("Note", n.Note, 500)
}

// TimelineEntry is one append-only event in the history of an application
type TimelineEntry struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	ApplicationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"application_id"`
	Action        string     `gorm:"type:text;not null" json:"action"`
	FromStatus    string     `gorm:"type:text" json:"from_status,omitempty"`
	ToStatus      string     `gorm:"type:text" json:"to_status,omitempty"`
	PerformedBy   *uuid.UUID `gorm:"type:uuid" json:"performed_by,omitempty"`
	Notes         string     `gorm:"type:text" json:"notes,omitempty"`
	Timestamp     time.Time  `gorm:"not null;index" json:"timestamp"`
}

// TableName keeps timeline rows in application_timeline.
func (TimelineEntry) TableName() string {
	return "application_timeline"
}

func scoreInRange(field string, v *int) error {
	if v != nil && (*v < 0 || *v > 100) {
		return errs.Validation("%s must be between 0 and 100", field)
	}
	return nil
}

package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/alimadkour96/4a8lny/internal/errs"
)

// Job enumerations
var (
	JobTypes                 = []string{"Full-time", "Part-time", "Freelance", "Contract", "Internship"}
	RequirementEducations    = []string{"High School", "Bachelor", "Master", "PhD", "Any"}
	DefaultJobType           = "Full-time"
	DefaultExperienceLevel   = "Junior"
	DefaultRequiredEducation = "Any"
)

// SalaryRange is the offered salary interval of a job
type SalaryRange struct {
	Min float64 `gorm:"default:0" json:"min"`
	Max float64 `gorm:"default:0" json:"max"`
}

// JobRequirements are the formal requirements of a job
type JobRequirements struct {
	Education         string         `gorm:"type:text" json:"education"`
	YearsOfExperience int            `gorm:"default:0" json:"years_of_experience"`
	Certifications    pq.StringArray `gorm:"type:text[]" json:"certifications"`
}

// EditableJobInfo is part of job post that can be edited
type EditableJobInfo struct {
	Title               string          `gorm:"type:text;not null" json:"title"`
	Description         string          `gorm:"type:text;not null" json:"description"`
	RequiredSkills      pq.StringArray  `gorm:"type:text[]" json:"required_skills"`
	SalaryRange         SalaryRange     `gorm:"embedded;embeddedPrefix:salary_" json:"salary_range"`
	JobType             string          `gorm:"type:text;default:'Full-time'" json:"job_type"`
	ExperienceLevel     string          `gorm:"type:text;default:'Junior'" json:"experience_level"`
	Location            string          `gorm:"type:text;not null" json:"location"`
	IsRemote            bool            `gorm:"default:false" json:"is_remote"`
	IsUrgent            bool            `gorm:"default:false" json:"is_urgent"`
	Benefits            pq.StringArray  `gorm:"type:text[]" json:"benefits"`
	Requirements        JobRequirements `gorm:"embedded;embeddedPrefix:requirement_" json:"requirements"`
	ApplicationDeadline *time.Time      `gorm:"type:timestamp" json:"application_deadline,omitempty"`
}

// Job is gorm model for store job post data in DB
type Job struct {
	Base
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"company_id"`
	Company   *Company  `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	EditableJobInfo
	IsActive          bool       `gorm:"default:true;index" json:"is_active"`
	Views             int64      `gorm:"default:0" json:"views"`
	ApplicationsCount int64      `gorm:"default:0" json:"applications_count"`
	Questions         []Question `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

// Normalize trims text fields and fills enum defaults.
func (j *Job) Normalize() {
	j.Title = strings.TrimSpace(j.Title)
	j.Description = strings.TrimSpace(j.Description)
	j.Location = strings.TrimSpace(j.Location)
	j.RequiredSkills = trimAll(j.RequiredSkills)
	j.Benefits = trimAll(j.Benefits)
	if j.JobType == "" {
		j.JobType = DefaultJobType
	}
	if j.ExperienceLevel == "" {
		j.ExperienceLevel = DefaultExperienceLevel
	}
	if j.Requirements.Education == "" {
		j.Requirements.Education = DefaultRequiredEducation
	}
}

// Validate checks the job constraints.
func (j *Job) Validate() error {
	if j.CompanyID == uuid.Nil {
		return errs.Validation("Company is required")
	}
	if err := lengthBetween("Job title", j.Title, 3, 100); err != nil {
		return err
	}
	if err := lengthBetween("Job description", j.Description, 50, 2000); err != nil {
		return err
	}
	if err := firstErr(
		nonNegative("Minimum salary", j.SalaryRange.Min),
		nonNegative("Maximum salary", j.SalaryRange.Max),
	); err != nil {
		return err
	}
	if j.SalaryRange.Min > j.SalaryRange.Max {
		return errs.Validation("Minimum salary cannot exceed maximum salary")
	}
	if j.Requirements.YearsOfExperience < 0 {
		return errs.Validation("Years of experience cannot be negative")
	}
	return firstErr(
		oneOf("Job type", j.JobType, JobTypes),
		oneOf("Experience level", j.ExperienceLevel, ExperienceLevels),
		oneOf("Required education", j.Requirements.Education, RequirementEducations),
		required("Job location", j.Location),
	)
}

// IsExpired reports whether the application deadline has passed at now.
func (j *Job) IsExpired(now time.Time) bool {
	return j.ApplicationDeadline != nil && j.ApplicationDeadline.Before(now)
}

// AcceptsApplications reports whether the job is active and not expired at now.
func (j *Job) AcceptsApplications(now time.Time) bool {
	return j.IsActive && !j.IsExpired(now)
}

// SalaryDisplay renders the salary range as "$min - $max".
func (j *Job) SalaryDisplay() string {
	return fmt.Sprintf("$%s - $%s", groupThousands(j.SalaryRange.Min), groupThousands(j.SalaryRange.Max))
}

// JobResponse is the response struct for job post with derived fields
type JobResponse struct {
	*Job
	IsExpired     bool   `json:"is_expired"`
	SalaryDisplay string `json:"salary_display"`
}

// ToJobResponse attaches the derived fields evaluated at now.
// Screening questions are returned without their correct answers.
func (j *Job) ToJobResponse(now time.Time) JobResponse {
	pub := *j
	pub.Questions = PublicQuestions(j.Questions)
	return JobResponse{
		Job:           &pub,
		IsExpired:     j.IsExpired(now),
		SalaryDisplay: j.SalaryDisplay(),
	}
}

func groupThousands(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

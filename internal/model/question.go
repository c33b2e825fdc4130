package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/alimadkour96/4a8lny/internal/errs"
)

// Question types
const (
	QuestionMultipleChoice = "Multiple-Choice"
	QuestionTrueFalse      = "True-False"
	QuestionShortAnswer    = "Short-Answer"
	QuestionEssay          = "Essay"
	QuestionTechnical      = "Technical"
)

// Question enumerations
var (
	QuestionTypes = []string{QuestionMultipleChoice, QuestionTrueFalse, QuestionShortAnswer, QuestionEssay, QuestionTechnical}
	Difficulties  = []string{"Easy", "Medium", "Hard"}
)

// Question is a screening question attached to a job
type Question struct {
	Base
	JobID         uuid.UUID      `gorm:"type:uuid;not null;index;<-:create" json:"job_id"`
	CompanyID     uuid.UUID      `gorm:"type:uuid;not null;index;<-:create" json:"company_id"`
	Text          string         `gorm:"type:text;not null" json:"question_text"`
	Type          string         `gorm:"type:text;not null" json:"question_type"`
	Options       pq.StringArray `gorm:"type:text[]" json:"options"`
	CorrectAnswer string         `gorm:"type:text" json:"correct_answer,omitempty"`
	Points        int            `gorm:"default:1" json:"points"`
	Difficulty    string         `gorm:"type:text;default:'Medium'" json:"difficulty"`
	Order         int            `gorm:"column:sort_order;default:0" json:"order"`
	IsActive      bool           `gorm:"default:true" json:"is_active"`
}

// PublicQuestions returns copies of qs safe to show applicants.
func PublicQuestions(qs []Question) []Question {
	if qs == nil {
		return nil
	}
	out := make([]Question, len(qs))
	for i, q := range qs {
		q.CorrectAnswer = ""
		out[i] = q
	}
	return out
}

// Normalize trims the text fields and fills defaults.
func (q *Question) Normalize() {
	q.Text = strings.TrimSpace(q.Text)
	q.CorrectAnswer = strings.TrimSpace(q.CorrectAnswer)
	q.Options = trimAll(q.Options)
	if q.Points == 0 {
		q.Points = 1
	}
	if q.Difficulty == "" {
		q.Difficulty = "Medium"
	}
}

// Validate checks the question constraints, including that a multiple-choice
// question has at least two options and its correct answer is one of them.
func (q *Question) Validate() error {
	if q.JobID == uuid.Nil || q.CompanyID == uuid.Nil {
		return errs.Validation("Question must belong to a job and a company")
	}
	if err := required("Question text", q.Text); err != nil {
		return err
	}
	if err := oneOf("Question type", q.Type, QuestionTypes); err != nil {
		return err
	}
	if q.Points < 1 {
		return errs.Validation("Points must be at least 1")
	}
	if err := oneOf("Difficulty", q.Difficulty, Difficulties); err != nil {
		return err
	}

	switch q.Type {
	case QuestionMultipleChoice:
		if len(q.Options) < 2 {
			return errs.Validation("Multiple choice questions must have at least 2 options")
		}
		if !containsString(q.Options, q.CorrectAnswer) {
			return errs.Validation("Correct answer must be one of the options")
		}
	case QuestionTrueFalse:
		if q.CorrectAnswer != "" && q.CorrectAnswer != "True" && q.CorrectAnswer != "False" {
			return errs.Validation("Correct answer of a true/false question must be True or False")
		}
	}
	return nil
}

// AutoGradable reports whether answers to q can be evaluated by comparing to the correct answer.
func (q *Question) AutoGradable() bool {
	return q.CorrectAnswer != "" && (q.Type == QuestionMultipleChoice || q.Type == QuestionTrueFalse)
}

// Answer is an applicant's response to a screening question
type Answer struct {
	Base
	QuestionID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_answers_question_applicant;<-:create" json:"question_id"`
	Question      *Question `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"question,omitempty"`
	ApplicantID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_answers_question_applicant;<-:create" json:"applicant_id"`
	ApplicationID uuid.UUID `gorm:"type:uuid;not null;index" json:"application_id"`
	AnswerText    string    `gorm:"type:text" json:"answer_text"`

	// IsCorrect stays nil until the answer has been evaluated.
	IsCorrect  *bool      `json:"is_correct"`
	Score      *int       `json:"score"`
	Feedback   string     `gorm:"type:text" json:"feedback"`
	ReviewedBy *uuid.UUID `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`

	IsSubmitted bool       `gorm:"default:false" json:"is_submitted"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
}

// Validate checks the answer constraints.
func (a *Answer) Validate() error {
	if a.QuestionID == uuid.Nil || a.ApplicantID == uuid.Nil || a.ApplicationID == uuid.Nil {
		return errs.Validation("Answer must reference a question, an applicant and an application")
	}
	if a.Score != nil && (*a.Score < 0 || *a.Score > 100) {
		return errs.Validation("Score must be between 0 and 100")
	}
	if a.IsSubmitted && strings.TrimSpace(a.AnswerText) == "" {
		return errs.Validation("Answer text is required")
	}
	return nil
}

// IsEvaluated reports whether a reviewer has scored the answer.
func (a *Answer) IsEvaluated() bool {
	return a.ReviewedAt != nil && a.Score != nil
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

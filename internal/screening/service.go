// Package screening manages the screening questions of a job, the applicants'
// answers to them and the weighted screening score fed back into applications.
package screening

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alimadkour96/4a8lny/internal/application"
	"github.com/alimadkour96/4a8lny/internal/errs"
	"github.com/alimadkour96/4a8lny/internal/model"
)

//go:generate mockgen -source=./service.go -package=screeningmocks -destination=mocks/service.mock.go Service

// AnswerRequest is an applicant's answer to one question.
type AnswerRequest struct {
	ApplicantID   uuid.UUID `json:"applicant_id" binding:"required"`
	ApplicationID uuid.UUID `json:"application_id" binding:"required"`
	AnswerText    string    `json:"answer_text" binding:"required"`
}

// EvaluateRequest scores a submitted answer. With Auto set on an auto-gradable
// question, IsCorrect is derived from the correct answer and Score defaults to 100 or 0.
type EvaluateRequest struct {
	ReviewerID uuid.UUID `json:"reviewer_id" binding:"required"`
	IsCorrect  *bool     `json:"is_correct"`
	Score      *int      `json:"score"`
	Feedback   string    `json:"feedback"`
	Auto       bool      `json:"auto"`
}

// Service is the screening workflow.
type Service interface {
	AddQuestion(ctx context.Context, jobID, companyID uuid.UUID, q model.Question) (*model.Question, error)
	ListQuestions(ctx context.Context, jobID uuid.UUID) ([]model.Question, error)
	RecordAnswer(ctx context.Context, questionID uuid.UUID, req AnswerRequest) (*model.Answer, error)
	EvaluateAnswer(ctx context.Context, answerID uuid.UUID, req EvaluateRequest) (*model.Answer, error)
	ListAnswers(ctx context.Context, questionID uuid.UUID) ([]model.Answer, error)
	AggregateApplicationScore(ctx context.Context, applicationID uuid.UUID) (*int, error)
}

type service struct {
	repo Repository
	lg   *zap.Logger
	now  func() time.Time
}

// NewService returns the screening workflow backed by repo.
func NewService(repo Repository, lg *zap.Logger) Service {
	if lg == nil {
		lg = zap.NewNop()
	}
	return &service{repo: repo, lg: lg.Named("screening"), now: time.Now}
}

func (s *service) AddQuestion(ctx context.Context, jobID, companyID uuid.UUID, q model.Question) (*model.Question, error) {
	err := s.repo.Transaction(ctx, func(repo Repository) error {
		job, err := repo.FindJob(ctx, jobID)
		if err != nil {
			return err
		}
		if job.CompanyID != companyID {
			return errs.Unauthorized("Only the company that posted the job can add questions")
		}
		highest, err := repo.MaxQuestionOrder(ctx, jobID)
		if err != nil {
			return err
		}
		q.ID = uuid.Nil
		q.JobID = jobID
		q.CompanyID = companyID
		q.Order = highest + 1
		q.IsActive = true
		return repo.CreateQuestion(ctx, &q)
	})
	if err != nil {
		return nil, err
	}
	s.lg.Info("question added", zap.Stringer("job_id", jobID), zap.Stringer("question_id", q.ID), zap.Int("order", q.Order))
	return &q, nil
}

func (s *service) ListQuestions(ctx context.Context, jobID uuid.UUID) ([]model.Question, error) {
	if _, err := s.repo.FindJob(ctx, jobID); err != nil {
		return nil, err
	}
	return s.repo.ListQuestions(ctx, jobID)
}

func (s *service) RecordAnswer(ctx context.Context, questionID uuid.UUID, req AnswerRequest) (*model.Answer, error) {
	text := strings.TrimSpace(req.AnswerText)
	if text == "" {
		return nil, errs.Validation("Answer text is required")
	}

	var answer *model.Answer
	err := s.repo.Transaction(ctx, func(repo Repository) error {
		q, err := repo.FindQuestion(ctx, questionID)
		if err != nil {
			return err
		}
		if !q.IsActive {
			return errs.NotFound("Question not found")
		}
		app, err := repo.FindApplication(ctx, req.ApplicationID)
		if err != nil {
			return err
		}
		if app.EmployeeID != req.ApplicantID {
			return errs.Unauthorized("Application does not belong to this applicant")
		}
		if app.JobID != q.JobID {
			return errs.Validation("Question does not belong to the job of this application")
		}

		now := s.now()
		existing, err := repo.FindAnswer(ctx, questionID, req.ApplicantID)
		switch {
		case err == nil && existing.IsSubmitted:
			return errs.Conflict("Answer already submitted")
		case err == nil:
			existing.ApplicationID = app.ID
			existing.AnswerText = text
			existing.IsSubmitted = true
			existing.SubmittedAt = &now
			answer = existing
			return repo.SaveAnswer(ctx, existing)
		case errs.Is(err, errs.KindNotFound):
			answer = &model.Answer{
				QuestionID:    questionID,
				ApplicantID:   req.ApplicantID,
				ApplicationID: app.ID,
				AnswerText:    text,
				IsSubmitted:   true,
				SubmittedAt:   &now,
			}
			return repo.CreateAnswer(ctx, answer)
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return answer, nil
}

func (s *service) EvaluateAnswer(ctx context.Context, answerID uuid.UUID, req EvaluateRequest) (*model.Answer, error) {
	if req.Score != nil && (*req.Score < 0 || *req.Score > 100) {
		return nil, errs.Validation("Score must be between 0 and 100")
	}

	var answer *model.Answer
	err := s.repo.Transaction(ctx, func(repo Repository) error {
		a, err := repo.FindAnswerForUpdate(ctx, answerID)
		if err != nil {
			return err
		}
		if !a.IsSubmitted {
			return errs.Validation("Answer has not been submitted")
		}

		correct, score := req.IsCorrect, req.Score
		if req.Auto && a.Question != nil && a.Question.AutoGradable() {
			ok, auto := autoGrade(a.Question, a.AnswerText)
			correct = &ok
			if score == nil {
				score = &auto
			}
		}
		if correct == nil {
			return errs.Validation("isCorrect is required unless the answer can be graded automatically")
		}
		if score == nil {
			v := 0
			if *correct {
				v = 100
			}
			score = &v
		}

		now := s.now()
		reviewer := req.ReviewerID
		a.IsCorrect = correct
		a.Score = score
		a.Feedback = req.Feedback
		a.ReviewedBy = &reviewer
		a.ReviewedAt = &now
		if err := repo.SaveAnswer(ctx, a); err != nil {
			return err
		}
		answer = a
		_, err = syncScores(ctx, repo, a.ApplicationID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.lg.Info("answer evaluated",
		zap.Stringer("answer_id", answer.ID),
		zap.Boolp("is_correct", answer.IsCorrect),
		zap.Intp("score", answer.Score))
	return answer, nil
}

func (s *service) ListAnswers(ctx context.Context, questionID uuid.UUID) ([]model.Answer, error) {
	if _, err := s.repo.FindQuestion(ctx, questionID); err != nil {
		return nil, err
	}
	return s.repo.ListSubmittedAnswers(ctx, questionID)
}

func (s *service) AggregateApplicationScore(ctx context.Context, applicationID uuid.UUID) (*int, error) {
	if _, err := s.repo.FindApplication(ctx, applicationID); err != nil {
		return nil, err
	}
	answers, err := s.repo.ListEvaluatedAnswers(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	return WeightedScore(answers), nil
}

// syncScores recomputes the screening score of the application and the overall
// score that follows from it. Reviewer ratings take precedence over screening.
// The application row is locked first so a concurrent review note is never
// overwritten with a score computed from stale notes.
func syncScores(ctx context.Context, repo Repository, applicationID uuid.UUID) (*int, error) {
	if _, err := repo.FindApplicationForUpdate(ctx, applicationID); err != nil {
		return nil, err
	}
	answers, err := repo.ListEvaluatedAnswers(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	screening := WeightedScore(answers)
	notes, err := repo.ListReviewNotes(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	overall := application.EffectiveScore(application.RatingScore(notes), screening)
	if err := repo.SetApplicationScores(ctx, applicationID, screening, overall); err != nil {
		return nil, err
	}
	return screening, nil
}

// Package application implements the job application lifecycle: submission,
// the status state machine, interviews, review notes, withdrawal and the
// derived per-employee application index.
package application

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alimadkour96/4a8lny/internal/errs"
	"github.com/alimadkour96/4a8lny/internal/model"
	"github.com/alimadkour96/4a8lny/internal/utilities"
)

//go:generate mockgen -source=./service.go -package=appmocks -destination=mocks/service.mock.go Service

// SubmitRequest is what an employee sends to apply for a job.
type SubmitRequest struct {
	JobID          uuid.UUID `json:"job_id" binding:"required"`
	EmployeeID     uuid.UUID `json:"employee_id" binding:"required"`
	CV             string    `json:"cv"`
	Portfolio      string    `json:"portfolio"`
	CoverLetter    string    `json:"cover_letter"`
	ExpectedSalary *float64  `json:"expected_salary"`
}

// Service is the application workflow.
type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*model.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, performedBy uuid.UUID, notes string) (*model.Application, error)
	ScheduleInterview(ctx context.Context, id uuid.UUID, details model.InterviewDetails, performedBy uuid.UUID) (*model.Application, error)
	AddReviewNote(ctx context.Context, id uuid.UUID, reviewerID uuid.UUID, note string, rating int) (*model.Application, error)
	Withdraw(ctx context.Context, id uuid.UUID, performedBy *uuid.UUID) (*model.Application, error)

	Get(ctx context.Context, id uuid.UUID) (*model.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID, status string) ([]model.Application, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.Application, error)
	ListRequiringReview(ctx context.Context) ([]model.Application, error)
	Timeline(ctx context.Context, id uuid.UUID) ([]model.TimelineEntry, error)

	// RebuildApplicationIndex recomputes Employee.AppliedJobIDs from the applications table.
	RebuildApplicationIndex(ctx context.Context, employeeID uuid.UUID) error
}

type service struct {
	repo Repository
	lg   *zap.Logger
	now  func() time.Time
}

// NewService returns the application workflow backed by repo.
func NewService(repo Repository, lg *zap.Logger) Service {
	if lg == nil {
		lg = zap.NewNop()
	}
	return &service{
		repo: repo,
		lg:   lg.Named("application"),
		now:  time.Now,
	}
}

func (s *service) Submit(ctx context.Context, req SubmitRequest) (*model.Application, error) {
	now := s.now()
	var app *model.Application

	err := s.repo.Transaction(ctx, func(repo Repository) error {
		job, err := repo.FindJob(ctx, req.JobID)
		if err != nil {
			return err
		}
		if !job.AcceptsApplications(now) {
			return errs.NotFound("Job is no longer accepting applications")
		}
		if _, err := repo.FindEmployee(ctx, req.EmployeeID); err != nil {
			return err
		}

		live, err := repo.HasLiveApplication(ctx, req.JobID, req.EmployeeID)
		if err != nil {
			return err
		}
		if live {
			return errs.DuplicateApplication("You have already applied to this job")
		}

		employeeID := req.EmployeeID
		app = &model.Application{
			JobID:          req.JobID,
			EmployeeID:     req.EmployeeID,
			CV:             req.CV,
			Portfolio:      req.Portfolio,
			CoverLetter:    req.CoverLetter,
			ExpectedSalary: req.ExpectedSalary,
			Status:         model.ApplicationStatusPending,
			IsActive:       true,
			Timeline: []model.TimelineEntry{{
				Action:      model.TimelineApplied,
				ToStatus:    model.ApplicationStatusPending,
				PerformedBy: &employeeID,
				Timestamp:   now,
			}},
		}
		if err := repo.Create(ctx, app); err != nil {
			return err
		}

		questions, err := repo.FindActiveQuestions(ctx, req.JobID)
		if err != nil {
			return err
		}
		if err := repo.SeedAnswers(ctx, app, questions); err != nil {
			return err
		}
		if err := repo.IncrementApplicationsCount(ctx, req.JobID); err != nil {
			return err
		}
		return repo.AppendAppliedJob(ctx, req.EmployeeID, req.JobID)
	})
	if err != nil {
		return nil, err
	}

	s.lg.Info("application submitted",
		zap.Stringer("application_id", app.ID),
		zap.Stringer("job_id", app.JobID),
		zap.Stringer("employee_id", app.EmployeeID))
	return app, nil
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status string, performedBy uuid.UUID, notes string) (*model.Application, error) {
	if !utilities.Contains(model.ApplicationStatuses, status) {
		return nil, errs.Validation("Invalid status: %s", status)
	}
	return s.transition(ctx, id, func(app *model.Application) (*model.TimelineEntry, error) {
		if err := CheckTransition(app.Status, status); err != nil {
			return nil, err
		}
		entry := s.entry(app, model.TimelineStatusChanged, status, &performedBy, notes)
		app.Status = status
		if status == model.ApplicationStatusWithdrawn {
			app.IsActive = false
		}
		return entry, nil
	})
}

func (s *service) ScheduleInterview(ctx context.Context, id uuid.UUID, details model.InterviewDetails, performedBy uuid.UUID) (*model.Application, error) {
	if details.ScheduledDate == nil {
		return nil, errs.Validation("Interview date is required")
	}
	if err := details.Validate(); err != nil {
		return nil, err
	}
	return s.transition(ctx, id, func(app *model.Application) (*model.TimelineEntry, error) {
		if app.Status != model.ApplicationStatusShortlisted {
			return nil, errs.InvalidTransition("Cannot schedule an interview for an application in status %s", app.Status)
		}
		entry := s.entry(app, model.TimelineInterviewScheduled, model.ApplicationStatusInterviewScheduled, &performedBy, details.Notes)
		app.Status = model.ApplicationStatusInterviewScheduled
		app.InterviewDetails = details
		return entry, nil
	})
}

func (s *service) Withdraw(ctx context.Context, id uuid.UUID, performedBy *uuid.UUID) (*model.Application, error) {
	return s.transition(ctx, id, func(app *model.Application) (*model.TimelineEntry, error) {
		if !CanWithdraw(app.Status) {
			return nil, errs.InvalidTransition("Cannot withdraw an application in status %s", app.Status)
		}
		entry := s.entry(app, model.TimelineWithdrawn, model.ApplicationStatusWithdrawn, performedBy, "")
		app.Status = model.ApplicationStatusWithdrawn
		app.IsActive = false
		return entry, nil
	})
}

// transition locks the application, lets change mutate it and appends the returned timeline entry.
func (s *service) transition(ctx context.Context, id uuid.UUID,
	change func(app *model.Application) (*model.TimelineEntry, error)) (*model.Application, error) {
	var app *model.Application
	err := s.repo.Transaction(ctx, func(repo Repository) error {
		var err error
		app, err = repo.FindForUpdate(ctx, id)
		if err != nil {
			return err
		}
		entry, err := change(app)
		if err != nil {
			return err
		}
		if err := repo.Save(ctx, app); err != nil {
			return err
		}
		return repo.AppendTimeline(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.lg.Info("application status changed",
		zap.Stringer("application_id", app.ID),
		zap.String("status", app.Status))
	return app, nil
}

func (s *service) entry(app *model.Application, action, to string, by *uuid.UUID, notes string) *model.TimelineEntry {
	return &model.TimelineEntry{
		ApplicationID: app.ID,
		Action:        action,
		FromStatus:    app.Status,
		ToStatus:      to,
		PerformedBy:   by,
		Notes:         notes,
		Timestamp:     s.now(),
	}
}

func (s *service) AddReviewNote(ctx context.Context, id uuid.UUID, reviewerID uuid.UUID, note string, rating int) (*model.Application, error) {
	n := &model.ReviewNote{
		ApplicationID: id,
		ReviewerID:    reviewerID,
		Note:          note,
		Rating:        rating,
		CreatedAt:     s.now(),
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}

	var app *model.Application
	err := s.repo.Transaction(ctx, func(repo Repository) error {
		var err error
		app, err = repo.FindForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := repo.AddReviewNote(ctx, n); err != nil {
			return err
		}
		notes, err := repo.ListReviewNotes(ctx, id)
		if err != nil {
			return err
		}
		app.ApplicationScore = EffectiveScore(RatingScore(notes), app.ScreeningScore)
		app.ReviewNotes = notes
		return repo.Save(ctx, app)
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	return s.repo.FindDetailed(ctx, id)
}

func (s *service) ListByJob(ctx context.Context, jobID uuid.UUID, status string) ([]model.Application, error) {
	q := ListQuery{JobID: jobID}
	if status != "" {
		if !utilities.Contains(model.ApplicationStatuses, status) {
			return nil, errs.Validation("Invalid status: %s", status)
		}
		q.Statuses = []string{status}
	}
	return s.repo.List(ctx, q)
}

func (s *service) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.Application, error) {
	return s.repo.List(ctx, ListQuery{EmployeeID: employeeID})
}

func (s *service) ListRequiringReview(ctx context.Context) ([]model.Application, error) {
	return s.repo.List(ctx, ListQuery{
		Statuses:   []string{model.ApplicationStatusPending, model.ApplicationStatusUnderReview},
		ActiveOnly: true,
	})
}

func (s *service) Timeline(ctx context.Context, id uuid.UUID) ([]model.TimelineEntry, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListTimeline(ctx, id)
}

func (s *service) RebuildApplicationIndex(ctx context.Context, employeeID uuid.UUID) error {
	return s.repo.Transaction(ctx, func(repo Repository) error {
		if _, err := repo.FindEmployee(ctx, employeeID); err != nil {
			return err
		}
		apps, err := repo.List(ctx, ListQuery{EmployeeID: employeeID})
		if err != nil {
			return err
		}
		// List is newest first; the index keeps application order.
		ids := make([]uuid.UUID, 0, len(apps))
		seen := make(map[uuid.UUID]struct{}, len(apps))
		for i := len(apps) - 1; i >= 0; i-- {
			id := apps[i].JobID
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
		if err := repo.SetAppliedJobs(ctx, employeeID, ids); err != nil {
			return err
		}
		s.lg.Info("rebuilt application index",
			zap.Stringer("employee_id", employeeID),
			zap.Strings("job_ids", slice.Map(ids, func(_ int, id uuid.UUID) string { return id.String() })))
		return nil
	})
}

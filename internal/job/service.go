// Package job is the job directory: publishing, editing and searching job posts.
package job

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alimadkour96/4a8lny/internal/errs"
	"github.com/alimadkour96/4a8lny/internal/model"
	"github.com/alimadkour96/4a8lny/internal/utilities"
)

//go:generate mockgen -source=./service.go -package=jobmocks -destination=mocks/service.mock.go Service

// MaxPageLimit caps SearchFilter.Limit.
const MaxPageLimit = 100

// CreateRequest is a new job post with its optional screening questions.
type CreateRequest struct {
	CompanyID uuid.UUID `json:"company_id" binding:"required"`
	model.EditableJobInfo
	Questions []model.Question `json:"questions"`
}

// SearchResult is one page of a search.
type SearchResult struct {
	Jobs   []model.Job
	Total  int64
	Offset int
	Limit  int
}

// Service is the job directory.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*model.Job, error)
	// Get returns the job and counts the view.
	Get(ctx context.Context, id uuid.UUID) (*model.Job, error)
	Update(ctx context.Context, id, actorID uuid.UUID, patch model.EditableJobInfo) (*model.Job, error)
	Deactivate(ctx context.Context, id, actorID uuid.UUID) (*model.Job, error)
	Delete(ctx context.Context, id, actorID uuid.UUID) error
	Search(ctx context.Context, f SearchFilter) (*SearchResult, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]model.Job, error)
}

// Options tune the directory.
type Options struct {
	// ApplicationWindow is the deadline given to jobs created without one.
	ApplicationWindow time.Duration
	DefaultPageLimit  int
}

type service struct {
	repo Repository
	lg   *zap.Logger
	opts Options
	now  func() time.Time
}

// NewService returns the job directory backed by repo.
func NewService(repo Repository, opts Options, lg *zap.Logger) Service {
	if lg == nil {
		lg = zap.NewNop()
	}
	if opts.ApplicationWindow <= 0 {
		opts.ApplicationWindow = 30 * 24 * time.Hour
	}
	if opts.DefaultPageLimit <= 0 {
		opts.DefaultPageLimit = 20
	}
	return &service{repo: repo, lg: lg.Named("job"), opts: opts, now: time.Now}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*model.Job, error) {
	j := &model.Job{
		CompanyID:       req.CompanyID,
		EditableJobInfo: req.EditableJobInfo,
		IsActive:        true,
	}
	if j.ApplicationDeadline == nil {
		deadline := s.now().Add(s.opts.ApplicationWindow)
		j.ApplicationDeadline = &deadline
	}

	err := s.repo.Transaction(ctx, func(repo Repository) error {
		company, err := repo.FindCompany(ctx, req.CompanyID)
		if err != nil {
			return err
		}
		if !company.IsActive {
			return errs.Unauthorized("Company account is deactivated")
		}
		if err := repo.Create(ctx, j); err != nil {
			return err
		}
		for i, q := range req.Questions {
			q.ID = uuid.Nil
			q.JobID = j.ID
			q.CompanyID = j.CompanyID
			q.Order = i + 1
			q.IsActive = true
			if err := repo.CreateQuestion(ctx, &q); err != nil {
				return err
			}
			j.Questions = append(j.Questions, q)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.lg.Info("job created",
		zap.Stringer("job_id", j.ID),
		zap.Stringer("company_id", j.CompanyID),
		zap.Int("questions", len(j.Questions)))
	return j, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	if err := s.repo.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.FindDetailed(ctx, id)
}

func (s *service) Update(ctx context.Context, id, actorID uuid.UUID, patch model.EditableJobInfo) (*model.Job, error) {
	return s.repo.Update(ctx, id, func(j *model.Job) error {
		if err := s.authorize(ctx, j, actorID); err != nil {
			return err
		}
		utilities.MergeNonEmpty(&j.EditableJobInfo, &patch)
		return nil
	})
}

func (s *service) Deactivate(ctx context.Context, id, actorID uuid.UUID) (*model.Job, error) {
	j, err := s.repo.Update(ctx, id, func(j *model.Job) error {
		if err := s.authorize(ctx, j, actorID); err != nil {
			return err
		}
		j.IsActive = false
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.lg.Info("job deactivated", zap.Stringer("job_id", id), zap.Stringer("actor_id", actorID))
	return j, nil
}

func (s *service) Delete(ctx context.Context, id, actorID uuid.UUID) error {
	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, j, actorID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.lg.Info("job deleted", zap.Stringer("job_id", id), zap.Stringer("actor_id", actorID))
	return nil
}

// authorize allows the owning company and any admin.
func (s *service) authorize(ctx context.Context, j *model.Job, actorID uuid.UUID) error {
	if j.CompanyID == actorID {
		return nil
	}
	admin, err := s.repo.IsAdmin(ctx, actorID)
	if err != nil {
		return err
	}
	if !admin {
		return errs.Unauthorized("You are not allowed to modify this job post")
	}
	return nil
}

func (s *service) Search(ctx context.Context, f SearchFilter) (*SearchResult, error) {
	if f.Offset < 0 {
		return nil, errs.Validation("Offset cannot be negative")
	}
	if f.SalaryMin != nil && f.SalaryMax != nil && *f.SalaryMin > *f.SalaryMax {
		return nil, errs.Validation("Minimum salary cannot exceed maximum salary")
	}
	for _, t := range f.JobTypes {
		if !utilities.Contains(model.JobTypes, t) {
			return nil, errs.Validation("Invalid job type: %s", t)
		}
	}
	for _, l := range f.ExperienceLevels {
		if !utilities.Contains(model.ExperienceLevels, l) {
			return nil, errs.Validation("Invalid experience level: %s", l)
		}
	}
	if f.Limit <= 0 {
		f.Limit = s.opts.DefaultPageLimit
	}
	f.Limit = min(f.Limit, MaxPageLimit)

	now := s.now()
	res := &SearchResult{Offset: f.Offset, Limit: f.Limit}
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		res.Jobs, err = s.repo.Search(ctx, f, now)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Total, err = s.repo.Count(ctx, f, now)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]model.Job, error) {
	if _, err := s.repo.FindCompany(ctx, companyID); err != nil {
		return nil, err
	}
	return s.repo.ListByCompany(ctx, companyID)
}

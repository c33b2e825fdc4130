package job

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/alimadkour96/4a8lny/internal/model"
	"github.com/alimadkour96/4a8lny/internal/store"
)

//go:generate mockgen -source=./repository.go -package=jobmocks -destination=mocks/repository.mock.go Repository

// SearchFilter narrows the job search. Zero fields do not filter.
type SearchFilter struct {
	Search           string
	Skills           []string
	SalaryMin        *float64
	SalaryMax        *float64
	JobTypes         []string
	ExperienceLevels []string
	Location         string
	IsRemote         *bool
	CompanyID        uuid.UUID

	// IncludeInactive also returns deactivated and expired jobs.
	IncludeInactive bool

	Offset int
	Limit  int
}

// Repository is the persistence of jobs.
type Repository interface {
	Transaction(ctx context.Context, fn func(repo Repository) error) error

	FindCompany(ctx context.Context, companyID uuid.UUID) (*model.Company, error)
	IsAdmin(ctx context.Context, id uuid.UUID) (bool, error)

	Create(ctx context.Context, j *model.Job) error
	CreateQuestion(ctx context.Context, q *model.Question) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error)
	// FindDetailed loads the job with its company and active questions in order.
	FindDetailed(ctx context.Context, id uuid.UUID) (*model.Job, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	Update(ctx context.Context, id uuid.UUID, patch func(j *model.Job) error) (*model.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Search(ctx context.Context, f SearchFilter, now time.Time) ([]model.Job, error)
	Count(ctx context.Context, f SearchFilter, now time.Time) (int64, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]model.Job, error)
}

// GormRepository implements Repository on PostgreSQL.
type GormRepository struct {
	db        *gorm.DB
	jobs      *store.Store[model.Job]
	companies *store.Store[model.Company]
	admins    *store.Store[model.Admin]
	questions *store.Store[model.Question]
}

// NewRepository returns the gorm-backed Repository.
func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{
		db:        db,
		jobs:      store.New[model.Job](db, nil),
		companies: store.New[model.Company](db, nil),
		admins:    store.New[model.Admin](db, nil),
		questions: store.New[model.Question](db, nil),
	}
}

func (r *GormRepository) Transaction(ctx context.Context, fn func(repo Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

func (r *GormRepository) FindCompany(ctx context.Context, companyID uuid.UUID) (*model.Company, error) {
	return r.companies.FindByID(ctx, companyID)
}

func (r *GormRepository) IsAdmin(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.admins.Count(ctx, store.Filter{Where: []store.Cond{store.Eq("id", id)}})
	return n > 0, err
}

func (r *GormRepository) Create(ctx context.Context, j *model.Job) error {
	return r.jobs.Create(ctx, j)
}

func (r *GormRepository) CreateQuestion(ctx context.Context, q *model.Question) error {
	return r.questions.Create(ctx, q)
}

func (r *GormRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	return r.jobs.FindByID(ctx, id)
}

func (r *GormRepository) FindDetailed(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var j model.Job
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("sort_order ASC")
		}).
		First(&j, "id = ?", id).Error
	if err != nil {
		return nil, store.Translate(err, "Job")
	}
	return &j, nil
}

func (r *GormRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return r.jobs.Increment(ctx, id, "views", 1)
}

func (r *GormRepository) Update(ctx context.Context, id uuid.UUID, patch func(j *model.Job) error) (*model.Job, error) {
	return r.jobs.UpdateByID(ctx, id, patch)
}

func (r *GormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.jobs.DeleteByID(ctx, id)
}

func (r *GormRepository) Search(ctx context.Context, f SearchFilter, now time.Time) ([]model.Job, error) {
	return r.jobs.FindMany(ctx, store.Filter{
		Where:   f.conds(now),
		Preload: []string{"Company"},
		Offset:  f.Offset,
		Limit:   f.Limit,
	}, store.Desc("is_urgent"), store.Desc("created_at"))
}

func (r *GormRepository) Count(ctx context.Context, f SearchFilter, now time.Time) (int64, error) {
	return r.jobs.Count(ctx, store.Filter{Where: f.conds(now)})
}

func (r *GormRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]model.Job, error) {
	return r.jobs.FindMany(ctx, store.Filter{Where: []store.Cond{store.Eq("company_id", companyID)}},
		store.Desc("created_at"))
}

// conds translates the filter into SQL conditions on the jobs table.
func (f SearchFilter) conds(now time.Time) []store.Cond {
	var cs []store.Cond
	if !f.IncludeInactive {
		cs = append(cs,
			store.Eq("is_active", true),
			store.Where("(application_deadline IS NULL OR application_deadline >= ?)", now))
	}
	if f.CompanyID != uuid.Nil {
		cs = append(cs, store.Eq("company_id", f.CompanyID))
	}
	if f.Search != "" {
		cs = append(cs, store.Where("title ILIKE ?", "%"+f.Search+"%"))
	}
	if len(f.Skills) > 0 {
		cs = append(cs, store.Where("required_skills && ?", pq.StringArray(f.Skills)))
	}
	if f.SalaryMin != nil {
		cs = append(cs, store.Where("salary_max >= ?", *f.SalaryMin))
	}
	if f.SalaryMax != nil {
		cs = append(cs, store.Where("salary_min <= ?", *f.SalaryMax))
	}
	if len(f.JobTypes) > 0 {
		cs = append(cs, store.Where("job_type IN ?", f.JobTypes))
	}
	if len(f.ExperienceLevels) > 0 {
		cs = append(cs, store.Where("experience_level IN ?", f.ExperienceLevels))
	}
	if f.Location != "" {
		cs = append(cs, store.Where("location ILIKE ?", "%"+f.Location+"%"))
	}
	if f.IsRemote != nil {
		cs = append(cs, store.Eq("is_remote", *f.IsRemote))
	}
	return cs
}

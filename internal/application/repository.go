package application

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/alimadkour96/4a8lny/internal/model"
	"github.com/alimadkour96/4a8lny/internal/store"
)

//go:generate mockgen -source=./repository.go -package=appmocks -destination=mocks/repository.mock.go Repository

// ListQuery selects applications. Zero fields do not filter.
type ListQuery struct {
	JobID      uuid.UUID
	EmployeeID uuid.UUID
	Statuses   []string
	ActiveOnly bool
}

// Repository is the persistence the workflow runs on.
// Every method called inside Transaction uses the same database transaction.
type Repository interface {
	Transaction(ctx context.Context, fn func(repo Repository) error) error

	FindJob(ctx context.Context, jobID uuid.UUID) (*model.Job, error)
	FindEmployee(ctx context.Context, employeeID uuid.UUID) (*model.Employee, error)
	FindActiveQuestions(ctx context.Context, jobID uuid.UUID) ([]model.Question, error)

	// HasLiveApplication reports whether a non-withdrawn application exists for the pair.
	HasLiveApplication(ctx context.Context, jobID, employeeID uuid.UUID) (bool, error)
	// Create inserts app together with its timeline entries.
	Create(ctx context.Context, app *model.Application) error
	// SeedAnswers creates one unsubmitted answer per question. An applicant's earlier
	// answer is relinked to app and cleared.
	SeedAnswers(ctx context.Context, app *model.Application, questions []model.Question) error
	IncrementApplicationsCount(ctx context.Context, jobID uuid.UUID) error
	AppendAppliedJob(ctx context.Context, employeeID, jobID uuid.UUID) error
	SetAppliedJobs(ctx context.Context, employeeID uuid.UUID, jobIDs []uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error)
	// FindForUpdate loads the application and locks its row until the transaction ends.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*model.Application, error)
	FindDetailed(ctx context.Context, id uuid.UUID) (*model.Application, error)
	Save(ctx context.Context, app *model.Application) error
	List(ctx context.Context, q ListQuery) ([]model.Application, error)

	AppendTimeline(ctx context.Context, entry *model.TimelineEntry) error
	ListTimeline(ctx context.Context, applicationID uuid.UUID) ([]model.TimelineEntry, error)
	AddReviewNote(ctx context.Context, note *model.ReviewNote) error
	ListReviewNotes(ctx context.Context, applicationID uuid.UUID) ([]model.ReviewNote, error)
}

// GormRepository implements Repository on PostgreSQL.
type GormRepository struct {
	db        *gorm.DB
	apps      *store.Store[model.Application]
	jobs      *store.Store[model.Job]
	employees *store.Store[model.Employee]
	notes     *store.Store[model.ReviewNote]
	timeline  *store.Store[model.TimelineEntry]
}

// NewRepository returns the gorm-backed Repository.
func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{
		db:        db,
		apps:      store.New[model.Application](db, nil),
		jobs:      store.New[model.Job](db, nil),
		employees: store.New[model.Employee](db, nil),
		notes:     store.New[model.ReviewNote](db, nil),
		timeline:  store.New[model.TimelineEntry](db, nil),
	}
}

// Transaction runs fn with a repository bound to one database transaction.
func (r *GormRepository) Transaction(ctx context.Context, fn func(repo Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

func (r *GormRepository) FindJob(ctx context.Context, jobID uuid.UUID) (*model.Job, error) {
	return r.jobs.FindByID(ctx, jobID)
}

func (r *GormRepository) FindEmployee(ctx context.Context, employeeID uuid.UUID) (*model.Employee, error) {
	return r.employees.FindByID(ctx, employeeID)
}

func (r *GormRepository) FindActiveQuestions(ctx context.Context, jobID uuid.UUID) ([]model.Question, error) {
	var qs []model.Question
	err := r.db.WithContext(ctx).
		Where("job_id = ? AND is_active = ?", jobID, true).
		Order("sort_order ASC").
		Find(&qs).Error
	return qs, store.Translate(err, "Question")
}

func (r *GormRepository) HasLiveApplication(ctx context.Context, jobID, employeeID uuid.UUID) (bool, error) {
	n, err := r.apps.Count(ctx, store.Filter{Where: []store.Cond{
		store.Eq("job_id", jobID),
		store.Eq("employee_id", employeeID),
		store.Where("status <> ?", model.ApplicationStatusWithdrawn),
	}})
	return n > 0, err
}

func (r *GormRepository) Create(ctx context.Context, app *model.Application) error {
	return r.apps.Create(ctx, app)
}

func (r *GormRepository) SeedAnswers(ctx context.Context, app *model.Application, questions []model.Question) error {
	if len(questions) == 0 {
		return nil
	}
	answers := slice.Map(questions, func(_ int, q model.Question) model.Answer {
		return model.Answer{
			QuestionID:    q.ID,
			ApplicantID:   app.EmployeeID,
			ApplicationID: app.ID,
		}
	})
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "question_id"}, {Name: "applicant_id"}},
		// a relinked answer starts over as an unsubmitted skeleton
		DoUpdates: clause.AssignmentColumns([]string{
			"application_id", "answer_text", "is_correct", "score", "feedback",
			"reviewed_by", "reviewed_at", "is_submitted", "submitted_at", "updated_at",
		}),
	}).Create(&answers).Error
	return store.Translate(err, "Answer")
}

func (r *GormRepository) IncrementApplicationsCount(ctx context.Context, jobID uuid.UUID) error {
	return r.jobs.Increment(ctx, jobID, "applications_count", 1)
}

func (r *GormRepository) AppendAppliedJob(ctx context.Context, employeeID, jobID uuid.UUID) error {
	id := jobID.String()
	return r.employees.Session(ctx).Where("id = ?", employeeID).
		UpdateColumn("applications",
			gorm.Expr("CASE WHEN ?::text = ANY(applications) THEN applications ELSE array_append(applications, ?::text) END", id, id)).
		Error
}

func (r *GormRepository) SetAppliedJobs(ctx context.Context, employeeID uuid.UUID, jobIDs []uuid.UUID) error {
	ids := slice.Map(jobIDs, func(_ int, id uuid.UUID) string { return id.String() })
	res := r.employees.Session(ctx).Where("id = ?", employeeID).
		UpdateColumn("applications", pq.StringArray(ids))
	if res.Error != nil {
		return store.Translate(res.Error, "Employee")
	}
	return nil
}

func (r *GormRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	return r.apps.FindByID(ctx, id)
}

func (r *GormRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	var app model.Application
	err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&app, "id = ?", id).Error
	if err != nil {
		return nil, store.Translate(err, "Application")
	}
	return &app, nil
}

func (r *GormRepository) FindDetailed(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	var app model.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Employee").
		Preload("Timeline", func(db *gorm.DB) *gorm.DB { return db.Order("timestamp ASC") }).
		Preload("ReviewNotes", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Answers", "is_submitted = ?", true).
		First(&app, "id = ?", id).Error
	if err != nil {
		return nil, store.Translate(err, "Application")
	}
	return &app, nil
}

func (r *GormRepository) Save(ctx context.Context, app *model.Application) error {
	if err := app.Validate(); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(app).Error
	return store.Translate(err, "Application")
}

func (r *GormRepository) List(ctx context.Context, q ListQuery) ([]model.Application, error) {
	var f store.Filter
	if q.JobID != uuid.Nil {
		f.Where = append(f.Where, store.Eq("job_id", q.JobID))
	}
	if q.EmployeeID != uuid.Nil {
		f.Where = append(f.Where, store.Eq("employee_id", q.EmployeeID))
	}
	if len(q.Statuses) > 0 {
		f.Where = append(f.Where, store.Where("status IN ?", q.Statuses))
	}
	if q.ActiveOnly {
		f.Where = append(f.Where, store.Eq("is_active", true))
	}
	f.Preload = []string{"Job", "Employee"}
	return r.apps.FindMany(ctx, f, store.Desc("created_at"))
}

func (r *GormRepository) AppendTimeline(ctx context.Context, entry *model.TimelineEntry) error {
	return r.timeline.Create(ctx, entry)
}

func (r *GormRepository) ListTimeline(ctx context.Context, applicationID uuid.UUID) ([]model.TimelineEntry, error) {
	return r.timeline.FindMany(ctx, store.Filter{Where: []store.Cond{store.Eq("application_id", applicationID)}},
		store.Asc("timestamp"))
}

func (r *GormRepository) AddReviewNote(ctx context.Context, note *model.ReviewNote) error {
	return r.notes.Create(ctx, note)
}

func (r *GormRepository) ListReviewNotes(ctx context.Context, applicationID uuid.UUID) ([]model.ReviewNote, error) {
	return r.notes.FindMany(ctx, store.Filter{Where: []store.Cond{store.Eq("application_id", applicationID)}},
		store.Asc("created_at"))
}

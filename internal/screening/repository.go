package screening

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/alimadkour96/4a8lny/internal/model"
	"github.com/alimadkour96/4a8lny/internal/store"
)

//go:generate mockgen -source=./repository.go -package=screeningmocks -destination=mocks/repository.mock.go Repository

// Repository is the persistence of questions and answers.
type Repository interface {
	Transaction(ctx context.Context, fn func(repo Repository) error) error

	FindJob(ctx context.Context, jobID uuid.UUID) (*model.Job, error)
	FindApplication(ctx context.Context, applicationID uuid.UUID) (*model.Application, error)
	// FindApplicationForUpdate loads the application and locks its row until the transaction ends.
	FindApplicationForUpdate(ctx context.Context, applicationID uuid.UUID) (*model.Application, error)

	FindQuestion(ctx context.Context, questionID uuid.UUID) (*model.Question, error)
	// MaxQuestionOrder returns the highest order among the job's questions, 0 when there are none.
	MaxQuestionOrder(ctx context.Context, jobID uuid.UUID) (int, error)
	CreateQuestion(ctx context.Context, q *model.Question) error
	ListQuestions(ctx context.Context, jobID uuid.UUID) ([]model.Question, error)

	// FindAnswer returns the applicant's answer to the question, or a NotFound error.
	FindAnswer(ctx context.Context, questionID, applicantID uuid.UUID) (*model.Answer, error)
	// FindAnswerForUpdate loads the answer with its question and locks it.
	FindAnswerForUpdate(ctx context.Context, answerID uuid.UUID) (*model.Answer, error)
	CreateAnswer(ctx context.Context, a *model.Answer) error
	SaveAnswer(ctx context.Context, a *model.Answer) error
	ListSubmittedAnswers(ctx context.Context, questionID uuid.UUID) ([]model.Answer, error)
	// ListEvaluatedAnswers returns the application's scored answers with their questions.
	ListEvaluatedAnswers(ctx context.Context, applicationID uuid.UUID) ([]model.Answer, error)

	ListReviewNotes(ctx context.Context, applicationID uuid.UUID) ([]model.ReviewNote, error)
	SetApplicationScores(ctx context.Context, applicationID uuid.UUID, screening, overall *int) error
}

// GormRepository implements Repository on PostgreSQL.
type GormRepository struct {
	db        *gorm.DB
	jobs      *store.Store[model.Job]
	apps      *store.Store[model.Application]
	questions *store.Store[model.Question]
	answers   *store.Store[model.Answer]
	notes     *store.Store[model.ReviewNote]
}

// NewRepository returns the gorm-backed Repository.
func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{
		db:        db,
		jobs:      store.New[model.Job](db, nil),
		apps:      store.New[model.Application](db, nil),
		questions: store.New[model.Question](db, nil),
		answers:   store.New[model.Answer](db, nil),
		notes:     store.New[model.ReviewNote](db, nil),
	}
}

func (r *GormRepository) Transaction(ctx context.Context, fn func(repo Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

func (r *GormRepository) FindJob(ctx context.Context, jobID uuid.UUID) (*model.Job, error) {
	return r.jobs.FindByID(ctx, jobID)
}

func (r *GormRepository) FindApplication(ctx context.Context, applicationID uuid.UUID) (*model.Application, error) {
	return r.apps.FindByID(ctx, applicationID)
}

func (r *GormRepository) FindApplicationForUpdate(ctx context.Context, applicationID uuid.UUID) (*model.Application, error) {
	var app model.Application
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&app, "id = ?", applicationID).Error
	if err != nil {
		return nil, store.Translate(err, "Application")
	}
	return &app, nil
}

func (r *GormRepository) FindQuestion(ctx context.Context, questionID uuid.UUID) (*model.Question, error) {
	return r.questions.FindByID(ctx, questionID)
}

func (r *GormRepository) MaxQuestionOrder(ctx context.Context, jobID uuid.UUID) (int, error) {
	var highest int
	err := r.questions.Session(ctx).
		Where("job_id = ?", jobID).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&highest).Error
	return highest, store.Translate(err, "Question")
}

func (r *GormRepository) CreateQuestion(ctx context.Context, q *model.Question) error {
	return r.questions.Create(ctx, q)
}

func (r *GormRepository) ListQuestions(ctx context.Context, jobID uuid.UUID) ([]model.Question, error) {
	return r.questions.FindMany(ctx, store.Filter{Where: []store.Cond{
		store.Eq("job_id", jobID),
		store.Eq("is_active", true),
	}}, store.Asc("sort_order"))
}

func (r *GormRepository) FindAnswer(ctx context.Context, questionID, applicantID uuid.UUID) (*model.Answer, error) {
	return r.answers.FindOne(ctx, store.Filter{Where: []store.Cond{
		store.Eq("question_id", questionID),
		store.Eq("applicant_id", applicantID),
	}})
}

func (r *GormRepository) FindAnswerForUpdate(ctx context.Context, answerID uuid.UUID) (*model.Answer, error) {
	var a model.Answer
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: clause.CurrentTable}}).
		Preload("Question").
		First(&a, "id = ?", answerID).Error
	if err != nil {
		return nil, store.Translate(err, "Answer")
	}
	return &a, nil
}

func (r *GormRepository) CreateAnswer(ctx context.Context, a *model.Answer) error {
	return r.answers.Create(ctx, a)
}

func (r *GormRepository) SaveAnswer(ctx context.Context, a *model.Answer) error {
	if err := a.Validate(); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(a).Error
	return store.Translate(err, "Answer")
}

func (r *GormRepository) ListSubmittedAnswers(ctx context.Context, questionID uuid.UUID) ([]model.Answer, error) {
	return r.answers.FindMany(ctx, store.Filter{Where: []store.Cond{
		store.Eq("question_id", questionID),
		store.Eq("is_submitted", true),
	}}, store.Asc("submitted_at"))
}

func (r *GormRepository) ListEvaluatedAnswers(ctx context.Context, applicationID uuid.UUID) ([]model.Answer, error) {
	return r.answers.FindMany(ctx, store.Filter{
		Where: []store.Cond{
			store.Eq("application_id", applicationID),
			store.Eq("is_submitted", true),
			store.Where("reviewed_at IS NOT NULL AND score IS NOT NULL"),
		},
		Preload: []string{"Question"},
	})
}

func (r *GormRepository) ListReviewNotes(ctx context.Context, applicationID uuid.UUID) ([]model.ReviewNote, error) {
	return r.notes.FindMany(ctx, store.Filter{Where: []store.Cond{store.Eq("application_id", applicationID)}})
}

func (r *GormRepository) SetApplicationScores(ctx context.Context, applicationID uuid.UUID, screening, overall *int) error {
	res := r.apps.Session(ctx).Where("id = ?", applicationID).UpdateColumns(map[string]any{
		"screening_score":   screening,
		"application_score": overall,
	})
	if res.Error != nil {
		return store.Translate(res.Error, "Application")
	}
	if res.RowsAffected == 0 {
		return store.Translate(gorm.ErrRecordNotFound, "Application")
	}
	return nil
}

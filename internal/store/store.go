// Package store is the generic gorm-backed entity store used by every workflow.
// Writes run the model's normalization, validation and password hashing before touching the database,
// and database errors come back as errs kinds.
package store

import (
	"context"
	"errors"
	"reflect"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/alimadkour96/4a8lny/internal/credential"
	"github.com/alimadkour96/4a8lny/internal/database"
	"github.com/alimadkour96/4a8lny/internal/errs"
	"github.com/alimadkour96/4a8lny/internal/model"
)

// Cond is one SQL condition with its arguments.
type Cond struct {
	Query string
	Args  []any
}

// Eq matches column = v.
func Eq(column string, v any) Cond {
	return Cond{Query: column + " = ?", Args: []any{v}}
}

// Where is a free-form condition.
func Where(query string, args ...any) Cond {
	return Cond{Query: query, Args: args}
}

// Filter narrows FindMany and Count. Offset and Limit are ignored by Count.
type Filter struct {
	Where   []Cond
	Preload []string
	Offset  int
	Limit   int
}

// Sort orders FindMany results.
type Sort struct {
	Column string
	Desc   bool
}

// Asc sorts by column ascending.
func Asc(column string) Sort { return Sort{Column: column} }

// Desc sorts by column descending.
func Desc(column string) Sort { return Sort{Column: column, Desc: true} }

// Store is the generic CRUD store for one gorm model.
type Store[T any] struct {
	db    *gorm.DB
	guard credential.Guard
	name  string
}

// New returns a Store for T. guard hashes pending passwords of credential.Holder models.
func New[T any](db *gorm.DB, guard credential.Guard) *Store[T] {
	return &Store[T]{
		db:    db,
		guard: guard,
		name:  reflect.TypeOf((*T)(nil)).Elem().Name(),
	}
}

// WithTx returns a copy of the store bound to tx.
func (s *Store[T]) WithTx(tx *gorm.DB) *Store[T] {
	cp := *s
	cp.db = tx
	return &cp
}

// Session returns the underlying gorm handle scoped to T and ctx, for queries the store does not cover.
func (s *Store[T]) Session(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Model(new(T))
}

// Create validates v, hashes its pending password and inserts it.
func (s *Store[T]) Create(ctx context.Context, v *T) error {
	if err := s.prepare(v); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(v).Error; err != nil {
		return s.translate(err)
	}
	return nil
}

// FindByID loads the record with id, preloading the named associations.
func (s *Store[T]) FindByID(ctx context.Context, id uuid.UUID, preload ...string) (*T, error) {
	db := s.db.WithContext(ctx)
	for _, p := range preload {
		db = db.Preload(p)
	}
	var v T
	if err := db.First(&v, "id = ?", id).Error; err != nil {
		return nil, s.translate(err)
	}
	return &v, nil
}

// FindOne returns the first record matching f.
func (s *Store[T]) FindOne(ctx context.Context, f Filter, sorts ...Sort) (*T, error) {
	f.Limit = 1
	vs, err := s.FindMany(ctx, f, sorts...)
	if err != nil {
		return nil, err
	}
	if len(vs) == 0 {
		return nil, errs.NotFound("%s not found", s.name)
	}
	return &vs[0], nil
}

// FindMany returns every record matching f in the given order.
func (s *Store[T]) FindMany(ctx context.Context, f Filter, sorts ...Sort) ([]T, error) {
	db := s.apply(s.db.WithContext(ctx), f)
	for _, p := range f.Preload {
		db = db.Preload(p)
	}
	for _, o := range sorts {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: o.Desc})
	}
	if f.Offset > 0 {
		db = db.Offset(f.Offset)
	}
	if f.Limit > 0 {
		db = db.Limit(f.Limit)
	}
	var vs []T
	if err := db.Find(&vs).Error; err != nil {
		return nil, s.translate(err)
	}
	return vs, nil
}

// Count returns how many records match f.
func (s *Store[T]) Count(ctx context.Context, f Filter) (int64, error) {
	var n int64
	if err := s.apply(s.db.WithContext(ctx).Model(new(T)), f).Count(&n).Error; err != nil {
		return 0, s.translate(err)
	}
	return n, nil
}

// UpdateByID locks the record, applies patch, re-validates and saves it.
// The associations of T are not written.
func (s *Store[T]) UpdateByID(ctx context.Context, id uuid.UUID, patch func(*T) error) (*T, error) {
	var out *T
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var v T
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&v, "id = ?", id).Error; err != nil {
			return s.translate(err)
		}
		if err := patch(&v); err != nil {
			return err
		}
		if err := s.prepare(&v); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(&v).Error; err != nil {
			return s.translate(err)
		}
		out = &v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Increment adds by to a numeric column in place.
func (s *Store[T]) Increment(ctx context.Context, id uuid.UUID, column string, by int) error {
	res := s.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", by))
	if res.Error != nil {
		return s.translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("%s not found", s.name)
	}
	return nil
}

// DeleteByID removes the record with id.
func (s *Store[T]) DeleteByID(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return s.translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("%s not found", s.name)
	}
	return nil
}

func (s *Store[T]) apply(db *gorm.DB, f Filter) *gorm.DB {
	for _, c := range f.Where {
		db = db.Where(c.Query, c.Args...)
	}
	return db
}

func (s *Store[T]) prepare(v *T) error {
	if n, ok := any(v).(model.Normalizer); ok {
		n.Normalize()
	}
	if val, ok := any(v).(model.Validator); ok {
		if err := val.Validate(); err != nil {
			return err
		}
	}
	if h, ok := any(v).(credential.Holder); ok && s.guard != nil {
		if err := credential.Apply(s.guard, h); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store[T]) translate(err error) error {
	return Translate(err, s.name)
}

// Translate maps gorm and PostgreSQL errors to errs kinds. Errors already in the taxonomy pass through.
func Translate(err error, entity string) error {
	var e *errs.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &e):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.Wrap(errs.KindNotFound, err, entity+" not found")
	case database.IsUniqueViolation(err, model.ApplicationPairIndex):
		return errs.Wrap(errs.KindDuplicateApplication, err, "You have already applied to this job")
	case database.IsUniqueViolation(err, ""):
		return errs.Wrap(errs.KindConflict, err, entity+" already exists")
	case database.IsForeignKeyViolation(err):
		return errs.Wrap(errs.KindNotFound, err, "Referenced record not found")
	default:
		return err
	}
}

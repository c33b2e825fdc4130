package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/alimadkour96/4a8lny/internal/credential"
	"github.com/alimadkour96/4a8lny/internal/errs"
	"github.com/alimadkour96/4a8lny/internal/model"
)

func openMock(t *testing.T, mock func(sqlmock.Sqlmock)) *gorm.DB {
	mockDB, m, err := sqlmock.New()
	require.NoError(t, err)
	mock(m)
	t.Cleanup(func() {
		assert.NoError(t, m.ExpectationsWereMet())
		_ = mockDB.Close()
	})
	return openGorm(t, mockDB)
}

func openGorm(t *testing.T, conn *sql.DB) *gorm.DB {
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func validCompany() *model.Company {
	return &model.Company{
		Credentials: model.Credentials{Email: "HR@Acme.io", Password: "longenough"},
		EditableCompanyInfo: model.EditableCompanyInfo{
			Name:     "Acme",
			Address:  "42 Sukhumvit Road",
			Phone:    "+66812345678",
			Industry: "Software",
		},
	}
}

func TestStore_Create(t *testing.T) {
	testCases := []struct {
		name     string
		company  func() *model.Company
		mock     func(m sqlmock.Sqlmock)
		wantKind errs.Kind
		wantErr  error
	}{
		{
			name:    "validation error never reaches the database",
			company: func() *model.Company { c := validCompany(); c.Phone = "abc"; return c },
			mock:    func(sqlmock.Sqlmock) {},

			wantKind: errs.KindValidation,
		},
		{
			name:    "unique violation is a conflict",
			company: validCompany,
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`INSERT INTO "companies"`).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_companies_email"})
			},
			wantKind: errs.KindConflict,
		},
		{
			name:    "database error is returned as is",
			company: validCompany,
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`INSERT INTO "companies"`).WillReturnError(errors.New("connection reset"))
			},
			wantErr: errors.New("connection reset"),
		},
		{
			name:    "created",
			company: validCompany,
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`INSERT INTO "companies"`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "company_size", "is_active", "is_verified"}).
						AddRow(uuid.NewString(), "1-10", true, false))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := openMock(t, tc.mock)
			s := New[model.Company](db, credential.NewBcryptGuard(bcrypt.MinCost))

			c := tc.company()
			err := s.Create(context.Background(), c)
			switch {
			case tc.wantKind != "":
				assert.True(t, errs.Is(err, tc.wantKind), "got %v", err)
			case tc.wantErr != nil:
				assert.Equal(t, tc.wantErr, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, "hr@acme.io", c.Email)
				assert.Empty(t, c.Password)
				assert.NotEmpty(t, c.PasswordHash)
				assert.NotEqual(t, uuid.Nil, c.ID)
			}
		})
	}
}

func TestStore_FindByID_notFound(t *testing.T) {
	id := uuid.New()
	db := openMock(t, func(m sqlmock.Sqlmock) {
		m.ExpectQuery(`SELECT \* FROM "jobs" WHERE id = \$1`).
			WithArgs(id, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
	})
	s := New[model.Job](db, nil)

	_, err := s.FindByID(context.Background(), id)
	assert.True(t, errs.Is(err, errs.KindNotFound))
	assert.Equal(t, "Job not found", errs.Message(err))
}

func TestStore_DeleteByID(t *testing.T) {
	id := uuid.New()
	db := openMock(t, func(m sqlmock.Sqlmock) {
		m.ExpectExec(`DELETE FROM "questions" WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))
		m.ExpectExec(`DELETE FROM "questions" WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))
	})
	s := New[model.Question](db, nil)

	err := s.DeleteByID(context.Background(), id)
	assert.True(t, errs.Is(err, errs.KindNotFound))
	assert.NoError(t, s.DeleteByID(context.Background(), id))
}

func TestStore_Count(t *testing.T) {
	companyID := uuid.New()
	db := openMock(t, func(m sqlmock.Sqlmock) {
		m.ExpectQuery(`SELECT count\(\*\) FROM "jobs" WHERE company_id = \$1 AND is_active = \$2`).
			WithArgs(companyID, true).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	})
	s := New[model.Job](db, nil)

	n, err := s.Count(context.Background(), Filter{
		Where: []Cond{Eq("company_id", companyID), Eq("is_active", true)},
		Limit: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestTranslate(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: model.ApplicationPairIndex}
	assert.True(t, errs.Is(Translate(dup, "Application"), errs.KindDuplicateApplication))

	fk := &pgconn.PgError{Code: "23503"}
	assert.True(t, errs.Is(Translate(fk, "Answer"), errs.KindNotFound))

	own := errs.Conflict("already answered")
	assert.Same(t, own, Translate(own, "Answer"))

	assert.Nil(t, Translate(nil, "Answer"))
}

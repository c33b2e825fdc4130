package job_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alimadkour96/4a8lny/internal/errs"
	"github.com/alimadkour96/4a8lny/internal/job"
	jobmocks "github.com/alimadkour96/4a8lny/internal/job/mocks"
	"github.com/alimadkour96/4a8lny/internal/model"
)

var fixedNow = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

var opts = job.Options{ApplicationWindow: 30 * 24 * time.Hour, DefaultPageLimit: 20}

func inTx(repo *jobmocks.MockRepository) {
	repo.EXPECT().Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(job.Repository) error) error {
			return fn(repo)
		})
}

// applyTo makes Update run the patch against j.
func applyTo(repo *jobmocks.MockRepository, j *model.Job) {
	repo.EXPECT().Update(gomock.Any(), j.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, patch func(*model.Job) error) (*model.Job, error) {
			if err := patch(j); err != nil {
				return nil, err
			}
			return j, nil
		})
}

func TestService_Create(t *testing.T) {
	companyID := uuid.New()
	info := model.EditableJobInfo{Title: "Backend Engineer", Location: "Bangkok"}

	t.Run("default deadline and ordered questions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := jobmocks.NewMockRepository(ctrl)
		inTx(repo)
		repo.EXPECT().FindCompany(gomock.Any(), companyID).Return(&model.Company{IsActive: true}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, j *model.Job) error {
				j.ID = uuid.New()
				return nil
			})
		repo.EXPECT().CreateQuestion(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		svc := job.NewServiceWithClock(repo, opts, clock)
		j, err := svc.Create(context.Background(), job.CreateRequest{
			CompanyID:       companyID,
			EditableJobInfo: info,
			Questions: []model.Question{
				{Text: "First", Type: model.QuestionEssay, Order: 9},
				{Text: "Second", Type: model.QuestionEssay},
			},
		})
		require.NoError(t, err)
		require.NotNil(t, j.ApplicationDeadline)
		assert.Equal(t, fixedNow.Add(30*24*time.Hour), *j.ApplicationDeadline)
		assert.True(t, j.IsActive)
		require.Len(t, j.Questions, 2)
		assert.Equal(t, 1, j.Questions[0].Order)
		assert.Equal(t, 2, j.Questions[1].Order)
		assert.Equal(t, j.ID, j.Questions[1].JobID)
		assert.Equal(t, companyID, j.Questions[1].CompanyID)
	})

	t.Run("explicit deadline is kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := jobmocks.NewMockRepository(ctrl)
		inTx(repo)
		repo.EXPECT().FindCompany(gomock.Any(), companyID).Return(&model.Company{IsActive: true}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		deadline := fixedNow.Add(time.Hour)
		withDeadline := info
		withDeadline.ApplicationDeadline = &deadline

		svc := job.NewServiceWithClock(repo, opts, clock)
		j, err := svc.Create(context.Background(), job.CreateRequest{CompanyID: companyID, EditableJobInfo: withDeadline})
		require.NoError(t, err)
		assert.Equal(t, deadline, *j.ApplicationDeadline)
	})

	t.Run("unknown company", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := jobmocks.NewMockRepository(ctrl)
		inTx(repo)
		repo.EXPECT().FindCompany(gomock.Any(), companyID).Return(nil, errs.NotFound("Company not found"))

		svc := job.NewServiceWithClock(repo, opts, clock)
		_, err := svc.Create(context.Background(), job.CreateRequest{CompanyID: companyID, EditableJobInfo: info})
		assert.True(t, errs.Is(err, errs.KindNotFound))
	})

	t.Run("deactivated company", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := jobmocks.NewMockRepository(ctrl)
		inTx(repo)
		repo.EXPECT().FindCompany(gomock.Any(), companyID).Return(&model.Company{IsActive: false}, nil)

		svc := job.NewServiceWithClock(repo, opts, clock)
		_, err := svc.Create(context.Background(), job.CreateRequest{CompanyID: companyID, EditableJobInfo: info})
		assert.True(t, errs.Is(err, errs.KindUnauthorized))
	})
}

func TestService_Get_countsView(t *testing.T) {
	id := uuid.New()
	ctrl := gomock.NewController(t)
	repo := jobmocks.NewMockRepository(ctrl)
	gomock.InOrder(
		repo.EXPECT().IncrementViews(gomock.Any(), id).Return(nil),
		repo.EXPECT().FindDetailed(gomock.Any(), id).Return(&model.Job{Base: model.Base{ID: id}, Views: 1}, nil),
	)

	svc := job.NewServiceWithClock(repo, opts, clock)
	j, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), j.Views)
}

func TestService_Update(t *testing.T) {
	owner, stranger, admin := uuid.New(), uuid.New(), uuid.New()
	current := func() *model.Job {
		return &model.Job{
			Base:      model.Base{ID: uuid.New()},
			CompanyID: owner,
			EditableJobInfo: model.EditableJobInfo{
				Title:    "Backend Engineer",
				Location: "Bangkok",
			},
			IsActive: true,
		}
	}
	patch := model.EditableJobInfo{Title: "Senior Backend Engineer"}

	testCases := []struct {
		name     string
		actor    uuid.UUID
		isAdmin  *bool
		wantKind errs.Kind
	}{
		{name: "owner", actor: owner},
		{name: "admin", actor: admin, isAdmin: ptr(true)},
		{name: "another company", actor: stranger, isAdmin: ptr(false), wantKind: errs.KindUnauthorized},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := jobmocks.NewMockRepository(ctrl)
			j := current()
			applyTo(repo, j)
			if tc.isAdmin != nil {
				repo.EXPECT().IsAdmin(gomock.Any(), tc.actor).Return(*tc.isAdmin, nil)
			}

			svc := job.NewServiceWithClock(repo, opts, clock)
			got, err := svc.Update(context.Background(), j.ID, tc.actor, patch)
			if tc.wantKind != "" {
				assert.True(t, errs.Is(err, tc.wantKind), "got %v", err)
				assert.Equal(t, "Backend Engineer", j.Title)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Senior Backend Engineer", got.Title)
			// fields missing from the patch are kept
			assert.Equal(t, "Bangkok", got.Location)
		})
	}
}

func TestService_Deactivate(t *testing.T) {
	owner := uuid.New()
	j := &model.Job{Base: model.Base{ID: uuid.New()}, CompanyID: owner, IsActive: true}

	ctrl := gomock.NewController(t)
	repo := jobmocks.NewMockRepository(ctrl)
	applyTo(repo, j)

	svc := job.NewServiceWithClock(repo, opts, clock)
	got, err := svc.Deactivate(context.Background(), j.ID, owner)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestService_Delete(t *testing.T) {
	owner := uuid.New()
	id := uuid.New()

	t.Run("owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := jobmocks.NewMockRepository(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), id).Return(&model.Job{Base: model.Base{ID: id}, CompanyID: owner}, nil)
		repo.EXPECT().Delete(gomock.Any(), id).Return(nil)

		svc := job.NewServiceWithClock(repo, opts, clock)
		assert.NoError(t, svc.Delete(context.Background(), id, owner))
	})

	t.Run("stranger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := jobmocks.NewMockRepository(ctrl)
		stranger := uuid.New()
		repo.EXPECT().FindByID(gomock.Any(), id).Return(&model.Job{Base: model.Base{ID: id}, CompanyID: owner}, nil)
		repo.EXPECT().IsAdmin(gomock.Any(), stranger).Return(false, nil)

		svc := job.NewServiceWithClock(repo, opts, clock)
		err := svc.Delete(context.Background(), id, stranger)
		assert.True(t, errs.Is(err, errs.KindUnauthorized))
	})

	t.Run("missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := jobmocks.NewMockRepository(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, errs.NotFound("Job not found"))

		svc := job.NewServiceWithClock(repo, opts, clock)
		assert.True(t, errs.Is(svc.Delete(context.Background(), id, owner), errs.KindNotFound))
	})
}

func TestService_Search(t *testing.T) {
	testCases := []struct {
		name      string
		filter    job.SearchFilter
		mock      func(repo *jobmocks.MockRepository)
		wantKind  errs.Kind
		wantErr   error
		wantLimit int
	}{
		{
			name:   "default limit",
			filter: job.SearchFilter{Skills: []string{"go"}},
			mock: func(repo *jobmocks.MockRepository) {
				want := job.SearchFilter{Skills: []string{"go"}, Limit: 20}
				repo.EXPECT().Search(gomock.Any(), want, fixedNow).Return([]model.Job{{}, {}}, nil)
				repo.EXPECT().Count(gomock.Any(), want, fixedNow).Return(int64(7), nil)
			},
			wantLimit: 20,
		},
		{
			name:   "limit is capped",
			filter: job.SearchFilter{Limit: 1000, Offset: 40},
			mock: func(repo *jobmocks.MockRepository) {
				want := job.SearchFilter{Limit: job.MaxPageLimit, Offset: 40}
				repo.EXPECT().Search(gomock.Any(), want, fixedNow).Return([]model.Job{{}, {}}, nil)
				repo.EXPECT().Count(gomock.Any(), want, fixedNow).Return(int64(7), nil)
			},
			wantLimit: job.MaxPageLimit,
		},
		{
			name:   "count fails",
			filter: job.SearchFilter{},
			mock: func(repo *jobmocks.MockRepository) {
				repo.EXPECT().Search(gomock.Any(), gomock.Any(), fixedNow).Return(nil, nil)
				repo.EXPECT().Count(gomock.Any(), gomock.Any(), fixedNow).Return(int64(0), errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
		{
			name:     "unknown job type",
			filter:   job.SearchFilter{JobTypes: []string{"Gig"}},
			mock:     func(*jobmocks.MockRepository) {},
			wantKind: errs.KindValidation,
		},
		{
			name:     "inverted salary bounds",
			filter:   job.SearchFilter{SalaryMin: ptr(5000.0), SalaryMax: ptr(100.0)},
			mock:     func(*jobmocks.MockRepository) {},
			wantKind: errs.KindValidation,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := jobmocks.NewMockRepository(ctrl)
			tc.mock(repo)

			svc := job.NewServiceWithClock(repo, opts, clock)
			res, err := svc.Search(context.Background(), tc.filter)
			switch {
			case tc.wantKind != "":
				assert.True(t, errs.Is(err, tc.wantKind), "got %v", err)
			case tc.wantErr != nil:
				assert.Equal(t, tc.wantErr, err)
			default:
				require.NoError(t, err)
				assert.Len(t, res.Jobs, 2)
				assert.Equal(t, int64(7), res.Total)
				assert.Equal(t, tc.wantLimit, res.Limit)
				assert.Equal(t, tc.filter.Offset, res.Offset)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }

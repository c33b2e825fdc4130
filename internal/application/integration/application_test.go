package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alimadkour96/4a8lny/internal/application"
	"github.com/alimadkour96/4a8lny/internal/database"
	"github.com/alimadkour96/4a8lny/internal/errs"
	"github.com/alimadkour96/4a8lny/internal/model"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	td, db, err := database.GetTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}
	testDB = db

	code := m.Run()

	if td != nil && td(context.Background()) != nil {
		log.Fatalf("could not teardown postgres container")
	}
	os.Exit(code)
}

func TestSubmit_seedsAnswersAndCounters(t *testing.T) {
	ctx := context.Background()
	svc := application.NewService(application.NewRepository(testDB.DB), zap.NewNop())
	job, emp := database.TestJob1, database.TestEmployee1

	app, err := svc.Submit(ctx, application.SubmitRequest{
		JobID:       job.ID,
		EmployeeID:  emp.ID,
		CoverLetter: "I write Go every day.",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusPending, app.Status)

	var answers []model.Answer
	require.NoError(t, testDB.Where("application_id = ?", app.ID).Order("created_at").Find(&answers).Error)
	assert.Len(t, answers, 2)
	for _, a := range answers {
		assert.False(t, a.IsSubmitted)
		assert.Equal(t, emp.ID, a.ApplicantID)
	}

	var reloaded model.Job
	require.NoError(t, testDB.First(&reloaded, "id = ?", job.ID).Error)
	assert.Equal(t, job.ApplicationsCount+1, reloaded.ApplicationsCount)

	var e model.Employee
	require.NoError(t, testDB.First(&e, "id = ?", emp.ID).Error)
	assert.Contains(t, []string(e.AppliedJobIDs), job.ID.String())

	_, err = svc.Submit(ctx, application.SubmitRequest{JobID: job.ID, EmployeeID: emp.ID})
	assert.True(t, errs.Is(err, errs.KindDuplicateApplication), "got %v", err)

	detailed, err := svc.Get(ctx, app.ID)
	require.NoError(t, err)
	require.NotNil(t, detailed.Job)
	assert.Equal(t, job.Title, detailed.Job.Title)
	require.Len(t, detailed.Timeline, 1)
	assert.Equal(t, model.TimelineApplied, detailed.Timeline[0].Action)
	// unsubmitted skeletons are not part of the detailed view
	assert.Empty(t, detailed.Answers)
}

func TestPairIndex_rejectsSecondLiveApplication(t *testing.T) {
	ctx := context.Background()
	repo := application.NewRepository(testDB.DB)
	job, emp := database.TestJob3, database.TestEmployee2

	first := &model.Application{JobID: job.ID, EmployeeID: emp.ID, Status: model.ApplicationStatusPending, IsActive: true}
	require.NoError(t, repo.Create(ctx, first))

	second := &model.Application{JobID: job.ID, EmployeeID: emp.ID, Status: model.ApplicationStatusPending, IsActive: true}
	err := repo.Create(ctx, second)
	assert.True(t, errs.Is(err, errs.KindDuplicateApplication), "got %v", err)

	first.Status = model.ApplicationStatusWithdrawn
	first.IsActive = false
	require.NoError(t, repo.Save(ctx, first))

	third := &model.Application{JobID: job.ID, EmployeeID: emp.ID, Status: model.ApplicationStatusPending, IsActive: true}
	require.NoError(t, repo.Create(ctx, third))
}

func TestWithdrawAndReapply_relinksAnswers(t *testing.T) {
	ctx := context.Background()
	svc := application.NewService(application.NewRepository(testDB.DB), zap.NewNop())
	job, emp := database.TestJob1, database.TestEmployee2
	req := application.SubmitRequest{JobID: job.ID, EmployeeID: emp.ID}

	first, err := svc.Submit(ctx, req)
	require.NoError(t, err)
	reviewedAt := time.Now()
	require.NoError(t, testDB.Model(&model.Answer{}).
		Where("application_id = ?", first.ID).
		Updates(map[string]any{
			"answer_text":  "go",
			"is_submitted": true,
			"submitted_at": reviewedAt,
			"is_correct":   true,
			"score":        100,
			"feedback":     "correct",
			"reviewed_by":  database.TestCompany1.ID,
			"reviewed_at":  reviewedAt,
		}).Error)
	_, err = svc.Withdraw(ctx, first.ID, &emp.ID)
	require.NoError(t, err)

	second, err := svc.Submit(ctx, req)
	require.NoError(t, err)

	var answers []model.Answer
	require.NoError(t, testDB.Where("applicant_id = ?", emp.ID).Find(&answers).Error)
	require.Len(t, answers, 2)
	for _, a := range answers {
		assert.Equal(t, second.ID, a.ApplicationID)
		// the earlier evaluation does not carry over
		assert.False(t, a.IsSubmitted)
		assert.Empty(t, a.AnswerText)
		assert.Empty(t, a.Feedback)
		assert.Nil(t, a.IsCorrect)
		assert.Nil(t, a.Score)
		assert.Nil(t, a.ReviewedBy)
		assert.Nil(t, a.ReviewedAt)
		assert.Nil(t, a.SubmittedAt)
	}

	require.NoError(t, svc.RebuildApplicationIndex(ctx, emp.ID))
	var e model.Employee
	require.NoError(t, testDB.First(&e, "id = ?", emp.ID).Error)
	assert.Equal(t, 1, countOf(e.AppliedJobIDs, job.ID.String()))

	timeline, err := svc.Timeline(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, timeline, 2)
	assert.Equal(t, model.TimelineWithdrawn, timeline[1].Action)
}

func TestSubmit_unknownJob(t *testing.T) {
	svc := application.NewService(application.NewRepository(testDB.DB), zap.NewNop())
	_, err := svc.Submit(context.Background(), application.SubmitRequest{
		JobID:      database.TestEmployee1.ID,
		EmployeeID: database.TestEmployee1.ID,
	})
	assert.True(t, errs.Is(err, errs.KindNotFound), "got %v", err)
}

func countOf(xs []string, x string) int {
	n := 0
	for _, v := range xs {
		if v == x {
			n++
		}
	}
	return n
}

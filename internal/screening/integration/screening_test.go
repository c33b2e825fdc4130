package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alimadkour96/4a8lny/internal/application"
	"github.com/alimadkour96/4a8lny/internal/database"
	"github.com/alimadkour96/4a8lny/internal/errs"
	"github.com/alimadkour96/4a8lny/internal/model"
	"github.com/alimadkour96/4a8lny/internal/screening"
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

func TestScreeningFlow(t *testing.T) {
	ctx := context.Background()
	apps := application.NewService(application.NewRepository(testDB.DB), zap.NewNop())
	svc := screening.NewService(screening.NewRepository(testDB.DB), zap.NewNop())
	job, emp := database.TestJob1, database.TestEmployee1

	q, err := svc.AddQuestion(ctx, job.ID, database.TestCompany1.ID, model.Question{
		Text:          "Is a nil map safe to read?",
		Type:          model.QuestionTrueFalse,
		CorrectAnswer: "True",
	})
	require.NoError(t, err)
	assert.Equal(t, database.TestQuestion2.Order+1, q.Order)

	_, err = svc.AddQuestion(ctx, job.ID, database.TestCompany2.ID, model.Question{Text: "Why?", Type: model.QuestionEssay})
	assert.True(t, errs.Is(err, errs.KindUnauthorized), "got %v", err)

	questions, err := svc.ListQuestions(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, questions, 3)
	assert.Equal(t, database.TestQuestion1.ID, questions[0].ID)

	app, err := apps.Submit(ctx, application.SubmitRequest{JobID: job.ID, EmployeeID: emp.ID})
	require.NoError(t, err)

	mc, err := svc.RecordAnswer(ctx, database.TestQuestion1.ID, screening.AnswerRequest{
		ApplicantID: emp.ID, ApplicationID: app.ID, AnswerText: "go",
	})
	require.NoError(t, err)
	essay, err := svc.RecordAnswer(ctx, database.TestQuestion2.ID, screening.AnswerRequest{
		ApplicantID: emp.ID, ApplicationID: app.ID, AnswerText: "Use an idempotency key table.",
	})
	require.NoError(t, err)

	_, err = svc.RecordAnswer(ctx, database.TestQuestion1.ID, screening.AnswerRequest{
		ApplicantID: emp.ID, ApplicationID: app.ID, AnswerText: "spawn",
	})
	assert.True(t, errs.Is(err, errs.KindConflict), "got %v", err)

	listed, err := svc.ListAnswers(ctx, database.TestQuestion1.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, mc.ID, listed[0].ID)

	reviewer := database.TestCompany1.ID
	graded, err := svc.EvaluateAnswer(ctx, mc.ID, screening.EvaluateRequest{ReviewerID: reviewer, Auto: true})
	require.NoError(t, err)
	assert.True(t, *graded.IsCorrect)

	no, forty := false, 40
	_, err = svc.EvaluateAnswer(ctx, essay.ID, screening.EvaluateRequest{ReviewerID: reviewer, IsCorrect: &no, Score: &forty})
	require.NoError(t, err)

	// (100*2 + 40*3) / 5
	score, err := svc.AggregateApplicationScore(ctx, app.ID)
	require.NoError(t, err)
	require.NotNil(t, score)
	assert.Equal(t, 64, *score)

	stored, err := apps.Get(ctx, app.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ScreeningScore)
	assert.Equal(t, 64, *stored.ScreeningScore)
	assert.Equal(t, 64, *stored.ApplicationScore)
	assert.Len(t, stored.Answers, 2)

	// re-evaluating with the same verdict leaves the score unchanged
	_, err = svc.EvaluateAnswer(ctx, mc.ID, screening.EvaluateRequest{ReviewerID: reviewer, Auto: true})
	require.NoError(t, err)
	score, err = svc.AggregateApplicationScore(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, 64, *score)

	withNote, err := apps.AddReviewNote(ctx, app.ID, reviewer, "strong", 5)
	require.NoError(t, err)
	assert.Equal(t, 100, *withNote.ApplicationScore)
	assert.Equal(t, 64, *withNote.ScreeningScore)
}

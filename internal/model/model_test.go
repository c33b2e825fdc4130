package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alimadkour96/4a8lny/internal/errs"
)

const longDescription = "Build and operate Go services backing the job board, including the search API."

func validJob() *Job {
	return &Job{
		CompanyID: uuid.New(),
		EditableJobInfo: EditableJobInfo{
			Title:       "Backend Engineer",
			Description: longDescription,
			Location:    "Bangkok",
			SalaryRange: SalaryRange{Min: 30000, Max: 50000},
		},
	}
}

func TestJob_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(j *Job)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Job) {}},
		{name: "short title", mutate: func(j *Job) { j.Title = "Go" }, wantErr: true},
		{name: "short description", mutate: func(j *Job) { j.Description = "too short" }, wantErr: true},
		{name: "min above max", mutate: func(j *Job) { j.SalaryRange = SalaryRange{Min: 10, Max: 5} }, wantErr: true},
		{name: "negative salary", mutate: func(j *Job) { j.SalaryRange.Min = -1 }, wantErr: true},
		{name: "unknown job type", mutate: func(j *Job) { j.JobType = "Gig" }, wantErr: true},
		{name: "missing location", mutate: func(j *Job) { j.Location = "  " }, wantErr: true},
		{name: "missing company", mutate: func(j *Job) { j.CompanyID = uuid.Nil }, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			j := validJob()
			tc.mutate(j)
			j.Normalize()
			err := j.Validate()
			if tc.wantErr {
				assert.True(t, errs.Is(err, errs.KindValidation), "got %v", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, DefaultJobType, j.JobType)
			assert.Equal(t, DefaultExperienceLevel, j.ExperienceLevel)
		})
	}
}

func TestJob_Derived(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	j := validJob()
	j.IsActive = true
	j.SalaryRange = SalaryRange{Min: 1234567, Max: 2500000.5}

	assert.Equal(t, "$1,234,567 - $2,500,000.5", j.SalaryDisplay())
	assert.False(t, j.IsExpired(now))

	past := now.Add(-time.Minute)
	j.ApplicationDeadline = &past
	assert.True(t, j.IsExpired(now))
	assert.False(t, j.AcceptsApplications(now))

	resp := j.ToJobResponse(now)
	assert.True(t, resp.IsExpired)
	assert.Equal(t, j.SalaryDisplay(), resp.SalaryDisplay)
}

func TestPublicQuestions(t *testing.T) {
	assert.Nil(t, PublicQuestions(nil))

	qs := []Question{{Text: "Is Go garbage collected?", Type: QuestionTrueFalse, CorrectAnswer: "True"}}
	pub := PublicQuestions(qs)

	require.Len(t, pub, 1)
	assert.Empty(t, pub[0].CorrectAnswer)
	assert.Equal(t, "Is Go garbage collected?", pub[0].Text)
	assert.Equal(t, "True", qs[0].CorrectAnswer)
}

func TestQuestion_Validate(t *testing.T) {
	base := func() *Question {
		return &Question{
			JobID:     uuid.New(),
			CompanyID: uuid.New(),
			Text:      "Which keyword starts a goroutine?",
			Type:      QuestionMultipleChoice,
			Options:   pq.StringArray{"go", "async", "spawn"},
		}
	}

	q := base()
	q.CorrectAnswer = "go"
	q.Normalize()
	require.NoError(t, q.Validate())
	assert.Equal(t, 1, q.Points)
	assert.Equal(t, "Medium", q.Difficulty)
	assert.True(t, q.AutoGradable())

	q = base()
	q.CorrectAnswer = "thread"
	q.Normalize()
	assert.True(t, errs.Is(q.Validate(), errs.KindValidation))

	q = base()
	q.Options = pq.StringArray{"go"}
	q.CorrectAnswer = "go"
	q.Normalize()
	assert.True(t, errs.Is(q.Validate(), errs.KindValidation))

	q = base()
	q.Type = QuestionTrueFalse
	q.Options = nil
	q.CorrectAnswer = "Maybe"
	q.Normalize()
	assert.True(t, errs.Is(q.Validate(), errs.KindValidation))

	q = base()
	q.Type = QuestionEssay
	q.Options = nil
	q.Normalize()
	require.NoError(t, q.Validate())
	assert.False(t, q.AutoGradable())
}

func TestEmployee_Validate(t *testing.T) {
	e := &Employee{
		Credentials: Credentials{Email: "  Jane@Example.COM ", Password: "longenough"},
		EditableEmployeeInfo: EditableEmployeeInfo{
			Name:    "Jane",
			JobType: "Backend",
			Skills:  pq.StringArray{" go ", "sql"},
		},
	}
	e.Normalize()
	require.NoError(t, e.Validate())
	assert.Equal(t, "jane@example.com", e.Email)
	assert.Equal(t, pq.StringArray{"go", "sql"}, e.Skills)
	assert.Equal(t, "Flexible", e.Availability)

	e.Password = "short"
	assert.True(t, errs.Is(e.Validate(), errs.KindValidation))

	e.Password = ""
	e.PasswordHash = "$2a$10$hash"
	e.CV = "ftp://cv"
	assert.True(t, errs.Is(e.Validate(), errs.KindValidation))
}

func TestCompany_Validate(t *testing.T) {
	c := &Company{
		Credentials: Credentials{Email: "hr@acme.io", Password: "longenough"},
		EditableCompanyInfo: EditableCompanyInfo{
			Name:     "Acme",
			Address:  "42 Sukhumvit Road",
			Phone:    "+66812345678",
			Industry: "Software",
		},
	}
	c.Normalize()
	require.NoError(t, c.Validate())
	assert.Equal(t, "1-10", c.CompanySize)

	c.Phone = "0812"
	assert.True(t, errs.Is(c.Validate(), errs.KindValidation))
}

func TestCredentials_TakePassword(t *testing.T) {
	c := &Credentials{Password: "secret-pass"}
	assert.Equal(t, "secret-pass", c.TakePassword())
	assert.Empty(t, c.Password)
	c.SetPasswordHash("digest")
	assert.Equal(t, "digest", c.PasswordHash)
}

func TestApplication_ValidateAndDerived(t *testing.T) {
	a := &Application{JobID: uuid.New(), EmployeeID: uuid.New()}
	require.NoError(t, a.Validate())
	assert.Equal(t, ApplicationStatusPending, a.Status)

	bad := 101
	a.ApplicationScore = &bad
	assert.True(t, errs.Is(a.Validate(), errs.KindValidation))
	a.ApplicationScore = nil

	a.Status = "Ghosted"
	assert.True(t, errs.Is(a.Validate(), errs.KindValidation))
	a.Status = ApplicationStatusHired

	now := time.Now()
	a.CreatedAt = now.Add(-72 * time.Hour)
	assert.Equal(t, "3 days ago", a.ApplicationAge(now))
	a.CreatedAt = now
	assert.Equal(t, "Today", a.ApplicationAge(now))
	assert.Equal(t, "green", a.StatusColor())
}

func TestReviewNote_Validate(t *testing.T) {
	n := &ReviewNote{ReviewerID: uuid.New(), Rating: 5, Note: "strong"}
	assert.NoError(t, n.Validate())
	n.Rating = 6
	assert.True(t, errs.Is(n.Validate(), errs.KindValidation))
	n.Rating = 0
	assert.True(t, errs.Is(n.Validate(), errs.KindValidation))
}

func TestInterviewDetails_Validate(t *testing.T) {
	d := &InterviewDetails{}
	require.NoError(t, d.Validate())
	assert.Equal(t, "Video", d.InterviewType)

	d.InterviewType = "Carrier pigeon"
	assert.True(t, errs.Is(d.Validate(), errs.KindValidation))
}

func TestEmployee_Derived(t *testing.T) {
	e := &Employee{
		EditableEmployeeInfo: EditableEmployeeInfo{Experience: Experience{Years: 3}},
		AppliedJobIDs:        pq.StringArray{uuid.NewString(), uuid.NewString()},
	}
	resp := e.ToEmployeeResponse()
	assert.Equal(t, 2, resp.ApplicationsCount)
	assert.Equal(t, "3 years", resp.ExperienceDisplay)

	e.Experience.Level = "Mid"
	assert.Equal(t, "3 years (Mid)", e.ExperienceDisplay())
}

package application_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alimadkour96/4a8lny/internal/application"
	"github.com/alimadkour96/4a8lny/internal/errs"
	"github.com/alimadkour96/4a8lny/internal/model"
	"github.com/alimadkour96/4a8lny/internal/utilities"
)

// memRepo is an in-memory Repository. Transaction gives no isolation, so
// concurrent submissions interleave the way they would under READ COMMITTED;
// unique mirrors the partial unique index on (job, employee).
type memRepo struct {
	mu     sync.Mutex
	unique bool

	jobs      map[uuid.UUID]model.Job
	employees map[uuid.UUID]model.Employee
	questions map[uuid.UUID][]model.Question
	apps      map[uuid.UUID]model.Application
	answers   []model.Answer
	timeline  map[uuid.UUID][]model.TimelineEntry
	notes     map[uuid.UUID][]model.ReviewNote

	// afterLiveCheck runs between the duplicate check and the insert.
	afterLiveCheck func()
}

func newMemRepo(unique bool) *memRepo {
	return &memRepo{
		unique:    unique,
		jobs:      map[uuid.UUID]model.Job{},
		employees: map[uuid.UUID]model.Employee{},
		questions: map[uuid.UUID][]model.Question{},
		apps:      map[uuid.UUID]model.Application{},
		timeline:  map[uuid.UUID][]model.TimelineEntry{},
		notes:     map[uuid.UUID][]model.ReviewNote{},
	}
}

func (r *memRepo) addJob(deadline time.Time, questions ...model.Question) model.Job {
	j := model.Job{Base: model.Base{ID: uuid.New()}, CompanyID: uuid.New(), IsActive: true}
	j.ApplicationDeadline = &deadline
	for i := range questions {
		questions[i].ID = uuid.New()
		questions[i].JobID = j.ID
	}
	r.jobs[j.ID] = j
	r.questions[j.ID] = questions
	return j
}

func (r *memRepo) addEmployee() model.Employee {
	e := model.Employee{Base: model.Base{ID: uuid.New()}}
	r.employees[e.ID] = e
	return e
}

func (r *memRepo) liveCount(jobID, employeeID uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, a := range r.apps {
		if a.JobID == jobID && a.EmployeeID == employeeID && a.Status != model.ApplicationStatusWithdrawn {
			n++
		}
	}
	return n
}

func (r *memRepo) Transaction(_ context.Context, fn func(repo application.Repository) error) error {
	return fn(r)
}

func (r *memRepo) FindJob(_ context.Context, jobID uuid.UUID) (*model.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[jobID]
	if !ok {
		return nil, errs.NotFound("Job not found")
	}
	return &j, nil
}

func (r *memRepo) FindEmployee(_ context.Context, employeeID uuid.UUID) (*model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employees[employeeID]
	if !ok {
		return nil, errs.NotFound("Employee not found")
	}
	return &e, nil
}

func (r *memRepo) FindActiveQuestions(_ context.Context, jobID uuid.UUID) ([]model.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Question(nil), r.questions[jobID]...), nil
}

func (r *memRepo) HasLiveApplication(_ context.Context, jobID, employeeID uuid.UUID) (bool, error) {
	live := r.liveCount(jobID, employeeID) > 0
	if r.afterLiveCheck != nil {
		r.afterLiveCheck()
	}
	return live, nil
}

func (r *memRepo) Create(_ context.Context, app *model.Application) error {
	if err := app.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unique {
		for _, a := range r.apps {
			if a.JobID == app.JobID && a.EmployeeID == app.EmployeeID && a.Status != model.ApplicationStatusWithdrawn {
				return errs.Wrap(errs.KindDuplicateApplication, nil, "You have already applied to this job")
			}
		}
	}
	app.ID = uuid.New()
	app.CreatedAt = time.Now()
	for i := range app.Timeline {
		app.Timeline[i].ID = uuid.New()
		app.Timeline[i].ApplicationID = app.ID
	}
	r.timeline[app.ID] = append(r.timeline[app.ID], app.Timeline...)
	stored := *app
	stored.Timeline = nil
	r.apps[app.ID] = stored
	return nil
}

func (r *memRepo) SeedAnswers(_ context.Context, app *model.Application, questions []model.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range questions {
		relinked := false
		for i := range r.answers {
			if r.answers[i].QuestionID == q.ID && r.answers[i].ApplicantID == app.EmployeeID {
				r.answers[i] = model.Answer{
					Base:          r.answers[i].Base,
					QuestionID:    q.ID,
					ApplicantID:   app.EmployeeID,
					ApplicationID: app.ID,
				}
				relinked = true
			}
		}
		if !relinked {
			r.answers = append(r.answers, model.Answer{
				Base:          model.Base{ID: uuid.New()},
				QuestionID:    q.ID,
				ApplicantID:   app.EmployeeID,
				ApplicationID: app.ID,
			})
		}
	}
	return nil
}

func (r *memRepo) IncrementApplicationsCount(_ context.Context, jobID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j := r.jobs[jobID]
	j.ApplicationsCount++
	r.jobs[jobID] = j
	return nil
}

func (r *memRepo) AppendAppliedJob(_ context.Context, employeeID, jobID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := r.employees[employeeID]
	if !utilities.Contains(e.AppliedJobIDs, jobID.String()) {
		e.AppliedJobIDs = append(e.AppliedJobIDs, jobID.String())
	}
	r.employees[employeeID] = e
	return nil
}

func (r *memRepo) SetAppliedJobs(_ context.Context, employeeID uuid.UUID, jobIDs []uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := r.employees[employeeID]
	e.AppliedJobIDs = nil
	for _, id := range jobIDs {
		e.AppliedJobIDs = append(e.AppliedJobIDs, id.String())
	}
	r.employees[employeeID] = e
	return nil
}

func (r *memRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok {
		return nil, errs.NotFound("Application not found")
	}
	return &a, nil
}

func (r *memRepo) FindForUpdate(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	return r.FindByID(ctx, id)
}

func (r *memRepo) FindDetailed(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	a, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	a.Timeline = append([]model.TimelineEntry(nil), r.timeline[id]...)
	a.ReviewNotes = append([]model.ReviewNote(nil), r.notes[id]...)
	return a, nil
}

func (r *memRepo) Save(_ context.Context, app *model.Application) error {
	if err := app.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *app
	stored.Timeline, stored.ReviewNotes, stored.Answers = nil, nil, nil
	r.apps[app.ID] = stored
	return nil
}

func (r *memRepo) List(_ context.Context, q application.ListQuery) ([]model.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Application
	for _, a := range r.apps {
		if q.JobID != uuid.Nil && a.JobID != q.JobID {
			continue
		}
		if q.EmployeeID != uuid.Nil && a.EmployeeID != q.EmployeeID {
			continue
		}
		if len(q.Statuses) > 0 && !utilities.Contains(q.Statuses, a.Status) {
			continue
		}
		if q.ActiveOnly && !a.IsActive {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memRepo) AppendTimeline(_ context.Context, entry *model.TimelineEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry.ID = uuid.New()
	r.timeline[entry.ApplicationID] = append(r.timeline[entry.ApplicationID], *entry)
	return nil
}

func (r *memRepo) ListTimeline(_ context.Context, applicationID uuid.UUID) ([]model.TimelineEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.TimelineEntry(nil), r.timeline[applicationID]...), nil
}

func (r *memRepo) AddReviewNote(_ context.Context, note *model.ReviewNote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	note.ID = uuid.New()
	r.notes[note.ApplicationID] = append(r.notes[note.ApplicationID], *note)
	return nil
}

func (r *memRepo) ListReviewNotes(_ context.Context, applicationID uuid.UUID) ([]model.ReviewNote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.ReviewNote(nil), r.notes[applicationID]...), nil
}

// Package application provides HTTP handlers for job application operations.
package application

import (
	"net/http"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alimadkour96/4a8lny/internal/application"
	"github.com/alimadkour96/4a8lny/internal/model"
	"github.com/alimadkour96/4a8lny/internal/screening"
	"github.com/alimadkour96/4a8lny/internal/utilities"
)

// ApplicationController handles job application related endpoints
type ApplicationController struct {
	apps      application.Service
	screening screening.Service
	now       func() time.Time
}

// NewApplicationController creates a new instance of ApplicationController.
func NewApplicationController(apps application.Service, screening screening.Service) *ApplicationController {
	return &ApplicationController{apps: apps, screening: screening, now: time.Now}
}

// StatusRequest moves an application to another status.
type StatusRequest struct {
	Status      string    `json:"status" binding:"required"`
	PerformedBy uuid.UUID `json:"performed_by" binding:"required"`
	Notes       string    `json:"notes"`
}

// InterviewRequest schedules the interview of a shortlisted application.
type InterviewRequest struct {
	PerformedBy uuid.UUID `json:"performed_by" binding:"required"`
	model.InterviewDetails
}

// ReviewNoteRequest is a reviewer's rated note.
type ReviewNoteRequest struct {
	ReviewerID uuid.UUID `json:"reviewer_id" binding:"required"`
	Note       string    `json:"note" binding:"required"`
	Rating     int       `json:"rating" binding:"required"`
}

// WithdrawRequest withdraws an application. PerformedBy defaults to the applicant.
type WithdrawRequest struct {
	PerformedBy *uuid.UUID `json:"performed_by"`
}

// ScoreResponse is the screening score of an application; nil until an answer is evaluated.
type ScoreResponse struct {
	ApplicationID  uuid.UUID `json:"application_id"`
	ScreeningScore *int      `json:"screening_score"`
}

// RegisterRoutes mounts the application endpoints on rg.
func (j *ApplicationController) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/applications")
	g.POST("", j.ApplicationHandler)
	g.GET("/review", j.ListRequiringReview)
	g.GET("/job/:jobId", j.ListByJob)
	g.GET("/employee/:employeeId", j.ListByEmployee)
	g.GET("/:applicationId", j.GetApplication)
	g.PATCH("/:applicationId", j.UpdateStatus)
	g.GET("/:applicationId/timeline", j.Timeline)
	g.POST("/:applicationId/interview", j.ScheduleInterview)
	g.POST("/:applicationId/review-notes", j.AddReviewNote)
	g.POST("/:applicationId/withdraw", j.Withdraw)
	g.GET("/:applicationId/score", j.Score)
}

// ApplicationHandler handles the creation of a new job application by an employee.
// @Summary Create job application
// @Description Answers to the screening questions of the job are created empty and filled through the answers endpoint
// @Tags Application
// @Accept json
// @Produce json
// @Param application body application.SubmitRequest true "Application information"
// @Success 201 {object} utilities.Response "Successfully apply job post"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body or already applied"
// @Failure 404 {object} utilities.ErrorResponse "Job or employee not found, or job closed"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications [post]
func (j *ApplicationController) ApplicationHandler(c *gin.Context) {
	var req application.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.BadRequest(c, "job_id and employee_id must be provided")
		return
	}
	app, err := j.apps.Submit(c.Request.Context(), req)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusCreated, "Application submitted successfully", app.ToApplicationResponse(j.now()))
}

// GetApplication returns an application with its timeline, review notes and answers.
// @Summary Get application by ID
// @Tags Application
// @Produce json
// @Param applicationId path string true "Application ID"
// @Success 200 {object} utilities.Response
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Router /applications/{applicationId} [get]
func (j *ApplicationController) GetApplication(c *gin.Context) {
	id, ok := utilities.PathUUID(c, "applicationId")
	if !ok {
		return
	}
	app, err := j.apps.Get(c.Request.Context(), id)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Application retrieved successfully", app.ToApplicationResponse(j.now()))
}

// ListByJob returns the applications of a job, optionally of one status.
// @Summary List applications of a job
// @Tags Application
// @Produce json
// @Param jobId path string true "Job ID"
// @Param status query string false "Application status"
// @Success 200 {object} utilities.Response
// @Failure 400 {object} utilities.ErrorResponse "Invalid status"
// @Router /applications/job/{jobId} [get]
func (j *ApplicationController) ListByJob(c *gin.Context) {
	jobID, ok := utilities.PathUUID(c, "jobId")
	if !ok {
		return
	}
	apps, err := j.apps.ListByJob(c.Request.Context(), jobID, c.Query("status"))
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Applications retrieved successfully", j.responses(apps))
}

// ListByEmployee returns the applications of an employee, newest first.
// @Summary List applications of an employee
// @Tags Application
// @Produce json
// @Param employeeId path string true "Employee ID"
// @Success 200 {object} utilities.Response
// @Router /applications/employee/{employeeId} [get]
func (j *ApplicationController) ListByEmployee(c *gin.Context) {
	employeeID, ok := utilities.PathUUID(c, "employeeId")
	if !ok {
		return
	}
	apps, err := j.apps.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Applications retrieved successfully", j.responses(apps))
}

// ListRequiringReview returns the active applications that are pending or under review.
// @Summary List applications waiting for review
// @Tags Application
// @Produce json
// @Success 200 {object} utilities.Response
// @Router /applications/review [get]
func (j *ApplicationController) ListRequiringReview(c *gin.Context) {
	apps, err := j.apps.ListRequiringReview(c.Request.Context())
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Applications retrieved successfully", j.responses(apps))
}

// UpdateStatus moves an application one step along the hiring pipeline.
// @Summary Update application status
// @Tags Application
// @Accept json
// @Produce json
// @Param applicationId path string true "Application ID"
// @Param status body StatusRequest true "New status"
// @Success 200 {object} utilities.Response
// @Failure 400 {object} utilities.ErrorResponse "Unknown status or invalid transition"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Router /applications/{applicationId} [patch]
func (j *ApplicationController) UpdateStatus(c *gin.Context) {
	id, ok := utilities.PathUUID(c, "applicationId")
	if !ok {
		return
	}
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.BadRequest(c, "status and performed_by must be provided")
		return
	}
	app, err := j.apps.UpdateStatus(c.Request.Context(), id, req.Status, req.PerformedBy, req.Notes)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Application status updated successfully", app.ToApplicationResponse(j.now()))
}

// ScheduleInterview records the interview of a shortlisted application.
// @Summary Schedule interview
// @Tags Application
// @Accept json
// @Produce json
// @Param applicationId path string true "Application ID"
// @Param interview body InterviewRequest true "Interview details"
// @Success 200 {object} utilities.Response
// @Failure 400 {object} utilities.ErrorResponse "Missing date or application not shortlisted"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Router /applications/{applicationId}/interview [post]
func (j *ApplicationController) ScheduleInterview(c *gin.Context) {
	id, ok := utilities.PathUUID(c, "applicationId")
	if !ok {
		return
	}
	var req InterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.BadRequest(c, "performed_by must be provided")
		return
	}
	app, err := j.apps.ScheduleInterview(c.Request.Context(), id, req.InterviewDetails, req.PerformedBy)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Interview scheduled successfully", app.ToApplicationResponse(j.now()))
}

// AddReviewNote appends a rated note and refreshes the application score.
// @Summary Add review note
// @Tags Application
// @Accept json
// @Produce json
// @Param applicationId path string true "Application ID"
// @Param note body ReviewNoteRequest true "Note with a rating from 1 to 5"
// @Success 201 {object} utilities.Response
// @Failure 400 {object} utilities.ErrorResponse "Invalid note or rating"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Router /applications/{applicationId}/review-notes [post]
func (j *ApplicationController) AddReviewNote(c *gin.Context) {
	id, ok := utilities.PathUUID(c, "applicationId")
	if !ok {
		return
	}
	var req ReviewNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.BadRequest(c, "reviewer_id, note and rating must be provided")
		return
	}
	app, err := j.apps.AddReviewNote(c.Request.Context(), id, req.ReviewerID, req.Note, req.Rating)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusCreated, "Review note added successfully", app.ToApplicationResponse(j.now()))
}

// Withdraw withdraws an application that is not yet decided.
// @Summary Withdraw application
// @Tags Application
// @Accept json
// @Produce json
// @Param applicationId path string true "Application ID"
// @Param withdraw body WithdrawRequest false "Acting account"
// @Success 200 {object} utilities.Response
// @Failure 400 {object} utilities.ErrorResponse "Application already decided or withdrawn"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Router /applications/{applicationId}/withdraw [post]
func (j *ApplicationController) Withdraw(c *gin.Context) {
	id, ok := utilities.PathUUID(c, "applicationId")
	if !ok {
		return
	}
	var req WithdrawRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utilities.BadRequest(c, "Invalid request body")
			return
		}
	}
	app, err := j.apps.Withdraw(c.Request.Context(), id, req.PerformedBy)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Application withdrawn successfully", app.ToApplicationResponse(j.now()))
}

// Timeline returns the status history of an application, oldest first.
// @Summary Get application timeline
// @Tags Application
// @Produce json
// @Param applicationId path string true "Application ID"
// @Success 200 {object} utilities.Response
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Router /applications/{applicationId}/timeline [get]
func (j *ApplicationController) Timeline(c *gin.Context) {
	id, ok := utilities.PathUUID(c, "applicationId")
	if !ok {
		return
	}
	entries, err := j.apps.Timeline(c.Request.Context(), id)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Timeline retrieved successfully", entries)
}

// Score aggregates the evaluated screening answers of an application.
// @Summary Get application screening score
// @Tags Application
// @Produce json
// @Param applicationId path string true "Application ID"
// @Success 200 {object} utilities.Response
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Router /applications/{applicationId}/score [get]
func (j *ApplicationController) Score(c *gin.Context) {
	id, ok := utilities.PathUUID(c, "applicationId")
	if !ok {
		return
	}
	score, err := j.screening.AggregateApplicationScore(c.Request.Context(), id)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Score retrieved successfully", ScoreResponse{ApplicationID: id, ScreeningScore: score})
}

func (j *ApplicationController) responses(apps []model.Application) []model.ApplicationResponse {
	now := j.now()
	return slice.Map(apps, func(_ int, a model.Application) model.ApplicationResponse {
		return a.ToApplicationResponse(now)
	})
}

// Package screening provides HTTP handlers for screening questions and answers.
package screening

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alimadkour96/4a8lny/internal/model"
	"github.com/alimadkour96/4a8lny/internal/screening"
	"github.com/alimadkour96/4a8lny/internal/utilities"
)

// ScreeningController handles question and answer endpoints
type ScreeningController struct {
	svc screening.Service
}

// NewScreeningController creates a new instance of ScreeningController.
func NewScreeningController(svc screening.Service) *ScreeningController {
	return &ScreeningController{svc: svc}
}

// QuestionRequest is a new screening question posted by the company owning the job.
type QuestionRequest struct {
	CompanyID uuid.UUID `json:"company_id" binding:"required"`
	model.Question
}

// RegisterRoutes mounts the screening endpoints on rg.
func (sc *ScreeningController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs/:jobId/questions", sc.AddQuestion)
	rg.GET("/jobs/:jobId/questions", sc.ListQuestions)
	rg.POST("/questions/:questionId/answers", sc.RecordAnswer)
	rg.GET("/questions/:questionId/answers", sc.ListAnswers)
	rg.PUT("/answers/:answerId/evaluate", sc.EvaluateAnswer)
}

// AddQuestion appends a screening question to a job.
// @Summary Add screening question
// @Description Only the company owning the job can add questions. The question goes after the existing ones.
// @Tags Screening
// @Accept json
// @Produce json
// @Param jobId path string true "Job ID"
// @Param question body QuestionRequest true "Question"
// @Success 201 {object} utilities.Response
// @Failure 400 {object} utilities.ErrorResponse "Invalid question"
// @Failure 403 {object} utilities.ErrorResponse "Not the owner of the job"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Router /jobs/{jobId}/questions [post]
func (sc *ScreeningController) AddQuestion(c *gin.Context) {
	jobID, ok := utilities.PathUUID(c, "jobId")
	if !ok {
		return
	}
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.BadRequest(c, "company_id must be provided")
		return
	}
	q, err := sc.svc.AddQuestion(c.Request.Context(), jobID, req.CompanyID, req.Question)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusCreated, "Question added successfully", q)
}

// ListQuestions returns the active questions of a job in order, without their correct answers.
// @Summary List screening questions of a job
// @Tags Screening
// @Produce json
// @Param jobId path string true "Job ID"
// @Success 200 {object} utilities.Response
// @Router /jobs/{jobId}/questions [get]
func (sc *ScreeningController) ListQuestions(c *gin.Context) {
	jobID, ok := utilities.PathUUID(c, "jobId")
	if !ok {
		return
	}
	qs, err := sc.svc.ListQuestions(c.Request.Context(), jobID)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Questions retrieved successfully", model.PublicQuestions(qs))
}

// RecordAnswer submits an applicant's answer to a question.
// @Summary Answer a screening question
// @Tags Screening
// @Accept json
// @Produce json
// @Param questionId path string true "Question ID"
// @Param answer body screening.AnswerRequest true "Answer"
// @Success 201 {object} utilities.Response
// @Failure 400 {object} utilities.ErrorResponse "Blank answer or already answered"
// @Failure 403 {object} utilities.ErrorResponse "Application belongs to someone else"
// @Failure 404 {object} utilities.ErrorResponse "Question or application not found"
// @Router /questions/{questionId}/answers [post]
func (sc *ScreeningController) RecordAnswer(c *gin.Context) {
	questionID, ok := utilities.PathUUID(c, "questionId")
	if !ok {
		return
	}
	var req screening.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.BadRequest(c, "applicant_id, application_id and answer_text must be provided")
		return
	}
	a, err := sc.svc.RecordAnswer(c.Request.Context(), questionID, req)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusCreated, "Answer recorded successfully", a)
}

// ListAnswers returns the submitted answers to a question.
// @Summary List answers to a question
// @Tags Screening
// @Produce json
// @Param questionId path string true "Question ID"
// @Success 200 {object} utilities.Response
// @Failure 404 {object} utilities.ErrorResponse "Question not found"
// @Router /questions/{questionId}/answers [get]
func (sc *ScreeningController) ListAnswers(c *gin.Context) {
	questionID, ok := utilities.PathUUID(c, "questionId")
	if !ok {
		return
	}
	answers, err := sc.svc.ListAnswers(c.Request.Context(), questionID)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Answers retrieved successfully", answers)
}

// EvaluateAnswer scores a submitted answer and refreshes the application score.
// @Summary Evaluate an answer
// @Description With auto set, multiple-choice and true-false answers are graded against the correct answer
// @Tags Screening
// @Accept json
// @Produce json
// @Param answerId path string true "Answer ID"
// @Param evaluation body screening.EvaluateRequest true "Evaluation"
// @Success 200 {object} utilities.Response
// @Failure 400 {object} utilities.ErrorResponse "Invalid evaluation or answer not submitted"
// @Failure 404 {object} utilities.ErrorResponse "Answer not found"
// @Router /answers/{answerId}/evaluate [put]
func (sc *ScreeningController) EvaluateAnswer(c *gin.Context) {
	answerID, ok := utilities.PathUUID(c, "answerId")
	if !ok {
		return
	}
	var req screening.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.BadRequest(c, "reviewer_id must be provided")
		return
	}
	a, err := sc.svc.EvaluateAnswer(c.Request.Context(), answerID, req)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Answer evaluated successfully", a)
}

// Package jobpost provides HTTP handlers for job post related operations.
package jobpost

import (
	"net/http"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alimadkour96/4a8lny/internal/job"
	"github.com/alimadkour96/4a8lny/internal/model"
	"github.com/alimadkour96/4a8lny/internal/utilities"
)

// JobPostController handles job post related endpoints
type JobPostController struct {
	svc job.Service
	now func() time.Time
}

// NewJobPostController creates a new instance of JobPostController
func NewJobPostController(svc job.Service) *JobPostController {
	return &JobPostController{svc: svc, now: time.Now}
}

// UpdateRequest is a partial job post edit. Zero fields are left unchanged.
type UpdateRequest struct {
	ActorID uuid.UUID `json:"actor_id" binding:"required"`
	model.EditableJobInfo
}

// ActorRequest names who performs an action.
type ActorRequest struct {
	ActorID uuid.UUID `json:"actor_id" binding:"required"`
}

// SearchQuery is the query string of the job search.
// List parameters accept repeated keys or comma separated values.
type SearchQuery struct {
	Search           string   `form:"search"`
	Skills           []string `form:"skills" collection_format:"csv"`
	SalaryMin        *float64 `form:"salary_min"`
	SalaryMax        *float64 `form:"salary_max"`
	JobTypes         []string `form:"job_type" collection_format:"csv"`
	ExperienceLevels []string `form:"experience_level" collection_format:"csv"`
	Location         string   `form:"location"`
	IsRemote         *bool    `form:"is_remote"`
	CompanyID        string   `form:"company_id"`
	Offset           int      `form:"offset"`
	Limit            int      `form:"limit"`
}

// Filter converts the query to a job.SearchFilter.
func (q SearchQuery) Filter() (job.SearchFilter, bool) {
	f := job.SearchFilter{
		Search:           strings.TrimSpace(q.Search),
		Skills:           nonBlank(q.Skills),
		SalaryMin:        q.SalaryMin,
		SalaryMax:        q.SalaryMax,
		JobTypes:         nonBlank(q.JobTypes),
		ExperienceLevels: nonBlank(q.ExperienceLevels),
		Location:         strings.TrimSpace(q.Location),
		IsRemote:         q.IsRemote,
		Offset:           q.Offset,
		Limit:            q.Limit,
	}
	if q.CompanyID != "" {
		id, err := uuid.Parse(q.CompanyID)
		if err != nil {
			return f, false
		}
		f.CompanyID = id
	}
	return f, true
}

// RegisterRoutes mounts the job post endpoints on rg.
func (jc *JobPostController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs", jc.CreateJobPostHandler)
	rg.GET("/jobs", jc.SearchJobPostsHandler)
	rg.GET("/jobs/:jobId", jc.GetPostByID)
	rg.PATCH("/jobs/:jobId", jc.EditJobPost)
	rg.PATCH("/jobs/:jobId/deactivate", jc.DeactivateJobPost)
	rg.DELETE("/jobs/:jobId", jc.DeleteJobPost)
	rg.GET("/companies/:companyId/jobs", jc.ListCompanyJobPosts)
}

// CreateJobPostHandler handles the creation of a new job post by a company.
// @Summary Create job post based on given json structure
// @Description Questions, when given, become the screening questions of the post in the given order
// @Tags Jobpost
// @Accept json
// @Produce json
// @Param Jobpost body job.CreateRequest true "Input jobpost information"
// @Success 201 {object} utilities.Response "Successfully create job post"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job post"
// @Failure 403 {object} utilities.ErrorResponse "Company is deactivated"
// @Failure 404 {object} utilities.ErrorResponse "Company not found"
// @Router /jobs [post]
func (jc *JobPostController) CreateJobPostHandler(c *gin.Context) {
	var req job.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.BadRequest(c, "Invalid job post payload")
		return
	}
	j, err := jc.svc.Create(c.Request.Context(), req)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusCreated, "Job post created successfully", j.ToJobResponse(jc.now()))
}

// SearchJobPostsHandler returns one page of active job posts.
// @Summary Search job posts
// @Description Urgent posts come first, then the newest
// @Tags Jobpost
// @Produce json
// @Param search query string false "Title substring"
// @Param skills query string false "Comma separated skills, any of which must be required"
// @Param salary_min query number false "Lowest acceptable salary"
// @Param salary_max query number false "Highest acceptable salary"
// @Param job_type query string false "Comma separated job types"
// @Param experience_level query string false "Comma separated experience levels"
// @Param location query string false "Location substring"
// @Param is_remote query bool false "Remote only or on-site only"
// @Param company_id query string false "Company id"
// @Param offset query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {object} utilities.PageResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid filter"
// @Router /jobs [get]
func (jc *JobPostController) SearchJobPostsHandler(c *gin.Context) {
	var q SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utilities.BadRequest(c, "Invalid search parameters")
		return
	}
	f, ok := q.Filter()
	if !ok {
		utilities.BadRequest(c, "Invalid company id")
		return
	}
	res, err := jc.svc.Search(c.Request.Context(), f)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, utilities.PageResponse{
		Message: "Job posts retrieved successfully",
		Data:    jc.responses(res.Jobs),
		Total:   res.Total,
		Offset:  res.Offset,
		Limit:   res.Limit,
	})
}

// GetPostByID return a job post with its company and screening questions.
// @Summary Get job post by ID
// @Description Every call counts as a view
// @Tags Jobpost
// @Produce json
// @Param jobId path string true "Job ID"
// @Success 200 {object} utilities.Response
// @Failure 400 {object} utilities.ErrorResponse "Invalid job ID"
// @Failure 404 {object} utilities.ErrorResponse "Job post not found"
// @Router /jobs/{jobId} [get]
func (jc *JobPostController) GetPostByID(c *gin.Context) {
	id, ok := utilities.PathUUID(c, "jobId")
	if !ok {
		return
	}
	j, err := jc.svc.Get(c.Request.Context(), id)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Job post retrieved successfully", j.ToJobResponse(jc.now()))
}

// EditJobPost updates the non-empty fields of a job post.
// @Summary Edit job post
// @Description Only the owning company or an admin can edit a job post
// @Tags Jobpost
// @Accept json
// @Produce json
// @Param jobId path string true "Job ID"
// @Param Jobpost body UpdateRequest true "Fields to change and the acting account"
// @Success 200 {object} utilities.Response
// @Failure 400 {object} utilities.ErrorResponse "Invalid job post"
// @Failure 403 {object} utilities.ErrorResponse "Not the owner"
// @Failure 404 {object} utilities.ErrorResponse "Job post not found"
// @Router /jobs/{jobId} [patch]
func (jc *JobPostController) EditJobPost(c *gin.Context) {
	id, ok := utilities.PathUUID(c, "jobId")
	if !ok {
		return
	}
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.BadRequest(c, "actor_id must be provided")
		return
	}
	j, err := jc.svc.Update(c.Request.Context(), id, req.ActorID, req.EditableJobInfo)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Job post updated successfully", j.ToJobResponse(jc.now()))
}

// DeactivateJobPost hides a job post from the search and closes it for applications.
// @Summary Deactivate job post
// @Tags Jobpost
// @Accept json
// @Produce json
// @Param jobId path string true "Job ID"
// @Param actor body ActorRequest true "Owning company or admin"
// @Success 200 {object} utilities.Response
// @Failure 403 {object} utilities.ErrorResponse "Not the owner"
// @Failure 404 {object} utilities.ErrorResponse "Job post not found"
// @Router /jobs/{jobId}/deactivate [patch]
func (jc *JobPostController) DeactivateJobPost(c *gin.Context) {
	id, ok := utilities.PathUUID(c, "jobId")
	if !ok {
		return
	}
	var req ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.BadRequest(c, "actor_id must be provided")
		return
	}
	j, err := jc.svc.Deactivate(c.Request.Context(), id, req.ActorID)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Job post deactivated successfully", j.ToJobResponse(jc.now()))
}

// DeleteJobPost removes a job post and its screening questions.
// @Summary Delete job post
// @Tags Jobpost
// @Produce json
// @Param jobId path string true "Job ID"
// @Param actor_id query string true "Owning company or admin"
// @Success 200 {object} utilities.Response
// @Failure 400 {object} utilities.ErrorResponse "Invalid ID"
// @Failure 403 {object} utilities.ErrorResponse "Not the owner"
// @Failure 404 {object} utilities.ErrorResponse "Job post not found"
// @Router /jobs/{jobId} [delete]
func (jc *JobPostController) DeleteJobPost(c *gin.Context) {
	id, ok := utilities.PathUUID(c, "jobId")
	if !ok {
		return
	}
	actorID, err := uuid.Parse(c.Query("actor_id"))
	if err != nil {
		utilities.BadRequest(c, "actor_id must be a valid ID")
		return
	}
	if err := jc.svc.Delete(c.Request.Context(), id, actorID); err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Job post deleted successfully", nil)
}

// ListCompanyJobPosts returns every job post of a company, inactive ones included.
// @Summary List job posts of a company
// @Tags Jobpost
// @Produce json
// @Param companyId path string true "Company ID"
// @Success 200 {object} utilities.Response
// @Failure 404 {object} utilities.ErrorResponse "Company not found"
// @Router /companies/{companyId}/jobs [get]
func (jc *JobPostController) ListCompanyJobPosts(c *gin.Context) {
	companyID, ok := utilities.PathUUID(c, "companyId")
	if !ok {
		return
	}
	jobs, err := jc.svc.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Job posts retrieved successfully", jc.responses(jobs))
}

func (jc *JobPostController) responses(jobs []model.Job) []model.JobResponse {
	now := jc.now()
	return slice.Map(jobs, func(_ int, j model.Job) model.JobResponse {
		return j.ToJobResponse(now)
	})
}

func nonBlank(values []string) []string {
	return slice.FilterMap(values, func(_ int, v string) (string, bool) {
		v = strings.TrimSpace(v)
		return v, v != ""
	})
}

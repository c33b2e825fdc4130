// Package employee provides HTTP handlers for employee profiles.
package employee

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/alimadkour96/4a8lny/internal/errs"
	"github.com/alimadkour96/4a8lny/internal/job"
	"github.com/alimadkour96/4a8lny/internal/model"
	"github.com/alimadkour96/4a8lny/internal/store"
	"github.com/alimadkour96/4a8lny/internal/utilities"
)

// EmployeeController handles employee profile endpoints
type EmployeeController struct {
	employees *store.Store[model.Employee]
	jobs      job.Service
	now       func() time.Time
}

// NewEmployeeController creates a new instance of EmployeeController
func NewEmployeeController(db *gorm.DB, jobs job.Service) *EmployeeController {
	return &EmployeeController{
		employees: store.New[model.Employee](db, nil),
		jobs:      jobs,
		now:       time.Now,
	}
}

// ProfileUpdate is an employee editing their own profile.
type ProfileUpdate struct {
	ActorID uuid.UUID `json:"actor_id"`
	model.EditableEmployeeInfo
}

// RegisterRoutes mounts the employee profile endpoints on rg.
func (ec *EmployeeController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/employees/:employeeId", ec.GetEmployeeProfile)
	rg.PATCH("/employees/:employeeId", ec.EditEmployeeProfile)
	rg.GET("/employees/:employeeId/jobs", ec.RecommendedJobs)
}

// GetEmployeeProfile retrieves an employee profile with its derived fields.
// @Summary Retrieve employee profile
// @Tags Employee
// @Produce json
// @Param employeeId path string true "ID of employee"
// @Success 200 {object} utilities.Response "Successfully retrieve employee profile"
// @Failure 400 {object} utilities.ErrorResponse "Invalid employee ID"
// @Failure 404 {object} utilities.ErrorResponse "Employee not exist"
// @Router /employees/{employeeId} [get]
func (ec *EmployeeController) GetEmployeeProfile(c *gin.Context) {
	id, ok := utilities.PathUUID(c, "employeeId")
	if !ok {
		return
	}
	e, err := ec.employees.FindByID(c.Request.Context(), id)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Employee retrieved successfully", e.ToEmployeeResponse())
}

// EditEmployeeProfile handles editing an employee's own profile.
// @Summary Edit employee profile
// @Description Sensitive field like id, email, verified status, and applications can't be overwritten
// @Tags Employee
// @Accept json
// @Produce json
// @Param employeeId path string true "ID of employee"
// @Param employee_profile body ProfileUpdate true "Employee info to be written"
// @Success 200 {object} utilities.Response "Successfully overwrite"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 403 {object} utilities.ErrorResponse "Not the owner of the profile"
// @Failure 404 {object} utilities.ErrorResponse "Employee not exist"
// @Router /employees/{employeeId} [patch]
func (ec *EmployeeController) EditEmployeeProfile(c *gin.Context) {
	id, ok := utilities.PathUUID(c, "employeeId")
	if !ok {
		return
	}

	var edited ProfileUpdate
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&edited); err != nil {
		utilities.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if edited.ActorID == uuid.Nil {
		utilities.BadRequest(c, "actor_id must be provided")
		return
	}
	if edited.ActorID != id {
		utilities.Fail(c, errs.Unauthorized("You can only edit your own profile"))
		return
	}

	e, err := ec.employees.UpdateByID(c.Request.Context(), id, func(e *model.Employee) error {
		utilities.MergeNonEmpty(&e.EditableEmployeeInfo, &edited.EditableEmployeeInfo)
		e.LastActive = ec.now()
		return nil
	})
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Employee updated successfully", e.ToEmployeeResponse())
}

// RecommendedJobs returns open job posts requiring any of the employee's skills.
// @Summary Recommended job posts for an employee
// @Description Employees without skills get the regular job search result
// @Tags Employee
// @Produce json
// @Param employeeId path string true "ID of employee"
// @Success 200 {object} utilities.PageResponse
// @Failure 404 {object} utilities.ErrorResponse "Employee not exist"
// @Router /employees/{employeeId}/jobs [get]
func (ec *EmployeeController) RecommendedJobs(c *gin.Context) {
	id, ok := utilities.PathUUID(c, "employeeId")
	if !ok {
		return
	}
	e, err := ec.employees.FindByID(c.Request.Context(), id)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	res, err := ec.jobs.Search(c.Request.Context(), job.SearchFilter{Skills: e.Skills})
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	now := ec.now()
	c.JSON(http.StatusOK, utilities.PageResponse{
		Message: "Job posts retrieved successfully",
		Data: slice.Map(res.Jobs, func(_ int, j model.Job) model.JobResponse {
			return j.ToJobResponse(now)
		}),
		Total:  res.Total,
		Offset: res.Offset,
		Limit:  res.Limit,
	})
}

// Package admin provides the moderation endpoints reserved to admins.
package admin

import (
	"net/http"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alimadkour96/4a8lny/internal/application"
	"github.com/alimadkour96/4a8lny/internal/controller/jobpost"
	"github.com/alimadkour96/4a8lny/internal/job"
	"github.com/alimadkour96/4a8lny/internal/middleware"
	"github.com/alimadkour96/4a8lny/internal/model"
	"github.com/alimadkour96/4a8lny/internal/store"
	"github.com/alimadkour96/4a8lny/internal/utilities"
)

// AdminController handles admin moderation endpoints
type AdminController struct {
	db        *gorm.DB
	companies *store.Store[model.Company]
	employees *store.Store[model.Employee]
	jobs      job.Service
	apps      application.Service
	now       func() time.Time
}

// NewAdminController creates a new instance of AdminController.
func NewAdminController(db *gorm.DB, jobs job.Service, apps application.Service) *AdminController {
	return &AdminController{
		db:        db,
		companies: store.New[model.Company](db, nil),
		employees: store.New[model.Employee](db, nil),
		jobs:      jobs,
		apps:      apps,
		now:       time.Now,
	}
}

// AccountQuery filters the company and employee lists.
type AccountQuery struct {
	Active   *bool `form:"active"`
	Verified *bool `form:"verified"`
}

func (q AccountQuery) filter() store.Filter {
	var f store.Filter
	if q.Active != nil {
		f.Where = append(f.Where, store.Eq("is_active", *q.Active))
	}
	if q.Verified != nil {
		f.Where = append(f.Where, store.Eq("is_verified", *q.Verified))
	}
	return f
}

// AccountFlags are the moderation flags an admin can set on an account.
type AccountFlags struct {
	IsActive   *bool `json:"is_active"`
	IsVerified *bool `json:"is_verified"`
}

func (f AccountFlags) apply(active, verified *bool) {
	if f.IsActive != nil {
		*active = *f.IsActive
	}
	if f.IsVerified != nil {
		*verified = *f.IsVerified
	}
}

// CompanyUpdate is a partial company edit. Zero fields are left unchanged.
type CompanyUpdate struct {
	model.EditableCompanyInfo
	AccountFlags
}

// EmployeeUpdate is a partial employee edit. Zero fields are left unchanged.
type EmployeeUpdate struct {
	model.EditableEmployeeInfo
	AccountFlags
}

// RegisterRoutes mounts the admin endpoints on rg behind middleware.RequireAdmin.
func (ac *AdminController) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/admin", middleware.RequireAdmin(ac.db))
	g.GET("/companies", ac.GetCompanies)
	g.PUT("/companies/:id", ac.UpdateCompany)
	g.DELETE("/companies/:id", ac.DeleteCompany)
	g.GET("/employees", ac.GetEmployees)
	g.PUT("/employees/:id", ac.UpdateEmployee)
	g.DELETE("/employees/:id", ac.DeleteEmployee)
	g.GET("/employees/:id/applications", ac.GetEmployeeApplications)
	g.GET("/jobs", ac.GetJobs)
	g.PATCH("/jobs/:id/deactivate", ac.DeactivateJob)
}

// GetCompanies lists companies, optionally narrowed by the active and verified flags.
// @Summary Get companies
// @Description Only admin can access this endpoints
// @Description If no query given, the server will return all companies
// @Tags Admin
// @Produce json
// @Param X-Admin-ID header string true "Admin ID"
// @Param active query bool false "Active or deactivated companies"
// @Param verified query bool false "Verified or unverified companies"
// @Success 200 {object} utilities.Response
// @Failure 400 {object} utilities.ErrorResponse "Invalid query"
// @Failure 403 {object} utilities.ErrorResponse "Not an admin"
// @Router /admin/companies [get]
func (ac *AdminController) GetCompanies(c *gin.Context) {
	var q AccountQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utilities.BadRequest(c, "Invalid query parameters")
		return
	}
	companies, err := ac.companies.FindMany(c.Request.Context(), q.filter(), store.Desc("created_at"))
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Companies retrieved successfully", companies)
}

// UpdateCompany edits a company profile and its moderation flags.
// @Summary Update company
// @Description Only admin can access this endpoints
// @Tags Admin
// @Accept json
// @Produce json
// @Param X-Admin-ID header string true "Admin ID"
// @Param id path string true "Company ID"
// @Param company body CompanyUpdate true "Fields to change"
// @Success 200 {object} utilities.Response
// @Failure 400 {object} utilities.ErrorResponse "Invalid company"
// @Failure 403 {object} utilities.ErrorResponse "Not an admin"
// @Failure 404 {object} utilities.ErrorResponse "Company not found"
// @Router /admin/companies/{id} [put]
func (ac *AdminController) UpdateCompany(c *gin.Context) {
	id, ok := utilities.PathUUID(c, "id")
	if !ok {
		return
	}
	var req CompanyUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.BadRequest(c, "Invalid company payload")
		return
	}
	company, err := ac.companies.UpdateByID(c.Request.Context(), id, func(co *model.Company) error {
		utilities.MergeNonEmpty(&co.EditableCompanyInfo, &req.EditableCompanyInfo)
		req.AccountFlags.apply(&co.IsActive, &co.IsVerified)
		return nil
	})
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Company updated successfully", company)
}

// DeleteCompany removes a company together with its job posts.
// @Summary Delete company
// @Description Only admin can access this endpoints
// @Tags Admin
// @Produce json
// @Param X-Admin-ID header string true "Admin ID"
// @Param id path string true "Company ID"
// @Success 200 {object} utilities.Response
// @Failure 403 {object} utilities.ErrorResponse "Not an admin"
// @Failure 404 {object} utilities.ErrorResponse "Company not found"
// @Router /admin/companies/{id} [delete]
func (ac *AdminController) DeleteCompany(c *gin.Context) {
	id, ok := utilities.PathUUID(c, "id")
	if !ok {
		return
	}
	if err := ac.companies.DeleteByID(c.Request.Context(), id); err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Company deleted successfully", nil)
}

// GetEmployees lists employees, optionally narrowed by the active and verified flags.
// @Summary Get employees
// @Description Only admin can access this endpoints
// @Tags Admin
// @Produce json
// @Param X-Admin-ID header string true "Admin ID"
// @Param active query bool false "Active or deactivated employees"
// @Param verified query bool false "Verified or unverified employees"
// @Success 200 {object} utilities.Response
// @Failure 400 {object} utilities.ErrorResponse "Invalid query"
// @Failure 403 {object} utilities.ErrorResponse "Not an admin"
// @Router /admin/employees [get]
func (ac *AdminController) GetEmployees(c *gin.Context) {
	var q AccountQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utilities.BadRequest(c, "Invalid query parameters")
		return
	}
	employees, err := ac.employees.FindMany(c.Request.Context(), q.filter(), store.Desc("created_at"))
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Employees retrieved successfully", employees)
}

// UpdateEmployee edits an employee profile and its moderation flags.
// @Summary Update employee
// @Description Only admin can access this endpoints
// @Tags Admin
// @Accept json
// @Produce json
// @Param X-Admin-ID header string true "Admin ID"
// @Param id path string true "Employee ID"
// @Param employee body EmployeeUpdate true "Fields to change"
// @Success 200 {object} utilities.Response
// @Failure 400 {object} utilities.ErrorResponse "Invalid employee"
// @Failure 403 {object} utilities.ErrorResponse "Not an admin"
// @Failure 404 {object} utilities.ErrorResponse "Employee not found"
// @Router /admin/employees/{id} [put]
func (ac *AdminController) UpdateEmployee(c *gin.Context) {
	id, ok := utilities.PathUUID(c, "id")
	if !ok {
		return
	}
	var req EmployeeUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.BadRequest(c, "Invalid employee payload")
		return
	}
	employee, err := ac.employees.UpdateByID(c.Request.Context(), id, func(e *model.Employee) error {
		utilities.MergeNonEmpty(&e.EditableEmployeeInfo, &req.EditableEmployeeInfo)
		req.AccountFlags.apply(&e.IsActive, &e.IsVerified)
		return nil
	})
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Employee updated successfully", employee)
}

// DeleteEmployee removes an employee together with their applications.
// @Summary Delete employee
// @Description Only admin can access this endpoints
// @Tags Admin
// @Produce json
// @Param X-Admin-ID header string true "Admin ID"
// @Param id path string true "Employee ID"
// @Success 200 {object} utilities.Response
// @Failure 403 {object} utilities.ErrorResponse "Not an admin"
// @Failure 404 {object} utilities.ErrorResponse "Employee not found"
// @Router /admin/employees/{id} [delete]
func (ac *AdminController) DeleteEmployee(c *gin.Context) {
	id, ok := utilities.PathUUID(c, "id")
	if !ok {
		return
	}
	if err := ac.employees.DeleteByID(c.Request.Context(), id); err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Employee deleted successfully", nil)
}

// GetEmployeeApplications lists every application of an employee, newest first.
// @Summary Get applications of an employee
// @Tags Admin
// @Produce json
// @Param X-Admin-ID header string true "Admin ID"
// @Param id path string true "Employee ID"
// @Success 200 {object} utilities.Response
// @Failure 403 {object} utilities.ErrorResponse "Not an admin"
// @Failure 404 {object} utilities.ErrorResponse "Employee not found"
// @Router /admin/employees/{id}/applications [get]
func (ac *AdminController) GetEmployeeApplications(c *gin.Context) {
	id, ok := utilities.PathUUID(c, "id")
	if !ok {
		return
	}
	apps, err := ac.apps.ListByEmployee(c.Request.Context(), id)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	now := ac.now()
	utilities.Success(c, http.StatusOK, "Applications retrieved successfully",
		slice.Map(apps, func(_ int, a model.Application) model.ApplicationResponse {
			return a.ToApplicationResponse(now)
		}))
}

// GetJobs lists job posts including deactivated and expired ones.
// @Summary Get job posts
// @Description Accepts the same filters as the public job search
// @Tags Admin
// @Produce json
// @Param X-Admin-ID header string true "Admin ID"
// @Param company_id query string false "Company id"
// @Param offset query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {object} utilities.PageResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid filter"
// @Failure 403 {object} utilities.ErrorResponse "Not an admin"
// @Router /admin/jobs [get]
func (ac *AdminController) GetJobs(c *gin.Context) {
	var q jobpost.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utilities.BadRequest(c, "Invalid search parameters")
		return
	}
	f, ok := q.Filter()
	if !ok {
		utilities.BadRequest(c, "Invalid company id")
		return
	}
	f.IncludeInactive = true
	res, err := ac.jobs.Search(c.Request.Context(), f)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	now := ac.now()
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

// DeactivateJob closes a job post on behalf of the calling admin.
// @Summary Deactivate job post
// @Tags Admin
// @Produce json
// @Param X-Admin-ID header string true "Admin ID"
// @Param id path string true "Job ID"
// @Success 200 {object} utilities.Response
// @Failure 403 {object} utilities.ErrorResponse "Not an admin"
// @Failure 404 {object} utilities.ErrorResponse "Job post not found"
// @Router /admin/jobs/{id}/deactivate [patch]
func (ac *AdminController) DeactivateJob(c *gin.Context) {
	id, ok := utilities.PathUUID(c, "id")
	if !ok {
		return
	}
	admin, _ := middleware.CurrentAdmin(c)
	j, err := ac.jobs.Deactivate(c.Request.Context(), id, admin.ID)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Job post deactivated successfully", j.ToJobResponse(ac.now()))
}

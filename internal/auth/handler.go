package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alimadkour96/4a8lny/internal/model"
	"github.com/alimadkour96/4a8lny/internal/utilities"
)

// Handler serves the register and login endpoints of every role.
type Handler struct {
	svc Service
}

// NewHandler returns a Handler over svc.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// LoginRequest is the body of every login endpoint.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminRegisterRequest is the body of the admin register endpoint.
type AdminRegisterRequest struct {
	Email        string    `json:"email" binding:"required"`
	Password     string    `json:"password" binding:"required"`
	IsSuperAdmin bool      `json:"is_super_admin"`
	CreatedBy    uuid.UUID `json:"created_by" binding:"required"`
}

// RegisterRoutes mounts the auth endpoints on rg.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/auth")
	g.POST("/company/register", h.RegisterCompany)
	g.POST("/company/login", h.LoginCompany)
	g.POST("/employee/register", h.RegisterEmployee)
	g.POST("/employee/login", h.LoginEmployee)
	g.POST("/admin/register", h.RegisterAdmin)
	g.POST("/admin/login", h.LoginAdmin)
}

// RegisterCompany creates a company account and returns it.
// @Summary Register a company account
// @Tags Auth
// @Accept json
// @Produce json
// @Param company body model.Company true "Company profile with email and password"
// @Success 201 {object} utilities.Response
// @Failure 400 {object} utilities.ErrorResponse "Invalid profile or email already registered"
// @Router /auth/company/register [post]
func (h *Handler) RegisterCompany(c *gin.Context) {
	var company model.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		utilities.BadRequest(c, "Invalid company payload")
		return
	}
	created, err := h.svc.RegisterCompany(c.Request.Context(), &company)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusCreated, "Company registered successfully", created)
}

// RegisterEmployee creates an employee account and returns it.
// @Summary Register an employee account
// @Tags Auth
// @Accept json
// @Produce json
// @Param employee body model.Employee true "Employee profile with email and password"
// @Success 201 {object} utilities.Response
// @Failure 400 {object} utilities.ErrorResponse "Invalid profile or email already registered"
// @Router /auth/employee/register [post]
func (h *Handler) RegisterEmployee(c *gin.Context) {
	var employee model.Employee
	if err := c.ShouldBindJSON(&employee); err != nil {
		utilities.BadRequest(c, "Invalid employee payload")
		return
	}
	created, err := h.svc.RegisterEmployee(c.Request.Context(), &employee)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusCreated, "Employee registered successfully", created)
}

// RegisterAdmin creates an admin account on behalf of a super admin.
// @Summary Create an admin account
// @Description Only an existing super admin, given as created_by, can create admins
// @Tags Auth
// @Accept json
// @Produce json
// @Param admin body AdminRegisterRequest true "New admin"
// @Success 201 {object} utilities.Response
// @Failure 400 {object} utilities.ErrorResponse
// @Failure 403 {object} utilities.ErrorResponse "created_by is not a super admin"
// @Router /auth/admin/register [post]
func (h *Handler) RegisterAdmin(c *gin.Context) {
	var req AdminRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.BadRequest(c, "Email, password and created_by must be provided")
		return
	}
	admin := &model.Admin{
		Credentials:  model.Credentials{Email: req.Email, Password: req.Password},
		IsSuperAdmin: req.IsSuperAdmin,
	}
	created, err := h.svc.RegisterAdmin(c.Request.Context(), admin, req.CreatedBy)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusCreated, "Admin created successfully", created)
}

// LoginCompany checks company credentials and returns the company.
// @Summary Log in as a company
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Email and password"
// @Success 200 {object} utilities.Response
// @Failure 400 {object} utilities.ErrorResponse "Invalid email or password"
// @Failure 403 {object} utilities.ErrorResponse "Account is deactivated"
// @Router /auth/company/login [post]
func (h *Handler) LoginCompany(c *gin.Context) {
	req, ok := bindLogin(c)
	if !ok {
		return
	}
	company, err := h.svc.LoginCompany(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Login successful", company)
}

// LoginEmployee checks employee credentials and returns the employee.
// @Summary Log in as an employee
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Email and password"
// @Success 200 {object} utilities.Response
// @Failure 400 {object} utilities.ErrorResponse "Invalid email or password"
// @Failure 403 {object} utilities.ErrorResponse "Account is deactivated"
// @Router /auth/employee/login [post]
func (h *Handler) LoginEmployee(c *gin.Context) {
	req, ok := bindLogin(c)
	if !ok {
		return
	}
	employee, err := h.svc.LoginEmployee(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Login successful", employee)
}

// LoginAdmin checks admin credentials and returns the admin.
// @Summary Log in as an admin
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Email and password"
// @Success 200 {object} utilities.Response
// @Failure 400 {object} utilities.ErrorResponse "Invalid email or password"
// @Router /auth/admin/login [post]
func (h *Handler) LoginAdmin(c *gin.Context) {
	req, ok := bindLogin(c)
	if !ok {
		return
	}
	admin, err := h.svc.LoginAdmin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Login successful", admin)
}

func bindLogin(c *gin.Context) (LoginRequest, bool) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utilities.BadRequest(c, "Email and password must be provided")
		return req, false
	}
	return req, true
}

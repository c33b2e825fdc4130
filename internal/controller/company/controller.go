// Package company provides HTTP handlers for company profiles.
package company

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/alimadkour96/4a8lny/internal/errs"
	"github.com/alimadkour96/4a8lny/internal/model"
	"github.com/alimadkour96/4a8lny/internal/store"
	"github.com/alimadkour96/4a8lny/internal/utilities"
)

// CompanyController handles company profile endpoints
type CompanyController struct {
	companies *store.Store[model.Company]
}

// NewCompanyController creates a new instance of CompanyController
func NewCompanyController(db *gorm.DB) *CompanyController {
	return &CompanyController{
		companies: store.New[model.Company](db, nil),
	}
}

// ProfileUpdate is a company editing its own profile.
type ProfileUpdate struct {
	ActorID uuid.UUID `json:"actor_id"`
	model.EditableCompanyInfo
}

// RegisterRoutes mounts the company profile endpoints on rg.
func (cc *CompanyController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/companies/:companyId", cc.GetCompanyByID)
	rg.PATCH("/companies/:companyId", cc.EditCompanyProfile)
}

// GetCompanyByID retrieves a company with its job posts.
// @Summary Retrieve company profile from database by given ID
// @Tags Company
// @Produce json
// @Param companyId path string true "ID of company"
// @Success 200 {object} utilities.Response "Successfully retrieve company profile"
// @Failure 400 {object} utilities.ErrorResponse "Invalid company ID"
// @Failure 404 {object} utilities.ErrorResponse "Company not exist"
// @Router /companies/{companyId} [get]
func (cc *CompanyController) GetCompanyByID(c *gin.Context) {
	id, ok := utilities.PathUUID(c, "companyId")
	if !ok {
		return
	}
	company, err := cc.companies.FindByID(c.Request.Context(), id, "JobPosts")
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Company retrieved successfully", company)
}

// EditCompanyProfile function overwrite company profile, save into database
// ,and response edited profile as JSON format.
// @Summary Edit company profile
// @Description Overwrite company profile and save into database
// @Description Sensitive field like id, email, verified status, and job post can't be overwritten
// @Tags Company
// @Accept json
// @Produce json
// @Param companyId path string true "ID of company"
// @Param company_profile body ProfileUpdate true "Company info to be written"
// @Success 200 {object} utilities.Response "Successfully overwrite"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 403 {object} utilities.ErrorResponse "Not the owner of the profile"
// @Failure 404 {object} utilities.ErrorResponse "Company not exist"
// @Router /companies/{companyId} [patch]
func (cc *CompanyController) EditCompanyProfile(c *gin.Context) {
	id, ok := utilities.PathUUID(c, "companyId")
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

	company, err := cc.companies.UpdateByID(c.Request.Context(), id, func(co *model.Company) error {
		utilities.MergeNonEmpty(&co.EditableCompanyInfo, &edited.EditableCompanyInfo)
		return nil
	})
	if err != nil {
		utilities.Fail(c, err)
		return
	}
	utilities.Success(c, http.StatusOK, "Company updated successfully", company)
}

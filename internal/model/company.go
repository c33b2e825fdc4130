package model

import (
	"strings"

	"github.com/alimadkour96/4a8lny/internal/errs"
)

// CompanySizes are the allowed head-count buckets of a company.
var CompanySizes = []string{"1-10", "11-50", "51-200", "201-500", "500+"}

// EditableCompanyInfo is the part of a company that can be updated by the company or an admin.
type EditableCompanyInfo struct {
	Name        string `gorm:"type:text;not null" json:"name"`
	Address     string `gorm:"type:text;not null" json:"address"`
	Phone       string `gorm:"type:text;not null;uniqueIndex" json:"phone"`
	Description string `gorm:"type:text" json:"description"`
	Industry    string `gorm:"type:text;not null" json:"industry"`
	CompanySize string `gorm:"type:text;default:'1-10'" json:"company_size"`
	Website     string `gorm:"type:text" json:"website"`
}

// Company is gorm model for a hiring company
type Company struct {
	Base
	Credentials `gorm:"embedded"`
	EditableCompanyInfo
	IsActive   bool `gorm:"default:true" json:"is_active"`
	IsVerified bool `gorm:"default:false" json:"is_verified"`

	JobPosts []Job `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"job_posts,omitempty"`
}

// Normalize trims the free-text fields and lower-cases the email.
func (c *Company) Normalize() {
	c.normalize()
	c.Name = strings.TrimSpace(c.Name)
	c.Address = strings.TrimSpace(c.Address)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Industry = strings.TrimSpace(c.Industry)
	c.Website = strings.TrimSpace(c.Website)
	if c.CompanySize == "" {
		c.CompanySize = CompanySizes[0]
	}
}

// Validate checks the company constraints.
func (c *Company) Validate() error {
	if err := c.validate(); err != nil {
		return err
	}
	if err := lengthBetween("Company name", c.Name, 2, 100); err != nil {
		return err
	}
	if err := lengthBetween("Address", c.Address, 10, 0); err != nil {
		return err
	}
	if !phonePattern.MatchString(c.Phone) {
		return errs.Validation("Please enter a valid phone number")
	}
	return firstErr(
		maxLength("Description", c.Description, 500),
		required("Industry", c.Industry),
		oneOf("Company size", c.CompanySize, CompanySizes),
		optionalURL("website", c.Website),
	)
}

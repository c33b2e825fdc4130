package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alimadkour96/4a8lny/internal/errs"
)

// Roles
const (
	RoleCompany  = "company"
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// Base holds the primary key and timestamps shared by every record.
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetID returns the record id.
func (b Base) GetID() uuid.UUID {
	return b.ID
}

// Credentials is the login part of Company, Employee and Admin.
// Password is only ever a pending plaintext; the stored value is PasswordHash.
type Credentials struct {
	Email        string `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Password     string `gorm:"-" json:"password,omitempty"`
	PasswordHash string `gorm:"column:password;type:text;not null" json:"-"`
}

// TakePassword returns and clears the pending plaintext password.
func (c *Credentials) TakePassword() string {
	p := c.Password
	c.Password = ""
	return p
}

// SetPasswordHash stores the hashed password.
func (c *Credentials) SetPasswordHash(digest string) {
	c.PasswordHash = digest
}

// PasswordDigest returns the stored password hash.
func (c *Credentials) PasswordDigest() string {
	return c.PasswordHash
}

// NormalizeEmail is the form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (c *Credentials) normalize() {
	c.Email = NormalizeEmail(c.Email)
}

func (c *Credentials) validate() error {
	if err := required("Email", c.Email); err != nil {
		return err
	}
	if !emailPattern.MatchString(c.Email) {
		return errs.Validation("Please enter a valid email address")
	}
	if c.Password == "" && c.PasswordHash == "" {
		return errs.Validation("Password is required")
	}
	if c.Password != "" && len(c.Password) < 8 {
		return errs.Validation("Password must be at least 8 characters long")
	}
	return nil
}

// Admin moderates companies, employees, jobs and applications.
type Admin struct {
	Base
	Credentials  `gorm:"embedded"`
	IsSuperAdmin bool `gorm:"default:false" json:"is_super_admin"`
}

// Normalize lower-cases the email.
func (a *Admin) Normalize() { a.normalize() }

// Validate checks the admin constraints.
func (a *Admin) Validate() error { return a.validate() }

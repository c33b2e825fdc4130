// Package auth registers company, employee and admin accounts and logs them in.
// Login returns the account record; no session or token is issued.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/alimadkour96/4a8lny/internal/credential"
	"github.com/alimadkour96/4a8lny/internal/errs"
	"github.com/alimadkour96/4a8lny/internal/logger"
	"github.com/alimadkour96/4a8lny/internal/model"
	"github.com/alimadkour96/4a8lny/internal/store"
)

// Service registers and authenticates accounts of every role.
type Service interface {
	RegisterCompany(ctx context.Context, c *model.Company) (*model.Company, error)
	RegisterEmployee(ctx context.Context, e *model.Employee) (*model.Employee, error)
	// RegisterAdmin creates an admin on behalf of an existing super admin.
	RegisterAdmin(ctx context.Context, a *model.Admin, createdBy uuid.UUID) (*model.Admin, error)

	LoginCompany(ctx context.Context, email, password string) (*model.Company, error)
	LoginEmployee(ctx context.Context, email, password string) (*model.Employee, error)
	LoginAdmin(ctx context.Context, email, password string) (*model.Admin, error)
}

type service struct {
	companies *store.Store[model.Company]
	employees *store.Store[model.Employee]
	admins    *store.Store[model.Admin]
	guard     credential.Guard
	authLog   *logger.AuthLogger
	lg        *zap.Logger
	now       func() time.Time
}

// NewService returns the account service. Passwords are hashed and verified by guard.
func NewService(db *gorm.DB, guard credential.Guard, authLog *logger.AuthLogger, lg *zap.Logger) Service {
	if authLog == nil {
		authLog = logger.NewNopAuthLogger()
	}
	if lg == nil {
		lg = zap.NewNop()
	}
	return &service{
		companies: store.New[model.Company](db, guard),
		employees: store.New[model.Employee](db, guard),
		admins:    store.New[model.Admin](db, guard),
		guard:     guard,
		authLog:   authLog,
		lg:        lg.Named("auth"),
		now:       time.Now,
	}
}

func (s *service) RegisterCompany(ctx context.Context, c *model.Company) (*model.Company, error) {
	c.ID = uuid.Nil
	c.IsActive = true
	c.IsVerified = false
	if err := register(ctx, s.companies, c, c.Email); err != nil {
		s.authLog.LogAttempt(model.RoleCompany, false, c.Email, "register: "+errs.Message(err))
		return nil, err
	}
	s.authLog.LogAttempt(model.RoleCompany, true, c.Email, "register")
	return c, nil
}

func (s *service) RegisterEmployee(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	e.ID = uuid.Nil
	e.IsActive = true
	e.IsVerified = false
	e.AppliedJobIDs = nil
	e.LastActive = s.now()
	if err := register(ctx, s.employees, e, e.Email); err != nil {
		s.authLog.LogAttempt(model.RoleEmployee, false, e.Email, "register: "+errs.Message(err))
		return nil, err
	}
	s.authLog.LogAttempt(model.RoleEmployee, true, e.Email, "register")
	return e, nil
}

func (s *service) RegisterAdmin(ctx context.Context, a *model.Admin, createdBy uuid.UUID) (*model.Admin, error) {
	creator, err := s.admins.FindByID(ctx, createdBy)
	if err != nil && !errs.Is(err, errs.KindNotFound) {
		return nil, err
	}
	if creator == nil || !creator.IsSuperAdmin {
		s.authLog.LogAttempt(model.RoleAdmin, false, a.Email, "register: creator is not a super admin")
		return nil, errs.Unauthorized("Only a super admin can create admins")
	}
	a.ID = uuid.Nil
	if err := register(ctx, s.admins, a, a.Email); err != nil {
		s.authLog.LogAttempt(model.RoleAdmin, false, a.Email, "register: "+errs.Message(err))
		return nil, err
	}
	s.authLog.LogAttempt(model.RoleAdmin, true, a.Email, "register")
	s.lg.Info("admin created", zap.Stringer("admin_id", a.ID), zap.Stringer("created_by", createdBy))
	return a, nil
}

func (s *service) LoginCompany(ctx context.Context, email, password string) (*model.Company, error) {
	c, err := login(ctx, s.companies, s.guard, email, password)
	if err == nil && !c.IsActive {
		err = errs.Unauthorized("Account is deactivated")
	}
	s.logLogin(model.RoleCompany, email, err)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) LoginEmployee(ctx context.Context, email, password string) (*model.Employee, error) {
	e, err := login(ctx, s.employees, s.guard, email, password)
	if err == nil && !e.IsActive {
		err = errs.Unauthorized("Account is deactivated")
	}
	if err == nil {
		e.LastActive = s.now()
		err = store.Translate(s.employees.Session(ctx).Where("id = ?", e.ID).
			UpdateColumn("last_active", e.LastActive).Error, "Employee")
	}
	s.logLogin(model.RoleEmployee, email, err)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) LoginAdmin(ctx context.Context, email, password string) (*model.Admin, error) {
	a, err := login(ctx, s.admins, s.guard, email, password)
	s.logLogin(model.RoleAdmin, email, err)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) logLogin(role, email string, err error) {
	if err != nil {
		s.authLog.LogAttempt(role, false, email, "login: "+errs.Message(err))
		return
	}
	s.authLog.LogAttempt(role, true, email, "login")
}

// register rejects a taken email before inserting; the unique index covers races.
func register[T any](ctx context.Context, st *store.Store[T], v *T, email string) error {
	n, err := st.Count(ctx, store.Filter{Where: []store.Cond{store.Eq("email", model.NormalizeEmail(email))}})
	if err != nil {
		return err
	}
	if n > 0 {
		return errs.Conflict("Email already registered")
	}
	return st.Create(ctx, v)
}

// digester is implemented by every account model through model.Credentials.
type digester[T any] interface {
	*T
	PasswordDigest() string
}

// login finds the account by email and verifies password.
// A missing account and a wrong password give the same error.
func login[T any, PT digester[T]](ctx context.Context, st *store.Store[T], guard credential.Guard, email, password string) (*T, error) {
	v, err := st.FindOne(ctx, store.Filter{Where: []store.Cond{store.Eq("email", model.NormalizeEmail(email))}})
	switch {
	case errs.Is(err, errs.KindNotFound):
		return nil, errs.InvalidCredentials()
	case err != nil:
		return nil, err
	}
	if !guard.Verify(password, PT(v).PasswordDigest()) {
		return nil, errs.InvalidCredentials()
	}
	return v, nil
}

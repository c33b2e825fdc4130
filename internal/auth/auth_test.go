package auth

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/alimadkour96/4a8lny/internal/credential"
	"github.com/alimadkour96/4a8lny/internal/database"
	"github.com/alimadkour96/4a8lny/internal/errs"
	"github.com/alimadkour96/4a8lny/internal/logger"
	"github.com/alimadkour96/4a8lny/internal/model"
	"github.com/alimadkour96/4a8lny/internal/utilities"
)

var testDB *database.DBinstanceStruct
var testTeardown func(context.Context, ...testcontainers.TerminateOption) error

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	var err error
	testTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start test db: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := testTeardown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "teardown error: %v\n", err)
	}
	os.Exit(code)
}

func newHandler() *Handler {
	svc := NewService(testDB.DB, credential.NewBcryptGuard(bcrypt.MinCost), logger.NewNopAuthLogger(), zap.NewNop())
	return NewHandler(svc)
}

func companyPayload(email, phone string) map[string]any {
	return map[string]any{
		"email":    email,
		"password": "company-pass-1",
		"name":     "Lumen Labs",
		"address":  "88 Sukhumvit Road, Bangkok",
		"phone":    phone,
		"industry": "Software",
	}
}

func TestRegisterCompany(t *testing.T) {
	h := newHandler()

	rec, resp, err := utilities.SimulateAPICall(h.RegisterCompany, "/auth/company/register", http.MethodPost,
		companyPayload("  HR@Lumen.example.com ", "+6621110001"))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	data := resp["data"].(map[string]any)
	assert.Equal(t, "hr@lumen.example.com", data["email"])
	assert.NotContains(t, data, "password")
	assert.Equal(t, true, data["is_active"])
	assert.Equal(t, false, data["is_verified"])

	var stored model.Company
	require.NoError(t, testDB.DB.First(&stored, "email = ?", "hr@lumen.example.com").Error)
	assert.NotEqual(t, "company-pass-1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("company-pass-1")))

	t.Run("email already registered", func(t *testing.T) {
		rec, resp, err := utilities.SimulateAPICall(h.RegisterCompany, "/auth/company/register", http.MethodPost,
			companyPayload("hr@lumen.example.com", "+6621110002"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Email already registered", resp["message"])
	})

	t.Run("short password", func(t *testing.T) {
		payload := companyPayload("short@lumen.example.com", "+6621110003")
		payload["password"] = "short"
		rec, resp, err := utilities.SimulateAPICall(h.RegisterCompany, "/auth/company/register", http.MethodPost, payload)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Password must be at least 8 characters long", resp["message"])
	})
}

func TestRegisterEmployee(t *testing.T) {
	h := newHandler()

	payload := map[string]any{
		"email":    "carol@example.com",
		"password": "employee-pass-1",
		"name":     "Carol Tan",
		"job_type": "Frontend",
		"skills":   []string{"typescript", "react"},
		// ignored: the index starts empty
		"applications": []string{uuid.NewString()},
	}
	rec, resp, err := utilities.SimulateAPICall(h.RegisterEmployee, "/auth/employee/register", http.MethodPost, payload)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	data := resp["data"].(map[string]any)
	assert.Equal(t, "carol@example.com", data["email"])
	assert.Empty(t, data["applications"])
	assert.Equal(t, "Flexible", data["availability"])
}

func TestRegisterAdmin(t *testing.T) {
	h := newHandler()
	ctx := context.Background()

	rec, _, err := utilities.SimulateAPICall(h.RegisterAdmin, "/auth/admin/register", http.MethodPost, map[string]any{
		"email":      "moderator@example.com",
		"password":   "moderator-pass",
		"created_by": database.TestAdmin.ID,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	moderator, err := h.svc.LoginAdmin(ctx, "moderator@example.com", "moderator-pass")
	require.NoError(t, err)
	assert.False(t, moderator.IsSuperAdmin)

	testCases := []struct {
		name      string
		createdBy uuid.UUID
	}{
		{name: "regular admin", createdBy: moderator.ID},
		{name: "unknown creator", createdBy: uuid.New()},
	}
	for i, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec, resp, err := utilities.SimulateAPICall(h.RegisterAdmin, "/auth/admin/register", http.MethodPost, map[string]any{
				"email":      fmt.Sprintf("rejected%d@example.com", i),
				"password":   "rejected-pass",
				"created_by": tc.createdBy,
			})
			require.NoError(t, err)
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, "Only a super admin can create admins", resp["message"])
		})
	}
}

func TestLogin(t *testing.T) {
	h := newHandler()

	testCases := []struct {
		name       string
		handler    gin.HandlerFunc
		email      string
		password   string
		wantStatus int
		wantID     uuid.UUID
	}{
		{
			name:       "company",
			handler:    h.LoginCompany,
			email:      database.TestCompany1.Email,
			password:   database.TestSeedPassword,
			wantStatus: http.StatusOK,
			wantID:     database.TestCompany1.ID,
		},
		{
			name:       "employee with mixed case email",
			handler:    h.LoginEmployee,
			email:      "Alice@Example.com",
			password:   database.TestSeedPassword,
			wantStatus: http.StatusOK,
			wantID:     database.TestEmployee1.ID,
		},
		{
			name:       "admin",
			handler:    h.LoginAdmin,
			email:      database.TestAdmin.Email,
			password:   database.TestSeedPassword,
			wantStatus: http.StatusOK,
			wantID:     database.TestAdmin.ID,
		},
		{
			name:       "wrong password",
			handler:    h.LoginCompany,
			email:      database.TestCompany1.Email,
			password:   "not-the-password",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown email",
			handler:    h.LoginEmployee,
			email:      "nobody@example.com",
			password:   database.TestSeedPassword,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "company credentials on the employee endpoint",
			handler:    h.LoginEmployee,
			email:      database.TestCompany1.Email,
			password:   database.TestSeedPassword,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec, resp, err := utilities.SimulateAPICall(tc.handler, "/login", http.MethodPost, LoginRequest{
				Email:    tc.email,
				Password: tc.password,
			})
			require.NoError(t, err)
			require.Equal(t, tc.wantStatus, rec.Code, "body: %s", rec.Body.String())
			if tc.wantStatus != http.StatusOK {
				// the same message whether the email or the password was wrong
				assert.Equal(t, "Invalid email or password", resp["message"])
				return
			}
			data := resp["data"].(map[string]any)
			assert.Equal(t, tc.wantID.String(), data["id"])
			assert.NotContains(t, data, "password")
		})
	}
}

func TestLogin_missingFields(t *testing.T) {
	h := newHandler()
	rec, resp, err := utilities.SimulateAPICall(h.LoginCompany, "/login", http.MethodPost, map[string]string{"email": "x@example.com"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email and password must be provided", resp["message"])
}

func TestLoginEmployee_touchesLastActive(t *testing.T) {
	svc := NewService(testDB.DB, credential.NewBcryptGuard(bcrypt.MinCost), nil, nil).(*service)
	at := time.Now().Add(time.Hour).Truncate(time.Second)
	svc.now = func() time.Time { return at }

	e, err := svc.LoginEmployee(context.Background(), database.TestEmployee2.Email, database.TestSeedPassword)
	require.NoError(t, err)
	assert.True(t, at.Equal(e.LastActive))

	var stored model.Employee
	require.NoError(t, testDB.DB.First(&stored, "id = ?", database.TestEmployee2.ID).Error)
	assert.WithinDuration(t, at, stored.LastActive, time.Second)
}

func TestLogin_deactivatedAccount(t *testing.T) {
	ctx := context.Background()
	svc := NewService(testDB.DB, credential.NewBcryptGuard(bcrypt.MinCost), nil, nil)

	company := &model.Company{
		Credentials: model.Credentials{Email: "closed@example.com", Password: "closed-pass-1"},
		EditableCompanyInfo: model.EditableCompanyInfo{
			Name:     "Closed Co",
			Address:  "1 Silom Road, Bangkok",
			Phone:    "+6621110009",
			Industry: "Retail",
		},
	}
	_, err := svc.RegisterCompany(ctx, company)
	require.NoError(t, err)
	require.NoError(t, testDB.DB.Model(&model.Company{}).Where("id = ?", company.ID).
		Update("is_active", false).Error)

	_, err = svc.LoginCompany(ctx, "closed@example.com", "closed-pass-1")
	assert.True(t, errs.Is(err, errs.KindUnauthorized), "got %v", err)

	// a wrong password still reads as bad credentials
	_, err = svc.LoginCompany(ctx, "closed@example.com", "wrong-pass-1")
	assert.True(t, errs.Is(err, errs.KindInvalidCredentials), "got %v", err)
}

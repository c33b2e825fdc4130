package company

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"github.com/alimadkour96/4a8lny/internal/database"
	"github.com/alimadkour96/4a8lny/internal/testutil"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
	os.Exit(code)
}

func newRouter() *gin.Engine {
	r := testutil.NewRouter()
	NewCompanyController(testDB.DB).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestGetCompanyByID_Success(t *testing.T) {
	r := newRouter()

	rec, resp := testutil.MakeJSONRequest(nil, r, "/api/v1/companies/"+database.TestCompany1.ID.String(), http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, database.TestCompany1.Name, data["name"])
	assert.NotContains(t, data, "password")
	assert.Len(t, data["job_posts"], 2)
}

func TestGetCompanyByID_NotFound(t *testing.T) {
	r := newRouter()

	rec, _ := testutil.MakeJSONRequest(nil, r, "/api/v1/companies/"+uuid.NewString(), http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, r, "/api/v1/companies/technova", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEditCompanyProfile(t *testing.T) {
	companyID := database.TestCompany2.ID
	testCases := []struct {
		name     string
		body     any
		wantCode int
	}{
		{
			name:     "own profile",
			body:     gin.H{"actor_id": companyID, "description": "Data analytics and ML consulting"},
			wantCode: http.StatusOK,
		},
		{
			name:     "someone else's profile",
			body:     gin.H{"actor_id": database.TestCompany1.ID, "name": "Malicious Update"},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "missing actor",
			body:     gin.H{"name": "Nobody"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "self verification",
			body:     gin.H{"actor_id": companyID, "is_verified": true},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid website",
			body:     gin.H{"actor_id": companyID, "website": "dataforge"},
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter()

			rec, resp := testutil.MakeJSONRequest(tc.body, r, "/api/v1/companies/"+companyID.String(), http.MethodPatch)

			require.Equal(t, tc.wantCode, rec.Code, rec.Body.String())
			if tc.wantCode == http.StatusOK {
				data := resp["data"].(map[string]interface{})
				assert.Equal(t, "Data analytics and ML consulting", data["description"])
				assert.Equal(t, database.TestCompany2.Name, data["name"])
				assert.Equal(t, false, data["is_verified"])
			}
		})
	}
}

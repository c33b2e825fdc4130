package employee

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
	"github.com/alimadkour96/4a8lny/internal/job"
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
	jobs := job.NewService(job.NewRepository(testDB.DB), job.Options{}, nil)
	r := testutil.NewRouter()
	NewEmployeeController(testDB.DB, jobs).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestGetEmployeeProfile(t *testing.T) {
	r := newRouter()

	rec, resp := testutil.MakeJSONRequest(nil, r, "/api/v1/employees/"+database.TestEmployee2.ID.String(), http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, database.TestEmployee2.Email, data["email"])
	assert.Equal(t, "5 years (Senior)", data["experience_display"])
	assert.Equal(t, float64(0), data["applications_count"])
	assert.NotContains(t, data, "password")
}

func TestGetEmployeeProfile_NotFound(t *testing.T) {
	r := newRouter()

	rec, resp := testutil.MakeJSONRequest(nil, r, "/api/v1/employees/"+uuid.NewString(), http.MethodGet)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Employee not found", resp["message"])
}

func TestEditEmployeeProfile(t *testing.T) {
	employeeID := database.TestEmployee2.ID
	testCases := []struct {
		name     string
		body     any
		wantCode int
		check    func(t *testing.T, data map[string]interface{})
	}{
		{
			name:     "own profile",
			body:     gin.H{"actor_id": employeeID, "skills": []string{"python", "sql", "spark"}, "availability": "1 month"},
			wantCode: http.StatusOK,
			check: func(t *testing.T, data map[string]interface{}) {
				assert.Equal(t, []interface{}{"python", "sql", "spark"}, data["skills"])
				assert.Equal(t, "1 month", data["availability"])
				assert.Equal(t, database.TestEmployee2.Name, data["name"])
			},
		},
		{
			name:     "someone else's profile",
			body:     gin.H{"actor_id": database.TestEmployee1.ID, "name": "Mallory"},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "missing actor",
			body:     gin.H{"name": "Nobody"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "application index is read only",
			body:     gin.H{"actor_id": employeeID, "applications": []string{uuid.NewString()}},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown degree",
			body:     gin.H{"actor_id": employeeID, "education": gin.H{"degree": "Wizardry"}},
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter()

			rec, resp := testutil.MakeJSONRequest(tc.body, r, "/api/v1/employees/"+employeeID.String(), http.MethodPatch)

			require.Equal(t, tc.wantCode, rec.Code, rec.Body.String())
			if tc.check != nil {
				tc.check(t, resp["data"].(map[string]interface{}))
			}
		})
	}
}

func TestRecommendedJobs(t *testing.T) {
	r := newRouter()

	rec, resp := testutil.MakeJSONRequest(nil, r, "/api/v1/employees/"+database.TestEmployee1.ID.String()+"/jobs", http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	titles := []string{}
	for _, item := range resp["data"].([]interface{}) {
		titles = append(titles, item.(map[string]interface{})["title"].(string))
	}
	assert.ElementsMatch(t, []string{database.TestJob1.Title, database.TestJob3.Title}, titles)
	assert.Equal(t, float64(2), resp["total"])
}

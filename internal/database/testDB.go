package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/alimadkour96/4a8lny/internal/config"
	"github.com/alimadkour96/4a8lny/internal/credential"
	m "github.com/alimadkour96/4a8lny/internal/model"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported seeded records
var (
	TestAdmin     m.Admin
	TestCompany1  m.Company
	TestCompany2  m.Company
	TestEmployee1 m.Employee
	TestEmployee2 m.Employee

	// Add exported plain password
	TestSeedPassword = "SeedPass123!"

	TestJob1 m.Job
	TestJob2 m.Job
	TestJob3 m.Job

	// TestQuestion1 is a multiple-choice question on TestJob1, TestQuestion2 an essay question on it.
	TestQuestion1 m.Question
	TestQuestion2 m.Question
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	cfg := config.DatabaseConfig{
		UseConnStr:    true,
		ConnectionStr: fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
		Name:          dbName,
	}

	db, err := NewDBInstance(cfg, zap.NewNop())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts one admin, two companies, two employees, three jobs and two questions.
func seedTestData(db *DBinstanceStruct) error {
	guard := credential.NewBcryptGuard(bcrypt.MinCost)
	hashedPwd, err := guard.Hash(TestSeedPassword)
	if err != nil {
		return err
	}
	creds := func(email string) m.Credentials {
		return m.Credentials{Email: email, PasswordHash: hashedPwd}
	}

	TestAdmin = m.Admin{Credentials: creds("admin@example.com"), IsSuperAdmin: true}
	if err := db.Create(&TestAdmin).Error; err != nil {
		return err
	}

	companies := []m.Company{
		{
			Credentials: creds("hr@technova.example.com"),
			EditableCompanyInfo: m.EditableCompanyInfo{
				Name:        "TechNova",
				Address:     "99 Rama IX Road, Bangkok",
				Phone:       "+6620000001",
				Description: "Innovative platform solutions",
				Industry:    "Software",
				CompanySize: "51-200",
				Website:     "https://technova.example.com",
			},
			IsVerified: true,
		},
		{
			Credentials: creds("jobs@dataforge.example.com"),
			EditableCompanyInfo: m.EditableCompanyInfo{
				Name:        "DataForge",
				Address:     "12 Nimman Road, Chiang Mai",
				Phone:       "+6650000002",
				Description: "Data analytics consulting",
				Industry:    "Consulting",
				CompanySize: "11-50",
			},
		},
	}
	if err := db.Create(&companies).Error; err != nil {
		return err
	}
	TestCompany1, TestCompany2 = companies[0], companies[1]

	employees := []m.Employee{
		{
			Credentials: creds("alice@example.com"),
			EditableEmployeeInfo: m.EditableEmployeeInfo{
				Name:       "Alice Nguyen",
				JobType:    "Backend",
				Skills:     pq.StringArray{"go", "sql", "docker"},
				Experience: m.Experience{Years: 2, Level: "Junior"},
				Education:  m.Education{Degree: "Bachelor", Field: "Computer Engineering", GraduationYear: 2023},
				Location:   "Bangkok",
			},
		},
		{
			Credentials: creds("bob@example.com"),
			EditableEmployeeInfo: m.EditableEmployeeInfo{
				Name:       "Bob Somsak",
				JobType:    "Data",
				Skills:     pq.StringArray{"python", "sql"},
				Experience: m.Experience{Years: 5, Level: "Senior"},
				Location:   "Chiang Mai",
				IsRemote:   true,
			},
		},
	}
	if err := db.Create(&employees).Error; err != nil {
		return err
	}
	TestEmployee1, TestEmployee2 = employees[0], employees[1]

	exp1 := time.Now().AddDate(0, 1, 0)
	exp2 := time.Now().AddDate(0, 2, 0)
	exp3 := time.Now().AddDate(0, 3, 0)
	jobs := []m.Job{
		{
			CompanyID: TestCompany1.ID,
			EditableJobInfo: m.EditableJobInfo{
				Title:               "Backend Engineer",
				Description:         "Work on Go microservices and the PostgreSQL data layer behind the job board.",
				RequiredSkills:      pq.StringArray{"go", "sql"},
				SalaryRange:         m.SalaryRange{Min: 40000, Max: 70000},
				JobType:             "Full-time",
				ExperienceLevel:     "Mid",
				Location:            "Bangkok (Hybrid)",
				IsUrgent:            true,
				Requirements:        m.JobRequirements{Education: "Bachelor", YearsOfExperience: 2},
				ApplicationDeadline: &exp1,
			},
		},
		{
			CompanyID: TestCompany1.ID,
			EditableJobInfo: m.EditableJobInfo{
				Title:               "Frontend Developer Intern",
				Description:         "Assist the web team building a component library in React and TypeScript.",
				RequiredSkills:      pq.StringArray{"react", "typescript"},
				SalaryRange:         m.SalaryRange{Min: 12000, Max: 15000},
				JobType:             "Internship",
				ExperienceLevel:     "Entry",
				Location:            "Remote",
				IsRemote:            true,
				Requirements:        m.JobRequirements{Education: "Any"},
				ApplicationDeadline: &exp2,
			},
		},
		{
			CompanyID: TestCompany2.ID,
			EditableJobInfo: m.EditableJobInfo{
				Title:               "Data Analyst",
				Description:         "Support data cleansing, reporting pipelines and dashboard creation for clients.",
				RequiredSkills:      pq.StringArray{"sql", "python"},
				SalaryRange:         m.SalaryRange{Min: 30000, Max: 45000},
				JobType:             "Contract",
				ExperienceLevel:     "Junior",
				Location:            "Chiang Mai (On-site)",
				Requirements:        m.JobRequirements{Education: "Bachelor"},
				ApplicationDeadline: &exp3,
			},
		},
	}
	if err := db.Create(&jobs).Error; err != nil {
		return err
	}
	TestJob1, TestJob2, TestJob3 = jobs[0], jobs[1], jobs[2]

	questions := []m.Question{
		{
			JobID:         TestJob1.ID,
			CompanyID:     TestCompany1.ID,
			Text:          "Which keyword starts a goroutine?",
			Type:          m.QuestionMultipleChoice,
			Options:       pq.StringArray{"go", "async", "spawn"},
			CorrectAnswer: "go",
			Points:        2,
			Difficulty:    "Easy",
			Order:         1,
		},
		{
			JobID:      TestJob1.ID,
			CompanyID:  TestCompany1.ID,
			Text:       "Describe how you would design an idempotent payment endpoint.",
			Type:       m.QuestionEssay,
			Points:     3,
			Difficulty: "Hard",
			Order:      2,
		},
	}
	if err := db.Create(&questions).Error; err != nil {
		return err
	}
	TestQuestion1, TestQuestion2 = questions[0], questions[1]

	return nil
}

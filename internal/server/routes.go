// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/alimadkour96/4a8lny/internal/application"
	"github.com/alimadkour96/4a8lny/internal/auth"
	"github.com/alimadkour96/4a8lny/internal/controller/admin"
	appcontroller "github.com/alimadkour96/4a8lny/internal/controller/application"
	"github.com/alimadkour96/4a8lny/internal/controller/company"
	"github.com/alimadkour96/4a8lny/internal/controller/employee"
	"github.com/alimadkour96/4a8lny/internal/controller/jobpost"
	screeningcontroller "github.com/alimadkour96/4a8lny/internal/controller/screening"
	"github.com/alimadkour96/4a8lny/internal/job"
	"github.com/alimadkour96/4a8lny/internal/middleware"
	"github.com/alimadkour96/4a8lny/internal/screening"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.New()
	db := s.DB.DB

	jobs := job.NewService(job.NewRepository(db), job.Options{
		ApplicationWindow: time.Duration(s.cfg.Server.ApplicationWindow) * 24 * time.Hour,
		DefaultPageLimit:  s.cfg.Server.DefaultPageLimit,
	}, s.lg)
	apps := application.NewService(application.NewRepository(db), s.lg)
	screen := screening.NewService(screening.NewRepository(db), s.lg)

	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(s.lg),
		cors.New(s.corsConfig()),
		middleware.SafeHeader(s.cfg.Server.HSTSMaxAge),
		middleware.RateLimiterMiddleware(s.cfg.Server.RateLimitPerSec),
	)
	if s.cfg.Server.MaxBodyBytes > 0 {
		r.Use(middleware.SizeLimit(s.cfg.Server.MaxBodyBytes))
	}

	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	{
		auth.NewHandler(auth.NewService(db, s.guard, s.authLog, s.lg)).RegisterRoutes(v1)
		jobpost.NewJobPostController(jobs).RegisterRoutes(v1)
		company.NewCompanyController(db).RegisterRoutes(v1)
		employee.NewEmployeeController(db, jobs).RegisterRoutes(v1)
		screeningcontroller.NewScreeningController(screen).RegisterRoutes(v1)
		appcontroller.NewApplicationController(apps, screen).RegisterRoutes(v1)
		admin.NewAdminController(db, jobs, apps).RegisterRoutes(v1)
	}

	return r
}

func (s *MyServer) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders: []string{"Accept", "Content-Type", middleware.AdminHeader},
		MaxAge:       12 * time.Hour,
	}
	if len(s.cfg.Server.AllowOrigins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = s.cfg.Server.AllowOrigins // Add your frontend URL
	cfg.AllowCredentials = true
	return cfg
}

func (s *MyServer) healthHandler(c *gin.Context) {
	stats := s.DB.Health()
	if stats["status"] != "up" {
		c.JSON(http.StatusServiceUnavailable, stats)
		return
	}
	c.JSON(http.StatusOK, stats)
}

package server

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/alimadkour96/4a8lny/internal/config"
	"github.com/alimadkour96/4a8lny/internal/credential"
	"github.com/alimadkour96/4a8lny/internal/database"
	"github.com/alimadkour96/4a8lny/internal/logger"
)

// MyServer holds what the route handlers are built from
type MyServer struct {
	cfg     config.Config
	DB      *database.DBinstanceStruct
	guard   credential.Guard
	authLog *logger.AuthLogger
	lg      *zap.Logger
}

// New construct a MyServer. A nil logger or auth logger discards output.
func New(cfg config.Config, db *database.DBinstanceStruct, guard credential.Guard, authLog *logger.AuthLogger, lg *zap.Logger) *MyServer {
	if lg == nil {
		lg = zap.NewNop()
	}
	if authLog == nil {
		authLog = logger.NewNopAuthLogger()
	}
	return &MyServer{cfg: cfg, DB: db, guard: guard, authLog: authLog, lg: lg}
}

// NewServer construct the http.Server listening on the configured port
func NewServer(cfg config.Config, db *database.DBinstanceStruct, guard credential.Guard, authLog *logger.AuthLogger, lg *zap.Logger) *http.Server {
	s := New(cfg, db, guard, authLog, lg)

	// Declare Server config
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// Package logger builds the zap loggers used across the service.
package logger

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alimadkour96/4a8lny/internal/config"
)

// New builds the application logger from cfg and installs it as the zap global.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zapcore.InfoLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	lg, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(lg)
	return lg, nil
}

// AuthLogger records authentication attempts.
// A disabled AuthLogger discards everything.
type AuthLogger struct {
	lg *zap.Logger
}

// NewAuthLogger opens cfg.AuthLogFile in append mode when cfg.AuthLog is set.
func NewAuthLogger(cfg config.LoggingConfig) (*AuthLogger, error) {
	if !cfg.AuthLog {
		return &AuthLogger{lg: zap.NewNop()}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.AuthLogFile), 0o750); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(cfg.AuthLogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), zapcore.DebugLevel)
	return &AuthLogger{lg: zap.New(core).Named("auth")}, nil
}

// NewNopAuthLogger returns an AuthLogger that writes nothing.
func NewNopAuthLogger() *AuthLogger {
	return &AuthLogger{lg: zap.NewNop()}
}

// LogAttempt records one authentication attempt.
// role: company|employee|admin, success marks the outcome, identifier is usually the email.
func (a *AuthLogger) LogAttempt(role string, success bool, identifier string, message string) {
	fields := []zap.Field{
		zap.String("role", role),
		zap.String("identifier", identifier),
	}
	if message != "" {
		fields = append(fields, zap.String("message", message))
	}
	if success {
		a.lg.Info("auth success", fields...)
		return
	}
	a.lg.Warn("auth fail", fields...)
}

// Sync flushes buffered entries.
func (a *AuthLogger) Sync() error {
	return a.lg.Sync()
}

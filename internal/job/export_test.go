package job

import (
	"time"

	"go.uber.org/zap"
)

// NewServiceWithClock is NewService with a fixed clock.
func NewServiceWithClock(repo Repository, opts Options, now func() time.Time) Service {
	s := NewService(repo, opts, zap.NewNop()).(*service)
	s.now = now
	return s
}

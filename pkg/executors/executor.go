package executors

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/yurifrl/ofx2qif/pkg/config"
	"github.com/yurifrl/ofx2qif/pkg/service"
)

type Executor struct {
	logger *log.Logger
	config *config.Config
}

func New(logger *log.Logger, config *config.Config) *Executor {
	return &Executor{
		logger: logger,
		config: config,
	}
}

// Change is the outcome of one plan job.
type Change struct {
	Job int
	service.Summary
}

// runLogger tags one plan execution with a fresh run id.
func (e *Executor) runLogger() *log.Logger {
	return e.logger.With("run", uuid.NewString())
}

// outputDir prefers the plan's directory over the configured one.
func (e *Executor) outputDir(planned string) string {
	if planned != "" {
		return planned
	}
	return e.config.OutputDir
}

func (e *Executor) workers(planned int) int {
	if planned > 0 {
		return planned
	}
	if e.config.Workers > 0 {
		return e.config.Workers
	}
	return 1
}

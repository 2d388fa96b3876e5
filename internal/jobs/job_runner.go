package jobs

import (
	"github.com/piyush898784/rentz/internal/config"
	"github.com/piyush898784/rentz/internal/logger"
	"github.com/piyush898784/rentz/internal/repository"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	rentalRepo repository.RentalRepository
	config     *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(rentalRepo repository.RentalRepository, cfg *config.Config) *JobRunner {
	return &JobRunner{
		rentalRepo: rentalRepo,
		config:     cfg,
	}
}

// Config returns the loaded configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

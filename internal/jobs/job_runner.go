package jobs

import (
	"context"
	"time"

	"rentcar-bot/internal/config"
	"rentcar-bot/internal/logger"
	"rentcar-bot/internal/service"
	"rentcar-bot/internal/session"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	sessions *session.Store
	digest   service.DigestService
	config   *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(sessions *session.Store, digest service.DigestService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		sessions: sessions,
		digest:   digest,
		config:   cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
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

// ReapSessions drops conversations idle past the configured limit.
func (jr *JobRunner) ReapSessions() {
	jr.runWithRecovery("ReapSessions", func() {
		maxIdle := time.Duration(jr.config.Session.MaxIdleMinutes) * time.Minute
		removed := jr.sessions.Reap(maxIdle)
		if removed > 0 {
			logger.Info("Reaped idle sessions", "removed", removed, "max_idle", maxIdle)
		}
	})
}

// SendOperatorDigest emails the nightly booking summary.
func (jr *JobRunner) SendOperatorDigest() {
	jr.runWithRecovery("SendOperatorDigest", func() {
		if !jr.config.Digest.Enabled {
			logger.Debug("Digest disabled, skipping")
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := jr.digest.SendDailyDigest(ctx); err != nil {
			logger.Error("Failed to send operator digest", "error", err)
		}
	})
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.ReapSessions()
	jr.SendOperatorDigest()
}

package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"vidshare-backend/internal/config"
	videoJob "vidshare-backend/internal/domains/video/job"
	"vidshare-backend/internal/shared"
	"vidshare-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	jobConfig config.JobConfig
}

func NewScheduler(redisAddress string, jobConfig config.JobConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		jobConfig: jobConfig,
	}
}

// RegisterMaintenanceJobs wires up all recurring jobs.
func (s *Scheduler) RegisterMaintenanceJobs() error {
	return s.registerSweepOrphansJob()
}

// Sweep runs hourly by default. The grace period keeps in-flight
// uploads safe: a file must sit unreferenced for a full day before it
// is considered abandoned.
func (s *Scheduler) registerSweepOrphansJob() error {
	payload, err := json.Marshal(videoJob.SweepOrphansPayload{
		GracePeriod: s.jobConfig.SweepGracePeriod,
		BatchLimit:  100,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeSweepOrphans, payload)

	_, err = s.scheduler.Register(
		s.jobConfig.SweepCronSpec,
		task,
		asynq.Queue(shared.QueueMaintenance),
		asynq.MaxRetry(2),
		asynq.Timeout(10*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register SweepOrphans job", err)
		return err
	}

	logger.Info("Registered SweepOrphans job", map[string]interface{}{
		"cron": s.jobConfig.SweepCronSpec,
	})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}

package cron

import (
	"Commento/internal/api/config"
	"Commento/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine     *cron.Cron
	collectJob *job.CollectJob
}

func NewCronManager(collectJob *job.CollectJob) *Manager {
	return &Manager{
		engine:     cron.New(cron.WithSeconds()),
		collectJob: collectJob,
	}
}

// RegisterJobs registers the scheduled jobs. The collection spec comes from
// config and defaults to a daily run.
func (s *Manager) RegisterJobs() error {
	spec := config.Cfg.Cron.CollectSpec
	if spec == "" {
		spec = "@daily"
	}
	if _, err := s.engine.AddJob(spec, s.collectJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("cron engine stopped")
	s.engine.Stop()
}

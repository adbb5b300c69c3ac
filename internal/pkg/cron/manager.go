package cron

import (
	"Conexus/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine           *cron.Cron
	networkMetricJob *job.NetworkMetricJob
	inviteMetricJob  *job.InviteMetricJob
}

func NewCronManager(networkMetricJob *job.NetworkMetricJob, inviteMetricJob *job.InviteMetricJob) *Manager {
	return &Manager{
		engine:           cron.New(cron.WithSeconds()),
		networkMetricJob: networkMetricJob,
		inviteMetricJob:  inviteMetricJob,
	}
}

func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@daily", s.networkMetricJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@daily", s.inviteMetricJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron engine stopped")
	s.engine.Stop()
}

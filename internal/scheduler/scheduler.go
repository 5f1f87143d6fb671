package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"lineupbot/internal/service"
)

type Scheduler struct {
	s           gocron.Scheduler
	advice      *service.AdviceService
	sendMessage func(string) error
}

func NewScheduler(advice *service.AdviceService, sendMessage func(string) error) (*Scheduler, error) {
	location, err := time.LoadLocation("America/Chicago") // CDT
	if err != nil {
		slog.Error("Failed to load location", "error", err)
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:           s,
		advice:      advice,
		sendMessage: sendMessage,
	}, nil
}

func (s *Scheduler) Start() error {
	var err error

	// Optimal lineup reminder - Thursday 17:30 CDT, before the early game
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Thursday), gocron.NewAtTimes(gocron.NewAtTime(17, 30, 0))),
		gocron.NewTask(s.sendOptimalLineup),
	)
	if err != nil {
		return fmt.Errorf("failed to create lineup reminder job: %w", err)
	}

	// Expert lineup check - Sunday 10:30 CDT, last call before kickoff
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Sunday), gocron.NewAtTimes(gocron.NewAtTime(10, 30, 0))),
		gocron.NewTask(s.sendExpertLineup),
	)
	if err != nil {
		return fmt.Errorf("failed to create expert lineup job: %w", err)
	}

	// Roster projections - Wednesday 7:30 CDT, once waivers have cleared
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Wednesday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.sendRosterReport),
	)
	if err != nil {
		return fmt.Errorf("failed to create roster report job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) sendOptimalLineup() {
	report, err := s.advice.OptimalLineup(context.Background())
	if err != nil {
		slog.Error("Failed to build optimal lineup", "error", err)
		return
	}
	s.sendMessage(report)
}

func (s *Scheduler) sendExpertLineup() {
	report, err := s.advice.ExpertLineup(context.Background())
	if err != nil {
		slog.Error("Failed to build expert lineup", "error", err)
		return
	}
	s.sendMessage(report)
}

func (s *Scheduler) sendRosterReport() {
	report, err := s.advice.RosterReport(context.Background())
	if err != nil {
		slog.Error("Failed to build roster report", "error", err)
		return
	}
	s.sendMessage(report)
}

// Package app wires the in-memory store, the mock intelligence pipeline and
// the mock network façade into one process-wide graph.
package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-sim/internal/adapter/repository"
	"github.com/johnquangdev/meeting-sim/internal/domain/repositories"
	"github.com/johnquangdev/meeting-sim/internal/infrastructure/metrics"
	"github.com/johnquangdev/meeting-sim/internal/infrastructure/mockserver"
	aiuse "github.com/johnquangdev/meeting-sim/internal/usecase/ai"
	"github.com/johnquangdev/meeting-sim/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-sim/pkg/config"
)

// App is the assembled backend
type App struct {
	Repo     repositories.MeetingRepository
	Meetings meeting.Service
	AI       aiuse.Service
	Server   *mockserver.Server
	Registry *prometheus.Registry
	Logger   *zap.Logger
}

// New builds the backend from cfg. Extra server options are applied after the
// configured ones, so tests can override latency or the scheduler.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts ...mockserver.Option) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	repo := repository.NewMeetingRepository()
	if cfg.SeedDemo {
		if err := meeting.SeedDemo(ctx, repo); err != nil {
			return nil, fmt.Errorf("seed demo meeting: %w", err)
		}
	}

	registry := prometheus.NewRegistry()
	facadeMetrics := metrics.NewFacadeMetrics(registry)

	meetingService := meeting.NewMeetingService(repo, logger.Named("meetings"))
	aiService := aiuse.NewAIService(meetingService, logger.Named("ai"))

	serverOpts := append([]mockserver.Option{
		mockserver.WithLatency(LatencyFromConfig(cfg.Latency)),
		mockserver.WithMetrics(facadeMetrics),
	}, opts...)
	server := mockserver.NewServer(meetingService, aiService, logger.Named("mockserver"), serverOpts...)

	return &App{
		Repo:     repo,
		Meetings: meetingService,
		AI:       aiService,
		Server:   server,
		Registry: registry,
		Logger:   logger,
	}, nil
}

// LatencyFromConfig converts configured delays to façade latencies
func LatencyFromConfig(c config.LatencyConfig) mockserver.Latency {
	return mockserver.Latency{
		Default:        c.Default,
		StartRecording: c.StartRecording,
		Transcription:  c.Transcription,
		Summary:        c.Summary,
	}
}

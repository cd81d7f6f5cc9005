package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-sim/internal/infrastructure/mockserver"
	"github.com/johnquangdev/meeting-sim/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-sim/pkg/config"
)

func TestNew_SeedsDemoMeeting(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, &config.Config{SeedDemo: true}, nil, mockserver.WithLatency(mockserver.Latency{}))
	require.NoError(t, err)

	list, err := a.Server.GetMeetings(ctx).Await(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, meeting.DemoMeetingID, list[0].ID)
}

func TestNew_WithoutSeed(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, &config.Config{}, nil)
	require.NoError(t, err)

	n, err := a.Repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NotNil(t, a.Registry)
	assert.NotNil(t, a.Logger)
}

func TestLatencyFromConfig(t *testing.T) {
	got := LatencyFromConfig(config.LatencyConfig{
		Default:        time.Millisecond,
		StartRecording: 2 * time.Millisecond,
		Transcription:  3 * time.Millisecond,
		Summary:        4 * time.Millisecond,
	})
	assert.Equal(t, mockserver.Latency{
		Default:        time.Millisecond,
		StartRecording: 2 * time.Millisecond,
		Transcription:  3 * time.Millisecond,
		Summary:        4 * time.Millisecond,
	}, got)
}

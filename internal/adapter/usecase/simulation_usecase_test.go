package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"brand-lift/internal/core/domain"
	"brand-lift/internal/core/lift"
	"brand-lift/internal/core/port"
	"brand-lift/internal/core/port/mocks"
)

func storedChannels() domain.ChannelTable {
	return domain.NewChannelTable(
		domain.Channel{Name: "CTV", Attention: 0.8, BaseFrequency: 5, ContextFit: 0.8, DecayRate: 0.05},
		domain.Channel{Name: "Social", Attention: 0.5, BaseFrequency: 7, ContextFit: 0.6, DecayRate: 0.2},
	)
}

func campaign() domain.CampaignConfig {
	return domain.CampaignConfig{
		Budget:                50000,
		DurationDays:          30,
		CPM:                   10,
		FrequencyCap:          5,
		CreativeEffectiveness: 0.7,
		ContextFit:            0.6,
	}
}

// TestSimulateUsesRepositoryTable ensures the stored table feeds the pipeline.
func TestSimulateUsesRepositoryTable(t *testing.T) {
	repo := mocks.NewMockChannelRepository(t)
	repo.EXPECT().ListChannels(mock.Anything).Return(storedChannels(), nil).Once()

	svc := NewSimulationUseCase(repo, lift.DefaultModel(), nil)

	resp, err := svc.Simulate(context.Background(), port.SimulationReq{
		Campaign:   campaign(),
		Allocation: map[string]float64{"CTV": 100},
		Mode:       "percentage",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.ID)
	assert.InDelta(t, 4.44, resp.Lift["CTV"], 1e-9)
	assert.Equal(t, domain.BelowBenchmark, resp.Aggregate.Classification)
	assert.Len(t, resp.Decay.Channels["CTV"], 30)
}

// TestSimulateOverrideSkipsRepository ensures caller-supplied channels win.
func TestSimulateOverrideSkipsRepository(t *testing.T) {
	repo := mocks.NewMockChannelRepository(t)
	svc := NewSimulationUseCase(repo, lift.DefaultModel(), nil)

	resp, err := svc.Simulate(context.Background(), port.SimulationReq{
		Campaign:   campaign(),
		Allocation: map[string]float64{"Podcast": 30000},
		Mode:       "currency",
		Strategy:   "scenario",
		Delta:      func() *float64 { v := 10.0; return &v }(),
		Channels:   []domain.Channel{{Name: "Podcast", Attention: 0.7, BaseFrequency: 2, DecayRate: 0.1}},
	})
	require.NoError(t, err)
	assert.InDelta(t, 33000, resp.Recommendation.Values["Podcast"], 1e-9)
	repo.AssertNotCalled(t, "ListChannels", mock.Anything)
}

// TestSimulateIdempotent ensures identical snapshots give identical results.
func TestSimulateIdempotent(t *testing.T) {
	repo := mocks.NewMockChannelRepository(t)
	repo.EXPECT().ListChannels(mock.Anything).RunAndReturn(func(context.Context) (domain.ChannelTable, error) {
		return storedChannels(), nil
	}).Twice()

	svc := NewSimulationUseCase(repo, lift.DefaultModel(), nil)
	req := port.SimulationReq{
		Campaign:   campaign(),
		Allocation: map[string]float64{"CTV": 60, "Social": 40},
		Mode:       "percentage",
	}

	first, err := svc.Simulate(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Simulate(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Simulation, second.Simulation)
}

func TestSimulateRejectsUnknownModeAndStrategy(t *testing.T) {
	repo := mocks.NewMockChannelRepository(t)
	svc := NewSimulationUseCase(repo, lift.DefaultModel(), nil)

	_, err := svc.Simulate(context.Background(), port.SimulationReq{Mode: "shares"})
	assert.ErrorIs(t, err, port.ErrUnknownMode)

	_, err = svc.Simulate(context.Background(), port.SimulationReq{Strategy: "greedy"})
	assert.ErrorIs(t, err, port.ErrUnknownStrategy)
}

func TestSimulateRejectsOverlongCampaign(t *testing.T) {
	repo := mocks.NewMockChannelRepository(t)
	svc := NewSimulationUseCase(repo, lift.DefaultModel(), nil)

	cfg := campaign()
	cfg.DurationDays = 2_000_000_000
	_, err := svc.Simulate(context.Background(), port.SimulationReq{
		Campaign:   cfg,
		Allocation: map[string]float64{"CTV": 100},
	})
	assert.ErrorIs(t, err, port.ErrInvalidCampaign)
	repo.AssertNotCalled(t, "ListChannels", mock.Anything)
}

func TestSimulateAcceptsMaximumDuration(t *testing.T) {
	repo := mocks.NewMockChannelRepository(t)
	repo.EXPECT().ListChannels(mock.Anything).Return(storedChannels(), nil)

	model := lift.DefaultModel()
	model.MaxDurationDays = 60
	svc := NewSimulationUseCase(repo, model, nil)

	cfg := campaign()
	cfg.DurationDays = 60
	resp, err := svc.Simulate(context.Background(), port.SimulationReq{
		Campaign:   cfg,
		Allocation: map[string]float64{"CTV": 100},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Decay.Total, 60)
}

func TestSimulateRepositoryError(t *testing.T) {
	repo := mocks.NewMockChannelRepository(t)
	boom := errors.New("connection refused")
	repo.EXPECT().ListChannels(mock.Anything).Return(nil, boom)

	svc := NewSimulationUseCase(repo, lift.DefaultModel(), nil)
	_, err := svc.Simulate(context.Background(), port.SimulationReq{})
	assert.ErrorIs(t, err, boom)
}

func TestSimulateEmptyTableIsNotAnError(t *testing.T) {
	repo := mocks.NewMockChannelRepository(t)
	repo.EXPECT().ListChannels(mock.Anything).Return(domain.ChannelTable{}, nil)

	svc := NewSimulationUseCase(repo, lift.DefaultModel(), nil)
	resp, err := svc.Simulate(context.Background(), port.SimulationReq{Campaign: campaign()})
	require.NoError(t, err)
	assert.Empty(t, resp.Lift)
	require.Len(t, resp.Diagnostics, 1)
	assert.Equal(t, domain.EmptyChannelSet, resp.Diagnostics[0].Kind)
}

func TestChannelsSorted(t *testing.T) {
	repo := mocks.NewMockChannelRepository(t)
	repo.EXPECT().ListChannels(mock.Anything).Return(storedChannels(), nil)

	svc := NewSimulationUseCase(repo, lift.DefaultModel(), nil)
	channels, err := svc.Channels(context.Background())
	require.NoError(t, err)
	require.Len(t, channels, 2)
	assert.Equal(t, "CTV", channels[0].Name)
	assert.Equal(t, "Social", channels[1].Name)
}

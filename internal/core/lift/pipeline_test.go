package lift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brand-lift/internal/core/domain"
)

func TestSimulate(t *testing.T) {
	in := Input{
		Campaign: goldenCampaign(),
		Channels: testChannels(),
		Raw:      map[string]float64{"CTV": 2, "Social": 1, "Display": 1},
		Mode:     domain.ModePercentage,
		Strategy: StrategyEffectiveness,
		Model:    DefaultModel(),
	}

	sim := Simulate(in)

	assert.Empty(t, sim.Diagnostics)
	assert.Equal(t, map[string]float64{"CTV": 50, "Social": 25, "Display": 25}, sim.Allocation.Values)
	require.Len(t, sim.Lift, 3)
	assert.Len(t, sim.Decay.Total, in.Campaign.DurationDays)
	assert.InDelta(t, 100, domain.Allocation(sim.Recommendation).Sum(), 1e-9)
	assert.Equal(t, DefaultBenchmark, sim.Aggregate.Benchmark)
	require.Len(t, sim.Ranking, 3)
	assert.Equal(t, "CTV", sim.Ranking[0].Channel)

	// identical snapshot, identical output
	assert.Equal(t, sim, Simulate(in))
}

func TestSimulateDiagnostics(t *testing.T) {
	in := Input{
		Campaign: domain.CampaignConfig{Budget: 0, DurationDays: 10, CPM: 0, FrequencyCap: 3},
		Channels: testChannels(),
		Raw:      map[string]float64{"Radio": 10},
		Mode:     domain.ModeCurrency,
		Model:    DefaultModel(),
	}

	sim := Simulate(in)

	kinds := make([]domain.DiagnosticKind, 0, len(sim.Diagnostics))
	for _, d := range sim.Diagnostics {
		kinds = append(kinds, d.Kind)
	}
	assert.Equal(t, []domain.DiagnosticKind{domain.InvalidAllocation, domain.EmptyChannelSet, domain.ZeroBudgetOrCPM}, kinds)
	assert.Empty(t, sim.Lift)
	assert.Empty(t, sim.Recommendation.Values)
	assert.Zero(t, sim.Aggregate.TotalLift)
}

func TestSimulateExplicitBenchmark(t *testing.T) {
	sim := Simulate(Input{
		Campaign:  goldenCampaign(),
		Channels:  goldenChannels(),
		Raw:       map[string]float64{"CTV": 100},
		Mode:      domain.ModePercentage,
		Benchmark: 4,
		Model:     DefaultModel(),
	})
	assert.Equal(t, 111.0, sim.Aggregate.BrandLiftIndex)
	assert.Equal(t, domain.AboveBenchmark, sim.Aggregate.Classification)
}

package lift

import (
	"fmt"

	"brand-lift/internal/core/domain"
)

// Input is a complete snapshot of everything one simulation depends on.
type Input struct {
	Campaign  domain.CampaignConfig
	Channels  domain.ChannelTable
	Raw       map[string]float64
	Mode      domain.Mode
	Strategy  Strategy
	Delta     *float64
	Benchmark float64
	Model     Model
}

// Simulation is the full output of one pipeline run.
type Simulation struct {
	Allocation     domain.Allocation      `json:"allocation"`
	Lift           domain.LiftResult      `json:"lift"`
	Decay          domain.DecayCurve      `json:"decay"`
	Recommendation domain.Recommendation  `json:"recommendation"`
	Aggregate      domain.AggregateResult `json:"aggregate"`
	Ranking        []domain.ChannelLift   `json:"ranking"`
	Diagnostics    []domain.Diagnostic    `json:"diagnostics"`
}

// Simulate runs normalize, score, decay, optimize and aggregate over one
// snapshot. It recomputes everything on every call. A zero Benchmark falls
// back to the model's benchmark.
func Simulate(in Input) Simulation {
	alloc, diags := Normalize(in.Raw, in.Mode, in.Channels, in.Campaign.Budget)
	if len(alloc.Values) == 0 {
		diags = append(diags, domain.Diagnostic{
			Kind:    domain.EmptyChannelSet,
			Message: "no channel received an allocation",
		})
	}
	if in.Campaign.Budget <= 0 || in.Campaign.CPM <= 0 {
		diags = append(diags, domain.Diagnostic{
			Kind:    domain.ZeroBudgetOrCPM,
			Message: fmt.Sprintf("budget %.2f and cpm %.2f must both be positive for reach; reach is zero", in.Campaign.Budget, in.Campaign.CPM),
		})
	}

	result, overflow := scoreAll(in.Campaign, in.Channels, alloc, in.Model)
	diags = append(diags, overflow...)

	benchmark := in.Benchmark
	if benchmark <= 0 {
		benchmark = in.Model.Benchmark
	}
	return Simulation{
		Allocation:     alloc,
		Lift:           result,
		Decay:          ProjectDecay(result, in.Channels, in.Campaign.DurationDays),
		Recommendation: Optimize(alloc, result, in.Campaign, in.Strategy, in.Delta, in.Model),
		Aggregate:      Aggregate(result, benchmark),
		Ranking:        Rank(result),
		Diagnostics:    diags,
	}
}

package port

import (
	"context"
	"errors"

	"brand-lift/internal/core/domain"
	"brand-lift/internal/core/lift"
)

var (
	ErrUnknownMode     = errors.New("unknown allocation mode")
	ErrUnknownStrategy = errors.New("unknown optimization strategy")
	ErrInvalidCampaign = errors.New("invalid campaign")
)

// SimulationUseCase defines the operations exposed to the presentation
// layer. Every call is a full recomputation over the given snapshot.
type SimulationUseCase interface {
	// Simulate runs the brand lift pipeline. Invalid entries and budget
	// problems are reported as diagnostics in the response; an error is
	// returned only for an unusable request (unknown mode or strategy, a
	// campaign longer than the configured maximum) or when the channel
	// table cannot be loaded.
	Simulate(ctx context.Context, req SimulationReq) (*SimulationResp, error)

	// Channels returns the active channel table ordered by name.
	Channels(ctx context.Context) ([]domain.Channel, error)
}

// SimulationReq is one complete input snapshot. Channels overrides the
// stored characteristics table when non-empty. Benchmark falls back to the
// configured one when zero.
type SimulationReq struct {
	Campaign   domain.CampaignConfig `json:"campaign"`
	Allocation map[string]float64    `json:"allocation"`
	Mode       string                `json:"mode"`
	Strategy   string                `json:"strategy"`
	Delta      *float64              `json:"delta,omitempty"`
	Benchmark  float64               `json:"benchmark,omitempty"`
	Channels   []domain.Channel      `json:"channels,omitempty"`
}

// SimulationResp carries a simulation together with its identifier.
type SimulationResp struct {
	ID string `json:"id"`
	lift.Simulation
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"brand-lift/internal/core/domain"
	"brand-lift/internal/core/lift"
	"brand-lift/internal/core/port"
)

// SimulationUseCase runs the brand lift pipeline against the channel table
// supplied by a repository. It holds no state between calls besides its
// dependencies, so a single instance may serve concurrent requests.
type SimulationUseCase struct {
	repo   port.ChannelRepository
	model  lift.Model
	logger *slog.Logger
}

// NewSimulationUseCase creates a usecase using the given model parameters.
// A nil logger discards output.
func NewSimulationUseCase(repo port.ChannelRepository, model lift.Model, logger *slog.Logger) *SimulationUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SimulationUseCase{repo: repo, model: model, logger: logger}
}

// Simulate resolves mode, strategy and channel table for the request and
// runs one full pipeline pass. Diagnostics are logged at warn level and
// returned in the response.
func (u *SimulationUseCase) Simulate(ctx context.Context, req port.SimulationReq) (*port.SimulationResp, error) {
	mode, err := domain.ParseMode(req.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", port.ErrUnknownMode, req.Mode)
	}
	strategy, err := lift.ParseStrategy(req.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", port.ErrUnknownStrategy, req.Strategy)
	}
	if limit := u.model.MaxDurationDays; limit > 0 && req.Campaign.DurationDays > limit {
		return nil, fmt.Errorf("%w: duration_days %d exceeds %d", port.ErrInvalidCampaign, req.Campaign.DurationDays, limit)
	}
	channels, err := u.channelTable(ctx, req.Channels)
	if err != nil {
		return nil, err
	}

	sim := lift.Simulate(lift.Input{
		Campaign:  req.Campaign,
		Channels:  channels,
		Raw:       req.Allocation,
		Mode:      mode,
		Strategy:  strategy,
		Delta:     req.Delta,
		Benchmark: req.Benchmark,
		Model:     u.model,
	})

	id := uuid.NewString()
	for _, d := range sim.Diagnostics {
		u.logger.Warn("simulation diagnostic",
			slog.String("simulation_id", id),
			slog.String("kind", string(d.Kind)),
			slog.String("channel", d.Channel),
			slog.String("message", d.Message),
		)
	}
	u.logger.Debug("simulation complete",
		slog.String("simulation_id", id),
		slog.Int("channels", len(sim.Lift)),
		slog.Float64("brand_lift_index", sim.Aggregate.BrandLiftIndex),
		slog.String("classification", sim.Aggregate.Classification.String()),
	)
	return &port.SimulationResp{ID: id, Simulation: sim}, nil
}

// Channels returns the repository's channel table ordered by name.
func (u *SimulationUseCase) Channels(ctx context.Context) ([]domain.Channel, error) {
	table, err := u.repo.ListChannels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}
	return table.List(), nil
}

// channelTable prefers caller-supplied characteristics over the stored ones.
func (u *SimulationUseCase) channelTable(ctx context.Context, override []domain.Channel) (domain.ChannelTable, error) {
	if len(override) > 0 {
		return domain.NewChannelTable(override...), nil
	}
	table, err := u.repo.ListChannels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}
	return table, nil
}

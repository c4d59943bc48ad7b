package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"brand-lift/internal/core/domain"
)

// ChannelRepository implements port.ChannelRepository using pgxpool.
type ChannelRepository struct {
	pool *pgxpool.Pool
}

// NewChannelRepository returns a new repository instance.
func NewChannelRepository(pool *pgxpool.Pool) *ChannelRepository {
	return &ChannelRepository{pool: pool}
}

// ListChannels reads every row of channel_profiles.
func (r *ChannelRepository) ListChannels(ctx context.Context) (domain.ChannelTable, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT name, attention, base_frequency, context_fit, decay_rate
        FROM channel_profiles
        ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query channel profiles: %w", err)
	}
	channels, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Channel, error) {
		var c domain.Channel
		err := row.Scan(&c.Name, &c.Attention, &c.BaseFrequency, &c.ContextFit, &c.DecayRate)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan channel profiles: %w", err)
	}
	return domain.NewChannelTable(channels...), nil
}

package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"brand-lift/internal/core/domain"
)

// SeedChannels upserts the given channel profiles in a single batch.
// Existing rows with the same name are overwritten.
func SeedChannels(ctx context.Context, pool *pgxpool.Pool, channels []domain.Channel) error {
	batch := &pgx.Batch{}
	for _, c := range channels {
		batch.Queue(`INSERT INTO channel_profiles
    (name, attention, base_frequency, context_fit, decay_rate, updated_at)
VALUES ($1,$2,$3,$4,$5,now())
ON CONFLICT (name) DO UPDATE SET
    attention = EXCLUDED.attention,
    base_frequency = EXCLUDED.base_frequency,
    context_fit = EXCLUDED.context_fit,
    decay_rate = EXCLUDED.decay_rate,
    updated_at = now()`,
			c.Name, c.Attention, c.BaseFrequency, c.ContextFit, c.DecayRate)
	}
	return pool.SendBatch(ctx, batch).Close()
}

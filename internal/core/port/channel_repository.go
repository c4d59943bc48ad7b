package port

import (
	"context"

	"brand-lift/internal/core/domain"
)

// ChannelRepository is the outbound port that supplies the channel
// characteristics table. Implementations must return a fresh table on every
// call; callers are free to modify it.
type ChannelRepository interface {
	// ListChannels returns every known channel keyed by name.
	ListChannels(ctx context.Context) (domain.ChannelTable, error)
}

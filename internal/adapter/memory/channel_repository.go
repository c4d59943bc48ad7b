package memory

import (
	"context"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"brand-lift/internal/core/domain"
)

// DefaultChannels is the reference characteristics table used when no other
// source is configured.
func DefaultChannels() []domain.Channel {
	return []domain.Channel{
		{Name: "CTV", Attention: 0.85, BaseFrequency: 3, ContextFit: 0.75, DecayRate: 0.05},
		{Name: "DOOH", Attention: 0.45, BaseFrequency: 6, ContextFit: 0.55, DecayRate: 0.12},
		{Name: "Social", Attention: 0.55, BaseFrequency: 7, ContextFit: 0.65, DecayRate: 0.2},
		{Name: "Display", Attention: 0.3, BaseFrequency: 5, ContextFit: 0.5, DecayRate: 0.25},
		{Name: "Retail Media", Attention: 0.6, BaseFrequency: 4, ContextFit: 0.85, DecayRate: 0.1},
	}
}

// ChannelRepository implements port.ChannelRepository over a fixed table.
type ChannelRepository struct {
	channels []domain.Channel
}

// NewChannelRepository copies channels into a new repository.
func NewChannelRepository(channels []domain.Channel) *ChannelRepository {
	return &ChannelRepository{channels: append([]domain.Channel(nil), channels...)}
}

// ListChannels returns a fresh table on every call.
func (r *ChannelRepository) ListChannels(_ context.Context) (domain.ChannelTable, error) {
	return domain.NewChannelTable(r.channels...), nil
}

// channelFile is the on-disk layout:
//
//	channels:
//	  - name: CTV
//	    attention: 0.85
//	    base_frequency: 3
//	    context_fit: 0.75
//	    decay_rate: 0.05
type channelFile struct {
	Channels []domain.Channel `yaml:"channels"`
}

// LoadFile reads a YAML channel table. Names must be present and unique and
// every characteristic a finite number.
func LoadFile(path string) (*ChannelRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read channel file: %w", err)
	}
	var f channelFile
	if err = yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse channel file %s: %w", path, err)
	}
	seen := make(map[string]struct{}, len(f.Channels))
	for i, c := range f.Channels {
		if c.Name == "" {
			return nil, fmt.Errorf("channel file %s: entry %d has no name", path, i)
		}
		for field, v := range map[string]float64{
			"attention":      c.Attention,
			"base_frequency": c.BaseFrequency,
			"context_fit":    c.ContextFit,
			"decay_rate":     c.DecayRate,
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("channel file %s: channel %q has non-finite %s", path, c.Name, field)
			}
		}
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("channel file %s: duplicate channel %q", path, c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return NewChannelRepository(f.Channels), nil
}

package domain

import "sort"

// Channel describes a media channel. DecayRate is the per-day exponential
// decay constant applied to the channel's lift.
type Channel struct {
	Name          string  `json:"name" yaml:"name"`
	Attention     float64 `json:"attention" yaml:"attention"`
	BaseFrequency float64 `json:"base_frequency" yaml:"base_frequency"`
	ContextFit    float64 `json:"context_fit" yaml:"context_fit"`
	DecayRate     float64 `json:"decay_rate" yaml:"decay_rate"`
}

// ChannelTable is keyed by channel name.
type ChannelTable map[string]Channel

// NewChannelTable indexes channels by name. Later duplicates win.
func NewChannelTable(channels ...Channel) ChannelTable {
	t := make(ChannelTable, len(channels))
	for _, c := range channels {
		t[c.Name] = c
	}
	return t
}

// Names returns the channel names in lexical order.
func (t ChannelTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns the channels ordered by name.
func (t ChannelTable) List() []Channel {
	out := make([]Channel, 0, len(t))
	for _, name := range t.Names() {
		out = append(out, t[name])
	}
	return out
}

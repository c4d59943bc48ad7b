package lift

import (
	"fmt"
	"strings"
)

// FrequencyStrategy selects how exposure frequency against the campaign's
// frequency cap affects a channel score.
type FrequencyStrategy string

const (
	// FrequencyThreshold multiplies the frequency term by the fatigue
	// penalty once the channel's base frequency exceeds the cap.
	FrequencyThreshold FrequencyStrategy = "threshold"
	// FrequencySaturation multiplies the whole score by
	// 1 - exp(-base_frequency / frequency_cap).
	FrequencySaturation FrequencyStrategy = "saturation"
)

// ParseFrequencyStrategy accepts the strategy names case-insensitively. An
// empty string selects FrequencyThreshold.
func ParseFrequencyStrategy(s string) (FrequencyStrategy, error) {
	switch FrequencyStrategy(strings.ToLower(strings.TrimSpace(s))) {
	case FrequencyThreshold, "":
		return FrequencyThreshold, nil
	case FrequencySaturation:
		return FrequencySaturation, nil
	default:
		return "", fmt.Errorf("unknown frequency strategy %q", s)
	}
}

// Weights are the coefficients of the linear lift formula.
type Weights struct {
	Reach     float64 `json:"reach"`
	Frequency float64 `json:"frequency"`
	Attention float64 `json:"attention"`
	Creative  float64 `json:"creative"`
	Context   float64 `json:"context"`
}

// Model bundles every tunable of the pipeline. The zero value is not
// useful; start from DefaultModel.
type Model struct {
	Weights Weights

	// ReachNormalizer divides raw reach before weighting.
	ReachNormalizer float64
	// ReachBaselineDays caps the duration benefit of reach.
	ReachBaselineDays float64

	Frequency      FrequencyStrategy
	FatiguePenalty float64

	// ChannelContext multiplies the context term by the channel's own
	// context fit.
	ChannelContext bool

	Clamp    bool
	ClampMin float64
	ClampMax float64

	// ScoreCeiling bounds every channel score regardless of Clamp so that
	// overflowing inputs still produce finite totals.
	ScoreCeiling float64
	// MaxDurationDays bounds the campaign length a simulation accepts.
	MaxDurationDays int

	FlatUplift float64
	Benchmark  float64
}

const (
	DefaultBenchmark       = 100.0
	DefaultReachNormalizer = 1_000_000.0
	DefaultBaselineDays    = 30.0
	DefaultFatiguePenalty  = 0.75
	DefaultFlatUplift      = 1.1
	DefaultScoreCeiling    = 1e15
	DefaultMaxDurationDays = 3650
)

// DefaultModel returns the reference model parameters.
func DefaultModel() Model {
	return Model{
		Weights: Weights{
			Reach:     0.4,
			Frequency: 0.3,
			Attention: 0.6,
			Creative:  0.4,
			Context:   0.3,
		},
		ReachNormalizer:   DefaultReachNormalizer,
		ReachBaselineDays: DefaultBaselineDays,
		Frequency:         FrequencyThreshold,
		FatiguePenalty:    DefaultFatiguePenalty,
		ClampMin:          0,
		ClampMax:          100,
		ScoreCeiling:      DefaultScoreCeiling,
		MaxDurationDays:   DefaultMaxDurationDays,
		FlatUplift:        DefaultFlatUplift,
		Benchmark:         DefaultBenchmark,
	}
}

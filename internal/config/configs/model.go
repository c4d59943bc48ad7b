package configs

import "brand-lift/internal/core/lift"

// Model exposes the lift model parameters. Defaults reproduce
// lift.DefaultModel.
type Model struct {
	WeightReach     float64 `env:"W_REACH" envDefault:"0.4"`
	WeightFrequency float64 `env:"W_FREQUENCY" envDefault:"0.3"`
	WeightAttention float64 `env:"W_ATTENTION" envDefault:"0.6"`
	WeightCreative  float64 `env:"W_CREATIVE" envDefault:"0.4"`
	WeightContext   float64 `env:"W_CONTEXT" envDefault:"0.3"`

	ReachNormalizer   float64 `env:"REACH_NORMALIZER" envDefault:"1000000"`
	ReachBaselineDays float64 `env:"REACH_BASELINE_DAYS" envDefault:"30"`

	// FrequencyStrategy is "threshold" or "saturation".
	FrequencyStrategy string  `env:"FREQUENCY_STRATEGY" envDefault:"threshold"`
	FatiguePenalty    float64 `env:"FATIGUE_PENALTY" envDefault:"0.75"`
	ChannelContext    bool    `env:"CHANNEL_CONTEXT" envDefault:"false"`

	Clamp    bool    `env:"CLAMP" envDefault:"false"`
	ClampMin float64 `env:"CLAMP_MIN" envDefault:"0"`
	ClampMax float64 `env:"CLAMP_MAX" envDefault:"100"`

	ScoreCeiling    float64 `env:"SCORE_CEILING" envDefault:"1e15"`
	MaxDurationDays int     `env:"MAX_DURATION_DAYS" envDefault:"3650"`

	FlatUplift float64 `env:"FLAT_UPLIFT" envDefault:"1.1"`
	Benchmark  float64 `env:"BENCHMARK" envDefault:"100"`
}

// LiftModel converts the configuration into model parameters.
func (c Model) LiftModel() (lift.Model, error) {
	strategy, err := lift.ParseFrequencyStrategy(c.FrequencyStrategy)
	if err != nil {
		return lift.Model{}, err
	}
	return lift.Model{
		Weights: lift.Weights{
			Reach:     c.WeightReach,
			Frequency: c.WeightFrequency,
			Attention: c.WeightAttention,
			Creative:  c.WeightCreative,
			Context:   c.WeightContext,
		},
		ReachNormalizer:   c.ReachNormalizer,
		ReachBaselineDays: c.ReachBaselineDays,
		Frequency:         strategy,
		FatiguePenalty:    c.FatiguePenalty,
		ChannelContext:    c.ChannelContext,
		Clamp:             c.Clamp,
		ClampMin:          c.ClampMin,
		ClampMax:          c.ClampMax,
		ScoreCeiling:      c.ScoreCeiling,
		MaxDurationDays:   c.MaxDurationDays,
		FlatUplift:        c.FlatUplift,
		Benchmark:         c.Benchmark,
	}, nil
}

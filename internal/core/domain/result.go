package domain

import "fmt"

// LiftResult maps channel name to its non-negative brand-lift score.
type LiftResult map[string]float64

// Channels returns the scored channel names in lexical order.
func (r LiftResult) Channels() []string {
	return sortedKeys(r)
}

// Point is one day of a decay trajectory.
type Point struct {
	Day   int     `json:"day"`
	Score float64 `json:"score"`
}

// DecayCurve holds the per-channel trajectories and their per-day sum.
type DecayCurve struct {
	Channels map[string][]Point `json:"channels"`
	Total    []Point            `json:"total"`
}

// Classification places a brand lift index relative to the benchmark.
type Classification int

const (
	BelowBenchmark Classification = iota
	AtBenchmark
	AboveBenchmark
)

func (c Classification) String() string {
	switch c {
	case BelowBenchmark:
		return "below"
	case AtBenchmark:
		return "at"
	case AboveBenchmark:
		return "above"
	default:
		return fmt.Sprintf("Classification(%d)", int(c))
	}
}

// MarshalText encodes the classification by name.
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// AggregateResult summarises a LiftResult against a benchmark.
type AggregateResult struct {
	TotalLift      float64        `json:"total_lift"`
	BrandLiftIndex float64        `json:"brand_lift_index"`
	Benchmark      float64        `json:"benchmark"`
	Classification Classification `json:"classification"`
}

// ChannelLift is one row of a ranking.
type ChannelLift struct {
	Channel string  `json:"channel"`
	Lift    float64 `json:"lift"`
	Share   float64 `json:"share"`
}

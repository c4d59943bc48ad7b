package lift

import (
	"sort"

	"brand-lift/internal/core/domain"
)

// Classification bounds on the brand lift index. Both are inclusive toward
// AtBenchmark.
const (
	LowerIndexBound = 90.0
	UpperIndexBound = 110.0
)

// Aggregate sums the channel scores and indexes the total against
// benchmark. A non-positive benchmark is replaced by DefaultBenchmark.
func Aggregate(result domain.LiftResult, benchmark float64) domain.AggregateResult {
	if benchmark <= 0 {
		benchmark = DefaultBenchmark
	}
	var total float64
	for _, name := range result.Channels() {
		total += result[name]
	}
	index := round2(total / benchmark * 100)
	return domain.AggregateResult{
		TotalLift:      total,
		BrandLiftIndex: index,
		Benchmark:      benchmark,
		Classification: Classify(index),
	}
}

// Classify places a brand lift index below, at or above the benchmark.
func Classify(index float64) domain.Classification {
	switch {
	case index < LowerIndexBound:
		return domain.BelowBenchmark
	case index > UpperIndexBound:
		return domain.AboveBenchmark
	default:
		return domain.AtBenchmark
	}
}

// Rank orders channels by lift, best first, ties broken by name. Share is
// the channel's fraction of the total lift.
func Rank(result domain.LiftResult) []domain.ChannelLift {
	var total float64
	rows := make([]domain.ChannelLift, 0, len(result))
	for _, name := range result.Channels() {
		total += result[name]
		rows = append(rows, domain.ChannelLift{Channel: name, Lift: result[name]})
	}
	if total > 0 {
		for i := range rows {
			rows[i].Share = rows[i].Lift / total
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Lift > rows[j].Lift
	})
	return rows
}

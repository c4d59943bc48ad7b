package lift

import (
	"iter"
	"math"

	"brand-lift/internal/core/domain"
)

// Trajectory yields (day, score·exp(-rate·day)) for day in [0, days). Each
// range over the returned sequence starts again from day zero. Negative
// rates are treated as zero; day zero always yields score.
func Trajectory(score, rate float64, days int) iter.Seq2[int, float64] {
	if rate < 0 || math.IsNaN(rate) {
		rate = 0
	}
	return func(yield func(int, float64) bool) {
		for day := 0; day < days; day++ {
			v := score
			if day > 0 {
				v *= math.Exp(-rate * float64(day))
			}
			if !yield(day, v) {
				return
			}
		}
	}
}

// ProjectDecay expands every scored channel into its daily trajectory and
// sums them into a total campaign curve. Channels missing from the table do
// not decay.
func ProjectDecay(result domain.LiftResult, channels domain.ChannelTable, durationDays int) domain.DecayCurve {
	if durationDays < 0 {
		durationDays = 0
	}
	curve := domain.DecayCurve{
		Channels: make(map[string][]domain.Point, len(result)),
		Total:    make([]domain.Point, durationDays),
	}
	for day := range curve.Total {
		curve.Total[day].Day = day
	}
	for _, name := range result.Channels() {
		points := make([]domain.Point, 0, durationDays)
		for day, score := range Trajectory(result[name], channels[name].DecayRate, durationDays) {
			points = append(points, domain.Point{Day: day, Score: score})
			curve.Total[day].Score += score
		}
		curve.Channels[name] = points
	}
	return curve
}

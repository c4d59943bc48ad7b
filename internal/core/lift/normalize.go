package lift

import (
	"fmt"
	"math"

	"brand-lift/internal/core/domain"
)

// Normalize turns raw per-channel values into a validated Allocation.
//
// Entries that are negative, non-finite or name a channel missing from the
// table are dropped with an InvalidAllocation diagnostic. In percentage mode
// the remaining values are rescaled to sum to 100 (rounded to two decimals),
// or left at zero when their sum is zero. In currency mode values are kept
// as is; a sum above budget yields an OverBudgetAllocation diagnostic.
// raw is never modified.
func Normalize(raw map[string]float64, mode domain.Mode, channels domain.ChannelTable, budget float64) (domain.Allocation, []domain.Diagnostic) {
	var diags []domain.Diagnostic
	values := make(map[string]float64, len(raw))
	input := domain.Allocation{Values: raw}
	for _, name := range input.Channels() {
		v := raw[name]
		if _, ok := channels[name]; !ok {
			diags = append(diags, domain.Diagnostic{
				Kind:    domain.InvalidAllocation,
				Channel: name,
				Message: "channel is not in the characteristics table",
			})
			continue
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			diags = append(diags, domain.Diagnostic{
				Kind:    domain.InvalidAllocation,
				Channel: name,
				Message: fmt.Sprintf("allocation %v is not a non-negative number", v),
			})
			continue
		}
		values[name] = v
	}

	alloc := domain.Allocation{Mode: mode, Values: values}
	switch mode {
	case domain.ModeCurrency:
		if sum := alloc.Sum(); sum > budget {
			diags = append(diags, domain.Diagnostic{
				Kind:    domain.OverBudgetAllocation,
				Message: fmt.Sprintf("allocated %.2f exceeds budget %.2f", sum, budget),
			})
		}
	default:
		alloc.Mode = domain.ModePercentage
		sum := alloc.Sum()
		if sum == 0 {
			break
		}
		scale := 100 / sum
		for name, v := range values {
			values[name] = round2(v * scale)
		}
	}
	return alloc, diags
}

// share returns the fraction of the campaign budget a channel receives.
func share(alloc domain.Allocation, channel string, budget float64) float64 {
	v := alloc.Values[channel]
	if v <= 0 {
		return 0
	}
	if alloc.Mode == domain.ModeCurrency {
		if budget <= 0 {
			return 0
		}
		return v / budget
	}
	return v / 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

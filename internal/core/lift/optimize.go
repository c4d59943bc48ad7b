package lift

import (
	"fmt"
	"strings"

	"brand-lift/internal/core/domain"
)

// Strategy selects how Optimize derives a recommendation.
type Strategy string

const (
	// StrategyEffectiveness redistributes the whole budget across the
	// allocated channels in proportion to their lift.
	StrategyEffectiveness Strategy = "effectiveness"
	// StrategyFlatUplift scales every allocation by the model's flat uplift.
	StrategyFlatUplift Strategy = "flat_uplift"
	// StrategyScenario scales every allocation by (1 + delta/100).
	StrategyScenario Strategy = "scenario"
)

// ParseStrategy accepts the strategy names case-insensitively, with dashes
// or underscores. An empty string selects StrategyEffectiveness.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")) {
	case StrategyEffectiveness, "":
		return StrategyEffectiveness, nil
	case StrategyFlatUplift:
		return StrategyFlatUplift, nil
	case StrategyScenario:
		return StrategyScenario, nil
	default:
		return "", fmt.Errorf("unknown optimization strategy %q", s)
	}
}

// Optimize returns a recommended allocation in the unit of alloc. delta is
// the scenario change in percent and is only read by StrategyScenario; nil
// means no change. Unknown strategies fall back to StrategyEffectiveness.
func Optimize(alloc domain.Allocation, result domain.LiftResult, cfg domain.CampaignConfig, strategy Strategy, delta *float64, model Model) domain.Recommendation {
	rec := domain.Recommendation{
		Mode:   alloc.Mode,
		Values: make(map[string]float64, len(alloc.Values)),
	}
	if len(alloc.Values) == 0 {
		return rec
	}

	switch strategy {
	case StrategyFlatUplift:
		scale(rec.Values, alloc.Values, model.FlatUplift)
	case StrategyScenario:
		factor := 1.0
		if delta != nil {
			factor += *delta / 100
		}
		scale(rec.Values, alloc.Values, factor)
	default:
		redistribute(rec.Values, alloc, result, totalBudget(alloc, cfg))
	}
	return rec
}

func scale(dst, src map[string]float64, factor float64) {
	if factor < 0 {
		factor = 0
	}
	for name, v := range src {
		dst[name] = v * factor
	}
}

// redistribute splits total across the allocated channels proportionally to
// their lift. When no channel has positive lift the split is even.
func redistribute(dst map[string]float64, alloc domain.Allocation, result domain.LiftResult, total float64) {
	var sum float64
	for name := range alloc.Values {
		if v := result[name]; v > 0 {
			sum += v
		}
	}
	for name := range alloc.Values {
		if sum == 0 {
			dst[name] = total / float64(len(alloc.Values))
			continue
		}
		eff := result[name]
		if eff < 0 {
			eff = 0
		}
		dst[name] = eff / sum * total
	}
}

func totalBudget(alloc domain.Allocation, cfg domain.CampaignConfig) float64 {
	if alloc.Mode != domain.ModeCurrency {
		return 100
	}
	if cfg.Budget > 0 {
		return cfg.Budget
	}
	return alloc.Sum()
}

package lift

import (
	"fmt"
	"math"

	"brand-lift/internal/core/domain"
)

const impressionsPerMille = 1000

// Score computes the brand-lift score of every allocated channel.
//
// Channels that are not in the table are skipped. A channel with zero
// allocation scores zero. Scores are never negative and are clamped to
// [model.ClampMin, model.ClampMax] when model.Clamp is set. Scores that
// overflow model.ScoreCeiling are capped at it. Inputs are not modified.
func Score(cfg domain.CampaignConfig, channels domain.ChannelTable, alloc domain.Allocation, model Model) domain.LiftResult {
	result, _ := scoreAll(cfg, channels, alloc, model)
	return result
}

// scoreAll is Score reporting a ScoreOverflow diagnostic for every capped
// channel.
func scoreAll(cfg domain.CampaignConfig, channels domain.ChannelTable, alloc domain.Allocation, model Model) (domain.LiftResult, []domain.Diagnostic) {
	var diags []domain.Diagnostic
	result := make(domain.LiftResult, len(alloc.Values))
	for _, name := range alloc.Channels() {
		ch, ok := channels[name]
		if !ok {
			continue
		}
		lift, capped := scoreChannel(cfg, ch, share(alloc, name, cfg.Budget), model)
		if capped {
			diags = append(diags, domain.Diagnostic{
				Kind:    domain.ScoreOverflow,
				Channel: name,
				Message: fmt.Sprintf("score exceeds %g and was capped", lift),
			})
		}
		result[name] = lift
	}
	return result, diags
}

// Reach estimates the impressions a channel buys with the given budget
// share: CPM prices a thousand impressions. The duration benefit is capped
// at the model's baseline days. Zero budget or CPM yields zero reach.
func Reach(cfg domain.CampaignConfig, share float64, model Model) float64 {
	if cfg.Budget <= 0 || cfg.CPM <= 0 || share <= 0 {
		return 0
	}
	durationFactor := 1.0
	if model.ReachBaselineDays > 0 {
		durationFactor = math.Min(float64(cfg.DurationDays)/model.ReachBaselineDays, 1)
	}
	if durationFactor < 0 {
		durationFactor = 0
	}
	return share * (cfg.Budget / cfg.CPM) * impressionsPerMille * durationFactor
}

// SaturationFactor models diminishing returns of frequency against the cap:
// 1 - exp(-frequency/cap). A cap below one is treated as one.
func SaturationFactor(frequency float64, frequencyCap int) float64 {
	if frequency <= 0 {
		return 0
	}
	c := float64(frequencyCap)
	if c < 1 {
		c = 1
	}
	return 1 - math.Exp(-frequency/c)
}

func scoreChannel(cfg domain.CampaignConfig, ch domain.Channel, share float64, model Model) (float64, bool) {
	if share <= 0 {
		return 0, false
	}
	w := model.Weights

	reachNorm := 0.0
	if model.ReachNormalizer > 0 {
		reachNorm = Reach(cfg, share, model) / model.ReachNormalizer
	}

	freqTerm := w.Frequency * ch.BaseFrequency
	if model.Frequency != FrequencySaturation && ch.BaseFrequency > float64(cfg.FrequencyCap) {
		freqTerm *= model.FatiguePenalty
	}

	contextTerm := w.Context * cfg.ContextFit
	if model.ChannelContext {
		contextTerm *= ch.ContextFit
	}

	lift := w.Reach*reachNorm +
		freqTerm +
		w.Attention*ch.Attention +
		w.Creative*cfg.CreativeEffectiveness +
		contextTerm

	if model.Frequency == FrequencySaturation {
		lift *= SaturationFactor(ch.BaseFrequency, cfg.FrequencyCap)
	}

	if math.IsNaN(lift) || lift < 0 {
		lift = 0
	}
	ceiling := model.ScoreCeiling
	if ceiling <= 0 || math.IsInf(ceiling, 0) {
		ceiling = DefaultScoreCeiling
	}
	capped := lift > ceiling
	if capped {
		lift = ceiling
	}
	if model.Clamp {
		lift = math.Max(model.ClampMin, math.Min(model.ClampMax, lift))
	}
	return lift, capped
}

package domain

// CampaignConfig holds the campaign-wide parameters of one simulation.
// Budget and CPM are in the same currency unit. CreativeEffectiveness and
// ContextFit are ratings in [0,1].
type CampaignConfig struct {
	Budget                float64 `json:"budget"`
	DurationDays          int     `json:"duration_days"`
	CPM                   float64 `json:"cpm"`
	FrequencyCap          int     `json:"frequency_cap"`
	CreativeEffectiveness float64 `json:"creative_effectiveness"`
	ContextFit            float64 `json:"context_fit"`
}

package domain

// DiagnosticKind classifies a recoverable problem found while computing.
type DiagnosticKind string

const (
	InvalidAllocation    DiagnosticKind = "invalid_allocation"
	ZeroBudgetOrCPM      DiagnosticKind = "zero_budget_or_cpm"
	EmptyChannelSet      DiagnosticKind = "empty_channel_set"
	OverBudgetAllocation DiagnosticKind = "over_budget_allocation"
	ScoreOverflow        DiagnosticKind = "score_overflow"
)

// Diagnostic is a non-fatal finding. Channel is empty for campaign-wide
// findings.
type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind"`
	Channel string         `json:"channel,omitempty"`
	Message string         `json:"message"`
}

package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Mode tells how allocation values are expressed.
type Mode string

const (
	ModePercentage Mode = "percentage"
	ModeCurrency   Mode = "currency"
)

// ParseMode accepts the mode names case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModePercentage, "":
		return ModePercentage, nil
	case ModeCurrency:
		return ModeCurrency, nil
	default:
		return "", fmt.Errorf("unknown allocation mode %q", s)
	}
}

// Allocation maps channel name to either a percentage (0-100) or a currency
// amount, depending on Mode.
type Allocation struct {
	Mode   Mode               `json:"mode"`
	Values map[string]float64 `json:"values"`
}

// Sum adds up all values.
func (a Allocation) Sum() float64 {
	var s float64
	for _, v := range a.Values {
		s += v
	}
	return s
}

// Channels returns the allocated channel names in lexical order.
func (a Allocation) Channels() []string {
	return sortedKeys(a.Values)
}

// Recommendation is an adjusted allocation in the same unit as the input.
type Recommendation Allocation

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package models

import (
	"fmt"
	"strings"
)

// Tier is the subscription level of the local user.
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

// TierLimits are the quotas granted by a [Tier].
type TierLimits struct {
	// HistoryItems is the clipboard history capacity.
	HistoryItems int

	// Templates is the maximum number of saved templates.
	Templates int

	// CloudSync reports whether encrypted sync may be enabled.
	CloudSync bool
}

// Limits returns the quotas for t. Unknown tiers get the free quotas.
func (t Tier) Limits() TierLimits {
	if t == TierPremium {
		return TierLimits{HistoryItems: 1000, Templates: 100, CloudSync: true}
	}
	return TierLimits{HistoryItems: 20, Templates: 3, CloudSync: false}
}

// ParseTier accepts "free" or "premium" in any case. Empty means free.
func ParseTier(s string) (Tier, error) {
	switch Tier(strings.ToLower(strings.TrimSpace(s))) {
	case "", TierFree:
		return TierFree, nil
	case TierPremium:
		return TierPremium, nil
	}
	return "", fmt.Errorf("unknown tier %q", s)
}

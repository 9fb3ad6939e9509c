package analytics

import (
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
)

// BenefitsTable returns the benefit row of every tier, lowest first.
func BenefitsTable() []entity.TierBenefits {
	table := make([]entity.TierBenefits, 0, len(entity.Tiers))
	for _, t := range entity.Tiers {
		if b, ok := t.Benefits(); ok {
			table = append(table, b)
		}
	}
	return table
}

// NextTier returns the tier above t, or "" at the top or for an unknown tier.
func NextTier(t entity.MembershipTier) entity.MembershipTier {
	rank := t.Rank()
	if rank < 0 || rank+1 >= len(entity.Tiers) {
		return ""
	}
	return entity.Tiers[rank+1]
}

// TierProgress is how far the member is towards the next tier, in percent.
// Members at the top tier are at 100.
func TierProgress(m entity.Membership) float64 {
	if m.NextTier == "" || m.PointsToNextTier <= 0 {
		return 100
	}
	return percent(float64(m.PointsBalance), float64(m.PointsBalance+m.PointsToNextTier))
}

// TierCount 等级人数
type TierCount struct {
	Tier  entity.MembershipTier `json:"tier"`
	Count int                   `json:"count"`
}

// TierStatistics 会员等级统计
type TierStatistics struct {
	TotalMembers int         `json:"total_members"`
	ByTier       []TierCount `json:"by_tier"`
}

// ComputeTierStatistics counts members per tier. Every tier appears, lowest
// first, even with no members; unknown tiers count towards the total only.
func ComputeTierStatistics(memberships []entity.Membership) TierStatistics {
	counts := make([]TierCount, len(entity.Tiers))
	for i, t := range entity.Tiers {
		counts[i].Tier = t
	}
	for _, m := range memberships {
		if rank := m.CurrentTier.Rank(); rank >= 0 {
			counts[rank].Count++
		}
	}
	return TierStatistics{TotalMembers: len(memberships), ByTier: counts}
}

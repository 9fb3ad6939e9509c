package analytics

import (
	"testing"

	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenefitsTable(t *testing.T) {
	table := BenefitsTable()
	require.Len(t, table, 4)

	assert.Equal(t, entity.TierBronze, table[0].Tier)
	assert.Equal(t, 1.0, table[0].BonusPointsMultiplier)

	gold := table[2]
	assert.Equal(t, int64(50000), gold.PointsRequired)
	assert.Equal(t, 5.0, gold.DiscountPercentage)
	assert.True(t, gold.FreeShipping)
	assert.Equal(t, 15, gold.ExtendedCreditDays)

	for i := 1; i < len(table); i++ {
		assert.Greater(t, table[i].PointsRequired, table[i-1].PointsRequired)
	}
}

func TestNextTier(t *testing.T) {
	assert.Equal(t, entity.TierSilver, NextTier(entity.TierBronze))
	assert.Equal(t, entity.TierPlatinum, NextTier(entity.TierGold))
	assert.Equal(t, entity.MembershipTier(""), NextTier(entity.TierPlatinum))
	assert.Equal(t, entity.MembershipTier(""), NextTier("Diamond"))
}

func TestTierProgress(t *testing.T) {
	assert.Equal(t, 60.0, TierProgress(entity.Membership{
		CurrentTier:      entity.TierSilver,
		PointsBalance:    30000,
		NextTier:         entity.TierGold,
		PointsToNextTier: 20000,
	}))
	assert.Equal(t, 100.0, TierProgress(entity.Membership{
		CurrentTier:   entity.TierPlatinum,
		PointsBalance: 200000,
	}))
}

func TestComputeTierStatistics(t *testing.T) {
	stats := ComputeTierStatistics([]entity.Membership{
		{CustomerNo: "C1", CurrentTier: entity.TierGold},
		{CustomerNo: "C2", CurrentTier: entity.TierGold},
		{CustomerNo: "C3", CurrentTier: entity.TierBronze},
	})

	assert.Equal(t, 3, stats.TotalMembers)
	assert.Equal(t, []TierCount{
		{Tier: entity.TierBronze, Count: 1},
		{Tier: entity.TierSilver, Count: 0},
		{Tier: entity.TierGold, Count: 2},
		{Tier: entity.TierPlatinum, Count: 0},
	}, stats.ByTier)
}

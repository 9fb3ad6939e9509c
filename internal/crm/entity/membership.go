package entity

import (
	"time"
)

// MembershipTier 会员等级 (Bronze < Silver < Gold < Platinum)
type MembershipTier string

const (
	TierBronze   MembershipTier = "Bronze"
	TierSilver   MembershipTier = "Silver"
	TierGold     MembershipTier = "Gold"
	TierPlatinum MembershipTier = "Platinum"
)

// Tiers lists tiers from lowest to highest.
var Tiers = []MembershipTier{TierBronze, TierSilver, TierGold, TierPlatinum}

func (t MembershipTier) Valid() bool {
	return t.Rank() >= 0
}

// Rank returns the tier's position in Tiers, -1 for an unknown tier.
func (t MembershipTier) Rank() int {
	switch t {
	case TierBronze:
		return 0
	case TierSilver:
		return 1
	case TierGold:
		return 2
	case TierPlatinum:
		return 3
	}
	return -1
}

// TierBenefits 等级权益
type TierBenefits struct {
	Tier                  MembershipTier `json:"tier"`
	PointsRequired        int64          `json:"points_required"`
	DiscountPercentage    float64        `json:"discount_percentage"`
	FreeShipping          bool           `json:"free_shipping"`
	ExtendedCreditDays    int            `json:"extended_credit_days"`
	PrioritySupport       bool           `json:"priority_support"`
	ExclusiveProducts     bool           `json:"exclusive_products"`
	BonusPointsMultiplier float64        `json:"bonus_points_multiplier"`
}

var tierBenefits = map[MembershipTier]TierBenefits{
	TierBronze: {
		Tier:                  TierBronze,
		PointsRequired:        0,
		DiscountPercentage:    0,
		BonusPointsMultiplier: 1,
	},
	TierSilver: {
		Tier:                  TierSilver,
		PointsRequired:        10000,
		DiscountPercentage:    2,
		ExtendedCreditDays:    7,
		BonusPointsMultiplier: 1.2,
	},
	TierGold: {
		Tier:                  TierGold,
		PointsRequired:        50000,
		DiscountPercentage:    5,
		FreeShipping:          true,
		ExtendedCreditDays:    15,
		PrioritySupport:       true,
		ExclusiveProducts:     true,
		BonusPointsMultiplier: 1.5,
	},
	TierPlatinum: {
		Tier:                  TierPlatinum,
		PointsRequired:        150000,
		DiscountPercentage:    8,
		FreeShipping:          true,
		ExtendedCreditDays:    30,
		PrioritySupport:       true,
		ExclusiveProducts:     true,
		BonusPointsMultiplier: 2,
	},
}

// Benefits returns the static benefit row for the tier.
func (t MembershipTier) Benefits() (TierBenefits, bool) {
	b, ok := tierBenefits[t]
	return b, ok
}

// Membership 客户会员信息
type Membership struct {
	CustomerNo            string         `json:"customer_no" gorm:"primaryKey;size:20"`
	CustomerName          string         `json:"customer_name" gorm:"size:200"`
	CurrentTier           MembershipTier `json:"current_tier" gorm:"size:20;index"`
	PointsBalance         int64          `json:"points_balance" gorm:"default:0"`
	PointsLifetime        int64          `json:"points_lifetime" gorm:"default:0"`
	MemberSince           time.Time      `json:"member_since"`
	TierSince             time.Time      `json:"tier_since"`
	NextTier              MembershipTier `json:"next_tier,omitempty" gorm:"size:20"`
	PointsToNextTier      int64          `json:"points_to_next_tier,omitempty" gorm:"default:0"`
	ActiveCampaigns       []string       `json:"active_campaigns" gorm:"type:jsonb;serializer:json"`
	TotalBenefitsRedeemed int            `json:"total_benefits_redeemed" gorm:"default:0"`
}

func (Membership) TableName() string {
	return "crm_memberships"
}

// TransactionType 会员流水类型
type TransactionType string

const (
	TxnPointsEarned    TransactionType = "Points Earned"
	TxnPointsRedeemed  TransactionType = "Points Redeemed"
	TxnPointsExpired   TransactionType = "Points Expired"
	TxnBenefitRedeemed TransactionType = "Benefit Redeemed"
	TxnCampaignJoined  TransactionType = "Campaign Joined"
	TxnTierUpgrade     TransactionType = "Tier Upgrade"
	TxnTierDowngrade   TransactionType = "Tier Downgrade"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TxnPointsEarned, TxnPointsRedeemed, TxnPointsExpired, TxnBenefitRedeemed,
		TxnCampaignJoined, TxnTierUpgrade, TxnTierDowngrade:
		return true
	}
	return false
}

// MembershipTransaction 会员积分流水（只追加）
type MembershipTransaction struct {
	TransactionID   string          `json:"transaction_id" gorm:"primaryKey;size:30"`
	CustomerNo      string          `json:"customer_no" gorm:"size:20;index"`
	TransactionDate time.Time       `json:"transaction_date" gorm:"not null;index"`
	Type            TransactionType `json:"type" gorm:"size:30"`
	Description     string          `json:"description" gorm:"size:500"`
	PointsChange    *int64          `json:"points_change,omitempty"`
	PointsBalance   *int64          `json:"points_balance,omitempty"`
	CampaignID      string          `json:"campaign_id,omitempty" gorm:"size:30"`
	CampaignName    string          `json:"campaign_name,omitempty" gorm:"size:200"`
	BenefitType     BenefitType     `json:"benefit_type,omitempty" gorm:"size:30"`
	BenefitValue    string          `json:"benefit_value,omitempty" gorm:"size:200"`
	OrderNo         string          `json:"order_no,omitempty" gorm:"size:20"`
	PreviousTier    MembershipTier  `json:"previous_tier,omitempty" gorm:"size:20"`
	NewTier         MembershipTier  `json:"new_tier,omitempty" gorm:"size:20"`
	Notes           string          `json:"notes,omitempty" gorm:"type:text"`
}

func (MembershipTransaction) TableName() string {
	return "crm_membership_transactions"
}

package repository

import (
	"time"

	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func budget(v float64) *float64 { return &v }

// sampleCampaigns 会员营销活动样例
func sampleCampaigns() []entity.Campaign {
	return []entity.Campaign{
		{
			CampaignID:     "CAMP-2024-001",
			Name:           "Chinese New Year 2024 Promotion",
			Description:    "Special discounts and bonus points for bulk orders during CNY season",
			Type:           entity.CampaignSeasonal,
			Status:         entity.CampaignStatusCompleted,
			StartDate:      date(2024, time.January, 15),
			EndDate:        date(2024, time.February, 28),
			TargetSegments: []entity.CustomerSegment{entity.SegmentPublishing, entity.SegmentPackaging},
			TargetTiers:    []entity.MembershipTier{entity.TierGold, entity.TierPlatinum},
			Benefits: []entity.CampaignBenefit{
				{BenefitType: entity.BenefitDiscount, Description: "5% discount on orders above 500,000 THB", Value: "5", Conditions: "Minimum order value 500,000 THB"},
				{BenefitType: entity.BenefitBonusPoints, Description: "Double loyalty points on all orders", Value: "2x", Conditions: "Valid for all orders during campaign period"},
			},
			ParticipantsCount: 23,
			Budget:            budget(2000000),
			CreatedBy:         "marketing@caspaper.com",
		},
		{
			CampaignID:     "CAMP-2024-002",
			Name:           "New Customer Welcome Program",
			Description:    "Onboarding incentives for new B2B customers",
			Type:           entity.CampaignLoyalty,
			Status:         entity.CampaignStatusActive,
			StartDate:      date(2024, time.January, 1),
			EndDate:        date(2024, time.December, 31),
			TargetSegments: []entity.CustomerSegment{entity.SegmentPublishing, entity.SegmentPackaging, entity.SegmentConverting, entity.SegmentPrinting},
			TargetTiers:    []entity.MembershipTier{entity.TierBronze},
			Benefits: []entity.CampaignBenefit{
				{BenefitType: entity.BenefitDiscount, Description: "3% discount on first 3 orders", Value: "3", Conditions: "First 3 orders within 90 days of registration"},
				{BenefitType: entity.BenefitFreeShipping, Description: "Free shipping on first order", Value: "Free", Conditions: "First order only"},
				{BenefitType: entity.BenefitBonusPoints, Description: "5,000 welcome bonus points", Value: "5000", Conditions: "Upon first order completion"},
			},
			ParticipantsCount: 12,
			CreatedBy:         "sales@caspaper.com",
		},
		{
			CampaignID:     "CAMP-2024-003",
			Name:           "Q2 Volume Incentive",
			Description:    "Reward high-volume purchases with tier upgrades and exclusive benefits",
			Type:           entity.CampaignVolumeDiscount,
			Status:         entity.CampaignStatusActive,
			StartDate:      date(2024, time.April, 1),
			EndDate:        date(2024, time.June, 30),
			TargetSegments: []entity.CustomerSegment{entity.SegmentPublishing, entity.SegmentPackaging, entity.SegmentConverting},
			TargetTiers:    []entity.MembershipTier{entity.TierSilver, entity.TierGold},
			Benefits: []entity.CampaignBenefit{
				{BenefitType: entity.BenefitDiscount, Description: "Progressive discount up to 10%", Value: "10", Conditions: "2M+ THB = 3%, 5M+ = 6%, 10M+ = 10%"},
				{BenefitType: entity.BenefitPriorityService, Description: "Priority order processing and delivery", Value: "Priority", Conditions: "Orders above 2M THB"},
			},
			ParticipantsCount: 34,
			Budget:            budget(5000000),
			CreatedBy:         "sales@caspaper.com",
		},
		{
			CampaignID:     "CAMP-2024-004",
			Name:           "Early Payment Rewards",
			Description:    "Incentivize early payment with bonus points and benefits",
			Type:           entity.CampaignEarlyPayment,
			Status:         entity.CampaignStatusActive,
			StartDate:      date(2024, time.March, 1),
			EndDate:        date(2024, time.December, 31),
			TargetSegments: clone(entity.Segments),
			TargetTiers:    clone(entity.Tiers),
			Benefits: []entity.CampaignBenefit{
				{BenefitType: entity.BenefitBonusPoints, Description: "Bonus points for early payment", Value: "3x", Conditions: "Pay within 7 days: 3x points, 14 days: 2x points"},
				{BenefitType: entity.BenefitDiscount, Description: "1% cash discount for payment within 7 days", Value: "1", Conditions: "Invoice paid within 7 days"},
			},
			ParticipantsCount: 45,
			CreatedBy:         "finance@caspaper.com",
		},
		{
			CampaignID:     "CAMP-2024-005",
			Name:           "Sustainable Paper Initiative",
			Description:    "Promote eco-friendly paper products with special pricing",
			Type:           entity.CampaignProductLaunch,
			Status:         entity.CampaignStatusUpcoming,
			StartDate:      date(2024, time.July, 1),
			EndDate:        date(2024, time.September, 30),
			TargetSegments: []entity.CustomerSegment{entity.SegmentPublishing, entity.SegmentPrinting},
			TargetTiers:    []entity.MembershipTier{entity.TierGold, entity.TierPlatinum},
			Benefits: []entity.CampaignBenefit{
				{BenefitType: entity.BenefitExclusiveProducts, Description: "Early access to new eco-friendly paper line", Value: "Exclusive", Conditions: "Gold and Platinum members only"},
				{BenefitType: entity.BenefitDiscount, Description: "8% discount on eco-friendly products", Value: "8", Conditions: "Valid on all eco-friendly paper products"},
				{BenefitType: entity.BenefitBonusPoints, Description: "Triple points on sustainable products", Value: "3x", Conditions: "Eco-friendly product purchases only"},
			},
			Budget:    budget(3000000),
			CreatedBy: "product@caspaper.com",
		},
		{
			CampaignID:     "CAMP-2024-006",
			Name:           "Referral Rewards Program",
			Description:    "Earn rewards for referring new business customers",
			Type:           entity.CampaignReferral,
			Status:         entity.CampaignStatusActive,
			StartDate:      date(2024, time.January, 1),
			EndDate:        date(2024, time.December, 31),
			TargetSegments: clone(entity.Segments),
			TargetTiers:    []entity.MembershipTier{entity.TierSilver, entity.TierGold, entity.TierPlatinum},
			Benefits: []entity.CampaignBenefit{
				{BenefitType: entity.BenefitBonusPoints, Description: "10,000 points per successful referral", Value: "10000", Conditions: "Referral must complete first order"},
				{BenefitType: entity.BenefitDiscount, Description: "5% discount on next order after referral", Value: "5", Conditions: "Applied after referred customer places first order"},
			},
			ParticipantsCount: 18,
			CreatedBy:         "marketing@caspaper.com",
		},
	}
}

// sampleMember 固定样例会员，对应前五个客户
type sampleMember struct {
	tier            entity.MembershipTier
	balance         int64
	lifetime        int64
	memberSince     time.Time
	tierSince       time.Time
	activeCampaigns []string
	redeemed        int
}

var sampleMembers = []sampleMember{
	{entity.TierPlatinum, 185000, 320000, date(2020, time.March, 15), date(2023, time.June, 10), []string{"CAMP-2024-003", "CAMP-2024-004", "CAMP-2024-006"}, 12},
	{entity.TierGold, 72000, 145000, date(2021, time.January, 20), date(2023, time.August, 15), []string{"CAMP-2024-003", "CAMP-2024-004"}, 8},
	{entity.TierGold, 95000, 180000, date(2019, time.November, 5), date(2022, time.May, 20), []string{"CAMP-2024-004", "CAMP-2024-006"}, 15},
	{entity.TierSilver, 18000, 35000, date(2022, time.August, 10), date(2023, time.November, 1), []string{"CAMP-2024-004"}, 3},
	{entity.TierBronze, 5200, 8500, date(2023, time.September, 15), date(2023, time.September, 15), []string{"CAMP-2024-002", "CAMP-2024-004"}, 1},
}

// sampleCustomer 固定样例客户
type sampleCustomer struct {
	name      string
	segment   entity.CustomerSegment
	territory entity.Territory
}

var sampleCustomers = []sampleCustomer{
	{"Bangkok Publishing House Co., Ltd.", entity.SegmentPublishing, entity.TerritoryBangkok},
	{"Thai Packaging Solutions Ltd.", entity.SegmentPackaging, entity.TerritoryCentral},
	{"Central Printing Press", entity.SegmentPrinting, entity.TerritoryCentral},
	{"Modern Office Supply Co.", entity.SegmentDistribution, entity.TerritoryBangkok},
	{"Chiangmai Book Center", entity.SegmentDistribution, entity.TerritoryNorth},
}

var (
	namePlaces = []string{
		"Siam", "Rattanakosin", "Lanna", "Isan", "Andaman", "Chao Phraya", "Eastern Seaboard",
		"Korat", "Ayutthaya", "Songkhla", "Rayong", "Nonthaburi", "Phuket", "Udon", "Khon Kaen",
	}
	segmentNouns = map[entity.CustomerSegment]string{
		entity.SegmentPublishing:   "Publishing",
		entity.SegmentPackaging:    "Packaging",
		entity.SegmentConverting:   "Paper Converting",
		entity.SegmentPrinting:     "Printing",
		entity.SegmentDistribution: "Paper Trading",
	}

	docTypes      = []entity.DocumentType{entity.DocTypeStandardOrder, entity.DocTypeRushOrder, entity.DocTypeConsignmentOrder}
	carriers      = []string{"Kerry Express", "Flash Express", "J&T Express", "Thailand Post", "SCG Logistics", "Best Express"}
	routes        = []string{"Bangkok - Central", "Bangkok - North", "Bangkok - Northeast", "Bangkok - East", "Bangkok - South"}
	trackingCodes = []string{"TH", "BKK", "CNX", "HKT", "HDY"}
	paymentTerms  = []string{entity.PaymentTermsNet30, entity.PaymentTermsNet45, entity.PaymentTermsNet60}
	receiverNames = []string{"นายสมชาย วัฒนา", "นางสาวกานต์ ศรีสุข", "นายประเสริฐ มั่นคง", "นางพิมพ์ใจ ใจดี"}
)

package entity

import (
	"time"
)

// CampaignType 活动类型
type CampaignType string

const (
	CampaignSeasonal       CampaignType = "Seasonal"
	CampaignProductLaunch  CampaignType = "Product Launch"
	CampaignVolumeDiscount CampaignType = "Volume Discount"
	CampaignEarlyPayment   CampaignType = "Early Payment"
	CampaignLoyalty        CampaignType = "Loyalty"
	CampaignReferral       CampaignType = "Referral"
)

func (t CampaignType) Valid() bool {
	switch t {
	case CampaignSeasonal, CampaignProductLaunch, CampaignVolumeDiscount, CampaignEarlyPayment, CampaignLoyalty, CampaignReferral:
		return true
	}
	return false
}

// CampaignStatus 活动状态
type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "Active"
	CampaignStatusUpcoming  CampaignStatus = "Upcoming"
	CampaignStatusCompleted CampaignStatus = "Completed"
	CampaignStatusCancelled CampaignStatus = "Cancelled"
)

func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignStatusActive, CampaignStatusUpcoming, CampaignStatusCompleted, CampaignStatusCancelled:
		return true
	}
	return false
}

// BenefitType 权益类型
type BenefitType string

const (
	BenefitDiscount          BenefitType = "Discount"
	BenefitFreeShipping      BenefitType = "Free Shipping"
	BenefitExtendedCredit    BenefitType = "Extended Credit"
	BenefitPriorityService   BenefitType = "Priority Service"
	BenefitExclusiveProducts BenefitType = "Exclusive Products"
	BenefitBonusPoints       BenefitType = "Bonus Points"
)

func (b BenefitType) Valid() bool {
	switch b {
	case BenefitDiscount, BenefitFreeShipping, BenefitExtendedCredit, BenefitPriorityService, BenefitExclusiveProducts, BenefitBonusPoints:
		return true
	}
	return false
}

// CampaignBenefit 活动权益
type CampaignBenefit struct {
	BenefitType BenefitType `json:"benefit_type"`
	Description string      `json:"description"`
	Value       string      `json:"value"`
	Conditions  string      `json:"conditions,omitempty"`
}

// Campaign 会员营销活动
type Campaign struct {
	CampaignID        string            `json:"campaign_id" gorm:"primaryKey;size:30"`
	Name              string            `json:"name" gorm:"size:200;not null"`
	Description       string            `json:"description" gorm:"type:text"`
	Type              CampaignType      `json:"type" gorm:"size:30"`
	Status            CampaignStatus    `json:"status" gorm:"size:20;index"`
	StartDate         time.Time         `json:"start_date"`
	EndDate           time.Time         `json:"end_date"`
	TargetSegments    []CustomerSegment `json:"target_segments" gorm:"type:jsonb;serializer:json"`
	TargetTiers       []MembershipTier  `json:"target_tiers" gorm:"type:jsonb;serializer:json"`
	Benefits          []CampaignBenefit `json:"benefits" gorm:"type:jsonb;serializer:json"`
	ParticipantsCount int               `json:"participants_count" gorm:"default:0"`
	Budget            *float64          `json:"budget,omitempty" gorm:"type:decimal(14,2)"`
	CreatedBy         string            `json:"created_by" gorm:"size:100"`
}

func (Campaign) TableName() string {
	return "crm_campaigns"
}

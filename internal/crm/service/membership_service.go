package service

import (
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/analytics"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/repository"
)

type MembershipService struct {
	memberships *repository.MembershipRepository
	campaigns   *repository.CampaignRepository
}

func NewMembershipService(memberships *repository.MembershipRepository, campaigns *repository.CampaignRepository) *MembershipService {
	return &MembershipService{memberships: memberships, campaigns: campaigns}
}

// MembershipItem 会员列表项
type MembershipItem struct {
	entity.Membership
	TierProgress float64 `json:"tier_progress"`
}

// MembershipDetail 会员详情
type MembershipDetail struct {
	entity.Membership
	TierProgress     float64                        `json:"tier_progress"`
	Benefits         entity.TierBenefits            `json:"benefits"`
	NextTierBenefits *entity.TierBenefits           `json:"next_tier_benefits,omitempty"`
	Campaigns        []entity.Campaign              `json:"campaigns"`
	Transactions     []entity.MembershipTransaction `json:"transactions"`
}

func (s *MembershipService) List(params repository.MembershipListParams) ([]MembershipItem, int64) {
	memberships, total := s.memberships.List(params)
	items := make([]MembershipItem, len(memberships))
	for i, m := range memberships {
		items[i] = MembershipItem{Membership: m, TierProgress: analytics.TierProgress(m)}
	}
	return items, total
}

func (s *MembershipService) Get(customerNo string) (*MembershipDetail, error) {
	m, err := s.memberships.Get(customerNo)
	if err != nil {
		return nil, err
	}

	detail := &MembershipDetail{
		Membership:   *m,
		TierProgress: analytics.TierProgress(*m),
		Campaigns:    []entity.Campaign{},
		Transactions: s.memberships.Transactions(customerNo),
	}
	detail.Benefits, _ = m.CurrentTier.Benefits()
	if next, ok := analytics.NextTier(m.CurrentTier).Benefits(); ok {
		detail.NextTierBenefits = &next
	}
	// 会员记录中已失效的活动ID忽略
	for _, id := range m.ActiveCampaigns {
		if c, err := s.campaigns.Get(id); err == nil {
			detail.Campaigns = append(detail.Campaigns, *c)
		}
	}
	return detail, nil
}

func (s *MembershipService) Statistics() analytics.TierStatistics {
	return analytics.ComputeTierStatistics(s.memberships.All())
}

func (s *MembershipService) Tiers() []entity.TierBenefits {
	return analytics.BenefitsTable()
}

func (s *MembershipService) Campaigns(status string) []entity.Campaign {
	if status != "" {
		return s.campaigns.ByStatus(entity.CampaignStatus(status))
	}
	return s.campaigns.All()
}

func (s *MembershipService) Campaign(campaignID string) (*entity.Campaign, error) {
	return s.campaigns.Get(campaignID)
}

package repository

import (
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
)

type CampaignRepository struct {
	store *Store
}

func NewCampaignRepository(store *Store) *CampaignRepository {
	return &CampaignRepository{store: store}
}

func (r *CampaignRepository) Get(campaignID string) (*entity.Campaign, error) {
	c, ok := r.store.Current().FindCampaign(campaignID)
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *CampaignRepository) All() []entity.Campaign {
	return clone(r.store.Current().Campaigns())
}

func (r *CampaignRepository) Active() []entity.Campaign {
	return r.ByStatus(entity.CampaignStatusActive)
}

func (r *CampaignRepository) ByStatus(status entity.CampaignStatus) []entity.Campaign {
	return filter(r.store.Current().Campaigns(), func(c entity.Campaign) bool {
		return c.Status == status
	})
}

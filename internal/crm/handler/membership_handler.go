package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/repository"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/service"
)

// MembershipHandler 会员与营销活动
type MembershipHandler struct {
	svc *service.MembershipService
}

func NewMembershipHandler(svc *service.MembershipService) *MembershipHandler {
	return &MembershipHandler{svc: svc}
}

// List GET /memberships?tier=&keyword=
func (h *MembershipHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	tier := c.Query("tier")
	if tier != "" && !entity.MembershipTier(tier).Valid() {
		BadRequest(c, "invalid tier: "+tier)
		return
	}

	items, total := h.svc.List(repository.MembershipListParams{
		Tier:    tier,
		Keyword: c.Query("keyword"),
		Page:    page,
		Size:    pageSize,
	})
	SuccessList(c, items, page, pageSize, total)
}

// Stats GET /memberships/stats
func (h *MembershipHandler) Stats(c *gin.Context) {
	Success(c, h.svc.Statistics())
}

// Get GET /memberships/:customer_no
func (h *MembershipHandler) Get(c *gin.Context) {
	detail, err := h.svc.Get(c.Param("customer_no"))
	if err != nil {
		lookupError(c, err, "membership")
		return
	}
	Success(c, detail)
}

// Tiers GET /tiers
func (h *MembershipHandler) Tiers(c *gin.Context) {
	Success(c, h.svc.Tiers())
}

// Campaigns GET /campaigns?status=
func (h *MembershipHandler) Campaigns(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !entity.CampaignStatus(status).Valid() {
		BadRequest(c, "invalid campaign status: "+status)
		return
	}
	Success(c, h.svc.Campaigns(status))
}

// Campaign GET /campaigns/:campaign_id
func (h *MembershipHandler) Campaign(c *gin.Context) {
	campaign, err := h.svc.Campaign(c.Param("campaign_id"))
	if err != nil {
		lookupError(c, err, "campaign")
		return
	}
	Success(c, campaign)
}

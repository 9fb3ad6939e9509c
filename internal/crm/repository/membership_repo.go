package repository

import (
	"sort"

	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
)

type MembershipRepository struct {
	store *Store
}

func NewMembershipRepository(store *Store) *MembershipRepository {
	return &MembershipRepository{store: store}
}

func (r *MembershipRepository) Get(customerNo string) (*entity.Membership, error) {
	m, ok := r.store.Current().FindMembership(customerNo)
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

// All returns every membership, highest points balance first.
func (r *MembershipRepository) All() []entity.Membership {
	return byBalance(clone(r.store.Current().Memberships()))
}

func (r *MembershipRepository) ByTier(tier entity.MembershipTier) []entity.Membership {
	return byBalance(filter(r.store.Current().Memberships(), func(m entity.Membership) bool {
		return m.CurrentTier == tier
	}))
}

// Search matches customer number and name.
func (r *MembershipRepository) Search(query string) []entity.Membership {
	q := newMatcher(query)
	return byBalance(filter(r.store.Current().Memberships(), func(m entity.Membership) bool {
		return q.match(m.CustomerNo, m.CustomerName)
	}))
}

// Transactions returns the customer's ledger, newest first.
func (r *MembershipRepository) Transactions(customerNo string) []entity.MembershipTransaction {
	return clone(r.store.Current().TransactionsByCustomer(customerNo))
}

type MembershipListParams struct {
	Tier    string
	Keyword string
	Page    int
	Size    int
}

func (r *MembershipRepository) List(params MembershipListParams) ([]entity.Membership, int64) {
	q := newMatcher(params.Keyword)
	memberships := byBalance(filter(r.store.Current().Memberships(), func(m entity.Membership) bool {
		if params.Tier != "" && string(m.CurrentTier) != params.Tier {
			return false
		}
		return q.match(m.CustomerNo, m.CustomerName)
	}))
	return paginate(memberships, params.Page, params.Size)
}

func byBalance(memberships []entity.Membership) []entity.Membership {
	sort.SliceStable(memberships, func(i, j int) bool {
		return memberships[i].PointsBalance > memberships[j].PointsBalance
	})
	return memberships
}

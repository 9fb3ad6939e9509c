package repository

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/skirdsawad/papertech-crm-poc/internal/crm/analytics"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
)

const (
	DefaultGeneratorSeed      int64 = 20240601
	DefaultGeneratedCustomers       = 30
	DefaultGeneratedOrders          = 250

	pointsPerBaht  = 0.01
	membershipRate = 0.6
)

// GeneratorOptions 模拟数据生成参数
type GeneratorOptions struct {
	Seed      int64
	Customers int
	Orders    int
	Now       func() time.Time
}

func (o GeneratorOptions) withDefaults() GeneratorOptions {
	if o.Customers <= 0 {
		o.Customers = DefaultGeneratedCustomers
	}
	if o.Orders <= 0 {
		o.Orders = DefaultGeneratedOrders
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// GeneratedLoader builds a reproducible mock dataset. The same seed and clock
// always produce the same snapshot.
type GeneratedLoader struct {
	opts GeneratorOptions
}

func NewGeneratedLoader(opts GeneratorOptions) *GeneratedLoader {
	return &GeneratedLoader{opts: opts.withDefaults()}
}

func (l *GeneratedLoader) Source() string { return "generated" }

func (l *GeneratedLoader) Load(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Generate(l.opts), nil
}

// Generate creates customers, a year of orders with their deliveries and
// invoices, memberships with a points ledger, and the campaign catalogue.
func Generate(opts GeneratorOptions) *Snapshot {
	opts = opts.withDefaults()
	g := &generator{
		rnd: analytics.NewSeededRandom(opts.Seed),
		now: opts.Now(),
	}

	customers := g.customers(opts.Customers)
	orders := g.orders(customers, opts.Orders)
	deliveries := g.deliveries(orders)
	invoices := g.invoices(orders)
	settleCredit(customers, invoices)

	campaigns := sampleCampaigns()
	memberships := g.memberships(customers, campaigns)
	transactions := g.transactions(memberships, orders, campaigns)

	return &Snapshot{
		Customers:    customers,
		Orders:       orders,
		Invoices:     invoices,
		Deliveries:   deliveries,
		Memberships:  memberships,
		Transactions: transactions,
		Campaigns:    campaigns,
	}
}

type generator struct {
	rnd analytics.Random
	now time.Time
}

func (g *generator) intBetween(min, max int) int {
	return analytics.IntBetween(g.rnd, min, max)
}

func (g *generator) dateBetween(start, end time.Time) time.Time {
	return start.Add(time.Duration(g.rnd.Float64() * float64(end.Sub(start))))
}

func addDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

func daysBetween(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / 24))
}

// --- Customers ---

func (g *generator) customers(n int) []entity.Customer {
	customers := make([]entity.Customer, 0, n)
	seen := make(map[string]bool, n)
	now := g.now

	for i := 0; i < n; i++ {
		var name string
		var segment entity.CustomerSegment
		var territory entity.Territory
		if i < len(sampleCustomers) {
			s := sampleCustomers[i]
			name, segment, territory = s.name, s.segment, s.territory
		} else {
			segment = analytics.Pick(g.rnd, entity.Segments)
			territory = analytics.Pick(g.rnd, entity.Territories)
			place := namePlaces[(i-len(sampleCustomers))%len(namePlaces)]
			name = fmt.Sprintf("%s %s Co., Ltd.", place, segmentNouns[segment])
			if seen[name] {
				name = fmt.Sprintf("%s %s (%d) Co., Ltd.", place, segmentNouns[segment], i)
			}
		}
		seen[name] = true

		limit := float64(g.intBetween(5, 50)) * 1000000
		customers = append(customers, entity.Customer{
			CustomerNo:              fmt.Sprintf("%d", 1000001+i),
			SalesOrg:                "1000",
			LegalName:               name,
			TaxID:                   fmt.Sprintf("0105%09d", g.intBetween(100000000, 999999999)),
			PaymentTerms:            analytics.Pick(g.rnd, paymentTerms),
			CreditLimit:             limit,
			CreditAvailable:         limit,
			NegotiatedPricingActive: analytics.Chance(g.rnd, 0.3),
			Segment:                 segment,
			Territory:               territory,
			LastUpdated:             &now,
		})
	}
	return customers
}

// settleCredit derives exposure, availability and aging from open invoices.
func settleCredit(customers []entity.Customer, invoices []entity.Invoice) {
	idx := positions(customers, func(c entity.Customer) string { return c.CustomerNo })
	for _, inv := range invoices {
		i, ok := idx[inv.CustomerNo]
		if !ok || !analytics.Receivable(inv) {
			continue
		}
		c := &customers[i]
		c.CreditExposure += inv.Balance
		switch analytics.BucketFor(inv.DaysOverdue) {
		case analytics.Aging0To30:
			c.Aging.Bucket0To30 += inv.Balance
		case analytics.Aging31To60:
			c.Aging.Bucket31To60 += inv.Balance
		case analytics.Aging61To90:
			c.Aging.Bucket61To90 += inv.Balance
		case analytics.Aging90Plus:
			c.Aging.Bucket90Plus += inv.Balance
		}
	}
	for i := range customers {
		customers[i].CreditAvailable = customers[i].CreditLimit - customers[i].CreditExposure
	}
}

// --- Orders ---

func (g *generator) orders(customers []entity.Customer, n int) []entity.Order {
	if len(customers) == 0 {
		return nil
	}
	end := g.now
	start := end.AddDate(0, -12, 0)

	orders := make([]entity.Order, 0, n)
	for i := 1; i <= n; i++ {
		orderDate := g.dateBetween(start, end)
		docType := analytics.Pick(g.rnd, docTypes)
		netValue := float64(g.intBetween(100000, 3000000))

		var status entity.OrderStatus
		switch r := g.rnd.Float64(); {
		case r < 0.6:
			status = entity.OrderStatusDelivered
		case r < 0.8:
			status = entity.OrderStatusInProgress
		case r < 0.9:
			status = entity.OrderStatusPartiallyDelivered
		default:
			status = entity.OrderStatusOpen
		}

		customer := customers[g.intBetween(0, len(customers)-1)]
		itemsCount := g.intBetween(1, 15)

		var deliveryDate *time.Time
		if status != entity.OrderStatusOpen {
			d := addDays(orderDate, g.intBetween(7, 30))
			deliveryDate = &d
		}

		orders = append(orders, entity.Order{
			OrderNo:      fmt.Sprintf("SO%07d", i),
			OrderDate:    orderDate,
			DocType:      docType,
			NetValue:     netValue,
			Status:       status,
			CustomerNo:   customer.CustomerNo,
			CustomerName: customer.LegalName,
			DeliveryDate: deliveryDate,
			ItemsCount:   itemsCount,
		})
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate.Before(orders[j].OrderDate)
	})
	return orders
}

// --- Deliveries ---

func (g *generator) deliveries(orders []entity.Order) []entity.Delivery {
	deliveries := make([]entity.Delivery, 0, len(orders))
	for _, o := range orders {
		if o.Status == entity.OrderStatusOpen {
			continue
		}

		planned := addDays(o.OrderDate, g.intBetween(7, 21))
		if o.DeliveryDate != nil {
			planned = *o.DeliveryDate
		}

		var (
			status       entity.DeliveryStatus
			actual       *time.Time
			podAvailable bool
		)
		switch o.Status {
		case entity.OrderStatusDelivered:
			status = entity.DeliveryStatusDelivered
			a := addDays(planned, g.intBetween(-2, 3))
			actual = &a
			podAvailable = g.rnd.Float64() > 0.2
		case entity.OrderStatusPartiallyDelivered:
			status = entity.DeliveryStatusDelivered
			a := addDays(planned, g.intBetween(-2, 3))
			actual = &a
			podAvailable = g.rnd.Float64() > 0.3
		default:
			status = entity.DeliveryStatusPlanned
			if g.rnd.Float64() > 0.5 {
				status = entity.DeliveryStatusInTransit
			}
		}

		trackingNo := fmt.Sprintf("%s%d", trackingCodes[g.intBetween(0, len(trackingCodes)-1)], g.intBetween(100000000, 999999999))
		index := len(deliveries)

		d := entity.Delivery{
			DeliveryNo:   fmt.Sprintf("DL%07d", index+1),
			OrderNo:      o.OrderNo,
			CustomerNo:   o.CustomerNo,
			CustomerName: o.CustomerName,
			PlannedDate:  planned,
			ActualDate:   actual,
			Status:       status,
			Carrier:      analytics.Pick(g.rnd, carriers),
			Route:        analytics.Pick(g.rnd, routes),
			TrackingNo:   trackingNo,
			PODAvailable: podAvailable,
		}
		if podAvailable {
			d.POD = proofOfDelivery(index, *actual)
		}
		deliveries = append(deliveries, d)
	}
	return deliveries
}

func proofOfDelivery(index int, received time.Time) *entity.ProofOfDelivery {
	pod := &entity.ProofOfDelivery{
		SignatureURL: fmt.Sprintf("/signatures/sig_%d.png", index%3+1),
		PhotoURL:     fmt.Sprintf("/pod-photos/pod_%d.jpg", index%5+1),
		ReceivedBy:   receiverNames[index%len(receiverNames)],
		ReceivedDate: &received,
	}
	if index%3 == 0 {
		pod.Notes = "Delivered to warehouse"
	}
	return pod
}

// --- Invoices ---

func termDays(terms string) int {
	switch terms {
	case entity.PaymentTermsNet45:
		return 45
	case entity.PaymentTermsNet60:
		return 60
	case entity.PaymentTermsNet90:
		return 90
	default:
		return 30
	}
}

// invoices bills delivered and partially delivered orders, plus about 30% of
// the rest. Older invoices are more likely to be settled.
func (g *generator) invoices(orders []entity.Order) []entity.Invoice {
	invoices := make([]entity.Invoice, 0, len(orders))
	for _, o := range orders {
		billable := o.Status == entity.OrderStatusDelivered || o.Status == entity.OrderStatusPartiallyDelivered
		if !billable && g.rnd.Float64() <= 0.7 {
			continue
		}

		invoiceDate := addDays(o.OrderDate, g.intBetween(10, 25))
		if o.DeliveryDate != nil {
			invoiceDate = addDays(*o.DeliveryDate, g.intBetween(1, 5))
		}
		terms := analytics.Pick(g.rnd, paymentTerms)
		term := termDays(terms)
		dueDate := addDays(invoiceDate, term)

		inv := entity.Invoice{
			InvoiceNo:      fmt.Sprintf("INV2024%07d", len(invoices)+1),
			CustomerNo:     o.CustomerNo,
			CustomerName:   o.CustomerName,
			InvoiceDate:    invoiceDate,
			DueDate:        dueDate,
			Amount:         o.NetValue,
			Balance:        o.NetValue,
			Status:         entity.InvoiceStatusOpen,
			PaymentTerms:   terms,
			ReferenceOrder: o.OrderNo,
		}
		g.settle(&inv, term)
		invoices = append(invoices, inv)
	}

	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].InvoiceDate.Before(invoices[j].InvoiceDate)
	})
	return invoices
}

func (g *generator) settle(inv *entity.Invoice, term int) {
	pastDue := inv.DueDate.Before(g.now)
	daysSince := daysBetween(inv.InvoiceDate, g.now)
	probability := math.Min(0.95, float64(daysSince)/(float64(term)*1.5))
	overdueDays := func() int { return daysBetween(inv.DueDate, g.now) }

	paidInFull := func() {
		inv.PaidAmount = inv.Amount
		inv.Balance = 0
		inv.Status = entity.InvoiceStatusPaid
	}

	r := g.rnd.Float64()
	switch {
	case r < probability*0.85:
		paidInFull()
	case r < probability*0.95:
		inv.PaidAmount = math.Floor(inv.Amount * (0.4 + g.rnd.Float64()*0.5))
		inv.Balance = inv.Amount - inv.PaidAmount
		inv.Status = entity.InvoiceStatusPartiallyPaid
		if pastDue {
			inv.Status = entity.InvoiceStatusOverdue
			inv.DaysOverdue = overdueDays()
		}
	case pastDue && g.rnd.Float64() < 0.2:
		inv.Status = entity.InvoiceStatusOverdue
		inv.DaysOverdue = overdueDays()
	case pastDue:
		paidInFull()
	}
}

// --- Memberships ---

// tierFor returns the highest tier whose threshold the balance reaches.
func tierFor(balance int64) entity.MembershipTier {
	tier := entity.TierBronze
	for _, b := range analytics.BenefitsTable() {
		if balance >= b.PointsRequired {
			tier = b.Tier
		}
	}
	return tier
}

func withNextTier(m entity.Membership) entity.Membership {
	m.NextTier = analytics.NextTier(m.CurrentTier)
	m.PointsToNextTier = 0
	if next, ok := m.NextTier.Benefits(); ok {
		m.PointsToNextTier = next.PointsRequired - m.PointsBalance
		if m.PointsToNextTier < 0 {
			m.PointsToNextTier = 0
		}
	}
	return m
}

func (g *generator) memberships(customers []entity.Customer, campaigns []entity.Campaign) []entity.Membership {
	memberships := make([]entity.Membership, 0, len(customers))
	for i, c := range customers {
		if i < len(sampleMembers) {
			s := sampleMembers[i]
			memberships = append(memberships, withNextTier(entity.Membership{
				CustomerNo:            c.CustomerNo,
				CustomerName:          c.LegalName,
				CurrentTier:           s.tier,
				PointsBalance:         s.balance,
				PointsLifetime:        s.lifetime,
				MemberSince:           s.memberSince,
				TierSince:             s.tierSince,
				ActiveCampaigns:       clone(s.activeCampaigns),
				TotalBenefitsRedeemed: s.redeemed,
			}))
			continue
		}
		if !analytics.Chance(g.rnd, membershipRate) {
			continue
		}

		balance := int64(g.intBetween(1000, 120000))
		lifetime := balance + int64(g.intBetween(0, int(balance)))
		memberSince := g.dateBetween(g.now.AddDate(-5, 0, 0), g.now.AddDate(-1, 0, 0))
		tier := tierFor(balance)

		memberships = append(memberships, withNextTier(entity.Membership{
			CustomerNo:            c.CustomerNo,
			CustomerName:          c.LegalName,
			CurrentTier:           tier,
			PointsBalance:         balance,
			PointsLifetime:        lifetime,
			MemberSince:           memberSince,
			TierSince:             g.dateBetween(memberSince, g.now),
			ActiveCampaigns:       eligibleCampaigns(campaigns, c.Segment, tier),
			TotalBenefitsRedeemed: g.intBetween(0, 10),
		}))
	}
	return memberships
}

func eligibleCampaigns(campaigns []entity.Campaign, segment entity.CustomerSegment, tier entity.MembershipTier) []string {
	ids := make([]string, 0)
	for _, c := range campaigns {
		if c.Status != entity.CampaignStatusActive {
			continue
		}
		if contains(c.TargetSegments, segment) && contains(c.TargetTiers, tier) {
			ids = append(ids, c.CampaignID)
		}
	}
	return ids
}

func contains[T comparable](items []T, v T) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}

// transactions records points earned on each member's three latest orders and
// one join entry per active campaign. Balances are walked back from the
// member's current balance.
func (g *generator) transactions(memberships []entity.Membership, orders []entity.Order, campaigns []entity.Campaign) []entity.MembershipTransaction {
	byCustomer := groupBy(orders, func(o entity.Order) string { return o.CustomerNo })
	campaignByID := positions(campaigns, func(c entity.Campaign) string { return c.CampaignID })

	var txns []entity.MembershipTransaction
	for _, m := range memberships {
		benefits, _ := m.CurrentTier.Benefits()
		multiplier := benefits.BonusPointsMultiplier

		// 最近三笔订单，新的在前
		recent := byCustomer[m.CustomerNo]
		var earned []entity.MembershipTransaction
		for i := len(recent) - 1; i >= 0 && len(earned) < 3; i-- {
			o := recent[i]
			points := int64(math.Floor(o.NetValue * pointsPerBaht * multiplier))
			earned = append(earned, entity.MembershipTransaction{
				CustomerNo:      m.CustomerNo,
				TransactionDate: o.OrderDate,
				Type:            entity.TxnPointsEarned,
				Description:     "Points earned from Order " + o.OrderNo,
				PointsChange:    &points,
				OrderNo:         o.OrderNo,
				Notes:           fmt.Sprintf("Regular order points (%gx multiplier applied)", multiplier),
			})
		}
		balance := m.PointsBalance
		for i := range earned {
			b := balance
			earned[i].PointsBalance = &b
			balance -= *earned[i].PointsChange
		}
		txns = append(txns, earned...)

		for _, id := range m.ActiveCampaigns {
			i, ok := campaignByID[id]
			if !ok {
				continue
			}
			c := campaigns[i]
			joined := c.StartDate
			if joined.Before(m.MemberSince) {
				joined = m.MemberSince
			}
			txns = append(txns, entity.MembershipTransaction{
				CustomerNo:      m.CustomerNo,
				TransactionDate: joined,
				Type:            entity.TxnCampaignJoined,
				Description:     "Joined " + c.Name,
				CampaignID:      c.CampaignID,
				CampaignName:    c.Name,
			})
		}
	}

	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].TransactionDate.Before(txns[j].TransactionDate)
	})
	for i := range txns {
		txns[i].TransactionID = fmt.Sprintf("TXN-%06d", i+1)
	}
	return txns
}

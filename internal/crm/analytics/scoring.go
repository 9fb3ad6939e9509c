package analytics

import (
	"math"

	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
	"gonum.org/v1/gonum/stat"
)

// Paid invoices carry no settlement timestamp, so days-to-pay is estimated as
// a fraction of the payment term drawn from [paymentFractionLow, paymentFractionLow+paymentFractionSpan).
const (
	paymentFractionLow  = 0.70
	paymentFractionSpan = 0.25
)

// behaviorRule is one row of the payment behaviour table. A row matches when
// both bounds hold, or either bound when anyOf is set.
type behaviorRule struct {
	maxRatio  float64 // exclusive; ratioZero overrides
	ratioZero bool
	maxDays   float64 // inclusive
	anyOf     bool
	behavior  entity.PaymentBehavior
}

// Ordered strictest first; first match wins.
var behaviorRules = []behaviorRule{
	{ratioZero: true, maxDays: 30, behavior: entity.PaymentExcellent},
	{maxRatio: 0.05, maxDays: 35, behavior: entity.PaymentExcellent},
	{maxRatio: 0.15, maxDays: 45, behavior: entity.PaymentGood},
	{maxRatio: 0.25, maxDays: 50, behavior: entity.PaymentGood},
	{maxRatio: 0.40, maxDays: 60, behavior: entity.PaymentFair},
	{maxRatio: 0.50, maxDays: 70, anyOf: true, behavior: entity.PaymentFair},
}

func (r behaviorRule) matches(overdueRatio, avgPaymentDays float64) bool {
	ratioOK := overdueRatio < r.maxRatio
	if r.ratioZero {
		ratioOK = overdueRatio == 0
	}
	daysOK := avgPaymentDays <= r.maxDays
	if r.anyOf {
		return ratioOK || daysOK
	}
	return ratioOK && daysOK
}

// ClassifyPaymentBehavior rates a customer from the share of invoiced amount
// that is overdue and the average days taken to pay.
func ClassifyPaymentBehavior(overdueRatio, avgPaymentDays float64) entity.PaymentBehavior {
	for _, rule := range behaviorRules {
		if rule.matches(overdueRatio, avgPaymentDays) {
			return rule.behavior
		}
	}
	return entity.PaymentPoor
}

// OverdueRatio is overdue balance over total invoiced amount, 0 without invoices.
func OverdueRatio(invoices []entity.Invoice) float64 {
	r := RollupInvoices(invoices)
	return ratio(r.OverdueAmount, r.TotalAmount)
}

// EstimatePaymentDays guesses how long a paid invoice took to settle.
func EstimatePaymentDays(inv entity.Invoice, rnd Random) int {
	fraction := paymentFractionLow + rnd.Float64()*paymentFractionSpan
	return int(math.Floor(float64(inv.TermDays()) * fraction))
}

// AvgPaymentDays averages EstimatePaymentDays over Paid invoices, in input
// order, drawing one value from rnd per paid invoice. 0 when none are paid.
func AvgPaymentDays(invoices []entity.Invoice, rnd Random) float64 {
	days := make([]float64, 0, len(invoices))
	for _, inv := range invoices {
		if inv.Status != entity.InvoiceStatusPaid {
			continue
		}
		days = append(days, float64(EstimatePaymentDays(inv, rnd)))
	}
	if len(days) == 0 {
		return 0
	}
	return stat.Mean(days, nil)
}

// CreditUtilization is exposure over limit in percent, 0 without a limit.
func CreditUtilization(c entity.Customer) float64 {
	if c.CreditLimit <= 0 {
		return 0
	}
	return c.CreditExposure / c.CreditLimit * 100
}

package analytics

import (
	"time"

	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
)

// GrowthWindows returns the start of the previous and recent quarters relative
// to now. Months are subtracted on the calendar (time.Date normalises overflow,
// so May 31 minus three months is March 3 in a non-leap year), and the boundary
// is local midnight in now's location.
func GrowthWindows(now time.Time) (sixMonthsAgo, threeMonthsAgo time.Time) {
	y, m, d := now.Date()
	loc := now.Location()
	sixMonthsAgo = time.Date(y, m-6, d, 0, 0, 0, 0, loc)
	threeMonthsAgo = time.Date(y, m-3, d, 0, 0, 0, 0, loc)
	return sixMonthsAgo, threeMonthsAgo
}

// GrowthRate compares revenue from the last three months with the three months
// before that, in percent. Zero previous revenue yields 0.
func GrowthRate(orders []entity.Order, now time.Time) float64 {
	sixMonthsAgo, threeMonthsAgo := GrowthWindows(now)

	var recent, previous []entity.Order
	for _, o := range orders {
		switch {
		case !o.OrderDate.Before(threeMonthsAgo):
			recent = append(recent, o)
		case !o.OrderDate.Before(sixMonthsAgo):
			previous = append(previous, o)
		}
	}

	netValue := func(o entity.Order) float64 { return o.NetValue }
	recentRevenue := sumOf(recent, netValue)
	previousRevenue := sumOf(previous, netValue)
	if previousRevenue <= 0 {
		return 0
	}
	return (recentRevenue - previousRevenue) / previousRevenue * 100
}

package analytics

import (
	"testing"
	"time"

	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
	"github.com/stretchr/testify/assert"
)

func TestGrowthWindows_CalendarMonths(t *testing.T) {
	now := time.Date(2023, time.May, 31, 15, 30, 0, 0, time.UTC)
	six, three := GrowthWindows(now)

	// February 31st rolls over into March.
	assert.Equal(t, day(2023, time.March, 3), three)
	// November 31st rolls over into December.
	assert.Equal(t, day(2022, time.December, 1), six)
}

func TestGrowthWindows_Midnight(t *testing.T) {
	loc := time.FixedZone("ICT", 7*60*60)
	now := time.Date(2024, time.August, 20, 23, 59, 0, 0, loc)
	six, three := GrowthWindows(now)

	assert.Equal(t, time.Date(2024, time.May, 20, 0, 0, 0, 0, loc), three)
	assert.Equal(t, time.Date(2024, time.February, 20, 0, 0, 0, 0, loc), six)
}

func TestGrowthRate(t *testing.T) {
	now := day(2024, time.June, 15)

	tests := []struct {
		name   string
		orders []entity.Order
		want   float64
	}{
		{
			name: "growth over previous quarter",
			orders: []entity.Order{
				order("SO1", "C1", day(2024, time.May, 1), 300),
				order("SO2", "C1", day(2024, time.February, 1), 200),
			},
			want: 50,
		},
		{
			name: "decline",
			orders: []entity.Order{
				order("SO1", "C1", day(2024, time.May, 1), 100),
				order("SO2", "C1", day(2024, time.January, 1), 400),
			},
			want: -75,
		},
		{
			name: "no previous revenue",
			orders: []entity.Order{
				order("SO1", "C1", day(2024, time.May, 1), 5000),
			},
			want: 0,
		},
		{
			name: "older orders ignored",
			orders: []entity.Order{
				order("SO1", "C1", day(2024, time.May, 1), 100),
				order("SO2", "C1", day(2023, time.June, 1), 100),
			},
			want: 0,
		},
		{
			name:   "no orders",
			orders: nil,
			want:   0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GrowthRate(tt.orders, now))
		})
	}
}

func TestGrowthRate_BoundaryBelongsToRecent(t *testing.T) {
	now := day(2024, time.June, 15)
	_, three := GrowthWindows(now)

	orders := []entity.Order{
		order("SO1", "C1", three, 200),
		order("SO2", "C1", three.Add(-time.Nanosecond), 100),
	}
	assert.Equal(t, 100.0, GrowthRate(orders, now))
}

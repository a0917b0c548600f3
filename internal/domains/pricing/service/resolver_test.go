package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"nautica/internal/domains/pricing/model"
	"nautica/internal/domains/pricing/service"
	"nautica/shared/money"
)

var (
	saturday = time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	monday   = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
)

func datePtr(t time.Time) *time.Time { return &t }
func intPtr(i int) *int              { return &i }

func TestMatches(t *testing.T) {
	tests := []struct {
		name      string
		rule      model.PricingRule
		date      time.Time
		isHoliday bool
		want      bool
	}{
		{
			name: "weekend rule on saturday",
			rule: model.PricingRule{Kind: model.KindWeekend, Modifier: 1.2, Active: true},
			date: saturday,
			want: true,
		},
		{
			name: "weekend rule on monday",
			rule: model.PricingRule{Kind: model.KindWeekend, Modifier: 1.2, Active: true},
			date: monday,
			want: false,
		},
		{
			name: "weekday rule on monday",
			rule: model.PricingRule{Kind: model.KindWeekday, Modifier: 0.9, Active: true},
			date: monday,
			want: true,
		},
		{
			name:      "holiday rule on holiday",
			rule:      model.PricingRule{Kind: model.KindHoliday, Modifier: 1.5, Active: true},
			date:      monday,
			isHoliday: true,
			want:      true,
		},
		{
			name: "holiday rule on ordinary day",
			rule: model.PricingRule{Kind: model.KindHoliday, Modifier: 1.5, Active: true},
			date: monday,
			want: false,
		},
		{
			name: "inactive rule never matches",
			rule: model.PricingRule{Kind: model.KindWeekend, Modifier: 1.2, Active: false},
			date: saturday,
			want: false,
		},
		{
			name: "non-positive modifier never matches",
			rule: model.PricingRule{Kind: model.KindWeekend, Modifier: 0, Active: true},
			date: saturday,
			want: false,
		},
		{
			name: "season without range never matches",
			rule: model.PricingRule{Kind: model.KindHighSeason, Modifier: 1.4, Active: true},
			date: saturday,
			want: false,
		},
		{
			name: "season inside range",
			rule: model.PricingRule{
				Kind:      model.KindHighSeason,
				Modifier:  1.4,
				Active:    true,
				StartDate: datePtr(saturday.AddDate(0, 0, -5)),
				EndDate:   datePtr(saturday.AddDate(0, 0, 5)),
			},
			date: saturday,
			want: true,
		},
		{
			name: "range is inclusive on the end date",
			rule: model.PricingRule{
				Kind:      model.KindSpecial,
				Modifier:  2.0,
				Active:    true,
				StartDate: datePtr(saturday),
				EndDate:   datePtr(saturday),
			},
			date: saturday,
			want: true,
		},
		{
			name: "out of range",
			rule: model.PricingRule{
				Kind:      model.KindSpecial,
				Modifier:  2.0,
				Active:    true,
				StartDate: datePtr(saturday.AddDate(0, 0, 1)),
				EndDate:   datePtr(saturday.AddDate(0, 0, 5)),
			},
			date: saturday,
			want: false,
		},
		{
			name: "day of week pin agrees",
			rule: model.PricingRule{Kind: model.KindSpecial, Modifier: 1.1, Active: true, DayOfWeek: intPtr(6)},
			date: saturday,
			want: true,
		},
		{
			name: "day of week pin disagrees",
			rule: model.PricingRule{Kind: model.KindSpecial, Modifier: 1.1, Active: true, DayOfWeek: intPtr(1)},
			date: saturday,
			want: false,
		},
		{
			name: "unknown kind never matches",
			rule: model.PricingRule{Kind: "mystery", Modifier: 1.1, Active: true},
			date: saturday,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.Matches(tt.rule, tt.date, tt.isHoliday))
		})
	}
}

func TestPickBestModifier(t *testing.T) {
	rules := []model.PricingRule{
		{Kind: model.KindWeekend, Modifier: 1.2, Active: true},
		{Kind: model.KindSpecial, Modifier: 1.5, Active: true},
		{Kind: model.KindSpecial, Modifier: 3.0, Active: false},
	}

	// Highest matching modifier wins; modifiers never stack.
	assert.Equal(t, 1.5, service.PickBestModifier(rules, saturday, false))

	// Nothing matches: neutral modifier.
	assert.Equal(t, 1.0, service.PickBestModifier(nil, saturday, false))

	// A matching modifier below 1.0 still loses to the default only when
	// it is the sole match.
	discount := []model.PricingRule{{Kind: model.KindWeekday, Modifier: 0.9, Active: true}}
	assert.Equal(t, 1.0, service.PickBestModifier(discount, monday, false))
}

func TestQuote(t *testing.T) {
	base := money.FromCents(100000)
	weekend := []model.PricingRule{{Kind: model.KindWeekend, Modifier: 1.2, Active: true}}

	tests := []struct {
		name             string
		rules            []model.PricingRule
		date             time.Time
		completedRentals int
		wantModifier     float64
		wantBefore       int64
		wantDiscount     int64
		wantTotal        int64
	}{
		{
			name:         "weekend surcharge",
			rules:        weekend,
			date:         saturday,
			wantModifier: 1.2,
			wantBefore:   120000,
			wantTotal:    120000,
		},
		{
			name:             "milestone discount on the tenth rental",
			rules:            weekend,
			date:             saturday,
			completedRentals: 10,
			wantModifier:     1.2,
			wantBefore:       120000,
			wantDiscount:     12000,
			wantTotal:        108000,
		},
		{
			name:             "no discount between milestones",
			rules:            weekend,
			date:             saturday,
			completedRentals: 7,
			wantModifier:     1.2,
			wantBefore:       120000,
			wantTotal:        120000,
		},
		{
			name:             "zero rentals never discounts",
			rules:            nil,
			date:             monday,
			completedRentals: 0,
			wantModifier:     1.0,
			wantBefore:       100000,
			wantTotal:        100000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.Quote(base, tt.date, false, tt.rules, tt.completedRentals)

			assert.Equal(t, base, got.BasePrice)
			assert.Equal(t, tt.wantModifier, got.Modifier)
			assert.Equal(t, tt.wantBefore, got.PriceBeforeDiscount.Cents())
			assert.Equal(t, tt.wantDiscount, got.DiscountAmount.Cents())
			assert.Equal(t, tt.wantTotal, got.Total.Cents())
		})
	}
}

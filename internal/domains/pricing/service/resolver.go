package service

import (
	"time"

	"nautica/internal/domains/pricing/model"
	"nautica/internal/domains/pricing/model/dto"
	"nautica/shared/money"
)

const (
	// MilestoneDiscountPercent is granted on every fifth completed rental.
	MilestoneDiscountPercent = 10.0
	// MilestoneInterval is the completed-rental cadence of the discount.
	MilestoneInterval = 5
)

// Matches reports whether a rule applies to the given calendar day.
// Inactive rules and non-positive modifiers never match. The optional date
// range is inclusive on both ends, and an optional day-of-week pin must
// agree with the day being priced.
func Matches(rule model.PricingRule, date time.Time, isHoliday bool) bool {
	if !rule.Active || rule.Modifier <= 0 {
		return false
	}

	day := calendarDay(date)

	if rule.StartDate != nil && day.Before(calendarDay(*rule.StartDate)) {
		return false
	}

	if rule.EndDate != nil && day.After(calendarDay(*rule.EndDate)) {
		return false
	}

	if rule.DayOfWeek != nil && int(day.Weekday()) != *rule.DayOfWeek {
		return false
	}

	switch rule.Kind {
	case model.KindHoliday:
		return isHoliday
	case model.KindWeekday:
		dow := day.Weekday()

		return dow >= time.Monday && dow <= time.Friday
	case model.KindWeekend:
		dow := day.Weekday()

		return dow == time.Saturday || dow == time.Sunday
	case model.KindHighSeason, model.KindLowSeason:
		// Season rules are meaningless without an explicit range.
		return rule.StartDate != nil && rule.EndDate != nil
	case model.KindSpecial:
		return true
	default:
		return false
	}
}

// PickBestModifier returns the highest modifier among matching rules,
// falling back to 1.0 when nothing matches. Modifiers never compose.
func PickBestModifier(rules []model.PricingRule, date time.Time, isHoliday bool) float64 {
	best := 1.0

	for _, rule := range rules {
		if Matches(rule, date, isHoliday) && rule.Modifier > best {
			best = rule.Modifier
		}
	}

	return best
}

// Quote resolves the price of one boat-day. The milestone discount applies
// only when the renter has completed a positive multiple of five rentals.
func Quote(base money.Money, date time.Time, isHoliday bool, rules []model.PricingRule, completedRentals int) dto.Breakdown {
	modifier := PickBestModifier(rules, date, isHoliday)
	priceBeforeDiscount := base.MulRound(modifier)

	discountPercent := 0.0
	if completedRentals > 0 && completedRentals%MilestoneInterval == 0 {
		discountPercent = MilestoneDiscountPercent
	}

	discount := priceBeforeDiscount.Percent(discountPercent)
	total := priceBeforeDiscount.Sub(discount).ClampZero()

	return dto.Breakdown{
		BasePrice:           base,
		Modifier:            modifier,
		PriceBeforeDiscount: priceBeforeDiscount,
		DiscountPercent:     discountPercent,
		DiscountAmount:      discount,
		Total:               total,
	}
}

func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

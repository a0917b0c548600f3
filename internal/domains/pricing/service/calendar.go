package service

import (
	"time"

	"github.com/rs/zerolog/log"

	"nautica/config"
	"nautica/shared/constant"
)

// Calendar answers holiday lookups from the fixed-date list in
// configuration. Dates are calendar days, timezone-free.
type Calendar struct {
	dates map[string]struct{}
}

func NewCalendar(cfg *config.Config) *Calendar {
	dates := make(map[string]struct{}, len(cfg.Marketplace.Holidays))

	for _, raw := range cfg.Marketplace.Holidays {
		if _, err := time.Parse(constant.CalendarDateFormat, raw); err != nil {
			log.Warn().Str("date", raw).Msg("Skipping malformed holiday date in configuration")

			continue
		}

		dates[raw] = struct{}{}
	}

	return &Calendar{dates: dates}
}

func (c *Calendar) IsHoliday(date time.Time) bool {
	_, ok := c.dates[date.Format(constant.CalendarDateFormat)]

	return ok
}

// Package timezone centralizes clock and calendar handling. Wall-clock
// timestamps (audit metadata, check-in stamps) live in the configured
// application timezone; calendar-day values (booking dates, pricing rule
// ranges, availability windows) are date-only and anchored at UTC midnight.
package timezone

// Package biztime provides business-timezone date arithmetic. All storage and
// transport use UTC; the business timezone only decides where a calendar day
// begins and ends, which drives the per-day delivery ledger and the whole-day
// ceilings used by subscription drift and duration checks.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is the outlet's local timezone.
const DefaultTimezone = "Asia/Kolkata"

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init sets the business timezone. Call once at startup; empty tz falls back
// to DefaultTimezone.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit is Init that panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone, auto-initializing with the default
// when Init was never called.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC returns business-timezone midnight of t's day, in UTC.
func StartOfDayUTC(t time.Time) time.Time {
	bt := t.In(Location())
	return time.Date(bt.Year(), bt.Month(), bt.Day(), 0, 0, 0, 0, Location()).UTC()
}

// EndOfDayUTC returns the last instant of t's business-timezone day, in UTC.
func EndOfDayUTC(t time.Time) time.Time {
	bt := t.In(Location())
	return time.Date(bt.Year(), bt.Month(), bt.Day(), 23, 59, 59, 999999999, Location()).UTC()
}

// DateOf returns t's calendar date in the business timezone, normalized to
// UTC midnight. Used as the delivery ledger's day key.
func DateOf(t time.Time) time.Time {
	bt := t.In(Location())
	return time.Date(bt.Year(), bt.Month(), bt.Day(), 0, 0, 0, 0, time.UTC)
}

// WholeDaysCeil converts a duration to whole days, rounding any partial day
// up. Negative durations count as zero.
func WholeDaysCeil(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// ParseDateInBizTimezone parses a YYYY-MM-DD string as business-timezone
// midnight and returns the UTC equivalent.
func ParseDateInBizTimezone(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", dateStr, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t.UTC(), nil
}

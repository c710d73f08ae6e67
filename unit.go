package reltime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Unit is a named duration bucket used to select the granularity of a
// relative phrase. Units use fixed spans (a month is 30 days, a year 365).
type Unit string

const (
	UnitYear   Unit = "year"
	UnitMonth  Unit = "month"
	UnitWeek   Unit = "week"
	UnitDay    Unit = "day"
	UnitHour   Unit = "hour"
	UnitMinute Unit = "minute"
	UnitSecond Unit = "second"

	// UnitNow is the pseudo-unit reported for the "just now" phrase. It is
	// not a valid bound for Options.MaxUnit or Options.MinUnit.
	UnitNow Unit = "now"
)

// unitOrder lists the real units from largest to smallest. Selection walks
// this slice, so the order is significant.
var unitOrder = []Unit{
	UnitYear, UnitMonth, UnitWeek, UnitDay, UnitHour, UnitMinute, UnitSecond,
}

var unitSeconds = map[Unit]int64{
	UnitYear:   31536000,
	UnitMonth:  2592000,
	UnitWeek:   604800,
	UnitDay:    86400,
	UnitHour:   3600,
	UnitMinute: 60,
	UnitSecond: 1,
}

// defaultShortLabels maps each unit to its compact-mode label.
var defaultShortLabels = map[Unit]string{
	UnitYear:   "y",
	UnitMonth:  "mo",
	UnitWeek:   "w",
	UnitDay:    "d",
	UnitHour:   "h",
	UnitMinute: "m",
	UnitSecond: "s",
}

// Units returns the selectable units ordered from largest to smallest.
func Units() []Unit {
	out := make([]Unit, len(unitOrder))
	copy(out, unitOrder)
	return out
}

// Seconds returns the fixed span of the unit in seconds, or 0 for UnitNow
// and unknown units.
func (u Unit) Seconds() int64 {
	return unitSeconds[u]
}

// Duration returns the fixed span of the unit as a time.Duration.
func (u Unit) Duration() time.Duration {
	return time.Duration(u.Seconds()) * time.Second
}

// rank returns the position of u within unitOrder (0 = year), or -1 when
// u is not a selectable unit.
func (u Unit) rank() int {
	for i, o := range unitOrder {
		if o == u {
			return i
		}
	}
	return -1
}

var durationRe = regexp.MustCompile(`^(\d+)\s*([A-Za-z]+)$`)

// durationTokens maps the accepted unit spellings of ParseDuration. "m"
// means minute; months must be written "mo" or longer.
var durationTokens = map[string]Unit{
	"y": UnitYear, "yr": UnitYear, "yrs": UnitYear, "year": UnitYear, "years": UnitYear,
	"mo": UnitMonth, "mos": UnitMonth, "month": UnitMonth, "months": UnitMonth,
	"w": UnitWeek, "wk": UnitWeek, "wks": UnitWeek, "week": UnitWeek, "weeks": UnitWeek,
	"d": UnitDay, "day": UnitDay, "days": UnitDay,
	"h": UnitHour, "hr": UnitHour, "hrs": UnitHour, "hour": UnitHour, "hours": UnitHour,
	"m": UnitMinute, "min": UnitMinute, "mins": UnitMinute, "minute": UnitMinute, "minutes": UnitMinute,
	"s": UnitSecond, "sec": UnitSecond, "secs": UnitSecond, "second": UnitSecond, "seconds": UnitSecond,
}

// ParseDuration parses strings like "5 minutes", "3d" or "2w" into a
// duration. Matching is case-insensitive. Malformed input or an unknown
// unit token returns ErrInvalidDuration.
func ParseDuration(s string) (time.Duration, error) {
	m := durationRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	unit, ok := durationTokens[strings.ToLower(m[2])]
	if !ok {
		return 0, fmt.Errorf("%w: unknown unit %q", ErrInvalidDuration, m[2])
	}
	return time.Duration(n) * unit.Duration(), nil
}

package reltime

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Style selects the wording variant of the relative phrase.
type Style string

const (
	StyleAuto   Style = ""       // same as StyleLong
	StyleLong   Style = "long"   // "5 minutes ago"
	StyleShort  Style = "short"  // "5 min ago"
	StyleNarrow Style = "narrow" // "5m ago"
)

// Numeric controls whether idiomatic substitutes like "yesterday" may
// replace numeric phrasing.
type Numeric string

const (
	NumericAuto   Numeric = ""       // idioms allowed
	NumericAlways Numeric = "always" // always numeric ("1 day ago")
)

// Rounding selects how a fractional unit count is reduced to an integer.
// All strategies apply to the magnitude of the difference; the direction
// (past or future) is reattached afterwards.
type Rounding string

const (
	RoundingDefault Rounding = ""      // same as RoundingFloor
	RoundingFloor   Rounding = "floor" // 1.9 hours -> 1 hour
	RoundingNearest Rounding = "round" // nearest, ties away from zero
	RoundingCeil    Rounding = "ceil"  // 1.1 hours -> 2 hours
	// RoundingAuto adapts to magnitude: nearest below 10, nearest multiple
	// of 5 below 100, floor above. Coarser values jitter less.
	RoundingAuto Rounding = "auto"
)

// AbsoluteNever disables the absolute-date fallback entirely.
// Any negative AbsoluteAfter value has the same effect.
const AbsoluteNever = -1 * time.Second

// DefaultJustNowThreshold is the window within which a difference renders
// as "just now".
const DefaultJustNowThreshold = 5 * time.Second

// DefaultAbsoluteAfter is the difference beyond which a calendar date is
// shown instead of a relative phrase.
const DefaultAbsoluteAfter = 365 * 24 * time.Hour

// DefaultCacheSize is the number of distinct locale formatters retained.
const DefaultCacheSize = 100

const defaultAbsoluteLayout = "Jan 2, 2006"

// AbsoluteOptions configures the calendar-date fallback.
type AbsoluteOptions struct {
	// Layout is a Go time layout. Month names are localized. Defaults to
	// "Jan 2, 2006".
	Layout string
	// Location, when set, converts the instant before formatting.
	Location *time.Location
	// Format, when set, replaces the built-in date rendering entirely.
	Format func(time.Time) string
}

// Options configures a Formatter. The zero value selects the documented
// default for every field; absent fields never cause failure.
type Options struct {
	// Locales is a priority-ordered list of BCP 47 tags. Malformed tags
	// are dropped; when none survive, English is used.
	Locales []string

	// Short switches to compact output ("2h ago", "in 3d").
	Short bool

	Style   Style
	Numeric Numeric

	// JustNowThreshold is the inclusive window for the "just now" phrase.
	// Zero selects the 5s default. A negative value shrinks the window to
	// an exact zero difference, rendered as the literal word "now".
	JustNowThreshold time.Duration

	Rounding Rounding

	// MaxUnit and MinUnit bound unit selection. Empty means year and
	// second respectively. MaxUnit must not span fewer seconds than
	// MinUnit.
	MaxUnit Unit
	MinUnit Unit

	// ShortLabels overrides the compact-mode label per unit.
	ShortLabels map[Unit]string

	// AgoSuffix and InPrefix override the compact-mode past and future
	// wording. When set, the value+label body is joined to the override
	// with a space instead of the localized wrapper, e.g. AgoSuffix
	// "back" yields "2h back" and InPrefix "within" yields "within 3d".
	AgoSuffix string
	InPrefix  string

	// Now is the reference instant. Zero means time.Now() at each call;
	// set it for deterministic output in tests.
	Now time.Time

	// AbsoluteAfter is the difference beyond which a calendar date is
	// shown instead of a relative phrase. Zero selects the one-year
	// default; AbsoluteNever disables the fallback.
	AbsoluteAfter time.Duration

	Absolute AbsoluteOptions

	// Template post-processes the rendered output. Recognized
	// placeholders: {value} {unit} {direction} {abs} {phrase} {date}.
	// Unrecognized placeholders are left untouched.
	Template string

	// CacheSize bounds the locale formatter cache. Zero selects the
	// default of 100 distinct keys.
	CacheSize int
}

// Configuration errors reported by New. These indicate programmer error
// and are never produced by runtime data.
var (
	ErrUnitOrder   = errors.New("reltime: max unit spans less than min unit")
	ErrUnknownUnit = errors.New("reltime: unknown unit")
)

// ErrInvalidDuration is returned by ParseDuration for malformed input.
var ErrInvalidDuration = errors.New("reltime: invalid duration")

// resolveBound validates a unit bound, substituting def for the empty string.
func resolveBound(u, def Unit) (Unit, error) {
	if u == "" {
		return def, nil
	}
	if u.rank() < 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, u)
	}
	return u, nil
}

// resolveLocales keeps the well-formed tags of the requested list,
// falling back to English when none survive.
func resolveLocales(requested []string) []string {
	var langs []string
	for _, l := range requested {
		if _, err := language.Parse(l); err == nil {
			langs = append(langs, l)
		}
	}
	if len(langs) == 0 {
		langs = []string{"en"}
	}
	return langs
}

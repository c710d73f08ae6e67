// Package reltime converts timestamps into human-readable relative-time
// phrases ("5 minutes ago", "yesterday", "in 3 days").
//
// A Formatter is a pure transformation from (instant, reference now,
// options) to a display string. Long-form output is localized through a
// go-i18n message bundle; compact output uses single-letter unit labels.
// Differences beyond a configurable threshold fall back to a calendar
// date. Locale formatter construction is memoized in a bounded LRU cache,
// the only shared mutable state.
//
// The package-level Format and FormatTime helpers use a process-lifetime
// Formatter with default options.
package reltime

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/wethinkt/go-reltime/internal/locale"
	"github.com/wethinkt/go-reltime/internal/lru"
)

// InvalidDate is the sentinel returned for input that cannot be parsed
// into a valid instant.
const InvalidDate = "Invalid date"

// CacheStats is a snapshot of the locale formatter cache counters.
type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Size      int
}

// Formatter renders relative-time phrases for one resolved configuration.
// Safe for concurrent use.
type Formatter struct {
	opts     Options
	langs    []string
	style    Style
	numeric  Numeric
	rounding Rounding
	compact  bool
	maxRank  int
	minRank  int
	justNow  float64 // seconds, inclusive
	absAfter float64 // seconds; negative = disabled
	labels   map[Unit]string

	cache *lru.Cache[string, *locale.Phraser]
	group singleflight.Group
}

// New resolves opts onto the documented defaults and returns a Formatter.
// It fails only on contradictory configuration: an unknown unit bound, or
// a MaxUnit spanning fewer seconds than MinUnit.
func New(opts Options) (*Formatter, error) {
	maxU, err := resolveBound(opts.MaxUnit, UnitYear)
	if err != nil {
		return nil, err
	}
	minU, err := resolveBound(opts.MinUnit, UnitSecond)
	if err != nil {
		return nil, err
	}
	if maxU.Seconds() < minU.Seconds() {
		return nil, fmt.Errorf("%w: max %q, min %q", ErrUnitOrder, maxU, minU)
	}

	f := &Formatter{
		opts:     opts,
		langs:    resolveLocales(opts.Locales),
		style:    opts.Style,
		numeric:  opts.Numeric,
		rounding: opts.Rounding,
		maxRank:  maxU.rank(),
		minRank:  minU.rank(),
		justNow:  DefaultJustNowThreshold.Seconds(),
		absAfter: DefaultAbsoluteAfter.Seconds(),
	}
	if f.style == StyleAuto {
		f.style = StyleLong
	}
	f.compact = opts.Short || f.style == StyleNarrow
	if opts.JustNowThreshold != 0 {
		f.justNow = math.Max(opts.JustNowThreshold.Seconds(), 0)
	}
	if opts.AbsoluteAfter != 0 {
		f.absAfter = opts.AbsoluteAfter.Seconds() // negative disables
	}

	f.labels = make(map[Unit]string, len(defaultShortLabels))
	for u, l := range defaultShortLabels {
		f.labels[u] = l
	}
	for u, l := range opts.ShortLabels {
		f.labels[u] = l
	}

	size := opts.CacheSize
	if size == 0 {
		size = DefaultCacheSize
	}
	f.cache = lru.New[string, *locale.Phraser](size)
	return f, nil
}

// Format renders v relative to the reference instant. v may be a
// time.Time, a *time.Time, an RFC 3339 / ISO 8601 string, or a number of
// Unix milliseconds. nil and the zero time yield ""; an unparseable
// value yields the InvalidDate sentinel. Format never fails.
func (f *Formatter) Format(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		return f.FormatTime(t)
	case *time.Time:
		if t == nil {
			return ""
		}
		return f.FormatTime(*t)
	case string:
		if t == "" {
			return ""
		}
		parsed, ok := parseInstant(t)
		if !ok {
			return InvalidDate
		}
		return f.FormatTime(parsed)
	case int64:
		return f.FormatTime(time.UnixMilli(t))
	case int:
		return f.FormatTime(time.UnixMilli(int64(t)))
	case float64:
		return f.FormatTime(time.UnixMilli(int64(t)))
	default:
		return InvalidDate
	}
}

// instantLayouts are tried in order for string input.
var instantLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseInstant(s string) (time.Time, bool) {
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTime renders t relative to the reference instant.
func (f *Formatter) FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	now := f.opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	return f.render(t, now.Sub(t).Seconds())
}

// render implements the selection pipeline: absolute fallback, just-now
// window, then unit selection from the largest permitted unit down.
// diff is in seconds, positive meaning t is in the past.
func (f *Formatter) render(t time.Time, diff float64) string {
	past := diff > 0
	absDiff := math.Abs(diff)

	if f.absAfter >= 0 && absDiff >= f.absAfter {
		date := f.absoluteDate(t)
		return f.applyTemplate(t, date, 0, UnitNow, past)
	}

	if absDiff <= f.justNow {
		ph := f.phraser()
		phrase := ph.JustNow()
		if f.justNow == 0 {
			phrase = ph.NowWord()
		}
		return f.applyTemplate(t, phrase, 0, UnitNow, past)
	}

	unit, magnitude, ok := f.selectUnit(absDiff)
	if !ok {
		return f.applyTemplate(t, f.fallbackPhrase(), 0, UnitNow, past)
	}

	phrase := f.phrase(unit, magnitude, absDiff, past)
	value := magnitude
	if !past {
		value = -value
	}
	return f.applyTemplate(t, phrase, value, unit, past)
}

// selectUnit walks the permitted units from largest to smallest and
// returns the first whose quotient reaches a full unit. The rounding
// strategy applies to the magnitude of the selected unit only, never to
// qualification: ceil or nearest rounding during selection would promote
// any fraction of the largest unit and collapse the cascade.
func (f *Formatter) selectUnit(absDiff float64) (Unit, int64, bool) {
	for i := f.maxRank; i <= f.minRank; i++ {
		u := unitOrder[i]
		q := absDiff / float64(u.Seconds())
		if q < 1 {
			continue
		}
		return u, f.roundMagnitude(q), true
	}
	return UnitNow, 0, false
}

// roundMagnitude reduces a non-negative fractional unit count to an
// integer per the configured strategy.
func (f *Formatter) roundMagnitude(x float64) int64 {
	switch f.rounding {
	case RoundingNearest:
		return int64(math.Round(x))
	case RoundingCeil:
		return int64(math.Ceil(x))
	case RoundingAuto:
		switch {
		case x < 10:
			return int64(math.Round(x))
		case x < 100:
			return int64(math.Round(x/5)) * 5
		default:
			return int64(math.Floor(x))
		}
	default:
		return int64(math.Floor(x))
	}
}

// phrase renders the selected (unit, magnitude, direction) tuple. Day
// idioms replace the numeric wording when exactly one calendar-unit day
// separates the instants and numeric mode allows it.
func (f *Formatter) phrase(unit Unit, magnitude int64, absDiff float64, past bool) string {
	ph := f.phraser()

	if unit == UnitDay && !f.compact && f.numeric != NumericAlways {
		if days := int64(absDiff / float64(UnitDay.Seconds())); days == 1 {
			if past {
				return ph.Yesterday()
			}
			return ph.Tomorrow()
		}
	}

	if f.compact {
		body := fmt.Sprintf("%d%s", magnitude, f.labels[unit])
		if past && f.opts.AgoSuffix != "" {
			return body + " " + f.opts.AgoSuffix
		}
		if !past && f.opts.InPrefix != "" {
			return f.opts.InPrefix + " " + body
		}
		return ph.WrapCompact(body, past)
	}

	// The phrase primitive uses the CLDR sign convention: negative is
	// past, so the internally past-positive magnitude is negated.
	signed := magnitude
	if past {
		signed = -signed
	}
	return ph.Relative(signed, string(unit))
}

// fallbackPhrase handles a difference that rounds to zero for every
// permitted unit. With the day as the smallest permitted unit this is the
// "today" idiom; otherwise the just-now phrase.
func (f *Formatter) fallbackPhrase() string {
	ph := f.phraser()
	if unitOrder[f.minRank] == UnitDay && !f.compact && f.numeric != NumericAlways {
		return ph.Today()
	}
	return ph.JustNow()
}

// absoluteDate renders t as a locale-formatted calendar date.
func (f *Formatter) absoluteDate(t time.Time) string {
	if f.opts.Absolute.Format != nil {
		return f.opts.Absolute.Format(t)
	}
	if loc := f.opts.Absolute.Location; loc != nil {
		t = t.In(loc)
	}
	layout := f.opts.Absolute.Layout
	if layout == "" {
		layout = defaultAbsoluteLayout
	}
	return f.phraser().Date(t, layout)
}

// phraser returns the memoized locale formatter for this configuration,
// constructing it at most once per distinct key even under concurrent
// misses.
func (f *Formatter) phraser() *locale.Phraser {
	style := locale.StyleLong
	if f.style == StyleShort {
		style = locale.StyleShort
	}
	key := strings.Join(f.langs, ",") + "|" + style + "|" + string(f.numeric)

	if p, ok := f.cache.Get(key); ok {
		return p
	}
	v, _, _ := f.group.Do(key, func() (any, error) {
		p := locale.NewPhraser(f.langs, style)
		f.cache.Add(key, p)
		return p, nil
	})
	return v.(*locale.Phraser)
}

// ClearCache empties the locale formatter cache and resets its statistics.
func (f *Formatter) ClearCache() {
	f.cache.Clear()
}

// CacheStats reports hit/miss/eviction counters for the locale formatter
// cache.
func (f *Formatter) CacheStats() CacheStats {
	s := f.cache.Stats()
	return CacheStats{Hits: s.Hits, Misses: s.Misses, Evictions: s.Evictions, Size: s.Size}
}

var defaultFormatter = sync.OnceValue(func() *Formatter {
	f, _ := New(Options{})
	return f
})

// Format renders v with the default options. See Formatter.Format.
func Format(v any) string {
	return defaultFormatter().Format(v)
}

// FormatTime renders t with the default options. See Formatter.FormatTime.
func FormatTime(t time.Time) string {
	return defaultFormatter().FormatTime(t)
}

// ClearCache resets the default formatter's locale cache.
func ClearCache() {
	defaultFormatter().ClearCache()
}

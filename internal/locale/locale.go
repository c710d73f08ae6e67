// Package locale adapts a go-i18n message bundle as the locale-aware
// rendering primitive for relative-time phrases and calendar dates.
//
// The bundle is built once from the embedded locales/*.toml files with
// English as the fallback language. A Phraser wraps one localizer for a
// resolved locale priority list plus a phrase style; constructing a Phraser
// is the expensive step callers are expected to memoize.
package locale

import (
	"embed"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	msgBundle  *i18n.Bundle
)

func bundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("toml", toml.Unmarshal)
		entries, _ := localeFS.ReadDir("locales")
		for _, e := range entries {
			_, _ = b.LoadMessageFileFS(localeFS, "locales/"+e.Name())
		}
		msgBundle = b
	})
	return msgBundle
}

// Style selects between the full-word and abbreviated phrase variants.
const (
	StyleLong  = "long"
	StyleShort = "short"
)

// unitNouns holds the English singular/plural nouns used as bundle defaults.
var unitNouns = map[string][2]string{
	"year":   {"year", "years"},
	"month":  {"month", "months"},
	"week":   {"week", "weeks"},
	"day":    {"day", "days"},
	"hour":   {"hour", "hours"},
	"minute": {"minute", "minutes"},
	"second": {"second", "seconds"},
}

// unitAbbrevs holds the English abbreviations for the short style.
var unitAbbrevs = map[string]string{
	"year":   "yr",
	"month":  "mo",
	"week":   "wk",
	"day":    "day",
	"hour":   "hr",
	"minute": "min",
	"second": "sec",
}

// Phraser renders localized relative phrases and calendar dates for one
// resolved locale priority list. Safe for concurrent use.
type Phraser struct {
	loc   *i18n.Localizer
	style string
}

// NewPhraser builds a Phraser for the given locale priority list. English is
// always appended as the final fallback. Styles other than StyleShort render
// the long form.
func NewPhraser(langs []string, style string) *Phraser {
	if style != StyleShort {
		style = StyleLong
	}
	return &Phraser{
		loc:   i18n.NewLocalizer(bundle(), append(append([]string{}, langs...), "en")...),
		style: style,
	}
}

// Relative renders a localized relative phrase for a signed unit count.
// Negative values are in the past, positive in the future (the CLDR sign
// convention). unit is one of the keys of unitNouns.
func (p *Phraser) Relative(value int64, unit string) string {
	dir := "future"
	n := value
	if value < 0 {
		dir = "past"
		n = -value
	}

	var id, one, other string
	if p.style == StyleShort {
		id = fmt.Sprintf("reltime.short.%s.%s", dir, unit)
		abbr := unitAbbrevs[unit]
		if dir == "past" {
			one = "{{.Count}} " + abbr + " ago"
		} else {
			one = "in {{.Count}} " + abbr
		}
		other = one
	} else {
		id = fmt.Sprintf("reltime.%s.%s", dir, unit)
		nouns := unitNouns[unit]
		if dir == "past" {
			one = "{{.Count}} " + nouns[0] + " ago"
			other = "{{.Count}} " + nouns[1] + " ago"
		} else {
			one = "in {{.Count}} " + nouns[0]
			other = "in {{.Count}} " + nouns[1]
		}
	}

	s, err := p.loc.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:    id,
			One:   one,
			Other: other,
		},
		PluralCount:  int(n),
		TemplateData: map[string]any{"Count": n},
	})
	if err != nil {
		if n == 1 {
			return strings.ReplaceAll(one, "{{.Count}}", "1")
		}
		return strings.ReplaceAll(other, "{{.Count}}", fmt.Sprint(n))
	}
	return s
}

// t localizes a simple message with an optional template payload.
func (p *Phraser) t(id, def string, data map[string]any) string {
	s, err := p.loc.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:    id,
			Other: def,
		},
		TemplateData: data,
	})
	if err != nil {
		return def
	}
	return s
}

// JustNow returns the zero-distance phrase ("just now").
func (p *Phraser) JustNow() string {
	return p.t("reltime.justNow", "just now", nil)
}

// NowWord returns the literal present-instant word ("now").
func (p *Phraser) NowWord() string {
	return p.t("reltime.now", "now", nil)
}

// Yesterday returns the one-day-past idiom.
func (p *Phraser) Yesterday() string {
	return p.t("reltime.yesterday", "yesterday", nil)
}

// Today returns the same-day idiom.
func (p *Phraser) Today() string {
	return p.t("reltime.today", "today", nil)
}

// Tomorrow returns the one-day-future idiom.
func (p *Phraser) Tomorrow() string {
	return p.t("reltime.tomorrow", "tomorrow", nil)
}

// WrapCompact wraps an already-joined value+label body in the localized
// past/future frame, e.g. "2h" -> "2h ago" or "in 2h".
func (p *Phraser) WrapCompact(body string, past bool) string {
	if past {
		return p.t("reltime.compact.past", "{{.Phrase}} ago", map[string]any{"Phrase": body})
	}
	return p.t("reltime.compact.future", "in {{.Phrase}}", map[string]any{"Phrase": body})
}

// Date formats t with the given Go time layout, substituting a localized
// month name when the layout contains a January or Jan token.
func (p *Phraser) Date(t time.Time, layout string) string {
	s := t.Format(layout)
	switch {
	case strings.Contains(layout, "January"):
		s = strings.Replace(s, t.Format("January"), p.monthName(t.Month(), false), 1)
	case strings.Contains(layout, "Jan"):
		s = strings.Replace(s, t.Format("Jan"), p.monthName(t.Month(), true), 1)
	}
	return s
}

func (p *Phraser) monthName(m time.Month, abbreviated bool) string {
	full := m.String()
	key := strings.ToLower(full[:3])
	if abbreviated {
		return p.t("reltime.month.short."+key, full[:3], nil)
	}
	return p.t("reltime.month."+key, full, nil)
}

package reltime

import (
	"strconv"
	"strings"
	"time"
)

// applyTemplate substitutes the recognized placeholders of Options.Template
// into the final output. With no template configured the phrase passes
// through unchanged.
//
// Placeholders: {value} signed unit count (positive = past), {abs} its
// magnitude, {unit} the unit name, {direction} "past" or "future",
// {phrase} the rendered phrase, {date} the absolute calendar date.
// Unrecognized placeholders are left untouched.
func (f *Formatter) applyTemplate(t time.Time, phrase string, value int64, unit Unit, past bool) string {
	if f.opts.Template == "" {
		return phrase
	}

	dir := "future"
	if past {
		dir = "past"
	}
	abs := value
	if abs < 0 {
		abs = -abs
	}

	// The calendar date is only rendered when the template asks for it.
	date := phrase
	if strings.Contains(f.opts.Template, "{date}") {
		date = f.absoluteDate(t)
	}

	return strings.NewReplacer(
		"{value}", strconv.FormatInt(value, 10),
		"{abs}", strconv.FormatInt(abs, 10),
		"{unit}", string(unit),
		"{direction}", dir,
		"{phrase}", phrase,
		"{date}", date,
	).Replace(f.opts.Template)
}

package locale

import (
	"testing"
	"time"
)

func TestEnglishRelative(t *testing.T) {
	p := NewPhraser([]string{"en"}, StyleLong)

	tests := []struct {
		value int64
		unit  string
		want  string
	}{
		{-3, "hour", "3 hours ago"},
		{-1, "minute", "1 minute ago"},
		{-10, "second", "10 seconds ago"},
		{1, "hour", "in 1 hour"},
		{7, "day", "in 7 days"},
	}
	for _, tt := range tests {
		got := p.Relative(tt.value, tt.unit)
		if got != tt.want {
			t.Errorf("Relative(%d, %s) = %q, want %q", tt.value, tt.unit, got, tt.want)
		}
	}
}

func TestFrenchRelative(t *testing.T) {
	p := NewPhraser([]string{"fr"}, StyleLong)

	tests := []struct {
		value int64
		unit  string
		want  string
	}{
		{-7, "month", "il y a 7 mois"},
		{-1, "minute", "il y a 1 minute"},
		{-5, "minute", "il y a 5 minutes"},
		{3, "day", "dans 3 jours"},
	}
	for _, tt := range tests {
		got := p.Relative(tt.value, tt.unit)
		if got != tt.want {
			t.Errorf("Relative(%d, %s) = %q, want %q", tt.value, tt.unit, got, tt.want)
		}
	}
}

func TestChineseRelative(t *testing.T) {
	p := NewPhraser([]string{"zh-Hans"}, StyleLong)

	if got := p.Relative(-5, "minute"); got != "5 分钟前" {
		t.Errorf("Relative(-5, minute) = %q, want %q", got, "5 分钟前")
	}
	if got := p.Relative(2, "hour"); got != "2 小时后" {
		t.Errorf("Relative(2, hour) = %q, want %q", got, "2 小时后")
	}
}

func TestShortStyle(t *testing.T) {
	p := NewPhraser([]string{"en"}, StyleShort)

	if got := p.Relative(-5, "minute"); got != "5 min ago" {
		t.Errorf("Relative(-5, minute) = %q, want %q", got, "5 min ago")
	}
	if got := p.Relative(2, "year"); got != "in 2 yr" {
		t.Errorf("Relative(2, year) = %q, want %q", got, "in 2 yr")
	}
}

func TestUnknownLocaleFallsBackToEnglish(t *testing.T) {
	p := NewPhraser([]string{"xx-XX"}, StyleLong)

	if got := p.Relative(-2, "day"); got != "2 days ago" {
		t.Errorf("Relative(-2, day) = %q, want %q", got, "2 days ago")
	}
	if got := p.JustNow(); got != "just now" {
		t.Errorf("JustNow() = %q, want %q", got, "just now")
	}
}

func TestIdioms(t *testing.T) {
	tests := []struct {
		lang string
		get  func(*Phraser) string
		want string
	}{
		{"en", (*Phraser).JustNow, "just now"},
		{"en", (*Phraser).NowWord, "now"},
		{"en", (*Phraser).Yesterday, "yesterday"},
		{"en", (*Phraser).Tomorrow, "tomorrow"},
		{"fr", (*Phraser).JustNow, "à l'instant"},
		{"fr", (*Phraser).Yesterday, "hier"},
		{"es", (*Phraser).Tomorrow, "mañana"},
		{"de", (*Phraser).Today, "heute"},
		{"zh-Hans", (*Phraser).Yesterday, "昨天"},
	}
	for _, tt := range tests {
		p := NewPhraser([]string{tt.lang}, StyleLong)
		if got := tt.get(p); got != tt.want {
			t.Errorf("%s idiom = %q, want %q", tt.lang, got, tt.want)
		}
	}
}

func TestWrapCompact(t *testing.T) {
	en := NewPhraser([]string{"en"}, StyleLong)
	if got := en.WrapCompact("2h", true); got != "2h ago" {
		t.Errorf("WrapCompact(2h, past) = %q, want %q", got, "2h ago")
	}
	if got := en.WrapCompact("3d", false); got != "in 3d" {
		t.Errorf("WrapCompact(3d, future) = %q, want %q", got, "in 3d")
	}

	zh := NewPhraser([]string{"zh-Hans"}, StyleLong)
	if got := zh.WrapCompact("2h", true); got != "2h前" {
		t.Errorf("zh WrapCompact(2h, past) = %q, want %q", got, "2h前")
	}
}

func TestDate(t *testing.T) {
	ts := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		lang   string
		layout string
		want   string
	}{
		{"en", "Jan 2, 2006", "Jan 15, 2025"},
		{"en", "January 2, 2006", "January 15, 2025"},
		{"fr", "Jan 2, 2006", "janv. 15, 2025"},
		{"de", "2. January 2006", "15. Januar 2025"},
		{"zh-Hans", "Jan 2, 2006", "1月 15, 2025"},
	}
	for _, tt := range tests {
		p := NewPhraser([]string{tt.lang}, StyleLong)
		if got := p.Date(ts, tt.layout); got != tt.want {
			t.Errorf("%s Date(%q) = %q, want %q", tt.lang, tt.layout, got, tt.want)
		}
	}
}

package utils

import (
	"errors"
	"html/template"
	"strconv"
	"strings"
	"time"

	"late-rooms/internal/countdown"
	"late-rooms/internal/listings"
	"late-rooms/internal/marketerrors"
)

// TemplateFuncs returns the functions available to page templates.
// Time-dependent helpers take "now" explicitly so a page renders against one instant.
func TemplateFuncs(loc *time.Location) template.FuncMap {
	return template.FuncMap{
		"pounds":       marketerrors.FormatPounds,
		"stars":        stars,
		"discount":     countdown.Discount,
		"remaining":    remaining,
		"urgencyClass": urgencyClass,
		"badgeClass":   badgeClass,
		"first3":       first3,
		"add":          add,
		"lower":        strings.ToLower,
		"plural":       plural,
		"thousands":    thousands,
		"formatTime":   formatTime,
		"dict":         dict,
		"dayLabel": func(available, now time.Time) string {
			return listings.DayLabel(available, now, loc)
		},
		"localTime": func(t time.Time, layout string) string {
			if t.IsZero() {
				return ""
			}
			return t.In(loc).Format(layout)
		},
	}
}

// stars renders a 0-5 rating as filled and empty stars
func stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

// remaining computes the countdown; style is "card", "detail" or "admin"
func remaining(end, now time.Time, style string) countdown.Tick {
	return countdown.Remaining(end, now, ParseStyle(style))
}

// ParseStyle maps a template/query style name to a countdown style
func ParseStyle(style string) countdown.Style {
	switch style {
	case "detail":
		return countdown.StyleDetail
	case "admin":
		return countdown.StyleAdmin
	default:
		return countdown.StyleCard
	}
}

func urgencyClass(u countdown.Urgency) string {
	switch u {
	case countdown.UrgencyUrgent:
		return "text-red pulse"
	case countdown.UrgencySoon:
		return "text-amber"
	case countdown.UrgencyEnded:
		return "text-muted"
	default:
		return "text-green"
	}
}

func badgeClass(b listings.Badge) string {
	switch b {
	case listings.BadgeLive:
		return "badge badge-live"
	case listings.BadgeSold:
		return "badge badge-sold"
	case listings.BadgeCancelled:
		return "badge badge-cancelled"
	default:
		return "badge badge-ended"
	}
}

// first3 returns up to three amenities for a card
func first3(items []string) []string {
	if len(items) > 3 {
		return items[:3]
	}
	return items
}

func add(a, b float64) float64 {
	return a + b
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// thousands formats 12345 as "12,345"
func thousands(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// dict builds a map from key/value pairs so a partial can take more than one value
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, errors.New("dict: keys must be strings")
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

// formatTime formats a time according to the given layout
func formatTime(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}

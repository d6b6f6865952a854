// Package countdown derives the time-remaining label and urgency tier shown
// next to every auction, and keeps them fresh once a second while a listing
// is on screen.
package countdown

import (
	"fmt"
	"math"
	"time"
)

// Urgency is a coarse visual-emphasis tier
type Urgency string

const (
	UrgencyUrgent Urgency = "urgent"
	UrgencySoon   Urgency = "soon"
	UrgencyNormal Urgency = "normal"
	UrgencyEnded  Urgency = "ended"
)

// Style selects how the remaining time is rendered
type Style int

const (
	// StyleCard is the listing card: "2h 5m", "5m 3s", "42s"
	StyleCard Style = iota
	// StyleDetail is the room page: "2h 5m 3s", "5m 3s", "42s"
	StyleDetail
	// StyleAdmin is the partner rooms table: "2h 5m left", "5m left"
	StyleAdmin
)

const (
	urgentBelow = 30 * time.Minute
	soonBelow   = 60 * time.Minute
)

// Tick is one evaluation of the countdown
type Tick struct {
	Label   string  `json:"label"`
	Urgency Urgency `json:"urgency"`
	Ended   bool    `json:"ended"`
	Seconds int64   `json:"seconds"`
}

// Remaining computes the countdown for an auction ending at end, as seen at now
func Remaining(end, now time.Time, style Style) Tick {
	if !now.Before(end) {
		return Tick{Label: endedLabel(style), Urgency: UrgencyEnded, Ended: true}
	}

	diff := end.Sub(now)
	secs := int64(diff / time.Second)

	return Tick{
		Label:   format(secs, style),
		Urgency: urgencyFor(diff),
		Seconds: secs,
	}
}

// UrgencyAt returns only the urgency tier for an auction ending at end
func UrgencyAt(end, now time.Time) Urgency {
	if !now.Before(end) {
		return UrgencyEnded
	}
	return urgencyFor(end.Sub(now))
}

func urgencyFor(diff time.Duration) Urgency {
	switch {
	case diff < urgentBelow:
		return UrgencyUrgent
	case diff < soonBelow:
		return UrgencySoon
	default:
		return UrgencyNormal
	}
}

func endedLabel(style Style) string {
	if style == StyleDetail {
		return "Auction Ended"
	}
	return "Ended"
}

func format(secs int64, style Style) string {
	hours := secs / 3600
	minutes := (secs % 3600) / 60
	seconds := secs % 60

	switch style {
	case StyleAdmin:
		if hours > 0 {
			return fmt.Sprintf("%dh %dm left", hours, minutes)
		}
		return fmt.Sprintf("%dm left", minutes)
	case StyleDetail:
		if hours > 0 {
			return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
		}
	default:
		if hours > 0 {
			return fmt.Sprintf("%dh %dm", hours, minutes)
		}
	}

	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}

// Discount is the whole-percent saving of current against original, rounded half up.
func Discount(original, current float64) int {
	if original <= 0 {
		return 0
	}
	return int(math.Floor((original-current)/original*100 + 0.5))
}

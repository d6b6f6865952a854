package listings

import (
	"time"

	"late-rooms/internal/models"
)

// Badge is the status shown next to a listing in the partner portal
type Badge string

const (
	BadgeLive      Badge = "Live"
	BadgeEnded     Badge = "Ended"
	BadgeSold      Badge = "Sold"
	BadgeCancelled Badge = "Cancelled"
)

// RoomBadge derives an auction's badge. Explicit states win over the clock:
// cancelled > sold > ended (end passed) > live. Never cache the result.
func RoomBadge(status models.ListingStatus, endsAt, now time.Time) Badge {
	switch {
	case status == models.StatusCancelled:
		return BadgeCancelled
	case status == models.StatusSold:
		return BadgeSold
	case endsAt.Before(now):
		return BadgeEnded
	default:
		return BadgeLive
	}
}

// SecretBadge derives a secret listing's badge; these have no time-based end
func SecretBadge(status models.ListingStatus) Badge {
	switch status {
	case models.StatusCancelled:
		return BadgeCancelled
	case models.StatusSold:
		return BadgeSold
	default:
		return BadgeLive
	}
}

// CanCancelRoom reports whether the partner may still cancel an auction
func CanCancelRoom(status models.ListingStatus, endsAt, now time.Time) bool {
	return status == models.StatusActive && endsAt.After(now)
}

// CanCancelSecret reports whether the partner may still cancel a secret listing
func CanCancelSecret(status models.ListingStatus) bool {
	return status == models.StatusActive
}

// Stats are the headline numbers on the auction page
type Stats struct {
	RoomsLive  int
	ActiveBids int
}

// HomeStats counts rooms and bids across the fetched (unfiltered) auctions
func HomeStats(rooms []models.RoomListingView) Stats {
	s := Stats{RoomsLive: len(rooms)}
	for _, r := range rooms {
		s.ActiveBids += r.BidCount
	}
	return s
}

// Package listings holds the read-time projections applied to fetched
// listings: region and time-bucket filtering, day labels, and derived status.
package listings

import (
	"time"

	"late-rooms/internal/models"
)

// AllRegions disables the region filter
const AllRegions = "all"

// TimeBucket is the coarse availability selector on the browse pages
type TimeBucket string

const (
	BucketAll      TimeBucket = "all"
	BucketTonight  TimeBucket = "tonight"
	BucketTomorrow TimeBucket = "tomorrow"
	BucketEnding   TimeBucket = "ending"
)

// EndingWindow is how close to closing an auction must be to count as "ending"
const EndingWindow = time.Hour

const dateLayout = "2006-01-02"

// RoomBuckets are the selectors offered on the auction page, in display order
var RoomBuckets = []TimeBucket{BucketAll, BucketTonight, BucketTomorrow, BucketEnding}

// SecretBuckets are the selectors offered on the secret hotels page
var SecretBuckets = []TimeBucket{BucketAll, BucketTonight, BucketTomorrow}

// ParseBucket maps a query value to a bucket, falling back to BucketAll
func ParseBucket(s string) TimeBucket {
	switch TimeBucket(s) {
	case BucketTonight, BucketTomorrow, BucketEnding:
		return TimeBucket(s)
	default:
		return BucketAll
	}
}

// Label is the button text for a bucket
func (b TimeBucket) Label() string {
	switch b {
	case BucketTonight:
		return "Tonight"
	case BucketTomorrow:
		return "Tomorrow"
	case BucketEnding:
		return "⏱ Ending Soon"
	default:
		return "All Times"
	}
}

// Today returns the calendar day of now in loc as YYYY-MM-DD
func Today(now time.Time, loc *time.Location) string {
	return now.In(location(loc)).Format(dateLayout)
}

// Tomorrow returns the calendar day after now in loc as YYYY-MM-DD
func Tomorrow(now time.Time, loc *time.Location) string {
	return now.In(location(loc)).AddDate(0, 0, 1).Format(dateLayout)
}

// DateString formats a stored availability date. Dates come back from the
// backend as midnight UTC, so the calendar fields are read without conversion.
func DateString(d time.Time) string {
	return d.Format(dateLayout)
}

// DayLabel is the "Tonight"/"Tomorrow" hint shown on cards
func DayLabel(available, now time.Time, loc *time.Location) string {
	if DateString(available) == Today(now, loc) {
		return "Tonight"
	}
	return "Tomorrow"
}

// FilterRooms keeps the auctions matching region and bucket, preserving order
func FilterRooms(rooms []models.RoomListingView, region string, bucket TimeBucket, now time.Time, loc *time.Location) []models.RoomListingView {
	today, tomorrow := Today(now, loc), Tomorrow(now, loc)
	cutoff := now.Add(EndingWindow)

	out := make([]models.RoomListingView, 0, len(rooms))
	for _, r := range rooms {
		if !regionMatches(region, r.RegionName) {
			continue
		}
		if !dayMatches(bucket, DateString(r.AvailableDate), today, tomorrow) {
			continue
		}
		if bucket == BucketEnding && r.AuctionEndsAt.After(cutoff) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterSecrets keeps the secret listings matching region and bucket, preserving order.
// Secret listings have no auction end, so BucketEnding keeps everything.
func FilterSecrets(secrets []models.SecretListingView, region string, bucket TimeBucket, now time.Time, loc *time.Location) []models.SecretListingView {
	today, tomorrow := Today(now, loc), Tomorrow(now, loc)

	out := make([]models.SecretListingView, 0, len(secrets))
	for _, s := range secrets {
		if !regionMatches(region, s.RegionName) {
			continue
		}
		if !dayMatches(bucket, DateString(s.AvailableDate), today, tomorrow) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func regionMatches(selected, name string) bool {
	return selected == "" || selected == AllRegions || selected == name
}

func dayMatches(bucket TimeBucket, date, today, tomorrow string) bool {
	switch bucket {
	case BucketTonight:
		return date == today
	case BucketTomorrow:
		return date == tomorrow
	default:
		return true
	}
}

func location(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}

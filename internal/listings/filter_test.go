package listings

import (
	"testing"
	"time"
	_ "time/tzdata"

	"late-rooms/internal/models"

	"github.com/stretchr/testify/require"
)

var (
	london, _ = time.LoadLocation("Europe/London")
	now       = time.Date(2026, 7, 1, 20, 0, 0, 0, time.UTC) // 21:00 in London
)

// Helper to build an auction row
func newRoom(id, region string, available time.Time, endsIn time.Duration) models.RoomListingView {
	return models.RoomListingView{
		ID:            id,
		HotelName:     "Hotel " + id,
		RegionName:    region,
		AvailableDate: available,
		AuctionEndsAt: now.Add(endsIn),
		StartingBid:   90,
		Status:        models.StatusActive,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ids(rooms []models.RoomListingView) []string {
	out := make([]string, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, r.ID)
	}
	return out
}

// Test FilterRooms
func TestFilterRooms(t *testing.T) {
	t.Parallel()

	today := day(2026, 7, 1)
	tomorrow := day(2026, 7, 2)

	rooms := []models.RoomListingView{
		newRoom("a", "London", today, 10*time.Minute),
		newRoom("b", "Scotland", today, 45*time.Minute),
		newRoom("c", "London", tomorrow, 59*time.Minute),
		newRoom("d", "London", tomorrow, 61*time.Minute),
		newRoom("e", "Scotland", tomorrow, 3*time.Hour),
	}

	tests := []struct {
		name   string
		region string
		bucket TimeBucket
		want   []string
	}{
		{name: "everything", region: AllRegions, bucket: BucketAll, want: []string{"a", "b", "c", "d", "e"}},
		{name: "empty_region_means_all", region: "", bucket: BucketAll, want: []string{"a", "b", "c", "d", "e"}},
		{name: "london_keeps_order", region: "London", bucket: BucketAll, want: []string{"a", "c", "d"}},
		{name: "scotland", region: "Scotland", bucket: BucketAll, want: []string{"b", "e"}},
		{name: "region_is_exact_match", region: "london", bucket: BucketAll, want: []string{}},
		{name: "tonight", region: AllRegions, bucket: BucketTonight, want: []string{"a", "b"}},
		{name: "tomorrow", region: AllRegions, bucket: BucketTomorrow, want: []string{"c", "d", "e"}},
		{name: "ending_within_an_hour", region: AllRegions, bucket: BucketEnding, want: []string{"a", "b", "c"}},
		{name: "london_ending", region: "London", bucket: BucketEnding, want: []string{"a", "c"}},
		{name: "scotland_tonight", region: "Scotland", bucket: BucketTonight, want: []string{"b"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := FilterRooms(rooms, tc.region, tc.bucket, now, london)
			require.Equal(t, tc.want, ids(got))
		})
	}
}

func TestFilterRooms_EndingBoundary(t *testing.T) {
	t.Parallel()

	rooms := []models.RoomListingView{
		newRoom("exactly_one_hour", "London", day(2026, 7, 1), time.Hour),
		newRoom("one_hour_one_second", "London", day(2026, 7, 1), time.Hour+time.Second),
	}

	got := FilterRooms(rooms, AllRegions, BucketEnding, now, london)
	require.Equal(t, []string{"exactly_one_hour"}, ids(got))
}

func TestFilterRooms_UsesLocalCalendarDay(t *testing.T) {
	t.Parallel()

	// 23:30 UTC on 1 July is already 2 July in London
	late := time.Date(2026, 7, 1, 23, 30, 0, 0, time.UTC)
	rooms := []models.RoomListingView{
		{ID: "jul1", AvailableDate: day(2026, 7, 1), AuctionEndsAt: late.Add(time.Hour)},
		{ID: "jul2", AvailableDate: day(2026, 7, 2), AuctionEndsAt: late.Add(time.Hour)},
	}

	require.Equal(t, []string{"jul2"}, ids(FilterRooms(rooms, AllRegions, BucketTonight, late, london)))
	require.Equal(t, []string{"jul1"}, ids(FilterRooms(rooms, AllRegions, BucketTonight, late, time.UTC)))
}

// Test FilterSecrets
func TestFilterSecrets(t *testing.T) {
	t.Parallel()

	secrets := []models.SecretListingView{
		{ID: "s1", RegionName: "London", AvailableDate: day(2026, 7, 1)},
		{ID: "s2", RegionName: "Scotland", AvailableDate: day(2026, 7, 2)},
		{ID: "s3", RegionName: "London", AvailableDate: day(2026, 7, 2)},
	}

	get := func(region string, bucket TimeBucket) []string {
		out := []string{}
		for _, s := range FilterSecrets(secrets, region, bucket, now, london) {
			out = append(out, s.ID)
		}
		return out
	}

	require.Equal(t, []string{"s1", "s3"}, get("London", BucketAll))
	require.Equal(t, []string{"s1"}, get(AllRegions, BucketTonight))
	require.Equal(t, []string{"s2", "s3"}, get(AllRegions, BucketTomorrow))
	require.Equal(t, []string{"s1", "s2", "s3"}, get(AllRegions, BucketEnding))
}

// Test ParseBucket and DayLabel
func TestParseBucket(t *testing.T) {
	t.Parallel()

	require.Equal(t, BucketTonight, ParseBucket("tonight"))
	require.Equal(t, BucketEnding, ParseBucket("ending"))
	require.Equal(t, BucketAll, ParseBucket(""))
	require.Equal(t, BucketAll, ParseBucket("next-week"))
	require.Equal(t, "⏱ Ending Soon", BucketEnding.Label())
}

func TestDayLabel(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Tonight", DayLabel(day(2026, 7, 1), now, london))
	require.Equal(t, "Tomorrow", DayLabel(day(2026, 7, 2), now, london))
	require.Equal(t, "2026-07-02", Tomorrow(now, london))
}

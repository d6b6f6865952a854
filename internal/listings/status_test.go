package listings

import (
	"testing"
	"time"

	"late-rooms/internal/models"

	"github.com/stretchr/testify/require"
)

// Test RoomBadge
func TestRoomBadge(t *testing.T) {
	t.Parallel()

	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	tests := []struct {
		name      string
		status    models.ListingStatus
		endsAt    time.Time
		want      Badge
		canCancel bool
	}{
		{name: "active_running", status: models.StatusActive, endsAt: future, want: BadgeLive, canCancel: true},
		{name: "active_but_past_end", status: models.StatusActive, endsAt: past, want: BadgeEnded, canCancel: false},
		{name: "sold_beats_ended", status: models.StatusSold, endsAt: past, want: BadgeSold, canCancel: false},
		{name: "cancelled_beats_everything", status: models.StatusCancelled, endsAt: future, want: BadgeCancelled, canCancel: false},
		{name: "cancelled_after_end", status: models.StatusCancelled, endsAt: past, want: BadgeCancelled, canCancel: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, RoomBadge(tc.status, tc.endsAt, now))
			require.Equal(t, tc.canCancel, CanCancelRoom(tc.status, tc.endsAt, now))
		})
	}
}

// Test SecretBadge
func TestSecretBadge(t *testing.T) {
	t.Parallel()

	require.Equal(t, BadgeLive, SecretBadge(models.StatusActive))
	require.Equal(t, BadgeSold, SecretBadge(models.StatusSold))
	require.Equal(t, BadgeCancelled, SecretBadge(models.StatusCancelled))
	require.True(t, CanCancelSecret(models.StatusActive))
	require.False(t, CanCancelSecret(models.StatusCancelled))
}

// Test HomeStats
func TestHomeStats(t *testing.T) {
	t.Parallel()

	rooms := []models.RoomListingView{{BidCount: 3}, {BidCount: 0}, {BidCount: 7}}
	require.Equal(t, Stats{RoomsLive: 3, ActiveBids: 10}, HomeStats(rooms))
	require.Equal(t, Stats{}, HomeStats(nil))
}

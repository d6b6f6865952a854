package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"late-rooms/internal/marketerrors"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder is a gorm logger that keeps every statement it is shown
type sqlRecorder struct {
	mu    sync.Mutex
	stmts []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface { return r }
func (r *sqlRecorder) Info(context.Context, string, ...interface{}) {}
func (r *sqlRecorder) Warn(context.Context, string, ...interface{}) {}
func (r *sqlRecorder) Error(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.mu.Lock()
	r.stmts = append(r.stmts, sql)
	r.mu.Unlock()
}

// last returns the most recent statement and forgets the rest
func (r *sqlRecorder) last(t *testing.T) string {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.stmts, "no statement was built")
	sql := r.stmts[len(r.stmts)-1]
	r.stmts = nil
	return sql
}

// dryRunRepo builds SQL without a database: nothing is sent, every query
// returns no rows and every update affects none
func dryRunRepo(t *testing.T) (*PostgresRepo, *sqlRecorder) {
	t.Helper()
	rec := &sqlRecorder{}
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=late_rooms dbname=late_rooms sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               rec,
	})
	require.NoError(t, err)
	return NewPostgresRepo(db), rec
}

const ownedHotels = `hotel_id IN \(SELECT "?id"? FROM "hotels" WHERE partner_id = 'p1'\)`

func TestPostgresRepo_PartnerScopedSQL(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		run     func(r *PostgresRepo) error
		pattern string
	}{
		{
			name: "list_rooms_newest_first",
			run: func(r *PostgresRepo) error {
				_, err := r.ListPartnerRooms(ctx, "p1", 5)
				return err
			},
			pattern: `^SELECT \* FROM "room_listings" WHERE ` + ownedHotels + ` ORDER BY created_at DESC LIMIT 5$`,
		},
		{
			name: "get_room_scoped_to_owner",
			run: func(r *PostgresRepo) error {
				_, err := r.GetPartnerRoom(ctx, "p1", "r1")
				return err
			},
			pattern: `^SELECT \* FROM "room_listings" WHERE ` + ownedHotels + ` AND id = 'r1' LIMIT 1$`,
		},
		{
			name: "count_active_rooms",
			run: func(r *PostgresRepo) error {
				_, err := r.CountActiveRooms(ctx, "p1")
				return err
			},
			pattern: `^SELECT count\(\*\) FROM "room_listings" WHERE ` + ownedHotels + ` AND status = 'active'$`,
		},
		{
			name: "bookings_on_owned_rooms",
			run: func(r *PostgresRepo) error {
				_, err := r.ListPartnerBookings(ctx, "p1")
				return err
			},
			pattern: `^SELECT \* FROM "bookings" WHERE listing_id IN \(SELECT "?id"? FROM "room_listings" WHERE ` + ownedHotels + `\) ORDER BY created_at DESC$`,
		},
		{
			name: "count_bookings",
			run: func(r *PostgresRepo) error {
				_, err := r.CountBookings(ctx, "p1")
				return err
			},
			pattern: `^SELECT count\(\*\) FROM "bookings" WHERE listing_id IN \(SELECT "?id"? FROM "room_listings" WHERE ` + ownedHotels + `\)$`,
		},
		{
			name: "secret_listings",
			run: func(r *PostgresRepo) error {
				_, err := r.ListPartnerSecrets(ctx, "p1")
				return err
			},
			pattern: `^SELECT \* FROM "secret_hotel_listings" WHERE partner_id = 'p1' ORDER BY created_at DESC$`,
		},
		{
			name: "active_hotels_only",
			run: func(r *PostgresRepo) error {
				_, err := r.ListPartnerHotels(ctx, "p1")
				return err
			},
			pattern: `^SELECT \* FROM "hotels" WHERE partner_id = 'p1' AND is_active = true ORDER BY name ASC$`,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			repo, rec := dryRunRepo(t)
			// preloads resolve their relations before any row is read
			require.NoError(t, tc.run(repo))
			require.Regexp(t, tc.pattern, rec.last(t))
		})
	}
}

func TestPostgresRepo_CancelSQL(t *testing.T) {
	ctx := context.Background()

	t.Run("room_update_needs_ownership", func(t *testing.T) {
		repo, rec := dryRunRepo(t)

		// nothing is updated in a dry run, which reads as someone else's listing
		err := repo.CancelRoomListing(ctx, "p1", "r1")
		require.ErrorIs(t, err, marketerrors.ErrListingNotFound)
		require.Regexp(t,
			`^UPDATE "room_listings" SET "status"='cancelled' WHERE `+ownedHotels+` AND id = 'r1'$`,
			rec.last(t))
	})

	t.Run("secret_update_needs_ownership", func(t *testing.T) {
		repo, rec := dryRunRepo(t)

		err := repo.CancelSecretListing(ctx, "p1", "s1")
		require.ErrorIs(t, err, marketerrors.ErrListingNotFound)
		require.Regexp(t,
			`^UPDATE "secret_hotel_listings" SET "status"='cancelled' WHERE id = 's1' AND partner_id = 'p1'$`,
			rec.last(t))
	})
}

func TestPostgresRepo_PublicReadsSQL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 7, 1, 20, 0, 0, 0, time.UTC)

	repo, rec := dryRunRepo(t)

	_, err := repo.ListActiveRooms(ctx, now)
	require.NoError(t, err)
	require.Regexp(t,
		`^SELECT \* FROM "room_listings_full" WHERE status = 'active' AND auction_ends_at > '2026-07-01 20:00:00' ORDER BY auction_ends_at ASC$`,
		rec.last(t))

	_, err = repo.ListActiveSecrets(ctx)
	require.NoError(t, err)
	require.Regexp(t,
		`^SELECT \* FROM "secret_listings_full" WHERE status = 'active' ORDER BY secret_price ASC$`,
		rec.last(t))

	_, err = repo.ListRegions(ctx)
	require.NoError(t, err)
	require.Regexp(t, `^SELECT \* FROM "regions" ORDER BY display_order ASC$`, rec.last(t))
}

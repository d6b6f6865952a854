package admin

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"late-rooms/internal/backend"
	"late-rooms/internal/listings"
	"late-rooms/internal/marketerrors"
	"late-rooms/internal/models"
	"late-rooms/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 7, 1, 23, 30, 0, 0, time.UTC)

type fixture struct {
	auth    *backend.MockAuthenticator
	repo    *repository.MockPartnerDB
	service *AdminService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := backend.NewMockAuthenticator(ctrl)
	repo := repository.NewMockPartnerDB(ctrl)

	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	return fixture{
		auth: auth,
		repo: repo,
		service: NewAdminService(auth, repo,
			WithClock(func() time.Time { return testNow }),
			WithLocation(london),
		),
	}
}

var partner = models.Partner{ID: "p1", UserID: "u1", ContactName: "Eleanor Price"}

func TestAdminService_Login(t *testing.T) {
	t.Parallel()

	sess := &backend.AuthSession{AccessToken: "tok", User: models.User{ID: "u1"}}

	tests := []struct {
		name      string
		mockSetup func(f fixture)
		wantErr   error
		wantMsg   string
	}{
		{
			name: "partner_signs_in",
			mockSetup: func(f fixture) {
				f.auth.EXPECT().SignIn(gomock.Any(), "eleanor@hotel.test", "pw").Return(sess, nil)
				f.repo.EXPECT().GetPartnerByUserID(gomock.Any(), "u1").Return(partner, nil)
			},
		},
		{
			name: "bad_credentials_shown_verbatim",
			mockSetup: func(f fixture) {
				f.auth.EXPECT().SignIn(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &marketerrors.BackendError{Message: "Invalid login credentials"})
			},
			wantMsg: "Invalid login credentials",
		},
		{
			name: "customer_account_is_signed_out",
			mockSetup: func(f fixture) {
				f.auth.EXPECT().SignIn(gomock.Any(), gomock.Any(), gomock.Any()).Return(sess, nil)
				f.repo.EXPECT().GetPartnerByUserID(gomock.Any(), "u1").Return(models.Partner{}, marketerrors.ErrPartnerNotFound)
				f.auth.EXPECT().SignOut(gomock.Any(), "tok").Return(nil)
			},
			wantErr: marketerrors.ErrNotPartner,
			wantMsg: "This account is not registered as a hotel partner. Please contact support.",
		},
		{
			name: "sign_out_failure_still_rejects",
			mockSetup: func(f fixture) {
				f.auth.EXPECT().SignIn(gomock.Any(), gomock.Any(), gomock.Any()).Return(sess, nil)
				f.repo.EXPECT().GetPartnerByUserID(gomock.Any(), "u1").Return(models.Partner{}, errors.New("timeout"))
				f.auth.EXPECT().SignOut(gomock.Any(), "tok").Return(errors.New("network down"))
			},
			wantErr: marketerrors.ErrNotPartner,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			tc.mockSetup(f)

			got, p, err := f.service.Login(context.Background(), " eleanor@hotel.test ", "pw")
			if tc.wantErr == nil && tc.wantMsg == "" {
				require.NoError(t, err)
				require.Equal(t, "tok", got.AccessToken)
				require.Equal(t, partner, p)
				return
			}
			require.Error(t, err)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			}
			if tc.wantMsg != "" {
				require.Equal(t, tc.wantMsg, marketerrors.UserMessage(err))
			}
		})
	}
}

func TestAdminService_ResolvePartner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		token     string
		mockSetup func(f fixture)
		wantErr   bool
	}{
		{
			name:  "partner",
			token: "tok",
			mockSetup: func(f fixture) {
				f.auth.EXPECT().GetUser(gomock.Any(), "tok").Return(&models.User{ID: "u1"}, nil)
				f.repo.EXPECT().GetPartnerByUserID(gomock.Any(), "u1").Return(partner, nil)
			},
		},
		{name: "no_token", token: "", mockSetup: func(f fixture) {}, wantErr: true},
		{
			name:  "expired_token",
			token: "old",
			mockSetup: func(f fixture) {
				f.auth.EXPECT().GetUser(gomock.Any(), "old").Return(nil, marketerrors.ErrNotAuthenticated)
			},
			wantErr: true,
		},
		{
			name:  "not_a_partner",
			token: "tok",
			mockSetup: func(f fixture) {
				f.auth.EXPECT().GetUser(gomock.Any(), "tok").Return(&models.User{ID: "u2"}, nil)
				f.repo.EXPECT().GetPartnerByUserID(gomock.Any(), "u2").Return(models.Partner{}, errors.New("no rows"))
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			tc.mockSetup(f)

			user, p, err := f.service.ResolvePartner(context.Background(), tc.token)
			if tc.wantErr {
				require.ErrorIs(t, err, marketerrors.ErrPartnerNotFound)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "u1", user.ID)
			require.Equal(t, "p1", p.ID)
		})
	}
}

func TestGreeting(t *testing.T) {
	tests := []struct {
		contact string
		want    string
	}{
		{"Eleanor Price", "Eleanor"},
		{"  Sam  ", "Sam"},
		{"", "Partner"},
		{"   ", "Partner"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, Greeting(models.Partner{ContactName: tc.contact}))
	}
}

func TestAdminService_Dashboard(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().CountActiveRooms(gomock.Any(), "p1").Return(int64(3), nil)
	f.repo.EXPECT().CountActiveSecrets(gomock.Any(), "p1").Return(int64(1), nil)
	f.repo.EXPECT().CountBookings(gomock.Any(), "p1").Return(int64(7), nil)
	f.repo.EXPECT().ListPartnerRooms(gomock.Any(), "p1", 5).Return([]models.RoomListing{
		{ID: "r1", Status: models.StatusActive, StartingBid: 90, AuctionEndsAt: testNow.Add(95 * time.Minute)},
		{ID: "r2", Status: models.StatusSold, StartingBid: 90, AuctionEndsAt: testNow.Add(-time.Hour)},
	}, nil)

	d, err := f.service.Dashboard(context.Background(), partner)
	require.NoError(t, err)
	require.Equal(t, "Eleanor", d.Greeting)
	require.Equal(t, int64(3), d.ActiveRooms)
	require.Equal(t, int64(1), d.ActiveSecrets)
	require.Equal(t, int64(7), d.Bookings)
	require.Len(t, d.Recent, 2)
	require.Equal(t, "1h 35m left", d.Recent[0].TimeLeft)
	require.Equal(t, listings.BadgeSold, d.Recent[1].Badge)
	require.False(t, d.Recent[1].CanCancel)
}

func TestAdminService_Dashboard_CountFailureKeepsRecent(t *testing.T) {
	f := newFixture(t)

	countDone := make(chan struct{})
	f.repo.EXPECT().CountActiveRooms(gomock.Any(), "p1").DoAndReturn(func(context.Context, string) (int64, error) {
		defer close(countDone)
		return 0, errors.New("statement timeout")
	})
	f.repo.EXPECT().CountActiveSecrets(gomock.Any(), "p1").Return(int64(1), nil)
	f.repo.EXPECT().CountBookings(gomock.Any(), "p1").Return(int64(7), nil)
	f.repo.EXPECT().ListPartnerRooms(gomock.Any(), "p1", 5).DoAndReturn(func(ctx context.Context, _ string, _ int) ([]models.RoomListing, error) {
		<-countDone
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(50 * time.Millisecond):
			return []models.RoomListing{{ID: "r1", Status: models.StatusActive, AuctionEndsAt: testNow.Add(time.Hour)}}, nil
		}
	})

	d, err := f.service.Dashboard(context.Background(), partner)
	require.ErrorContains(t, err, "statement timeout")
	require.Equal(t, int64(7), d.Bookings)
	require.Len(t, d.Recent, 1)
}

func TestAdminService_Rooms(t *testing.T) {
	f := newFixture(t)
	bid := 150.0

	f.repo.EXPECT().ListPartnerRooms(gomock.Any(), "p1", 0).Return([]models.RoomListing{
		{ID: "live", Status: models.StatusActive, StartingBid: 90, CurrentBid: &bid, AuctionEndsAt: testNow.Add(20 * time.Minute)},
		{ID: "ended", Status: models.StatusActive, StartingBid: 90, AuctionEndsAt: testNow.Add(-time.Minute)},
		{ID: "cancelled", Status: models.StatusCancelled, StartingBid: 90, AuctionEndsAt: testNow.Add(time.Hour)},
	}, nil)

	rows, err := f.service.Rooms(context.Background(), partner)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, listings.BadgeLive, rows[0].Badge)
	require.Equal(t, "20m left", rows[0].TimeLeft)
	require.Equal(t, 150.0, rows[0].Current)
	require.True(t, rows[0].CanCancel)

	require.Equal(t, listings.BadgeEnded, rows[1].Badge)
	require.Equal(t, "Ended", rows[1].TimeLeft)
	require.False(t, rows[1].CanCancel)

	require.Equal(t, listings.BadgeCancelled, rows[2].Badge)
	require.False(t, rows[2].CanCancel)
}

func TestAdminService_CancelRoom(t *testing.T) {
	t.Parallel()

	live := models.RoomListing{ID: "r1", Status: models.StatusActive, AuctionEndsAt: testNow.Add(time.Hour)}

	tests := []struct {
		name      string
		mockSetup func(f fixture)
		wantErr   error
	}{
		{
			name: "cancels_owned_live_room",
			mockSetup: func(f fixture) {
				f.repo.EXPECT().GetPartnerRoom(gomock.Any(), "p1", "r1").Return(live, nil)
				f.repo.EXPECT().CancelRoomListing(gomock.Any(), "p1", "r1").Return(nil)
			},
		},
		{
			name: "not_owned",
			mockSetup: func(f fixture) {
				f.repo.EXPECT().GetPartnerRoom(gomock.Any(), "p1", "r1").Return(models.RoomListing{}, marketerrors.ErrListingNotFound)
			},
			wantErr: marketerrors.ErrListingNotFound,
		},
		{
			name: "already_sold",
			mockSetup: func(f fixture) {
				sold := live
				sold.Status = models.StatusSold
				f.repo.EXPECT().GetPartnerRoom(gomock.Any(), "p1", "r1").Return(sold, nil)
			},
			wantErr: marketerrors.ErrAuctionEnded,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			tc.mockSetup(f)

			err := f.service.CancelRoom(context.Background(), partner, "r1")
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAdminService_CancelSecret(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetPartnerSecret(gomock.Any(), "p1", "s1").Return(models.SecretListing{ID: "s1", Status: models.StatusActive}, nil)
	f.repo.EXPECT().CancelSecretListing(gomock.Any(), "p1", "s1").Return(nil)
	require.NoError(t, f.service.CancelSecret(context.Background(), partner, "s1"))

	f.repo.EXPECT().GetPartnerSecret(gomock.Any(), "p1", "s2").Return(models.SecretListing{ID: "s2", Status: models.StatusCancelled}, nil)
	require.ErrorIs(t, f.service.CancelSecret(context.Background(), partner, "s2"), marketerrors.ErrInvalidListing)

	f.repo.EXPECT().ListPartnerSecrets(gomock.Any(), "p1").Return([]models.SecretListing{
		{ID: "s1", Status: models.StatusCancelled},
		{ID: "s3", Status: models.StatusSold},
	}, nil)
	rows, err := f.service.Secrets(context.Background(), partner)
	require.NoError(t, err)
	require.Equal(t, listings.BadgeCancelled, rows[0].Badge)
	require.Equal(t, listings.BadgeSold, rows[1].Badge)
	require.False(t, rows[1].CanCancel)
}

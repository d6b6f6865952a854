package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"late-rooms/internal/marketerrors"
	"late-rooms/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func validRoom() RoomInput {
	return RoomInput{
		HotelID:       "h1",
		RoomType:      " Deluxe Double ",
		OriginalPrice: 250,
		MinimumBid:    80,
		StartingBid:   95,
		AvailableDate: AvailableToday,
		CheckInTime:   "3pm onwards",
		MaxGuests:     2,
		AuctionHours:  4,
	}
}

func TestAdminService_CreateRoom(t *testing.T) {
	t.Parallel()

	hotels := []models.Hotel{{ID: "h1", PartnerID: "p1", IsActive: true}}

	tests := []struct {
		name      string
		input     func() RoomInput
		mockSetup func(f fixture)
		wantErr   error
		wantMsg   string
	}{
		{
			name:  "valid_tonight",
			input: validRoom,
			mockSetup: func(f fixture) {
				f.repo.EXPECT().ListPartnerHotels(gomock.Any(), "p1").Return(hotels, nil)
				f.repo.EXPECT().InsertRoomListing(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l models.RoomListing) error {
					require.Equal(t, "Deluxe Double", l.RoomType)
					require.Equal(t, models.StatusActive, l.Status)
					// 23:30 UTC is already 2 July in London
					require.Equal(t, time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC), l.AvailableDate)
					require.Equal(t, testNow.Add(4*time.Hour), l.AuctionEndsAt)
					require.Nil(t, l.CurrentBid)
					return nil
				})
			},
		},
		{
			name: "valid_tomorrow",
			input: func() RoomInput {
				in := validRoom()
				in.AvailableDate = AvailableTomorrow
				in.AuctionHours = 24
				in.StartingBid = in.MinimumBid
				return in
			},
			mockSetup: func(f fixture) {
				f.repo.EXPECT().ListPartnerHotels(gomock.Any(), "p1").Return(hotels, nil)
				f.repo.EXPECT().InsertRoomListing(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l models.RoomListing) error {
					require.Equal(t, time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC), l.AvailableDate)
					return nil
				})
			},
		},
		{
			name: "starting_below_minimum",
			input: func() RoomInput {
				in := validRoom()
				in.StartingBid = 79
				return in
			},
			mockSetup: func(f fixture) {},
			wantErr:   marketerrors.ErrStartingTooLow,
			wantMsg:   "Starting bid must be at least the minimum bid",
		},
		{
			name: "zero_price",
			input: func() RoomInput {
				in := validRoom()
				in.OriginalPrice = 0
				return in
			},
			mockSetup: func(f fixture) {},
			wantErr:   marketerrors.ErrInvalidListing,
		},
		{
			name: "too_many_guests",
			input: func() RoomInput {
				in := validRoom()
				in.MaxGuests = 5
				return in
			},
			mockSetup: func(f fixture) {},
			wantMsg:   "Max guests must be between 1 and 4",
		},
		{
			name: "odd_duration",
			input: func() RoomInput {
				in := validRoom()
				in.AuctionHours = 3
				return in
			},
			mockSetup: func(f fixture) {},
			wantErr:   marketerrors.ErrInvalidListing,
		},
		{
			name: "unknown_check_in",
			input: func() RoomInput {
				in := validRoom()
				in.CheckInTime = "midnight"
				return in
			},
			mockSetup: func(f fixture) {},
			wantErr:   marketerrors.ErrInvalidListing,
		},
		{
			name: "next_week",
			input: func() RoomInput {
				in := validRoom()
				in.AvailableDate = "next-week"
				return in
			},
			mockSetup: func(f fixture) {},
			wantErr:   marketerrors.ErrInvalidListing,
		},
		{
			name: "hotel_not_owned",
			input: func() RoomInput {
				in := validRoom()
				in.HotelID = "someone-elses"
				return in
			},
			mockSetup: func(f fixture) {
				f.repo.EXPECT().ListPartnerHotels(gomock.Any(), "p1").Return(hotels, nil)
			},
			wantErr: marketerrors.ErrHotelNotFound,
		},
		{
			name:  "insert_rejected_by_backend",
			input: validRoom,
			mockSetup: func(f fixture) {
				f.repo.EXPECT().ListPartnerHotels(gomock.Any(), "p1").Return(hotels, nil)
				f.repo.EXPECT().InsertRoomListing(gomock.Any(), gomock.Any()).
					Return(&marketerrors.BackendError{Message: `null value in column "hotel_id" violates not-null constraint`})
			},
			wantMsg: `null value in column "hotel_id" violates not-null constraint`,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			tc.mockSetup(f)

			listing, err := f.service.CreateRoom(context.Background(), partner, tc.input())
			if tc.wantErr != nil || tc.wantMsg != "" {
				require.Error(t, err)
				if tc.wantErr != nil {
					require.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				}
				if tc.wantMsg != "" {
					require.Equal(t, tc.wantMsg, marketerrors.UserMessage(err))
				}
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, listing.ID)
		})
	}
}

func validSecret() SecretInput {
	return SecretInput{
		RadiusArea:        "Mayfair",
		RadiusDescription: "5 min walk of Green Park",
		RegionID:          "reg-london",
		StarRating:        5,
		Amenities:         "Spa, , Rooftop Bar ,Gym,",
		RoomType:          "Executive King",
		OriginalValue:     520,
		SecretPrice:       289,
		AvailableDate:     AvailableTomorrow,
		CheckInTime:       "3pm onwards",
		MaxGuests:         2,
		ActualHotelName:   "The Grosvenor",
		ActualAddress:     "12 Park Lane",
	}
}

func TestAdminService_CreateSecret(t *testing.T) {
	t.Parallel()

	score := func(v float64) *float64 { return &v }

	tests := []struct {
		name      string
		input     func() SecretInput
		mockSetup func(f fixture)
		wantMsg   string
	}{
		{
			name:  "valid",
			input: validSecret,
			mockSetup: func(f fixture) {
				f.repo.EXPECT().InsertSecretListing(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l models.SecretListing) error {
					require.Equal(t, []string{"Spa", "Rooftop Bar", "Gym"}, []string(l.Amenities))
					require.Equal(t, "p1", l.PartnerID)
					require.Equal(t, models.StatusActive, l.Status)
					require.Nil(t, l.ReviewScore)
					require.Nil(t, l.ReviewCount)
					return nil
				})
			},
		},
		{
			name: "missing_actual_address",
			input: func() SecretInput {
				in := validSecret()
				in.ActualAddress = "  "
				return in
			},
			mockSetup: func(f fixture) {},
			wantMsg:   "Actual address is required",
		},
		{
			name: "six_stars",
			input: func() SecretInput {
				in := validSecret()
				in.StarRating = 6
				return in
			},
			mockSetup: func(f fixture) {},
			wantMsg:   "Star rating must be between 1 and 5",
		},
		{
			name: "review_score_out_of_range",
			input: func() SecretInput {
				in := validSecret()
				in.ReviewScore = score(10.5)
				return in
			},
			mockSetup: func(f fixture) {},
			wantMsg:   "Review score must be between 1 and 10",
		},
		{
			name: "unknown_region",
			input: func() SecretInput {
				in := validSecret()
				in.RegionID = "reg-x"
				return in
			},
			mockSetup: func(f fixture) {
				f.repo.EXPECT().InsertSecretListing(gomock.Any(), gomock.Any()).Return(errors.New(`insert or update on table "secret_hotel_listings" violates foreign key constraint`))
			},
			wantMsg: `insert or update on table "secret_hotel_listings" violates foreign key constraint`,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			tc.mockSetup(f)

			_, err := f.service.CreateSecret(context.Background(), partner, tc.input())
			if tc.wantMsg != "" {
				require.Error(t, err)
				require.Equal(t, tc.wantMsg, marketerrors.UserMessage(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParseAmenities(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", []string{}},
		{" , ,", []string{}},
		{"Spa", []string{"Spa"}},
		{" Pool ,Gym , , Bar", []string{"Pool", "Gym", "Bar"}},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, ParseAmenities(tc.raw), tc.raw)
	}
}

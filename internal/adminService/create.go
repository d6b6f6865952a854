package admin

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"late-rooms/internal/marketerrors"
	"late-rooms/internal/models"
	"late-rooms/utils"
)

// Choices offered by the create forms
var (
	CheckInTimes = []string{"2pm onwards", "3pm onwards", "4pm onwards", "Flexible"}
	AuctionHours = []int{1, 2, 4, 6, 12, 24}
	GuestCounts  = []int{1, 2, 3, 4}
)

// Available date choices
const (
	AvailableToday    = "today"
	AvailableTomorrow = "tomorrow"
)

// RoomInput is a submitted "add room auction" form
type RoomInput struct {
	HotelID       string
	RoomType      string
	OriginalPrice float64
	MinimumBid    float64
	StartingBid   float64
	AvailableDate string
	CheckInTime   string
	MaxGuests     int
	AuctionHours  int
}

// SecretInput is a submitted "add secret hotel" form
type SecretInput struct {
	RadiusArea        string
	RadiusDescription string
	RegionID          string
	StarRating        int
	Amenities         string
	RoomType          string
	ReviewScore       *float64
	ReviewCount       *int
	OriginalValue     float64
	SecretPrice       float64
	AvailableDate     string
	CheckInTime       string
	MaxGuests         int
	ActualHotelName   string
	ActualAddress     string
}

// CreateRoom validates the form and inserts a new active auction on one of the partner's hotels
func (s *AdminService) CreateRoom(ctx context.Context, partner models.Partner, in RoomInput) (models.RoomListing, error) {
	if strings.TrimSpace(in.HotelID) == "" {
		return models.RoomListing{}, marketerrors.Invalid(marketerrors.ErrInvalidListing, "Please select a hotel")
	}
	if strings.TrimSpace(in.RoomType) == "" {
		return models.RoomListing{}, marketerrors.Invalid(marketerrors.ErrInvalidListing, "Room type is required")
	}
	if !positive(in.OriginalPrice) || !positive(in.MinimumBid) || !positive(in.StartingBid) {
		return models.RoomListing{}, marketerrors.Invalid(marketerrors.ErrInvalidListing, "Prices must be greater than zero")
	}
	if in.StartingBid < in.MinimumBid {
		return models.RoomListing{}, marketerrors.Invalid(marketerrors.ErrStartingTooLow, marketerrors.ErrStartingTooLow.Error())
	}
	if !slices.Contains(CheckInTimes, in.CheckInTime) {
		return models.RoomListing{}, marketerrors.Invalid(marketerrors.ErrInvalidListing, "Please choose a check-in time")
	}
	if !slices.Contains(GuestCounts, in.MaxGuests) {
		return models.RoomListing{}, marketerrors.Invalid(marketerrors.ErrInvalidListing, "Max guests must be between 1 and 4")
	}
	if !slices.Contains(AuctionHours, in.AuctionHours) {
		return models.RoomListing{}, marketerrors.Invalid(marketerrors.ErrInvalidListing, "Please choose an auction duration")
	}

	now := s.now()
	available, err := s.availableDate(in.AvailableDate, now)
	if err != nil {
		return models.RoomListing{}, err
	}

	hotels, err := s.Hotels(ctx, partner)
	if err != nil {
		return models.RoomListing{}, err
	}
	if !slices.ContainsFunc(hotels, func(h models.Hotel) bool { return h.ID == in.HotelID }) {
		return models.RoomListing{}, fmt.Errorf("admin: hotel %s for partner %s: %w", in.HotelID, partner.ID,
			marketerrors.Invalid(marketerrors.ErrHotelNotFound, "Please select one of your hotels"))
	}

	listing := models.RoomListing{
		ID:            utils.NewRecordID(),
		HotelID:       in.HotelID,
		RoomType:      strings.TrimSpace(in.RoomType),
		OriginalPrice: in.OriginalPrice,
		MinimumBid:    in.MinimumBid,
		StartingBid:   in.StartingBid,
		AvailableDate: available,
		CheckInTime:   in.CheckInTime,
		MaxGuests:     in.MaxGuests,
		AuctionEndsAt: now.Add(time.Duration(in.AuctionHours) * time.Hour).UTC(),
		Status:        models.StatusActive,
		CreatedAt:     now.UTC(),
	}

	if err := s.repo.InsertRoomListing(ctx, listing); err != nil {
		return models.RoomListing{}, fmt.Errorf("admin: insert room listing: %w", marketerrors.FromBackend(err))
	}

	utils.Info("room listing created", map[string]any{
		"partner_id":      partner.ID,
		"listing_id":      listing.ID,
		"auction_ends_at": listing.AuctionEndsAt,
	})
	return listing, nil
}

// CreateSecret validates the form and inserts a new active secret listing
func (s *AdminService) CreateSecret(ctx context.Context, partner models.Partner, in SecretInput) (models.SecretListing, error) {
	required := []struct {
		value string
		label string
	}{
		{in.RadiusArea, "Area"},
		{in.RadiusDescription, "Radius description"},
		{in.RegionID, "Region"},
		{in.RoomType, "Room type"},
		{in.ActualHotelName, "Actual hotel name"},
		{in.ActualAddress, "Actual address"},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return models.SecretListing{}, marketerrors.Invalid(marketerrors.ErrInvalidListing, f.label+" is required")
		}
	}
	if in.StarRating < 1 || in.StarRating > 5 {
		return models.SecretListing{}, marketerrors.Invalid(marketerrors.ErrInvalidListing, "Star rating must be between 1 and 5")
	}
	if !positive(in.OriginalValue) || !positive(in.SecretPrice) {
		return models.SecretListing{}, marketerrors.Invalid(marketerrors.ErrInvalidListing, "Prices must be greater than zero")
	}
	if in.ReviewScore != nil && (*in.ReviewScore < 1 || *in.ReviewScore > 10) {
		return models.SecretListing{}, marketerrors.Invalid(marketerrors.ErrInvalidListing, "Review score must be between 1 and 10")
	}
	if in.ReviewCount != nil && *in.ReviewCount < 0 {
		return models.SecretListing{}, marketerrors.Invalid(marketerrors.ErrInvalidListing, "Review count cannot be negative")
	}
	if !slices.Contains(CheckInTimes, in.CheckInTime) {
		return models.SecretListing{}, marketerrors.Invalid(marketerrors.ErrInvalidListing, "Please choose a check-in time")
	}
	if !slices.Contains(GuestCounts, in.MaxGuests) {
		return models.SecretListing{}, marketerrors.Invalid(marketerrors.ErrInvalidListing, "Max guests must be between 1 and 4")
	}

	now := s.now()
	available, err := s.availableDate(in.AvailableDate, now)
	if err != nil {
		return models.SecretListing{}, err
	}

	listing := models.SecretListing{
		ID:                utils.NewRecordID(),
		PartnerID:         partner.ID,
		RegionID:          in.RegionID,
		RadiusArea:        strings.TrimSpace(in.RadiusArea),
		RadiusDescription: strings.TrimSpace(in.RadiusDescription),
		StarRating:        in.StarRating,
		Amenities:         ParseAmenities(in.Amenities),
		RoomType:          strings.TrimSpace(in.RoomType),
		ReviewScore:       in.ReviewScore,
		ReviewCount:       in.ReviewCount,
		OriginalValue:     in.OriginalValue,
		SecretPrice:       in.SecretPrice,
		AvailableDate:     available,
		CheckInTime:       in.CheckInTime,
		MaxGuests:         in.MaxGuests,
		ActualHotelName:   strings.TrimSpace(in.ActualHotelName),
		ActualAddress:     strings.TrimSpace(in.ActualAddress),
		Status:            models.StatusActive,
		CreatedAt:         now.UTC(),
	}

	if err := s.repo.InsertSecretListing(ctx, listing); err != nil {
		return models.SecretListing{}, fmt.Errorf("admin: insert secret listing: %w", marketerrors.FromBackend(err))
	}

	utils.Info("secret listing created", map[string]any{"partner_id": partner.ID, "listing_id": listing.ID})
	return listing, nil
}

// ParseAmenities splits a comma-separated list, trimming entries and dropping blanks
func ParseAmenities(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if a := strings.TrimSpace(part); a != "" {
			out = append(out, a)
		}
	}
	return out
}

// availableDate resolves "today"/"tomorrow" against the local calendar and
// stores the day as midnight UTC, matching the backend's date columns
func (s *AdminService) availableDate(choice string, now time.Time) (time.Time, error) {
	local := now.In(s.loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	switch choice {
	case AvailableToday:
		return day, nil
	case AvailableTomorrow:
		return day.AddDate(0, 0, 1), nil
	default:
		return time.Time{}, marketerrors.Invalid(marketerrors.ErrInvalidListing, "Available date must be tonight or tomorrow")
	}
}

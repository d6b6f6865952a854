package helpers

import (
	"strconv"
	"strings"

	admin "late-rooms/internal/adminService"
	"late-rooms/internal/marketerrors"
)

// Form DTOs. Pages post application/x-www-form-urlencoded bodies.

// BidForm carries every "amount" value posted. The typed box comes first and a
// quick-bid button, when one was pressed, adds its own value after it.
type BidForm struct {
	Amounts []string `form:"amount"`
}

// Amount is the value to bid: the last non-blank one submitted
func (f BidForm) Amount() string {
	for i := len(f.Amounts) - 1; i >= 0; i-- {
		if v := strings.TrimSpace(f.Amounts[i]); v != "" {
			return v
		}
	}
	return ""
}

// ParseAmount reads the bid; anything that is not a positive number is an invalid bid
func (f BidForm) ParseAmount() (float64, error) {
	v, err := strconv.ParseFloat(f.Amount(), 64)
	if err != nil || v <= 0 {
		return 0, marketerrors.Invalid(marketerrors.ErrInvalidBid, "Please enter a valid bid amount")
	}
	return v, nil
}

type LoginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type SignupForm struct {
	FullName string `form:"full_name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
}

type RoomForm struct {
	HotelID       string  `form:"hotel_id" binding:"required"`
	RoomType      string  `form:"room_type" binding:"required"`
	OriginalPrice float64 `form:"original_price" binding:"required,gt=0"`
	MinimumBid    float64 `form:"minimum_bid" binding:"required,gt=0"`
	StartingBid   float64 `form:"starting_bid" binding:"required,gt=0,gtefield=MinimumBid"`
	AvailableDate string  `form:"available_date" binding:"required,oneof=today tomorrow"`
	CheckInTime   string  `form:"check_in_time" binding:"required"`
	MaxGuests     int     `form:"max_guests" binding:"required,min=1,max=4"`
	AuctionHours  int     `form:"auction_hours" binding:"required,oneof=1 2 4 6 12 24"`
}

// DefaultRoomForm is what the empty "add room" form shows
func DefaultRoomForm() RoomForm {
	return RoomForm{
		AvailableDate: admin.AvailableToday,
		CheckInTime:   "3pm onwards",
		MaxGuests:     2,
		AuctionHours:  4,
	}
}

func (f RoomForm) Input() admin.RoomInput {
	return admin.RoomInput{
		HotelID:       f.HotelID,
		RoomType:      strings.TrimSpace(f.RoomType),
		OriginalPrice: f.OriginalPrice,
		MinimumBid:    f.MinimumBid,
		StartingBid:   f.StartingBid,
		AvailableDate: f.AvailableDate,
		CheckInTime:   f.CheckInTime,
		MaxGuests:     f.MaxGuests,
		AuctionHours:  f.AuctionHours,
	}
}

// SecretForm keeps the optional review fields as text so a blank box means "not given"
type SecretForm struct {
	RadiusArea        string  `form:"radius_area" binding:"required"`
	RadiusDescription string  `form:"radius_description" binding:"required"`
	RegionID          string  `form:"region_id" binding:"required"`
	StarRating        int     `form:"star_rating" binding:"required,min=1,max=5"`
	Amenities         string  `form:"amenities"`
	RoomType          string  `form:"room_type" binding:"required"`
	ReviewScore       string  `form:"review_score"`
	ReviewCount       string  `form:"review_count"`
	OriginalValue     float64 `form:"original_value" binding:"required,gt=0"`
	SecretPrice       float64 `form:"secret_price" binding:"required,gt=0"`
	AvailableDate     string  `form:"available_date" binding:"required,oneof=today tomorrow"`
	CheckInTime       string  `form:"check_in_time" binding:"required"`
	MaxGuests         int     `form:"max_guests" binding:"required,min=1,max=4"`
	ActualHotelName   string  `form:"actual_hotel_name" binding:"required"`
	ActualAddress     string  `form:"actual_address" binding:"required"`
}

// DefaultSecretForm is what the empty "add secret hotel" form shows
func DefaultSecretForm() SecretForm {
	return SecretForm{
		StarRating:    4,
		AvailableDate: admin.AvailableToday,
		CheckInTime:   "3pm onwards",
		MaxGuests:     2,
	}
}

func (f SecretForm) Input() (admin.SecretInput, error) {
	in := admin.SecretInput{
		RadiusArea:        strings.TrimSpace(f.RadiusArea),
		RadiusDescription: strings.TrimSpace(f.RadiusDescription),
		RegionID:          f.RegionID,
		StarRating:        f.StarRating,
		Amenities:         f.Amenities,
		RoomType:          strings.TrimSpace(f.RoomType),
		OriginalValue:     f.OriginalValue,
		SecretPrice:       f.SecretPrice,
		AvailableDate:     f.AvailableDate,
		CheckInTime:       f.CheckInTime,
		MaxGuests:         f.MaxGuests,
		ActualHotelName:   strings.TrimSpace(f.ActualHotelName),
		ActualAddress:     strings.TrimSpace(f.ActualAddress),
	}

	if s := strings.TrimSpace(f.ReviewScore); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return in, marketerrors.Invalid(marketerrors.ErrInvalidListing, "Review score must be a number")
		}
		in.ReviewScore = &v
	}
	if s := strings.TrimSpace(f.ReviewCount); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return in, marketerrors.Invalid(marketerrors.ErrInvalidListing, "Review count must be a whole number")
		}
		in.ReviewCount = &v
	}
	return in, nil
}

var fieldLabels = map[string]string{
	"Amount":            "Bid amount",
	"Email":             "Email",
	"Password":          "Password",
	"FullName":          "Full name",
	"HotelID":           "Hotel",
	"RoomType":          "Room type",
	"OriginalPrice":     "Original price",
	"MinimumBid":        "Minimum bid",
	"StartingBid":       "Starting bid",
	"AvailableDate":     "Available date",
	"CheckInTime":       "Check-in time",
	"MaxGuests":         "Max guests",
	"AuctionHours":      "Auction duration",
	"RadiusArea":        "Radius area",
	"RadiusDescription": "Radius description",
	"RegionID":          "Region",
	"StarRating":        "Star rating",
	"OriginalValue":     "Original value",
	"SecretPrice":       "Secret price",
	"ActualHotelName":   "Actual hotel name",
	"ActualAddress":     "Actual address",
}

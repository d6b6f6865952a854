package models

import (
	"time"

	"github.com/lib/pq"
)

// ListingStatus is the persisted lifecycle state of a listing. "Ended" is never stored.
type ListingStatus string

const (
	StatusActive    ListingStatus = "active"
	StatusSold      ListingStatus = "sold"
	StatusCancelled ListingStatus = "cancelled"
)

// User is the identity returned by the backend auth service
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}

// Region is a top-level location (e.g. "London", "Scotland")
type Region struct {
	ID           string `gorm:"column:id;primaryKey" json:"id"`
	Name         string `gorm:"column:name" json:"name"`
	DisplayOrder int    `gorm:"column:display_order" json:"display_order"`
}

func (Region) TableName() string { return "regions" }

// Area is a neighbourhood inside a region
type Area struct {
	ID       string  `gorm:"column:id;primaryKey" json:"id"`
	RegionID string  `gorm:"column:region_id" json:"region_id"`
	Name     string  `gorm:"column:name" json:"name"`
	Region   *Region `gorm:"foreignKey:RegionID" json:"region,omitempty"`
}

func (Area) TableName() string { return "areas" }

// Hotel is a property owned by a partner
type Hotel struct {
	ID         string         `gorm:"column:id;primaryKey" json:"id"`
	PartnerID  string         `gorm:"column:partner_id" json:"partner_id"`
	AreaID     string         `gorm:"column:area_id" json:"area_id"`
	Name       string         `gorm:"column:name" json:"name"`
	StarRating int            `gorm:"column:star_rating" json:"star_rating"`
	Amenities  pq.StringArray `gorm:"column:amenities;type:text[]" json:"amenities"`
	IsActive   bool           `gorm:"column:is_active" json:"is_active"`
	Area       *Area          `gorm:"foreignKey:AreaID" json:"area,omitempty"`
}

func (Hotel) TableName() string { return "hotels" }

// Partner is a hotel operator account linked to an auth user
type Partner struct {
	ID           string `gorm:"column:id;primaryKey" json:"id"`
	UserID       string `gorm:"column:user_id" json:"user_id"`
	CompanyName  string `gorm:"column:company_name" json:"company_name"`
	ContactName  string `gorm:"column:contact_name" json:"contact_name"`
	ContactEmail string `gorm:"column:contact_email" json:"contact_email"`
}

func (Partner) TableName() string { return "hotel_partners" }

// RoomListing is a row of the room_listings base table
type RoomListing struct {
	ID            string        `gorm:"column:id;primaryKey" json:"id"`
	HotelID       string        `gorm:"column:hotel_id" json:"hotel_id"`
	RoomType      string        `gorm:"column:room_type" json:"room_type"`
	OriginalPrice float64       `gorm:"column:original_price" json:"original_price"`
	MinimumBid    float64       `gorm:"column:minimum_bid" json:"minimum_bid"`
	StartingBid   float64       `gorm:"column:starting_bid" json:"starting_bid"`
	CurrentBid    *float64      `gorm:"column:current_bid" json:"current_bid"`
	BidCount      int           `gorm:"column:bid_count" json:"bid_count"`
	AvailableDate time.Time     `gorm:"column:available_date;type:date" json:"available_date"`
	CheckInTime   string        `gorm:"column:check_in_time" json:"check_in_time"`
	MaxGuests     int           `gorm:"column:max_guests" json:"max_guests"`
	AuctionEndsAt time.Time     `gorm:"column:auction_ends_at" json:"auction_ends_at"`
	Status        ListingStatus `gorm:"column:status" json:"status"`
	CreatedAt     time.Time     `gorm:"column:created_at" json:"created_at"`
	Hotel         *Hotel        `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
}

func (RoomListing) TableName() string { return "room_listings" }

// CurrentBidOrStart returns the highest accepted bid, or the starting bid when none exists yet
func (l RoomListing) CurrentBidOrStart() float64 {
	return currentOrStart(l.CurrentBid, l.StartingBid)
}

// RoomListingView is a row of the denormalized room_listings_full read model
type RoomListingView struct {
	ID            string         `gorm:"column:id" json:"id"`
	HotelID       string         `gorm:"column:hotel_id" json:"hotel_id"`
	HotelName     string         `gorm:"column:hotel_name" json:"hotel_name"`
	AreaName      string         `gorm:"column:area_name" json:"area_name"`
	RegionName    string         `gorm:"column:region_name" json:"region_name"`
	StarRating    int            `gorm:"column:star_rating" json:"star_rating"`
	Amenities     pq.StringArray `gorm:"column:amenities;type:text[]" json:"amenities"`
	RoomType      string         `gorm:"column:room_type" json:"room_type"`
	MaxGuests     int            `gorm:"column:max_guests" json:"max_guests"`
	OriginalPrice float64        `gorm:"column:original_price" json:"original_price"`
	CurrentBid    *float64       `gorm:"column:current_bid" json:"current_bid"`
	StartingBid   float64        `gorm:"column:starting_bid" json:"starting_bid"`
	MinimumBid    float64        `gorm:"column:minimum_bid" json:"minimum_bid"`
	BidCount      int            `gorm:"column:bid_count" json:"bid_count"`
	AuctionEndsAt time.Time      `gorm:"column:auction_ends_at" json:"auction_ends_at"`
	AvailableDate time.Time      `gorm:"column:available_date;type:date" json:"available_date"`
	CheckInTime   string         `gorm:"column:check_in_time" json:"check_in_time"`
	Status        ListingStatus  `gorm:"column:status" json:"status"`
}

func (RoomListingView) TableName() string { return "room_listings_full" }

// CurrentBidOrStart returns the highest accepted bid, or the starting bid when none exists yet
func (v RoomListingView) CurrentBidOrStart() float64 {
	return currentOrStart(v.CurrentBid, v.StartingBid)
}

// a zero current bid counts as "no bids yet"
func currentOrStart(current *float64, starting float64) float64 {
	if current != nil && *current != 0 {
		return *current
	}
	return starting
}

// SecretListing is a row of the secret_hotel_listings base table.
// ActualHotelName and ActualAddress never leave the admin portal.
type SecretListing struct {
	ID                string         `gorm:"column:id;primaryKey" json:"id"`
	PartnerID         string         `gorm:"column:partner_id" json:"partner_id"`
	RegionID          string         `gorm:"column:region_id" json:"region_id"`
	RadiusArea        string         `gorm:"column:radius_area" json:"radius_area"`
	RadiusDescription string         `gorm:"column:radius_description" json:"radius_description"`
	StarRating        int            `gorm:"column:star_rating" json:"star_rating"`
	Amenities         pq.StringArray `gorm:"column:amenities;type:text[]" json:"amenities"`
	RoomType          string         `gorm:"column:room_type" json:"room_type"`
	ReviewScore       *float64       `gorm:"column:review_score" json:"review_score"`
	ReviewCount       *int           `gorm:"column:review_count" json:"review_count"`
	OriginalValue     float64        `gorm:"column:original_value" json:"original_value"`
	SecretPrice       float64        `gorm:"column:secret_price" json:"secret_price"`
	AvailableDate     time.Time      `gorm:"column:available_date;type:date" json:"available_date"`
	CheckInTime       string         `gorm:"column:check_in_time" json:"check_in_time"`
	MaxGuests         int            `gorm:"column:max_guests" json:"max_guests"`
	ActualHotelName   string         `gorm:"column:actual_hotel_name" json:"actual_hotel_name"`
	ActualAddress     string         `gorm:"column:actual_address" json:"actual_address"`
	Status            ListingStatus  `gorm:"column:status" json:"status"`
	CreatedAt         time.Time      `gorm:"column:created_at" json:"created_at"`
	Region            *Region        `gorm:"foreignKey:RegionID" json:"region,omitempty"`
}

func (SecretListing) TableName() string { return "secret_hotel_listings" }

// SecretListingView is a row of the public secret_listings_full read model
type SecretListingView struct {
	ID                string         `gorm:"column:id" json:"id"`
	StarRating        int            `gorm:"column:star_rating" json:"star_rating"`
	RadiusArea        string         `gorm:"column:radius_area" json:"radius_area"`
	RadiusDescription string         `gorm:"column:radius_description" json:"radius_description"`
	RegionName        string         `gorm:"column:region_name" json:"region_name"`
	Amenities         pq.StringArray `gorm:"column:amenities;type:text[]" json:"amenities"`
	RoomType          string         `gorm:"column:room_type" json:"room_type"`
	ReviewScore       *float64       `gorm:"column:review_score" json:"review_score"`
	ReviewCount       *int           `gorm:"column:review_count" json:"review_count"`
	OriginalValue     float64        `gorm:"column:original_value" json:"original_value"`
	SecretPrice       float64        `gorm:"column:secret_price" json:"secret_price"`
	AvailableDate     time.Time      `gorm:"column:available_date;type:date" json:"available_date"`
	CheckInTime       string         `gorm:"column:check_in_time" json:"check_in_time"`
	MaxGuests         int            `gorm:"column:max_guests" json:"max_guests"`
	Status            ListingStatus  `gorm:"column:status" json:"status"`
}

func (SecretListingView) TableName() string { return "secret_listings_full" }

// Bid represents a customer's bid on a room listing
type Bid struct {
	ID         string    `gorm:"column:id;primaryKey" json:"id"`
	ListingID  string    `gorm:"column:listing_id" json:"listing_id"`
	CustomerID string    `gorm:"column:customer_id" json:"customer_id"`
	Amount     float64   `gorm:"column:amount" json:"amount"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Bid) TableName() string { return "bids" }

// Booking is a confirmed purchase of a room listing
type Booking struct {
	ID         string       `gorm:"column:id;primaryKey" json:"id"`
	ListingID  string       `gorm:"column:listing_id" json:"listing_id"`
	CustomerID string       `gorm:"column:customer_id" json:"customer_id"`
	Amount     float64      `gorm:"column:amount" json:"amount"`
	Status     string       `gorm:"column:status" json:"status"`
	CreatedAt  time.Time    `gorm:"column:created_at" json:"created_at"`
	Listing    *RoomListing `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
}

func (Booking) TableName() string { return "bookings" }

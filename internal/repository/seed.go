package repository

import (
	"time"

	"late-rooms/internal/models"
)

// Demo accounts backing the seeded data in memory mode
const (
	DemoCustomerID  = "7d3c2a4e-1f0b-4c1e-9f5a-0c6f1b2e3d41"
	DemoPartnerUser = "0b8f6e7a-5c2d-4d9e-8a1b-3f4e5d6c7b82"
	DemoPartnerID   = "c1a2b3d4-e5f6-4a7b-8c9d-0e1f2a3b4c53"
	OtherPartnerID  = "d9e8f7a6-b5c4-4d3e-9f2a-1b0c9d8e7f64"

	DemoPartnerEmail  = "partner@laterooms.test"
	DemoCustomerEmail = "guest@laterooms.test"
	DemoPassword      = "password123"
)

// SeedDemo fills the repository with regions, hotels and listings relative to now
func (r *MemoryRepo) SeedDemo(now time.Time, loc *time.Location) {
	if loc == nil {
		loc = time.Local
	}
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	regions := []models.Region{
		{ID: "reg-london", Name: "London", DisplayOrder: 1},
		{ID: "reg-manchester", Name: "Manchester", DisplayOrder: 2},
		{ID: "reg-scotland", Name: "Scotland", DisplayOrder: 3},
	}
	for _, reg := range regions {
		r.AddRegion(reg)
	}

	r.AddArea(models.Area{ID: "area-mayfair", RegionID: "reg-london", Name: "Mayfair"})
	r.AddArea(models.Area{ID: "area-shoreditch", RegionID: "reg-london", Name: "Shoreditch"})
	r.AddArea(models.Area{ID: "area-northern-quarter", RegionID: "reg-manchester", Name: "Northern Quarter"})
	r.AddArea(models.Area{ID: "area-old-town", RegionID: "reg-scotland", Name: "Old Town"})

	r.AddPartner(models.Partner{
		ID:           DemoPartnerID,
		UserID:       DemoPartnerUser,
		CompanyName:  "Grosvenor Collection",
		ContactName:  "Eleanor Price",
		ContactEmail: DemoPartnerEmail,
	})
	r.AddPartner(models.Partner{
		ID:           OtherPartnerID,
		UserID:       "e1f2a3b4-c5d6-4e7f-8a9b-0c1d2e3f4a75",
		CompanyName:  "Northern Stays",
		ContactName:  "",
		ContactEmail: "ops@northernstays.test",
	})

	hotels := []models.Hotel{
		{ID: "hotel-grosvenor", PartnerID: DemoPartnerID, AreaID: "area-mayfair", Name: "The Grosvenor", StarRating: 5,
			Amenities: []string{"Spa", "Rooftop Bar", "Gym", "Room Service"}, IsActive: true},
		{ID: "hotel-curtain", PartnerID: DemoPartnerID, AreaID: "area-shoreditch", Name: "The Curtain Rooms", StarRating: 4,
			Amenities: []string{"Pool", "Cinema"}, IsActive: true},
		{ID: "hotel-closed", PartnerID: DemoPartnerID, AreaID: "area-shoreditch", Name: "Closed For Refurb", StarRating: 3,
			IsActive: false},
		{ID: "hotel-mill", PartnerID: OtherPartnerID, AreaID: "area-northern-quarter", Name: "The Cotton Mill", StarRating: 4,
			Amenities: []string{"Free WiFi", "Breakfast"}, IsActive: true},
		{ID: "hotel-royal-mile", PartnerID: OtherPartnerID, AreaID: "area-old-town", Name: "Royal Mile Lodge", StarRating: 5,
			Amenities: []string{"Whisky Bar", "Castle Views", "Spa"}, IsActive: true},
	}
	for _, h := range hotels {
		r.AddHotel(h)
	}

	bid := func(v float64) *float64 { return &v }

	rooms := []models.RoomListing{
		{ID: "room-grosvenor-suite", HotelID: "hotel-grosvenor", RoomType: "Deluxe Suite", OriginalPrice: 450,
			MinimumBid: 150, StartingBid: 180, CurrentBid: bid(240), BidCount: 6, AvailableDate: today,
			CheckInTime: "3pm onwards", MaxGuests: 2, AuctionEndsAt: now.Add(25 * time.Minute),
			Status: models.StatusActive, CreatedAt: now.Add(-5 * time.Hour)},
		{ID: "room-curtain-double", HotelID: "hotel-curtain", RoomType: "Superior Double", OriginalPrice: 250,
			MinimumBid: 80, StartingBid: 95, BidCount: 0, AvailableDate: today,
			CheckInTime: "2pm onwards", MaxGuests: 2, AuctionEndsAt: now.Add(50 * time.Minute),
			Status: models.StatusActive, CreatedAt: now.Add(-4 * time.Hour)},
		{ID: "room-mill-king", HotelID: "hotel-mill", RoomType: "King Room", OriginalPrice: 180,
			MinimumBid: 60, StartingBid: 70, CurrentBid: bid(120), BidCount: 3, AvailableDate: tomorrow,
			CheckInTime: "Flexible", MaxGuests: 3, AuctionEndsAt: now.Add(3 * time.Hour),
			Status: models.StatusActive, CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "room-royal-twin", HotelID: "hotel-royal-mile", RoomType: "Twin Room", OriginalPrice: 220,
			MinimumBid: 90, StartingBid: 100, BidCount: 0, AvailableDate: tomorrow,
			CheckInTime: "4pm onwards", MaxGuests: 2, AuctionEndsAt: now.Add(9 * time.Hour),
			Status: models.StatusActive, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "room-grosvenor-sold", HotelID: "hotel-grosvenor", RoomType: "Junior Suite", OriginalPrice: 380,
			MinimumBid: 120, StartingBid: 140, CurrentBid: bid(210), BidCount: 9, AvailableDate: today,
			CheckInTime: "3pm onwards", MaxGuests: 2, AuctionEndsAt: now.Add(-2 * time.Hour),
			Status: models.StatusSold, CreatedAt: now.Add(-26 * time.Hour)},
		{ID: "room-curtain-ended", HotelID: "hotel-curtain", RoomType: "Classic Single", OriginalPrice: 140,
			MinimumBid: 50, StartingBid: 55, BidCount: 0, AvailableDate: today,
			CheckInTime: "2pm onwards", MaxGuests: 1, AuctionEndsAt: now.Add(-30 * time.Minute),
			Status: models.StatusActive, CreatedAt: now.Add(-25 * time.Hour)},
	}
	r.mu.Lock()
	for _, l := range rooms {
		r.rooms[l.ID] = l
	}
	r.mu.Unlock()

	score := func(v float64) *float64 { return &v }
	count := func(v int) *int { return &v }

	secrets := []models.SecretListing{
		{ID: "secret-mayfair", PartnerID: DemoPartnerID, RegionID: "reg-london", RadiusArea: "Mayfair",
			RadiusDescription: "5 min walk of Green Park", StarRating: 5, Amenities: []string{"Spa", "Michelin Dining", "Butler"},
			RoomType: "Executive King", ReviewScore: score(9.2), ReviewCount: count(1843), OriginalValue: 520, SecretPrice: 289,
			AvailableDate: today, CheckInTime: "3pm onwards", MaxGuests: 2, ActualHotelName: "The Grosvenor",
			ActualAddress: "12 Park Lane, London W1K", Status: models.StatusActive, CreatedAt: now.Add(-6 * time.Hour)},
		{ID: "secret-edinburgh", PartnerID: OtherPartnerID, RegionID: "reg-scotland", RadiusArea: "Old Town",
			RadiusDescription: "the Royal Mile", StarRating: 4, Amenities: []string{"Breakfast", "Bar"},
			RoomType: "Double Room", OriginalValue: 210, SecretPrice: 119,
			AvailableDate: tomorrow, CheckInTime: "2pm onwards", MaxGuests: 2, ActualHotelName: "Royal Mile Lodge",
			ActualAddress: "99 High Street, Edinburgh EH1", Status: models.StatusActive, CreatedAt: now.Add(-7 * time.Hour)},
		{ID: "secret-shoreditch-old", PartnerID: DemoPartnerID, RegionID: "reg-london", RadiusArea: "Shoreditch",
			RadiusDescription: "Old Street station", StarRating: 4, RoomType: "Loft Studio", OriginalValue: 300, SecretPrice: 160,
			AvailableDate: today, CheckInTime: "4pm onwards", MaxGuests: 2, ActualHotelName: "The Curtain Rooms",
			ActualAddress: "45 Curtain Road, London EC2A", Status: models.StatusCancelled, CreatedAt: now.Add(-30 * time.Hour)},
	}
	r.mu.Lock()
	for _, s := range secrets {
		r.secrets[s.ID] = s
	}
	r.mu.Unlock()

	r.AddBooking(models.Booking{
		ID: "booking-1", ListingID: "room-grosvenor-sold", CustomerID: DemoCustomerID,
		Amount: 210, Status: "confirmed", CreatedAt: now.Add(-90 * time.Minute),
	})
}

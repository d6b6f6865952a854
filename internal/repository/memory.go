package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"late-rooms/internal/marketerrors"
	"late-rooms/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of Store.
// It keeps the base tables and derives the read models on every query,
// the way the backend's views do.
type MemoryRepo struct {
	mu       sync.RWMutex
	regions  map[string]models.Region        // key: regionID
	areas    map[string]models.Area          // key: areaID
	hotels   map[string]models.Hotel         // key: hotelID
	partners map[string]models.Partner       // key: partnerID
	rooms    map[string]models.RoomListing   // key: listingID
	secrets  map[string]models.SecretListing // key: listingID
	bids     map[string][]models.Bid         // key: listingID -> value: list of bids
	bookings map[string]models.Booking       // key: bookingID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		regions:  make(map[string]models.Region),
		areas:    make(map[string]models.Area),
		hotels:   make(map[string]models.Hotel),
		partners: make(map[string]models.Partner),
		rooms:    make(map[string]models.RoomListing),
		secrets:  make(map[string]models.SecretListing),
		bids:     make(map[string][]models.Bid),
		bookings: make(map[string]models.Booking),
	}
}

// ListRegions returns regions in display order
func (r *MemoryRepo) ListRegions(_ context.Context) ([]models.Region, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Region, 0, len(r.regions))
	for _, reg := range r.regions {
		out = append(out, reg)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *MemoryRepo) ListActiveRooms(_ context.Context, now time.Time) ([]models.RoomListingView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.RoomListingView, 0, len(r.rooms))
	for _, l := range r.rooms {
		if l.Status != models.StatusActive || !l.AuctionEndsAt.After(now) {
			continue
		}
		out = append(out, r.roomViewLocked(l))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AuctionEndsAt.Before(out[j].AuctionEndsAt)
	})
	return out, nil
}

func (r *MemoryRepo) GetRoom(_ context.Context, id string) (models.RoomListingView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.rooms[id]
	if !ok {
		return models.RoomListingView{}, fmt.Errorf("get room %s: %w", id, marketerrors.ErrListingNotFound)
	}
	return r.roomViewLocked(l), nil
}

func (r *MemoryRepo) ListActiveSecrets(_ context.Context) ([]models.SecretListingView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.SecretListingView, 0, len(r.secrets))
	for _, s := range r.secrets {
		if s.Status != models.StatusActive {
			continue
		}
		out = append(out, r.secretViewLocked(s))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SecretPrice < out[j].SecretPrice
	})
	return out, nil
}

func (r *MemoryRepo) GetSecret(_ context.Context, id string) (models.SecretListingView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.secrets[id]
	if !ok {
		return models.SecretListingView{}, fmt.Errorf("get secret listing %s: %w", id, marketerrors.ErrListingNotFound)
	}
	return r.secretViewLocked(s), nil
}

// InsertBid records a bid and applies the backend trigger: the listing's
// current bid becomes the highest bid seen and its bid count goes up by one.
func (r *MemoryRepo) InsertBid(_ context.Context, bid models.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.rooms[bid.ListingID]
	if !ok {
		return &marketerrors.BackendError{
			Message: `insert or update on table "bids" violates foreign key constraint "bids_listing_id_fkey"`,
			Err:     marketerrors.ErrListingNotFound,
		}
	}

	r.bids[bid.ListingID] = append(r.bids[bid.ListingID], bid)

	if l.CurrentBid == nil || bid.Amount > *l.CurrentBid {
		amount := bid.Amount
		l.CurrentBid = &amount
	}
	l.BidCount++
	r.rooms[bid.ListingID] = l

	return nil
}

// BidsFor returns the bids recorded for a listing. This method is intended for tests only.
func (r *MemoryRepo) BidsFor(listingID string) []models.Bid {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Bid(nil), r.bids[listingID]...)
}

func (r *MemoryRepo) GetPartnerByUserID(_ context.Context, userID string) (models.Partner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.partners {
		if p.UserID == userID {
			return p, nil
		}
	}
	return models.Partner{}, fmt.Errorf("get partner for user %s: %w", userID, marketerrors.ErrPartnerNotFound)
}

// ListPartnerHotels returns the partner's active hotels by name
func (r *MemoryRepo) ListPartnerHotels(_ context.Context, partnerID string) ([]models.Hotel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Hotel{}
	for _, h := range r.hotels {
		if h.PartnerID == partnerID && h.IsActive {
			out = append(out, r.hotelLocked(h))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryRepo) ListPartnerRooms(_ context.Context, partnerID string, limit int) ([]models.RoomListing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.RoomListing{}
	for _, l := range r.rooms {
		if r.ownsRoomLocked(partnerID, l) {
			out = append(out, r.roomWithHotelLocked(l))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepo) GetPartnerRoom(_ context.Context, partnerID, id string) (models.RoomListing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.rooms[id]
	if !ok || !r.ownsRoomLocked(partnerID, l) {
		return models.RoomListing{}, fmt.Errorf("get room %s for partner %s: %w", id, partnerID, marketerrors.ErrListingNotFound)
	}
	return r.roomWithHotelLocked(l), nil
}

func (r *MemoryRepo) ListPartnerSecrets(_ context.Context, partnerID string) ([]models.SecretListing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.SecretListing{}
	for _, s := range r.secrets {
		if s.PartnerID == partnerID {
			out = append(out, r.secretWithRegionLocked(s))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepo) GetPartnerSecret(_ context.Context, partnerID, id string) (models.SecretListing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.secrets[id]
	if !ok || s.PartnerID != partnerID {
		return models.SecretListing{}, fmt.Errorf("get secret listing %s for partner %s: %w", id, partnerID, marketerrors.ErrListingNotFound)
	}
	return r.secretWithRegionLocked(s), nil
}

func (r *MemoryRepo) ListPartnerBookings(_ context.Context, partnerID string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Booking{}
	for _, b := range r.bookings {
		l, ok := r.rooms[b.ListingID]
		if !ok || !r.ownsRoomLocked(partnerID, l) {
			continue
		}
		listing := r.roomWithHotelLocked(l)
		b.Listing = &listing
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepo) CountActiveRooms(_ context.Context, partnerID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, l := range r.rooms {
		if l.Status == models.StatusActive && r.ownsRoomLocked(partnerID, l) {
			n++
		}
	}
	return n, nil
}

func (r *MemoryRepo) CountActiveSecrets(_ context.Context, partnerID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, s := range r.secrets {
		if s.Status == models.StatusActive && s.PartnerID == partnerID {
			n++
		}
	}
	return n, nil
}

func (r *MemoryRepo) CountBookings(_ context.Context, partnerID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, b := range r.bookings {
		if l, ok := r.rooms[b.ListingID]; ok && r.ownsRoomLocked(partnerID, l) {
			n++
		}
	}
	return n, nil
}

func (r *MemoryRepo) InsertRoomListing(_ context.Context, listing models.RoomListing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.hotels[listing.HotelID]; !ok {
		return &marketerrors.BackendError{
			Message: `insert or update on table "room_listings" violates foreign key constraint "room_listings_hotel_id_fkey"`,
			Err:     marketerrors.ErrHotelNotFound,
		}
	}
	if _, exists := r.rooms[listing.ID]; exists {
		return &marketerrors.BackendError{Message: `duplicate key value violates unique constraint "room_listings_pkey"`}
	}

	listing.Hotel = nil
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = time.Now().UTC()
	}
	r.rooms[listing.ID] = listing
	return nil
}

func (r *MemoryRepo) InsertSecretListing(_ context.Context, listing models.SecretListing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.regions[listing.RegionID]; !ok {
		return &marketerrors.BackendError{
			Message: `insert or update on table "secret_hotel_listings" violates foreign key constraint "secret_hotel_listings_region_id_fkey"`,
		}
	}
	if _, exists := r.secrets[listing.ID]; exists {
		return &marketerrors.BackendError{Message: `duplicate key value violates unique constraint "secret_hotel_listings_pkey"`}
	}

	listing.Region = nil
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = time.Now().UTC()
	}
	r.secrets[listing.ID] = listing
	return nil
}

// CancelRoomListing flips an owned auction to cancelled
func (r *MemoryRepo) CancelRoomListing(_ context.Context, partnerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.rooms[id]
	if !ok || !r.ownsRoomLocked(partnerID, l) {
		return fmt.Errorf("cancel room %s: %w", id, marketerrors.ErrListingNotFound)
	}
	l.Status = models.StatusCancelled
	r.rooms[id] = l
	return nil
}

// CancelSecretListing flips an owned secret listing to cancelled
func (r *MemoryRepo) CancelSecretListing(_ context.Context, partnerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.secrets[id]
	if !ok || s.PartnerID != partnerID {
		return fmt.Errorf("cancel secret listing %s: %w", id, marketerrors.ErrListingNotFound)
	}
	s.Status = models.StatusCancelled
	r.secrets[id] = s
	return nil
}

// AddRegion adds a region to the repository. This method is intended for seeding and tests only.
func (r *MemoryRepo) AddRegion(reg models.Region) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.regions[reg.ID] = reg
}

// AddArea adds an area to the repository. This method is intended for seeding and tests only.
func (r *MemoryRepo) AddArea(a models.Area) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.Region = nil
	r.areas[a.ID] = a
}

// AddHotel adds a hotel to the repository. This method is intended for seeding and tests only.
func (r *MemoryRepo) AddHotel(h models.Hotel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h.Area = nil
	r.hotels[h.ID] = h
}

// AddPartner adds a partner to the repository. This method is intended for seeding and tests only.
func (r *MemoryRepo) AddPartner(p models.Partner) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.partners[p.ID] = p
}

// AddBooking adds a booking to the repository. This method is intended for seeding and tests only.
func (r *MemoryRepo) AddBooking(b models.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.Listing = nil
	r.bookings[b.ID] = b
}

func (r *MemoryRepo) ownsRoomLocked(partnerID string, l models.RoomListing) bool {
	h, ok := r.hotels[l.HotelID]
	return ok && h.PartnerID == partnerID
}

func (r *MemoryRepo) hotelLocked(h models.Hotel) models.Hotel {
	if a, ok := r.areas[h.AreaID]; ok {
		if reg, ok := r.regions[a.RegionID]; ok {
			a.Region = &reg
		}
		h.Area = &a
	}
	return h
}

func (r *MemoryRepo) roomWithHotelLocked(l models.RoomListing) models.RoomListing {
	if h, ok := r.hotels[l.HotelID]; ok {
		h = r.hotelLocked(h)
		l.Hotel = &h
	}
	return l
}

func (r *MemoryRepo) secretWithRegionLocked(s models.SecretListing) models.SecretListing {
	if reg, ok := r.regions[s.RegionID]; ok {
		s.Region = &reg
	}
	return s
}

// roomViewLocked projects a listing the way room_listings_full does
func (r *MemoryRepo) roomViewLocked(l models.RoomListing) models.RoomListingView {
	v := models.RoomListingView{
		ID:            l.ID,
		HotelID:       l.HotelID,
		RoomType:      l.RoomType,
		MaxGuests:     l.MaxGuests,
		OriginalPrice: l.OriginalPrice,
		CurrentBid:    l.CurrentBid,
		StartingBid:   l.StartingBid,
		MinimumBid:    l.MinimumBid,
		BidCount:      l.BidCount,
		AuctionEndsAt: l.AuctionEndsAt,
		AvailableDate: l.AvailableDate,
		CheckInTime:   l.CheckInTime,
		Status:        l.Status,
	}
	if h, ok := r.hotels[l.HotelID]; ok {
		v.HotelName = h.Name
		v.StarRating = h.StarRating
		v.Amenities = append(v.Amenities, h.Amenities...)
		if a, ok := r.areas[h.AreaID]; ok {
			v.AreaName = a.Name
			v.RegionName = r.regions[a.RegionID].Name
		}
	}
	return v
}

// secretViewLocked projects a listing the way secret_listings_full does; the
// real hotel name and address are not part of the projection
func (r *MemoryRepo) secretViewLocked(s models.SecretListing) models.SecretListingView {
	return models.SecretListingView{
		ID:                s.ID,
		StarRating:        s.StarRating,
		RadiusArea:        s.RadiusArea,
		RadiusDescription: s.RadiusDescription,
		RegionName:        r.regions[s.RegionID].Name,
		Amenities:         append([]string(nil), s.Amenities...),
		RoomType:          s.RoomType,
		ReviewScore:       s.ReviewScore,
		ReviewCount:       s.ReviewCount,
		OriginalValue:     s.OriginalValue,
		SecretPrice:       s.SecretPrice,
		AvailableDate:     s.AvailableDate,
		CheckInTime:       s.CheckInTime,
		MaxGuests:         s.MaxGuests,
		Status:            s.Status,
	}
}

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

package repository

import (
	"context"
	"time"

	"late-rooms/internal/models"
)

// MarketplaceDB is the customer-facing slice of the backend: read models and bid inserts
type MarketplaceDB interface {
	ListRegions(ctx context.Context) ([]models.Region, error)
	// ListActiveRooms returns active auctions ending after now, soonest first
	ListActiveRooms(ctx context.Context, now time.Time) ([]models.RoomListingView, error)
	GetRoom(ctx context.Context, id string) (models.RoomListingView, error)
	// ListActiveSecrets returns active secret listings, cheapest first
	ListActiveSecrets(ctx context.Context) ([]models.SecretListingView, error)
	GetSecret(ctx context.Context, id string) (models.SecretListingView, error)
	InsertBid(ctx context.Context, bid models.Bid) error
}

// PartnerDB is the partner-portal slice of the backend. Every listing query is
// scoped to the partner through hotel ownership (rooms) or partner_id (secrets).
type PartnerDB interface {
	ListRegions(ctx context.Context) ([]models.Region, error)
	GetPartnerByUserID(ctx context.Context, userID string) (models.Partner, error)
	ListPartnerHotels(ctx context.Context, partnerID string) ([]models.Hotel, error)
	// ListPartnerRooms returns the partner's auctions newest first; limit <= 0 means all
	ListPartnerRooms(ctx context.Context, partnerID string, limit int) ([]models.RoomListing, error)
	GetPartnerRoom(ctx context.Context, partnerID, id string) (models.RoomListing, error)
	ListPartnerSecrets(ctx context.Context, partnerID string) ([]models.SecretListing, error)
	GetPartnerSecret(ctx context.Context, partnerID, id string) (models.SecretListing, error)
	ListPartnerBookings(ctx context.Context, partnerID string) ([]models.Booking, error)

	CountActiveRooms(ctx context.Context, partnerID string) (int64, error)
	CountActiveSecrets(ctx context.Context, partnerID string) (int64, error)
	CountBookings(ctx context.Context, partnerID string) (int64, error)

	InsertRoomListing(ctx context.Context, listing models.RoomListing) error
	InsertSecretListing(ctx context.Context, listing models.SecretListing) error
	CancelRoomListing(ctx context.Context, partnerID, id string) error
	CancelSecretListing(ctx context.Context, partnerID, id string) error
}

// Store is everything the app needs from the backend's tables
type Store interface {
	MarketplaceDB
	PartnerDB
}

var (
	_ Store = (*MemoryRepo)(nil)
	_ Store = (*PostgresRepo)(nil)
)

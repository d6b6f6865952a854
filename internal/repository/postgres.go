package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"late-rooms/internal/marketerrors"
	"late-rooms/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresRepo reads and writes the backend's tables and read-model views through gorm
type PostgresRepo struct {
	db *gorm.DB
}

// NewPostgresRepo wraps the shared backend handle
func NewPostgresRepo(db *gorm.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) ListRegions(ctx context.Context) ([]models.Region, error) {
	var regions []models.Region
	if err := r.db.WithContext(ctx).Order("display_order ASC").Find(&regions).Error; err != nil {
		return nil, marketerrors.FromBackend(err)
	}
	return regions, nil
}

func (r *PostgresRepo) ListActiveRooms(ctx context.Context, now time.Time) ([]models.RoomListingView, error) {
	var rooms []models.RoomListingView
	err := r.db.WithContext(ctx).
		Where("status = ? AND auction_ends_at > ?", models.StatusActive, now.UTC()).
		Order("auction_ends_at ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, marketerrors.FromBackend(err)
	}
	return rooms, nil
}

func (r *PostgresRepo) GetRoom(ctx context.Context, id string) (models.RoomListingView, error) {
	var room models.RoomListingView
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&room).Error
	if err != nil {
		return models.RoomListingView{}, notFound(err, "get room "+id)
	}
	return room, nil
}

func (r *PostgresRepo) ListActiveSecrets(ctx context.Context) ([]models.SecretListingView, error) {
	var secrets []models.SecretListingView
	err := r.db.WithContext(ctx).
		Where("status = ?", models.StatusActive).
		Order("secret_price ASC").
		Find(&secrets).Error
	if err != nil {
		return nil, marketerrors.FromBackend(err)
	}
	return secrets, nil
}

func (r *PostgresRepo) GetSecret(ctx context.Context, id string) (models.SecretListingView, error) {
	var secret models.SecretListingView
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&secret).Error
	if err != nil {
		return models.SecretListingView{}, notFound(err, "get secret listing "+id)
	}
	return secret, nil
}

// InsertBid is a single insert; the backend trigger maintains current_bid and bid_count
func (r *PostgresRepo) InsertBid(ctx context.Context, bid models.Bid) error {
	if err := r.db.WithContext(ctx).Create(&bid).Error; err != nil {
		return marketerrors.FromBackend(err)
	}
	return nil
}

func (r *PostgresRepo) GetPartnerByUserID(ctx context.Context, userID string) (models.Partner, error) {
	var partner models.Partner
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&partner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Partner{}, fmt.Errorf("get partner for user %s: %w", userID, marketerrors.ErrPartnerNotFound)
	}
	if err != nil {
		return models.Partner{}, marketerrors.FromBackend(err)
	}
	return partner, nil
}

func (r *PostgresRepo) ListPartnerHotels(ctx context.Context, partnerID string) ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := r.db.WithContext(ctx).
		Preload("Area.Region").
		Where("partner_id = ? AND is_active = ?", partnerID, true).
		Order("name ASC").
		Find(&hotels).Error
	if err != nil {
		return nil, marketerrors.FromBackend(err)
	}
	return hotels, nil
}

func (r *PostgresRepo) ListPartnerRooms(ctx context.Context, partnerID string, limit int) ([]models.RoomListing, error) {
	q := r.partnerRooms(ctx, partnerID).
		Preload("Hotel.Area.Region").
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rooms []models.RoomListing
	if err := q.Find(&rooms).Error; err != nil {
		return nil, marketerrors.FromBackend(err)
	}
	return rooms, nil
}

func (r *PostgresRepo) GetPartnerRoom(ctx context.Context, partnerID, id string) (models.RoomListing, error) {
	var room models.RoomListing
	err := r.partnerRooms(ctx, partnerID).
		Preload("Hotel.Area.Region").
		Where("id = ?", id).
		Take(&room).Error
	if err != nil {
		return models.RoomListing{}, notFound(err, "get room "+id)
	}
	return room, nil
}

func (r *PostgresRepo) ListPartnerSecrets(ctx context.Context, partnerID string) ([]models.SecretListing, error) {
	var secrets []models.SecretListing
	err := r.db.WithContext(ctx).
		Preload("Region").
		Where("partner_id = ?", partnerID).
		Order("created_at DESC").
		Find(&secrets).Error
	if err != nil {
		return nil, marketerrors.FromBackend(err)
	}
	return secrets, nil
}

func (r *PostgresRepo) GetPartnerSecret(ctx context.Context, partnerID, id string) (models.SecretListing, error) {
	var secret models.SecretListing
	err := r.db.WithContext(ctx).
		Preload("Region").
		Where("id = ? AND partner_id = ?", id, partnerID).
		Take(&secret).Error
	if err != nil {
		return models.SecretListing{}, notFound(err, "get secret listing "+id)
	}
	return secret, nil
}

func (r *PostgresRepo) ListPartnerBookings(ctx context.Context, partnerID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Listing.Hotel").
		Where("listing_id IN (?)", r.partnerRooms(ctx, partnerID).Select("id")).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, marketerrors.FromBackend(err)
	}
	return bookings, nil
}

func (r *PostgresRepo) CountActiveRooms(ctx context.Context, partnerID string) (int64, error) {
	var n int64
	err := r.partnerRooms(ctx, partnerID).
		Where("status = ?", models.StatusActive).
		Count(&n).Error
	if err != nil {
		return 0, marketerrors.FromBackend(err)
	}
	return n, nil
}

func (r *PostgresRepo) CountActiveSecrets(ctx context.Context, partnerID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.SecretListing{}).
		Where("partner_id = ? AND status = ?", partnerID, models.StatusActive).
		Count(&n).Error
	if err != nil {
		return 0, marketerrors.FromBackend(err)
	}
	return n, nil
}

func (r *PostgresRepo) CountBookings(ctx context.Context, partnerID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("listing_id IN (?)", r.partnerRooms(ctx, partnerID).Select("id")).
		Count(&n).Error
	if err != nil {
		return 0, marketerrors.FromBackend(err)
	}
	return n, nil
}

func (r *PostgresRepo) InsertRoomListing(ctx context.Context, listing models.RoomListing) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&listing).Error; err != nil {
		return marketerrors.FromBackend(err)
	}
	return nil
}

func (r *PostgresRepo) InsertSecretListing(ctx context.Context, listing models.SecretListing) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&listing).Error; err != nil {
		return marketerrors.FromBackend(err)
	}
	return nil
}

// CancelRoomListing updates only the row with this id whose hotel the partner owns
func (r *PostgresRepo) CancelRoomListing(ctx context.Context, partnerID, id string) error {
	res := r.partnerRooms(ctx, partnerID).
		Where("id = ?", id).
		Update("status", models.StatusCancelled)
	if res.Error != nil {
		return marketerrors.FromBackend(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cancel room %s: %w", id, marketerrors.ErrListingNotFound)
	}
	return nil
}

func (r *PostgresRepo) CancelSecretListing(ctx context.Context, partnerID, id string) error {
	res := r.db.WithContext(ctx).
		Model(&models.SecretListing{}).
		Where("id = ? AND partner_id = ?", id, partnerID).
		Update("status", models.StatusCancelled)
	if res.Error != nil {
		return marketerrors.FromBackend(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cancel secret listing %s: %w", id, marketerrors.ErrListingNotFound)
	}
	return nil
}

// partnerRooms scopes room_listings to hotels owned by the partner
func (r *PostgresRepo) partnerRooms(ctx context.Context, partnerID string) *gorm.DB {
	owned := r.db.Model(&models.Hotel{}).Select("id").Where("partner_id = ?", partnerID)
	return r.db.WithContext(ctx).
		Model(&models.RoomListing{}).
		Where("hotel_id IN (?)", owned)
}

func notFound(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, marketerrors.ErrListingNotFound)
	}
	return marketerrors.FromBackend(err)
}

// Package admin holds the partner portal's business logic: partner
// resolution, the dashboard, and creating and cancelling listings.
package admin

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"late-rooms/internal/backend"
	"late-rooms/internal/countdown"
	"late-rooms/internal/listings"
	"late-rooms/internal/marketerrors"
	"late-rooms/internal/models"
	"late-rooms/internal/repository"
	"late-rooms/utils"

	"golang.org/x/sync/errgroup"
)

const recentListings = 5

// AdminService serves the partner portal
type AdminService struct {
	auth backend.Authenticator
	repo repository.PartnerDB
	now  func() time.Time
	loc  *time.Location
}

// Option configures an AdminService
type Option func(*AdminService)

// WithClock overrides the service clock
func WithClock(now func() time.Time) Option {
	return func(s *AdminService) { s.now = now }
}

// WithLocation sets the timezone "today" and "tomorrow" resolve in
func WithLocation(loc *time.Location) Option {
	return func(s *AdminService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// NewAdminService creates a new AdminService instance
func NewAdminService(auth backend.Authenticator, repo repository.PartnerDB, opts ...Option) *AdminService {
	s := &AdminService{
		auth: auth,
		repo: repo,
		now:  time.Now,
		loc:  time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RoomRow is one auction in the partner's tables
type RoomRow struct {
	Listing   models.RoomListing
	Current   float64
	Badge     listings.Badge
	TimeLeft  string
	CanCancel bool
}

// SecretRow is one secret listing in the partner's table
type SecretRow struct {
	Listing   models.SecretListing
	Badge     listings.Badge
	CanCancel bool
}

// Dashboard is the partner home page model
type Dashboard struct {
	Greeting      string
	ActiveRooms   int64
	ActiveSecrets int64
	Bookings      int64
	Recent        []RoomRow
}

// Login signs a partner in. Accounts without a partner profile are signed
// straight back out.
func (s *AdminService) Login(ctx context.Context, email, password string) (*backend.AuthSession, models.Partner, error) {
	sess, err := s.auth.SignIn(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return nil, models.Partner{}, fmt.Errorf("admin: sign in: %w", marketerrors.FromBackend(err))
	}

	partner, err := s.repo.GetPartnerByUserID(ctx, sess.User.ID)
	if err != nil {
		if outErr := s.auth.SignOut(ctx, sess.AccessToken); outErr != nil {
			utils.Warn("failed to sign out non-partner account", map[string]any{"user_id": sess.User.ID, "error": outErr.Error()})
		}
		return nil, models.Partner{}, fmt.Errorf("admin: user %s: %w", sess.User.ID, marketerrors.ErrNotPartner)
	}

	return sess, partner, nil
}

// Logout ends the backend session
func (s *AdminService) Logout(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return nil
	}
	return s.auth.SignOut(ctx, accessToken)
}

// ResolvePartner maps an access token to its partner. Every failure reads as
// ErrPartnerNotFound so callers send the visitor to the login page.
func (s *AdminService) ResolvePartner(ctx context.Context, accessToken string) (models.User, models.Partner, error) {
	if accessToken == "" {
		return models.User{}, models.Partner{}, marketerrors.ErrPartnerNotFound
	}

	user, err := s.auth.GetUser(ctx, accessToken)
	if err != nil || user == nil {
		return models.User{}, models.Partner{}, fmt.Errorf("admin: resolve user: %w", marketerrors.ErrPartnerNotFound)
	}

	partner, err := s.repo.GetPartnerByUserID(ctx, user.ID)
	if err != nil {
		return models.User{}, models.Partner{}, fmt.Errorf("admin: resolve partner for %s: %w", user.ID, marketerrors.ErrPartnerNotFound)
	}
	return *user, partner, nil
}

// Greeting is the first word of the contact name, or "Partner"
func Greeting(p models.Partner) string {
	if fields := strings.Fields(p.ContactName); len(fields) > 0 {
		return fields[0]
	}
	return "Partner"
}

// Dashboard loads the counts and the most recent auctions in parallel
func (s *AdminService) Dashboard(ctx context.Context, partner models.Partner) (Dashboard, error) {
	d := Dashboard{Greeting: Greeting(partner)}
	now := s.now()

	// reads fail independently; one failing must not cancel the others
	var g errgroup.Group
	g.Go(func() (err error) {
		d.ActiveRooms, err = s.repo.CountActiveRooms(ctx, partner.ID)
		return err
	})
	g.Go(func() (err error) {
		d.ActiveSecrets, err = s.repo.CountActiveSecrets(ctx, partner.ID)
		return err
	})
	g.Go(func() (err error) {
		d.Bookings, err = s.repo.CountBookings(ctx, partner.ID)
		return err
	})
	g.Go(func() error {
		rooms, err := s.repo.ListPartnerRooms(ctx, partner.ID, recentListings)
		if err != nil {
			return err
		}
		d.Recent = s.roomRows(rooms, now)
		return nil
	})

	if err := g.Wait(); err != nil {
		return d, fmt.Errorf("admin: dashboard for %s: %w", partner.ID, err)
	}
	return d, nil
}

// Rooms lists every auction on the partner's hotels, newest first
func (s *AdminService) Rooms(ctx context.Context, partner models.Partner) ([]RoomRow, error) {
	rooms, err := s.repo.ListPartnerRooms(ctx, partner.ID, 0)
	if err != nil {
		return nil, fmt.Errorf("admin: list rooms for %s: %w", partner.ID, err)
	}
	return s.roomRows(rooms, s.now()), nil
}

// Room loads one of the partner's auctions
func (s *AdminService) Room(ctx context.Context, partner models.Partner, id string) (RoomRow, error) {
	room, err := s.repo.GetPartnerRoom(ctx, partner.ID, id)
	if err != nil {
		return RoomRow{}, fmt.Errorf("admin: get room %s: %w", id, err)
	}
	return s.roomRow(room, s.now()), nil
}

// CancelRoom flips an owned, still-running auction to cancelled
func (s *AdminService) CancelRoom(ctx context.Context, partner models.Partner, id string) error {
	row, err := s.Room(ctx, partner, id)
	if err != nil {
		return err
	}
	if !row.CanCancel {
		return fmt.Errorf("admin: cancel room %s: %w", id, marketerrors.ErrAuctionEnded)
	}
	if err := s.repo.CancelRoomListing(ctx, partner.ID, id); err != nil {
		return fmt.Errorf("admin: cancel room %s: %w", id, err)
	}
	utils.Info("room listing cancelled", map[string]any{"partner_id": partner.ID, "listing_id": id})
	return nil
}

// Secrets lists the partner's secret listings, newest first
func (s *AdminService) Secrets(ctx context.Context, partner models.Partner) ([]SecretRow, error) {
	secrets, err := s.repo.ListPartnerSecrets(ctx, partner.ID)
	if err != nil {
		return nil, fmt.Errorf("admin: list secret listings for %s: %w", partner.ID, err)
	}
	rows := make([]SecretRow, 0, len(secrets))
	for _, l := range secrets {
		rows = append(rows, secretRow(l))
	}
	return rows, nil
}

// Secret loads one of the partner's secret listings
func (s *AdminService) Secret(ctx context.Context, partner models.Partner, id string) (SecretRow, error) {
	l, err := s.repo.GetPartnerSecret(ctx, partner.ID, id)
	if err != nil {
		return SecretRow{}, fmt.Errorf("admin: get secret listing %s: %w", id, err)
	}
	return secretRow(l), nil
}

// CancelSecret flips an owned, active secret listing to cancelled
func (s *AdminService) CancelSecret(ctx context.Context, partner models.Partner, id string) error {
	row, err := s.Secret(ctx, partner, id)
	if err != nil {
		return err
	}
	if !row.CanCancel {
		return fmt.Errorf("admin: cancel secret listing %s: %w", id, marketerrors.ErrInvalidListing)
	}
	if err := s.repo.CancelSecretListing(ctx, partner.ID, id); err != nil {
		return fmt.Errorf("admin: cancel secret listing %s: %w", id, err)
	}
	utils.Info("secret listing cancelled", map[string]any{"partner_id": partner.ID, "listing_id": id})
	return nil
}

// Hotels are the partner's active hotels, the only ones a room can be listed on
func (s *AdminService) Hotels(ctx context.Context, partner models.Partner) ([]models.Hotel, error) {
	hotels, err := s.repo.ListPartnerHotels(ctx, partner.ID)
	if err != nil {
		return nil, fmt.Errorf("admin: list hotels for %s: %w", partner.ID, err)
	}
	return hotels, nil
}

// Regions feed the secret listing region selector
func (s *AdminService) Regions(ctx context.Context) ([]models.Region, error) {
	regions, err := s.repo.ListRegions(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin: list regions: %w", err)
	}
	return regions, nil
}

// Bookings lists bookings on the partner's auctions, newest first
func (s *AdminService) Bookings(ctx context.Context, partner models.Partner) ([]models.Booking, error) {
	bookings, err := s.repo.ListPartnerBookings(ctx, partner.ID)
	if err != nil {
		return nil, fmt.Errorf("admin: list bookings for %s: %w", partner.ID, err)
	}
	return bookings, nil
}

func (s *AdminService) roomRows(rooms []models.RoomListing, now time.Time) []RoomRow {
	rows := make([]RoomRow, 0, len(rooms))
	for _, l := range rooms {
		rows = append(rows, s.roomRow(l, now))
	}
	return rows
}

func (s *AdminService) roomRow(l models.RoomListing, now time.Time) RoomRow {
	return RoomRow{
		Listing:   l,
		Current:   l.CurrentBidOrStart(),
		Badge:     listings.RoomBadge(l.Status, l.AuctionEndsAt, now),
		TimeLeft:  countdown.Remaining(l.AuctionEndsAt, now, countdown.StyleAdmin).Label,
		CanCancel: listings.CanCancelRoom(l.Status, l.AuctionEndsAt, now),
	}
}

func secretRow(l models.SecretListing) SecretRow {
	return SecretRow{
		Listing:   l,
		Badge:     listings.SecretBadge(l.Status),
		CanCancel: listings.CanCancelSecret(l.Status),
	}
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

package bidding

import (
	"context"
	"fmt"
	"math"
	"time"

	"late-rooms/internal/marketerrors"
	"late-rooms/internal/models"
	"late-rooms/internal/repository"
	"late-rooms/utils"
)

// QuickBidSteps are the one-tap increments offered above the current bid
var QuickBidSteps = []float64{5, 10, 20, 50}

// BiddingService defines the business logic for the customer marketplace:
// browsing listings and placing bids on room auctions
type BiddingService struct {
	repo repository.MarketplaceDB
	now  func() time.Time
	loc  *time.Location
}

// Option configures a BiddingService
type Option func(*BiddingService)

// WithClock overrides the service clock
func WithClock(now func() time.Time) Option {
	return func(s *BiddingService) { s.now = now }
}

// WithLocation sets the timezone that "tonight" and "tomorrow" are resolved in
func WithLocation(loc *time.Location) Option {
	return func(s *BiddingService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.MarketplaceDB, opts ...Option) *BiddingService {
	s := &BiddingService{
		repo: repo,
		now:  time.Now,
		loc:  time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceBid validates and records a customer's bid on a room auction.
//
// The current bid is read once and compared before a plain insert. Two
// customers reading the same current bid can both be accepted; the backend
// trigger keeps current_bid at the highest amount either way.
func (s *BiddingService) PlaceBid(ctx context.Context, user *models.User, listingID string, amount float64) (models.Bid, error) {
	if user == nil || user.ID == "" {
		return models.Bid{}, fmt.Errorf("service: bid on %s: %w", listingID, marketerrors.ErrNotAuthenticated)
	}
	if listingID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing listing id", marketerrors.ErrInvalidListing)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return models.Bid{}, marketerrors.Invalid(marketerrors.ErrInvalidBid, "Please enter a valid bid amount")
	}

	room, err := s.repo.GetRoom(ctx, listingID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load listing %s: %w", listingID, err)
	}

	now := s.now()
	if room.Status != models.StatusActive || !now.Before(room.AuctionEndsAt) {
		return models.Bid{}, fmt.Errorf("service: listing %s: %w", listingID, marketerrors.ErrAuctionEnded)
	}

	current := room.CurrentBidOrStart()
	if amount <= current {
		return models.Bid{}, &marketerrors.BidTooLowError{Current: current}
	}

	bid := models.Bid{
		ID:         utils.NewRecordID(),
		ListingID:  listingID,
		CustomerID: user.ID,
		Amount:     amount,
		CreatedAt:  now.UTC(),
	}

	if err := s.repo.InsertBid(ctx, bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid on %s by user %s: %w", listingID, user.ID, marketerrors.FromBackend(err))
	}

	utils.Info("bid placed", map[string]any{
		"listing_id": listingID,
		"user_id":    user.ID,
		"amount":     amount,
	})
	return bid, nil
}

// QuickBids returns the one-tap amounts offered on the room page
func QuickBids(current float64) []float64 {
	out := make([]float64, len(QuickBidSteps))
	for i, step := range QuickBidSteps {
		out[i] = current + step
	}
	return out
}

// SuggestedMinimum is the placeholder amount in the bid input
func SuggestedMinimum(current float64) float64 {
	return current + 1
}

package bidding

import (
	"context"
	"fmt"
	"time"

	"late-rooms/internal/listings"
	"late-rooms/internal/models"

	"golang.org/x/sync/errgroup"
)

// RoomsPage is everything the auction browse page renders
type RoomsPage struct {
	Regions []models.Region
	Rooms   []models.RoomListingView
	Stats   listings.Stats
	Region  string
	Bucket  listings.TimeBucket
	Now     time.Time
}

// SecretsPage is everything the secret hotels browse page renders
type SecretsPage struct {
	Regions []models.Region
	Secrets []models.SecretListingView
	Region  string
	Bucket  listings.TimeBucket
	Now     time.Time
}

// RoomDetail is the room page model
type RoomDetail struct {
	Room      models.RoomListingView
	Current   float64
	Suggested float64
	QuickBids []float64
	Ended     bool
	Now       time.Time
}

// BrowseRooms loads regions and live auctions in parallel and applies the
// region and time filters. Stats count the unfiltered auctions. On a read
// failure the page still carries whatever loaded.
func (s *BiddingService) BrowseRooms(ctx context.Context, region string, bucket listings.TimeBucket) (RoomsPage, error) {
	now := s.now()
	page := RoomsPage{Region: normalizeRegion(region), Bucket: bucket, Now: now}

	var all []models.RoomListingView
	// reads fail independently; one failing must not cancel the others
	var g errgroup.Group
	g.Go(func() error {
		regions, err := s.repo.ListRegions(ctx)
		if err != nil {
			return fmt.Errorf("service: failed to list regions: %w", err)
		}
		page.Regions = regions
		return nil
	})
	g.Go(func() error {
		rooms, err := s.repo.ListActiveRooms(ctx, now)
		if err != nil {
			return fmt.Errorf("service: failed to list rooms: %w", err)
		}
		all = rooms
		return nil
	})
	err := g.Wait()

	page.Stats = listings.HomeStats(all)
	page.Rooms = listings.FilterRooms(all, page.Region, bucket, now, s.loc)
	return page, err
}

// BrowseSecrets loads regions and active secret listings in parallel and applies the filters
func (s *BiddingService) BrowseSecrets(ctx context.Context, region string, bucket listings.TimeBucket) (SecretsPage, error) {
	now := s.now()
	page := SecretsPage{Region: normalizeRegion(region), Bucket: bucket, Now: now}

	var all []models.SecretListingView
	// reads fail independently; one failing must not cancel the others
	var g errgroup.Group
	g.Go(func() error {
		regions, err := s.repo.ListRegions(ctx)
		if err != nil {
			return fmt.Errorf("service: failed to list regions: %w", err)
		}
		page.Regions = regions
		return nil
	})
	g.Go(func() error {
		secrets, err := s.repo.ListActiveSecrets(ctx)
		if err != nil {
			return fmt.Errorf("service: failed to list secret listings: %w", err)
		}
		all = secrets
		return nil
	})
	err := g.Wait()

	page.Secrets = listings.FilterSecrets(all, page.Region, bucket, now, s.loc)
	return page, err
}

// Room loads one auction with the amounts the bid form needs
func (s *BiddingService) Room(ctx context.Context, id string) (RoomDetail, error) {
	room, err := s.repo.GetRoom(ctx, id)
	if err != nil {
		return RoomDetail{}, fmt.Errorf("service: failed to get room %s: %w", id, err)
	}

	now := s.now()
	current := room.CurrentBidOrStart()
	return RoomDetail{
		Room:      room,
		Current:   current,
		Suggested: SuggestedMinimum(current),
		QuickBids: QuickBids(current),
		Ended:     room.Status != models.StatusActive || !now.Before(room.AuctionEndsAt),
		Now:       now,
	}, nil
}

// Secret loads one public secret listing
func (s *BiddingService) Secret(ctx context.Context, id string) (models.SecretListingView, error) {
	secret, err := s.repo.GetSecret(ctx, id)
	if err != nil {
		return models.SecretListingView{}, fmt.Errorf("service: failed to get secret listing %s: %w", id, err)
	}
	return secret, nil
}

// Now is the instant pages render against
func (s *BiddingService) Now() time.Time {
	return s.now()
}

func normalizeRegion(region string) string {
	if region == "" {
		return listings.AllRegions
	}
	return region
}

package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"late-rooms/internal/backend"
	bidding "late-rooms/internal/biddingService"
	"late-rooms/internal/listings"
	"late-rooms/internal/marketerrors"
	"late-rooms/internal/models"
	"late-rooms/internal/session"
	"late-rooms/services/common/helpers"
	"late-rooms/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=market_handler.go -destination=mock_market_service.go -package=handler

type MarketServiceInterface interface {
	BrowseRooms(ctx context.Context, region string, bucket listings.TimeBucket) (bidding.RoomsPage, error)
	BrowseSecrets(ctx context.Context, region string, bucket listings.TimeBucket) (bidding.SecretsPage, error)
	Room(ctx context.Context, id string) (bidding.RoomDetail, error)
	Secret(ctx context.Context, id string) (models.SecretListingView, error)
	PlaceBid(ctx context.Context, user *models.User, listingID string, amount float64) (models.Bid, error)
	Now() time.Time
}

type MarketHandler struct {
	service  MarketServiceInterface
	auth     backend.Authenticator
	sessions *session.Store
}

func NewMarketHandler(service MarketServiceInterface, auth backend.Authenticator, sessions *session.Store) *MarketHandler {
	return &MarketHandler{service: service, auth: auth, sessions: sessions}
}

// BrowseRoomsHandler handles GET /?region=&time=
func (h *MarketHandler) BrowseRoomsHandler(c *gin.Context) {
	region := c.DefaultQuery("region", listings.AllRegions)
	bucket := listings.ParseBucket(c.Query("time"))

	page, err := h.service.BrowseRooms(c.Request.Context(), region, bucket)
	if err != nil {
		utils.Warn("BrowseRoomsHandler: failed to load rooms", map[string]any{
			"handler": "BrowseRoomsHandler",
			"region":  region,
			"bucket":  string(bucket),
			"error":   err.Error(),
		})
	}

	helpers.Render(c, http.StatusOK, "index.html", gin.H{
		"Title":   "Last-Minute Hotel Deals UK",
		"Page":    page,
		"Buckets": listings.RoomBuckets,
		"Flash":   h.sessions.PopFlash(c),
	})
}

// RoomHandler handles GET /room/:id
func (h *MarketHandler) RoomHandler(c *gin.Context) {
	id := c.Param("id")

	detail, err := h.service.Room(c.Request.Context(), id)
	if err != nil {
		h.roomUnavailable(c, "RoomHandler", id, err)
		return
	}

	h.renderRoom(c, http.StatusOK, detail, gin.H{"Flash": h.sessions.PopFlash(c)})
}

// PlaceBidHandler handles POST /room/:id/bid
func (h *MarketHandler) PlaceBidHandler(c *gin.Context) {
	id := c.Param("id")

	if session.CurrentUser(c) == nil {
		utils.SeeOther(c, "/login")
		return
	}

	var form helpers.BidForm
	if err := c.ShouldBind(&form); err != nil {
		h.bidFailed(c, id, "", marketerrors.Invalid(marketerrors.ErrInvalidBid, helpers.HandleBindError("PlaceBidHandler", err)))
		return
	}

	amount, err := form.ParseAmount()
	if err != nil {
		h.bidFailed(c, id, form.Amount(), err)
		return
	}

	user, ok := h.verifiedUser(c, id)
	if !ok {
		return
	}

	bid, err := h.service.PlaceBid(c.Request.Context(), user, id, amount)
	if err != nil {
		if errors.Is(err, marketerrors.ErrNotAuthenticated) {
			utils.SeeOther(c, "/login")
			return
		}
		h.bidFailed(c, id, form.Amount(), err)
		return
	}

	helpers.LogSuccess("PlaceBidHandler", "bid placed", map[string]any{
		"bid_id":     bid.ID,
		"listing_id": id,
		"user_id":    user.ID,
		"amount":     bid.Amount,
	})
	h.sessions.SetFlash(c, "Bid of £"+marketerrors.FormatPounds(bid.Amount)+" placed successfully!")
	utils.SeeOther(c, "/room/"+id)
}

// BrowseSecretsHandler handles GET /secret-hotels?region=&time=
func (h *MarketHandler) BrowseSecretsHandler(c *gin.Context) {
	region := c.DefaultQuery("region", listings.AllRegions)
	bucket := listings.ParseBucket(c.Query("time"))

	page, err := h.service.BrowseSecrets(c.Request.Context(), region, bucket)
	if err != nil {
		utils.Warn("BrowseSecretsHandler: failed to load secret hotels", map[string]any{
			"handler": "BrowseSecretsHandler",
			"region":  region,
			"bucket":  string(bucket),
			"error":   err.Error(),
		})
	}

	helpers.Render(c, http.StatusOK, "secret_hotels.html", gin.H{
		"Title":   "Secret Hotels",
		"Page":    page,
		"Buckets": listings.SecretBuckets,
	})
}

// SecretHandler handles GET /secret/:id
func (h *MarketHandler) SecretHandler(c *gin.Context) {
	id := c.Param("id")

	secret, err := h.service.Secret(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, marketerrors.ErrListingNotFound) {
			utils.Warn("SecretHandler: failed to load secret hotel", map[string]any{
				"handler":    "SecretHandler",
				"listing_id": id,
				"error":      err.Error(),
			})
		}
		helpers.RenderNotFound(c, "Secret hotel")
		return
	}

	helpers.Render(c, http.StatusOK, "secret.html", gin.H{
		"Title":  "Secret " + strconv.Itoa(secret.StarRating) + "-Star Hotel",
		"Secret": secret,
		"Now":    h.service.Now(),
	})
}

func (h *MarketHandler) renderRoom(c *gin.Context, status int, detail bidding.RoomDetail, extra gin.H) {
	data := gin.H{
		"Title":  detail.Room.HotelName,
		"Detail": detail,
		"Steps":  bidding.QuickBidSteps,
		"Amount": "",
	}
	for k, v := range extra {
		data[k] = v
	}
	helpers.Render(c, status, "room.html", data)
}

// bidFailed redraws the room page with the error next to the form and the amount kept
func (h *MarketHandler) bidFailed(c *gin.Context, id, amount string, bidErr error) {
	status, message := helpers.MapErrorToHTTP(bidErr)
	utils.Warn("PlaceBidHandler: bid rejected", map[string]any{
		"handler":    "PlaceBidHandler",
		"listing_id": id,
		"reason":     message,
		"error":      bidErr.Error(),
	})

	detail, err := h.service.Room(c.Request.Context(), id)
	if err != nil {
		h.roomUnavailable(c, "PlaceBidHandler", id, err)
		return
	}

	h.renderRoom(c, status, detail, gin.H{
		"Error":  marketerrors.UserMessage(bidErr),
		"Amount": amount,
	})
}

// verifiedUser asks the auth service whether the session's access token is
// still good. A revoked or expired token ends the session and sends the
// bidder to sign in again.
func (h *MarketHandler) verifiedUser(c *gin.Context, listingID string) (*models.User, bool) {
	data, _ := session.FromContext(c)

	user, err := h.auth.GetUser(c.Request.Context(), data.AccessToken)
	if err == nil {
		return user, true
	}

	if errors.Is(err, marketerrors.ErrNotAuthenticated) {
		utils.Warn("PlaceBidHandler: session no longer valid", map[string]any{
			"handler":    "PlaceBidHandler",
			"user_id":    data.User.ID,
			"listing_id": listingID,
			"error":      err.Error(),
		})
		h.sessions.Destroy(c)
		utils.SeeOther(c, "/login")
		return nil, false
	}

	h.bidFailed(c, listingID, "", fmt.Errorf("handler: verify session: %w", err))
	return nil, false
}

func (h *MarketHandler) roomUnavailable(c *gin.Context, handlerName, id string, err error) {
	if !errors.Is(err, marketerrors.ErrListingNotFound) {
		utils.Warn(handlerName+": failed to load room", map[string]any{
			"handler":    handlerName,
			"listing_id": id,
			"error":      err.Error(),
		})
	}
	helpers.RenderNotFound(c, "Room")
}

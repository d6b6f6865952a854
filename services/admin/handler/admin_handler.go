package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	admin "late-rooms/internal/adminService"
	"late-rooms/internal/backend"
	"late-rooms/internal/marketerrors"
	"late-rooms/internal/models"
	"late-rooms/internal/session"
	"late-rooms/services/common/helpers"
	"late-rooms/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=admin_handler.go -destination=mock_admin_service.go -package=handler

type AdminServiceInterface interface {
	Login(ctx context.Context, email, password string) (*backend.AuthSession, models.Partner, error)
	Logout(ctx context.Context, accessToken string) error
	Dashboard(ctx context.Context, partner models.Partner) (admin.Dashboard, error)
	Rooms(ctx context.Context, partner models.Partner) ([]admin.RoomRow, error)
	Room(ctx context.Context, partner models.Partner, id string) (admin.RoomRow, error)
	CancelRoom(ctx context.Context, partner models.Partner, id string) error
	Secrets(ctx context.Context, partner models.Partner) ([]admin.SecretRow, error)
	Secret(ctx context.Context, partner models.Partner, id string) (admin.SecretRow, error)
	CancelSecret(ctx context.Context, partner models.Partner, id string) error
	Hotels(ctx context.Context, partner models.Partner) ([]models.Hotel, error)
	Regions(ctx context.Context) ([]models.Region, error)
	Bookings(ctx context.Context, partner models.Partner) ([]models.Booking, error)
	CreateRoom(ctx context.Context, partner models.Partner, in admin.RoomInput) (models.RoomListing, error)
	CreateSecret(ctx context.Context, partner models.Partner, in admin.SecretInput) (models.SecretListing, error)
}

var starRatings = []int{1, 2, 3, 4, 5}

type AdminHandler struct {
	service      AdminServiceInterface
	sessions     *session.Store
	successDelay time.Duration
}

func NewAdminHandler(service AdminServiceInterface, sessions *session.Store, successDelay time.Duration) *AdminHandler {
	return &AdminHandler{service: service, sessions: sessions, successDelay: successDelay}
}

// LoginPageHandler handles GET /admin/login
func (h *AdminHandler) LoginPageHandler(c *gin.Context) {
	helpers.Render(c, http.StatusOK, "admin_login.html", gin.H{
		"Title": "Partner Login",
		"Form":  helpers.LoginForm{},
	})
}

// LoginHandler handles POST /admin/login
func (h *AdminHandler) LoginHandler(c *gin.Context) {
	var form helpers.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderLogin(c, http.StatusBadRequest, form, helpers.HandleBindError("AdminLoginHandler", err))
		return
	}

	auth, partner, err := h.service.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		if status >= http.StatusInternalServerError {
			status = http.StatusUnauthorized
		}
		utils.Warn("AdminLoginHandler: partner sign in failed", map[string]any{
			"handler": "AdminLoginHandler",
			"reason":  message,
			"error":   err.Error(),
		})
		h.renderLogin(c, status, form, marketerrors.UserMessage(err))
		return
	}

	if err := h.sessions.Create(c, session.Data{
		AccessToken:  auth.AccessToken,
		RefreshToken: auth.RefreshToken,
		ExpiresAt:    auth.ExpiresAt,
		User:         auth.User,
	}); err != nil {
		utils.Error("AdminLoginHandler: failed to create session", map[string]any{"error": err.Error()})
		h.renderLogin(c, http.StatusInternalServerError, form, "Something went wrong. Please try again.")
		return
	}

	helpers.LogSuccess("AdminLoginHandler", "partner signed in", map[string]any{
		"partner_id": partner.ID,
		"user_id":    auth.User.ID,
	})
	utils.SeeOther(c, "/admin")
}

// LogoutHandler handles POST /admin/logout
func (h *AdminHandler) LogoutHandler(c *gin.Context) {
	if data, ok := session.FromContext(c); ok {
		if err := h.service.Logout(c.Request.Context(), data.AccessToken); err != nil {
			utils.Warn("AdminLogoutHandler: backend sign out failed", map[string]any{"error": err.Error()})
		}
	}
	h.sessions.Destroy(c)
	utils.SeeOther(c, "/admin/login")
}

// DashboardHandler handles GET /admin
func (h *AdminHandler) DashboardHandler(c *gin.Context) {
	partner, _ := helpers.CurrentPartner(c)

	dash, err := h.service.Dashboard(c.Request.Context(), partner)
	if err != nil {
		h.logReadFailure("DashboardHandler", partner, err)
	}

	helpers.Render(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"Title":     "Dashboard",
		"Dashboard": dash,
	})
}

// RoomsHandler handles GET /admin/rooms
func (h *AdminHandler) RoomsHandler(c *gin.Context) {
	partner, _ := helpers.CurrentPartner(c)

	rows, err := h.service.Rooms(c.Request.Context(), partner)
	if err != nil {
		h.logReadFailure("RoomsHandler", partner, err)
	}

	helpers.Render(c, http.StatusOK, "admin_rooms.html", gin.H{
		"Title": "Room Auctions",
		"Rows":  rows,
		"Flash": h.sessions.PopFlash(c),
	})
}

// NewRoomPageHandler handles GET /admin/rooms/new
func (h *AdminHandler) NewRoomPageHandler(c *gin.Context) {
	h.renderRoomForm(c, http.StatusOK, helpers.DefaultRoomForm(), "")
}

// CreateRoomHandler handles POST /admin/rooms/new
func (h *AdminHandler) CreateRoomHandler(c *gin.Context) {
	partner, _ := helpers.CurrentPartner(c)

	var form helpers.RoomForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderRoomForm(c, http.StatusBadRequest, form, helpers.HandleBindError("CreateRoomHandler", err))
		return
	}

	listing, err := h.service.CreateRoom(c.Request.Context(), partner, form.Input())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.Warn("CreateRoomHandler: failed to create room listing", map[string]any{
			"handler":    "CreateRoomHandler",
			"partner_id": partner.ID,
			"reason":     message,
			"error":      err.Error(),
		})
		h.renderRoomForm(c, status, form, marketerrors.UserMessage(err))
		return
	}

	helpers.LogSuccess("CreateRoomHandler", "room listing created", map[string]any{
		"partner_id": partner.ID,
		"listing_id": listing.ID,
	})
	h.renderSuccess(c, "Room listed successfully!", "/admin/rooms")
}

// CancelRoomPageHandler handles GET /admin/rooms/:id/cancel
func (h *AdminHandler) CancelRoomPageHandler(c *gin.Context) {
	partner, _ := helpers.CurrentPartner(c)
	id := c.Param("id")

	row, err := h.service.Room(c.Request.Context(), partner, id)
	if err != nil {
		h.listingUnavailable(c, "CancelRoomPageHandler", partner, err)
		return
	}
	h.renderCancelRoom(c, http.StatusOK, row, "")
}

// CancelRoomHandler handles POST /admin/rooms/:id/cancel
func (h *AdminHandler) CancelRoomHandler(c *gin.Context) {
	partner, _ := helpers.CurrentPartner(c)
	id := c.Param("id")

	if err := h.service.CancelRoom(c.Request.Context(), partner, id); err != nil {
		if errors.Is(err, marketerrors.ErrListingNotFound) {
			helpers.RenderNotFound(c, "Listing")
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.Warn("CancelRoomHandler: failed to cancel room listing", map[string]any{
			"handler":    "CancelRoomHandler",
			"partner_id": partner.ID,
			"listing_id": id,
			"reason":     message,
			"error":      err.Error(),
		})

		row, rowErr := h.service.Room(c.Request.Context(), partner, id)
		if rowErr != nil {
			h.listingUnavailable(c, "CancelRoomHandler", partner, rowErr)
			return
		}
		h.renderCancelRoom(c, status, row, marketerrors.UserMessage(err))
		return
	}

	helpers.LogSuccess("CancelRoomHandler", "room listing cancelled", map[string]any{
		"partner_id": partner.ID,
		"listing_id": id,
	})
	h.sessions.SetFlash(c, "Listing cancelled")
	utils.SeeOther(c, "/admin/rooms")
}

// SecretsHandler handles GET /admin/secret-hotels
func (h *AdminHandler) SecretsHandler(c *gin.Context) {
	partner, _ := helpers.CurrentPartner(c)

	rows, err := h.service.Secrets(c.Request.Context(), partner)
	if err != nil {
		h.logReadFailure("SecretsHandler", partner, err)
	}

	helpers.Render(c, http.StatusOK, "admin_secrets.html", gin.H{
		"Title": "Secret Hotels",
		"Rows":  rows,
		"Flash": h.sessions.PopFlash(c),
	})
}

// NewSecretPageHandler handles GET /admin/secret-hotels/new
func (h *AdminHandler) NewSecretPageHandler(c *gin.Context) {
	h.renderSecretForm(c, http.StatusOK, helpers.DefaultSecretForm(), "")
}

// CreateSecretHandler handles POST /admin/secret-hotels/new
func (h *AdminHandler) CreateSecretHandler(c *gin.Context) {
	partner, _ := helpers.CurrentPartner(c)

	var form helpers.SecretForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderSecretForm(c, http.StatusBadRequest, form, helpers.HandleBindError("CreateSecretHandler", err))
		return
	}

	in, err := form.Input()
	if err != nil {
		h.renderSecretForm(c, http.StatusBadRequest, form, marketerrors.UserMessage(err))
		return
	}

	listing, err := h.service.CreateSecret(c.Request.Context(), partner, in)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.Warn("CreateSecretHandler: failed to create secret listing", map[string]any{
			"handler":    "CreateSecretHandler",
			"partner_id": partner.ID,
			"reason":     message,
			"error":      err.Error(),
		})
		h.renderSecretForm(c, status, form, marketerrors.UserMessage(err))
		return
	}

	helpers.LogSuccess("CreateSecretHandler", "secret listing created", map[string]any{
		"partner_id": partner.ID,
		"listing_id": listing.ID,
	})
	h.renderSuccess(c, "Secret hotel listed successfully!", "/admin/secret-hotels")
}

// CancelSecretPageHandler handles GET /admin/secret-hotels/:id/cancel
func (h *AdminHandler) CancelSecretPageHandler(c *gin.Context) {
	partner, _ := helpers.CurrentPartner(c)
	id := c.Param("id")

	row, err := h.service.Secret(c.Request.Context(), partner, id)
	if err != nil {
		h.listingUnavailable(c, "CancelSecretPageHandler", partner, err)
		return
	}
	h.renderCancelSecret(c, http.StatusOK, row, "")
}

// CancelSecretHandler handles POST /admin/secret-hotels/:id/cancel
func (h *AdminHandler) CancelSecretHandler(c *gin.Context) {
	partner, _ := helpers.CurrentPartner(c)
	id := c.Param("id")

	if err := h.service.CancelSecret(c.Request.Context(), partner, id); err != nil {
		if errors.Is(err, marketerrors.ErrListingNotFound) {
			helpers.RenderNotFound(c, "Listing")
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.Warn("CancelSecretHandler: failed to cancel secret listing", map[string]any{
			"handler":    "CancelSecretHandler",
			"partner_id": partner.ID,
			"listing_id": id,
			"reason":     message,
			"error":      err.Error(),
		})

		row, rowErr := h.service.Secret(c.Request.Context(), partner, id)
		if rowErr != nil {
			h.listingUnavailable(c, "CancelSecretHandler", partner, rowErr)
			return
		}
		h.renderCancelSecret(c, status, row, "This listing can no longer be cancelled")
		return
	}

	helpers.LogSuccess("CancelSecretHandler", "secret listing cancelled", map[string]any{
		"partner_id": partner.ID,
		"listing_id": id,
	})
	h.sessions.SetFlash(c, "Listing cancelled")
	utils.SeeOther(c, "/admin/secret-hotels")
}

// BookingsHandler handles GET /admin/bookings
func (h *AdminHandler) BookingsHandler(c *gin.Context) {
	partner, _ := helpers.CurrentPartner(c)

	bookings, err := h.service.Bookings(c.Request.Context(), partner)
	if err != nil {
		h.logReadFailure("BookingsHandler", partner, err)
	}

	helpers.Render(c, http.StatusOK, "admin_bookings.html", gin.H{
		"Title":    "Bookings",
		"Bookings": bookings,
	})
}

func (h *AdminHandler) renderLogin(c *gin.Context, status int, form helpers.LoginForm, message string) {
	form.Password = ""
	helpers.Render(c, status, "admin_login.html", gin.H{
		"Title": "Partner Login",
		"Form":  form,
		"Error": message,
	})
}

func (h *AdminHandler) renderRoomForm(c *gin.Context, status int, form helpers.RoomForm, message string) {
	partner, _ := helpers.CurrentPartner(c)

	hotels, err := h.service.Hotels(c.Request.Context(), partner)
	if err != nil {
		h.logReadFailure("NewRoomPageHandler", partner, err)
	}

	helpers.Render(c, status, "admin_room_new.html", gin.H{
		"Title":        "Add Room Auction",
		"Form":         form,
		"Hotels":       hotels,
		"CheckInTimes": admin.CheckInTimes,
		"GuestCounts":  admin.GuestCounts,
		"AuctionHours": admin.AuctionHours,
		"Error":        message,
	})
}

func (h *AdminHandler) renderSecretForm(c *gin.Context, status int, form helpers.SecretForm, message string) {
	regions, err := h.service.Regions(c.Request.Context())
	if err != nil {
		partner, _ := helpers.CurrentPartner(c)
		h.logReadFailure("NewSecretPageHandler", partner, err)
	}

	helpers.Render(c, status, "admin_secret_new.html", gin.H{
		"Title":        "Add Secret Hotel",
		"Form":         form,
		"Regions":      regions,
		"StarRatings":  starRatings,
		"CheckInTimes": admin.CheckInTimes,
		"GuestCounts":  admin.GuestCounts,
		"Error":        message,
	})
}

func (h *AdminHandler) renderCancelRoom(c *gin.Context, status int, row admin.RoomRow, message string) {
	name := row.Listing.RoomType
	if row.Listing.Hotel != nil {
		name = row.Listing.Hotel.Name + " · " + name
	}
	if message == "" && !row.CanCancel {
		message = "This auction has already ended or been closed"
	}
	helpers.Render(c, status, "admin_confirm_cancel.html", gin.H{
		"Title":  "Cancel Listing",
		"Name":   name,
		"Action": "/admin/rooms/" + row.Listing.ID + "/cancel",
		"Back":   "/admin/rooms",
		"Error":  message,
	})
}

func (h *AdminHandler) renderCancelSecret(c *gin.Context, status int, row admin.SecretRow, message string) {
	if message == "" && !row.CanCancel {
		message = "This listing can no longer be cancelled"
	}
	helpers.Render(c, status, "admin_confirm_cancel.html", gin.H{
		"Title":  "Cancel Listing",
		"Name":   row.Listing.ActualHotelName + " · " + row.Listing.RoomType,
		"Action": "/admin/secret-hotels/" + row.Listing.ID + "/cancel",
		"Back":   "/admin/secret-hotels",
		"Error":  message,
	})
}

// renderSuccess shows the confirmation and sends the browser to next after the configured delay
func (h *AdminHandler) renderSuccess(c *gin.Context, message, next string) {
	helpers.Render(c, http.StatusOK, "admin_success.html", gin.H{
		"Title":        "Listed",
		"Message":      message,
		"Next":         next,
		"DelayMS":      h.successDelay.Milliseconds(),
		"DelaySeconds": int(math.Ceil(h.successDelay.Seconds())),
	})
}

func (h *AdminHandler) listingUnavailable(c *gin.Context, handlerName string, partner models.Partner, err error) {
	if !errors.Is(err, marketerrors.ErrListingNotFound) {
		h.logReadFailure(handlerName, partner, err)
	}
	helpers.RenderNotFound(c, "Listing")
}

func (h *AdminHandler) logReadFailure(handlerName string, partner models.Partner, err error) {
	utils.Warn(handlerName+": read failed", map[string]any{
		"handler":    handlerName,
		"partner_id": partner.ID,
		"error":      err.Error(),
	})
}

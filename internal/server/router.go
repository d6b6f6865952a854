package server

import (
	"fmt"
	"net/http"
	"time"

	"late-rooms/internal/backend"
	"late-rooms/internal/realtime"
	"late-rooms/internal/session"
	adminhandler "late-rooms/services/admin/handler"
	"late-rooms/services/common/helpers"
	markethandler "late-rooms/services/market/handler"
	"late-rooms/utils"
	"late-rooms/web"

	"github.com/gin-gonic/gin"
)

// PortalService is what the partner portal needs: its pages plus the session-to-partner lookup
type PortalService interface {
	adminhandler.AdminServiceInterface
	PartnerResolver
}

// Dependencies are the components the router wires into handlers
type Dependencies struct {
	Market   markethandler.MarketServiceInterface
	Portal   PortalService
	Auth     backend.Authenticator
	Rooms    realtime.RoomSource
	Sessions *session.Store

	Location             *time.Location
	SuccessRedirectDelay time.Duration
	CountdownOptions     []realtime.Option
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(deps Dependencies) (*gin.Engine, error) {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(LoadSession(deps.Sessions))

	tmpl, err := web.Templates(utils.TemplateFuncs(deps.Location))
	if err != nil {
		return nil, fmt.Errorf("server: failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", web.Static())

	marketHandler := markethandler.NewMarketHandler(deps.Market, deps.Auth, deps.Sessions)
	adminHandler := adminhandler.NewAdminHandler(deps.Portal, deps.Sessions, deps.SuccessRedirectDelay)
	countdownHandler := realtime.NewCountdownHandler(deps.Rooms, deps.CountdownOptions...)

	router.GET("/health", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, gin.H{"time": time.Now().UTC()}, "ok")
	})
	router.GET("/ws/rooms/:id/countdown", countdownHandler.Serve)

	router.GET("/", marketHandler.BrowseRoomsHandler)
	router.GET("/secret-hotels", marketHandler.BrowseSecretsHandler)
	router.GET("/secret/:id", marketHandler.SecretHandler)

	rooms := router.Group("/room")
	{
		rooms.GET("/:id", marketHandler.RoomHandler)
		rooms.POST("/:id/bid", marketHandler.PlaceBidHandler)
	}

	guest := router.Group("", RedirectIfSignedIn("/"))
	{
		guest.GET("/login", marketHandler.LoginPageHandler)
		guest.POST("/login", marketHandler.LoginHandler)
		guest.GET("/signup", marketHandler.SignupPageHandler)
		guest.POST("/signup", marketHandler.SignupHandler)
	}
	router.POST("/logout", marketHandler.LogoutHandler)

	router.GET("/admin/login", adminHandler.LoginPageHandler)
	router.POST("/admin/login", adminHandler.LoginHandler)
	router.POST("/admin/logout", adminHandler.LogoutHandler)

	portal := router.Group("/admin", RequirePartner(deps.Portal))
	{
		portal.GET("", adminHandler.DashboardHandler)
		portal.GET("/bookings", adminHandler.BookingsHandler)

		portal.GET("/rooms", adminHandler.RoomsHandler)
		portal.GET("/rooms/new", adminHandler.NewRoomPageHandler)
		portal.POST("/rooms/new", adminHandler.CreateRoomHandler)
		portal.GET("/rooms/:id/cancel", adminHandler.CancelRoomPageHandler)
		portal.POST("/rooms/:id/cancel", adminHandler.CancelRoomHandler)

		portal.GET("/secret-hotels", adminHandler.SecretsHandler)
		portal.GET("/secret-hotels/new", adminHandler.NewSecretPageHandler)
		portal.POST("/secret-hotels/new", adminHandler.CreateSecretHandler)
		portal.GET("/secret-hotels/:id/cancel", adminHandler.CancelSecretPageHandler)
		portal.POST("/secret-hotels/:id/cancel", adminHandler.CancelSecretHandler)
	}

	router.NoRoute(func(c *gin.Context) {
		helpers.RenderNotFound(c, "Page")
	})

	return router, nil
}

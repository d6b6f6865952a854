package server

import (
	"context"
	"errors"
	"time"

	"late-rooms/internal/models"
	"late-rooms/internal/session"
	"late-rooms/services/common/helpers"
	"late-rooms/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=middleware.go -destination=mock_partner_resolver.go -package=server

const requestIDHeader = "X-Request-ID"

// PartnerResolver maps a session's access token to the partner behind it
type PartnerResolver interface {
	ResolvePartner(ctx context.Context, accessToken string) (models.User, models.Partner, error)
}

// RequestLoggerMiddleware logs incoming requests with timing and tags each with a request id
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	id := utils.RequestID(c.GetHeader(requestIDHeader))
	c.Set("request_id", id)
	c.Header(requestIDHeader, id)

	c.Next() // process request

	fields := map[string]any{
		"request_id": id,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
	}
	if len(c.Errors) > 0 {
		fields["errors"] = c.Errors.String()
	}
	utils.Info("HTTP Request", fields)
}

// LoadSession attaches the signed-in user, if any, so handlers and page headers can see it
func LoadSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := store.Get(c)
		switch {
		case err == nil:
			session.Attach(c, data)
		case errors.Is(err, session.ErrNoSession):
		default:
			utils.Debug("ignoring unusable session cookie", map[string]any{"error": err.Error()})
		}
		c.Next()
	}
}

// RequirePartner guards the partner portal. Anyone who is not a signed-in
// partner is sent to the portal login page.
func RequirePartner(resolver PartnerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, ok := session.FromContext(c)
		if !ok {
			utils.SeeOther(c, "/admin/login")
			return
		}

		user, partner, err := resolver.ResolvePartner(c.Request.Context(), data.AccessToken)
		if err != nil {
			utils.Warn("RequirePartner: access denied", map[string]any{
				"path":    c.Request.URL.Path,
				"user_id": data.User.ID,
				"error":   err.Error(),
			})
			utils.SeeOther(c, "/admin/login")
			return
		}

		data.User = user
		helpers.SetPartner(c, partner)
		c.Next()
	}
}

// RedirectIfSignedIn keeps signed-in customers off the login and signup pages
func RedirectIfSignedIn(target string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.CurrentUser(c) != nil {
			utils.SeeOther(c, target)
			return
		}
		c.Next()
	}
}

package helpers

import (
	"errors"
	"net/http"
	"reflect"

	"late-rooms/internal/marketerrors"
	"late-rooms/internal/models"
	"late-rooms/internal/session"
	"late-rooms/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const partnerKey = "partner"

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	var invalid *marketerrors.ValidationError
	var backendErr *marketerrors.BackendError

	switch {
	case errors.Is(err, marketerrors.ErrListingNotFound), errors.Is(err, marketerrors.ErrHotelNotFound):
		return http.StatusNotFound, "listing not found"
	case errors.Is(err, marketerrors.ErrNotAuthenticated), errors.Is(err, marketerrors.ErrSessionExpired):
		return http.StatusUnauthorized, "not authenticated"
	case errors.Is(err, marketerrors.ErrNotPartner), errors.Is(err, marketerrors.ErrPartnerNotFound):
		return http.StatusForbidden, "not a hotel partner"
	case errors.Is(err, marketerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, marketerrors.ErrAuctionEnded):
		return http.StatusConflict, "auction has ended"
	case errors.As(err, &invalid),
		errors.Is(err, marketerrors.ErrInvalidBid),
		errors.Is(err, marketerrors.ErrInvalidListing),
		errors.Is(err, marketerrors.ErrStartingTooLow):
		return http.StatusBadRequest, "invalid request"
	case errors.As(err, &backendErr):
		return http.StatusBadGateway, "backend request failed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// HandleBindError logs a form binding failure and returns the message the form should show
func HandleBindError(handlerName string, err error) string {
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
	return FormErrorMessage(err)
}

// FormErrorMessage turns a binding error into one line of text for the form
func FormErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Please check the form and try again"
	}

	fe := verrs[0]
	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "gtefield":
		if fe.Field() == "StartingBid" {
			return marketerrors.ErrStartingTooLow.Error()
		}
		return label + " is too low"
	case "gt":
		return label + " must be greater than zero"
	case "email":
		return "Please enter a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return label + " must be at least " + fe.Param() + " characters"
		}
		return "Please choose a valid " + lowerFirst(label)
	case "max", "oneof":
		return "Please choose a valid " + lowerFirst(label)
	default:
		return label + " is invalid"
	}
}

// Render writes an HTML page with the values every layout needs
func Render(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["User"]; !ok {
		data["User"] = session.CurrentUser(c)
	}
	if p, ok := CurrentPartner(c); ok {
		if _, set := data["Partner"]; !set {
			data["Partner"] = p
		}
	}
	data["Path"] = c.Request.URL.Path
	c.HTML(status, page, data)
}

// RenderNotFound shows the not-found page
func RenderNotFound(c *gin.Context, what string) {
	Render(c, http.StatusNotFound, "not_found.html", gin.H{"Title": "Not Found", "What": what})
}

// SetPartner stores the resolved partner on the request
func SetPartner(c *gin.Context, p models.Partner) {
	c.Set(partnerKey, p)
}

// CurrentPartner returns the partner resolved by the admin middleware
func CurrentPartner(c *gin.Context) (models.Partner, bool) {
	v, ok := c.Get(partnerKey)
	if !ok {
		return models.Partner{}, false
	}
	p, ok := v.(models.Partner)
	return p, ok
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}

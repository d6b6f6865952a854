package marketerrors

import (
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
)

// Repository-level errors
var (
	ErrListingNotFound = errors.New("listing not found")
	ErrPartnerNotFound = errors.New("partner not found")
	ErrHotelNotFound   = errors.New("hotel not found")
)

// Auth errors
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionExpired   = errors.New("session expired")
	ErrNotPartner       = errors.New("This account is not registered as a hotel partner. Please contact support.")
)

// business logic errors
var (
	ErrInvalidBid      = errors.New("invalid bid")
	ErrBidTooLow       = errors.New("bid amount too low")
	ErrAuctionEnded    = errors.New("This auction has ended")
	ErrInvalidListing  = errors.New("invalid listing")
	ErrStartingTooLow  = errors.New("Starting bid must be at least the minimum bid")
	ErrListingNotOwned = errors.New("listing not owned by partner")
)

// BidTooLowError rejects a bid that does not beat the last fetched current bid.
// Its message is shown to the bidder as-is.
type BidTooLowError struct {
	Current float64
}

func (e *BidTooLowError) Error() string {
	return "Bid must be higher than £" + FormatPounds(e.Current)
}

func (e *BidTooLowError) Is(target error) bool { return target == ErrBidTooLow }

// ValidationError is a form input problem. Message is shown to the user;
// Kind is the sentinel callers match with errors.Is.
type ValidationError struct {
	Message string
	Kind    error
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Kind }

// Invalid builds a ValidationError of the given kind
func Invalid(kind error, message string) error {
	return &ValidationError{Message: message, Kind: kind}
}

// BackendError carries the raw message returned by the external backend.
// It is rendered verbatim next to the form that triggered it.
type BackendError struct {
	Message string
	Err     error
}

func (e *BackendError) Error() string { return e.Message }

func (e *BackendError) Unwrap() error { return e.Err }

// FromBackend converts a database or auth failure into a BackendError,
// keeping the server's own message text when there is one.
func FromBackend(err error) error {
	if err == nil {
		return nil
	}
	var be *BackendError
	if errors.As(err, &be) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &BackendError{Message: pgErr.Message, Err: err}
	}
	return &BackendError{Message: err.Error(), Err: err}
}

// UserMessage returns the text a form should display for err
func UserMessage(err error) string {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Message
	}
	var invalid *ValidationError
	if errors.As(err, &invalid) {
		return invalid.Message
	}
	var low *BidTooLowError
	if errors.As(err, &low) {
		return low.Error()
	}
	for _, known := range []error{ErrAuctionEnded, ErrStartingTooLow, ErrNotPartner} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return err.Error()
}

// FormatPounds prints an amount the way the site shows prices: 120, 120.5, 99.99
func FormatPounds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

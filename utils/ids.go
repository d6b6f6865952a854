package utils

import (
	"github.com/google/uuid"
)

// NewRecordID returns a time-ordered id for new bids and listings, so rows
// inserted later also sort later in the backend's primary key index.
func NewRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// NewToken returns an opaque random token
func NewToken() string {
	return uuid.NewString()
}

// RequestID keeps a caller supplied X-Request-ID when it is a UUID and mints one otherwise
func RequestID(header string) string {
	if id, err := uuid.Parse(header); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

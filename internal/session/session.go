// Package session keeps the signed-in user's backend tokens in an
// HMAC-signed cookie, plus a one-shot flash message cookie.
package session

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"late-rooms/internal/models"
	"late-rooms/utils"

	"github.com/gin-gonic/gin"
)

const (
	CookieName      = "late_rooms_session"
	FlashCookieName = "late_rooms_flash"

	contextKey = "session"
	flashTTL   = time.Minute
)

var (
	ErrNoSession        = errors.New("no session cookie found")
	ErrInvalidSignature = errors.New("signature verification failed")
	ErrExpired          = errors.New("session expired")
)

// Data is what the session cookie carries. The customer site and the
// partner portal share one session.
type Data struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token,omitempty"`
	User         models.User `json:"user"`
	ExpiresAt    time.Time   `json:"expires_at"`
}

// Store signs and verifies session cookies
type Store struct {
	key    []byte
	secure bool
	maxAge time.Duration
}

// NewStore creates a cookie store. An empty secret gets a random per-process
// key, which is only acceptable in development.
func NewStore(secret string, secure bool, maxAge time.Duration) *Store {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			utils.Fatal("failed to generate session key", map[string]any{"error": err.Error()})
		}
		utils.Warn("no session secret configured, using a random key", nil)
	}
	if maxAge <= 0 {
		maxAge = 7 * 24 * time.Hour
	}
	return &Store{key: key, secure: secure, maxAge: maxAge}
}

// Create stores the session on the response. The session ends when the
// backend access token does, or after maxAge, whichever comes first.
func (s *Store) Create(c *gin.Context, data Data) error {
	now := time.Now()
	if limit := now.Add(s.maxAge); data.ExpiresAt.IsZero() || data.ExpiresAt.After(limit) {
		data.ExpiresAt = limit
	}
	if !data.ExpiresAt.After(now) {
		return fmt.Errorf("session for user %s: %w", data.User.ID, ErrExpired)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	s.setCookie(c, CookieName, s.sign(raw), data.ExpiresAt.Sub(now))
	c.Set(contextKey, &data)

	utils.Info("session created", map[string]any{"user_id": data.User.ID})
	return nil
}

// Get reads and verifies the session cookie. Expired sessions are cleared.
func (s *Store) Get(c *gin.Context) (*Data, error) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie == "" {
		return nil, ErrNoSession
	}

	raw, err := s.verify(cookie)
	if err != nil {
		return nil, fmt.Errorf("invalid session: %w", err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if !data.ExpiresAt.IsZero() && time.Now().After(data.ExpiresAt) {
		s.Destroy(c)
		return nil, ErrExpired
	}
	return &data, nil
}

// Destroy clears the session cookie
func (s *Store) Destroy(c *gin.Context) {
	s.setCookie(c, CookieName, "", -1)
	c.Set(contextKey, (*Data)(nil))
}

// SetFlash stores a message to show on the next page view
func (s *Store) SetFlash(c *gin.Context, message string) {
	s.setCookie(c, FlashCookieName, s.sign([]byte(message)), flashTTL)
}

// PopFlash returns and clears the pending flash message, if any
func (s *Store) PopFlash(c *gin.Context) string {
	cookie, err := c.Cookie(FlashCookieName)
	if err != nil || cookie == "" {
		return ""
	}
	s.setCookie(c, FlashCookieName, "", -1)

	raw, err := s.verify(cookie)
	if err != nil {
		return ""
	}
	return string(raw)
}

// Attach puts the session on the request context for handlers and templates
func Attach(c *gin.Context, data *Data) {
	c.Set(contextKey, data)
}

// FromContext returns the session attached by the middleware
func FromContext(c *gin.Context) (*Data, bool) {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil, false
	}
	data, ok := v.(*Data)
	return data, ok && data != nil
}

// CurrentUser is the signed-in user, or nil
func CurrentUser(c *gin.Context) *models.User {
	data, ok := FromContext(c)
	if !ok {
		return nil
	}
	return &data.User
}

func (s *Store) setCookie(c *gin.Context, name, value string, maxAge time.Duration) {
	seconds := int(maxAge / time.Second)
	if maxAge < 0 {
		seconds = -1
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, seconds, "/", "", s.secure, true)
}

// sign appends an HMAC-SHA256 of data and base64-encodes the result
func (s *Store) sign(data []byte) string {
	h := hmac.New(sha256.New, s.key)
	h.Write(data)
	combined := append(append([]byte(nil), data...), h.Sum(nil)...)
	return base64.URLEncoding.EncodeToString(combined)
}

func (s *Store) verify(encoded string) ([]byte, error) {
	combined, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode data: %w", err)
	}
	if len(combined) < sha256.Size {
		return nil, ErrInvalidSignature
	}

	data := combined[:len(combined)-sha256.Size]
	got := combined[len(combined)-sha256.Size:]

	h := hmac.New(sha256.New, s.key)
	h.Write(data)
	if !hmac.Equal(got, h.Sum(nil)) {
		return nil, ErrInvalidSignature
	}
	return data, nil
}

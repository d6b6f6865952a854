package backend

import (
	"context"
	"strings"
	"sync"
	"time"

	"late-rooms/internal/marketerrors"
	"late-rooms/internal/models"
	"late-rooms/utils"
)

const minPasswordLength = 6

type memoryAccount struct {
	password string
	user     models.User
}

type memoryToken struct {
	userID    string
	expiresAt time.Time
}

// MemoryAuth is an in-process stand-in for the auth service, used by the
// memory backend mode and the integration tests. Its error texts match the
// hosted service so pages behave the same.
type MemoryAuth struct {
	mu       sync.RWMutex
	accounts map[string]memoryAccount // key: lower-cased email
	tokens   map[string]memoryToken   // key: access token
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryAuth creates an empty in-memory auth service
func NewMemoryAuth() *MemoryAuth {
	return &MemoryAuth{
		accounts: make(map[string]memoryAccount),
		tokens:   make(map[string]memoryToken),
		ttl:      time.Hour,
		now:      time.Now,
	}
}

// WithTokenTTL sets how long issued access tokens stay valid
func (m *MemoryAuth) WithTokenTTL(ttl time.Duration) *MemoryAuth {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ttl = ttl
	return m
}

// AddUser registers an account directly; used for seeding
func (m *MemoryAuth) AddUser(id, email, password, fullName string) models.User {
	m.mu.Lock()
	defer m.mu.Unlock()

	user := models.User{ID: id, Email: email, FullName: fullName}
	m.accounts[strings.ToLower(email)] = memoryAccount{password: password, user: user}
	return user
}

func (m *MemoryAuth) SignIn(_ context.Context, email, password string) (*AuthSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	acct, ok := m.accounts[strings.ToLower(strings.TrimSpace(email))]
	if !ok || acct.password != password {
		return nil, &marketerrors.BackendError{Message: "Invalid login credentials"}
	}
	return m.issueLocked(acct.user), nil
}

func (m *MemoryAuth) SignUp(_ context.Context, email, password, fullName string) (*AuthSession, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, &marketerrors.BackendError{Message: "Unable to validate email address: invalid format"}
	}
	if len(password) < minPasswordLength {
		return nil, &marketerrors.BackendError{Message: "Password should be at least 6 characters"}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(email)
	if _, exists := m.accounts[key]; exists {
		return nil, &marketerrors.BackendError{Message: "User already registered"}
	}

	user := models.User{ID: utils.NewRecordID(), Email: email, FullName: fullName}
	m.accounts[key] = memoryAccount{password: password, user: user}
	return m.issueLocked(user), nil
}

func (m *MemoryAuth) SignOut(_ context.Context, accessToken string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, accessToken)
	return nil
}

func (m *MemoryAuth) GetUser(_ context.Context, accessToken string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tok, ok := m.tokens[accessToken]
	if !ok {
		return nil, &marketerrors.BackendError{Message: "invalid JWT", Err: marketerrors.ErrNotAuthenticated}
	}
	if !m.now().Before(tok.expiresAt) {
		return nil, &marketerrors.BackendError{Message: "invalid JWT: token is expired", Err: marketerrors.ErrNotAuthenticated}
	}
	for _, acct := range m.accounts {
		if acct.user.ID == tok.userID {
			u := acct.user
			return &u, nil
		}
	}
	return nil, &marketerrors.BackendError{Message: "User not found", Err: marketerrors.ErrNotAuthenticated}
}

func (m *MemoryAuth) issueLocked(user models.User) *AuthSession {
	token := utils.NewToken()
	expiresAt := m.now().Add(m.ttl)
	m.tokens[token] = memoryToken{userID: user.ID, expiresAt: expiresAt}
	return &AuthSession{
		AccessToken:  token,
		RefreshToken: utils.NewToken(),
		ExpiresAt:    expiresAt,
		User:         user,
	}
}

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"late-rooms/internal/marketerrors"
	"late-rooms/internal/models"
)

// AuthSession is what a successful sign-in hands back
type AuthSession struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	User         models.User
}

// Authenticator is the backend auth service as seen by the app
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*AuthSession, error)
	// SignUp returns a session with an empty AccessToken when the backend
	// requires email confirmation before the first sign-in.
	SignUp(ctx context.Context, email, password, fullName string) (*AuthSession, error)
	SignOut(ctx context.Context, accessToken string) error
	GetUser(ctx context.Context, accessToken string) (*models.User, error)
}

// AuthClient talks to the hosted auth REST API (/auth/v1/...)
type AuthClient struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

// NewAuthClient creates a client for the auth service at baseURL
func NewAuthClient(baseURL, anonKey string, timeout time.Duration) *AuthClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &AuthClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type authUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		FullName string `json:"full_name"`
	} `json:"user_metadata"`
}

func (u authUser) toModel() models.User {
	return models.User{ID: u.ID, Email: u.Email, FullName: u.UserMetadata.FullName}
}

type tokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresIn    int       `json:"expires_in"`
	ExpiresAt    int64     `json:"expires_at"`
	User         *authUser `json:"user"`

	// signup without auto-confirm returns the bare user
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (r tokenResponse) toSession() *AuthSession {
	s := &AuthSession{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
	}
	switch {
	case r.ExpiresAt > 0:
		s.ExpiresAt = time.Unix(r.ExpiresAt, 0)
	case r.ExpiresIn > 0:
		s.ExpiresAt = time.Now().Add(time.Duration(r.ExpiresIn) * time.Second)
	}
	if r.User != nil {
		s.User = r.User.toModel()
	} else {
		s.User = models.User{ID: r.ID, Email: r.Email}
	}
	return s
}

// SignIn exchanges email and password for a session
func (a *AuthClient) SignIn(ctx context.Context, email, password string) (*AuthSession, error) {
	body := map[string]any{"email": email, "password": password}

	var resp tokenResponse
	if err := a.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", body, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, &marketerrors.BackendError{Message: "Invalid login credentials"}
	}
	return resp.toSession(), nil
}

// SignUp registers a customer with their full name as user metadata
func (a *AuthClient) SignUp(ctx context.Context, email, password, fullName string) (*AuthSession, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]string{"full_name": fullName},
	}

	var resp tokenResponse
	if err := a.do(ctx, http.MethodPost, "/auth/v1/signup", "", body, &resp); err != nil {
		return nil, err
	}
	return resp.toSession(), nil
}

// SignOut revokes the access token on the backend
func (a *AuthClient) SignOut(ctx context.Context, accessToken string) error {
	return a.do(ctx, http.MethodPost, "/auth/v1/logout", accessToken, nil, nil)
}

// GetUser resolves an access token to its user
func (a *AuthClient) GetUser(ctx context.Context, accessToken string) (*models.User, error) {
	if accessToken == "" {
		return nil, marketerrors.ErrNotAuthenticated
	}

	var u authUser
	if err := a.do(ctx, http.MethodGet, "/auth/v1/user", accessToken, nil, &u); err != nil {
		return nil, err
	}
	user := u.toModel()
	return &user, nil
}

func (a *AuthClient) do(ctx context.Context, method, path, accessToken string, in, out any) error {
	var reader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("auth: marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("auth: create request: %w", err)
	}
	req.Header.Set("apikey", a.anonKey)
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	} else {
		req.Header.Set("Authorization", "Bearer "+a.anonKey)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return marketerrors.FromBackend(fmt.Errorf("auth: %s %s: %w", method, redact(path), err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("auth: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &marketerrors.BackendError{
			Message: errorMessage(raw, resp.StatusCode),
			Err:     statusError(resp.StatusCode),
		}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("auth: decode response: %w", err)
	}
	return nil
}

// errorMessage picks the human-readable text out of an auth error body
func errorMessage(raw []byte, status int) string {
	var body struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
		Error            string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		for _, m := range []string{body.Msg, body.Message, body.ErrorDescription, body.Error} {
			if m != "" {
				return m
			}
		}
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}
	return http.StatusText(status)
}

func statusError(status int) error {
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return marketerrors.ErrNotAuthenticated
	}
	return errors.New(http.StatusText(status))
}

func redact(path string) string {
	u, err := url.Parse(path)
	if err != nil {
		return path
	}
	return u.Path
}

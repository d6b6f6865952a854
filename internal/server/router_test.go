package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	admin "late-rooms/internal/adminService"
	"late-rooms/internal/backend"
	bidding "late-rooms/internal/biddingService"
	"late-rooms/internal/repository"
	"late-rooms/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newMemoryRouter(t *testing.T) *gin.Engine {
	t.Helper()
	now := time.Now()

	repo := repository.NewMemoryRepo()
	repo.SeedDemo(now, time.UTC)

	auth := backend.NewMemoryAuth()
	auth.AddUser(repository.DemoPartnerUser, repository.DemoPartnerEmail, repository.DemoPassword, "Eleanor Price")
	auth.AddUser(repository.DemoCustomerID, repository.DemoCustomerEmail, repository.DemoPassword, "Guest Tester")

	router, err := SetupRouter(Dependencies{
		Market:               bidding.NewBiddingService(repo, bidding.WithLocation(time.UTC)),
		Portal:               admin.NewAdminService(auth, repo, admin.WithLocation(time.UTC)),
		Auth:                 auth,
		Rooms:                repo,
		Sessions:             session.NewStore("test-secret", false, time.Hour),
		Location:             time.UTC,
		SuccessRedirectDelay: time.Second,
	})
	require.NoError(t, err)
	return router
}

func postForm(r *gin.Engine, target string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSetupRouter_Health(t *testing.T) {
	r := newMemoryRouter(t)

	w := serve(r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "ok", body["message"])
}

func TestSetupRouter_StaticAndNotFound(t *testing.T) {
	r := newMemoryRouter(t)

	w := serve(r, http.MethodGet, "/static/app.css", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodGet, "/no-such-page", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Page not found")
}

func TestSetupRouter_PortalRequiresPartner(t *testing.T) {
	r := newMemoryRouter(t)

	for _, path := range []string{"/admin", "/admin/rooms", "/admin/secret-hotels/new", "/admin/bookings"} {
		w := serve(r, http.MethodGet, path, nil)
		require.Equal(t, http.StatusSeeOther, w.Code, path)
		require.Equal(t, "/admin/login", w.Header().Get("Location"), path)
	}

	// a customer session is not enough
	w := postForm(r, "/login", url.Values{
		"email":    {repository.DemoCustomerEmail},
		"password": {repository.DemoPassword},
	}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	customer := w.Result().Cookies()

	w = serve(r, http.MethodGet, "/admin", customer)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/admin/login", w.Header().Get("Location"))

	w = postForm(r, "/admin/login", url.Values{
		"email":    {repository.DemoCustomerEmail},
		"password": {repository.DemoPassword},
	}, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "not registered as a hotel partner")
}

func TestSetupRouter_PartnerSignIn(t *testing.T) {
	r := newMemoryRouter(t)

	w := postForm(r, "/admin/login", url.Values{
		"email":    {repository.DemoPartnerEmail},
		"password": {repository.DemoPassword},
	}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/admin", w.Header().Get("Location"))
	cookies := w.Result().Cookies()

	w = serve(r, http.MethodGet, "/admin", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Welcome back, Eleanor")
	require.Contains(t, w.Body.String(), "Grosvenor Collection")

	w = postForm(r, "/admin/logout", url.Values{}, cookies)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/admin/login", w.Header().Get("Location"))

	// the token was revoked with the backend, so the old cookie no longer opens the portal
	w = serve(r, http.MethodGet, "/admin", cookies)
	require.Equal(t, http.StatusSeeOther, w.Code)
}

func TestSetupRouter_SignedInCustomerSkipsLogin(t *testing.T) {
	r := newMemoryRouter(t)

	w := serve(r, http.MethodGet, "/login", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = postForm(r, "/login", url.Values{
		"email":    {repository.DemoCustomerEmail},
		"password": {repository.DemoPassword},
	}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	cookies := w.Result().Cookies()

	for _, path := range []string{"/login", "/signup"} {
		w = serve(r, http.MethodGet, path, cookies)
		require.Equal(t, http.StatusSeeOther, w.Code, path)
		require.Equal(t, "/", w.Header().Get("Location"), path)
	}
}

package integrationtests

import (
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	admin "late-rooms/internal/adminService"
	"late-rooms/internal/backend"
	bidding "late-rooms/internal/biddingService"
	"late-rooms/internal/repository"
	"late-rooms/internal/server"
	"late-rooms/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var siteURL = &url.URL{Scheme: "http", Host: "laterooms.test", Path: "/"}

// SetupTestRouter initializes the full router on the seeded in-memory backend.
func SetupTestRouter(t *testing.T) (*gin.Engine, *repository.MemoryRepo) {
	t.Helper()
	return SetupTestRouterWithTokenTTL(t, time.Hour)
}

// SetupTestRouterWithTokenTTL is SetupTestRouter with access tokens that live for ttl
func SetupTestRouterWithTokenTTL(t *testing.T, ttl time.Duration) (*gin.Engine, *repository.MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	repo.SeedDemo(time.Now(), time.UTC)

	auth := backend.NewMemoryAuth().WithTokenTTL(ttl)
	auth.AddUser(repository.DemoPartnerUser, repository.DemoPartnerEmail, repository.DemoPassword, "Eleanor Price")
	auth.AddUser(repository.DemoCustomerID, repository.DemoCustomerEmail, repository.DemoPassword, "Guest Tester")

	router, err := server.SetupRouter(server.Dependencies{
		Market:               bidding.NewBiddingService(repo, bidding.WithLocation(time.UTC)),
		Portal:               admin.NewAdminService(auth, repo, admin.WithLocation(time.UTC)),
		Auth:                 auth,
		Rooms:                repo,
		Sessions:             session.NewStore("integration-secret", false, time.Hour),
		Location:             time.UTC,
		SuccessRedirectDelay: 10 * time.Millisecond,
	})
	require.NoError(t, err)
	return router, repo
}

// Browser drives the router like a browser: it keeps cookies between requests.
type Browser struct {
	t      *testing.T
	router *gin.Engine
	jar    *cookiejar.Jar
}

func NewBrowser(t *testing.T, router *gin.Engine) *Browser {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &Browser{t: t, router: router, jar: jar}
}

// Get executes a GET request and returns the response recorder.
func (b *Browser) Get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

// Post submits an urlencoded form.
func (b *Browser) Post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

// Follow GETs the Location of a redirect.
func (b *Browser) Follow(w *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	b.t.Helper()
	require.Equal(b.t, http.StatusSeeOther, w.Code, w.Body.String())
	return b.Get(w.Header().Get("Location"))
}

// SignIn posts credentials to a login form and requires the redirect.
func (b *Browser) SignIn(loginPath, email, password string) {
	b.t.Helper()
	w := b.Post(loginPath, url.Values{"email": {email}, "password": {password}})
	require.Equal(b.t, http.StatusSeeOther, w.Code, w.Body.String())
}

func (b *Browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, ck := range b.jar.Cookies(siteURL) {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	b.router.ServeHTTP(w, req)
	b.jar.SetCookies(siteURL, w.Result().Cookies())
	return w
}

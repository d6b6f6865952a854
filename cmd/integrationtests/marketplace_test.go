package integrationtests

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"late-rooms/internal/repository"

	"github.com/stretchr/testify/require"
)

func TestBrowseRooms(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		shown    []string
		hidden   []string
		contains []string
	}{
		{
			name:  "All_Live_Auctions",
			query: "/",
			shown: []string{"room-grosvenor-suite", "room-curtain-double", "room-mill-king", "room-royal-twin"},
			// sold and past-deadline auctions never reach the page
			hidden:   []string{"room-grosvenor-sold", "room-curtain-ended"},
			contains: []string{"4 rooms available", `<p class="stat">4</p>`, `<p class="stat">9</p>`},
		},
		{
			name:   "Region_Filter",
			query:  "/?region=Scotland",
			shown:  []string{"room-royal-twin"},
			hidden: []string{"room-grosvenor-suite", "room-mill-king"},
			// stats ignore the filters
			contains: []string{"1 room available", `<p class="stat">4</p>`},
		},
		{
			name:   "Ending_Soon",
			query:  "/?time=ending",
			shown:  []string{"room-grosvenor-suite", "room-curtain-double"},
			hidden: []string{"room-mill-king", "room-royal-twin"},
		},
		{
			name:   "Tomorrow_In_London",
			query:  "/?region=London&time=tomorrow",
			hidden: []string{"room-grosvenor-suite", "room-curtain-double", "room-mill-king", "room-royal-twin"},
			contains: []string{
				"No rooms match your filters",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := SetupTestRouter(t)
			w := NewBrowser(t, router).Get(tt.query)
			require.Equal(t, http.StatusOK, w.Code)

			body := w.Body.String()
			for _, id := range tt.shown {
				require.Contains(t, body, `href="/room/`+id+`"`)
			}
			for _, id := range tt.hidden {
				require.NotContains(t, body, `href="/room/`+id+`"`)
			}
			for _, s := range tt.contains {
				require.Contains(t, body, s)
			}
		})
	}
}

func TestRoomPage(t *testing.T) {
	router, _ := SetupTestRouter(t)
	b := NewBrowser(t, router)

	w := b.Get("/room/room-grosvenor-suite")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.Contains(t, body, "The Grosvenor")
	require.Contains(t, body, "£240")
	require.Contains(t, body, "47% OFF")
	require.Contains(t, body, "Min £241")
	require.Contains(t, body, `data-countdown="room-grosvenor-suite"`)

	w = b.Get("/room/room-curtain-ended")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "This auction has ended")

	w = b.Get("/room/does-not-exist")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Room not found")
}

func TestPlaceBid(t *testing.T) {
	t.Run("Signed_Out_Goes_To_Login", func(t *testing.T) {
		router, repo := SetupTestRouter(t)
		b := NewBrowser(t, router)

		w := b.Post("/room/room-curtain-double/bid", url.Values{"amount": {"150"}})
		require.Equal(t, http.StatusSeeOther, w.Code)
		require.Equal(t, "/login", w.Header().Get("Location"))
		require.Empty(t, repo.BidsFor("room-curtain-double"))
	})

	t.Run("Bid_Then_Outbid_Yourself", func(t *testing.T) {
		router, repo := SetupTestRouter(t)
		b := NewBrowser(t, router)
		b.SignIn("/login", repository.DemoCustomerEmail, repository.DemoPassword)

		// no bids yet, so the starting bid is the one to beat
		w := b.Post("/room/room-curtain-double/bid", url.Values{"amount": {"95"}})
		require.Equal(t, http.StatusConflict, w.Code)
		require.Contains(t, w.Body.String(), "Bid must be higher than £95")
		require.Contains(t, w.Body.String(), `value="95"`)

		w = b.Post("/room/room-curtain-double/bid", url.Values{"amount": {"100"}})
		page := b.Follow(w)
		require.Equal(t, http.StatusOK, page.Code)
		require.Contains(t, page.Body.String(), "Bid of £100 placed successfully!")
		require.Contains(t, page.Body.String(), `id="current-bid">£100<`)
		require.Contains(t, page.Body.String(), "1 bids")

		// the flash shows once
		require.NotContains(t, b.Get("/room/room-curtain-double").Body.String(), "placed successfully")

		w = b.Post("/room/room-curtain-double/bid", url.Values{"amount": {"100"}})
		require.Equal(t, http.StatusConflict, w.Code)
		require.Contains(t, w.Body.String(), "Bid must be higher than £100")

		// quick bid button: +£5 over the current bid
		w = b.Post("/room/room-curtain-double/bid", url.Values{"amount": {"", "105"}})
		require.Equal(t, http.StatusSeeOther, w.Code)

		bids := repo.BidsFor("room-curtain-double")
		require.Len(t, bids, 2)
		require.Equal(t, repository.DemoCustomerID, bids[1].CustomerID)
		require.Equal(t, 105.0, bids[1].Amount)
	})

	t.Run("Expired_Session_Goes_To_Login", func(t *testing.T) {
		router, repo := SetupTestRouterWithTokenTTL(t, 300*time.Millisecond)
		b := NewBrowser(t, router)
		b.SignIn("/login", repository.DemoCustomerEmail, repository.DemoPassword)

		time.Sleep(400 * time.Millisecond)

		w := b.Post("/room/room-curtain-double/bid", url.Values{"amount": {"150"}})
		require.Equal(t, http.StatusSeeOther, w.Code)
		require.Equal(t, "/login", w.Header().Get("Location"))
		require.Empty(t, repo.BidsFor("room-curtain-double"))
	})

	t.Run("Ended_Auction", func(t *testing.T) {
		router, repo := SetupTestRouter(t)
		b := NewBrowser(t, router)
		b.SignIn("/login", repository.DemoCustomerEmail, repository.DemoPassword)

		w := b.Post("/room/room-curtain-ended/bid", url.Values{"amount": {"500"}})
		require.Equal(t, http.StatusConflict, w.Code)
		require.Contains(t, w.Body.String(), "This auction has ended")
		require.Empty(t, repo.BidsFor("room-curtain-ended"))
	})

	t.Run("Not_A_Number", func(t *testing.T) {
		router, _ := SetupTestRouter(t)
		b := NewBrowser(t, router)
		b.SignIn("/login", repository.DemoCustomerEmail, repository.DemoPassword)

		w := b.Post("/room/room-curtain-double/bid", url.Values{"amount": {"lots"}})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "Please enter a valid bid amount")
	})
}

func TestSecretHotels(t *testing.T) {
	router, _ := SetupTestRouter(t)
	b := NewBrowser(t, router)

	w := b.Get("/secret-hotels")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.Contains(t, body, "2 secret hotels available")
	require.Contains(t, body, "Within 5 min walk of Green Park")
	require.Contains(t, body, "Within the Royal Mile")
	require.NotContains(t, body, "Old Street station")
	// the real identity stays hidden until booking
	require.NotContains(t, body, "12 Park Lane")
	require.NotContains(t, body, "Royal Mile Lodge")

	w = b.Get("/secret-hotels?region=Scotland&time=tomorrow")
	require.Contains(t, w.Body.String(), "1 secret hotel available")

	w = b.Get("/secret/secret-mayfair")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Secret 5-Star Hotel")
	require.NotContains(t, w.Body.String(), "12 Park Lane")

	w = b.Get("/secret/nope")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomerAccounts(t *testing.T) {
	router, _ := SetupTestRouter(t)
	b := NewBrowser(t, router)

	w := b.Post("/login", url.Values{"email": {repository.DemoCustomerEmail}, "password": {"wrong-password"}})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Invalid login credentials")
	require.Contains(t, w.Body.String(), `value="`+repository.DemoCustomerEmail+`"`)

	w = b.Post("/signup", url.Values{"full_name": {"Ada Lovelace"}, "email": {"ada@example.com"}, "password": {"abc"}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Password must be at least 6 characters")

	w = b.Post("/signup", url.Values{"full_name": {"Ada Lovelace"}, "email": {"ada@example.com"}, "password": {"engine42"}})
	home := b.Follow(w)
	require.Equal(t, http.StatusOK, home.Code)
	require.Contains(t, home.Body.String(), "Ada Lovelace")

	w = b.Post("/logout", url.Values{})
	home = b.Follow(w)
	require.NotContains(t, home.Body.String(), "Ada Lovelace")
	require.Contains(t, home.Body.String(), "Sign In")

	// the account exists now
	b.SignIn("/login", "ada@example.com", "engine42")
	w = b.Post("/signup", url.Values{"full_name": {"Ada"}, "email": {"ada@example.com"}, "password": {"engine42"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))
}

package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/marketplace/internal/config"
	"github.com/sakif/marketplace/internal/model"
	"github.com/sakif/marketplace/internal/server"
)

// newTestServer builds a full server over an in-memory store and mounts it on
// httptest. The returned client carries a cookie jar, so the token cookie set
// by register/login flows through subsequent requests like a browser would.
func newTestServer(t *testing.T, seed bool) (*httptest.Server, *http.Client) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	srv, err := server.New(config.Config{
		Port:      0,
		DBPath:    ":memory:",
		JWTSecret: "test-secret-at-least-16-chars",
		Seed:      seed,
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { srv.Close() })

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return ts, &http.Client{Jar: jar}
}

func postJSON(t *testing.T, client *http.Client, url string, body any) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := client.Post(url, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
}

func register(t *testing.T, client *http.Client, baseURL, name, email string) {
	t.Helper()
	resp := postJSON(t, client, baseURL+"/api/auth/register", map[string]string{
		"name":            name,
		"email":           email,
		"phone":           "0532 000 00 00",
		"password":        "hunter2",
		"confirmPassword": "hunter2",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestServer_RegisterLoginFlow(t *testing.T) {
	ts, client := newTestServer(t, false)

	t.Run("register sets session and cookie", func(t *testing.T) {
		resp := postJSON(t, client, ts.URL+"/api/auth/register", map[string]string{
			"name":            "Ayşe",
			"email":           "ayse@example.com",
			"phone":           "0532 123 45 67",
			"password":        "hunter2",
			"confirmPassword": "hunter2",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body map[string]any
		decodeBody(t, resp, &body)
		assert.Equal(t, "ayse@example.com", body["email"])
		assert.NotEmpty(t, body["id"])
		// The stored password must never leave the server.
		_, leaked := body["password"]
		assert.False(t, leaked)
	})

	t.Run("me reflects the open session", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/auth/me")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		decodeBody(t, resp, &body)
		assert.Equal(t, "Ayşe", body["name"])
	})

	t.Run("wrong password is rejected without detail", func(t *testing.T) {
		resp := postJSON(t, client, ts.URL+"/api/auth/login", map[string]string{
			"email":    "ayse@example.com",
			"password": "wrong",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("logout closes the session", func(t *testing.T) {
		resp, err := client.Post(ts.URL+"/api/auth/logout", "application/json", nil)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, err = client.Get(ts.URL + "/api/auth/me")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestServer_ListingLifecycle(t *testing.T) {
	ts, client := newTestServer(t, false)
	register(t, client, ts.URL, "Satıcı", "seller@example.com")

	var listingID string

	t.Run("create listing", func(t *testing.T) {
		resp := postJSON(t, client, ts.URL+"/api/listings", map[string]any{
			"title":       "Dağ Bisikleti",
			"description": "Az kullanılmış, 29 jant.",
			"price":       "7500",
			"category":    "home-living",
			"location":    "İzmir",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var created model.Listing
		decodeBody(t, resp, &created)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, float64(7500), created.Price)
		assert.Equal(t, "Satıcı", created.UserName)
		assert.Equal(t, 0, created.Views)
		listingID = created.ID
	})

	t.Run("browse finds it", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/listings?category=home-living&minPrice=1000")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var listings []model.Listing
		decodeBody(t, resp, &listings)
		require.Len(t, listings, 1)
		assert.Equal(t, listingID, listings[0].ID)
	})

	t.Run("detail view counts and persists", func(t *testing.T) {
		for want := 1; want <= 2; want++ {
			resp, err := client.Get(ts.URL + "/api/listings/" + listingID)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			var listing model.Listing
			decodeBody(t, resp, &listing)
			assert.Equal(t, want, listing.Views)
		}
	})

	t.Run("unknown listing is 404", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/listings/nope")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid listing is rejected", func(t *testing.T) {
		resp := postJSON(t, client, ts.URL+"/api/listings", map[string]any{
			"title":       "Eksik",
			"description": "fiyat negatif",
			"price":       "-5",
			"category":    "home-living",
			"location":    "İzmir",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("my listings shows only mine", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/me/listings")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var mine []model.Listing
		decodeBody(t, resp, &mine)
		require.Len(t, mine, 1)
		assert.Equal(t, listingID, mine[0].ID)
	})
}

func TestServer_Favorites(t *testing.T) {
	ts, client := newTestServer(t, true) // seeded, so there is something to favorite
	register(t, client, ts.URL, "Alıcı", "buyer@example.com")

	favoriteURL := ts.URL + "/api/listings/1/favorite"

	t.Run("toggle on", func(t *testing.T) {
		resp, err := client.Post(favoriteURL, "application/json", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string][]string
		decodeBody(t, resp, &body)
		assert.Equal(t, []string{"1"}, body["favorites"])
	})

	t.Run("favorites resolve to listings", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/me/favorites")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var favorites []model.Listing
		decodeBody(t, resp, &favorites)
		require.Len(t, favorites, 1)
		assert.Equal(t, "1", favorites[0].ID)
	})

	t.Run("toggle off", func(t *testing.T) {
		resp, err := client.Post(favoriteURL, "application/json", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string][]string
		decodeBody(t, resp, &body)
		assert.Empty(t, body["favorites"])
	})
}

func TestServer_AuthRequired(t *testing.T) {
	ts, _ := newTestServer(t, false)

	// No cookie jar: these requests carry no token.
	bare := &http.Client{}

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/listings"},
		{http.MethodPost, "/api/listings/1/favorite"},
		{http.MethodGet, "/api/me/listings"},
		{http.MethodGet, "/api/me/favorites"},
	}

	for _, tc := range protected {
		t.Run(fmt.Sprintf("%s %s", tc.method, tc.path), func(t *testing.T) {
			req, err := http.NewRequest(tc.method, ts.URL+tc.path, nil)
			require.NoError(t, err)
			resp, err := bare.Do(req)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestServer_SeededHome(t *testing.T) {
	ts, client := newTestServer(t, true)

	resp, err := client.Get(ts.URL + "/api/home")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var home struct {
		Featured []model.Listing `json:"featured"`
		Recent   []model.Listing `json:"recent"`
		Gaming   []model.Listing `json:"gaming"`
	}
	decodeBody(t, resp, &home)

	assert.Len(t, home.Featured, 3)
	assert.NotEmpty(t, home.Recent)
	assert.NotEmpty(t, home.Gaming)
	for _, l := range home.Gaming {
		assert.Equal(t, "gaming", l.Category)
	}
}

func TestServer_Catalog(t *testing.T) {
	ts, client := newTestServer(t, false)

	t.Run("brand models", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/catalog/brands/bmw/models")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var models []string
		decodeBody(t, resp, &models)
		assert.Contains(t, models, "3 Serisi")
	})

	t.Run("unknown brand is an empty list, not an error", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/catalog/brands/lada/models")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)
		assert.JSONEq(t, "[]", string(body))
	})

	t.Run("district neighborhoods", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/catalog/cities/istanbul/districts/kadikoy/neighborhoods")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var neighborhoods []string
		decodeBody(t, resp, &neighborhoods)
		assert.Contains(t, neighborhoods, "Moda")
	})
}

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghassen-kharrat/portfolio/internal/config"
	"github.com/ghassen-kharrat/portfolio/internal/database"
	"github.com/ghassen-kharrat/portfolio/internal/database/messages"
	"github.com/ghassen-kharrat/portfolio/internal/mailer"
)

func setupContactTest(t *testing.T, relayStatus int) (*httptestRouter, *messages.Repository, *int, func()) {
	t.Helper()

	attempts := 0
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(relayStatus)
	}))

	dbPath := "./test_contact_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	store := messages.NewRepository(db.DB)

	client := mailer.NewClient(config.Mailer{
		Endpoint:   relay.URL,
		ServiceID:  "service",
		TemplateID: "template",
		PublicKey:  "key",
	})

	router, shells := testShellRouter("visitor-contact")
	controller := NewContactController(client, store)
	router.POST("/contact", controller.Submit)

	cleanup := func() {
		shells.Close()
		relay.Close()
		db.Close()
		os.Remove(dbPath)
	}
	return &httptestRouter{router}, store, &attempts, cleanup
}

func TestContactController_Submit(t *testing.T) {
	t.Run("delivers and archives on success", func(t *testing.T) {
		r, store, attempts, cleanup := setupContactTest(t, http.StatusOK)
		defer cleanup()

		w := r.do("POST", "/contact", `{"name":"Sami","email":"sami@example.com","subject":"Hi","message":"Nice work"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, *attempts)

		var response struct {
			Sent          bool `json:"sent"`
			Notifications []struct {
				Kind string `json:"kind"`
			} `json:"notifications"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Sent)
		require.Len(t, response.Notifications, 1)
		assert.Equal(t, "success", response.Notifications[0].Kind)

		recent, err := store.ListRecent(10)
		require.NoError(t, err)
		require.Len(t, recent, 1)
		assert.True(t, recent[0].Delivered)
		assert.Equal(t, "sami@example.com", recent[0].Email)
	})

	t.Run("relay failure surfaces an error toast without retrying", func(t *testing.T) {
		r, store, attempts, cleanup := setupContactTest(t, http.StatusBadGateway)
		defer cleanup()

		w := r.do("POST", "/contact", `{"name":"Sami","email":"sami@example.com","message":"Hello"}`)
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, 1, *attempts, "a failed send must not be retried")

		var response struct {
			Sent          bool `json:"sent"`
			Notifications []struct {
				Kind string `json:"kind"`
			} `json:"notifications"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.False(t, response.Sent)
		require.Len(t, response.Notifications, 1)
		assert.Equal(t, "error", response.Notifications[0].Kind)

		recent, err := store.ListRecent(10)
		require.NoError(t, err)
		require.Len(t, recent, 1)
		assert.False(t, recent[0].Delivered)
		assert.NotEmpty(t, recent[0].Error)
	})

	t.Run("validates required fields", func(t *testing.T) {
		r, _, attempts, cleanup := setupContactTest(t, http.StatusOK)
		defer cleanup()

		for _, body := range []string{
			`{"email":"a@b.c","message":"x"}`,
			`{"name":"A","message":"x"}`,
			`{"name":"A","email":"not-an-email","message":"x"}`,
			`{"name":"A","email":"a@b.c"}`,
		} {
			w := r.do("POST", "/contact", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		}
		assert.Zero(t, *attempts, "invalid submissions must not reach the relay")
	})

	t.Run("accepts form-encoded submissions", func(t *testing.T) {
		r, _, _, cleanup := setupContactTest(t, http.StatusOK)
		defer cleanup()

		req, _ := http.NewRequest("POST", "/contact",
			strings.NewReader("name=Sami&email=sami%40example.com&subject=Hi&message=Hello"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

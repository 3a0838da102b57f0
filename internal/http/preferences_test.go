package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerPreferenceRoutes(visitorID string) (*httptestRouter, func()) {
	router, shells := testShellRouter(visitorID)
	controller := NewPreferencesController()
	router.GET("/api/preferences", controller.GetAll)
	router.GET("/api/preferences/:key", controller.Get)
	router.PUT("/api/preferences/:key", controller.Update)
	router.POST("/api/preferences/:key/reset", controller.Reset)
	router.GET("/api/translations", controller.Translations)
	return &httptestRouter{router}, shells.Close
}

func TestPreferencesController_GetAll(t *testing.T) {
	r, cleanup := registerPreferenceRoutes("visitor-prefs-all")
	defer cleanup()

	w := r.do("GET", "/api/preferences", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Preferences map[string]string `json:"preferences"`
		Document    struct {
			Lang string `json:"lang"`
			Dir  string `json:"dir"`
		} `json:"document"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, "dark", response.Preferences["theme"])
	assert.Equal(t, "en", response.Preferences["portfolioLanguage"])
	assert.NotEmpty(t, response.Preferences["accessibility"])
	assert.Equal(t, "en", response.Document.Lang)
	assert.Equal(t, "ltr", response.Document.Dir)
}

func TestPreferencesController_Update(t *testing.T) {
	t.Run("accepts a value inside the domain", func(t *testing.T) {
		r, cleanup := registerPreferenceRoutes("visitor-prefs-update")
		defer cleanup()

		w := r.do("PUT", "/api/preferences/theme", `{"value":"light"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var response PreferenceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Applied)
		assert.Equal(t, "light", response.Value)
	})

	t.Run("rejects a value outside the domain without changing it", func(t *testing.T) {
		r, cleanup := registerPreferenceRoutes("visitor-prefs-invalid")
		defer cleanup()

		w := r.do("PUT", "/api/preferences/theme", `{"value":"solarized"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var response PreferenceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.False(t, response.Applied)
		assert.Equal(t, "dark", response.Value)
	})

	t.Run("unknown key returns 404", func(t *testing.T) {
		r, cleanup := registerPreferenceRoutes("visitor-prefs-unknown")
		defer cleanup()

		w := r.do("PUT", "/api/preferences/fontFamily", `{"value":"serif"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing value returns 400", func(t *testing.T) {
		r, cleanup := registerPreferenceRoutes("visitor-prefs-novalue")
		defer cleanup()

		w := r.do("PUT", "/api/preferences/theme", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("locale switch flips document direction", func(t *testing.T) {
		r, cleanup := registerPreferenceRoutes("visitor-prefs-rtl")
		defer cleanup()

		w := r.do("PUT", "/api/preferences/portfolioLanguage", `{"value":"ar"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		w = r.do("GET", "/api/preferences", "")
		var response struct {
			Document struct {
				Lang string `json:"lang"`
				Dir  string `json:"dir"`
			} `json:"document"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "ar", response.Document.Lang)
		assert.Equal(t, "rtl", response.Document.Dir)
	})
}

func TestPreferencesController_Reset(t *testing.T) {
	r, cleanup := registerPreferenceRoutes("visitor-prefs-reset")
	defer cleanup()

	w := r.do("PUT", "/api/preferences/theme", `{"value":"light"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = r.do("POST", "/api/preferences/theme/reset", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var response PreferenceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "dark", response.Value)
}

func TestPreferencesController_Translations(t *testing.T) {
	r, cleanup := registerPreferenceRoutes("visitor-prefs-i18n")
	defer cleanup()

	w := r.do("PUT", "/api/preferences/portfolioLanguage", `{"value":"fr"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = r.do("GET", "/api/translations", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Locale    string            `json:"locale"`
		Direction string            `json:"direction"`
		Messages  map[string]string `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "fr", response.Locale)
	assert.Equal(t, "ltr", response.Direction)
	assert.Equal(t, "Accueil", response.Messages["nav.home"])
}

// httptestRouter bundles a router with a small request helper.
type httptestRouter struct {
	engine http.Handler
}

func (r *httptestRouter) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.engine.ServeHTTP(w, req)
	return w
}

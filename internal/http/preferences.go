package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ghassen-kharrat/portfolio/internal/prefs"
	"github.com/ghassen-kharrat/portfolio/internal/translations"
)

// PreferencesController exposes the visitor preference store.
type PreferencesController struct{}

func NewPreferencesController() *PreferencesController {
	return &PreferencesController{}
}

// PreferenceResponse is the wire format for a single preference.
type PreferenceResponse struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Applied bool   `json:"applied"`
}

// preferenceUpdateRequest is the body for preference writes.
type preferenceUpdateRequest struct {
	Value string `json:"value" binding:"required"`
}

// GetAll returns every preference for the visitor, defaults included.
func (p *PreferencesController) GetAll(c *gin.Context) {
	sess := GetShell(c)
	if sess == nil {
		respondInternalError(c, errNoShell, "preferences")
		return
	}

	values := make(map[string]string, len(prefs.Keys))
	for _, key := range prefs.Keys {
		values[string(key)] = sess.Prefs.Get(key)
	}

	doc := sess.Prefs.Document()
	c.JSON(http.StatusOK, gin.H{
		"preferences": values,
		"document":    doc,
	})
}

// Get returns a single preference value.
func (p *PreferencesController) Get(c *gin.Context) {
	sess := GetShell(c)
	if sess == nil {
		respondInternalError(c, errNoShell, "preferences")
		return
	}

	key := prefs.Key(c.Param("key"))
	if !prefs.IsDefined(key) {
		respondNotFound(c, "preference")
		return
	}

	c.JSON(http.StatusOK, PreferenceResponse{
		Key:     string(key),
		Value:   sess.Prefs.Get(key),
		Applied: true,
	})
}

// Update writes a preference value. A value outside the preference's
// domain is rejected without disturbing the stored one; the response
// carries the value that is actually in effect.
func (p *PreferencesController) Update(c *gin.Context) {
	sess := GetShell(c)
	if sess == nil {
		respondInternalError(c, errNoShell, "preferences")
		return
	}

	key := prefs.Key(c.Param("key"))
	if !prefs.IsDefined(key) {
		respondNotFound(c, "preference")
		return
	}

	var req preferenceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "value is required")
		return
	}

	applied := sess.Prefs.Set(key, req.Value)
	c.JSON(http.StatusOK, PreferenceResponse{
		Key:     string(key),
		Value:   sess.Prefs.Get(key),
		Applied: applied,
	})
}

// Reset restores a preference to its default value.
func (p *PreferencesController) Reset(c *gin.Context) {
	sess := GetShell(c)
	if sess == nil {
		respondInternalError(c, errNoShell, "preferences")
		return
	}

	key := prefs.Key(c.Param("key"))
	if !prefs.IsDefined(key) {
		respondNotFound(c, "preference")
		return
	}

	sess.Prefs.Reset(key)
	c.JSON(http.StatusOK, PreferenceResponse{
		Key:     string(key),
		Value:   sess.Prefs.Get(key),
		Applied: true,
	})
}

// Translations returns the message catalog for the visitor's locale so the
// client can re-render text without a page reload.
func (p *PreferencesController) Translations(c *gin.Context) {
	sess := GetShell(c)
	if sess == nil {
		respondInternalError(c, errNoShell, "preferences")
		return
	}

	locale := sess.Prefs.Locale()
	c.JSON(http.StatusOK, gin.H{
		"locale":    locale,
		"direction": translations.DirectionOf(locale),
		"messages":  translations.Catalog(locale),
	})
}

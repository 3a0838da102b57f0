// Package http wires the web surface: the rendered pages, the JSON API for
// preferences, notifications and section tracking, and the live WebSocket
// channel.
package http

import (
	"html/template"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ghassen-kharrat/portfolio/internal/visitor"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(RecoveryMiddleware())

	// Apply analytics context before security headers so the CSP can
	// include the script origin
	if cfg.PlausibleStore != nil {
		router.Use(AnalyticsContextMiddleware(cfg.PlausibleStore))
	}

	// Apply security headers to all responses
	router.Use(visitor.SecurityHeadersMiddleware())

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(visitor.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	// Session runs after CSRF so session context isn't overwritten by
	// CSRF's request replacement
	router.Use(cfg.SessionManager.SessionLoadSave())

	// Resolve the visitor shell for every request
	router.Use(ShellMiddleware(cfg.Shells, cfg.SessionManager))

	// Record first-party page views through the task queue
	if cfg.TaskClient != nil {
		router.Use(PageViewMiddleware(cfg.TaskClient))
	}

	// Define custom template functions
	funcMap := template.FuncMap{
		"upper": strings.ToUpper,
		"subtract": func(a, b int) int {
			return a - b
		},
	}

	// Load HTML templates with custom functions
	tmpl := template.Must(template.New("").Funcs(funcMap).ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	// Serve static files
	router.Static("/static", cfg.StaticPath)

	// Create controllers
	health := NewHealthController(cfg.Database, cfg.Version)
	pages := NewPagesController()
	preferences := NewPreferencesController()
	notifications := NewNotificationsController()
	sectionsController := NewSectionsController()
	contact := NewContactController(cfg.Mailer, cfg.MessageStore)
	live := NewLiveController()

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Pages
	router.GET("/", pages.Home)
	router.GET("/about", pages.About)
	router.GET("/projects", pages.Projects)
	router.GET("/contact", pages.Contact)

	// Preference endpoints
	router.GET("/api/preferences", preferences.GetAll)
	router.GET("/api/preferences/:key", preferences.Get)
	router.PUT("/api/preferences/:key", preferences.Update)
	router.POST("/api/preferences/:key/reset", preferences.Reset)
	router.GET("/api/translations", preferences.Translations)

	// Notification endpoints
	router.GET("/api/notifications", notifications.List)
	router.POST("/api/notifications", notifications.Create)
	router.DELETE("/api/notifications/:id", notifications.Dismiss)

	// Section tracking endpoints
	router.POST("/api/sections/visibility", sectionsController.ReportVisibility)
	router.GET("/api/sections/active", sectionsController.Active)
	router.POST("/api/sections/:id/scroll", sectionsController.ScrollTo)

	// Contact form
	router.POST("/contact", contact.Submit)

	// Live updates
	router.GET("/ws", live.Handle)

	return router
}

package http

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ghassen-kharrat/portfolio/internal/shell"
	"github.com/ghassen-kharrat/portfolio/internal/tasks"
	"github.com/ghassen-kharrat/portfolio/internal/visitor"
)

const (
	shellContextKey     = "visitor_shell"
	visitorIDContextKey = "visitor_id"
)

// ShellMiddleware resolves the visitor's shell for the request: the bundle of
// preference store, notification bus and section tracker keyed by the
// anonymous session id. The OS color scheme hint only matters the first time
// a visitor shows up; after that the stored theme wins.
func ShellMiddleware(shells *shell.Manager, sessions *visitor.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		visitorID := sessions.VisitorID(c.Request)

		osHint := ""
		switch c.GetHeader("Sec-CH-Prefers-Color-Scheme") {
		case "dark":
			osHint = "dark"
		case "light":
			osHint = "light"
		}

		sess := shells.Get(visitorID, osHint)
		sess.Touch()

		c.Set(visitorIDContextKey, visitorID)
		c.Set(shellContextKey, sess)
		c.Next()
	}
}

// GetShell retrieves the visitor shell from the Gin context.
// Returns nil when ShellMiddleware did not run.
func GetShell(c *gin.Context) *shell.Session {
	if v, exists := c.Get(shellContextKey); exists {
		if sess, ok := v.(*shell.Session); ok {
			return sess
		}
	}
	return nil
}

// GetVisitorID retrieves the visitor id from the Gin context.
func GetVisitorID(c *gin.Context) string {
	if v, exists := c.Get(visitorIDContextKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// PageViewMiddleware enqueues a first-party page view event for page
// requests. API, asset and infrastructure routes are skipped. Enqueue
// failures are logged and never affect the response.
func PageViewMiddleware(taskClient *tasks.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method != "GET" || c.Writer.Status() >= 400 {
			return
		}
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/static/") ||
			path == "/health" || path == "/ping" || path == "/ws" || path == "/favicon.ico" {
			return
		}

		sess := GetShell(c)
		if sess == nil {
			return
		}

		_, err := taskClient.Add(tasks.RecordPageViewTask{
			SessionID: sess.VisitorID,
			Path:      path,
			Referrer:  c.Request.Referer(),
			Language:  string(sess.Prefs.Locale()),
		}).Save()
		if err != nil {
			log.Printf("Failed to enqueue page view for %s: %v", path, err)
		}
	}
}

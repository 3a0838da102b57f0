package http

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// fallbackPage is served when rendering panics. It is deliberately inline
// HTML: if the template set itself is what broke, rendering another
// template would fail the same way.
const fallbackPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Something went wrong</title>
</head>
<body style="font-family: system-ui; max-width: 480px; margin: 100px auto; text-align: center;">
<h1>Something went wrong</h1>
<p>The page could not be displayed. Your preferences and session are safe.</p>
<p><a href="javascript:location.reload()">Reload the page</a> or <a href="/">go back home</a>.</p>
</body>
</html>`

// RecoveryMiddleware turns panics into a minimal error page for page
// requests and a JSON error for API requests, instead of a dropped
// connection.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)

		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
			return
		}

		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusInternalServerError, fallbackPage)
		c.Abort()
	})
}

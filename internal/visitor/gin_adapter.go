package visitor

import (
	"bufio"
	"net"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
)

// visitorCookieWriter defers the session cookie until the first header or
// body write, so handlers that rotate or destroy the anonymous session still
// get the right Set-Cookie out before the response is committed.
type visitorCookieWriter struct {
	gin.ResponseWriter
	sm            *SessionManager
	request       *http.Request
	wroteHeader   bool
	cookieWritten bool
}

func (w *visitorCookieWriter) ensureCookie() {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if w.cookieWritten {
		return
	}
	w.cookieWritten = true

	ctx := w.request.Context()
	switch w.sm.Status(ctx) {
	case scs.Modified:
		token, expiry, err := w.sm.Commit(ctx)
		if err != nil {
			return
		}
		w.sm.WriteSessionCookie(ctx, w.ResponseWriter, token, expiry)
	case scs.Destroyed:
		w.sm.WriteSessionCookie(ctx, w.ResponseWriter, "", time.Time{})
	}
}

func (w *visitorCookieWriter) WriteHeader(code int) {
	w.ensureCookie()
	w.ResponseWriter.WriteHeader(code)
}

func (w *visitorCookieWriter) WriteHeaderNow() {
	w.ensureCookie()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *visitorCookieWriter) Write(b []byte) (int, error) {
	w.ensureCookie()
	return w.ResponseWriter.Write(b)
}

// Hijack passes through so the live channel can upgrade to a WebSocket.
func (w *visitorCookieWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return w.ResponseWriter.Hijack()
}

// SessionLoadSave loads the visitor session into the request context and
// commits it on the way out. Every session read or write in the pipeline,
// VisitorID included, requires this middleware upstream.
func (sm *SessionManager) SessionLoadSave() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		if cookie, err := c.Request.Cookie(sm.Cookie.Name); err == nil {
			token = cookie.Value
		}

		ctx, err := sm.Load(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Request = c.Request.WithContext(ctx)

		writer := &visitorCookieWriter{
			ResponseWriter: c.Writer,
			sm:             sm,
			request:        c.Request,
		}
		c.Writer = writer

		c.Next()

		// Responses with no explicit write still need the cookie committed.
		if !writer.wroteHeader {
			writer.ensureCookie()
		}
	}
}

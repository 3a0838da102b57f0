// Package visitor manages anonymous browser sessions. There is no
// authentication: the session exists solely to carry a stable visitor id
// (the portfolio_session_id) so preferences and analytics survive reloads.
package visitor

import (
	"database/sql"
	"net/http"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"

	"github.com/ghassen-kharrat/portfolio/internal/config"
)

// SessionKeyVisitorID is the session data key carrying the visitor id.
const SessionKeyVisitorID = "portfolio_session_id"

// SessionManager wraps scs.SessionManager with visitor-specific methods.
type SessionManager struct {
	*scs.SessionManager
}

// NewSessionManager creates a configured session manager.
// The sqlDB parameter is a raw *sql.DB on the main database file.
func NewSessionManager(sqlDB *sql.DB, cfg config.Sessions) (*SessionManager, error) {
	// Create sessions table if it doesn't exist
	_, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		expiry REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);`)
	if err != nil {
		return nil, err
	}

	sm := scs.New()
	sm.Store = sqlite3store.New(sqlDB)

	sm.Lifetime = cfg.Lifetime

	sm.Cookie.Name = "session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	sm.Cookie.SameSite = http.SameSiteLaxMode // Lax: plain site, no credentialed cross-origin concerns
	sm.Cookie.Path = "/"

	return &SessionManager{SessionManager: sm}, nil
}

// VisitorID returns the visitor id for the request, generating and storing
// one on first contact. The id is created once per browser and reused for
// every later visit within the session lifetime.
func (sm *SessionManager) VisitorID(r *http.Request) string {
	id := sm.GetString(r.Context(), SessionKeyVisitorID)
	if id == "" {
		id = uuid.NewString()
		sm.Put(r.Context(), SessionKeyVisitorID, id)
	}
	return id
}

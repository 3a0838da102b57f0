package http

import (
	"github.com/ghassen-kharrat/portfolio/internal/analytics"
	"github.com/ghassen-kharrat/portfolio/internal/database"
	"github.com/ghassen-kharrat/portfolio/internal/database/messages"
	"github.com/ghassen-kharrat/portfolio/internal/mailer"
	"github.com/ghassen-kharrat/portfolio/internal/shell"
	"github.com/ghassen-kharrat/portfolio/internal/tasks"
	"github.com/ghassen-kharrat/portfolio/internal/visitor"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces a long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Core dependencies
	Database *database.Database
	Shells   *shell.Manager

	// Anonymous visitor sessions
	SessionManager *visitor.SessionManager

	// CSRF protection (disabled when empty)
	CSRFSecret    []byte
	SecureCookies bool

	// Contact form delivery
	Mailer       *mailer.Client
	MessageStore *messages.Repository

	// Analytics
	PlausibleStore *analytics.PlausibleStore

	// Task queue client (optional)
	TaskClient *tasks.Client

	// UI paths
	TemplatesPath string
	StaticPath    string

	// Application info
	Version string
}

package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		UI
		Sessions
		Mailer
		Plausible
		Tasks
		Cleanup
		Shell
	}

	HTTP struct {
		Port int32
		Host string
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	UI struct {
		TemplatesPath string
		StaticPath    string
	}
	Sessions struct {
		Lifetime      time.Duration
		SecureCookies bool // Set to false for local dev without HTTPS
		CSRFSecret    string
	}
	Mailer struct {
		Endpoint   string
		ServiceID  string
		TemplateID string
		PublicKey  string
	}
	Plausible struct {
		Domain     string // Domain registered in Plausible (e.g., "portfolio.example.com")
		ScriptURL  string // Script URL (default: "https://plausible.io/js/script.js")
		Extensions string // Comma-separated extensions (e.g., "outbound-links,hash")
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
	Cleanup struct {
		Schedule          string // Cron format: "0 3 * * *" = daily at 03:00
		PageViewRetention int    // Days to keep page view events
	}
	Shell struct {
		IdleTimeout   time.Duration // Evict visitor shells idle longer than this
		SweepSchedule string        // Cron format for the eviction sweep
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8189)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("templates_path", "./templates")
	v.SetDefault("static_path", "./static")

	// Session defaults
	v.SetDefault("session_lifetime", "720h") // 30 days; the session carries the visitor id
	v.SetDefault("session_secure_cookies", true)
	v.SetDefault("csrf_secret", "") // Auto-generated if empty

	// Mailer (hosted email relay) defaults
	v.SetDefault("mailer_endpoint", DefaultMailerEndpoint)
	v.SetDefault("mailer_service_id", "")
	v.SetDefault("mailer_template_id", "")
	v.SetDefault("mailer_public_key", "")

	// Plausible Analytics defaults
	v.SetDefault("plausible_domain", "")
	v.SetDefault("plausible_script_url", "https://plausible.io/js/script.js")
	v.SetDefault("plausible_extensions", "")

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	// Maintenance defaults
	v.SetDefault("cleanup_schedule", "0 3 * * *") // Daily at 03:00
	v.SetDefault("pageview_retention_days", 90)
	v.SetDefault("shell_idle_timeout", "30m")
	v.SetDefault("shell_sweep_schedule", "*/10 * * * *") // Every 10 minutes

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		UI: UI{
			TemplatesPath: v.GetString("TEMPLATES_PATH"),
			StaticPath:    v.GetString("STATIC_PATH"),
		},
		Sessions: Sessions{
			Lifetime:      v.GetDuration("SESSION_LIFETIME"),
			SecureCookies: v.GetBool("SESSION_SECURE_COOKIES"),
			CSRFSecret:    v.GetString("CSRF_SECRET"),
		},
		Mailer: Mailer{
			Endpoint:   v.GetString("MAILER_ENDPOINT"),
			ServiceID:  v.GetString("MAILER_SERVICE_ID"),
			TemplateID: v.GetString("MAILER_TEMPLATE_ID"),
			PublicKey:  v.GetString("MAILER_PUBLIC_KEY"),
		},
		Plausible: Plausible{
			Domain:     v.GetString("PLAUSIBLE_DOMAIN"),
			ScriptURL:  v.GetString("PLAUSIBLE_SCRIPT_URL"),
			Extensions: v.GetString("PLAUSIBLE_EXTENSIONS"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
		Cleanup: Cleanup{
			Schedule:          v.GetString("CLEANUP_SCHEDULE"),
			PageViewRetention: v.GetInt("PAGEVIEW_RETENTION_DAYS"),
		},
		Shell: Shell{
			IdleTimeout:   v.GetDuration("SHELL_IDLE_TIMEOUT"),
			SweepSchedule: v.GetString("SHELL_SWEEP_SCHEDULE"),
		},
	}
}

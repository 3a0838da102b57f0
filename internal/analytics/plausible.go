// Package analytics provides the Plausible script-tag configuration and
// first-party page view capture.
package analytics

import (
	"html/template"
	"strings"

	"github.com/ghassen-kharrat/portfolio/internal/config"
	"github.com/ghassen-kharrat/portfolio/internal/database/settings"
	"github.com/ghassen-kharrat/portfolio/internal/entities"
)

// PlausibleConfig holds the effective Plausible Analytics configuration
type PlausibleConfig struct {
	Enabled    bool
	Domain     string
	ScriptURL  string
	Extensions []string
}

// PlausibleStore resolves Plausible settings with priority:
// database > environment > default.
type PlausibleStore struct {
	repo      *settings.Repository
	envConfig config.Plausible
}

func NewPlausibleStore(repo *settings.Repository, envConfig config.Plausible) *PlausibleStore {
	return &PlausibleStore{
		repo:      repo,
		envConfig: envConfig,
	}
}

// GetEffectiveConfig returns the merged configuration with database taking priority
func (s *PlausibleStore) GetEffectiveConfig() *PlausibleConfig {
	cfg := &PlausibleConfig{}

	if setting, err := s.repo.GetSetting(entities.SettingKeyPlausibleEnabled); err == nil && setting.Value != "" {
		cfg.Enabled = setting.Value == "true"
	} else {
		cfg.Enabled = s.envConfig.Domain != ""
	}

	if setting, err := s.repo.GetSetting(entities.SettingKeyPlausibleDomain); err == nil && setting.Value != "" {
		cfg.Domain = setting.Value
	} else {
		cfg.Domain = s.envConfig.Domain
	}

	if setting, err := s.repo.GetSetting(entities.SettingKeyPlausibleScriptURL); err == nil && setting.Value != "" {
		cfg.ScriptURL = setting.Value
	} else if s.envConfig.ScriptURL != "" {
		cfg.ScriptURL = s.envConfig.ScriptURL
	} else {
		cfg.ScriptURL = "https://plausible.io/js/script.js"
	}

	if setting, err := s.repo.GetSetting(entities.SettingKeyPlausibleExtensions); err == nil && setting.Value != "" {
		cfg.Extensions = parseExtensions(setting.Value)
	} else {
		cfg.Extensions = parseExtensions(s.envConfig.Extensions)
	}

	return cfg
}

// SetDomain sets the domain in the database
func (s *PlausibleStore) SetDomain(domain string) error {
	return s.repo.SetSetting(entities.SettingKeyPlausibleDomain, domain)
}

// SetEnabled sets the enabled flag in the database
func (s *PlausibleStore) SetEnabled(enabled bool) error {
	value := "false"
	if enabled {
		value = "true"
	}
	return s.repo.SetSetting(entities.SettingKeyPlausibleEnabled, value)
}

// BuildScriptURL constructs the Plausible script URL with extensions.
// Extension format: script.ext1.ext2.js
func BuildScriptURL(baseURL string, extensions []string) string {
	if len(extensions) == 0 {
		return baseURL
	}

	if base, found := strings.CutSuffix(baseURL, ".js"); found {
		return base + "." + strings.Join(extensions, ".") + ".js"
	}

	return baseURL
}

// GenerateScriptTag returns safe HTML for the Plausible script tag
func GenerateScriptTag(cfg *PlausibleConfig) template.HTML {
	if !cfg.Enabled || cfg.Domain == "" {
		return ""
	}

	scriptURL := BuildScriptURL(cfg.ScriptURL, cfg.Extensions)

	return template.HTML(`<script defer data-domain="` + template.HTMLEscapeString(cfg.Domain) + `" src="` + template.HTMLEscapeString(scriptURL) + `"></script>`)
}

// parseExtensions splits comma-separated extensions and trims whitespace
func parseExtensions(s string) []string {
	if s == "" {
		return []string{}
	}

	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

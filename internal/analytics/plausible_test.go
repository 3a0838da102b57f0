package analytics

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ghassen-kharrat/portfolio/internal/config"
	"github.com/ghassen-kharrat/portfolio/internal/database/settings"
	"github.com/ghassen-kharrat/portfolio/internal/entities"
)

func setupStore(t *testing.T, envCfg config.Plausible) (*PlausibleStore, func()) {
	dbPath := "./test_analytics_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entities.Setting{}))

	repo := settings.NewRepository(db)
	store := NewPlausibleStore(repo, envCfg)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return store, cleanup
}

func TestPlausibleStore_EnvFallback(t *testing.T) {
	store, cleanup := setupStore(t, config.Plausible{
		Domain:    "portfolio.example.com",
		ScriptURL: "https://plausible.io/js/script.js",
	})
	defer cleanup()

	cfg := store.GetEffectiveConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "portfolio.example.com", cfg.Domain)
}

func TestPlausibleStore_DatabaseOverridesEnv(t *testing.T) {
	store, cleanup := setupStore(t, config.Plausible{Domain: "env.example.com"})
	defer cleanup()

	require.NoError(t, store.SetDomain("db.example.com"))
	require.NoError(t, store.SetEnabled(false))

	cfg := store.GetEffectiveConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "db.example.com", cfg.Domain)
}

func TestPlausibleStore_DisabledWithoutDomain(t *testing.T) {
	store, cleanup := setupStore(t, config.Plausible{})
	defer cleanup()

	cfg := store.GetEffectiveConfig()
	assert.False(t, cfg.Enabled)
}

func TestBuildScriptURL(t *testing.T) {
	tests := []struct {
		name       string
		base       string
		extensions []string
		want       string
	}{
		{
			name: "no extensions",
			base: "https://plausible.io/js/script.js",
			want: "https://plausible.io/js/script.js",
		},
		{
			name:       "single extension",
			base:       "https://plausible.io/js/script.js",
			extensions: []string{"hash"},
			want:       "https://plausible.io/js/script.hash.js",
		},
		{
			name:       "multiple extensions",
			base:       "https://plausible.io/js/script.js",
			extensions: []string{"outbound-links", "hash"},
			want:       "https://plausible.io/js/script.outbound-links.hash.js",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildScriptURL(tt.base, tt.extensions))
		})
	}
}

func TestGenerateScriptTag(t *testing.T) {
	tag := GenerateScriptTag(&PlausibleConfig{
		Enabled:   true,
		Domain:    "portfolio.example.com",
		ScriptURL: "https://plausible.io/js/script.js",
	})
	assert.Contains(t, string(tag), `data-domain="portfolio.example.com"`)

	assert.Empty(t, GenerateScriptTag(&PlausibleConfig{Enabled: false}))
}

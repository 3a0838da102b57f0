// Package database owns the SQLite connection and schema migration.
//
// Repositories for individual tables live in subpackages (preferences,
// messages, pageviews, settings) and receive the shared *gorm.DB.
package database

package db

import (
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/solenelark/glowlog/migrations"
)

// applyEmbeddedMigrations runs forward-only SQL migrations from the embedded
// filesystem. Applied versions are tracked in schema_migrations so reopening
// an existing database is a no-op.
func applyEmbeddedMigrations(database *gorm.DB) error {
	if err := database.Exec(
		"CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP)",
	).Error; err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	entries, err := migrations.Files.ReadDir(".")
	if err != nil {
		return fmt.Errorf("read embedded migrations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		applied, err := migrationApplied(database, name)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		raw, err := migrations.Files.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		err = database.Transaction(func(tx *gorm.DB) error {
			for _, statement := range splitStatements(string(raw)) {
				if err := tx.Exec(statement).Error; err != nil {
					return fmt.Errorf("migration %s: %w", name, err)
				}
			}
			return tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", name).Error
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func migrationApplied(database *gorm.DB, version string) (bool, error) {
	var count int64
	err := database.Raw(
		"SELECT COUNT(*) FROM schema_migrations WHERE version = ?", version,
	).Scan(&count).Error
	if err != nil {
		return false, fmt.Errorf("check migration %s: %w", version, err)
	}
	return count > 0, nil
}

// splitStatements breaks a migration file into individual statements on
// semicolons. Migrations keep to plain DDL and UPDATEs, so no statement
// contains a literal semicolon.
func splitStatements(script string) []string {
	parts := strings.Split(script, ";")
	statements := make([]string, 0, len(parts))
	for _, part := range parts {
		statement := strings.TrimSpace(part)
		if statement == "" || isCommentOnly(statement) {
			continue
		}
		statements = append(statements, statement)
	}
	return statements
}

func isCommentOnly(statement string) bool {
	for _, line := range strings.Split(statement, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		return false
	}
	return true
}

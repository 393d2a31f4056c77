package db

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/solenelark/glowlog/migrations"
)

func TestOpenSQLiteAppliesEmbeddedMigrationsOnCleanDatabase(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "glowlog-clean.db")
	database := openSQLiteForBootstrapTest(t, databasePath)

	for _, table := range []string{"users", "routine_steps", "completion_records", "products", "catalog_entries"} {
		if !database.Migrator().HasTable(table) {
			t.Fatalf("expected table %s to exist after migrations", table)
		}
	}

	versions := loadAppliedVersions(t, database)
	if len(versions) == 0 {
		t.Fatal("expected at least one applied migration version")
	}
	for index := 1; index < len(versions); index++ {
		if versions[index-1] >= versions[index] {
			t.Fatalf("expected versions in ascending order, got %v", versions)
		}
	}
}

func TestOpenSQLiteRewritesLegacyScheduleTypes(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "glowlog-legacy.db")
	seedLegacySchedules(t, databasePath)

	database := openSQLiteForBootstrapTest(t, databasePath)

	var rows []struct {
		Name     string `gorm:"column:name"`
		Schedule string `gorm:"column:schedule"`
	}
	if err := database.Raw(`SELECT name, schedule FROM routine_steps ORDER BY id ASC`).Scan(&rows).Error; err != nil {
		t.Fatalf("load migrated steps: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 seeded steps, got %d", len(rows))
	}

	for _, row := range rows {
		if strings.Contains(row.Schedule, `"regular"`) || strings.Contains(row.Schedule, `"rota"`) {
			t.Fatalf("expected legacy type names to be rewritten, step %s kept %s", row.Name, row.Schedule)
		}
	}
	if !strings.Contains(rows[0].Schedule, `"schedule_type":"interval"`) {
		t.Fatalf("expected regular to become interval, got %s", rows[0].Schedule)
	}
	if !strings.Contains(rows[1].Schedule, `"schedule_type":"cycle"`) {
		t.Fatalf("expected rota to become cycle, got %s", rows[1].Schedule)
	}
	if !strings.Contains(rows[2].Schedule, `"schedule_type":"weekly"`) {
		t.Fatalf("expected weekly to stay weekly, got %s", rows[2].Schedule)
	}
}

func TestOpenSQLiteMigrationBootstrapIsIdempotent(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "glowlog-idempotent.db")

	firstOpen, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("first open sqlite: %v", err)
	}
	firstVersions := loadAppliedVersions(t, firstOpen)
	closeBootstrapDatabase(t, firstOpen)

	secondOpen := openSQLiteForBootstrapTest(t, databasePath)
	secondVersions := loadAppliedVersions(t, secondOpen)

	if !reflect.DeepEqual(firstVersions, secondVersions) {
		t.Fatalf("expected applied versions to remain unchanged between boots, before=%v after=%v", firstVersions, secondVersions)
	}
}

func openSQLiteForBootstrapTest(t *testing.T, databasePath string) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database
}

func closeBootstrapDatabase(t *testing.T, database *gorm.DB) {
	t.Helper()

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close sql db: %v", err)
	}
}

// seedLegacySchedules builds a database that stops short of the schedule
// rewrite migration, the shape older exports land in.
func seedLegacySchedules(t *testing.T, databasePath string) {
	t.Helper()

	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", databasePath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open legacy sqlite: %v", err)
	}

	initSQL, err := migrations.Files.ReadFile("0001_init.sql")
	if err != nil {
		t.Fatalf("read init migration: %v", err)
	}
	for _, statement := range splitStatements(string(initSQL)) {
		if err := database.Exec(statement).Error; err != nil {
			t.Fatalf("apply init migration: %v", err)
		}
	}

	if err := database.Exec(
		"CREATE TABLE schema_migrations (version TEXT PRIMARY KEY, applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP)",
	).Error; err != nil {
		t.Fatalf("create schema_migrations: %v", err)
	}
	if err := database.Exec(
		"INSERT INTO schema_migrations (version) VALUES ('0001_init.sql')",
	).Error; err != nil {
		t.Fatalf("record init migration: %v", err)
	}

	if err := database.Exec(
		`INSERT INTO users (email, password_hash) VALUES ('legacy@example.com', 'legacy-hash')`,
	).Error; err != nil {
		t.Fatalf("insert legacy user: %v", err)
	}

	seeds := []struct {
		name     string
		schedule string
	}{
		{"Retinol", `{"schedule_type":"regular","interval_days":3,"schedule_start_date":"2026-01-05"}`},
		{"Acids", `{"schedule_type":"rota","schedule_rota_length":4,"schedule_rota_days":[1,3],"schedule_start_date":"2026-01-05"}`},
		{"Cleanser", `{"schedule_type":"weekly","days":["monday","wednesday","friday"]}`},
	}
	for _, seed := range seeds {
		if err := database.Exec(
			`INSERT INTO routine_steps (user_id, name, time_of_day, schedule) VALUES (1, ?, 'evening', ?)`,
			seed.name,
			seed.schedule,
		).Error; err != nil {
			t.Fatalf("insert legacy step %s: %v", seed.name, err)
		}
	}

	closeBootstrapDatabase(t, database)
}

func loadAppliedVersions(t *testing.T, database *gorm.DB) []string {
	t.Helper()

	var rows []struct {
		Version string `gorm:"column:version"`
	}
	if err := database.Raw(`SELECT version FROM schema_migrations ORDER BY version ASC`).Scan(&rows).Error; err != nil {
		t.Fatalf("load applied migration versions: %v", err)
	}

	versions := make([]string, 0, len(rows))
	for _, row := range rows {
		versions = append(versions, row.Version)
	}
	return versions
}

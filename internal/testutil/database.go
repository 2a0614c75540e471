package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA timezone = 'UTC'",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE holding (
			ticker TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			shares REAL NOT NULL CHECK (shares >= 0),
			purchase_price REAL NOT NULL CHECK (purchase_price >= 0),
			current_price REAL NOT NULL CHECK (current_price >= 0),
			currency TEXT NOT NULL DEFAULT 'USD'
		);

		CREATE TABLE dividend_event (
			id TEXT PRIMARY KEY,
			ticker TEXT NOT NULL,
			payment_date TEXT NOT NULL,
			amount_per_share REAL NOT NULL CHECK (amount_per_share >= 0),
			shares_owned REAL NOT NULL CHECK (shares_owned >= 0),
			payment_status TEXT NOT NULL DEFAULT 'pending',
			created_at TEXT NOT NULL
		);

		CREATE INDEX idx_dividend_event_ticker ON dividend_event (ticker);
		CREATE INDEX idx_dividend_event_payment_date ON dividend_event (payment_date);

		CREATE TABLE payment_schedule (
			ticker TEXT PRIMARY KEY,
			frequency TEXT NOT NULL,
			typical_amount REAL NOT NULL CHECK (typical_amount >= 0),
			last_ex_dividend_date TEXT,
			next_payment_date TEXT
		);
	`

	_, err := db.Exec(schema)
	return err
}

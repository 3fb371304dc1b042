package persistence

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"telegram-joke-bot/internal/domain/joke"
)

// NewSQLiteDB creates a new SQLite database connection with the joke table
// created and seeded
func NewSQLiteDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps appends and position lookups on one view of the table.
	db.SetMaxOpenConns(1)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	if err := seedJokes(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed jokes: %w", err)
	}

	return db, nil
}

func createTables(db *sql.DB) error {
	jokesTable := `
	CREATE TABLE IF NOT EXISTS jokes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		text TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	_, err := db.Exec(jokesTable)
	if err != nil {
		return fmt.Errorf("failed to create jokes table: %w", err)
	}

	return nil
}

func seedJokes(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM jokes").Scan(&count); err != nil {
		return fmt.Errorf("failed to count jokes: %w", err)
	}

	if count > 0 {
		return nil
	}

	_, err := db.Exec("INSERT INTO jokes (text) VALUES (?)", joke.DefaultText)
	if err != nil {
		return fmt.Errorf("failed to insert default joke: %w", err)
	}

	return nil
}

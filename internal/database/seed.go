package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data.
// It creates a default admin user if none exists, plus the default site
// theme row and a starter set of project categories. The admin will be
// prompted to set up 2FA on first login (totp_enabled = false).
func Seed(db *sql.DB) error {
	// Check if any users exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	// Hash the default admin password.
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	// Insert default admin user. 2FA is not enabled — they must set it up
	// on first login.
	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name, role, totp_enabled)
		VALUES ($1, $2, $3, $4, $5)
	`, "admin@archfolio.local", string(hash), "Admin", "admin", false)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	// Site theme row with schema defaults so the theme form always has
	// something to load.
	if _, err := db.Exec(`
		INSERT INTO site_theme (id) VALUES (1)
		ON CONFLICT (id) DO NOTHING
	`); err != nil {
		return fmt.Errorf("seed site theme: %w", err)
	}

	// Starter project categories.
	categories := []struct {
		name, slug string
	}{
		{"Residential", "residential"},
		{"Commercial", "commercial"},
		{"Public & Cultural", "public-cultural"},
		{"Interior", "interior"},
	}
	for i, c := range categories {
		if _, err := db.Exec(`
			INSERT INTO project_categories (name, slug, display_order)
			VALUES ($1, $2, $3)
			ON CONFLICT (slug) DO NOTHING
		`, c.name, c.slug, i); err != nil {
			return fmt.Errorf("seed category %s: %w", c.slug, err)
		}
	}

	slog.Info("database seeded with default admin user",
		"email", "admin@archfolio.local",
		"password", "admin",
	)

	return nil
}

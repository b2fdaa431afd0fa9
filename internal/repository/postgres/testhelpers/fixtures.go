package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// LoadFixtures loads SQL fixture files into the database
func LoadFixtures(db *sql.DB, fixturesPath string, files []string) error {
	for _, file := range files {
		path := filepath.Join(fixturesPath, file)
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", file, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("load fixture %s: %w", file, err)
		}
	}

	return nil
}

// DropDetailsView removes the joined view so the fallback path can be exercised
func DropDetailsView(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, "DROP VIEW IF EXISTS list_item_details"); err != nil {
		return fmt.Errorf("drop list_item_details: %w", err)
	}
	return nil
}

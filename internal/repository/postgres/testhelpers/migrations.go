package testhelpers

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ApplyMigrations applies every .up.sql file from migrationsPath in name order
func ApplyMigrations(db *sql.DB, migrationsPath string) error {
	return applyMigrations(db, migrationsPath, ".up.sql", false)
}

// RevertMigrations applies every .down.sql file from migrationsPath in reverse name order
func RevertMigrations(db *sql.DB, migrationsPath string) error {
	return applyMigrations(db, migrationsPath, ".down.sql", true)
}

func applyMigrations(db *sql.DB, migrationsPath, suffix string, reverse bool) error {
	files, err := os.ReadDir(migrationsPath)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	var names []string
	for _, f := range files {
		if strings.HasSuffix(f.Name(), suffix) {
			names = append(names, f.Name())
		}
	}
	sort.Strings(names)
	if reverse {
		sort.Sort(sort.Reverse(sort.StringSlice(names)))
	}

	for _, file := range names {
		content, err := os.ReadFile(filepath.Join(migrationsPath, file))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", file, err)
		}
	}

	return nil
}

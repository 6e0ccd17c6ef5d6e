package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kmorales-dev/closetwish-backend/pkg/migrate"
)

func TestMigrationDirIsValid(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations dir: %v", err)
	}
}

func TestWishlistItemsMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "*_create_wishlist_items.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS wishlist_items",
		"CONSTRAINT wishlist_items_wishlist_clothing_key UNIQUE (wishlist_id, clothing_item_id)",
		"FOREIGN KEY (wishlist_id) REFERENCES wishlists(id) ON DELETE CASCADE",
		"FOREIGN KEY (clothing_item_id) REFERENCES clothing_items(id) ON DELETE CASCADE",
		"DROP TABLE IF EXISTS wishlist_items",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestSurveysMigrationEnforcesOneRowPerUser(t *testing.T) {
	content := readMigration(t, "*_create_surveys.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS surveys",
		"CONSTRAINT surveys_user_id_key UNIQUE (user_id)",
		"FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func readMigration(t *testing.T, pattern string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration matching %q", pattern)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}

package migrations

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMigrationVersion(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"001_init.sql", "001"},
		{"002_auth_tokens.sql", "002"},
		{"010_add_index.sql", "010"},
		{"migrations/001_init.sql", "001"},
		{"003.sql", "003.sql"}, // no separator, whole name is the version
	}

	for _, tt := range tests {
		if got := MigrationVersion(tt.filename); got != tt.want {
			t.Errorf("MigrationVersion(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestListSQLFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_auth_tokens.sql", "001_init.sql", "notes.txt", "003_later.sql"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("-- test"), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "004_dir.sql"), 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}

	files, err := ListSQLFiles(dir)
	if err != nil {
		t.Fatalf("ListSQLFiles() error = %v", err)
	}

	want := []string{"001_init.sql", "002_auth_tokens.sql", "003_later.sql"}
	if len(files) != len(want) {
		t.Fatalf("ListSQLFiles() = %v, want %v", files, want)
	}
	for i, name := range want {
		if files[i] != name {
			t.Errorf("ListSQLFiles()[%d] = %q, want %q", i, files[i], name)
		}
	}
}

func TestListSQLFiles_MissingDir(t *testing.T) {
	if _, err := ListSQLFiles(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("ListSQLFiles() succeeded for a missing directory")
	}
}

func TestBundledMigrationsOrdered(t *testing.T) {
	// The real migration files must carry distinct, ordered versions.
	files, err := ListSQLFiles(filepath.Join("..", "..", "..", "migrations"))
	if err != nil {
		t.Fatalf("ListSQLFiles() error = %v", err)
	}
	if len(files) < 2 {
		t.Fatalf("expected at least 2 migration files, got %v", files)
	}

	seen := make(map[string]bool)
	for _, name := range files {
		version := MigrationVersion(name)
		if seen[version] {
			t.Errorf("duplicate migration version %q", version)
		}
		seen[version] = true
	}
}

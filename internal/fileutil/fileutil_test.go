package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := []byte("[format]\ninclude_brackets = true\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	dst, err := Backup(path)
	if err != nil {
		t.Fatal(err)
	}
	if dst != path+".bak" {
		t.Fatalf("unexpected backup path %q", dst)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Fatalf("content mismatch: got %q, want %q", got, content)
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode mismatch: got %o, want 600", info.Mode().Perm())
	}
}

func TestBackupOverwritesPreviousBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path+".bak", []byte("stale stale stale"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("fresh"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Backup(path); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path + ".bak")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "fresh" {
		t.Fatalf("expected truncated backup, got %q", got)
	}
}

func TestBackupErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Backup(filepath.Join(dir, "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := Backup(dir); err == nil {
		t.Fatal("expected error for directory")
	}
}

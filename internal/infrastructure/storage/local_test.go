package storage

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/devfolio/portfolio-api/internal/core/ports"
)

var storedNameRe = regexp.MustCompile(`^[0-9a-f]{16}\.png$`)

func TestLocalStore_Save(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	name, err := store.Save("projects", ports.FileUpload{
		Filename: "screenshot.png",
		Reader:   strings.NewReader("image bytes"),
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !storedNameRe.MatchString(name) {
		t.Fatalf("expected 16 hex chars plus extension, got %q", name)
	}

	data, err := os.ReadFile(store.Path("projects", name))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "image bytes" {
		t.Fatalf("stored content mismatch: %q", data)
	}
}

func TestLocalStore_Save_NoExtension(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	name, err := store.Save("files", ports.FileUpload{
		Filename: "README",
		Reader:   strings.NewReader("x"),
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if len(name) != 16 || strings.Contains(name, ".") {
		t.Fatalf("expected bare 16 hex chars, got %q", name)
	}
}

func TestLocalStore_Save_UniqueNames(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		name, err := store.Save("projects", ports.FileUpload{
			Filename: "same.png",
			Reader:   strings.NewReader("x"),
		})
		if err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
		if seen[name] {
			t.Fatalf("duplicate generated name %q", name)
		}
		seen[name] = true
	}
}

func TestLocalStore_Remove(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	name, err := store.Save("site", ports.FileUpload{
		Filename: "hero.png",
		Reader:   strings.NewReader("x"),
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := store.Remove("site", name); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := os.Stat(store.Path("site", name)); !os.IsNotExist(err) {
		t.Fatalf("file still present after remove")
	}

	// Removing again, or removing a name that never existed, is a no-op.
	if err := store.Remove("site", name); err != nil {
		t.Fatalf("second remove should be a no-op, got %v", err)
	}
	if err := store.Remove("site", ""); err != nil {
		t.Fatalf("empty filename should be a no-op, got %v", err)
	}
}

func TestLocalStore_Path_StripsDirectories(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStore(root)

	got := store.Path("site", "../../etc/passwd")
	want := filepath.Join(root, "site", "passwd")
	if got != want {
		t.Fatalf("expected traversal stripped: got %q, want %q", got, want)
	}
}

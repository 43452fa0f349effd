package files

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStorageStoreAndDelete(t *testing.T) {
	d := NewDiskStorage(t.TempDir())

	loc, err := d.Store("Databases", "hw1.pdf", strings.NewReader("payload"))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if loc != d.PathFor("Databases", "hw1.pdf") {
		t.Fatalf("location %q does not match PathFor", loc)
	}
	data, err := os.ReadFile(loc)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("stored content = %q", data)
	}

	if err := d.Delete(loc); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := d.Delete(loc); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete = %v, expected ErrNotFound", err)
	}
}

func TestDiskStoragePathForSanitizesNames(t *testing.T) {
	base := t.TempDir()
	d := NewDiskStorage(base)

	got := d.PathFor("Networking", "../../etc/passwd")
	want := filepath.Join(base, "Networking", "passwd")
	if got != want {
		t.Fatalf("PathFor = %q, expected %q", got, want)
	}
	if d.PathFor("", "") != filepath.Join(base, "unnamed", "unnamed") {
		t.Fatalf("empty names not sanitized: %q", d.PathFor("", ""))
	}
}

func TestDiskStorageDeleteEmptyLocation(t *testing.T) {
	d := NewDiskStorage(t.TempDir())
	if err := d.Delete(""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete(\"\") = %v, expected ErrNotFound", err)
	}
}

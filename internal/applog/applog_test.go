package applog

import (
	"log"
	"os"
	"path/filepath"
	"testing"
)

// chdirTemp runs the test inside a scratch directory so the relative log
// directory does not touch the repository.
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		os.Chdir(wd)
	})
}

func TestSetupDisabled(t *testing.T) {
	chdirTemp(t)
	f, err := Setup(false)
	if err != nil || f != nil {
		t.Fatalf("expected no file and no error, got %v, %v", f, err)
	}
	if _, err := os.Stat(Dir); !os.IsNotExist(err) {
		t.Error("log directory created without debug")
	}
}

func TestSetupWritesFile(t *testing.T) {
	chdirTemp(t)
	f, err := Setup(true)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer f.Close()

	log.Println("test log message")

	info, err := os.Stat(filepath.Join(Dir, FileName))
	if err != nil {
		t.Fatalf("stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected log file to contain content")
	}
}

func TestSetupRotatesLargeFile(t *testing.T) {
	chdirTemp(t)
	if err := os.MkdirAll(Dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(Dir, FileName)
	if err := os.WriteFile(path, make([]byte, MaxSize+1), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Setup(true)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer f.Close()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > MaxSize {
		t.Errorf("expected a fresh log file after rotation, size %d", info.Size())
	}
	entries, err := os.ReadDir(Dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("expected current and rotated files, found %d entries", len(entries))
	}
}

package resolve

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/zenchantlive/SpeedTake/internal/model"
)

func TestResolve_LocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.mp4")
	if err := os.WriteFile(path, []byte("fake video"), 0o644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	service := NewService()
	ri, err := service.Resolve(context.Background(), model.NewLocalFile(path), "")
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}

	if ri.Path != path {
		t.Errorf("Resolve() path = %q, expected %q", ri.Path, path)
	}
	if ri.Temporary {
		t.Error("Resolve() for local file should not be temporary")
	}
	if ri.ScratchDir != "" {
		t.Errorf("Resolve() for local file should have no scratch dir, got %q", ri.ScratchDir)
	}
}

func TestResolve_LocalFileMissing(t *testing.T) {
	service := NewService()
	rec := model.NewLocalFile(filepath.Join(t.TempDir(), "vanished.mp4"))

	_, err := service.Resolve(context.Background(), rec, "")
	if err == nil {
		t.Fatal("Resolve() expected error for missing file, got nil")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Resolve() error = %v, expected to wrap fs.ErrNotExist", err)
	}

	var de *DownloadError
	if errors.As(err, &de) {
		t.Error("Resolve() for a local file must not produce a DownloadError")
	}
}

func TestDownloadError_Unwrap(t *testing.T) {
	cause := errors.New("network unreachable")
	err := &DownloadError{URL: "https://youtu.be/abc123", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("DownloadError should unwrap to its cause")
	}
	if err.Error() != "download failed for https://youtu.be/abc123: network unreachable" {
		t.Errorf("DownloadError message = %q", err.Error())
	}
}

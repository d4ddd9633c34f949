package resolve

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/zenchantlive/SpeedTake/internal/model"
)

func TestLedger_ReleaseTemporaryFile(t *testing.T) {
	scratch, err := os.MkdirTemp(t.TempDir(), "speedtake-*")
	if err != nil {
		t.Fatalf("Failed to create scratch dir: %v", err)
	}
	path := filepath.Join(scratch, "downloaded.webm")
	if err := os.WriteFile(path, []byte("audio"), 0o644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	ledger := NewLedger()
	ledger.Release(&model.ResolvedInput{Path: path, Temporary: true, ScratchDir: scratch})

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Temporary file should have been removed")
	}
	if _, err := os.Stat(scratch); !os.IsNotExist(err) {
		t.Error("Scratch directory should have been removed")
	}
}

func TestLedger_ReleaseKeepsPermanentFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "local.mp4")
	if err := os.WriteFile(path, []byte("video"), 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	ledger := NewLedger()
	ledger.Release(&model.ResolvedInput{Path: path, Temporary: false})

	if _, err := os.Stat(path); err != nil {
		t.Errorf("Permanent file should survive release, stat error: %v", err)
	}
}

func TestLedger_ReleaseExactlyOnce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "once.webm")
	if err := os.WriteFile(path, []byte("audio"), 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	ledger := NewLedger()
	ri := &model.ResolvedInput{Path: path, Temporary: true}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ledger.Release(ri)
		}()
	}
	wg.Wait()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Temporary file should have been removed")
	}

	// A second round after completion must stay a no-op.
	ledger.Release(ri)
}

func TestLedger_ReleaseNil(t *testing.T) {
	ledger := NewLedger()
	ledger.Release(nil)
	ledger.Release(&model.ResolvedInput{})
}

package resolve

import (
	"log"
	"os"
	"sync"

	"github.com/zenchantlive/SpeedTake/internal/model"
)

// Ledger reclaims temporary files and scratch directories created during a
// batch. Cleanup is best effort: filesystem errors are logged and swallowed
// so they never mask the item's primary result. Each resolved input is
// released at most once, even under concurrent calls.
type Ledger struct {
	mu       sync.Mutex
	released map[string]struct{}
}

// NewLedger creates an empty ledger for one batch run.
func NewLedger() *Ledger {
	return &Ledger{
		released: make(map[string]struct{}),
	}
}

// Release deletes the resolved file if it is temporary and removes any
// scratch directory attached to it. Calling Release twice for the same
// resolved input, or with nil, is a no-op.
func (l *Ledger) Release(ri *model.ResolvedInput) {
	if ri == nil || ri.Path == "" {
		return
	}

	l.mu.Lock()
	if _, done := l.released[ri.Path]; done {
		l.mu.Unlock()
		return
	}
	l.released[ri.Path] = struct{}{}
	l.mu.Unlock()

	if ri.Temporary {
		if _, err := os.Stat(ri.Path); err == nil {
			if err := os.Remove(ri.Path); err != nil {
				log.Printf("Failed to remove temporary file %s: %v", ri.Path, err)
			}
		}
	}

	if ri.ScratchDir != "" {
		if err := os.RemoveAll(ri.ScratchDir); err != nil {
			log.Printf("Failed to remove scratch directory %s: %v", ri.ScratchDir, err)
		}
	}
}

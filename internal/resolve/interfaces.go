package resolve

import (
	"context"

	"github.com/zenchantlive/SpeedTake/internal/model"
)

// Resolver defines the interface for turning a record into a local file.
type Resolver interface {
	// Resolve produces a local file for the record. destDir is the
	// user-chosen output directory; when empty, remote downloads go into a
	// freshly created scratch directory recorded on the ResolvedInput.
	Resolve(ctx context.Context, rec model.Record, destDir string) (*model.ResolvedInput, error)
}

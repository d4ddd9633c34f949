package transcode

import (
	"context"

	"github.com/zenchantlive/SpeedTake/internal/model"
)

// Transcoder defines the interface for the audio extraction service.
type Transcoder interface {
	// Available probes for a usable ffmpeg binary. It is idempotent and
	// safe to repeat; the located path is cached for the service lifetime.
	Available(ctx context.Context) error

	// Transcode extracts the audio track of inputPath into format. destDir
	// selects the output directory; when empty, the output is written next
	// to the input. The produced file path is returned.
	Transcode(ctx context.Context, inputPath string, format model.OutputFormat, destDir string) (string, error)
}

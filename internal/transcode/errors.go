package transcode

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotAvailable is returned when no working ffmpeg binary can be located.
var ErrNotAvailable = errors.New("ffmpeg binary not found")

// TranscodeError reports a failed ffmpeg invocation. Stderr carries the
// captured diagnostic output of the process.
type TranscodeError struct {
	ExitCode int
	Stderr   string
}

// Error returns the error message, preferring ffmpeg's own diagnostics.
func (e *TranscodeError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("ffmpeg exited with code %d", e.ExitCode)
	}
	return fmt.Sprintf("ffmpeg exited with code %d: %s", e.ExitCode, msg)
}

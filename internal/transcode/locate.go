package transcode

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// FFmpeg binary names
const (
	FFmpegCommand        = "ffmpeg"
	FFmpegCommandWindows = "ffmpeg.exe"
)

// Locate finds a working ffmpeg binary. A binary placed next to the running
// executable wins over one discoverable on the search path. Every candidate
// is verified with a -version probe; the first one that runs cleanly is
// returned. Locate is idempotent and safe to repeat.
func Locate(ctx context.Context) (string, error) {
	for _, candidate := range candidates() {
		if probe(ctx, candidate) == nil {
			return candidate, nil
		}
	}
	return "", ErrNotAvailable
}

// candidates lists the ffmpeg paths to try, in preference order.
func candidates() []string {
	name := FFmpegCommand
	if runtime.GOOS == "windows" {
		name = FFmpegCommandWindows
	}

	var out []string
	if exe, err := os.Executable(); err == nil {
		local := filepath.Join(filepath.Dir(exe), name)
		if _, err := os.Stat(local); err == nil {
			out = append(out, local)
		}
	}
	if path, err := exec.LookPath(name); err == nil {
		out = append(out, path)
	}
	return out
}

// probe runs `<binary> -version` and reports whether it succeeded.
func probe(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, path, "-version")
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run()
}

package transcode

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/zenchantlive/SpeedTake/internal/model"
)

// fakeFFmpegOK answers the -version probe and creates its output file,
// recording the arguments it was invoked with next to itself.
const fakeFFmpegOK = `#!/bin/sh
if [ "$1" = "-version" ]; then
  exit 0
fi
echo "$@" > "${0%/*}/args.txt"
for last do :; done
: > "$last"
exit 0
`

// fakeFFmpegFail answers the probe but fails every transcode.
const fakeFFmpegFail = `#!/bin/sh
if [ "$1" = "-version" ]; then
  exit 0
fi
echo "conversion failed" >&2
exit 3
`

func writeFakeFFmpeg(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake ffmpeg scripts require a POSIX shell")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, FFmpegCommand)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("Failed to write fake ffmpeg: %v", err)
	}
	t.Setenv("PATH", dir)
	return dir
}

func writeInput(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("fake video"), 0o644); err != nil {
		t.Fatalf("Failed to write input file: %v", err)
	}
	return path
}

func TestBuildFFmpegArgs(t *testing.T) {
	args := BuildFFmpegArgs("/videos/clip.mp4", model.FormatFLAC, "/out/clip.flac")
	expected := []string{"-i", "/videos/clip.mp4", "-vn", "-y", "-acodec", "flac", "/out/clip.flac"}
	if !reflect.DeepEqual(args, expected) {
		t.Errorf("BuildFFmpegArgs() = %v, expected %v", args, expected)
	}
}

func TestTranscode_Success(t *testing.T) {
	binDir := writeFakeFFmpeg(t, fakeFFmpegOK)
	input := writeInput(t, "clip.mp4")
	outDir := t.TempDir()

	service := NewService()
	out, err := service.Transcode(context.Background(), input, model.FormatMP3, outDir)
	if err != nil {
		t.Fatalf("Transcode() unexpected error: %v", err)
	}

	expected := filepath.Join(outDir, "clip.mp3")
	if out != expected {
		t.Errorf("Transcode() output = %q, expected %q", out, expected)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("Output file should exist: %v", err)
	}

	recorded, err := os.ReadFile(filepath.Join(binDir, "args.txt"))
	if err != nil {
		t.Fatalf("Fake ffmpeg did not record its arguments: %v", err)
	}
	if !strings.Contains(string(recorded), "-acodec libmp3lame") {
		t.Errorf("ffmpeg invocation %q should select the mp3 codec", string(recorded))
	}
	if !strings.Contains(string(recorded), "-vn") {
		t.Errorf("ffmpeg invocation %q should suppress the video stream", string(recorded))
	}
}

func TestTranscode_DefaultDestination(t *testing.T) {
	writeFakeFFmpeg(t, fakeFFmpegOK)
	input := writeInput(t, "movie.mkv")

	service := NewService()
	out, err := service.Transcode(context.Background(), input, model.FormatWAV, "")
	if err != nil {
		t.Fatalf("Transcode() unexpected error: %v", err)
	}

	expected := filepath.Join(filepath.Dir(input), "movie.wav")
	if out != expected {
		t.Errorf("Transcode() output = %q, expected next to input %q", out, expected)
	}
}

func TestTranscode_Failure(t *testing.T) {
	writeFakeFFmpeg(t, fakeFFmpegFail)
	input := writeInput(t, "clip.mp4")

	service := NewService()
	_, err := service.Transcode(context.Background(), input, model.FormatAAC, t.TempDir())
	if err == nil {
		t.Fatal("Transcode() expected error, got nil")
	}

	var te *TranscodeError
	if !errors.As(err, &te) {
		t.Fatalf("Transcode() error = %T, expected *TranscodeError", err)
	}
	if te.ExitCode != 3 {
		t.Errorf("TranscodeError.ExitCode = %d, expected 3", te.ExitCode)
	}
	if !strings.Contains(te.Stderr, "conversion failed") {
		t.Errorf("TranscodeError.Stderr = %q, expected captured diagnostics", te.Stderr)
	}
}

func TestLocate_NotFound(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH manipulation test requires a POSIX shell")
	}
	t.Setenv("PATH", t.TempDir())

	_, err := Locate(context.Background())
	if !errors.Is(err, ErrNotAvailable) {
		t.Errorf("Locate() error = %v, expected ErrNotAvailable", err)
	}
}

func TestService_CachesBinaryPath(t *testing.T) {
	writeFakeFFmpeg(t, fakeFFmpegOK)

	service := NewService()
	if err := service.Available(context.Background()); err != nil {
		t.Fatalf("Available() unexpected error: %v", err)
	}

	// Once located, the path stays cached even if the binary disappears
	// from the search path.
	t.Setenv("PATH", t.TempDir())
	if err := service.Available(context.Background()); err != nil {
		t.Errorf("Available() after caching should still succeed, got %v", err)
	}
}

package transcode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/zenchantlive/SpeedTake/internal/model"
)

// Output directory permissions
const DefaultDirPermissions = 0o755

// Service runs ffmpeg audio extraction. The binary path is located lazily
// on first use and cached; Available can be called up front to surface a
// missing binary before a batch starts.
type Service struct {
	mu   sync.Mutex
	path string
}

// NewService creates a new transcode service.
func NewService() *Service {
	return &Service{}
}

// Available implements Transcoder.
func (s *Service) Available(ctx context.Context) error {
	_, err := s.binary(ctx)
	return err
}

// BinaryPath returns the located ffmpeg path, probing for it if needed.
func (s *Service) BinaryPath(ctx context.Context) (string, error) {
	return s.binary(ctx)
}

// binary returns the cached ffmpeg path, locating it on first call.
func (s *Service) binary(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.path != "" {
		return s.path, nil
	}
	path, err := Locate(ctx)
	if err != nil {
		return "", err
	}
	s.path = path
	return path, nil
}

// Transcode implements Transcoder. A single attempt is made per call;
// transient failures are surfaced to the caller, not retried.
func (s *Service) Transcode(ctx context.Context, inputPath string, format model.OutputFormat, destDir string) (string, error) {
	bin, err := s.binary(ctx)
	if err != nil {
		return "", err
	}

	dir := destDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	outputPath := filepath.Join(dir, outputName(inputPath, format))

	args := BuildFFmpegArgs(inputPath, format, outputPath)
	cmd := exec.CommandContext(ctx, bin, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", &TranscodeError{ExitCode: exitCode, Stderr: stderr.String()}
	}

	return outputPath, nil
}

// BuildFFmpegArgs builds the ffmpeg command arguments for one extraction.
func BuildFFmpegArgs(inputPath string, format model.OutputFormat, outputPath string) []string {
	return []string{
		"-i", inputPath, // Input file
		"-vn",                     // Suppress the video stream
		"-y",                      // Overwrite output file
		"-acodec", format.Codec(), // Audio codec per format
		outputPath, // Output file
	}
}

// outputName derives the output file name: input stem plus format extension.
func outputName(inputPath string, format model.OutputFormat) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + format.Ext()
}

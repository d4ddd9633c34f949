package resolve

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/lrstanley/go-ytdlp"

	"github.com/zenchantlive/SpeedTake/internal/model"
)

// Downloader configuration constants
const (
	ScratchDirPattern = "speedtake-*"
	OutputTemplate    = "%(title)s.%(ext)s"
	AudioFormat       = "bestaudio/best"
)

// Service resolves queued records into local media files.
type Service struct{}

// NewService creates a new resolver service.
func NewService() *Service {
	return &Service{}
}

// Resolve produces a local file for the record. Local files are returned
// verbatim after an existence check; remote references are downloaded.
func (s *Service) Resolve(ctx context.Context, rec model.Record, destDir string) (*model.ResolvedInput, error) {
	if rec.Kind == model.KindLocalFile {
		if _, err := os.Stat(rec.Path); err != nil {
			return nil, fmt.Errorf("input file not found: %w", err)
		}
		return &model.ResolvedInput{Path: rec.Path}, nil
	}
	return s.download(ctx, rec.URL, destDir)
}

// download fetches the best available audio stream for a single URL.
// Playlist expansion is disabled so one URL yields exactly one media item.
func (s *Service) download(ctx context.Context, url, destDir string) (*model.ResolvedInput, error) {
	dir := destDir
	scratch := ""
	if dir == "" {
		created, err := os.MkdirTemp("", ScratchDirPattern)
		if err != nil {
			return nil, &DownloadError{URL: url, Err: err}
		}
		dir = created
		scratch = created
	}

	dl := ytdlp.New().
		NoPlaylist().
		Format(AudioFormat).
		ForceOverwrites().
		RestrictFilenames().
		Output(filepath.Join(dir, OutputTemplate))

	result, err := dl.Run(ctx, url)
	if err != nil {
		removeScratch(scratch)
		return nil, &DownloadError{URL: url, Err: err}
	}

	path, err := downloadedFile(result)
	if err != nil {
		removeScratch(scratch)
		return nil, &DownloadError{URL: url, Err: err}
	}

	return &model.ResolvedInput{Path: path, Temporary: true, ScratchDir: scratch}, nil
}

// downloadedFile locates the produced media file in a yt-dlp result.
func downloadedFile(result *ytdlp.Result) (string, error) {
	info, err := result.GetExtractedInfo()
	if err != nil {
		return "", fmt.Errorf("failed to read download metadata: %w", err)
	}
	for _, entry := range info {
		if entry.Filename == nil || *entry.Filename == "" {
			continue
		}
		if _, err := os.Stat(*entry.Filename); err != nil {
			continue
		}
		return *entry.Filename, nil
	}
	return "", fmt.Errorf("downloader produced no output file")
}

// removeScratch deletes a scratch directory created for a failed attempt.
func removeScratch(dir string) {
	if dir == "" {
		return
	}
	if err := os.RemoveAll(dir); err != nil {
		log.Printf("Failed to remove scratch directory %s: %v", dir, err)
	}
}

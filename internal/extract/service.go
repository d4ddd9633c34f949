package extract

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zenchantlive/SpeedTake/internal/model"
	"github.com/zenchantlive/SpeedTake/internal/platform"
	"github.com/zenchantlive/SpeedTake/internal/resolve"
	"github.com/zenchantlive/SpeedTake/internal/transcode"
)

// Item ID prefix
const ItemIDPrefix = "item-"

// videoExtensions is the allow-list used when scanning folders
// (lowercase, with leading dot).
var videoExtensions = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mkv":  true,
	".mov":  true,
	".wmv":  true,
	".flv":  true,
	".webm": true,
	".m4v":  true,
}

// VideoExtensions returns the recognized video file extensions, sorted,
// each with a leading dot. Front-ends use it to filter file pickers with
// the same allow-list folder scanning applies.
func VideoExtensions() []string {
	exts := make([]string, 0, len(videoExtensions))
	for ext := range videoExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// videoHosts are the recognized video-hosting domain markers for remote
// references. A URL is accepted when its host equals a marker or is a
// subdomain of one.
var videoHosts = []string{
	"youtube.com",
	"youtu.be",
	"vimeo.com",
	"dailymotion.com",
}

// Service is the extraction controller shared by all front-ends. It owns
// the queue, the output configuration, and the batch lifecycle.
type Service struct {
	mu         sync.Mutex
	items      []*model.QueueItem
	format     model.OutputFormat
	outputDir  string
	batch      model.BatchStatus
	resolver   resolve.Resolver
	transcoder transcode.Transcoder
}

// NewService creates a controller with the given collaborators.
func NewService(resolver resolve.Resolver, transcoder transcode.Transcoder) *Service {
	return &Service{
		format:     model.FormatMP3,
		batch:      model.BatchStatusIdle,
		resolver:   resolver,
		transcoder: transcoder,
	}
}

// AddLocalFiles appends records for paths not already queued (by normalized
// path equality) and returns the items actually added.
func (s *Service) AddLocalFiles(paths ...string) ([]*model.QueueItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.batch == model.BatchStatusRunning {
		return nil, ErrBatchRunning
	}
	return s.addLocalLocked(paths), nil
}

// AddFolder recursively enumerates supported video files under folder and
// queues the ones not already present. It returns the added items and the
// total number of video files discovered, so callers can distinguish "no
// videos found" from "already all in queue".
func (s *Service) AddFolder(folder string) ([]*model.QueueItem, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.batch == model.BatchStatusRunning {
		return nil, 0, ErrBatchRunning
	}

	files, err := discoverVideos(folder)
	if err != nil {
		return nil, 0, err
	}
	return s.addLocalLocked(files), len(files), nil
}

// AddRemoteRef validates and queues a video-hosting URL. A duplicate URL
// returns ErrDuplicate and leaves the queue unchanged.
func (s *Service) AddRemoteRef(rawURL string) (*model.QueueItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.batch == model.BatchStatusRunning {
		return nil, ErrBatchRunning
	}

	if err := validateVideoURL(rawURL); err != nil {
		return nil, err
	}

	rec := model.NewRemoteRef(rawURL)
	if s.containsLocked(rec) {
		return nil, fmt.Errorf("%w: %s", ErrDuplicate, rec.URL)
	}

	item := newItem(rec)
	s.items = append(s.items, item)
	return item, nil
}

// ClearFiles empties the queue.
func (s *Service) ClearFiles() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.batch == model.BatchStatusRunning {
		return ErrBatchRunning
	}
	s.items = nil
	return nil
}

// Items returns the queue in insertion order.
func (s *Service) Items() []*model.QueueItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.QueueItem, len(s.items))
	copy(out, s.items)
	return out
}

// SetOutputFormat selects the output format by name. An unsupported name
// is rejected and the previous format stays in effect.
func (s *Service) SetOutputFormat(name string) error {
	format, err := model.ParseOutputFormat(name)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.format = format
	s.mu.Unlock()
	return nil
}

// OutputFormat returns the currently selected output format.
func (s *Service) OutputFormat() model.OutputFormat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.format
}

// SetOutputFolder sets the output directory. An empty value means local
// files output next to their source and downloads use a scratch directory.
func (s *Service) SetOutputFolder(dir string) {
	s.mu.Lock()
	s.outputDir = strings.TrimSpace(dir)
	s.mu.Unlock()
}

// OutputFolder returns the configured output directory, "" if unset.
func (s *Service) OutputFolder() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outputDir
}

// BatchStatus reports the current batch lifecycle state.
func (s *Service) BatchStatus() model.BatchStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.batch
}

// CheckTranscoderAvailable probes for a working ffmpeg binary. The probe is
// idempotent; a located binary is cached by the transcode service.
func (s *Service) CheckTranscoderAvailable(ctx context.Context) error {
	if err := s.transcoder.Available(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrToolUnavailable, err)
	}
	return nil
}

// RunBatch processes the whole queue in order, one item at a time, and
// returns the aggregated result. Per-item failures are recorded and never
// abort the batch; only the pre-flight checks do. RunBatch is synchronous
// and must be called off the UI thread; front-ends run it on a worker
// goroutine and redispatch the callbacks.
func (s *Service) RunBatch(ctx context.Context, cb Callbacks) (*model.ExtractionResult, error) {
	s.mu.Lock()
	if s.batch == model.BatchStatusRunning {
		s.mu.Unlock()
		return nil, ErrBatchRunning
	}
	if len(s.items) == 0 {
		s.mu.Unlock()
		return nil, ErrNoInput
	}
	items := make([]*model.QueueItem, len(s.items))
	copy(items, s.items)
	format := s.format
	outputDir := s.outputDir
	s.batch = model.BatchStatusRunning
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.batch = model.BatchStatusComplete
		s.mu.Unlock()
	}()

	if err := s.CheckTranscoderAvailable(ctx); err != nil {
		return nil, err
	}

	ledger := resolve.NewLedger()
	result := &model.ExtractionResult{TotalFiles: len(items)}

	for i, item := range items {
		s.processItem(ctx, i+1, len(items), item, format, outputDir, ledger, cb, result)
	}

	return result, nil
}

// processItem runs one item through resolve and transcode. Cleanup of the
// resolved input is unconditional: it runs on every exit path, including a
// panic, so one item can never leak its temporary resources.
func (s *Service) processItem(
	ctx context.Context,
	index, total int,
	item *model.QueueItem,
	format model.OutputFormat,
	outputDir string,
	ledger *resolve.Ledger,
	cb Callbacks,
	result *model.ExtractionResult,
) {
	name := item.DisplayName()
	cb.status(index, total, name)

	var resolved *model.ResolvedInput
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Item %s panicked: %v", item.ID, r)
			s.recordFailure(item, result, name, fmt.Errorf("unexpected failure: %v", r), cb)
		}
		ledger.Release(resolved)
		cb.progress(index, total)
	}()

	s.setItemStatus(item, model.ItemStatusResolving)
	ri, err := s.resolver.Resolve(ctx, item.Record, outputDir)
	if err != nil {
		s.recordFailure(item, result, name, err, cb)
		return
	}
	resolved = ri

	s.setItemStatus(item, model.ItemStatusTranscoding)
	outputPath, err := s.transcoder.Transcode(ctx, resolved.Path, format, itemOutputDir(outputDir, resolved))
	if err != nil {
		s.recordFailure(item, result, name, err, cb)
		return
	}

	s.mu.Lock()
	item.Status = model.ItemStatusSucceeded
	item.OutputPath = outputPath
	s.mu.Unlock()

	result.SuccessCount++
	result.LastOutputPath = outputPath
}

// itemOutputDir picks the transcode destination for one item. The user's
// output folder always wins. Without one, a local input keeps its output
// next to the source file, but a downloaded input must not: its parent is
// the scratch directory the ledger deletes after the item, which would
// take the freshly produced audio file with it. Downloaded items without
// a configured folder go to the user's Downloads directory instead.
func itemOutputDir(outputDir string, resolved *model.ResolvedInput) string {
	if outputDir != "" || !resolved.Temporary {
		return outputDir
	}
	dir, err := platform.HomeDownloadsDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "speedtake-out")
	}
	return dir
}

// recordFailure marks the item failed and appends its error to the batch.
func (s *Service) recordFailure(item *model.QueueItem, result *model.ExtractionResult, name string, err error, cb Callbacks) {
	s.mu.Lock()
	item.Status = model.ItemStatusFailed
	item.LastError = err.Error()
	s.mu.Unlock()

	result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", name, err))
	cb.error(name, err)
}

func (s *Service) setItemStatus(item *model.QueueItem, status model.ItemStatus) {
	s.mu.Lock()
	item.Status = status
	s.mu.Unlock()
}

// addLocalLocked appends local-file records not already queued. Caller
// holds s.mu.
func (s *Service) addLocalLocked(paths []string) []*model.QueueItem {
	var added []*model.QueueItem
	for _, path := range paths {
		rec := model.NewLocalFile(path)
		if s.containsLocked(rec) {
			continue
		}
		item := newItem(rec)
		s.items = append(s.items, item)
		added = append(added, item)
	}
	return added
}

func (s *Service) containsLocked(rec model.Record) bool {
	for _, item := range s.items {
		if item.Record.Equal(rec) {
			return true
		}
	}
	return false
}

// discoverVideos walks folder recursively and returns files with supported
// video extensions, sorted for deterministic queue order.
func discoverVideos(folder string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if videoExtensions[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("folder not found: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

// validateVideoURL accepts http(s) URLs whose host belongs to a recognized
// video-hosting domain.
func validateVideoURL(rawURL string) error {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https", ErrInvalidURL)
	}
	host := strings.ToLower(u.Hostname())
	for _, marker := range videoHosts {
		if host == marker || strings.HasSuffix(host, "."+marker) {
			return nil
		}
	}
	return fmt.Errorf("%w: unrecognized host %q", ErrInvalidURL, host)
}

// newItem creates a queue item with a time-ordered unique ID.
func newItem(rec model.Record) *model.QueueItem {
	return &model.QueueItem{
		ID:     generateItemID(),
		Record: rec,
		Status: model.ItemStatusQueued,
	}
}

// generateItemID generates a unique item ID using UUID v7 for better
// uniqueness and time ordering.
func generateItemID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(ItemIDPrefix+"%d", time.Now().UnixNano())
	}
	return ItemIDPrefix + id.String()
}

package extract

import "errors"

var (
	// ErrNoInput is returned when a batch is started with an empty queue.
	ErrNoInput = errors.New("no video files queued")

	// ErrToolUnavailable is returned when no working ffmpeg binary can be
	// located; the batch cannot start without it.
	ErrToolUnavailable = errors.New("ffmpeg is not available")

	// ErrBatchRunning is returned when the queue or a batch is touched
	// while another batch is still in flight.
	ErrBatchRunning = errors.New("a batch is already running")

	// ErrInvalidURL is returned for URLs that are not http(s) links to a
	// recognized video-hosting site.
	ErrInvalidURL = errors.New("not a supported video URL")

	// ErrDuplicate signals that an added source is already in the queue.
	// It is informational; the queue is left unchanged.
	ErrDuplicate = errors.New("already in the queue")
)

package resolve

import "fmt"

// DownloadError reports a failed remote resolution for one item. The
// underlying downloader error is available via Unwrap.
type DownloadError struct {
	URL string
	Err error
}

// Error returns the error message.
func (e *DownloadError) Error() string {
	return fmt.Sprintf("download failed for %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DownloadError) Unwrap() error {
	return e.Err
}

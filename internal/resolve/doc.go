package resolve

// Package resolve turns queued records into concrete local media files ready
// for transcoding. Local files pass through untouched; remote references are
// downloaded via yt-dlp (github.com/lrstanley/go-ytdlp) into the destination
// directory or a per-attempt scratch directory. The package also owns the
// cleanup ledger that reclaims temporary files and scratch directories
// exactly once.

package model

import (
	"path/filepath"
	"strings"
)

// RecordKind discriminates the two source variants a queue entry can hold.
type RecordKind int

const (
	// KindLocalFile is a video file already on the local filesystem
	KindLocalFile RecordKind = iota

	// KindRemoteRef is a video-hosting URL that must be downloaded first
	KindRemoteRef
)

// Record is one queued reference to a video source. Exactly one of Path or
// URL is set, according to Kind. Records are immutable after creation.
type Record struct {
	Kind RecordKind
	Path string // local file path, KindLocalFile only
	URL  string // remote video URL, KindRemoteRef only
}

// NewLocalFile creates a local-file record with a normalized path.
func NewLocalFile(path string) Record {
	return Record{
		Kind: KindLocalFile,
		Path: filepath.Clean(strings.TrimSpace(path)),
	}
}

// NewRemoteRef creates a remote-reference record for a video URL.
func NewRemoteRef(rawURL string) Record {
	return Record{
		Kind: KindRemoteRef,
		URL:  strings.TrimSpace(rawURL),
	}
}

// Equal reports whether two records refer to the same source: same variant
// and same normalized path or URL.
func (r Record) Equal(other Record) bool {
	if r.Kind != other.Kind {
		return false
	}
	if r.Kind == KindLocalFile {
		return r.Path == other.Path
	}
	return r.URL == other.URL
}

// DisplayName returns the name shown in lists and status lines: the base
// file name for local files, the full URL for remote references.
func (r Record) DisplayName() string {
	if r.Kind == KindLocalFile {
		return filepath.Base(r.Path)
	}
	return r.URL
}

// Source returns the raw path or URL the record was created from.
func (r Record) Source() string {
	if r.Kind == KindLocalFile {
		return r.Path
	}
	return r.URL
}

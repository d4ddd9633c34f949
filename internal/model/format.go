package model

import (
	"errors"
	"fmt"
	"strings"
)

// OutputFormat is the audio container/codec family chosen for extraction.
type OutputFormat string

const (
	FormatMP3  OutputFormat = "mp3"
	FormatWAV  OutputFormat = "wav"
	FormatFLAC OutputFormat = "flac"
	FormatAAC  OutputFormat = "aac"
)

// ErrUnsupportedFormat is returned when a format name is not one of the
// four supported values.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// audioCodecs maps each output format to the ffmpeg codec identifier
// passed via -acodec.
var audioCodecs = map[OutputFormat]string{
	FormatMP3:  "libmp3lame",
	FormatWAV:  "pcm_s16le",
	FormatFLAC: "flac",
	FormatAAC:  "aac",
}

// ParseOutputFormat validates a format name (case-insensitive) and returns
// the corresponding OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := audioCodecs[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	return f, nil
}

// Codec returns the ffmpeg codec identifier for the format, or "" for an
// unknown format.
func (f OutputFormat) Codec() string {
	return audioCodecs[f]
}

// Ext returns the output file extension including the leading dot.
func (f OutputFormat) Ext() string {
	return "." + string(f)
}

// String returns the format name as used in file extensions and the UI.
func (f OutputFormat) String() string {
	return string(f)
}

// OutputFormats returns the supported formats in display order.
func OutputFormats() []OutputFormat {
	return []OutputFormat{FormatMP3, FormatWAV, FormatFLAC, FormatAAC}
}

package transcode

// Package transcode invokes the external ffmpeg binary to extract the audio
// track of one resolved media file into the chosen output format. It also
// locates the binary: a co-located ffmpeg next to the running executable is
// preferred over one found on the search path, and each candidate is
// verified with a -version probe.

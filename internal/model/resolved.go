package model

// ResolvedInput is a concrete local file ready to be fed to ffmpeg, plus
// the temporariness metadata the cleanup ledger needs. It is created per
// queue item at run time, consumed once, then released.
type ResolvedInput struct {
	Path       string
	Temporary  bool   // the file was downloaded and must be deleted after use
	ScratchDir string // scratch directory created for the download, "" if none
}

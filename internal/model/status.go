package model

// ItemStatus represents the processing state of one queue item
type ItemStatus string

const (
	// ItemStatusQueued means the item is waiting for the batch to reach it
	ItemStatusQueued ItemStatus = "Queued"

	// ItemStatusResolving means the item is being resolved to a local file
	// (a download for remote references)
	ItemStatusResolving ItemStatus = "Resolving"

	// ItemStatusTranscoding means ffmpeg is extracting the audio track
	ItemStatusTranscoding ItemStatus = "Transcoding"

	// ItemStatusSucceeded means the audio file was produced
	ItemStatusSucceeded ItemStatus = "Succeeded"

	// ItemStatusFailed means resolution or transcoding failed
	ItemStatusFailed ItemStatus = "Failed"
)

// String returns the string representation of ItemStatus
func (is ItemStatus) String() string {
	return string(is)
}

// IsActive returns true if the item is currently being processed
func (is ItemStatus) IsActive() bool {
	return is == ItemStatusResolving || is == ItemStatusTranscoding
}

// IsFinished returns true if the item reached a terminal state
func (is ItemStatus) IsFinished() bool {
	return is == ItemStatusSucceeded || is == ItemStatusFailed
}

// BatchStatus represents the state of a whole extraction batch
type BatchStatus string

const (
	// BatchStatusIdle means no batch is running
	BatchStatusIdle BatchStatus = "Idle"

	// BatchStatusRunning means a batch is processing the queue
	BatchStatusRunning BatchStatus = "Running"

	// BatchStatusComplete means the last batch ran to completion
	BatchStatusComplete BatchStatus = "Complete"
)

// String returns the string representation of BatchStatus
func (bs BatchStatus) String() string {
	return string(bs)
}

package model

// QueueItem pairs a queued record with its processing state. The record is
// fixed at creation; the remaining fields are written by the batch worker
// and read by front-ends for display.
type QueueItem struct {
	ID         string
	Record     Record
	Status     ItemStatus
	LastError  string // last error message if any
	OutputPath string // path to the extracted audio file
}

// DisplayName returns the record's display name.
func (qi *QueueItem) DisplayName() string {
	return qi.Record.DisplayName()
}

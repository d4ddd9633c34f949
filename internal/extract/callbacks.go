package extract

// StatusFunc receives a human-readable processing notification for the
// item at index (1-based) out of total.
type StatusFunc func(index, total int, name string)

// ProgressFunc is invoked after each item finishes, success or not.
type ProgressFunc func(index, total int)

// ErrorFunc receives per-item failures as they happen.
type ErrorFunc func(name string, err error)

// Callbacks are the notification ports a front-end can register for one
// batch run. All fields are optional. They are invoked synchronously from
// the batch worker, in queue order; front-ends that render them must
// redispatch onto their own UI thread.
type Callbacks struct {
	Status   StatusFunc
	Progress ProgressFunc
	Error    ErrorFunc
}

func (c Callbacks) status(index, total int, name string) {
	if c.Status != nil {
		c.Status(index, total, name)
	}
}

func (c Callbacks) progress(index, total int) {
	if c.Progress != nil {
		c.Progress(index, total)
	}
}

func (c Callbacks) error(name string, err error) {
	if c.Error != nil {
		c.Error(name, err)
	}
}

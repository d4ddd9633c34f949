package model

// BatchOutcome classifies a finished batch by how many items succeeded.
type BatchOutcome int

const (
	// OutcomeFullSuccess means every item produced an audio file
	OutcomeFullSuccess BatchOutcome = iota

	// OutcomePartialSuccess means some items succeeded and some failed
	OutcomePartialSuccess

	// OutcomeTotalFailure means no item succeeded
	OutcomeTotalFailure
)

// ExtractionResult is the aggregated outcome of one batch run. It is
// produced once per batch, immutable afterwards, and handed to the
// front-end for rendering.
type ExtractionResult struct {
	SuccessCount   int
	TotalFiles     int
	LastOutputPath string   // output of the last successful item, "" if none
	Errors         []string // per-item error messages in queue order
}

// Outcome classifies the result.
func (r *ExtractionResult) Outcome() BatchOutcome {
	switch {
	case r.SuccessCount == r.TotalFiles && r.SuccessCount > 0:
		return OutcomeFullSuccess
	case r.SuccessCount > 0:
		return OutcomePartialSuccess
	default:
		return OutcomeTotalFailure
	}
}

package types

// Outcome is the tri-state result of a module invocation. The original
// tool mixed booleans and the string "skipped"; an explicit type removes
// that defect class.
type Outcome int

const (
	// OutcomeFailure means the module ran and reported an error.
	OutcomeFailure Outcome = iota

	// OutcomeSuccess means the module completed, possibly as a no-op.
	OutcomeSuccess

	// OutcomeSkipped means the operator declined an overwrite or an
	// optional program installation. Terminal and non-error.
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

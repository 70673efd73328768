package model

// Severity represents how a status message should be presented
type Severity string

const (
	// SeverityNeutral is the idle state (e.g. "Ready")
	SeverityNeutral Severity = "Neutral"

	// SeverityOK means the last explicit action succeeded
	SeverityOK Severity = "OK"

	// SeverityWarning means the action was not attempted (e.g. empty input)
	SeverityWarning Severity = "Warning"

	// SeverityError means the action failed
	SeverityError Severity = "Error"
)

// String returns the string representation of Severity
func (s Severity) String() string {
	return string(s)
}

// IsProblem returns true for warnings and errors
func (s Severity) IsProblem() bool {
	return s == SeverityWarning || s == SeverityError
}

// Status message keys. The UI turns them into localized text.
const (
	StatusReady         = "ready"
	StatusGenerated     = "generated"
	StatusEnterText     = "enter_text"
	StatusEncodeFailed  = "encode_failed"
	StatusTooLarge      = "too_large"
	StatusCopied        = "copied"
	StatusCopyFailed    = "copy_failed"
	StatusGenerateFirst = "generate_first"
	StatusSaved         = "saved"
	StatusSaveFailed    = "save_failed"
)

// Status is the single line of feedback shown under the preview
type Status struct {
	Severity Severity
	Key      string
	Detail   string // file name or error reason, may be empty
}

// ReadyStatus returns the neutral idle status
func ReadyStatus() Status {
	return Status{Severity: SeverityNeutral, Key: StatusReady}
}

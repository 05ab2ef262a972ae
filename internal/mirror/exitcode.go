package mirror

// Class is the decoded outcome of a robocopy run. Robocopy's exit code is a
// bitmask (1 = files copied, 2 = extra items in destination, 4 = mismatched
// entries, 8 = copy failures after retries, 16 = fatal error); Classify keeps
// the most significant condition.
type Class int

const (
	// NoChange means source and destination were already in sync.
	NoChange Class = iota
	// Copied means files were copied successfully.
	Copied
	// ExtraItemsDetected means the destination holds items absent from the
	// source. Informational; /E without /PURGE leaves them in place.
	ExtraItemsDetected
	// MismatchDetected means some entries did not correspond between source
	// and destination (e.g. file vs directory of the same name).
	MismatchDetected
	// CopyErrorsExceededRetries means at least one item failed to copy after
	// the retry budget was exhausted.
	CopyErrorsExceededRetries
	// FatalError means robocopy aborted (usage error, access failure on the
	// roots, out of memory).
	FatalError
)

// Severity buckets a Class for logging and step outcome decisions.
type Severity int

const (
	SeveritySuccess Severity = iota
	SeverityWarning
	SeverityFailure
)

// Classify maps a robocopy exit code to its Class.
func Classify(code int) Class {
	switch {
	case code >= 16:
		return FatalError
	case code >= 8:
		return CopyErrorsExceededRetries
	case code >= 4:
		return MismatchDetected
	case code >= 2:
		return ExtraItemsDetected
	case code == 1:
		return Copied
	default:
		return NoChange
	}
}

// Severity reports how the class should be treated: exit codes 0-3 are
// success, 4-7 warn but do not fail, 8 and above are copy failures.
func (c Class) Severity() Severity {
	switch c {
	case CopyErrorsExceededRetries, FatalError:
		return SeverityFailure
	case MismatchDetected:
		return SeverityWarning
	default:
		return SeveritySuccess
	}
}

// String returns a human-readable name for the class.
func (c Class) String() string {
	switch c {
	case NoChange:
		return "no change"
	case Copied:
		return "copied"
	case ExtraItemsDetected:
		return "extra items detected"
	case MismatchDetected:
		return "mismatches detected"
	case CopyErrorsExceededRetries:
		return "copy errors exceeded retries"
	case FatalError:
		return "fatal error"
	default:
		return "unknown"
	}
}

package errortypes

import "fmt"

// Severity represents the severity level of a generation or validation error.
type Severity int

const (
	// SeverityUnknown represents an unknown severity level.
	SeverityUnknown Severity = iota

	// SeverityFatal represents an error which makes a bid request invalid.
	SeverityFatal

	// SeverityWarning represents an advisory which never blocks a result from being returned.
	SeverityWarning
)

// ParseSeverity maps the textual severities used in constraint data onto Severity values.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "error":
		return SeverityFatal, nil
	case "warning":
		return SeverityWarning, nil
	default:
		return SeverityUnknown, fmt.Errorf("unknown severity %q, expected \"error\" or \"warning\"", s)
	}
}

func (s Severity) String() string {
	switch s {
	case SeverityFatal:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

func isFatal(err error) bool {
	s, ok := err.(Coder)
	return !ok || s.Severity() == SeverityFatal
}

// isWarning returns true if an error is labeled with a Severity of SeverityWarning.
// Throughout the codebase, errors with SeverityWarning are of the type Warning
// defined in this package.
func isWarning(err error) bool {
	s, ok := err.(Coder)
	return ok && s.Severity() == SeverityWarning
}

// ContainsFatalError checks if the error list contains a fatal error.
func ContainsFatalError(errors []error) bool {
	for _, err := range errors {
		if isFatal(err) {
			return true
		}
	}

	return false
}

// FatalOnly returns a new error list with only the fatal severity errors.
func FatalOnly(errs []error) []error {
	errsFatal := make([]error, 0, len(errs))

	for _, err := range errs {
		if isFatal(err) {
			errsFatal = append(errsFatal, err)
		}
	}

	return errsFatal
}

// WarningOnly returns a new error list with only the warning severity errors.
func WarningOnly(errs []error) []error {
	errsWarning := make([]error, 0, len(errs))

	for _, err := range errs {
		if isWarning(err) {
			errsWarning = append(errsWarning, err)
		}
	}

	return errsWarning
}

// Messages returns the message of every error in order. The result is never nil.
func Messages(errs []error) []string {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Error())
	}
	return messages
}

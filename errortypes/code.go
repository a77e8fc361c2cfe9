package errortypes

// Defines numeric codes for well-known errors.
const (
	UnknownErrorCode  = 999
	BadInputErrorCode = iota
	InvalidRequestErrorCode
	InvalidValueErrorCode
	InvalidCurrencyErrorCode
	MutualExclusionErrorCode
	MissingRequiredFieldErrorCode
	FailedToMarshalErrorCode
	FailedToUnmarshalErrorCode
)

// Defines numeric codes for well-known warnings.
const (
	DeprecatedFieldWarningCode = iota + 10000
	MissingRecommendedFieldWarningCode
	MutualExclusionWarningCode
	UnrecognizedCurrencyWarningCode
	AdvisoryWarningCode
)

// Coder provides an error or warning code with severity.
type Coder interface {
	Code() int
	Severity() Severity
}

// ReadCode returns the error or warning code, or UnknownErrorCode if unavailable.
func ReadCode(err error) int {
	if e, ok := err.(Coder); ok {
		return e.Code()
	}
	return UnknownErrorCode
}

package errortypes

// BadInput should be used when the caller's generation parameters fail basic shape or
// required-field checks. Generation never proceeds past a BadInput.
type BadInput struct {
	Message string
}

func (err *BadInput) Error() string {
	return err.Message
}

func (err *BadInput) Code() int {
	return BadInputErrorCode
}

func (err *BadInput) Severity() Severity {
	return SeverityFatal
}

// InvalidRequest flags a bid request that violates an OpenRTB structural or cross-field
// constraint. ErrorCode narrows the kind of violation; zero means InvalidRequestErrorCode.
type InvalidRequest struct {
	Message   string
	ErrorCode int
}

func (err *InvalidRequest) Error() string {
	return err.Message
}

func (err *InvalidRequest) Code() int {
	if err.ErrorCode == 0 {
		return InvalidRequestErrorCode
	}
	return err.ErrorCode
}

func (err *InvalidRequest) Severity() Severity {
	return SeverityFatal
}

// FailedToMarshal is used when a generated object cannot be encoded.
type FailedToMarshal struct {
	Message string
}

func (err *FailedToMarshal) Error() string {
	return err.Message
}

func (err *FailedToMarshal) Code() int {
	return FailedToMarshalErrorCode
}

func (err *FailedToMarshal) Severity() Severity {
	return SeverityFatal
}

// FailedToUnmarshal is used when a submitted bid request is not decodable JSON.
type FailedToUnmarshal struct {
	Message string
}

func (err *FailedToUnmarshal) Error() string {
	return err.Message
}

func (err *FailedToUnmarshal) Code() int {
	return FailedToUnmarshalErrorCode
}

func (err *FailedToUnmarshal) Severity() Severity {
	return SeverityFatal
}

// Warning is a generic non-fatal error. Deprecated fields, missing recommended fields and
// stylistic advisories are all reported as warnings.
type Warning struct {
	Message     string
	WarningCode int
}

func (err *Warning) Error() string {
	return err.Message
}

func (err *Warning) Code() int {
	return err.WarningCode
}

func (err *Warning) Severity() Severity {
	return SeverityWarning
}

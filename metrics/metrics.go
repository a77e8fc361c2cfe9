package metrics

import (
	"time"
)

// Labels defines the labels that can be attached to the request metrics.
type Labels struct {
	RType         RequestType
	RequestStatus RequestStatus
}

// ImpLabels defines metric labels describing the impression type.
type ImpLabels struct {
	BannerImps bool
	VideoImps  bool
	AudioImps  bool
	NativeImps bool
}

// ValidationLabels describes the outcome of validating one bid request.
type ValidationLabels struct {
	RType    RequestType
	Valid    bool
	Errors   int
	Warnings int
}

// RequestType : Request type enumeration
type RequestType string

// The request types (endpoints)
const (
	ReqTypeGenerate RequestType = "generate"
	ReqTypeValidate RequestType = "validate"
)

func RequestTypes() []RequestType {
	return []RequestType{
		ReqTypeGenerate,
		ReqTypeValidate,
	}
}

// RequestStatus : The request return status
type RequestStatus string

// Request status types
const (
	RequestStatusOK       RequestStatus = "ok"
	RequestStatusInvalid  RequestStatus = "invalid"
	RequestStatusBadInput RequestStatus = "badinput"
	RequestStatusErr      RequestStatus = "err"
)

func RequestStatuses() []RequestStatus {
	return []RequestStatus{
		RequestStatusOK,
		RequestStatusInvalid,
		RequestStatusBadInput,
		RequestStatusErr,
	}
}

// FindingSeverity separates validation errors from warnings.
type FindingSeverity string

const (
	FindingError   FindingSeverity = "error"
	FindingWarning FindingSeverity = "warning"
)

func FindingSeverities() []FindingSeverity {
	return []FindingSeverity{
		FindingError,
		FindingWarning,
	}
}

// MetricsEngine is a generic interface to record metrics into the desired backend.
// The first three metrics function fire exactly once per request, the validation metric fires
// once per validated request and the imp metric once per impression.
type MetricsEngine interface {
	RecordConnectionAccept(success bool)
	RecordConnectionClose(success bool)
	RecordRequest(labels Labels)
	RecordRequestTime(labels Labels, length time.Duration)
	RecordImps(labels ImpLabels)
	RecordValidation(labels ValidationLabels)
	RecordRequestQueueTime(success bool, requestType RequestType, length time.Duration)
}

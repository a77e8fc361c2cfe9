package ortb

import (
	"fmt"

	"github.com/prebid/ortb-builder/errortypes"
	"github.com/prebid/ortb-builder/openrtb26"
	"github.com/prebid/ortb-builder/rules"
	"github.com/prebid/ortb-builder/util/jsonutil"
)

// Report is the outcome of validating a bid request. Valid is true when Errors is empty;
// Warnings never affect validity.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// RequestValidator checks a bid request against the OpenRTB 2.6 structural rules and a
// constraint registry. It never mutates the request and never fails; problems are reported.
type RequestValidator interface {
	Validate(req *openrtb26.BidRequest) Report
	ValidateJSON(data []byte) Report
}

func NewRequestValidator(registry *rules.Registry) RequestValidator {
	return &standardRequestValidator{
		registry: registry,
	}
}

type standardRequestValidator struct {
	registry *rules.Registry
}

func (srv *standardRequestValidator) Validate(req *openrtb26.BidRequest) Report {
	if req == nil {
		return newReport([]error{&errortypes.InvalidRequest{Message: "request is required"}})
	}

	data, err := jsonutil.Marshal(req)
	if err != nil {
		return newReport([]error{&errortypes.FailedToMarshal{Message: fmt.Sprintf("request could not be encoded: %v", err)}})
	}

	return newReport(srv.validate(req, data))
}

func (srv *standardRequestValidator) ValidateJSON(data []byte) Report {
	if !jsonutil.IsObject(data) {
		return newReport([]error{&errortypes.FailedToUnmarshal{Message: "request must be a JSON object"}})
	}

	req := &openrtb26.BidRequest{}
	if err := jsonutil.Unmarshal(data, req); err != nil {
		return newReport([]error{&errortypes.FailedToUnmarshal{Message: fmt.Sprintf("request could not be decoded: %v", err)}})
	}

	return newReport(srv.validate(req, data))
}

// validate runs every check in a fixed order: structural checks, registry mutual exclusions,
// registry conditional requirements, deprecated fields and advisories. Only a missing imp list
// stops evaluation early.
func (srv *standardRequestValidator) validate(req *openrtb26.BidRequest, data []byte) []error {
	if req.Imp == nil {
		return []error{&errortypes.InvalidRequest{Message: `request missing required field: "imp"`, ErrorCode: errortypes.MissingRequiredFieldErrorCode}}
	}

	errL := validateRequest(req)

	if srv.registry != nil {
		root := newRootNode(data)
		errL = append(errL, evaluateMutualExclusions(srv.registry, root)...)
		errL = append(errL, evaluateConditionalRequirements(srv.registry, root)...)
		errL = append(errL, evaluateDeprecatedFields(srv.registry, root)...)
	}

	errL = append(errL, validateAdvisories(req)...)
	return errL
}

func newReport(errs []error) Report {
	return Report{
		Valid:    !errortypes.ContainsFatalError(errs),
		Errors:   errortypes.Messages(errortypes.FatalOnly(errs)),
		Warnings: errortypes.Messages(errortypes.WarningOnly(errs)),
	}
}

func validateRequest(req *openrtb26.BidRequest) []error {
	var errL []error

	if req.ID == "" {
		errL = append(errL, missingField("request", "id"))
	}

	if len(req.Imp) == 0 {
		errL = append(errL, invalid("request.imp must contain at least one impression"))
	}

	if req.Site == nil && req.App == nil {
		errL = append(errL, &errortypes.InvalidRequest{
			Message:   `request must contain one of "site" or "app"`,
			ErrorCode: errortypes.MissingRequiredFieldErrorCode,
		})
	}

	impIDs := make(map[string]int, len(req.Imp))
	for i := range req.Imp {
		imp := &req.Imp[i]
		if first, ok := impIDs[imp.ID]; ok && imp.ID != "" {
			errL = append(errL, invalid("request.imp[%d].id %q duplicates request.imp[%d].id", i, imp.ID, first))
		} else {
			impIDs[imp.ID] = i
		}
		errL = append(errL, validateImp(imp, i)...)
	}

	if req.TMax != nil && *req.TMax < 0 {
		errL = append(errL, invalidValue("request.tmax must be a non-negative number"))
	}
	for i, cur := range req.Cur {
		errL = append(errL, validateCurrency(cur, fmt.Sprintf("request.cur[%d]", i))...)
	}
	errL = append(errL, validateFlag(req.AllImps, "request.allimps")...)
	errL = append(errL, validateFlag(req.Test, "request.test")...)

	errL = append(errL, validateSite(req.Site)...)
	errL = append(errL, validateApp(req.App)...)
	errL = append(errL, validateDevice(req.Device)...)
	errL = append(errL, validateRegs(req.Regs)...)
	errL = append(errL, validateSource(req.Source)...)

	return errL
}

func validateImp(imp *openrtb26.Imp, index int) []error {
	var errL []error
	path := fmt.Sprintf("request.imp[%d]", index)

	if imp.ID == "" {
		errL = append(errL, missingField(path, "id"))
	}

	if imp.Banner == nil && imp.Video == nil && imp.Audio == nil && imp.Native == nil {
		errL = append(errL, &errortypes.InvalidRequest{
			Message:   fmt.Sprintf(`%s must contain at least one of "banner", "video", "audio", or "native"`, path),
			ErrorCode: errortypes.MissingRequiredFieldErrorCode,
		})
	}

	if imp.BidFloor != nil && *imp.BidFloor < 0 {
		errL = append(errL, invalidValue("%s.bidfloor must be a non-negative number", path))
	}
	if imp.BidFloorCur != "" {
		errL = append(errL, validateCurrency(imp.BidFloorCur, path+".bidfloorcur")...)
	}

	errL = append(errL, validateFlag(imp.Instl, path+".instl")...)
	errL = append(errL, validateFlag(imp.Secure, path+".secure")...)
	errL = append(errL, validateFlag(imp.ClickBrowser, path+".clickbrowser")...)
	errL = append(errL, validateFlag(imp.Rwdd, path+".rwdd")...)
	if imp.SSAI != nil && (*imp.SSAI < 0 || *imp.SSAI > 3) {
		errL = append(errL, invalidValue("%s.ssai must be between 0 and 3", path))
	}
	if imp.Exp != nil && *imp.Exp < 0 {
		errL = append(errL, invalidValue("%s.exp must be a non-negative number", path))
	}

	errL = append(errL, validateBanner(imp.Banner, path+".banner", isInterstitial(imp))...)
	errL = append(errL, validateVideo(imp.Video, path+".video")...)
	errL = append(errL, validateAudio(imp.Audio, path+".audio")...)
	errL = append(errL, validateNative(imp.Native, path+".native")...)
	errL = append(errL, validatePmp(imp.PMP, path+".pmp")...)

	return errL
}

// Package generator runs the bid request pipeline: input checks, assembly and validation.
package generator

import (
	"github.com/golang/glog"

	"github.com/prebid/ortb-builder/errortypes"
	"github.com/prebid/ortb-builder/metrics"
	"github.com/prebid/ortb-builder/openrtb26"
	"github.com/prebid/ortb-builder/ortb"
	"github.com/prebid/ortb-builder/util/uuidutil"
)

// Result is a generated bid request together with its validation report. The report never
// blocks the result; an invalid request is still returned.
type Result struct {
	Request    *openrtb26.BidRequest `json:"request"`
	Validation ortb.Report           `json:"validation"`
}

// Generator builds and checks OpenRTB 2.6 bid requests.
type Generator interface {
	// Generate builds a bid request from params. Caller mistakes are returned as
	// *errortypes.BadInput errors and no result is built. Any other error is an internal failure.
	Generate(params ortb.Params) (*Result, []error)
	// Validate checks an externally produced bid request.
	Validate(data []byte) ortb.Report
}

type generator struct {
	validator ortb.RequestValidator
	ids       uuidutil.UUIDGenerator
	defaults  ortb.RequestDefaults
	me        metrics.MetricsEngine
}

func NewGenerator(validator ortb.RequestValidator, ids uuidutil.UUIDGenerator, defaults ortb.RequestDefaults, me metrics.MetricsEngine) Generator {
	return &generator{
		validator: validator,
		ids:       ids,
		defaults:  defaults,
		me:        me,
	}
}

func (g *generator) Generate(params ortb.Params) (*Result, []error) {
	if errs := params.Validate(); len(errs) > 0 {
		glog.V(2).Infof("Rejected generate input: %v", errs)
		return nil, errs
	}

	req, err := ortb.Assemble(params, g.ids, g.defaults)
	if err != nil {
		if errortypes.ReadCode(err) == errortypes.BadInputErrorCode {
			glog.V(2).Infof("Rejected generate input: %v", err)
		} else {
			glog.Errorf("Failed to assemble bid request: %v", err)
		}
		return nil, []error{err}
	}

	for i := range req.Imp {
		g.me.RecordImps(impLabels(&req.Imp[i]))
	}

	report := g.validator.Validate(req)
	g.recordValidation(metrics.ReqTypeGenerate, report)

	return &Result{Request: req, Validation: report}, nil
}

func (g *generator) Validate(data []byte) ortb.Report {
	report := g.validator.ValidateJSON(data)
	g.recordValidation(metrics.ReqTypeValidate, report)
	return report
}

func (g *generator) recordValidation(rType metrics.RequestType, report ortb.Report) {
	g.me.RecordValidation(metrics.ValidationLabels{
		RType:    rType,
		Valid:    report.Valid,
		Errors:   len(report.Errors),
		Warnings: len(report.Warnings),
	})
}

func impLabels(imp *openrtb26.Imp) metrics.ImpLabels {
	return metrics.ImpLabels{
		BannerImps: imp.Banner != nil,
		VideoImps:  imp.Video != nil,
		AudioImps:  imp.Audio != nil,
		NativeImps: imp.Native != nil,
	}
}

package openrtb

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang/glog"
	"github.com/julienschmidt/httprouter"

	"github.com/prebid/ortb-builder/config"
	"github.com/prebid/ortb-builder/errortypes"
	"github.com/prebid/ortb-builder/generator"
	"github.com/prebid/ortb-builder/metrics"
	"github.com/prebid/ortb-builder/ortb"
	"github.com/prebid/ortb-builder/util/jsonutil"
)

// NewGenerateEndpoint builds the POST /openrtb/generate handler. The body is an ortb.Params
// document; the response holds the generated bid request and its validation report.
func NewGenerateEndpoint(gen generator.Generator, cfg *config.Configuration, me metrics.MetricsEngine) httprouter.Handle {
	deps := &endpointDeps{
		gen: gen,
		cfg: cfg,
		me:  me,
	}
	return deps.Generate
}

type endpointDeps struct {
	gen generator.Generator
	cfg *config.Configuration
	me  metrics.MetricsEngine
}

func (deps *endpointDeps) Generate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	start := time.Now()
	labels := metrics.Labels{
		RType:         metrics.ReqTypeGenerate,
		RequestStatus: metrics.RequestStatusOK,
	}
	defer func() {
		deps.me.RecordRequest(labels)
		deps.me.RecordRequestTime(labels, time.Since(start))
	}()

	params, errL := deps.parseParams(r)
	if len(errL) > 0 {
		labels.RequestStatus = metrics.RequestStatusBadInput
		writeErrors(w, http.StatusBadRequest, errL)
		return
	}

	result, errL := deps.gen.Generate(params)
	if len(errL) > 0 {
		if isBadInput(errL) {
			labels.RequestStatus = metrics.RequestStatusBadInput
			writeErrors(w, http.StatusBadRequest, errL)
			return
		}
		labels.RequestStatus = metrics.RequestStatusErr
		writeErrors(w, http.StatusInternalServerError, errL)
		return
	}

	if !result.Validation.Valid {
		labels.RequestStatus = metrics.RequestStatusInvalid
	}
	writeJSON(w, http.StatusOK, result)
}

func (deps *endpointDeps) parseParams(httpRequest *http.Request) (ortb.Params, []error) {
	var params ortb.Params

	body, err := readBody(httpRequest, deps.cfg.MaxRequestSize)
	if err != nil {
		return params, []error{err}
	}

	if !jsonutil.IsObject(body) {
		return params, []error{&errortypes.BadInput{Message: "request body must be a JSON object"}}
	}

	if err := jsonutil.Unmarshal(body, &params); err != nil {
		glog.V(2).Infof("Rejected generate body: %v", err)
		return params, []error{&errortypes.BadInput{Message: fmt.Sprintf("request body could not be decoded: %v", err)}}
	}
	return params, nil
}

func isBadInput(errs []error) bool {
	for _, err := range errs {
		if errortypes.ReadCode(err) != errortypes.BadInputErrorCode {
			return false
		}
	}
	return true
}

package openrtb

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/prebid/ortb-builder/config"
	"github.com/prebid/ortb-builder/errortypes"
	"github.com/prebid/ortb-builder/generator"
	"github.com/prebid/ortb-builder/metrics"
	"github.com/prebid/ortb-builder/util/jsonutil"
)

// NewValidateEndpoint builds the POST /openrtb/validate handler. The body is an OpenRTB 2.6 bid
// request and the response is its validation report.
func NewValidateEndpoint(gen generator.Generator, cfg *config.Configuration, me metrics.MetricsEngine) httprouter.Handle {
	deps := &endpointDeps{
		gen: gen,
		cfg: cfg,
		me:  me,
	}
	return deps.Validate
}

func (deps *endpointDeps) Validate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	start := time.Now()
	labels := metrics.Labels{
		RType:         metrics.ReqTypeValidate,
		RequestStatus: metrics.RequestStatusOK,
	}
	defer func() {
		deps.me.RecordRequest(labels)
		deps.me.RecordRequestTime(labels, time.Since(start))
	}()

	body, err := readBody(r, deps.cfg.MaxRequestSize)
	if err != nil {
		labels.RequestStatus = metrics.RequestStatusBadInput
		writeErrors(w, http.StatusBadRequest, []error{err})
		return
	}

	if !jsonutil.IsObject(body) {
		labels.RequestStatus = metrics.RequestStatusBadInput
		writeErrors(w, http.StatusBadRequest, []error{&errortypes.BadInput{Message: "request body must be a JSON object"}})
		return
	}

	report := deps.gen.Validate(body)
	if !report.Valid {
		labels.RequestStatus = metrics.RequestStatusInvalid
	}
	writeJSON(w, http.StatusOK, report)
}

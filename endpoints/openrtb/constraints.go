package openrtb

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/prebid/ortb-builder/rules"
)

// NewConstraintsEndpoint serves the constraint registry document the validator runs on.
func NewConstraintsEndpoint(registry *rules.Registry) httprouter.Handle {
	response := registry.JSON()

	return func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(response)
	}
}

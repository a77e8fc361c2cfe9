// Package openrtb serves the bid request generation, validation and constraint endpoints.
package openrtb

import (
	"fmt"
	"io"
	"net/http"

	"github.com/golang/glog"

	"github.com/prebid/ortb-builder/errortypes"
	"github.com/prebid/ortb-builder/util/jsonutil"
)

type errorResponse struct {
	Errors []string `json:"errors"`
}

// readBody reads the request body, enforcing maxSize when it is positive.
func readBody(httpRequest *http.Request, maxSize int64) ([]byte, error) {
	if maxSize <= 0 {
		return io.ReadAll(httpRequest.Body)
	}

	lr := &io.LimitedReader{
		R: httpRequest.Body,
		N: maxSize,
	}
	body, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	// If the request size was too large, read through the rest of the request body so that the connection can be reused.
	if lr.N <= 0 {
		if written, err := io.Copy(io.Discard, httpRequest.Body); written > 0 || err != nil {
			return nil, &errortypes.BadInput{Message: fmt.Sprintf("request size exceeded max size of %d bytes.", maxSize)}
		}
	}
	return body, nil
}

func writeJSON(w http.ResponseWriter, status int, response interface{}) {
	responseBytes, err := jsonutil.Marshal(response)
	if err != nil {
		glog.Errorf("Failed to marshal response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, "Failed to marshal response: %v", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(responseBytes)
}

func writeErrors(w http.ResponseWriter, status int, errs []error) {
	writeJSON(w, status, errorResponse{Errors: errortypes.Messages(errs)})
}

package openrtb

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/prebid/ortb-builder/config"
	"github.com/prebid/ortb-builder/generator"
	"github.com/prebid/ortb-builder/metrics"
	"github.com/prebid/ortb-builder/ortb"
	"github.com/prebid/ortb-builder/rules"
)

type fakeUUIDGenerator struct {
	id  string
	err error
}

func (f fakeUUIDGenerator) Generate() (string, error) {
	return f.id, f.err
}

func newMetricsMock(rType metrics.RequestType, status metrics.RequestStatus) *metrics.MetricsEngineMock {
	labels := metrics.Labels{RType: rType, RequestStatus: status}
	me := &metrics.MetricsEngineMock{}
	me.On("RecordRequest", labels).Once()
	me.On("RecordRequestTime", labels, mock.Anything).Once()
	me.On("RecordImps", mock.Anything).Maybe()
	me.On("RecordValidation", mock.Anything).Maybe()
	return me
}

func newTestGenerator(ids fakeUUIDGenerator, me metrics.MetricsEngine) generator.Generator {
	return generator.NewGenerator(ortb.NewRequestValidator(rules.Default()), ids, ortb.NewRequestDefaults(), me)
}

func newTestConfig() *config.Configuration {
	return &config.Configuration{MaxRequestSize: 1024 * 256}
}

func TestGenerateEndpoint(t *testing.T) {
	testCases := []struct {
		description    string
		body           string
		maxRequestSize int64
		ids            fakeUUIDGenerator
		expectedStatus int
		expectedLabel  metrics.RequestStatus
		expectedErrors []string
	}{
		{
			description:    "Legacy",
			body:           `{"domain":"example.com","page":"https://example.com/","width":300,"height":250}`,
			ids:            fakeUUIDGenerator{id: "req-1"},
			expectedStatus: http.StatusOK,
			expectedLabel:  metrics.RequestStatusOK,
		},
		{
			description:    "Generated But Invalid",
			body:           `{"domain":"example.com","page":"https://example.com/","imp":[{"banner":{"w":300,"h":250},"pmp":{"private_auction":1}}]}`,
			ids:            fakeUUIDGenerator{id: "req-1"},
			expectedStatus: http.StatusOK,
			expectedLabel:  metrics.RequestStatusInvalid,
		},
		{
			description:    "Input Errors",
			body:           `{"domain":"example.com","page":"https://example.com/","width":300}`,
			ids:            fakeUUIDGenerator{id: "req-1"},
			expectedStatus: http.StatusBadRequest,
			expectedLabel:  metrics.RequestStatusBadInput,
			expectedErrors: []string{`"width" and "height" must be provided together`},
		},
		{
			description:    "Not An Object",
			body:           `[1,2,3]`,
			ids:            fakeUUIDGenerator{id: "req-1"},
			expectedStatus: http.StatusBadRequest,
			expectedLabel:  metrics.RequestStatusBadInput,
			expectedErrors: []string{"request body must be a JSON object"},
		},
		{
			description:    "Too Large",
			body:           `{"domain":"example.com","page":"https://example.com/","width":300,"height":250}`,
			maxRequestSize: 10,
			ids:            fakeUUIDGenerator{id: "req-1"},
			expectedStatus: http.StatusBadRequest,
			expectedLabel:  metrics.RequestStatusBadInput,
			expectedErrors: []string{"request size exceeded max size of 10 bytes."},
		},
		{
			description:    "Internal Failure",
			body:           `{"domain":"example.com","page":"https://example.com/","width":300,"height":250}`,
			ids:            fakeUUIDGenerator{err: errors.New("no entropy")},
			expectedStatus: http.StatusInternalServerError,
			expectedLabel:  metrics.RequestStatusErr,
			expectedErrors: []string{"failed to generate request id: no entropy"},
		},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			me := newMetricsMock(metrics.ReqTypeGenerate, test.expectedLabel)
			cfg := newTestConfig()
			if test.maxRequestSize > 0 {
				cfg.MaxRequestSize = test.maxRequestSize
			}
			handler := NewGenerateEndpoint(newTestGenerator(test.ids, me), cfg, me)

			w := httptest.NewRecorder()
			handler(w, httptest.NewRequest(http.MethodPost, "/openrtb/generate", strings.NewReader(test.body)), nil)

			assert.Equal(t, test.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			if test.expectedErrors != nil {
				var response errorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, test.expectedErrors, response.Errors)
			}
			me.AssertExpectations(t)
		})
	}
}

func TestGenerateEndpointResponse(t *testing.T) {
	me := newMetricsMock(metrics.ReqTypeGenerate, metrics.RequestStatusOK)
	handler := NewGenerateEndpoint(newTestGenerator(fakeUUIDGenerator{id: "req-1"}, me), newTestConfig(), me)

	body := `{"domain":"example.com","page":"https://example.com/","width":300,"height":250}`
	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodPost, "/openrtb/generate", strings.NewReader(body)), nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Request struct {
			ID  string `json:"id"`
			Imp []struct {
				Banner struct {
					Format []struct {
						W int64 `json:"w"`
						H int64 `json:"h"`
					} `json:"format"`
				} `json:"banner"`
			} `json:"imp"`
		} `json:"request"`
		Validation ortb.Report `json:"validation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, "req-1", response.Request.ID)
	require.Len(t, response.Request.Imp, 1)
	assert.NotEmpty(t, response.Request.Imp[0].Banner.Format)
	assert.Equal(t, ortb.Report{Valid: true, Errors: []string{}, Warnings: []string{}}, response.Validation)
}

func TestGenerateEndpointUndecodableBody(t *testing.T) {
	me := newMetricsMock(metrics.ReqTypeGenerate, metrics.RequestStatusBadInput)
	handler := NewGenerateEndpoint(newTestGenerator(fakeUUIDGenerator{id: "req-1"}, me), newTestConfig(), me)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodPost, "/openrtb/generate", strings.NewReader(`{"domain":5}`)), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Errors, 1)
	assert.True(t, strings.HasPrefix(response.Errors[0], "request body could not be decoded: "))
	me.AssertExpectations(t)
}

func TestValidateEndpoint(t *testing.T) {
	testCases := []struct {
		description    string
		body           string
		expectedStatus int
		expectedLabel  metrics.RequestStatus
		expectedBody   string
	}{
		{
			description:    "Valid",
			body:           `{"id":"1","imp":[{"id":"1","native":{"request":"{\"assets\":[{\"id\":1}]}"}}],"site":{"id":"s1"}}`,
			expectedStatus: http.StatusOK,
			expectedLabel:  metrics.RequestStatusOK,
			expectedBody:   `{"valid":true,"errors":[],"warnings":[]}`,
		},
		{
			description:    "Invalid",
			body:           `{"id":"1","imp":[{"id":"1","banner":{"w":1,"h":1},"pmp":{"private_auction":1,"deals":[]}}],"site":{"id":"s1"}}`,
			expectedStatus: http.StatusOK,
			expectedLabel:  metrics.RequestStatusInvalid,
			expectedBody:   `{"valid":false,"errors":["request.imp[0].pmp.deals is required when request.imp[0].pmp.private_auction is 1"],"warnings":[]}`,
		},
		{
			description:    "Not JSON",
			body:           `id=1`,
			expectedStatus: http.StatusBadRequest,
			expectedLabel:  metrics.RequestStatusBadInput,
			expectedBody:   `{"errors":["request body must be a JSON object"]}`,
		},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			me := newMetricsMock(metrics.ReqTypeValidate, test.expectedLabel)
			handler := NewValidateEndpoint(newTestGenerator(fakeUUIDGenerator{id: "x"}, me), newTestConfig(), me)

			w := httptest.NewRecorder()
			handler(w, httptest.NewRequest(http.MethodPost, "/openrtb/validate", strings.NewReader(test.body)), nil)

			assert.Equal(t, test.expectedStatus, w.Code)
			assert.JSONEq(t, test.expectedBody, w.Body.String())
			me.AssertExpectations(t)
		})
	}
}

func TestConstraintsEndpoint(t *testing.T) {
	registry := rules.Default()
	handler := NewConstraintsEndpoint(registry)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/openrtb/constraints", nil), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, string(registry.JSON()), w.Body.String())
}

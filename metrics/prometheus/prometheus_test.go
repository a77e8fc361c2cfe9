package prometheusmetrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/prebid/ortb-builder/config"
	"github.com/prebid/ortb-builder/metrics"
)

func createMetricsForTesting() *Metrics {
	return NewMetrics(config.PrometheusMetrics{
		Port:      8080,
		Namespace: "prebid",
		Subsystem: "ortb",
	})
}

func TestMetricCountGatekeeping(t *testing.T) {
	m := createMetricsForTesting()

	metricFamilies, err := m.Gatherer.Gather()
	assert.NoError(t, err)
	assert.Len(t, metricFamilies, 9)

	for _, family := range metricFamilies {
		assert.Contains(t, family.GetName(), "prebid_ortb_")
	}
}

func TestConnectionMetrics(t *testing.T) {
	testCases := []struct {
		description              string
		testCase                 func(m *Metrics)
		expectedOpenedCount      float64
		expectedOpenedErrorCount float64
		expectedClosedCount      float64
		expectedClosedErrorCount float64
	}{
		{
			description: "Open Success",
			testCase: func(m *Metrics) {
				m.RecordConnectionAccept(true)
			},
			expectedOpenedCount: 1,
		},
		{
			description: "Open Error",
			testCase: func(m *Metrics) {
				m.RecordConnectionAccept(false)
			},
			expectedOpenedErrorCount: 1,
		},
		{
			description: "Closed Success",
			testCase: func(m *Metrics) {
				m.RecordConnectionClose(true)
			},
			expectedClosedCount: 1,
		},
		{
			description: "Closed Error",
			testCase: func(m *Metrics) {
				m.RecordConnectionClose(false)
			},
			expectedClosedErrorCount: 1,
		},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			m := createMetricsForTesting()

			test.testCase(m)

			assert.Equal(t, test.expectedOpenedCount, testutil.ToFloat64(m.connectionsOpened))
			assert.Equal(t, test.expectedClosedCount, testutil.ToFloat64(m.connectionsClosed))
			assert.Equal(t, test.expectedOpenedErrorCount, testutil.ToFloat64(m.connectionsError.With(prometheus.Labels{connectionErrorLabel: connectionAcceptError})))
			assert.Equal(t, test.expectedClosedErrorCount, testutil.ToFloat64(m.connectionsError.With(prometheus.Labels{connectionErrorLabel: connectionCloseError})))
		})
	}
}

func TestRequestMetric(t *testing.T) {
	m := createMetricsForTesting()

	m.RecordRequest(metrics.Labels{RType: metrics.ReqTypeGenerate, RequestStatus: metrics.RequestStatusOK})
	m.RecordRequest(metrics.Labels{RType: metrics.ReqTypeGenerate, RequestStatus: metrics.RequestStatusOK})
	m.RecordRequest(metrics.Labels{RType: metrics.ReqTypeValidate, RequestStatus: metrics.RequestStatusBadInput})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.With(prometheus.Labels{
		requestTypeLabel:   string(metrics.ReqTypeGenerate),
		requestStatusLabel: string(metrics.RequestStatusOK),
	})))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.With(prometheus.Labels{
		requestTypeLabel:   string(metrics.ReqTypeValidate),
		requestStatusLabel: string(metrics.RequestStatusBadInput),
	})))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.requests.With(prometheus.Labels{
		requestTypeLabel:   string(metrics.ReqTypeGenerate),
		requestStatusLabel: string(metrics.RequestStatusErr),
	})))
}

func TestImpressionsMetric(t *testing.T) {
	m := createMetricsForTesting()

	m.RecordImps(metrics.ImpLabels{BannerImps: true})
	m.RecordImps(metrics.ImpLabels{VideoImps: true})
	m.RecordImps(metrics.ImpLabels{VideoImps: true})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.impressions.With(prometheus.Labels{
		isBannerLabel: "true",
		isVideoLabel:  "false",
		isAudioLabel:  "false",
		isNativeLabel: "false",
	})))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.impressions.With(prometheus.Labels{
		isBannerLabel: "false",
		isVideoLabel:  "true",
		isAudioLabel:  "false",
		isNativeLabel: "false",
	})))
}

func TestValidationMetrics(t *testing.T) {
	testCases := []struct {
		description      string
		labels           metrics.ValidationLabels
		expectedValid    float64
		expectedInvalid  float64
		expectedErrors   float64
		expectedWarnings float64
	}{
		{
			description:   "Clean",
			labels:        metrics.ValidationLabels{RType: metrics.ReqTypeValidate, Valid: true},
			expectedValid: 1,
		},
		{
			description:      "Warnings Only",
			labels:           metrics.ValidationLabels{RType: metrics.ReqTypeValidate, Valid: true, Warnings: 3},
			expectedValid:    1,
			expectedWarnings: 3,
		},
		{
			description:      "Errors And Warnings",
			labels:           metrics.ValidationLabels{RType: metrics.ReqTypeValidate, Errors: 2, Warnings: 1},
			expectedInvalid:  1,
			expectedErrors:   2,
			expectedWarnings: 1,
		},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			m := createMetricsForTesting()

			m.RecordValidation(test.labels)

			assert.Equal(t, test.expectedValid, testutil.ToFloat64(m.validations.With(prometheus.Labels{
				requestTypeLabel: string(metrics.ReqTypeValidate),
				validLabel:       "true",
			})))
			assert.Equal(t, test.expectedInvalid, testutil.ToFloat64(m.validations.With(prometheus.Labels{
				requestTypeLabel: string(metrics.ReqTypeValidate),
				validLabel:       "false",
			})))
			assert.Equal(t, test.expectedErrors, testutil.ToFloat64(m.validationFindings.With(prometheus.Labels{
				requestTypeLabel: string(metrics.ReqTypeValidate),
				severityLabel:    string(metrics.FindingError),
			})))
			assert.Equal(t, test.expectedWarnings, testutil.ToFloat64(m.validationFindings.With(prometheus.Labels{
				requestTypeLabel: string(metrics.ReqTypeValidate),
				severityLabel:    string(metrics.FindingWarning),
			})))
		})
	}
}

func TestRequestTimeMetric(t *testing.T) {
	m := createMetricsForTesting()

	m.RecordRequestTime(metrics.Labels{RType: metrics.ReqTypeGenerate, RequestStatus: metrics.RequestStatusOK}, 5*time.Millisecond)
	m.RecordRequestTime(metrics.Labels{RType: metrics.ReqTypeGenerate, RequestStatus: metrics.RequestStatusErr}, 5*time.Millisecond)

	// One series per request type, preloaded.
	assert.Equal(t, 2, testutil.CollectAndCount(m.requestsTimer))
}

func TestRequestQueueTimeMetric(t *testing.T) {
	m := createMetricsForTesting()

	m.RecordRequestQueueTime(true, metrics.ReqTypeGenerate, time.Second)
	m.RecordRequestQueueTime(false, metrics.ReqTypeValidate, 2*time.Second)

	assert.Equal(t, 4, testutil.CollectAndCount(m.requestsQueueTimer))
}

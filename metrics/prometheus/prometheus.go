package prometheusmetrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/prebid/ortb-builder/config"
	"github.com/prebid/ortb-builder/metrics"
)

// Metrics defines the Prometheus metrics backing the MetricsEngine implementation.
type Metrics struct {
	Gatherer *prometheus.Registry

	connectionsClosed  prometheus.Counter
	connectionsError   *prometheus.CounterVec
	connectionsOpened  prometheus.Counter
	impressions        *prometheus.CounterVec
	requests           *prometheus.CounterVec
	requestsTimer      *prometheus.HistogramVec
	requestsQueueTimer *prometheus.HistogramVec
	validations        *prometheus.CounterVec
	validationFindings *prometheus.CounterVec
}

const (
	connectionErrorLabel = "connection_error"
	isAudioLabel         = "audio"
	isBannerLabel        = "banner"
	isNativeLabel        = "native"
	isVideoLabel         = "video"
	requestStatusLabel   = "request_status"
	requestTypeLabel     = "request_type"
	severityLabel        = "severity"
	validLabel           = "valid"
)

const (
	connectionAcceptError = "accept"
	connectionCloseError  = "close"
)

const (
	requestSuccessLabel = "requestAcceptedLabel"
	requestRejectLabel  = "requestRejectedLabel"
)

// NewMetrics initializes a new Prometheus metrics instance with preloaded label values.
func NewMetrics(cfg config.PrometheusMetrics) *Metrics {
	standardTimeBuckets := []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5}
	queuedRequestTimeBuckets := []float64{0, 1, 5, 30, 60, 120, 180, 240, 300}

	metrics := Metrics{}
	metrics.Gatherer = prometheus.NewRegistry()

	metrics.connectionsClosed = newCounterWithoutLabels(cfg, metrics.Gatherer,
		"connections_closed",
		"Count of successful connections closed to the builder.")

	metrics.connectionsError = newCounter(cfg, metrics.Gatherer,
		"connections_error",
		"Count of errors for connection open and close attempts to the builder labeled by type.",
		[]string{connectionErrorLabel})

	metrics.connectionsOpened = newCounterWithoutLabels(cfg, metrics.Gatherer,
		"connections_opened",
		"Count of successful connections opened to the builder.")

	metrics.impressions = newCounter(cfg, metrics.Gatherer,
		"imps_generated",
		"Count of generated impressions by media type.",
		[]string{isBannerLabel, isVideoLabel, isAudioLabel, isNativeLabel})

	metrics.requests = newCounter(cfg, metrics.Gatherer,
		"requests",
		"Count of total requests to the builder labeled by type and status.",
		[]string{requestTypeLabel, requestStatusLabel})

	metrics.requestsTimer = newHistogramVec(cfg, metrics.Gatherer,
		"request_time_seconds",
		"Seconds to resolve successful builder requests labeled by type.",
		[]string{requestTypeLabel},
		standardTimeBuckets)

	metrics.requestsQueueTimer = newHistogramVec(cfg, metrics.Gatherer,
		"request_queue_time",
		"Seconds request was waiting in queue",
		[]string{requestTypeLabel, requestStatusLabel},
		queuedRequestTimeBuckets)

	metrics.validations = newCounter(cfg, metrics.Gatherer,
		"validations",
		"Count of validated bid requests labeled by type and outcome.",
		[]string{requestTypeLabel, validLabel})

	metrics.validationFindings = newCounter(cfg, metrics.Gatherer,
		"validation_findings",
		"Count of validation errors and warnings labeled by type and severity.",
		[]string{requestTypeLabel, severityLabel})

	preloadLabelValues(&metrics)

	return &metrics
}

func newCounter(cfg config.PrometheusMetrics, registry *prometheus.Registry, name, help string, labels []string) *prometheus.CounterVec {
	opts := prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      name,
		Help:      help,
	}
	counter := prometheus.NewCounterVec(opts, labels)
	registry.MustRegister(counter)
	return counter
}

func newCounterWithoutLabels(cfg config.PrometheusMetrics, registry *prometheus.Registry, name, help string) prometheus.Counter {
	opts := prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      name,
		Help:      help,
	}
	counter := prometheus.NewCounter(opts)
	registry.MustRegister(counter)
	return counter
}

func newHistogramVec(cfg config.PrometheusMetrics, registry *prometheus.Registry, name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	opts := prometheus.HistogramOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      name,
		Help:      help,
		Buckets:   buckets,
	}
	histogram := prometheus.NewHistogramVec(opts, labels)
	registry.MustRegister(histogram)
	return histogram
}

func (m *Metrics) RecordConnectionAccept(success bool) {
	if success {
		m.connectionsOpened.Inc()
	} else {
		m.connectionsError.With(prometheus.Labels{
			connectionErrorLabel: connectionAcceptError,
		}).Inc()
	}
}

func (m *Metrics) RecordConnectionClose(success bool) {
	if success {
		m.connectionsClosed.Inc()
	} else {
		m.connectionsError.With(prometheus.Labels{
			connectionErrorLabel: connectionCloseError,
		}).Inc()
	}
}

func (m *Metrics) RecordRequest(labels metrics.Labels) {
	m.requests.With(prometheus.Labels{
		requestTypeLabel:   string(labels.RType),
		requestStatusLabel: string(labels.RequestStatus),
	}).Inc()
}

func (m *Metrics) RecordRequestTime(labels metrics.Labels, length time.Duration) {
	if labels.RequestStatus == metrics.RequestStatusOK || labels.RequestStatus == metrics.RequestStatusInvalid {
		m.requestsTimer.With(prometheus.Labels{
			requestTypeLabel: string(labels.RType),
		}).Observe(length.Seconds())
	}
}

func (m *Metrics) RecordImps(labels metrics.ImpLabels) {
	m.impressions.With(prometheus.Labels{
		isBannerLabel: strconv.FormatBool(labels.BannerImps),
		isVideoLabel:  strconv.FormatBool(labels.VideoImps),
		isAudioLabel:  strconv.FormatBool(labels.AudioImps),
		isNativeLabel: strconv.FormatBool(labels.NativeImps),
	}).Inc()
}

func (m *Metrics) RecordValidation(labels metrics.ValidationLabels) {
	m.validations.With(prometheus.Labels{
		requestTypeLabel: string(labels.RType),
		validLabel:       strconv.FormatBool(labels.Valid),
	}).Inc()

	if labels.Errors > 0 {
		m.validationFindings.With(prometheus.Labels{
			requestTypeLabel: string(labels.RType),
			severityLabel:    string(metrics.FindingError),
		}).Add(float64(labels.Errors))
	}
	if labels.Warnings > 0 {
		m.validationFindings.With(prometheus.Labels{
			requestTypeLabel: string(labels.RType),
			severityLabel:    string(metrics.FindingWarning),
		}).Add(float64(labels.Warnings))
	}
}

func (m *Metrics) RecordRequestQueueTime(success bool, requestType metrics.RequestType, length time.Duration) {
	successLabelFormatted := requestRejectLabel
	if success {
		successLabelFormatted = requestSuccessLabel
	}
	m.requestsQueueTimer.With(prometheus.Labels{
		requestTypeLabel:   string(requestType),
		requestStatusLabel: successLabelFormatted,
	}).Observe(length.Seconds())
}

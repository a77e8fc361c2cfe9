package config

import (
	"time"

	"github.com/prebid/ortb-builder/config"
	"github.com/prebid/ortb-builder/metrics"
	prometheusmetrics "github.com/prebid/ortb-builder/metrics/prometheus"
)

// NewMetricsEngine reads the configuration and returns the appropriate metrics engine
// for this instance.
func NewMetricsEngine(cfg *config.Configuration) *DetailedMetricsEngine {
	returnEngine := DetailedMetricsEngine{}

	if cfg.Metrics.Prometheus.Port != 0 {
		returnEngine.PrometheusMetrics = prometheusmetrics.NewMetrics(cfg.Metrics.Prometheus)
		returnEngine.MetricsEngine = returnEngine.PrometheusMetrics
		return &returnEngine
	}

	returnEngine.MetricsEngine = &NilMetricsEngine{}
	return &returnEngine
}

// DetailedMetricsEngine is a MetricsEngine that preserves links to the underlying backend so
// the server can expose the Prometheus gatherer.
type DetailedMetricsEngine struct {
	metrics.MetricsEngine
	PrometheusMetrics *prometheusmetrics.Metrics
}

// NilMetricsEngine implements the MetricsEngine interface where no metrics are desired.
type NilMetricsEngine struct{}

// RecordConnectionAccept as a noop
func (me *NilMetricsEngine) RecordConnectionAccept(success bool) {
}

// RecordConnectionClose as a noop
func (me *NilMetricsEngine) RecordConnectionClose(success bool) {
}

// RecordRequest as a noop
func (me *NilMetricsEngine) RecordRequest(labels metrics.Labels) {
}

// RecordRequestTime as a noop
func (me *NilMetricsEngine) RecordRequestTime(labels metrics.Labels, length time.Duration) {
}

// RecordImps as a noop
func (me *NilMetricsEngine) RecordImps(labels metrics.ImpLabels) {
}

// RecordValidation as a noop
func (me *NilMetricsEngine) RecordValidation(labels metrics.ValidationLabels) {
}

// RecordRequestQueueTime as a noop
func (me *NilMetricsEngine) RecordRequestQueueTime(success bool, requestType metrics.RequestType, length time.Duration) {
}

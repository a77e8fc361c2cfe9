package prometheusmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

func preloadLabelValues(m *Metrics) {
	var (
		boolValues            = boolValuesAsString()
		connectionErrorValues = []string{connectionAcceptError, connectionCloseError}
		requestStatusValues   = requestStatusesAsString()
		requestTypeValues     = requestTypesAsString()
		severityValues        = findingSeveritiesAsString()
		queueStatusValues     = []string{requestSuccessLabel, requestRejectLabel}
	)

	preloadLabelValuesForCounter(m.connectionsError, map[string][]string{
		connectionErrorLabel: connectionErrorValues,
	})

	preloadLabelValuesForCounter(m.impressions, map[string][]string{
		isBannerLabel: boolValues,
		isVideoLabel:  boolValues,
		isAudioLabel:  boolValues,
		isNativeLabel: boolValues,
	})

	preloadLabelValuesForCounter(m.requests, map[string][]string{
		requestTypeLabel:   requestTypeValues,
		requestStatusLabel: requestStatusValues,
	})

	preloadLabelValuesForHistogram(m.requestsTimer, map[string][]string{
		requestTypeLabel: requestTypeValues,
	})

	preloadLabelValuesForHistogram(m.requestsQueueTimer, map[string][]string{
		requestTypeLabel:   requestTypeValues,
		requestStatusLabel: queueStatusValues,
	})

	preloadLabelValuesForCounter(m.validations, map[string][]string{
		requestTypeLabel: requestTypeValues,
		validLabel:       boolValues,
	})

	preloadLabelValuesForCounter(m.validationFindings, map[string][]string{
		requestTypeLabel: requestTypeValues,
		severityLabel:    severityValues,
	})
}

func preloadLabelValuesForCounter(counter *prometheus.CounterVec, labelsWithValues map[string][]string) {
	registerLabelPermutations(labelsWithValues, func(labels prometheus.Labels) {
		counter.With(labels)
	})
}

func preloadLabelValuesForHistogram(histogram *prometheus.HistogramVec, labelsWithValues map[string][]string) {
	registerLabelPermutations(labelsWithValues, func(labels prometheus.Labels) {
		histogram.With(labels)
	})
}

func registerLabelPermutations(labelsWithValues map[string][]string, register func(prometheus.Labels)) {
	if len(labelsWithValues) == 0 {
		return
	}

	keys := make([]string, 0, len(labelsWithValues))
	values := make([][]string, 0, len(labelsWithValues))
	for k, v := range labelsWithValues {
		keys = append(keys, k)
		values = append(values, v)
	}

	labels := prometheus.Labels{}
	registerLabelPermutationsRecursive(0, keys, values, labels, register)
}

func registerLabelPermutationsRecursive(depth int, keys []string, values [][]string, labels prometheus.Labels, register func(prometheus.Labels)) {
	label := keys[depth]
	isLeaf := depth == len(keys)-1

	for _, value := range values[depth] {
		labels[label] = value

		if isLeaf {
			registeredLabels := make(prometheus.Labels, len(labels))
			for k, v := range labels {
				registeredLabels[k] = v
			}
			register(registeredLabels)
		} else {
			registerLabelPermutationsRecursive(depth+1, keys, values, labels, register)
		}
	}
}

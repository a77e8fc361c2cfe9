package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prebid/ortb-builder/errortypes"
)

func TestDefaults(t *testing.T) {
	cfg := newDefaultConfig(t)

	cmpStrings(t, "host", cfg.Host, "")
	cmpInts(t, "port", cfg.Port, 8000)
	cmpInts(t, "admin_port", cfg.AdminPort, 6060)
	cmpBools(t, "enable_gzip", cfg.EnableGzip, false)
	cmpStrings(t, "status_response", cfg.StatusResponse, "")
	cmpInts(t, "max_request_size", int(cfg.MaxRequestSize), 1024*256)
	cmpInts(t, "request_defaults.auction_type", int(cfg.RequestDefaults.AuctionType), 2)
	cmpInts(t, "request_defaults.tmax_ms", int(cfg.RequestDefaults.TMaxMillis), 200)
	cmpStrings(t, "request_defaults.currency", cfg.RequestDefaults.Currency, "USD")
	cmpStrings(t, "constraints.path", cfg.Constraints.Path, "")
	cmpInts(t, "metrics.prometheus.port", cfg.Metrics.Prometheus.Port, 0)
	cmpInts(t, "metrics.prometheus.timeout_ms", cfg.Metrics.Prometheus.TimeoutMillisRaw, 10000)
	assert.Equal(t, []string{"USD"}, cfg.RequestDefaults.Currencies())
}

var fullConfig = []byte(`
host: ortb.example.com
port: 1234
admin_port: 5678
enable_gzip: true
status_response: ok
max_request_size: 1024
request_timeout_headers:
  request_time_in_queue: X-Queue-Time
  request_timeout_in_queue: X-Queue-Timeout
request_defaults:
  auction_type: 1
  tmax_ms: 500
  currency: EUR
constraints:
  path: /etc/ortb/constraints.json
metrics:
  prometheus:
    port: 8001
    namespace: ortb
    subsystem: builder
    timeout_ms: 250
`)

func TestFullConfig(t *testing.T) {
	v := viper.New()
	SetupViper(v, "")
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBuffer(fullConfig)))

	cfg, err := New(v)
	assert.NoError(t, err, "Setting up config should work but it doesn't")

	cmpStrings(t, "host", cfg.Host, "ortb.example.com")
	cmpInts(t, "port", cfg.Port, 1234)
	cmpInts(t, "admin_port", cfg.AdminPort, 5678)
	cmpBools(t, "enable_gzip", cfg.EnableGzip, true)
	cmpStrings(t, "status_response", cfg.StatusResponse, "ok")
	cmpInts(t, "max_request_size", int(cfg.MaxRequestSize), 1024)
	cmpStrings(t, "request_timeout_headers.request_time_in_queue", cfg.RequestTimeoutHeaders.RequestTimeInQueue, "X-Queue-Time")
	cmpStrings(t, "request_timeout_headers.request_timeout_in_queue", cfg.RequestTimeoutHeaders.RequestTimeoutInQueue, "X-Queue-Timeout")
	cmpInts(t, "request_defaults.auction_type", int(cfg.RequestDefaults.AuctionType), 1)
	cmpInts(t, "request_defaults.tmax_ms", int(cfg.RequestDefaults.TMaxMillis), 500)
	cmpStrings(t, "request_defaults.currency", cfg.RequestDefaults.Currency, "EUR")
	cmpStrings(t, "constraints.path", cfg.Constraints.Path, "/etc/ortb/constraints.json")
	cmpInts(t, "metrics.prometheus.port", cfg.Metrics.Prometheus.Port, 8001)
	cmpStrings(t, "metrics.prometheus.namespace", cfg.Metrics.Prometheus.Namespace, "ortb")
	cmpStrings(t, "metrics.prometheus.subsystem", cfg.Metrics.Prometheus.Subsystem, "builder")
	assert.Equal(t, 250*time.Millisecond, cfg.Metrics.Prometheus.Timeout())
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("ORTB_PORT", "9000")
	t.Setenv("ORTB_REQUEST_DEFAULTS_TMAX_MS", "350")

	cfg := newDefaultConfig(t)

	cmpInts(t, "port", cfg.Port, 9000)
	cmpInts(t, "request_defaults.tmax_ms", int(cfg.RequestDefaults.TMaxMillis), 350)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		description string
		modify      func(cfg *Configuration)
		expectedErr string
	}{
		{
			description: "non_positive_port",
			modify:      func(cfg *Configuration) { cfg.Port = 0 },
			expectedErr: "port must be positive. Got 0",
		},
		{
			description: "negative_admin_port",
			modify:      func(cfg *Configuration) { cfg.AdminPort = -1 },
			expectedErr: "admin_port must be >= 0. Got -1",
		},
		{
			description: "shared_port",
			modify:      func(cfg *Configuration) { cfg.AdminPort = cfg.Port },
			expectedErr: "admin_port must differ from port. Both are 8000",
		},
		{
			description: "negative_request_size",
			modify:      func(cfg *Configuration) { cfg.MaxRequestSize = -1 },
			expectedErr: "cfg.max_request_size must be >= 0. Got -1",
		},
		{
			description: "half_configured_timeout_headers",
			modify:      func(cfg *Configuration) { cfg.RequestTimeoutHeaders.RequestTimeInQueue = "X-Queue-Time" },
			expectedErr: "request_timeout_headers.request_time_in_queue and request_timeout_headers.request_timeout_in_queue must be set together",
		},
		{
			description: "zero_auction_type",
			modify:      func(cfg *Configuration) { cfg.RequestDefaults.AuctionType = 0 },
			expectedErr: "request_defaults.auction_type must be positive. Got 0",
		},
		{
			description: "negative_tmax",
			modify:      func(cfg *Configuration) { cfg.RequestDefaults.TMaxMillis = -5 },
			expectedErr: "request_defaults.tmax_ms must be >= 0. Got -5",
		},
		{
			description: "unknown_currency",
			modify:      func(cfg *Configuration) { cfg.RequestDefaults.Currency = "DOLLAR" },
			expectedErr: `request_defaults.currency must be an upper case ISO-4217 currency code. Got "DOLLAR"`,
		},
		{
			description: "lower_case_currency",
			modify:      func(cfg *Configuration) { cfg.RequestDefaults.Currency = "eur" },
			expectedErr: `request_defaults.currency must be an upper case ISO-4217 currency code. Got "eur"`,
		},
		{
			description: "prometheus_timeout",
			modify: func(cfg *Configuration) {
				cfg.Metrics.Prometheus.Port = 8001
				cfg.Metrics.Prometheus.TimeoutMillisRaw = 0
			},
			expectedErr: "metrics.prometheus.timeout_ms must be positive if metrics.prometheus.port is defined. Got timeout=0 and port=8001",
		},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			cfg := newDefaultConfig(t)
			test.modify(cfg)
			assertOneError(t, cfg.validate(), test.expectedErr)
		})
	}
}

func TestNewReturnsAggregateErrors(t *testing.T) {
	v := viper.New()
	SetupViper(v, "")
	v.Set("port", -1)
	v.Set("request_defaults.currency", "??")

	cfg, err := New(v)
	require.Error(t, err)
	assert.NotNil(t, cfg)

	aggregate, ok := err.(errortypes.AggregateErrors)
	require.True(t, ok, "expected AggregateErrors, got %T", err)
	assert.Len(t, aggregate.Errors, 2)
}

func newDefaultConfig(t *testing.T) *Configuration {
	t.Helper()
	v := viper.New()
	SetupViper(v, "")
	v.SetConfigType("yaml")
	cfg, err := New(v)
	assert.NoError(t, err, "Setting up config should work but it doesn't")
	return cfg
}

func assertOneError(t *testing.T, errs []error, message string) {
	t.Helper()
	if !assert.Len(t, errs, 1) {
		return
	}
	assert.EqualError(t, errs[0], message)
}

func cmpStrings(t *testing.T, key string, a string, b string) {
	t.Helper()
	assert.Equal(t, b, a, "%s: %s != %s", key, a, b)
}

func cmpInts(t *testing.T, key string, a int, b int) {
	t.Helper()
	assert.Equal(t, b, a, "%s: %d != %d", key, a, b)
}

func cmpBools(t *testing.T, key string, a bool, b bool) {
	t.Helper()
	assert.Equal(t, b, a, "%s: %t != %t", key, a, b)
}

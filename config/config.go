package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/viper"
	"golang.org/x/text/currency"

	"github.com/prebid/ortb-builder/errortypes"
)

// Configuration specifies the static application config.
type Configuration struct {
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	AdminPort  int    `mapstructure:"admin_port"`
	EnableGzip bool   `mapstructure:"enable_gzip"`
	// StatusResponse is the string which will be returned by the /status endpoint when things are OK.
	// If empty, it will return a 204 with no content.
	StatusResponse string `mapstructure:"status_response"`
	// MaxRequestSize is the largest request body accepted by the generate and validate endpoints.
	// A value of 0 disables the limit.
	MaxRequestSize        int64                 `mapstructure:"max_request_size"`
	RequestTimeoutHeaders RequestTimeoutHeaders `mapstructure:"request_timeout_headers"`
	RequestDefaults       RequestDefaults       `mapstructure:"request_defaults"`
	Constraints           Constraints           `mapstructure:"constraints"`
	Metrics               Metrics               `mapstructure:"metrics"`
}

// RequestDefaults holds the request level values used when a caller does not supply them.
type RequestDefaults struct {
	AuctionType int64  `mapstructure:"auction_type"`
	TMaxMillis  int64  `mapstructure:"tmax_ms"`
	Currency    string `mapstructure:"currency"`
}

// Constraints locates the constraint registry. An empty path uses the embedded registry.
type Constraints struct {
	Path string `mapstructure:"path"`
}

// RequestTimeoutHeaders names the headers a load balancer uses to report how long a request
// waited in its queue and how long it may wait.
type RequestTimeoutHeaders struct {
	RequestTimeInQueue    string `mapstructure:"request_time_in_queue"`
	RequestTimeoutInQueue string `mapstructure:"request_timeout_in_queue"`
}

type Metrics struct {
	Prometheus PrometheusMetrics `mapstructure:"prometheus"`
}

type PrometheusMetrics struct {
	Port             int    `mapstructure:"port"`
	Namespace        string `mapstructure:"namespace"`
	Subsystem        string `mapstructure:"subsystem"`
	TimeoutMillisRaw int    `mapstructure:"timeout_ms"`
}

func (cfg *PrometheusMetrics) validate(errs []error) []error {
	if cfg.Port > 0 && cfg.TimeoutMillisRaw <= 0 {
		errs = append(errs, fmt.Errorf("metrics.prometheus.timeout_ms must be positive if metrics.prometheus.port is defined. Got timeout=%d and port=%d", cfg.TimeoutMillisRaw, cfg.Port))
	}
	return errs
}

func (cfg *PrometheusMetrics) Timeout() time.Duration {
	return time.Duration(cfg.TimeoutMillisRaw) * time.Millisecond
}

func (cfg *RequestDefaults) validate(errs []error) []error {
	if cfg.AuctionType < 1 {
		errs = append(errs, fmt.Errorf("request_defaults.auction_type must be positive. Got %d", cfg.AuctionType))
	}
	if cfg.TMaxMillis < 0 {
		errs = append(errs, fmt.Errorf("request_defaults.tmax_ms must be >= 0. Got %d", cfg.TMaxMillis))
	}
	if _, err := currency.ParseISO(cfg.Currency); err != nil || strings.ToUpper(cfg.Currency) != cfg.Currency {
		errs = append(errs, fmt.Errorf("request_defaults.currency must be an upper case ISO-4217 currency code. Got %q", cfg.Currency))
	}
	return errs
}

// Currencies returns the default currency as the request level cur list.
func (cfg *RequestDefaults) Currencies() []string {
	return []string{cfg.Currency}
}

func (cfg *RequestTimeoutHeaders) validate(errs []error) []error {
	if (cfg.RequestTimeInQueue == "") != (cfg.RequestTimeoutInQueue == "") {
		errs = append(errs, errors.New("request_timeout_headers.request_time_in_queue and request_timeout_headers.request_timeout_in_queue must be set together"))
	}
	return errs
}

func (cfg *Configuration) validate() []error {
	var errs []error

	if cfg.Port <= 0 {
		errs = append(errs, fmt.Errorf("port must be positive. Got %d", cfg.Port))
	}
	if cfg.AdminPort < 0 {
		errs = append(errs, fmt.Errorf("admin_port must be >= 0. Got %d", cfg.AdminPort))
	}
	if cfg.AdminPort > 0 && cfg.AdminPort == cfg.Port {
		errs = append(errs, fmt.Errorf("admin_port must differ from port. Both are %d", cfg.Port))
	}
	if cfg.MaxRequestSize < 0 {
		errs = append(errs, fmt.Errorf("cfg.max_request_size must be >= 0. Got %d", cfg.MaxRequestSize))
	}

	errs = cfg.RequestTimeoutHeaders.validate(errs)
	errs = cfg.RequestDefaults.validate(errs)
	errs = cfg.Metrics.Prometheus.validate(errs)
	return errs
}

// New uses viper to get our server configurations.
func New(v *viper.Viper) (*Configuration, error) {
	var c Configuration
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("viper failed to unmarshal app config: %v", err)
	}

	glog.Infof("Resolved configuration: host=%q port=%d admin_port=%d gzip=%t constraints=%q prometheus_port=%d",
		c.Host, c.Port, c.AdminPort, c.EnableGzip, c.Constraints.Path, c.Metrics.Prometheus.Port)

	if errs := c.validate(); len(errs) > 0 {
		return &c, errortypes.NewAggregateErrors("validation errors", errs)
	}

	return &c, nil
}

// SetupViper registers the config file locations, the defaults and the environment variable
// bindings. Environment variables use the ORTB prefix, so port is read from ORTB_PORT and
// request_defaults.tmax_ms from ORTB_REQUEST_DEFAULTS_TMAX_MS.
func SetupViper(v *viper.Viper, filename string) {
	if filename != "" {
		v.SetConfigName(filename)
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/config")
	}

	v.SetDefault("host", "")
	v.SetDefault("port", 8000)
	v.SetDefault("admin_port", 6060)
	v.SetDefault("enable_gzip", false)
	v.SetDefault("status_response", "")
	v.SetDefault("max_request_size", 1024*256)
	v.SetDefault("request_timeout_headers.request_time_in_queue", "")
	v.SetDefault("request_timeout_headers.request_timeout_in_queue", "")
	v.SetDefault("request_defaults.auction_type", 2)
	v.SetDefault("request_defaults.tmax_ms", 200)
	v.SetDefault("request_defaults.currency", "USD")
	v.SetDefault("constraints.path", "")
	v.SetDefault("metrics.prometheus.port", 0)
	v.SetDefault("metrics.prometheus.namespace", "")
	v.SetDefault("metrics.prometheus.subsystem", "")
	v.SetDefault("metrics.prometheus.timeout_ms", 10000)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("ORTB")
	v.AutomaticEnv()
	v.ReadInConfig()
}

package router

import (
	"fmt"
	"net/http"

	"github.com/golang/glog"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"

	"github.com/prebid/ortb-builder/config"
	"github.com/prebid/ortb-builder/endpoints"
	openrtbEndpoints "github.com/prebid/ortb-builder/endpoints/openrtb"
	"github.com/prebid/ortb-builder/generator"
	"github.com/prebid/ortb-builder/metrics"
	metricsConf "github.com/prebid/ortb-builder/metrics/config"
	"github.com/prebid/ortb-builder/ortb"
	"github.com/prebid/ortb-builder/router/aspects"
	"github.com/prebid/ortb-builder/rules"
	"github.com/prebid/ortb-builder/util/uuidutil"
)

type NoCache struct {
	Handler http.Handler
}

func (m NoCache) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Add("Pragma", "no-cache")
	w.Header().Add("Expires", "0")
	m.Handler.ServeHTTP(w, r)
}

type Router struct {
	*httprouter.Router
	MetricsEngine *metricsConf.DetailedMetricsEngine
	Shutdown      func()
}

// New wires the constraint registry, the generator and the metrics engine into the HTTP routes.
func New(cfg *config.Configuration, version, revision string) (r *Router, err error) {
	r = &Router{
		Router:   httprouter.New(),
		Shutdown: func() {},
	}

	registry, err := rules.Load(cfg.Constraints.Path)
	if err != nil {
		return nil, fmt.Errorf("ortb-builder could not load the constraint registry: %v", err)
	}
	if cfg.Constraints.Path != "" {
		glog.Infof("Loaded constraint registry from %s", cfg.Constraints.Path)
	}

	r.MetricsEngine = metricsConf.NewMetricsEngine(cfg)

	gen := generator.NewGenerator(
		ortb.NewRequestValidator(registry),
		uuidutil.UUIDRandomGenerator{},
		requestDefaults(cfg.RequestDefaults),
		r.MetricsEngine)

	generateEndpoint := openrtbEndpoints.NewGenerateEndpoint(gen, cfg, r.MetricsEngine)
	validateEndpoint := openrtbEndpoints.NewValidateEndpoint(gen, cfg, r.MetricsEngine)

	requestTimeoutHeaders := config.RequestTimeoutHeaders{}
	if cfg.RequestTimeoutHeaders != requestTimeoutHeaders {
		generateEndpoint = aspects.QueuedRequestTimeout(generateEndpoint, cfg.RequestTimeoutHeaders, r.MetricsEngine, metrics.ReqTypeGenerate)
		validateEndpoint = aspects.QueuedRequestTimeout(validateEndpoint, cfg.RequestTimeoutHeaders, r.MetricsEngine, metrics.ReqTypeValidate)
	}

	r.POST("/openrtb/generate", generateEndpoint)
	r.POST("/openrtb/validate", validateEndpoint)
	r.GET("/openrtb/constraints", openrtbEndpoints.NewConstraintsEndpoint(registry))
	r.GET("/status", endpoints.NewStatusEndpoint(cfg.StatusResponse))
	r.Handler("GET", "/version", endpoints.NewVersionEndpoint(version, revision))

	return r, nil
}

func requestDefaults(cfg config.RequestDefaults) ortb.RequestDefaults {
	return ortb.RequestDefaults{
		AuctionType: cfg.AuctionType,
		TMax:        cfg.TMaxMillis,
		Currency:    cfg.Currencies(),
	}
}

// SupportCORS lets browser tooling call the generate and validate endpoints from any origin.
// No cookies are read, so credentials are not allowed.
func SupportCORS(handler http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowOriginFunc: func(string) bool {
			return true
		},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Origin", "X-Requested-With", "Content-Type", "Accept"}})
	return c.Handler(handler)
}

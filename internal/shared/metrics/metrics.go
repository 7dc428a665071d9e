package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	promhttppkg "github.com/prometheus/client_golang/prometheus/promhttp"
)

// Shared label names and values. Per-package metric definitions live next
// to the code they instrument, in each package's metrics.go.
const (
	FieldErrorCode = "error_code"
	FieldEventType = "event_type"

	ValueNoError = ""

	Namespace      = "usage_analytics"
	SubParse       = "parse"
	SubAggregation = "aggregation"
	SubStream      = "stream"
	SubHTTP        = "http"
)

// CounterOpts is a type alias for prometheus.CounterOpts.
type CounterOpts = prometheus.CounterOpts

// HistogramOpts is a type alias for prometheus.HistogramOpts.
type HistogramOpts = prometheus.HistogramOpts

// DefBuckets is a re-export of prometheus.DefBuckets.
var DefBuckets = prometheus.DefBuckets

// NewCounter creates a Counter registered with the default registry.
var NewCounter = promauto.NewCounter

// NewCounterVec creates a CounterVec registered with the default registry.
var NewCounterVec = promauto.NewCounterVec

// NewHistogramVec creates a HistogramVec registered with the default registry.
var NewHistogramVec = promauto.NewHistogramVec

// promHTTP narrows the promhttp package to the one call the router needs.
type promHTTP struct{}

// Handler returns the http.Handler serving the metrics endpoint.
func (promHTTP) Handler() http.Handler {
	return promhttppkg.Handler()
}

// PromHTTP is the package-level instance, accessed as metrics.PromHTTP.
var PromHTTP = promHTTP{}

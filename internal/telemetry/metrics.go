// Package telemetry defines the prometheus metrics of the rewriting pipeline
// and serves them over HTTP.
package telemetry

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BytesIn = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sluice_bytes_in_total",
		Help: "Bytes received from the source.",
	})
	BytesOut = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sluice_bytes_out_total",
		Help: "Bytes pushed to the sinks.",
	})
	PlaceholdersResolved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sluice_placeholders_resolved_total",
		Help: "Placeholders substituted with a resolver value.",
	})
	PlaceholdersPassed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sluice_placeholders_passed_total",
		Help: "Placeholders passed through unresolved under the lenient policy.",
	})
	ResolveErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sluice_resolve_errors_total",
		Help: "Resolver calls that returned an error.",
	})
)

// Expose serves /metrics on the given port in the background.
func Expose(port int) {
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		_ = http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
	}()
}

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Follow Prometheus naming practices
// https://prometheus.io/docs/practices/naming/
var (
	generatedLabels = []string{"kind"}
)

var (
	MetricGeneratedValues = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "faker_generated_values_total",
			Help: "number of fake values generated, by generator kind.",
		},
		generatedLabels,
	)
)

const (
	// MetricsPath is the endpoint the generation counters are served on
	MetricsPath = "/metrics"
)

type MetricsServer struct {
	*http.Server

	generated *prometheus.CounterVec
}

type ServerConfig struct {
	Addr string
}

// NewMetricsServer returns a new prometheus server which collects generation metrics
func NewMetricsServer(cfg ServerConfig) *MetricsServer {
	mux := http.NewServeMux()

	reg := prometheus.NewRegistry()

	reg.MustRegister(MetricGeneratedValues)

	mux.Handle(MetricsPath, promhttp.HandlerFor(prometheus.Gatherers{
		reg,
	}, promhttp.HandlerOpts{}))
	return &MetricsServer{
		Server: &http.Server{
			Addr:    cfg.Addr,
			Handler: mux,
		},
		generated: MetricGeneratedValues,
	}
}

// IncGenerated counts one generated value for the given generator kind
func (m *MetricsServer) IncGenerated(kind string) {
	m.generated.WithLabelValues(kind).Inc()
}

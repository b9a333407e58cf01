package collector

import "github.com/prometheus/client_golang/prometheus"

const (
	namespace = "amqp_header_mapper"
)

// Directions of a translation.
const (
	Inbound  = "inbound"
	Outbound = "outbound"
)

// Dispositions of a header.
const (
	Property = "property"
	Copied   = "copied"
	Skipped  = "skipped"
)

var (
	HeaderCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "headers_total",
			Help:      "The total number of headers translated.",
		},
		[]string{"direction", "disposition"},
	)

	ErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of translations failed due to invalid headers.",
		},
		[]string{"kind"},
	)

	TranslationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "translation_duration_seconds",
			Help:      "The time spent translating a message.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 10, 6),
		},
		[]string{"direction"},
	)

	// Registry holds all the metrics of this package.
	Registry = prometheus.NewRegistry()
)

func init() {
	Registry.MustRegister(HeaderCounter, ErrorCounter, TranslationDuration)
}

// WriteTextfile writes the metrics in the text format read by the textfile
// collector of the node exporter.
func WriteTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, Registry)
}

package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	messagesEncoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pokerpackets",
			Subsystem: "codec",
			Name:      "messages_encoded_total",
			Help:      "Top-level messages encoded.",
		},
		[]string{"message"},
	)
	messagesDecoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pokerpackets",
			Subsystem: "codec",
			Name:      "messages_decoded_total",
			Help:      "Top-level messages decoded.",
		},
		[]string{"message"},
	)
	codecBytes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pokerpackets",
			Subsystem: "codec",
			Name:      "bytes_total",
			Help:      "Framed bytes produced or consumed.",
		},
		[]string{"direction"},
	)
	codecErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pokerpackets",
			Subsystem: "codec",
			Name:      "errors_total",
			Help:      "Encode and decode failures by kind.",
		},
		[]string{"op", "kind"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(messagesEncoded, messagesDecoded, codecBytes, codecErrors)
	})
}

func RecordEncode(message string, size int) {
	RegisterMetrics()
	messagesEncoded.WithLabelValues(message).Inc()
	codecBytes.WithLabelValues("out").Add(float64(size))
}

func RecordDecode(message string, size int) {
	RegisterMetrics()
	messagesDecoded.WithLabelValues(message).Inc()
	codecBytes.WithLabelValues("in").Add(float64(size))
}

func RecordCodecError(op, kind string) {
	RegisterMetrics()
	codecErrors.WithLabelValues(op, kind).Inc()
}

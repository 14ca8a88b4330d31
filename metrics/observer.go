// Package metrics exports codec activity as Prometheus metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/anirudhraja/osdwire/wire"
)

const (
	namespace string = "osdwire"
	subsystem string = "codec"

	opDecode = "decode"
	opEncode = "encode"
)

// Observer counts encodes and decodes per message type and records payload
// sizes and latencies. It satisfies osdwire.Observer.
type Observer struct {
	operations *prometheus.CounterVec
	bytes      *prometheus.HistogramVec
	duration   *prometheus.HistogramVec
}

// NewObserver creates an Observer and registers its metrics with reg. A nil
// reg registers with the default registerer.
func NewObserver(reg prometheus.Registerer) (*Observer, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	o := &Observer{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "operations_total",
			Help:      "Encodes and decodes by message type and result.",
		}, []string{"message", "op", "result"}),
		bytes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "payload_bytes",
			Help:      "Size of encoded payloads.",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 10),
		}, []string{"message", "op"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "duration_seconds",
			Help:      "Time spent encoding or decoding one message.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"message", "op"}),
	}
	for _, c := range []prometheus.Collector{o.operations, o.bytes, o.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// ObserveDecode records one decode. Failed decodes are counted under the
// wire.ErrorKind of the error and do not contribute sizes or latencies.
func (o *Observer) ObserveDecode(messageType string, size int, elapsed time.Duration, err error) {
	o.observe(opDecode, messageType, size, elapsed, err)
}

// ObserveEncode records one encode.
func (o *Observer) ObserveEncode(messageType string, size int, elapsed time.Duration, err error) {
	o.observe(opEncode, messageType, size, elapsed, err)
}

func (o *Observer) observe(op, messageType string, size int, elapsed time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = wire.ErrorKind(err)
	}
	o.operations.WithLabelValues(messageType, op, result).Inc()
	if err != nil {
		return
	}
	o.bytes.WithLabelValues(messageType, op).Observe(float64(size))
	o.duration.WithLabelValues(messageType, op).Observe(elapsed.Seconds())
}

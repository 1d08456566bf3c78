package metrics

// Metric names reported by the block codec.
const (
	EncodeTotal   = "ssz.encode.total"
	DecodeTotal   = "ssz.decode.total"
	EncodeBytes   = "ssz.encode.bytes"
	DecodeBytes   = "ssz.decode.bytes"
	DecodeLatency = "ssz.decode.latency_us"
	DecodeActive  = "ssz.decode.active"
	// DecodeErrorPrefix is followed by the error class, e.g.
	// "ssz.decode.errors.truncated".
	DecodeErrorPrefix = "ssz.decode.errors."
	// EncodeErrorPrefix is followed by the error class, e.g.
	// "ssz.encode.errors.list_too_long".
	EncodeErrorPrefix = "ssz.encode.errors."
)

// CodecMetrics bundles the metrics of one codec instance.
type CodecMetrics struct {
	reg *Registry

	EncodeTotal   *Counter
	DecodeTotal   *Counter
	EncodeBytes   *Counter
	DecodeBytes   *Counter
	DecodeLatency *Histogram
	DecodeActive  *Gauge
}

// NewCodecMetrics registers the codec metrics in reg, or in
// DefaultRegistry when reg is nil.
func NewCodecMetrics(reg *Registry) *CodecMetrics {
	if reg == nil {
		reg = DefaultRegistry
	}
	return &CodecMetrics{
		reg:           reg,
		EncodeTotal:   reg.Counter(EncodeTotal),
		DecodeTotal:   reg.Counter(DecodeTotal),
		EncodeBytes:   reg.Counter(EncodeBytes),
		DecodeBytes:   reg.Counter(DecodeBytes),
		DecodeLatency: reg.Histogram(DecodeLatency),
		DecodeActive:  reg.Gauge(DecodeActive),
	}
}

// DecodeError returns the failure counter for an error class.
func (m *CodecMetrics) DecodeError(class string) *Counter {
	return m.reg.Counter(DecodeErrorPrefix + class)
}

// EncodeError returns the failure counter for an error class.
func (m *CodecMetrics) EncodeError(class string) *Counter {
	return m.reg.Counter(EncodeErrorPrefix + class)
}

// Registry returns the registry the metrics live in.
func (m *CodecMetrics) Registry() *Registry { return m.reg }

// Package blockcodec is the entry point for encoding and decoding beacon
// blocks. It applies the configured input limit, and it logs and meters
// every operation. Any container from package consensus can be moved
// between the SSZ binary form and the JSON, YAML and CBOR structured forms.
package blockcodec

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/eth2030/sszcodec/consensus"
	"github.com/eth2030/sszcodec/log"
	"github.com/eth2030/sszcodec/metrics"
	"github.com/eth2030/sszcodec/ssz"
	"github.com/eth2030/sszcodec/structured"
)

var (
	ErrTooLarge = errors.New("blockcodec: input exceeds size limit")
	ErrEncoding = errors.New("blockcodec: unknown encoding")
)

// Encoding names a wire or text form.
type Encoding uint8

const (
	SSZ Encoding = iota
	JSON
	YAML
	CBOR
)

func (e Encoding) String() string {
	switch e {
	case SSZ:
		return "ssz"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case CBOR:
		return "cbor"
	default:
		return fmt.Sprintf("Encoding(%d)", uint8(e))
	}
}

// ParseEncoding parses an encoding name, case-insensitively.
func ParseEncoding(s string) (Encoding, error) {
	if strings.EqualFold(s, "ssz") {
		return SSZ, nil
	}
	f, err := structured.ParseFormat(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrEncoding, s)
	}
	return fromFormat(f), nil
}

func fromFormat(f structured.Format) Encoding {
	switch f {
	case structured.YAML:
		return YAML
	case structured.CBOR:
		return CBOR
	}
	return JSON
}

func (e Encoding) format() (structured.Format, error) {
	switch e {
	case JSON:
		return structured.JSON, nil
	case YAML:
		return structured.YAML, nil
	case CBOR:
		return structured.CBOR, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrEncoding, e)
}

// Codec encodes and decodes consensus containers. It is safe for
// concurrent use.
type Codec struct {
	cfg     Config
	log     *log.Logger
	metrics *metrics.CodecMetrics
}

// New creates a Codec. A nil logger is built from the config; a nil
// registry means metrics.DefaultRegistry.
func New(cfg Config, logger *log.Logger, reg *metrics.Registry) (*Codec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = cfg.newLogger()
	}
	return &Codec{
		cfg:     cfg,
		log:     logger.Module("blockcodec"),
		metrics: metrics.NewCodecMetrics(reg),
	}, nil
}

// Config returns the codec's configuration.
func (c *Codec) Config() Config { return c.cfg }

// Metrics returns the codec's metrics.
func (c *Codec) Metrics() *metrics.CodecMetrics { return c.metrics }

// EncodeBlock returns the SSZ encoding of a signed block.
func (c *Codec) EncodeBlock(b *consensus.SignedBeaconBlock) ([]byte, error) {
	return Encode(c, SSZ, b)
}

// DecodeBlock decodes an SSZ signed block.
func (c *Codec) DecodeBlock(data []byte) (*consensus.SignedBeaconBlock, error) {
	return Decode[consensus.SignedBeaconBlock](c, SSZ, data)
}

// Encode writes v in the given encoding. Every attempt is counted, and
// failures are also counted per error class.
func Encode[T any, PT interface {
	*T
	ssz.Object
}](c *Codec, enc Encoding, v *T) ([]byte, error) {
	c.metrics.EncodeTotal.Inc()
	var (
		out []byte
		err error
	)
	if enc == SSZ {
		out, err = PT(v).MarshalSSZ()
	} else {
		var f structured.Format
		if f, err = enc.format(); err == nil {
			out, err = structured.Marshal(f, v)
		}
	}
	name := typeName[T]()
	if err != nil {
		class := ErrorClass(err)
		c.metrics.EncodeError(class).Inc()
		c.log.Warn("encode failed", "type", name, "encoding", enc, "class", class, "err", err)
		return nil, err
	}
	c.metrics.EncodeBytes.Add(int64(len(out)))
	c.log.Debug("encoded", "type", name, "encoding", enc, "bytes", len(out))
	return out, nil
}

// Decode reads a T from data in the given encoding. Inputs longer than the
// configured limit fail with ErrTooLarge. Nothing is returned on failure.
func Decode[T any, PT interface {
	*T
	ssz.Object
}](c *Codec, enc Encoding, data []byte) (*T, error) {
	c.metrics.DecodeTotal.Inc()
	name := typeName[T]()
	if len(data) > c.cfg.MaxBlockBytes {
		err := fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, len(data), c.cfg.MaxBlockBytes)
		c.reject(name, enc, len(data), err)
		return nil, err
	}

	c.metrics.DecodeActive.Inc()
	defer c.metrics.DecodeActive.Dec()
	timer := metrics.NewTimer(c.metrics.DecodeLatency)

	v := new(T)
	var err error
	if enc == SSZ {
		err = PT(v).UnmarshalSSZ(data)
	} else {
		var f structured.Format
		if f, err = enc.format(); err == nil {
			err = structured.Unmarshal(f, data, v)
		}
	}
	elapsed := timer.Stop()
	if err != nil {
		c.reject(name, enc, len(data), err)
		return nil, err
	}
	c.metrics.DecodeBytes.Add(int64(len(data)))
	c.log.Debug("decoded", "type", name, "encoding", enc, "bytes", len(data), "elapsed", elapsed)
	return v, nil
}

// Transcode decodes data from one encoding and re-encodes it in another.
func Transcode[T any, PT interface {
	*T
	ssz.Object
}](c *Codec, data []byte, from, to Encoding) ([]byte, error) {
	v, err := Decode[T, PT](c, from, data)
	if err != nil {
		return nil, err
	}
	return Encode[T, PT](c, to, v)
}

func (c *Codec) reject(name string, enc Encoding, n int, err error) {
	class := ErrorClass(err)
	c.metrics.DecodeError(class).Inc()
	c.log.Warn("decode rejected", "type", name, "encoding", enc, "class", class, "bytes", n, "err", err)
}

// errorClasses maps sentinels to metric classes. Order matters: a field
// error wraps the nested cause, and the field error is what is reported.
var errorClasses = []struct {
	err   error
	class string
}{
	{ErrTooLarge, "too_large"},
	{ErrEncoding, "encoding"},
	{ssz.ErrSubDecode, "sub_decode"},
	{ssz.ErrTruncated, "truncated"},
	{ssz.ErrOffset, "offset"},
	{ssz.ErrTrailingBytes, "trailing_bytes"},
	{ssz.ErrListTooLong, "list_too_long"},
	{ssz.ErrInvalidBool, "invalid_bool"},
	{ssz.ErrBitlist, "bitlist"},
	{ssz.ErrSize, "size"},
	{structured.ErrUnknownField, "unknown_field"},
	{structured.ErrMissingField, "missing_field"},
	{structured.ErrShape, "shape"},
	{structured.ErrTrailingData, "trailing_data"},
	{consensus.ErrInvalidQuantity, "invalid_quantity"},
}

// ErrorClass returns the metric class of a codec error, or "other".
func ErrorClass(err error) string {
	for _, ec := range errorClasses {
		if errors.Is(err, ec.err) {
			return ec.class
		}
	}
	return "other"
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().Name()
}

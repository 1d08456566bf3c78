// Package structured encodes containers to and from human-readable
// key-value forms (JSON, YAML and CBOR).
//
// Field names are taken from the `json` struct tags (`yaml` tags carry the
// same names, CBOR falls back to `json`). Decoding is strict: the document
// is first checked against the exact field-name set of the target type,
// recursively, and only then populated. A key the type does not declare,
// a declared key that is absent, a fixed-length array of the wrong length
// or data after the first document all fail the decode.
package structured

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Decode errors.
var (
	ErrUnknownField = errors.New("structured: unknown field")
	ErrMissingField = errors.New("structured: missing field")
	ErrShape        = errors.New("structured: value has the wrong shape")
	ErrTrailingData = errors.New("structured: trailing data")
	ErrFormat       = errors.New("structured: unknown format")
	ErrTarget       = errors.New("structured: decode target must be a non-nil pointer")
)

// Format selects a structured encoding.
type Format uint8

const (
	JSON Format = iota
	YAML
	CBOR
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case CBOR:
		return "cbor"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ParseFormat parses a format name. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "cbor":
		return CBOR, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrFormat, s)
}

var (
	// cborEnc writes Core Deterministic Encoding; TextMarshaler types
	// (quantities, roots, signatures, bitlists) become text strings.
	cborEnc cbor.EncMode
	// cborGeneric decodes into any with string-keyed maps for the shape
	// check.
	cborGeneric cbor.DecMode
	// cborStrict decodes into the target type.
	cborStrict cbor.DecMode
)

func init() {
	opts := cbor.CoreDetEncOptions()
	opts.TextMarshaler = cbor.TextMarshalerTextString
	opts.NilContainers = cbor.NilContainerAsEmpty
	var err error
	if cborEnc, err = opts.EncMode(); err != nil {
		panic("structured: CBOR encoder: " + err.Error())
	}
	if cborGeneric, err = (cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		DupMapKey:      cbor.DupMapKeyEnforcedAPF,
	}).DecMode(); err != nil {
		panic("structured: CBOR decoder: " + err.Error())
	}
	if cborStrict, err = (cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
		TextUnmarshaler:   cbor.TextUnmarshalerTextString,
	}).DecMode(); err != nil {
		panic("structured: CBOR decoder: " + err.Error())
	}
}

// Marshal encodes v in format f.
func Marshal(f Format, v any) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch f {
	case JSON:
		out, err = json.Marshal(v)
	case YAML:
		out, err = yaml.Marshal(v)
	case CBOR:
		out, err = cborEnc.Marshal(v)
	default:
		return nil, fmt.Errorf("%w: %v", ErrFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("structured: encode %s: %w", f, err)
	}
	return out, nil
}

// Unmarshal decodes data in format f into the value v points to. On error
// the target is left unchanged.
func Unmarshal(f Format, data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: got %T", ErrTarget, v)
	}
	doc, err := decodeGeneric(f, data)
	if err != nil {
		return err
	}
	typ := rv.Elem().Type()
	if err := checkShape(doc, typ, typ.Name()); err != nil {
		return err
	}
	tmp := reflect.New(typ)
	if err := decodeStrict(f, data, tmp.Interface()); err != nil {
		return fmt.Errorf("structured: decode %s: %w", f, err)
	}
	rv.Elem().Set(tmp.Elem())
	return nil
}

// decodeGeneric parses exactly one document into maps, slices and
// scalars.
func decodeGeneric(f Format, data []byte) (any, error) {
	var doc any
	switch f {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("structured: decode json: %w", err)
		}
		if _, err := dec.Token(); err != io.EOF {
			return nil, fmt.Errorf("%w: after json document", ErrTrailingData)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("structured: decode yaml: %w", err)
		}
		var next any
		if err := dec.Decode(&next); err != io.EOF {
			return nil, fmt.Errorf("%w: after yaml document", ErrTrailingData)
		}
	case CBOR:
		rest, err := cborGeneric.UnmarshalFirst(data, &doc)
		if err != nil {
			return nil, fmt.Errorf("structured: decode cbor: %w", err)
		}
		if len(rest) != 0 {
			return nil, fmt.Errorf("%w: %d bytes after cbor item", ErrTrailingData, len(rest))
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrFormat, f)
	}
	return doc, nil
}

// decodeStrict populates v with the libraries' own unknown-field checks
// enabled.
func decodeStrict(f Format, data []byte, v any) error {
	switch f {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		return dec.Decode(v)
	case CBOR:
		return cborStrict.Unmarshal(data, v)
	}
	return fmt.Errorf("%w: %v", ErrFormat, f)
}

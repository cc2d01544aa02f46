package codec

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/aretw0/relay/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Codec encodes values to a byte payload and decodes them back.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
	Name() string
}

// JSON is the default codec.
type JSON struct{}

func (JSON) Name() string { return "json" }

func (JSON) Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEncode, err)
	}
	return data, nil
}

func (JSON) Decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDecode, err)
	}
	return nil
}

// YAML encodes payloads as YAML documents.
type YAML struct{}

func (YAML) Name() string { return "yaml" }

func (YAML) Encode(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEncode, err)
	}
	return data, nil
}

func (YAML) Decode(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDecode, err)
	}
	return nil
}

// ByName returns the codec registered under name ("json" or "yaml").
func ByName(name string) (Codec, error) {
	switch name {
	case "", "json":
		return JSON{}, nil
	case "yaml", "yml":
		return YAML{}, nil
	}
	return nil, fmt.Errorf("unknown codec %q", name)
}

// Decode converts payload into a T. It returns false when payload has none of the supported forms
// or does not decode; the error itself is dropped on purpose.
func Decode[T any](c Codec, payload any) (T, bool) {
	v, err := DecodeErr[T](c, payload)
	return v, err == nil
}

// DecodeErr is Decode for callers that want to report the failure.
func DecodeErr[T any](c Codec, payload any) (T, error) {
	var out T
	switch p := payload.(type) {
	case T:
		return p, nil
	case *T:
		if p == nil {
			return out, fmt.Errorf("%w: nil pointer", domain.ErrDecode)
		}
		return *p, nil
	case []byte:
		if c == nil {
			c = JSON{}
		}
		if len(p) == 0 {
			return out, fmt.Errorf("%w: empty payload", domain.ErrDecode)
		}
		if err := c.Decode(p, &out); err != nil {
			return out, err
		}
		return out, nil
	case map[string]any:
		if err := decodeMap(p, &out); err != nil {
			return out, fmt.Errorf("%w: %w", domain.ErrDecode, err)
		}
		return out, nil
	case nil:
		return out, fmt.Errorf("%w: nil payload", domain.ErrDecode)
	}
	return out, fmt.Errorf("%w: unsupported payload %T", domain.ErrDecode, payload)
}

func decodeMap(in map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       textHook,
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}

var textUnmarshaler = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// textHook lets string fields of a map reach types with an UnmarshalText method, such as
// domain.DeliveryMode, so that their validation runs.
func textHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || !reflect.PointerTo(to).Implements(textUnmarshaler) {
		return data, nil
	}
	out := reflect.New(to)
	if err := out.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(reflect.ValueOf(data).String())); err != nil {
		return nil, err
	}
	return out.Elem().Interface(), nil
}

// Encode encodes v with c, falling back to JSON when c is nil.
func Encode(c Codec, v any) ([]byte, error) {
	if c == nil {
		c = JSON{}
	}
	return c.Encode(v)
}

// Packet wraps a top-level value so that every payload is an object on the wire.
type Packet[T any] struct {
	Item T `json:"item" yaml:"item"`
}

// NewPacket wraps item.
func NewPacket[T any](item T) Packet[T] { return Packet[T]{Item: item} }

// Encoded returns p encoded with c. It always returns a slice, empty on failure;
// the decoding end decides whether the packet is usable.
func (p Packet[T]) Encoded(c Codec) []byte {
	data, err := Encode(c, p)
	if err != nil {
		return []byte{}
	}
	return data
}

// Contains reports whether payload decodes as a Packet[T].
func Contains[T any](c Codec, payload any) bool {
	_, ok := Decode[Packet[T]](c, payload)
	return ok
}

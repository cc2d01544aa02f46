package domain

import "fmt"

// DeliveryMode hints how the target feature should be shown.
// The router carries it through untouched; it does not change routing.
type DeliveryMode string

const (
	ModePresent DeliveryMode = "present"
	ModePush    DeliveryMode = "push"
	ModeModal   DeliveryMode = "modal"
)

// Valid reports whether m is one of the known modes.
func (m DeliveryMode) Valid() bool {
	switch m {
	case ModePresent, ModePush, ModeModal:
		return true
	}
	return false
}

func (m DeliveryMode) String() string { return string(m) }

// MarshalText implements encoding.TextMarshaler.
func (m DeliveryMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("unknown delivery mode %q", string(m))
	}
	return []byte(m), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown modes are rejected.
func (m *DeliveryMode) UnmarshalText(text []byte) error {
	mode := DeliveryMode(text)
	if !mode.Valid() {
		return fmt.Errorf("unknown delivery mode %q", string(text))
	}
	*m = mode
	return nil
}

// ParseDeliveryMode converts s into a DeliveryMode.
func ParseDeliveryMode(s string) (DeliveryMode, error) {
	var m DeliveryMode
	err := m.UnmarshalText([]byte(s))
	return m, err
}

// Envelope is a navigation request. It travels through ActionPresent only; the router strips it
// and re-dispatches Payload under Action.
type Envelope struct {
	Locator string       `json:"url" yaml:"url" mapstructure:"url"`
	Payload []byte       `json:"item,omitempty" yaml:"item,omitempty" mapstructure:"item"`
	Action  ActionID     `json:"action" yaml:"action" mapstructure:"action"`
	Mode    DeliveryMode `json:"type" yaml:"type" mapstructure:"type"`
}

// HasPayload reports whether the envelope carries a payload to re-dispatch.
func (e Envelope) HasPayload() bool { return len(e.Payload) > 0 }

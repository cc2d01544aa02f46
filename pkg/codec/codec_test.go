package codec_test

import (
	"testing"

	"github.com/aretw0/relay/pkg/codec"
	"github.com/aretw0/relay/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Forms(t *testing.T) {
	want := domain.Person{ID: "p1", Name: "David"}
	raw, err := codec.JSON{}.Encode(want)
	require.NoError(t, err)

	tests := []struct {
		name    string
		payload any
	}{
		{"value", want},
		{"pointer", &want},
		{"bytes", raw},
		{"map", map[string]any{"id": "p1", "name": "David"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := codec.Decode[domain.Person](codec.JSON{}, tt.payload)
			require.True(t, ok)
			assert.Equal(t, want, got)
		})
	}
}

func TestDecode_SoftFail(t *testing.T) {
	tests := []struct {
		name    string
		payload any
	}{
		{"nil", nil},
		{"empty bytes", []byte{}},
		{"garbage", []byte("{not json")},
		{"wrong type", 42},
		{"nil pointer", (*domain.Person)(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := codec.Decode[domain.Person](codec.JSON{}, tt.payload)
			assert.False(t, ok)

			_, err := codec.DecodeErr[domain.Person](codec.JSON{}, tt.payload)
			assert.ErrorIs(t, err, domain.ErrDecode)
		})
	}
}

func TestDecode_EnvelopeFromMap(t *testing.T) {
	env, ok := codec.Decode[domain.Envelope](nil, map[string]any{
		"url":    "app://people",
		"action": "PERSON.DETAIL.ACTION",
		"type":   "modal",
	})
	require.True(t, ok)
	assert.Equal(t, domain.ModeModal, env.Mode)
	assert.Equal(t, domain.PersonActions.Detail, env.Action)
	assert.False(t, env.HasPayload())
}

func TestEnvelope_RejectsUnknownMode(t *testing.T) {
	_, ok := codec.Decode[domain.Envelope](codec.JSON{}, []byte(`{"url":"app://x","action":"A","type":"slide"}`))
	assert.False(t, ok)
}

func TestYAML_RoundTrip(t *testing.T) {
	c, err := codec.ByName("yaml")
	require.NoError(t, err)
	assert.Equal(t, "yaml", c.Name())

	data, err := c.Encode(domain.Person{ID: "p2", Name: "Giannis"})
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: Giannis")

	got, ok := codec.Decode[domain.Person](c, data)
	require.True(t, ok)
	assert.Equal(t, "p2", got.ID)
}

func TestByName_Unknown(t *testing.T) {
	_, err := codec.ByName("xml")
	assert.Error(t, err)
}

func TestEncode_Failure(t *testing.T) {
	_, err := codec.Encode(nil, make(chan int))
	assert.ErrorIs(t, err, domain.ErrEncode)
}

func TestPacket(t *testing.T) {
	p := codec.NewPacket([]string{"a", "b"})
	data := p.Encoded(codec.JSON{})
	assert.JSONEq(t, `{"item":["a","b"]}`, string(data))
	assert.True(t, codec.Contains[[]string](codec.JSON{}, data))
	assert.False(t, codec.Contains[[]string](codec.JSON{}, []byte(`{"item":5}`)))

	bad := codec.NewPacket(make(chan int))
	assert.Empty(t, bad.Encoded(nil))
}

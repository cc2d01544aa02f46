package testutils

import (
	"sync"
	"testing"

	"github.com/aretw0/relay/pkg/codec"
	"github.com/aretw0/relay/pkg/domain"
	"github.com/stretchr/testify/require"
)

// Recorder captures what an observer or error handler receives.
type Recorder struct {
	mu       sync.Mutex
	payloads []any
	errs     []error
}

// Observer returns an observer appending every payload to r.
func (r *Recorder) Observer() domain.Observer {
	return func(payload any) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.payloads = append(r.payloads, payload)
	}
}

// ErrorFunc returns an error handler appending every error to r.
func (r *Recorder) ErrorFunc() domain.ErrorFunc {
	return func(err error) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.errs = append(r.errs, err)
	}
}

// Payloads returns a copy of the received payloads.
func (r *Recorder) Payloads() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]any(nil), r.payloads...)
}

// Errors returns a copy of the received errors.
func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.errs...)
}

// MustEncode encodes v with c and fails the test immediately on error.
func MustEncode(t *testing.T, c codec.Codec, v any) []byte {
	t.Helper()
	data, err := codec.Encode(c, v)
	require.NoError(t, err, "Failed to encode %T", v)
	return data
}

// DecodeAll decodes every recorded payload as T and fails the test if one does not decode.
func DecodeAll[T any](t *testing.T, c codec.Codec, r *Recorder) []T {
	t.Helper()
	var out []T
	for i, p := range r.Payloads() {
		v, err := codec.DecodeErr[T](c, p)
		require.NoError(t, err, "payload %d", i)
		out = append(out, v)
	}
	return out
}

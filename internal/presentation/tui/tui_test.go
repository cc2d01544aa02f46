package tui_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/relay/internal/presentation/tui"
	"github.com/aretw0/relay/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner_Ascii(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, termenv.Ascii)

	out := buf.String()
	assert.Contains(t, out, "|___/")
	assert.NotContains(t, out, "\x1b[", "ascii profile must not emit escape codes")
}

func TestFormatEvent(t *testing.T) {
	tests := []struct {
		name  string
		event domain.DispatchEvent
		want  string
	}{
		{"dispatch first", domain.DispatchEvent{Type: domain.EventDispatch, Action: "A", First: true}, "dispatch  A first"},
		{"transform", domain.DispatchEvent{Type: domain.EventTransform, Action: "A", HandlerID: "t1"}, "transform A [t1]"},
		{"deliver", domain.DispatchEvent{Type: domain.EventDeliver, Action: "A", Index: 2}, "deliver   A #2"},
		{"drop", domain.DispatchEvent{Type: domain.EventDrop, Action: "A", Reason: domain.DropNoObservers}, "drop      A (no_observers)"},
		{"error", domain.DispatchEvent{Type: domain.EventError, Action: "A_ERROR_ACTION", HandlerID: "h", Err: errors.New("boom")}, "error     A_ERROR_ACTION [h] boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tui.FormatEvent(termenv.Ascii, tt.event))
		})
	}
}

func TestPrintTrace(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintTrace(&buf, termenv.Ascii, []domain.DispatchEvent{
		{Type: domain.EventDispatch, Action: "A"},
		{Type: domain.EventDeliver, Action: "A"},
	})
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
}

func TestRenderer_Unstyled(t *testing.T) {
	render, err := tui.NewRenderer(false, 80)
	require.NoError(t, err)

	out, err := render("# Actions\n\n| Action | Payload |\n|---|---|\n| PRESENT | domain.Envelope |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Actions")
	assert.Contains(t, out, "PRESENT")
}

package tui

import (
	"fmt"
	"io"

	"github.com/aretw0/relay/pkg/domain"
	"github.com/muesli/termenv"
)

var eventColors = map[domain.EventType]string{
	domain.EventDispatch:  "#818cf8",
	domain.EventTransform: "#c084fc",
	domain.EventDeliver:   "#34d399",
	domain.EventError:     "#fb7185",
	domain.EventDrop:      "#fbbf24",
}

// FormatEvent renders one lifecycle event as a single line.
func FormatEvent(p termenv.Profile, e domain.DispatchEvent) string {
	kind := p.String(fmt.Sprintf("%-9s", e.Type)).Foreground(p.Color(eventColors[e.Type])).Bold()
	line := fmt.Sprintf("%s %s", kind, e.Action)

	switch e.Type {
	case domain.EventTransform, domain.EventError:
		line += fmt.Sprintf(" [%s]", e.HandlerID)
	case domain.EventDeliver:
		line += fmt.Sprintf(" #%d", e.Index)
	case domain.EventDrop:
		line += fmt.Sprintf(" (%s)", e.Reason)
	}
	if e.First {
		line += " first"
	}
	if e.Err != nil {
		line += " " + p.String(e.Err.Error()).Faint().String()
	}
	return line
}

// PrintTrace writes every event of events to w, one per line.
func PrintTrace(w io.Writer, p termenv.Profile, events []domain.DispatchEvent) {
	for _, e := range events {
		fmt.Fprintln(w, FormatEvent(p, e))
	}
}

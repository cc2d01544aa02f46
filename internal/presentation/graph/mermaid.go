package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/relay/pkg/domain"
)

// GraphOverlay contains dispatch history to highlight on the graph.
type GraphOverlay struct {
	VisitedActions []domain.ActionID
	CurrentAction  domain.ActionID
}

// GenerateMermaid produces a Mermaid flowchart of actions and the flows between them.
// Actions only named by a flow are added too. Shapes:
// - PRESENT: ((Circle))
// - Error channel: {{Hexagon}}
// - GET_ALL request: [[Subroutine]]
// - Default: [Rectangle]
func GenerateMermaid(actions []domain.ActionID, flows []domain.Flow, overlay *GraphOverlay) string {
	nodes := slices.Clone(actions)
	for _, f := range flows {
		nodes = append(nodes, f.From, f.To)
	}
	slices.Sort(nodes)
	nodes = slices.Compact(nodes)

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, action := range nodes {
		opener, closer := "[", "]"
		name := action.String()
		switch {
		case action == domain.ActionPresent:
			opener, closer = "((", "))"
		case strings.Contains(name, "_ERROR_"):
			opener, closer = "{{", "}}"
		case strings.Contains(name, "GET_ALL"):
			opener, closer = "[[", "]]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", sanitizeMermaidID(name), opener, name, closer))
	}

	for _, f := range flows {
		arrow := "-->"
		if f.Error {
			arrow = "-.->"
		}
		if f.Label != "" {
			label := strings.ReplaceAll(f.Label, "\"", "'")
			arrow = fmt.Sprintf("-- \"%s\" -->", label)
			if f.Error {
				arrow = fmt.Sprintf("-. \"%s\" .->", label)
			}
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", sanitizeMermaidID(f.From.String()), arrow, sanitizeMermaidID(f.To.String())))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, action := range overlay.VisitedActions {
			id := sanitizeMermaidID(action.String())
			if id != "" && !seen[id] {
				seen[id] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", id))
			}
		}
		if overlay.CurrentAction != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.CurrentAction.String())))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/relay/internal/presentation/graph"
	"github.com/aretw0/relay/internal/presentation/tui"
	"github.com/aretw0/relay/pkg/domain"
	"github.com/aretw0/relay/pkg/people"
)

// ActionsOptions contains the configuration for the actions command.
type ActionsOptions struct {
	Graph bool
	Raw   bool
	Width int
}

// RunActions prints the bundled action catalog, as a markdown table or a Mermaid graph.
func RunActions(opts ActionsOptions, out io.Writer) error {
	catalog := domain.DefaultCatalog()

	if opts.Graph {
		_, err := fmt.Fprint(out, graph.GenerateMermaid(catalog.Actions(), people.Flows(), nil))
		return err
	}

	md := CatalogMarkdown(catalog)
	if opts.Raw {
		_, err := fmt.Fprint(out, md)
		return err
	}

	width := opts.Width
	if width <= 0 {
		width = 100
	}
	render, err := tui.NewRenderer(isTerminal(out), width)
	if err != nil {
		return err
	}
	rendered, err := render(md)
	if err != nil {
		return fmt.Errorf("error rendering catalog: %w", err)
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}

// CatalogMarkdown renders c as a markdown table.
func CatalogMarkdown(c *domain.Catalog) string {
	var sb strings.Builder
	sb.WriteString("# Actions\n\n")
	sb.WriteString("| Action | Payload | Error channel |\n")
	sb.WriteString("|---|---|---|\n")
	for _, action := range c.Actions() {
		t, _ := c.Lookup(action)
		sb.WriteString(fmt.Sprintf("| `%s` | `%s` | `%s` |\n", action, t, domain.ErrorAction(action)))
	}
	return sb.String()
}

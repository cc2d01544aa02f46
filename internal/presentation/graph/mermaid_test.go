package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/relay/internal/presentation/graph"
	"github.com/aretw0/relay/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		actions  []domain.ActionID
		flows    []domain.Flow
		contains []string
	}{
		{
			name:    "Present Shape",
			actions: []domain.ActionID{domain.ActionPresent},
			contains: []string{
				"PRESENT((\"PRESENT\"))",
			},
		},
		{
			name:    "Error Channel Shape",
			actions: []domain.ActionID{domain.ErrorAction(domain.ActionPresent), domain.ActionPeopleError},
			contains: []string{
				"PRESENT_ERROR_ACTION{{\"PRESENT_ERROR_ACTION\"}}",
				"PEOPLE_ERROR_ALL_ACTION{{\"PEOPLE_ERROR_ALL_ACTION\"}}",
			},
		},
		{
			name:    "Request Shape And Sanitization",
			actions: []domain.ActionID{domain.PeopleActions.GetAll, "app://x-y"},
			contains: []string{
				"PEOPLE_GET_ALL_ACTION[[\"PEOPLE.GET_ALL.ACTION\"]]",
				"app___x_y[\"app://x-y\"]",
			},
		},
		{
			name: "Flows Add Missing Nodes",
			flows: []domain.Flow{
				{From: "A", To: "B"},
			},
			contains: []string{
				"A[\"A\"]",
				"B[\"B\"]",
				"A --> B",
			},
		},
		{
			name: "Flow Labels And Errors",
			flows: []domain.Flow{
				{From: "A", To: "B", Label: "say \"hi\""},
				{From: "A", To: "A_ERROR_ACTION", Error: true},
				{From: "B", To: "C", Label: "oops", Error: true},
			},
			contains: []string{
				"A -- \"say 'hi'\" --> B",
				"A -.-> A_ERROR_ACTION",
				"B -. \"oops\" .-> C",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.actions, tt.flows, nil)
			if !strings.HasPrefix(got, "graph TD\n") {
				t.Errorf("missing header:\n%s", got)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, got)
				}
			}
		})
	}
}

func TestGenerateMermaid_DeduplicatesNodes(t *testing.T) {
	got := graph.GenerateMermaid(
		[]domain.ActionID{"A", "A"},
		[]domain.Flow{{From: "A", To: "A"}},
		nil,
	)
	if n := strings.Count(got, "A[\"A\"]"); n != 1 {
		t.Errorf("expected one node declaration, got %d:\n%s", n, got)
	}
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	overlay := &graph.GraphOverlay{
		VisitedActions: []domain.ActionID{"A", "B", "A"},
		CurrentAction:  "B",
	}
	got := graph.GenerateMermaid([]domain.ActionID{"A", "B"}, nil, overlay)

	for _, want := range []string{"classDef visited", "classDef current", "class A visited;", "class B current;"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, got)
		}
	}
	if n := strings.Count(got, "class A visited;"); n != 1 {
		t.Errorf("visited actions should be deduplicated, got %d", n)
	}
}

package export

import (
	"fmt"
	"strings"
	"testing"

	"github.com/flowboardhq/flowboard/pkg/scene"
	"github.com/flowboardhq/flowboard/pkg/seed"
)

// timelineFixture builds a board with two cards and one connector using
// stable IDs, matching the seeded card row geometry.
func timelineFixture() []scene.Shape {
	return []scene.Shape{
		{
			ID: "card-a", Kind: scene.KindGeo, X: 100, Y: 290,
			Geo: &scene.GeoProps{Width: 320, Height: 150, Label: "Initial Frame", Color: "blue"},
		},
		{
			ID: "card-b", Kind: scene.KindGeo, X: 500, Y: 290,
			Geo: &scene.GeoProps{Width: 320, Height: 150, Label: "Annotate", Color: "violet"},
		},
		{
			ID: "conn-ab", Kind: scene.KindConnector, X: 430, Y: 365,
			Connector: &scene.ConnectorProps{
				Start:    scene.Point{X: 430, Y: 365},
				End:      scene.Point{X: 490, Y: 365},
				Color:    "blue",
				ArrowEnd: true,
			},
		},
		{
			ID: "note-1", Kind: scene.KindText, X: 0, Y: -60,
			Text: &scene.TextProps{Body: "Welcome"},
		},
	}
}

func TestToDOTNodesAndEdges(t *testing.T) {
	dot := ToDOT(timelineFixture())

	wants := []string{
		`"card-a" [label="Initial Frame", color="blue"]`,
		`"card-b" [label="Annotate", color="violet"]`,
		`"note-1" [shape=note, label="Welcome"]`,
		`"card-a" -> "card-b" [color="blue"]`,
	}
	for _, want := range wants {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTIsDeterministic(t *testing.T) {
	a := ToDOT(timelineFixture())
	b := ToDOT(timelineFixture())
	if a != b {
		t.Error("ToDOT output differs between identical inputs")
	}
}

func TestToDOTDropsUnmatchedConnectors(t *testing.T) {
	shapes := timelineFixture()
	// Move the connector far away from any card edge.
	shapes[2].Connector.Start = scene.Point{X: 5000, Y: 5000}
	shapes[2].Connector.End = scene.Point{X: 6000, Y: 5000}

	dot := ToDOT(shapes)
	if strings.Contains(dot, "->") {
		t.Errorf("DOT output contains an edge for an unmatched connector:\n%s", dot)
	}
}

func TestToDOTEmptyBoard(t *testing.T) {
	dot := ToDOT(nil)
	if !strings.HasPrefix(dot, "digraph board {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("empty board DOT malformed:\n%s", dot)
	}
}

func TestToDOTSeededPlan(t *testing.T) {
	shapes := seed.Plan(seed.DefaultOrigin, seed.DefaultSteps)
	dot := ToDOT(shapes)

	// Every seeded connector sits connectorInset from the card edges,
	// well within the matching slack, so both edges must appear.
	if got := strings.Count(dot, "->"); got != 2 {
		t.Errorf("seeded plan produced %d edges, want 2:\n%s", got, dot)
	}
	for _, step := range seed.DefaultSteps {
		if !strings.Contains(dot, fmt.Sprintf("label=%q", step.Label)) {
			t.Errorf("DOT output missing card %q", step.Label)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	svg := []byte(`<?xml version="1.0"?>
<svg width="134pt" height="52pt" viewBox="0.00 0.00 134.00 52.00" xmlns="http://www.w3.org/2000/svg">
<g></g>
</svg>`)

	got := string(normalizeViewBox(svg))
	if !strings.Contains(got, `viewBox="0 0 134.00 52.00"`) {
		t.Errorf("viewBox not normalized:\n%s", got)
	}
	if !strings.Contains(got, `width="134" height="52"`) {
		t.Errorf("dimensions not rewritten:\n%s", got)
	}
	if strings.Contains(got, "pt") {
		t.Errorf("point units survived normalization:\n%s", got)
	}
}

func TestNormalizeViewBoxNoViewBox(t *testing.T) {
	svg := []byte("<svg><g></g></svg>")
	if got := normalizeViewBox(svg); string(got) != string(svg) {
		t.Errorf("SVG without viewBox was modified: %s", got)
	}
}

// Package export renders a board's shapes as a Graphviz diagram.
//
// The card/connector structure of a board is a directed graph: geo cards
// become boxed nodes, text blocks become unconnected notes, and connectors
// become edges between the cards they span. The output is a quick preview
// for debugging seeded boards, not a faithful rendering of the canvas.
package export

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/flowboardhq/flowboard/pkg/scene"
)

// endpointSlack is how far (in page units) a connector endpoint may sit
// from a card edge and still be attributed to that card.
const endpointSlack = 40.0

// ToDOT converts a board's shapes to Graphviz DOT format.
// Cards and text blocks are emitted in deterministic left-to-right,
// top-to-bottom order; connectors become edges between the cards their
// endpoints touch. Connectors that match no card pair are dropped.
func ToDOT(shapes []scene.Shape) string {
	var cards, texts, connectors []scene.Shape
	for _, s := range shapes {
		switch {
		case s.IsGeo():
			cards = append(cards, s)
		case s.IsText():
			texts = append(texts, s)
		case s.IsConnector():
			connectors = append(connectors, s)
		}
	}
	sortByPosition(cards)
	sortByPosition(texts)

	var buf bytes.Buffer
	buf.WriteString("digraph board {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=20, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, c := range cards {
		label := c.Geo.Label
		if label == "" {
			label = c.ID
		}
		fmt.Fprintf(&buf, "  %q [label=%q, color=%q];\n", c.ID, label, c.Geo.Color)
	}
	for _, t := range texts {
		fmt.Fprintf(&buf, "  %q [shape=note, label=%q];\n", t.ID, t.Text.Body)
	}

	buf.WriteString("\n")
	for _, conn := range connectors {
		from, to, ok := matchCards(cards, *conn.Connector)
		if !ok {
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [color=%q];\n", from.ID, to.ID, conn.Connector.Color)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// sortByPosition orders shapes left-to-right, then top-to-bottom, then by
// ID so output is stable for shapes sharing a position.
func sortByPosition(shapes []scene.Shape) {
	slices.SortFunc(shapes, func(a, b scene.Shape) int {
		if a.X != b.X {
			if a.X < b.X {
				return -1
			}
			return 1
		}
		if a.Y != b.Y {
			if a.Y < b.Y {
				return -1
			}
			return 1
		}
		return strings.Compare(a.ID, b.ID)
	})
}

// matchCards attributes a connector's endpoints to the cards they touch:
// the start point to the card whose right edge it leaves, the end point
// to the card whose left edge it enters.
func matchCards(cards []scene.Shape, conn scene.ConnectorProps) (from, to scene.Shape, ok bool) {
	var haveFrom, haveTo bool
	for _, c := range cards {
		if !haveFrom && near(conn.Start.X, c.Right()) && within(conn.Start.Y, c.Y, c.Y+c.Geo.Height) {
			from, haveFrom = c, true
		}
		if !haveTo && near(conn.End.X, c.Left()) && within(conn.End.Y, c.Y, c.Y+c.Geo.Height) {
			to, haveTo = c, true
		}
	}
	return from, to, haveFrom && haveTo
}

func near(a, b float64) bool {
	d := a - b
	return d >= -endpointSlack && d <= endpointSlack
}

func within(v, lo, hi float64) bool { return v >= lo && v <= hi }

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root element so the viewBox starts at
// the origin and the width/height match it. Graphviz emits point-based
// dimensions that confuse some viewers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

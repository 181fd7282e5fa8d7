package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowboardhq/flowboard/pkg/scene"
	"github.com/flowboardhq/flowboard/pkg/seed"
)

// shapesCommand creates the shapes command for inspecting a board file.
func (c *CLI) shapesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shapes [board.json]",
		Short: "List the shapes in a board file",
		Long: `List the shapes in a board file.

Prints each shape's ID, kind, and position, plus per-kind counts and
whether the board carries the onboarding seed marker.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShapes(args[0])
		},
	}

	return cmd
}

// runShapes loads the board and prints its shapes.
func (c *CLI) runShapes(input string) error {
	board, err := scene.ReadBoardFile(input)
	if err != nil {
		return fmt.Errorf("load board %s: %w", input, err)
	}

	var texts, cards, connectors, frames int
	for _, s := range board.Shapes {
		switch {
		case s.IsText():
			texts++
		case s.IsGeo():
			cards++
		case s.IsConnector():
			connectors++
		case s.IsFrame():
			frames++
		}

		printKeyValue(s.Kind, fmt.Sprintf("%s (%.0f, %.0f)%s", s.ID, s.X, s.Y, shapeDetail(s)))
	}

	printNewline()
	printShapeStats(texts, cards, connectors, frames)
	if seed.AlreadySeeded(board.Shapes) {
		printDetail("seeded: yes")
	} else {
		printDetail("seeded: no")
	}
	return nil
}

// shapeDetail returns a short kind-specific summary suffix.
func shapeDetail(s scene.Shape) string {
	switch {
	case s.IsText():
		return " " + StyleDim.Render(truncate(s.Text.Body, 40))
	case s.IsGeo():
		return " " + StyleDim.Render(s.Geo.Label)
	case s.IsFrame():
		return " " + StyleDim.Render(s.Frame.Name)
	}
	return ""
}

// truncate shortens a string to max runes, collapsing newlines.
func truncate(s string, max int) string {
	out := []rune(strings.ReplaceAll(s, "\n", " "))
	if len(out) <= max {
		return string(out)
	}
	return string(out[:max]) + "…"
}

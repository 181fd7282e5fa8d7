package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowboardhq/flowboard/pkg/export"
	"github.com/flowboardhq/flowboard/pkg/scene"
)

// Export formats.
const (
	formatSVG = "svg"
	formatDOT = "dot"
)

// exportCommand creates the export command for rendering a board preview.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export [board.json]",
		Short: "Export a board preview as SVG or DOT",
		Long: `Export a board preview as SVG or DOT.

The export command renders the board's cards and connectors as a
left-to-right diagram via Graphviz. Text blocks appear as unconnected
notes. The preview is meant for quick inspection of seeded boards, not
as a faithful canvas rendering.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatSVG && format != formatDOT {
				return fmt.Errorf("unsupported format %q (want svg or dot)", format)
			}
			return c.runExport(cmd.Context(), args[0], output, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatSVG, "output format: svg (default), dot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: derived from input)")

	return cmd
}

// runExport loads the board and renders the preview.
func (c *CLI) runExport(ctx context.Context, input, output, format string) error {
	board, err := scene.ReadBoardFile(input)
	if err != nil {
		return fmt.Errorf("load board %s: %w", input, err)
	}

	dot := export.ToDOT(board.Shapes)

	var data []byte
	switch format {
	case formatDOT:
		data = []byte(dot)
	case formatSVG:
		spinner := newSpinnerWithContext(ctx, "Rendering preview...")
		spinner.Start()
		data, err = export.RenderSVG(dot)
		if err != nil {
			spinner.StopWithError("Render failed")
			return fmt.Errorf("render: %w", err)
		}
		spinner.Stop()
	}

	if output == "" {
		output = defaultOutput(input, format)
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Exported board preview")
	printFile(output)
	return nil
}

// defaultOutput derives the output path from the input file and format.
func defaultOutput(input, format string) string {
	base := strings.TrimSuffix(input, ".json")
	return base + "." + format
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/flowboardhq/flowboard/pkg/scene"
	"github.com/flowboardhq/flowboard/pkg/seed"
)

// seedCommand creates the seed command for populating a board file.
func (c *CLI) seedCommand() *cobra.Command {
	var (
		frameID string
		output  string
		initNew bool
	)

	cmd := &cobra.Command{
		Use:   "seed [board.json]",
		Short: "Seed a board file with the onboarding layout",
		Long: `Seed a board file with the onboarding layout.

The seed command loads a board file, populates it with the welcome text
blocks, the three-card timeline, and the connecting arrows, then writes
the board back. Seeding happens at most once per board: a board that
already carries the seed marker is left untouched.

A reference frame is required. Use --frame to name it, or omit the flag
to use the first frame found in the file. With --init, a missing board
file is created with a fresh frame before seeding.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSeed(cmd.Context(), args[0], frameID, output, initNew)
		},
	}

	cmd.Flags().StringVar(&frameID, "frame", "", "ID of the reference frame (default: first frame in the board)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")
	cmd.Flags().BoolVar(&initNew, "init", false, "create the board file with a fresh frame if it does not exist")

	return cmd
}

// runSeed loads the board, runs one seeding pass, and writes the result.
func (c *CLI) runSeed(ctx context.Context, input, frameID, output string, initNew bool) error {
	board, err := loadOrInitBoard(input, initNew)
	if err != nil {
		return err
	}

	engine, err := scene.NewMemoryEngineWith(board.Shapes)
	if err != nil {
		return fmt.Errorf("load board %s: %w", input, err)
	}

	if frameID == "" {
		frameID = firstFrameID(board.Shapes)
	}

	prog := newProgress(c.Logger)
	seeder := seed.NewSeeder(engine, c.Logger)
	result, err := seeder.Run(ctx, frameID)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	if !result.Seeded {
		printWarning("Board not seeded (%s)", skipMessage(result.Skipped))
		return nil
	}

	board.Shapes, err = engine.Shapes(ctx)
	if err != nil {
		return err
	}

	if output == "" {
		output = input
	}
	if err := scene.WriteBoardFile(board, output); err != nil {
		return fmt.Errorf("write board %s: %w", output, err)
	}

	prog.done(fmt.Sprintf("Seeded %d shapes", result.ShapeCount))
	printSuccess("Seeded onboarding layout (%d shapes)", result.ShapeCount)
	printFile(output)
	printNewline()
	printNextStep("Preview the board", fmt.Sprintf("flowboard export %s -o board.svg", output))
	return nil
}

// loadOrInitBoard reads a board file, optionally creating a fresh board
// with one frame when the file is missing and initNew is set.
func loadOrInitBoard(path string, initNew bool) (scene.Board, error) {
	board, err := scene.ReadBoardFile(path)
	if err == nil {
		return board, nil
	}
	if initNew && errors.Is(err, fs.ErrNotExist) {
		frame := scene.NewFrame(0, 0, scene.FrameProps{Width: 1400, Height: 900, Name: "Frame 1"})
		printInfo("Created %s with a fresh frame %s", path, StyleHighlight.Render(frame.ID))
		return scene.Board{Shapes: []scene.Shape{frame}}, nil
	}
	return scene.Board{}, fmt.Errorf("load board %s: %w", path, err)
}

// firstFrameID returns the ID of the first frame shape, or "".
func firstFrameID(shapes []scene.Shape) string {
	for _, s := range shapes {
		if s.IsFrame() {
			return s.ID
		}
	}
	return ""
}

// skipMessage maps a skip reason to a human explanation.
func skipMessage(reason seed.SkipReason) string {
	switch reason {
	case seed.SkipNoFrame:
		return "no reference frame found"
	case seed.SkipAlreadySeeded:
		return "board already seeded"
	case seed.SkipBadFrame:
		return "frame not found or not a frame"
	default:
		return string(reason)
	}
}

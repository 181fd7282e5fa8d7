package scene

import (
	"path/filepath"
	"testing"
)

func TestBoardFileRoundTrip(t *testing.T) {
	board := Board{
		ID: "board-1",
		Shapes: []Shape{
			NewFrame(0, 0, FrameProps{Width: 1400, Height: 900, Name: "Frame 1"}),
			NewTextBlock(0, -60, TextProps{Body: "Welcome", Size: SizeL, Scale: 2}),
			NewConnector(ConnectorProps{
				Start:    Point{X: 430, Y: 365},
				End:      Point{X: 490, Y: 365},
				Color:    "blue",
				ArrowEnd: true,
			}),
		},
	}
	board.Shapes[1].Meta["seedTag"] = "flowboard-onboarding"

	path := filepath.Join(t.TempDir(), "board.json")
	if err := WriteBoardFile(board, path); err != nil {
		t.Fatalf("WriteBoardFile() error = %v", err)
	}

	got, err := ReadBoardFile(path)
	if err != nil {
		t.Fatalf("ReadBoardFile() error = %v", err)
	}

	if got.ID != board.ID {
		t.Errorf("ID = %q, want %q", got.ID, board.ID)
	}
	if len(got.Shapes) != len(board.Shapes) {
		t.Fatalf("len(Shapes) = %d, want %d", len(got.Shapes), len(board.Shapes))
	}
	if got.Shapes[0].Frame == nil || got.Shapes[0].Frame.Name != "Frame 1" {
		t.Error("frame props lost in round trip")
	}
	if got.Shapes[1].MetaValue("seedTag") != "flowboard-onboarding" {
		t.Error("metadata lost in round trip")
	}
	if got.Shapes[2].Connector == nil || !got.Shapes[2].Connector.ArrowEnd {
		t.Error("connector props lost in round trip")
	}
}

func TestReadBoardFileMissing(t *testing.T) {
	_, err := ReadBoardFile(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("ReadBoardFile() error = nil for missing file")
	}
}

func TestUnmarshalBoardInvalid(t *testing.T) {
	if _, err := UnmarshalBoard([]byte("{not json")); err == nil {
		t.Fatal("UnmarshalBoard() error = nil for invalid JSON")
	}
}

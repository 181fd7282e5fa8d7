package scene

import (
	"encoding/json"
	"fmt"
	"os"
)

// =============================================================================
// Board Serialization API
// =============================================================================

// Board is the canonical serialization format for a board's shape set.
// Used for CLI file workflows, API responses, and storage.
type Board struct {
	ID     string  `json:"id,omitempty" bson:"id,omitempty"`
	Shapes []Shape `json:"shapes" bson:"shapes"`
}

// MarshalBoard serializes a Board to pretty-printed JSON bytes.
func MarshalBoard(b Board) ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}

// UnmarshalBoard deserializes JSON bytes into a Board.
func UnmarshalBoard(data []byte) (Board, error) {
	var b Board
	if err := json.Unmarshal(data, &b); err != nil {
		return Board{}, fmt.Errorf("unmarshal board: %w", err)
	}
	return b, nil
}

// WriteBoardFile writes a Board to a JSON file.
func WriteBoardFile(b Board, path string) error {
	data, err := MarshalBoard(b)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadBoardFile reads a Board from a JSON file.
func ReadBoardFile(path string) (Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Board{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalBoard(data)
}

package model

// PlacementState tracks where a tile is in the move lifecycle.
// The values double as the wire format for serialized boards.
type PlacementState string

const (
	PlacedNone      PlacementState = "no"        // empty cell
	PlacedHand      PlacementState = "hand"      // tile held on the rack, provisionally on the board
	PlacedBoard     PlacementState = "board"     // settled in an earlier turn
	PlacedSubmitted PlacementState = "submitted" // placed as part of the move being submitted
	PlacedLatest    PlacementState = "latest"    // settled in the immediately preceding turn
)

// BlankLetter marks a wildcard tile.
const BlankLetter = "*"

// Tile is a single cell on the board: a letter and its placement state.
// The letter is immutable once the tile settles on the board.
type Tile struct {
	Letter string         `json:"letter"`
	Placed PlacementState `json:"placed"`
}

// EmptyTile is the zero cell value boards are initialized with.
var EmptyTile = Tile{Letter: "", Placed: PlacedNone}

// IsEmpty returns true if the cell holds no tile.
func (t Tile) IsEmpty() bool {
	return t.Placed == PlacedNone || t.Letter == ""
}

// IsSettled returns true if the tile was persisted by an earlier turn.
// Tiles from the immediately preceding turn count as settled; they only
// render differently.
func (t Tile) IsSettled() bool {
	return t.Placed == PlacedBoard || t.Placed == PlacedLatest
}

// IsSubmitted returns true if the tile belongs to the move being submitted.
func (t Tile) IsSubmitted() bool {
	return t.Placed == PlacedSubmitted
}

package rules

import "strings"

// Violation names one failed placement predicate. Violations are collected
// and reported together; the caller decides user-facing text.
type Violation string

const (
	NoTilesPlayed       Violation = "no_tiles_played"
	NotSameDirection    Violation = "not_same_direction"
	NotCoherent         Violation = "not_coherent"
	NotAdjacent         Violation = "not_adjacent"
	BoardMismatch       Violation = "board_mismatch"
	RackMismatch        Violation = "rack_mismatch"
	WordNotInDictionary Violation = "word_not_in_dictionary"
	WordTextMismatch    Violation = "word_text_mismatch"
)

// Message returns a short description of the violation
func (v Violation) Message() string {
	switch v {
	case NoTilesPlayed:
		return "at least one tile must be placed"
	case NotSameDirection:
		return "all tiles must be placed in the same row or column"
	case NotCoherent:
		return "the placed word may not contain gaps"
	case NotAdjacent:
		return "tiles must be placed adjacent to existing tiles"
	case BoardMismatch:
		return "the board does not match the last settled board"
	case RackMismatch:
		return "a placed letter is not available in the hand"
	case WordNotInDictionary:
		return "one or more words are not in the dictionary"
	case WordTextMismatch:
		return "the formed words do not match the declared word"
	}
	return string(v)
}

// InvalidMoveError is the rejection of a proposed move: the complete list of
// failed predicates. It is not a system fault.
type InvalidMoveError struct {
	Violations []Violation
}

func (e *InvalidMoveError) Error() string {
	reasons := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		reasons[i] = string(v)
	}
	return "invalid move: " + strings.Join(reasons, ", ")
}

// Has reports whether the error includes the given violation
func (e *InvalidMoveError) Has(v Violation) bool {
	for _, got := range e.Violations {
		if got == v {
			return true
		}
	}
	return false
}

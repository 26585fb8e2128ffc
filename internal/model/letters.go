package model

// HandSize is the number of tiles drawn from the front of the bag. Every
// player in a turn sees the same hand; the winning move consumes its letters.
const HandSize = 8

// letterCounts is the tile distribution for a fresh bag: the Swedish
// alphabet plus two blanks, 104 tiles in total.
var letterCounts = map[string]int{
	"A": 9, "B": 2, "C": 1, "D": 5, "E": 8, "F": 2, "G": 3,
	"H": 2, "I": 5, "J": 1, "K": 3, "L": 5, "M": 3, "N": 6,
	"O": 5, "P": 2, "Q": 1, "R": 8, "S": 8, "T": 8, "U": 3,
	"V": 2, "W": 1, "X": 1, "Y": 1, "Z": 1,
	"Å": 2, "Ä": 2, "Ö": 2,
	BlankLetter: 2,
}

// LetterPoints is the fixed per-letter point table. Blanks score zero.
var LetterPoints = map[string]int{
	"A": 1, "B": 4, "C": 8, "D": 2, "E": 1, "F": 4, "G": 2,
	"H": 3, "I": 1, "J": 7, "K": 3, "L": 2, "M": 3, "N": 1,
	"O": 2, "P": 4, "Q": 10, "R": 1, "S": 1, "T": 1, "U": 4,
	"V": 3, "W": 10, "X": 8, "Y": 7, "Z": 10,
	"Å": 4, "Ä": 4, "Ö": 4,
	BlankLetter: 0,
}

// letterOrder fixes the order tiles enter an unshuffled bag, so bag
// construction is deterministic before the one-time shuffle at game start.
var letterOrder = []string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"Å", "Ä", "Ö", BlankLetter,
}

// TotalTiles is the number of tiles in a fresh bag.
const TotalTiles = 104

// FreshBag returns the full unshuffled letter bag
func FreshBag() []string {
	bag := make([]string, 0, TotalTiles)
	for _, letter := range letterOrder {
		for i := 0; i < letterCounts[letter]; i++ {
			bag = append(bag, letter)
		}
	}
	return bag
}

// Hand returns the letters available to a player: the first HandSize letters
// of the bag, minus one occurrence of each letter in placed. Draw order is
// deterministic; the bag was shuffled once at game start.
func Hand(bag []string, placed []string) []string {
	hand := make([]string, 0, HandSize)
	for i := 0; i < len(bag) && i < HandSize; i++ {
		hand = append(hand, bag[i])
	}
	for _, letter := range placed {
		for i, held := range hand {
			if held == letter {
				hand = append(hand[:i], hand[i+1:]...)
				break
			}
		}
	}
	return hand
}

// RemoveLetters returns the bag with one occurrence of each consumed letter
// removed. Letters not present in the bag are ignored.
func RemoveLetters(bag []string, consumed []string) []string {
	remaining := make([]string, len(bag))
	copy(remaining, bag)
	for _, letter := range consumed {
		for i, held := range remaining {
			if held == letter {
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
	}
	return remaining
}

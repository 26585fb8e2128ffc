package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Game:
		o.printGame(v)
	case GameDetail:
		o.printGameDetail(v)
	case Move:
		o.printMove(v)
	case HandResult:
		o.printHand(v)
	case ResolveResult:
		o.printResolveResult(v)
	case RepairResult:
		o.printRepairResult(v)
	case DictionaryStatus:
		o.printDictionaryStatus(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Tile is one board cell on the wire
type Tile struct {
	Letter string `json:"letter"`
	Placed string `json:"placed"`
}

// Board response type
type Board [][]Tile

// Participant response type
type Participant struct {
	UserID   string `json:"user_id"`
	Status   string `json:"status"`
	Points   int    `json:"points"`
	Accepted bool   `json:"accepted"`
}

// Game response type
type Game struct {
	ID               string        `json:"id"`
	Board            Board         `json:"board"`
	CurrentTurn      int           `json:"current_turn"`
	Finished         bool          `json:"finished"`
	LatestWord       string        `json:"latest_word,omitempty"`
	RemainingLetters int           `json:"remaining_letters"`
	Participants     []Participant `json:"participants"`
	InvitationCount  int           `json:"invitation_count"`
	StartedBy        string        `json:"started_by"`
}

// Move response type
type Move struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	TurnNumber   int    `json:"turn_number"`
	PlayedWord   string `json:"played_word"`
	PlayedBoard  Board  `json:"played_board,omitempty"`
	PlayedPoints int    `json:"played_points"`
	Won          bool   `json:"won"`
	Pass         bool   `json:"pass"`
}

// Turn response type
type Turn struct {
	TurnNumber int    `json:"turn_number"`
	Moves      []Move `json:"moves"`
}

// GameDetail response type
type GameDetail struct {
	Game
	Turns []Turn `json:"turns"`
}

// HandResult response type
type HandResult struct {
	Letters []string `json:"letters"`
}

// ResolveResult response type
type ResolveResult struct {
	Resolved bool `json:"resolved"`
}

// RepairResult response type
type RepairResult struct {
	RepairedGames []string `json:"repaired_games"`
}

// DictionaryStatus response type
type DictionaryStatus struct {
	Loaded    bool `json:"loaded"`
	WordCount int  `json:"word_count"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("Turn: %d\n", g.CurrentTurn)
	if g.Finished {
		fmt.Println("Finished: yes")
	}
	if g.LatestWord != "" {
		fmt.Printf("Latest word: %s\n", g.LatestWord)
	}
	fmt.Printf("Letters left in bag: %d\n", g.RemainingLetters)
	fmt.Printf("Players (%d):\n", len(g.Participants))
	for _, p := range g.Participants {
		fmt.Printf("  - %s: %d points [%s]\n", p.UserID, p.Points, p.Status)
	}
	if g.InvitationCount > 0 {
		fmt.Printf("Pending invitations: %d\n", g.InvitationCount)
	}
	fmt.Println()
	o.printBoard(g.Board)
}

func (o *Output) printGameDetail(g GameDetail) {
	o.printGame(g.Game)
	if len(g.Turns) == 0 {
		return
	}
	fmt.Println("\nTurns:")
	for _, t := range g.Turns {
		fmt.Printf("  Turn %d:\n", t.TurnNumber)
		for _, m := range t.Moves {
			marker := ""
			if m.Won {
				marker = " [won]"
			}
			if m.Pass {
				fmt.Printf("    %s passed%s\n", m.UserID, marker)
			} else {
				fmt.Printf("    %s played %q for %d points%s\n", m.UserID, m.PlayedWord, m.PlayedPoints, marker)
			}
		}
	}
}

func (o *Output) printMove(m Move) {
	if m.Pass {
		fmt.Printf("Pass recorded for turn %d\n", m.TurnNumber)
		return
	}
	fmt.Printf("Move recorded: %q for %d points (turn %d)\n", m.PlayedWord, m.PlayedPoints, m.TurnNumber)
}

func (o *Output) printHand(h HandResult) {
	fmt.Printf("Hand: %s\n", strings.Join(h.Letters, " "))
}

func (o *Output) printResolveResult(r ResolveResult) {
	if r.Resolved {
		fmt.Println("Turn resolved")
	} else {
		fmt.Println("Nothing to resolve")
	}
}

func (o *Output) printRepairResult(r RepairResult) {
	if len(r.RepairedGames) == 0 {
		fmt.Println("No games needed repair")
		return
	}
	fmt.Printf("Repaired %d game(s):\n", len(r.RepairedGames))
	for _, id := range r.RepairedGames {
		fmt.Printf("  - %s\n", id)
	}
}

func (o *Output) printDictionaryStatus(d DictionaryStatus) {
	loadedStr := "no"
	if d.Loaded {
		loadedStr = "yes"
	}
	fmt.Printf("Loaded: %s\n", loadedStr)
	fmt.Printf("Words: %d\n", d.WordCount)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

func (o *Output) printBoard(b Board) {
	if len(b) == 0 {
		return
	}

	size := len(b)

	fmt.Print("    ")
	for col := 0; col < size; col++ {
		fmt.Printf("%2d ", col)
	}
	fmt.Println()

	fmt.Print("   +")
	for col := 0; col < size; col++ {
		fmt.Print("---")
	}
	fmt.Println("+")

	for row := 0; row < size; row++ {
		fmt.Printf("%2d |", row)
		for col := 0; col < size; col++ {
			cell := b[row][col]
			switch {
			case cell.Letter == "":
				fmt.Print(" . ")
			case cell.Placed == "latest":
				// Bracket the most recently settled word
				fmt.Printf("[%s]", cell.Letter)
			default:
				fmt.Printf(" %s ", cell.Letter)
			}
		}
		fmt.Println("|")
	}

	fmt.Print("   +")
	for col := 0; col < size; col++ {
		fmt.Print("---")
	}
	fmt.Println("+")
}

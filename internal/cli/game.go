package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGameSubmitCmd())
	cmd.AddCommand(newGamePassCmd())
	cmd.AddCommand(newGameHandCmd())
	cmd.AddCommand(newGameResolveCmd())

	return cmd
}

func newGameCreateCmd() *cobra.Command {
	var invitations int

	cmd := &cobra.Command{
		Use:   "create <starter> [player...]",
		Short: "Create a new game",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"starter_id":  args[0],
				"player_ids":  args[1:],
				"invitations": invitations,
			}
			var result Game

			if err := client.Post("/api/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&invitations, "invitations", 0, "Number of pending email invitations to reserve turns for")

	return cmd
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <game_id>",
		Short: "Show a game with its turn history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameDetail

			if err := client.Get(fmt.Sprintf("/api/games/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameSubmitCmd() *cobra.Command {
	var boardFile string

	cmd := &cobra.Command{
		Use:   "submit <game_id> <user_id> <turn> <word>",
		Short: "Submit a move",
		Long: `Submit a move for the given turn. The full proposed board, including the
newly placed tiles marked as "submitted", is read as JSON from --board.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			turn, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid turn: %w", err)
			}

			data, err := os.ReadFile(boardFile)
			if err != nil {
				return fmt.Errorf("failed to read board file: %w", err)
			}
			var board Board
			if err := json.Unmarshal(data, &board); err != nil {
				return fmt.Errorf("failed to parse board file: %w", err)
			}

			req := map[string]any{
				"user_id":     args[1],
				"turn_number": turn,
				"played_word": args[3],
				"board":       board,
			}
			var result Move

			if err := client.Post(fmt.Sprintf("/api/games/%s/moves", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&boardFile, "board", "", "Path to the proposed board JSON (required)")
	_ = cmd.MarkFlagRequired("board")

	return cmd
}

func newGamePassCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pass <game_id> <user_id> <turn>",
		Short: "Pass the current turn",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			turn, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid turn: %w", err)
			}

			// A pass submits the current settled board untouched
			var game Game
			if err := client.Get(fmt.Sprintf("/api/games/%s", args[0]), &game); err != nil {
				return err
			}

			req := map[string]any{
				"user_id":     args[1],
				"turn_number": turn,
				"played_word": "",
				"board":       game.Board,
			}
			var result Move

			if err := client.Post(fmt.Sprintf("/api/games/%s/moves", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameHandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hand <game_id> <user_id>",
		Short: "Show a player's current hand",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HandResult

			if err := client.Get(fmt.Sprintf("/api/games/%s/players/%s/hand", args[0], args[1]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <game_id>",
		Short: "Resolve the current turn if all moves are in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ResolveResult

			if err := client.Post(fmt.Sprintf("/api/games/%s/resolve", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

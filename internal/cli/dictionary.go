package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newDictionaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dictionary",
		Short: "Dictionary administration",
	}

	cmd.AddCommand(newDictionaryStatusCmd())
	cmd.AddCommand(newDictionaryLoadCmd())

	return cmd
}

func newDictionaryStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show dictionary status",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result DictionaryStatus

			if err := client.Get("/api/dictionary", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newDictionaryLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>",
		Short: "Load a word list into the server dictionary",
		Long: `Load a word list file into the server dictionary. Each line holds a word,
optionally followed by its grammatical form; inflected ("böjning") entries
are skipped since only base forms are playable.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			var words []string
			scanner := bufio.NewScanner(file)
			for scanner.Scan() {
				fields := strings.Fields(scanner.Text())
				if len(fields) == 0 {
					continue
				}
				if len(fields) > 1 && strings.EqualFold(fields[1], "böjning") {
					continue
				}
				words = append(words, fields[0])
			}
			if err := scanner.Err(); err != nil {
				return err
			}
			if len(words) == 0 {
				return fmt.Errorf("no words found in %s", args[0])
			}

			req := map[string]any{"words": words}
			var result DictionaryStatus

			if err := client.Post("/api/dictionary/words", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

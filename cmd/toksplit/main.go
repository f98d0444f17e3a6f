// Command toksplit is a CLI front end for the tokenizer: it segments an
// input file into sentences and prints each sentence's alternatives matrix
// as a table.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	tokenize "github.com/lgtok/tokenize"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "toksplit",
		Short: "Segment text into sentences and print their alternatives matrices",
	}
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var (
		affixPath  string
		dictPath   string
		spellGuess bool
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Tokenize every sentence in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokenizeFile(cmd, args[0], affixPath, dictPath, spellGuess, noColor)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&affixPath, "affix", "testdata/affix.en.txt", "path to the affix table file")
	flags.StringVar(&dictPath, "dict", "testdata/words.en.txt", "path to the word list file")
	flags.BoolVar(&spellGuess, "spell-guess", false, "enable spellcheck-fallback alternatives")
	flags.BoolVar(&noColor, "no-color", false, "disable table styling")
	return cmd
}

func runTokenizeFile(cmd *cobra.Command, path, affixPath, dictPath string, spellGuess, noColor bool) error {
	at, err := tokenize.LoadAffixTable(affixPath)
	if err != nil {
		return fmt.Errorf("load affix table: %w", err)
	}
	dict, err := tokenize.LoadDictionary(dictPath, at)
	if err != nil {
		return fmt.Errorf("load dictionary: %w", err)
	}
	dict.SetWalls(true, true)

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	opts := &tokenize.Options{UseSpellGuess: spellGuess}
	var spell tokenize.Spellchecker
	if spellGuess {
		spell = tokenize.NewEditDistanceSpellchecker(dict.Words(), 0)
	}

	out := cmd.OutOrStdout()
	for i, s := range SplitSentences(string(raw)) {
		sent, _, err := tokenize.TokenizeSentence(s, dict, spell, opts)
		if err != nil {
			return fmt.Errorf("sentence %d: %w", i+1, err)
		}
		fmt.Fprintf(out, "sentence %d: %s\n", i+1, s)
		fmt.Fprintln(out, RenderMatrix(sent, noColor))
		fmt.Fprintln(out)
	}
	return nil
}

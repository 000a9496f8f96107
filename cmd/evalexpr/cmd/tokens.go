package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ISibboI/evalexpr/internal/token"
)

var showPos bool

var tokensCmd = &cobra.Command{
	Use:   "tokens <expr>",
	Short: "Tokenize an expression and print the resulting tokens",
	Long: `Tokenize (lex) an expression and print the resulting token stream,
one token per line. Useful for debugging the lexer.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
}

func runTokens(_ *cobra.Command, args []string) error {
	toks, err := token.Tokenize(args[0])
	if err != nil {
		exitWithError("tokenize failed: %v", err)
	}

	for _, t := range toks {
		if showPos {
			fmt.Printf("%-14s %s\n", t.Type, t.Pos)
		} else {
			fmt.Println(t.Type)
		}
	}
	return nil
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ISibboI/evalexpr/internal/ast"
	"github.com/ISibboI/evalexpr/internal/parser"
	"github.com/ISibboI/evalexpr/internal/token"
)

var parseCmd = &cobra.Command{
	Use:   "parse <expr>",
	Short: "Compile an expression and print its operator tree",
	Long: `Tokenize and parse an expression, then print the resulting operator
tree as an indented outline. Useful for debugging the parser.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	toks, err := token.Tokenize(args[0])
	if err != nil {
		exitWithError("tokenize failed: %v", err)
	}
	root, err := parser.Parse(toks)
	if err != nil {
		exitWithError("parse failed: %v", err)
	}
	printNode(root, 0)
	return nil
}

func printNode(n ast.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.Op {
	case ast.OpConst:
		fmt.Printf("%s%s %s\n", indent, n.Op, n.Val)
	case ast.OpVariableIdentifier:
		fmt.Printf("%s%s %q\n", indent, n.Op, n.Name)
	case ast.OpCall:
		fmt.Printf("%s%s %q\n", indent, n.Op, n.Name)
	default:
		fmt.Printf("%s%s\n", indent, n.Op)
	}
	for _, c := range n.Children {
		printNode(c, depth+1)
	}
}

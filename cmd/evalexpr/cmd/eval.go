package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	evalexpr "github.com/ISibboI/evalexpr"
)

var varsFile string

var evalCmd = &cobra.Command{
	Use:   "eval <expr>",
	Short: "Compile and evaluate an expression",
	Long: `Compile and evaluate an expression against a Context, optionally
seeded from a JSON or YAML file of variable bindings.

Examples:
  evalexpr eval "1 + 2 * 3"
  evalexpr eval --vars vars.json "x + y"
  evalexpr eval --vars vars.yaml "greeting + \", \" + name"`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringVar(&varsFile, "vars", "", "JSON or YAML file to seed the evaluation Context from")
}

func runEval(_ *cobra.Command, args []string) error {
	source := args[0]

	ctx, err := evalexpr.NewContextWithBuiltins()
	if err != nil {
		return fmt.Errorf("registering builtins: %w", err)
	}

	if varsFile != "" {
		data, err := os.ReadFile(varsFile)
		if err != nil {
			return fmt.Errorf("reading %s: %w", varsFile, err)
		}
		switch strings.ToLower(filepath.Ext(varsFile)) {
		case ".json":
			err = evalexpr.ContextFromJSON(data, ctx)
		case ".yaml", ".yml":
			err = evalexpr.ContextFromYAML(data, ctx)
		default:
			err = fmt.Errorf("unrecognized vars file extension %q (want .json, .yaml or .yml)", filepath.Ext(varsFile))
		}
		if err != nil {
			return fmt.Errorf("loading vars: %w", err)
		}
	}

	node, err := evalexpr.Compile(source)
	if err != nil {
		exitWithError("compile failed: %v", err)
	}

	result, err := node.Eval(ctx)
	if err != nil {
		exitWithError("evaluation failed: %v", err)
	}

	fmt.Println(result.String())
	return nil
}

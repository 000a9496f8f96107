package main

import (
	"fmt"
	"os"

	"github.com/ISibboI/evalexpr/cmd/evalexpr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hepkit/decfile/internal/presentation/tui"
)

var modesCmd = &cobra.Command{
	Use:   "modes <file.dec> <particle>",
	Short: "Pretty print the decay modes of a particle",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		reg, err := parseArg(cmd, args)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		block, ok := reg.Block(args[1])
		if !ok {
			fmt.Printf("No decay block for %q in %s\n", args[1], args[0])
			os.Exit(1)
		}

		markdown := tui.ModesMarkdown(block)
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Print(markdown)
			return
		}
		out, err := tui.NewRenderer()(markdown)
		if err != nil {
			out = markdown
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(modesCmd)
}

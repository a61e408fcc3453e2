package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hepkit/decfile/internal/presentation/graph"
	"github.com/hepkit/decfile/pkg/registry"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <file.dec> <particle>",
	Short: "Export a decay chain as a Mermaid diagram",
	Long:  `Resolves the decay chain of the given particle and outputs a Mermaid diagram (graph TD).`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		reg, err := parseArg(cmd, args)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		var opts []registry.ChainOption
		if stops, _ := cmd.Flags().GetStringSlice("stop"); len(stops) > 0 {
			opts = append(opts, registry.StopAt(stops...))
		}
		node, err := reg.ResolveChain(args[1], opts...)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(node))
	},
}

func init() {
	graphCmd.Flags().StringSlice("stop", nil, "Treat these particles as stable")
	rootCmd.AddCommand(graphCmd)
}

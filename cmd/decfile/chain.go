package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hepkit/decfile/pkg/decay"
	"github.com/hepkit/decfile/pkg/registry"
)

var chainCmd = &cobra.Command{
	Use:   "chain <file.dec> <particle>",
	Short: "Resolve and print the decay chain of a particle",
	Long: `Expands the decay tree rooted at the given particle, recursing into
every daughter with a registered decay block, and prints it as JSON or
YAML. With --final-states it prints the enumerated final states with
their cumulative branching fractions instead.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		reg, err := parseArg(cmd, args)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		var opts []registry.ChainOption
		if depth, _ := cmd.Flags().GetInt("depth"); depth > 0 {
			opts = append(opts, registry.MaxDepth(depth))
		}
		if stops, _ := cmd.Flags().GetStringSlice("stop"); len(stops) > 0 {
			opts = append(opts, registry.StopAt(stops...))
		}

		var payload any
		if finals, _ := cmd.Flags().GetBool("final-states"); finals {
			seq, err := reg.FinalStates(args[1], opts...)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			var states []decay.FinalState
			for fs, err := range seq {
				if err != nil {
					fmt.Printf("Error: %v\n", err)
					os.Exit(1)
				}
				states = append(states, fs)
			}
			payload = states
		} else {
			node, err := reg.ResolveChain(args[1], opts...)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			payload = node
		}

		format, _ := cmd.Flags().GetString("format")
		if err := writeFormatted(payload, format); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func writeFormatted(payload any, format string) error {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(payload)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}

func init() {
	chainCmd.Flags().Int("depth", 0, "Maximum traversal depth (default from config)")
	chainCmd.Flags().StringSlice("stop", nil, "Treat these particles as stable")
	chainCmd.Flags().Bool("final-states", false, "Enumerate final states instead of the tree")
	chainCmd.Flags().String("format", "json", "Output format: json or yaml")
	rootCmd.AddCommand(chainCmd)
}

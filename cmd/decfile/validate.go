package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hepkit/decfile/internal/presentation/tui"
	"github.com/hepkit/decfile/pkg/decay"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.dec>",
	Short: "Compile a decay file and report validation findings",
	Long: `Parses the decay file, materializes charge-conjugate blocks and prints
the validation findings. Fatal grammar or symbol errors abort with a
source position; findings never fail the parse unless --strict is set.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reg, err := parseArg(cmd, args)
		if err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}

		findings := reg.Findings()
		render := tui.NewRenderer()
		out, rerr := render(tui.FindingsMarkdown(findings))
		if rerr != nil {
			out = tui.FindingsMarkdown(findings)
		}
		fmt.Print(out)

		strict, _ := cmd.Flags().GetBool("strict")
		if strict {
			for _, f := range findings {
				if f.Severity == decay.SeverityWarning {
					os.Exit(1)
				}
			}
		}
		fmt.Printf("Parsed %d decay blocks.\n", reg.NumDecays())
	},
}

func init() {
	validateCmd.Flags().Bool("strict", false, "Exit non-zero on warning findings")
	rootCmd.AddCommand(validateCmd)
}

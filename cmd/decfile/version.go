package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hepkit/decfile"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of decfile",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("decfile version %s\n", strings.TrimSpace(decfile.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

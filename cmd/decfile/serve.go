package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	decserver "github.com/hepkit/decfile/internal/adapters/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve <file.dec>",
	Short: "Serve the parsed registry over HTTP",
	Long: `Compiles the decay file once and serves read-only queries against the
frozen registry: particle lists, decay chains, final states, findings
and Prometheus metrics.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)

		reg, err := parseArg(cmd, args)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		addr, _ := cmd.Flags().GetString("addr")
		handler := decserver.NewHandler(reg, logger, prometheus.NewRegistry())

		logger.Info("serving decay registry", "addr", addr, "file", args[0], "decays", reg.NumDecays())
		if err := http.ListenAndServe(addr, handler); err != nil {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	rootCmd.AddCommand(serveCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "trafficd",
		Short: "Roadway segment occupancy tracker and speed-advisory controller",
		Long: `trafficd tracks which vehicles currently occupy a monitored road
segment, computes aggregate traffic statistics on a fixed cadence and pushes
a speed advisory to the roadside sign. Telemetry arrives over gRPC; cycle
aggregates are persisted to the configured sink.`,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML configuration file")
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

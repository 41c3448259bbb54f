package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	arenaSize  uint32
	maxAllocs  uint32
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "offsetallocctl",
	Short: "Drive an in-process offset allocator for inspection and benchmarking",
	Long: `offsetallocctl is a debugging and demonstration harness for the
offsetalloc package. It keeps one allocator alive for the life of the
process and exposes alloc/free/report/histogram/dump/bench as subcommands.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file describing {size, maxAllocs}")
	rootCmd.PersistentFlags().Uint32Var(&arenaSize, "size", 256<<20, "arena size in bytes (ignored if --config is set)")
	rootCmd.PersistentFlags().Uint32Var(&maxAllocs, "max-allocs", 128<<10, "node pool capacity (ignored if --config is set)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resolveConfig() (arenaConfig, error) {
	if configPath != "" {
		return loadArenaConfig(configPath)
	}
	return arenaConfig{Size: arenaSize, MaxAllocs: maxAllocs}, nil
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var histogramCmd = &cobra.Command{
	Use:   "histogram",
	Short: "Print a per-bin free block histogram (StorageReportFull)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		s, err := newSession(cfg)
		if err != nil {
			return err
		}

		full := s.alloc.StorageReportFull()
		for i, bin := range full.FreeRegions {
			if bin.Count == 0 {
				continue
			}
			fmt.Printf("bin %3d (size %8d): %s (%d)\n", i, bin.Size, strings.Repeat("#", int(bin.Count)), bin.Count)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(histogramCmd)
}

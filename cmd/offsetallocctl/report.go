package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a coarse storage report (free storage and largest free region)",
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

		r := s.alloc.StorageReport()
		fmt.Printf("totalFreeSpace:        %d\n", r.TotalFreeSpace)
		fmt.Printf("largestFreeRegion:     %d\n", r.LargestFreeRegion)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

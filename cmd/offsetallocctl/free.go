package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var freeCmd = &cobra.Command{
	Use:   "free <offset>",
	Short: "Free the allocation at the given offset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		offset, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid offset %q: %w", args[0], err)
		}

		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		s, err := newSession(cfg)
		if err != nil {
			return err
		}

		if err := s.free(uint32(offset)); err != nil {
			return err
		}
		printVerbose("freed offset %d\n", offset)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(freeCmd)
}

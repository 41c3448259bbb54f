package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var allocCmd = &cobra.Command{
	Use:   "alloc <size>",
	Short: "Allocate a block of the given byte size and print its offset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid size %q: %w", args[0], err)
		}

		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		s, err := newSession(cfg)
		if err != nil {
			return err
		}

		alloc, err := s.allocate(uint32(size))
		if err != nil {
			return err
		}
		printVerbose("allocated %d bytes at offset %d (metadata node %d)\n", size, alloc.Offset, alloc.Metadata)
		fmt.Println(alloc.Offset)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(allocCmd)
}

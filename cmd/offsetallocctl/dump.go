package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump the full internal allocator state for debugging",
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
		spew.Dump(s.alloc)
		if s.history.Len() > 0 {
			spew.Dump(s.history.Snapshot())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

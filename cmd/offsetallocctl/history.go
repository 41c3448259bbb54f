package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the most recent allocate/free operations",
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

		for _, e := range s.history.Snapshot() {
			status := "ok"
			if e.Failed {
				status = "FAILED"
			}
			fmt.Printf("%6d  %-8s offset=%-10d size=%-8d node=%-6d %s\n",
				e.Seq, e.Op, e.Offset, e.Size, e.NodeIdx, status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newMissesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "misses",
		Short: "Manage the log of unmatched defense queries",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Print every logged miss, oldest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				misses, err := a.openMissLog()
				if err != nil {
					return err
				}
				defer misses.Close()

				content, err := misses.List(cmd.Context())
				if err != nil {
					return fmt.Errorf("list misses: %w", err)
				}

				if strings.TrimSpace(content) == "" {
					fmt.Fprintln(cmd.OutOrStdout(), "No unmatched teams logged yet.")
					return nil
				}

				fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(content, "\n"))

				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every logged miss",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				misses, err := a.openMissLog()
				if err != nil {
					return err
				}
				defer misses.Close()

				if err := misses.Clear(cmd.Context()); err != nil {
					return fmt.Errorf("clear misses: %w", err)
				}

				fmt.Fprintln(cmd.OutOrStdout(), "All unmatched defense entries have been cleared.")

				return nil
			},
		},
	)

	return cmd
}

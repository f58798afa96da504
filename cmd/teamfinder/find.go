package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"teamfinder/internal/match"
	"teamfinder/internal/misslog"
	"teamfinder/internal/suggest"
)

func newFindCmd(a *app) *cobra.Command {
	var record bool

	cmd := &cobra.Command{
		Use:   "find UNIT1 UNIT2 UNIT3",
		Short: "Look up the attack team for a defense",
		Long: `Looks up the first set whose defense matches the three names in any order,
allowing small typos. With --record a miss is appended to the miss log the
way the bot does.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := a.loadBook()
			if err != nil {
				return err
			}

			q := match.Query{args[0], args[1], args[2]}
			out := cmd.OutOrStdout()

			set, ok := match.NewMatcher(a.cfg.MatcherConfig()).FindMatch(q, book.Sets)
			if ok {
				fmt.Fprintf(out, "Defense: %s\n", q)
				fmt.Fprintf(out, "Matched: %s\n", set)
				fmt.Fprintf(out, "Attack:  %s\n", set.AttackLine())
				fmt.Fprintf(out, "Notes:   %s\n", set.Notes)

				return nil
			}

			fmt.Fprintf(out, "No matching defense set found for %s\n", q)

			if !record {
				return nil
			}

			misses, err := a.openMissLog()
			if err != nil {
				return err
			}
			defer misses.Close()

			if err := misses.Record(cmd.Context(), misslog.Entry(q)); err != nil {
				return fmt.Errorf("record miss: %w", err)
			}

			fmt.Fprintln(out, "Logged the query.")

			return nil
		},
	}

	cmd.Flags().BoolVar(&record, "record", false, "append a miss to the miss log")

	return cmd
}

func newUnitsCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "units [partial]",
		Short: "List defense unit names, as autocomplete would",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := a.loadBook()
			if err != nil {
				return err
			}

			partial := ""
			if len(args) == 1 {
				partial = args[0]
			}

			for _, name := range suggest.NewIndex(book.DefenseNames()).Lookup(partial, limit) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", suggest.DefaultLimit, "maximum names to list")

	return cmd
}

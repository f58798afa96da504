package main

import (
	"fmt"
	"slices"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Report how the counter sheet was ingested",
		Long: `Loads the configured counter sheet and prints ingestion statistics and
diagnostics. --dump also prints every team set in full.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := a.loadBook()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			s := book.Stats

			fmt.Fprintf(out, "Source:       %s\n", a.cfg.Source.Path)
			fmt.Fprintf(out, "Rows:         %d (%d empty)\n", s.Rows, s.EmptyRows)
			fmt.Fprintf(out, "Units:        %d (%d placeholders, %d overflow)\n", s.Units, s.Placeholders, s.Overflow)
			fmt.Fprintf(out, "Sets:         %d\n", s.Sets)
			fmt.Fprintf(out, "Discarded:    %d\n", s.Discarded)
			fmt.Fprintf(out, "Defense names: %d\n", len(book.DefenseNames()))

			diags := book.Diagnostics

			all := slices.Concat(diags.Errors, diags.Warnings, diags.Infos)
			if len(all) > 0 {
				fmt.Fprintln(out, "Diagnostics:")

				for _, d := range all {
					fmt.Fprintf(out, "  %s\n", d)
				}
			}

			if dump {
				cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
				cfg.Fdump(out, book.Sets)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "print every team set")

	return cmd
}

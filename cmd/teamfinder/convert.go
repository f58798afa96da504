package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"teamfinder/internal/roster"
	"teamfinder/internal/source"
)

// Default output files of convert.
const (
	defaultCleanedPath = "output_cleaned.csv"
	defaultUnitsPath   = "units.txt"
)

func newConvertCmd(a *app) *cobra.Command {
	var output, units string

	cmd := &cobra.Command{
		Use:   "convert [input]",
		Short: "Convert the wide counter sheet into the cleaned long table",
		Long: `Reads the positional counter sheet (CSV, TSV or XLSX) and writes one
Team,Slot,Unit,Notes row per filled unit cell. The unit list holds every
distinct unit name of the complete sets, one per line.

The input defaults to the configured source path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := a.cfg.Source.Path
			if len(args) == 1 {
				input = args[0]
			}

			rows, err := source.Load(input, a.cfg.Source.Sheet)
			if err != nil {
				return err
			}

			entries := roster.Explode(rows, a.cfg.Layout)

			if err := writeFile(output, func(f *os.File) error { return source.WriteCleaned(f, entries) }); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Cleaned CSV written to %s (%d entries)\n", output, len(entries))

			if units == "" {
				return nil
			}

			names := roster.Normalize(rows, a.cfg.Layout).UnitNames()

			if err := writeFile(units, func(f *os.File) error { return source.WriteUnits(f, names) }); err != nil {
				return err
			}

			fmt.Fprintf(out, "Unit list written to %s (%d names)\n", units, len(names))

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", defaultCleanedPath, "cleaned CSV to write")
	cmd.Flags().StringVar(&units, "units", defaultUnitsPath, "unit list to write; empty skips it")

	return cmd
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukfiscal/taxdrag/internal/output"
)

func newProjectCommand(opts *globalOptions) *cobra.Command {
	m := &modelOptions{}
	var format, outputPath string

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project revenue for every uprating scenario over the horizon",
		Example: `  taxdrag project
  taxdrag project --cpi 0.02 --wage 0.035 --years 10 --format csv --output drag.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := output.LookupFormatter(format)
			if err != nil {
				return err
			}
			cfg, err := loadConfiguration(cmd, opts, m)
			if err != nil {
				return err
			}
			engine, flush, err := newEngine(cfg, opts)
			if err != nil {
				return err
			}
			defer flush()

			table, err := engine.Run(cmd.Context())
			if err != nil {
				return err
			}

			if outputPath == "" || outputPath == "-" {
				return output.WriteTo(cmd.OutOrStdout(), formatter, table)
			}
			f, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outputPath, err)
			}
			if err := output.WriteTo(f, formatter, table); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s report to %s\n", formatter.Name(), outputPath)
			return nil
		},
	}
	addModelFlags(cmd, m)
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, console-lite, csv, detailed-csv, json, yaml, html)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write to file instead of stdout")
	return cmd
}

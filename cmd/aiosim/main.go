package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mhansen003/all-in-one-loan-simulator-sub001/internal/config"
	"github.com/mhansen003/all-in-one-loan-simulator-sub001/internal/output"
	"github.com/mhansen003/all-in-one-loan-simulator-sub001/internal/simulation"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "aiosim",
		Short: "Compare an All-In-One loan against a traditional fixed-rate mortgage",
		Long: `aiosim runs a day-by-day simulation of an All-In-One (offset) loan funded
by the borrower's cash flow and compares its projected interest cost and
payoff time against a traditional fixed-rate mortgage on the same balance.`,
		Version:      "0.1.0",
		SilenceUsage: true,
	}
	root.AddCommand(newCompareCommand(), newExampleConfigCommand(), newFormatsCommand())
	return root
}

func newCompareCommand() *cobra.Command {
	var (
		configPath string
		format     string
		save       bool
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run the comparison described by a configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(configPath)
			if err != nil {
				return err
			}

			engine := simulation.NewSimulationEngine()
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			engine.SetLogger(newConsoleLogger(level))

			result, err := engine.RunComparison(cmd.Context(), cfg.ToSimulationInput())
			if err != nil {
				return err
			}
			if !cfg.Simulation.IncludeSchedule {
				result.Traditional.Schedule = nil
			}

			if save {
				if format == "all" {
					if err := output.GenerateReport(result, format); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), "Reports written: console text, summary CSV, and daily ledger CSV")
					return nil
				}
				f := output.GetFormatterByName(format)
				if f == nil {
					return output.GenerateReport(result, format)
				}
				filename, err := output.WriteFormatted(f, result, output.FileExtension(format))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
				return nil
			}

			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("unknown format %q; run \"aiosim formats\" for the list", format)
			}
			data, err := f.Format(result)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "configuration file (YAML)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "report format (see \"aiosim formats\"); \"all\" with --save writes the standard set")
	cmd.Flags().BoolVarP(&save, "save", "s", false, "write the report to a timestamped file instead of stdout")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log the simulation's day-by-day decisions")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func newExampleConfigCommand() *cobra.Command {
	var outputPath string
	cmd := &cobra.Command{
		Use:   "example-config",
		Short: "Write a ready-to-edit example configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parser := config.NewInputParser()
			if err := output.SaveConfiguration(parser.CreateExampleConfiguration(), outputPath); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", outputPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "example_config.yaml", "destination file")
	return cmd
}

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the available report formats and their aliases",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Formats:")
			for _, name := range output.AvailableFormatterNames() {
				fmt.Fprintf(out, "  %s\n", name)
			}
			fmt.Fprintln(out, "Aliases:")
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Fprintf(out, "  %s -> %s\n", alias, output.NormalizeFormatName(alias))
			}
		},
	}
}

// consoleLogger adapts a zerolog console writer to the engine's Logger.
type consoleLogger struct {
	l zerolog.Logger
}

func newConsoleLogger(level zerolog.Level) consoleLogger {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return consoleLogger{l: zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

func (c consoleLogger) Debugf(format string, args ...interface{}) { c.l.Debug().Msgf(format, args...) }
func (c consoleLogger) Infof(format string, args ...interface{})  { c.l.Info().Msgf(format, args...) }
func (c consoleLogger) Warnf(format string, args ...interface{})  { c.l.Warn().Msgf(format, args...) }
func (c consoleLogger) Errorf(format string, args ...interface{}) { c.l.Error().Msgf(format, args...) }

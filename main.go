/*
* Command line entry point
* Copyright (C) 2025  Artem Stefankiv
*
* This program is free software: you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation, either version 3 of the License, or
* (at your option) any later version.
*
* This program is distributed in the hope that it will be useful,
* but WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
* GNU General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath  string
	inputFile   string
	topN        int
	outputImage string
	reportJSON  string
	blockSize   int
	verbose     bool
	noChart     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "password_entropy",
		Short: "Password Entropy Analyzer",
		Long: `Reads a password list, computes the Shannon entropy of its character distribution
and renders a summary table plus a bar chart of the most frequent characters.

Configuration can be loaded from a JSON file using --config or from PASSWORD_ENTROPY_*
environment variables (a .env file is honored). Command-line flags override both.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runAnalysis(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	cmd.Flags().StringVarP(&opts.inputFile, "in", "i", defaultInputFile, "Path to the password list")
	cmd.Flags().IntVarP(&opts.topN, "top", "n", defaultTopN, "Number of most frequent characters to plot")
	cmd.Flags().StringVarP(&opts.outputImage, "out", "o", defaultOutputImage, "Path to the PNG chart")
	cmd.Flags().StringVar(&opts.reportJSON, "json", "", "Path to write a JSON report (optional)")
	cmd.Flags().IntVar(&opts.blockSize, "block-size", defaultBlockSize, "Read chunk size in bytes")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print distribution details and timings")
	cmd.Flags().BoolVar(&opts.noChart, "no-chart", false, "Skip chart generation")

	return cmd
}

// resolveConfig merges flags, config file, environment and defaults, in that order.
func resolveConfig(cmd *cobra.Command, opts *rootOptions) (Config, error) {
	var cfg Config
	if opts.configPath != "" {
		loadedCfg, err := LoadConfig(opts.configPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	flags := cmd.Flags()
	if flags.Changed("in") {
		cfg.InputFile = opts.inputFile
	}
	if flags.Changed("top") {
		if err := ValidateFlagValue("top", opts.topN); err != nil {
			return Config{}, err
		}
		cfg.TopN = opts.topN
	}
	if flags.Changed("out") {
		cfg.OutputImage = opts.outputImage
	}
	if flags.Changed("json") {
		cfg.ReportJSON = opts.reportJSON
	}
	if flags.Changed("block-size") {
		if err := ValidateFlagValue("block-size", opts.blockSize); err != nil {
			return Config{}, err
		}
		cfg.BlockSize = opts.blockSize
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}
	if flags.Changed("no-chart") {
		cfg.NoChart = opts.noChart
	}

	envCfg, err := ConfigFromEnv()
	if err != nil {
		return Config{}, err
	}
	cfg = cfg.MergeWithDefaults(envCfg)
	cfg = cfg.MergeWithDefaults(DefaultConfig())

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

//nolint:errcheck // console output
func runAnalysis(cfg Config, stdout, stderr io.Writer) error {
	logger := log.New(stderr, "", log.LstdFlags)
	if cfg.Verbose {
		logger.SetFlags(log.LstdFlags | log.Lmicroseconds)
	}
	start := time.Now()

	fmt.Fprintln(stdout, "Password Entropy Analyzer - a quantitative analysis of password strength")
	fmt.Fprintf(stdout, "Reading '%s'...\n", cfg.InputFile)

	counter, err := CreateFileCounter(cfg.InputFile, cfg.BlockSize, printProgress(stderr))
	fmt.Fprintln(stderr)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logger.Printf("File %s has been read: %d bytes. Time: %s", cfg.InputFile, counter.BytesRead, time.Since(start))
	}

	fmt.Fprintln(stdout, "\nPerforming mathematical analysis...")
	analysis, err := Analyze(counter, cfg.TopN)
	if err != nil {
		return err
	}

	printer := NewPrinter(stdout)
	printer.PrintSummary(analysis.Stats)
	if cfg.Verbose {
		printer.PrintDetails(analysis)
	}

	if !cfg.NoChart {
		fmt.Fprintln(stdout, "\nGenerating character frequency plot...")
		err := RenderDistributionChart(cfg.OutputImage, analysis.Top, cfg.TopN)
		switch {
		case errors.Is(err, ErrEmptyDistribution):
			logger.Printf("Skipping chart: %v", err)
		case err != nil:
			return err
		default:
			fmt.Fprintf(stdout, "Chart saved to %s\n", cfg.OutputImage)
		}
	}

	if cfg.ReportJSON != "" {
		err := WriteJSONReport(cfg.ReportJSON, NewReport(analysis))
		var schemaErr *SchemaValidationError
		switch {
		case errors.As(err, &schemaErr):
			logger.Println("Warning: generated report does not validate against schema:", schemaErr)
		case err != nil:
			return err
		default:
			fmt.Fprintf(stdout, "Report saved to %s\n", cfg.ReportJSON)
		}
	}

	if cfg.Verbose {
		logger.Printf("Analysis finished. Time: %s", time.Since(start))
	}
	fmt.Fprintln(stdout, "\nProcess complete.")
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

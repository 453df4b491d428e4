// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"golang.org/x/term"

	"pdfsift/internal/config"
	"pdfsift/internal/core"
	"pdfsift/internal/extractor"
	"pdfsift/internal/formatters"
	_ "pdfsift/internal/formatters/csv"
	_ "pdfsift/internal/formatters/json"
	_ "pdfsift/internal/formatters/text"
	"pdfsift/internal/keywords"
	"pdfsift/internal/observability"
	"pdfsift/internal/version"
)

// Exit codes: 0 success, 2 invalid arguments/configuration, 3 fatal output
// write failure.
const (
	exitOK     = 0
	exitConfig = 2
	exitOutput = 3
)

// configFlags holds command line flag values
type configFlags struct {
	pdfFile      string
	pdfDir       string
	keywordsFile string
	output       string
	outputCSV    string
	outputDir    string
	recursive    bool
	verbose      bool
	debug        bool
	noColor      bool
	quiet        bool
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	keywordsFile string
	output       string
	outputCSV    string
	outputDir    string
	recursive    bool
	verbose      bool
	debug        bool
	noColor      bool
	quiet        bool
}

func main() {
	pdfFile := flag.String("pdf-file", "", "Single PDF file to scan")
	pdfDir := flag.String("pdf-dir", "", "Directory of PDF files to scan (direct children only unless --recursive)")
	keywordsFile := flag.String("keywords-file", "", "File with preset keywords, one per line or comma-separated (default keywords.txt)")
	output := flag.String("output", "", "JSON output path (default search_results.json)")
	outputCSV := flag.String("output-csv", "", "Optional CSV output path")
	outputDir := flag.String("output-dir", "", "Directory receiving both default-named outputs; mutually exclusive with --output/--output-csv")
	recursive := flag.Bool("recursive", false, "Recurse into subdirectories of --pdf-dir")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	profileName := flag.String("profile", "", "Profile name to use from config file")
	listProfiles := flag.Bool("list-profiles", false, "List available profiles in config file")
	verbose := flag.Bool("verbose", false, "Show per-page detail in the terminal summary")
	debug := flag.Bool("debug", false, "Enable debug logging of extraction and matching")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	quiet := flag.Bool("quiet", false, "Suppress progress output and the terminal summary")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		os.Exit(exitOK)
	}

	// An explicitly named config file must load; only the standard-location
	// search tolerates a missing or bad file.
	var cfg *config.Config
	if *configFile != "" {
		var cfgErr error
		cfg, cfgErr = config.LoadConfig(*configFile)
		if cfgErr != nil {
			exitWithConfigError(cfgErr.Error())
		}
	} else {
		cfg = config.LoadConfigOrDefault("")
	}

	if *listProfiles {
		fmt.Println("Available profiles:")
		for _, name := range cfg.ListProfiles() {
			profile := cfg.GetProfile(name)
			if profile.Description != "" {
				fmt.Printf("  %s - %s\n", name, profile.Description)
			} else {
				fmt.Printf("  %s\n", name)
			}
		}
		os.Exit(exitOK)
	}

	var activeProfile *config.Profile
	if *profileName != "" {
		activeProfile = cfg.GetProfile(*profileName)
		if activeProfile == nil {
			exitWithConfigError(fmt.Sprintf("profile '%s' not found in configuration", *profileName))
		}
	}

	flags := &configFlags{
		pdfFile:      *pdfFile,
		pdfDir:       *pdfDir,
		keywordsFile: *keywordsFile,
		output:       *output,
		outputCSV:    *outputCSV,
		outputDir:    *outputDir,
		recursive:    *recursive,
		verbose:      *verbose,
		debug:        *debug,
		noColor:      *noColor,
		quiet:        *quiet,
	}
	finalConfig := resolveConfiguration(cfg, activeProfile, flags)

	if err := validateSelection(flags, finalConfig); err != nil {
		exitWithConfigError(err.Error())
	}

	// Colors off when explicitly disabled or stdout is not a terminal
	if finalConfig.noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	observer := observability.NewObserver(os.Stderr, finalConfig.quiet, finalConfig.debug)

	// Keywords load before any PDF is touched; an unusable list aborts the run
	set, err := keywords.Load(finalConfig.keywordsFile)
	if err != nil {
		exitWithConfigError(err.Error())
	}
	observer.Debug("main", "loaded %d keyword(s) from %s", set.Len(), finalConfig.keywordsFile)

	scanner := core.NewScanner(extractor.NewPDFExtractor(), observer)

	paths, err := collectInputs(scanner, flags, finalConfig)
	if err != nil {
		exitWithConfigError(err.Error())
	}
	if len(paths) == 0 {
		observer.Progress("No PDF files found to search.")
		os.Exit(exitOK)
	}

	observer.Progress("Searching %d PDF(s) for %d keyword(s)...", len(paths), set.Len())
	rep := scanner.ScanFiles(paths, set, finalConfig.keywordsFile)

	outputs := core.ResolveOutputPaths(finalConfig.output, finalConfig.outputCSV, finalConfig.outputDir)
	if err := core.WriteReports(rep, outputs); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", color.RedString("Error: %v", err))
		os.Exit(exitOutput)
	}

	observer.Progress("JSON results written to: %s", outputs.JSON)
	if outputs.CSV != "" {
		observer.Progress("CSV summary written to: %s", outputs.CSV)
	}

	if !finalConfig.quiet {
		summary, err := formatters.Export("text", rep, formatters.FormatterOptions{
			Verbose: finalConfig.verbose,
			NoColor: finalConfig.noColor,
		})
		if err == nil {
			fmt.Print(summary)
		}
	}

	os.Exit(exitOK)
}

// resolveConfiguration resolves final values from config file, profile, and
// command line flags, in that order of precedence.
func resolveConfiguration(cfg *config.Config, activeProfile *config.Profile, flags *configFlags) *finalConfiguration {
	final := &finalConfiguration{}

	// Keywords file
	final.keywordsFile = config.DefaultKeywordsFile // default fallback
	if cfg != nil && cfg.Defaults.KeywordsFile != "" {
		final.keywordsFile = cfg.Defaults.KeywordsFile
	}
	if activeProfile != nil && activeProfile.KeywordsFile != "" {
		final.keywordsFile = activeProfile.KeywordsFile
	}
	if isFlagSet("keywords-file") && flags.keywordsFile != "" {
		final.keywordsFile = flags.keywordsFile
	}

	// Output paths
	if cfg != nil {
		final.output = cfg.Defaults.Output
		final.outputCSV = cfg.Defaults.OutputCSV
		final.outputDir = cfg.Defaults.OutputDir
	}
	if activeProfile != nil {
		if activeProfile.Output != "" {
			final.output = activeProfile.Output
		}
		if activeProfile.OutputCSV != "" {
			final.outputCSV = activeProfile.OutputCSV
		}
		if activeProfile.OutputDir != "" {
			final.outputDir = activeProfile.OutputDir
		}
	}
	if isFlagSet("output") {
		final.output = flags.output
	}
	if isFlagSet("output-csv") {
		final.outputCSV = flags.outputCSV
	}
	if isFlagSet("output-dir") {
		final.outputDir = flags.outputDir
	}

	// An explicit output dir supersedes any configured flat output paths
	if final.outputDir != "" && !isFlagSet("output") && !isFlagSet("output-csv") {
		final.output = ""
		final.outputCSV = ""
	}

	// And the reverse: explicit flat output flags beat a configured output dir
	if (isFlagSet("output") || isFlagSet("output-csv")) && !isFlagSet("output-dir") {
		final.outputDir = ""
	}

	// Recursive
	final.recursive = false // default fallback
	if cfg != nil {
		final.recursive = cfg.Defaults.Recursive
	}
	if activeProfile != nil {
		final.recursive = activeProfile.Recursive
	}
	if isFlagSet("recursive") {
		final.recursive = flags.recursive
	}

	// Verbose
	final.verbose = false
	if cfg != nil {
		final.verbose = cfg.Defaults.Verbose
	}
	if activeProfile != nil {
		final.verbose = activeProfile.Verbose
	}
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}

	// Debug
	final.debug = false
	if cfg != nil {
		final.debug = cfg.Defaults.Debug
	}
	if activeProfile != nil {
		final.debug = activeProfile.Debug
	}
	if isFlagSet("debug") {
		final.debug = flags.debug
	}

	// No color
	final.noColor = false
	if cfg != nil {
		final.noColor = cfg.Defaults.NoColor
	}
	if activeProfile != nil {
		final.noColor = activeProfile.NoColor
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}

	// Quiet
	final.quiet = false
	if cfg != nil {
		final.quiet = cfg.Defaults.Quiet
	}
	if activeProfile != nil {
		final.quiet = activeProfile.Quiet
	}
	if isFlagSet("quiet") {
		final.quiet = flags.quiet
	}

	return final
}

// validateSelection enforces the mutually-exclusive input and output flag
// combinations.
func validateSelection(flags *configFlags, finalConfig *finalConfiguration) error {
	if flags.pdfFile == "" && flags.pdfDir == "" {
		return errors.New("one of --pdf-file or --pdf-dir is required")
	}
	if flags.pdfFile != "" && flags.pdfDir != "" {
		return errors.New("--pdf-file and --pdf-dir are mutually exclusive")
	}
	if isFlagSet("output-dir") && (isFlagSet("output") || isFlagSet("output-csv")) {
		return errors.New("--output-dir is mutually exclusive with --output and --output-csv")
	}
	if flags.recursive && flags.pdfDir == "" {
		return errors.New("--recursive requires --pdf-dir")
	}
	return nil
}

// collectInputs resolves the list of PDF paths to scan from the selected
// input mode.
func collectInputs(scanner *core.Scanner, flags *configFlags, finalConfig *finalConfiguration) ([]string, error) {
	if flags.pdfFile != "" {
		cleanPath := filepath.Clean(flags.pdfFile)
		info, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("PDF file not found: %s", flags.pdfFile)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%s is a directory; use --pdf-dir", flags.pdfFile)
		}
		return []string{cleanPath}, nil
	}

	cleanDir := filepath.Clean(flags.pdfDir)
	if info, err := os.Stat(cleanDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("PDF directory not found: %s", flags.pdfDir)
	}
	return scanner.FindPDFs(cleanDir, finalConfig.recursive)
}

// isFlagSet reports whether a flag was explicitly provided on the command line
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func exitWithConfigError(msg string) {
	fmt.Fprintf(os.Stderr, "%s\n", color.RedString("Error: %s", msg))
	fmt.Fprintln(os.Stderr, "Use --help for usage information")
	os.Exit(exitConfig)
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arryl/dealrank/internal/config"
	"github.com/arryl/dealrank/internal/pipeline"
	"github.com/arryl/dealrank/internal/report"
)

var version = "dev"

var (
	verbose    bool
	dryRun     bool
	configPath string
	cfg        *config.Config
	logger     zerolog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "dealrank [dataset-dir]",
	Short:   "Rank candidate companies for investment",
	Long:    "Dealrank scores candidate companies on financials, risk and news sentiment,\nranks them against client constraints, and writes a recommendation report.",
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for init and version
		if cmd.Name() == "init" || cmd.Name() == "version" {
			return nil
		}

		path, err := config.ResolveConfigPath(configPath)
		if err != nil {
			return err
		}
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		level, err := zerolog.ParseLevel(cfg.Logging.Level)
		if err != nil {
			level = zerolog.InfoLevel
		}
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
			Level(level).
			With().Timestamp().Logger()
		return nil
	},
	RunE: runPipeline,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without executing")
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without executing")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	datasetDir := datasetDirArg(args)
	pipe := pipeline.New(cfg, logger)

	if dryRun {
		result := pipe.DryRun(datasetDir)
		for _, step := range result.Steps {
			fmt.Printf("%s: %s\n", step.Name, step.Summary)
		}
		return nil
	}

	result, err := pipe.Run(datasetDir)
	for i, step := range result.Steps {
		fmt.Printf("Step %d/7: %s\n", i+1, step.Name)
		if step.Err != nil {
			fmt.Printf("  Error: %v\n", step.Err)
		} else {
			fmt.Printf("  %s\n", step.Summary)
		}
	}
	if err != nil {
		return err
	}

	sub := result.Submission
	fmt.Printf("\nRECOMMENDATION: %s\n", sub.RecommendedCompany)
	fmt.Printf("CONFIDENCE: %s\n", strconv.FormatFloat(sub.ConfidenceScore, 'g', -1, 64))
	fmt.Printf("RANKING: %s\n", strings.Join(sub.FinalRanking, " > "))
	fmt.Printf("Saved to: %s\n", result.OutputPath)
	return nil
}

// runCmd is the explicit form of the bare root invocation.
var runCmd = &cobra.Command{
	Use:   "run [dataset-dir]",
	Short: "Run the scoring pipeline over a dataset directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPipeline,
}

func datasetDirArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("dealrank", version)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration in ~/.config/dealrank/",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := filepath.Join(config.ConfigDir(), "config.yaml")
		if _, err := os.Stat(target); err == nil {
			fmt.Printf("Config already exists: %s\n", target)
			return nil
		}

		if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		if err := os.WriteFile(target, config.DefaultConfigYAML, 0o644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Printf("Created config: %s\n", target)
		fmt.Println("Edit it to configure team identity and the keyword taxonomy path.")
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [dataset-dir]",
	Short: "Render the markdown report to HTML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		datasetDir := datasetDirArg(args)
		mdPath := filepath.Join(datasetDir, cfg.Output.MarkdownFilename)

		htmlPath, err := report.ExportHTML(mdPath)
		if err != nil {
			return fmt.Errorf("exporting report: %w", err)
		}
		fmt.Printf("Exported: %s\n", htmlPath)
		return nil
	},
}

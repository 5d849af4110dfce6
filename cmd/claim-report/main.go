// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the claim-report CLI. Running it with
// no subcommand walks the CLAIM checklist interactively and writes a PDF.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/claim-report/internal/catalog"
	"github.com/pdiddy/claim-report/internal/collect"
	"github.com/pdiddy/claim-report/internal/report"
	"github.com/pdiddy/claim-report/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger writes diagnostics to stderr; prompts and results go to stdout.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// rootCmd is the base command for the claim-report CLI.
var rootCmd = &cobra.Command{
	Use:   "claim-report",
	Short: "Fill in the CLAIM checklist and render it as a PDF report",
	Long: `claim-report asks each question of the Checklist for Artificial
Intelligence in Medical Imaging (CLAIM) in turn, then asks for the author's
name and affiliation, and writes the answers to a PDF report.

Pressing Enter without typing anything records "No response provided".`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runSession,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./claim-report.yaml or ~/.config/claim-report/config.yaml)")
	rootCmd.PersistentFlags().String("catalog", "", "alternative checklist catalog YAML (default: built-in CLAIM checklist)")
	rootCmd.PersistentFlags().Bool("verbose", false, "log diagnostics to stderr")
	rootCmd.Flags().StringP("output", "o", "", "report file (default CLAIM_Report.pdf)")
	rootCmd.Flags().String("page-size", "", "page size: Letter or A4 (default Letter)")

	_ = viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))
	_ = viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("page_size", rootCmd.Flags().Lookup("page-size"))

	defaults := types.DefaultReportConfig()
	viper.SetDefault("output", defaults.OutputPath)
	viper.SetDefault("catalog", "")
	viper.SetDefault("title", defaults.Title)
	viper.SetDefault("page_size", string(defaults.PageSize))
}

func initConfig() {
	if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("claim-report")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "claim-report"))
		}
	}

	viper.SetEnvPrefix("CLAIM_REPORT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.Info("using config file", "path", viper.ConfigFileUsed())
	}
}

// reportConfig reads the effective settings from viper.
func reportConfig() (types.ReportConfig, error) {
	var cfg types.ReportConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	cfg = cfg.WithDefaults()
	switch cfg.PageSize {
	case types.PageLetter, types.PageA4:
	default:
		return cfg, fmt.Errorf("unsupported page size %q: use Letter or A4", cfg.PageSize)
	}
	return cfg, nil
}

// loadCatalog returns the configured catalog, or the built-in one.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	logger.Debug("loading catalog", "path", path)
	return catalog.Load(path)
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := reportConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}
	return session(cmd.InOrStdin(), cmd.OutOrStdout(), cat, cfg)
}

// session runs the full prompt sequence and writes the report. Nothing is
// written to disk unless every prompt was answered.
func session(in io.Reader, out io.Writer, cat *catalog.Catalog, cfg types.ReportConfig) error {
	c := collect.New(in, out)

	records, err := c.Responses(cat.Entries())
	if err != nil {
		return err
	}
	author, err := c.Author()
	if err != nil {
		return err
	}
	logger.Debug("collected responses", "count", len(records))

	elements := report.Layout(cfg.Title, records, author)
	opts := report.Options{
		PageSize: cfg.PageSize,
		Title:    cfg.Title,
		Author:   author.Name,
	}
	if err := report.WriteFile(cfg.OutputPath, elements, opts); err != nil {
		return err
	}
	logger.Debug("report written", "path", cfg.OutputPath, "elements", len(elements))

	fmt.Fprintf(out, "CLAIM Report saved as %s\n", cfg.OutputPath)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

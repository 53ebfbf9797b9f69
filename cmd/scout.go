// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/octoscout/octoscout/internal/config"
	"github.com/octoscout/octoscout/internal/domain"
	"github.com/octoscout/octoscout/internal/export"
	"github.com/octoscout/octoscout/internal/gateway"
	"github.com/octoscout/octoscout/internal/usecase"
)

// repositoryPause spaces out repository runs to stay clear of the API
// request-rate ceiling.
const repositoryPause = 1 * time.Second

var scoutCmd = &cobra.Command{
	Use:   "scout [owner/name | repository URL ...]",
	Short: "Collects and ranks contributors for the given repositories",
	Long: `Collects commit, pull request, and issue activity for every contributor
of the given repositories, merges the results into one record per user, and
writes a ranked CSV or XLSX export.

Repositories are given as "owner/name" shorthands or full GitHub URLs.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Help()
			return
		}

		ctx := context.Background()

		// Set up the logger. Progress goes to stderr so the export path
		// printed on stdout stays scriptable.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fetchCfg := domain.DefaultFetchConfiguration()
		if locations, _ := cmd.Flags().GetString("location"); locations != "" {
			for _, term := range strings.Split(locations, ",") {
				if term = strings.TrimSpace(term); term != "" {
					fetchCfg.LocationTerms = append(fetchCfg.LocationTerms, term)
				}
			}
		}
		fetchCfg.MinimumContributions, _ = cmd.Flags().GetInt("min-contributions")
		fetchCfg.ActiveWithinMonths, _ = cmd.Flags().GetInt("active-within-months")
		if skip, _ := cmd.Flags().GetBool("skip-commits"); skip {
			fetchCfg.IncludeCommits = false
		}
		if skip, _ := cmd.Flags().GetBool("skip-prs"); skip {
			fetchCfg.IncludePullRequests = false
		}
		if skip, _ := cmd.Flags().GetBool("skip-issues"); skip {
			fetchCfg.IncludeIssues = false
		}

		format, _ := cmd.Flags().GetString("format")
		if format != "csv" && format != "xlsx" {
			fmt.Fprintf(os.Stderr, "Error: unknown format %q (want csv or xlsx)\n", format)
			os.Exit(1)
		}
		outputDir, _ := cmd.Flags().GetString("output-dir")
		if outputDir == "" {
			outputDir = cfg.OutputDir
		}

		githubGateway, err := gateway.NewGitHubGateway(cfg.Token, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
			os.Exit(1)
		}
		collector := usecase.NewCollector(githubGateway, logger)

		// Repositories are processed one at a time, in the order supplied.
		// A failing reference is reported and skipped.
		merged := domain.NewRecordSet()
		processed := 0
		for i, ref := range args {
			repo, err := domain.ParseRepositoryReference(ref)
			if err != nil {
				logger.Errorf("skipping %q: %v", ref, err)
				continue
			}
			if processed > 0 {
				time.Sleep(repositoryPause)
			}
			logger.Infof("processing repository %d/%d: %s", i+1, len(args), repo.FullName())
			records := collector.Collect(ctx, repo, fetchCfg)
			merged.Merge(records, time.Now())
			processed++
		}

		ranked := usecase.Rank(merged, fetchCfg.MinimumContributions)
		summary := usecase.Summarize(ranked)
		logger.Infof("ranked %d contributors (mean %.1f, median %.1f total contributions)",
			summary.Contributors, summary.MeanTotal, summary.MedianTotal)

		path := filepath.Join(outputDir, export.FileName(time.Now(), format))
		if format == "xlsx" {
			err = export.WriteExcel(ranked, path)
		} else {
			err = export.WriteCSV(ranked, path)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write export: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(path)
	},
}

func init() {
	rootCmd.AddCommand(scoutCmd)
	scoutCmd.Flags().StringP("location", "l", "", "Comma-separated location terms to filter contributors by")
	scoutCmd.Flags().IntP("min-contributions", "m", 1, "Minimum total contributions to appear in the export")
	scoutCmd.Flags().IntP("active-within-months", "a", 0, "Only count PRs/issues created within the last N months (0 = unlimited)")
	scoutCmd.Flags().Bool("skip-commits", false, "Skip the commit contributor pass")
	scoutCmd.Flags().Bool("skip-prs", false, "Skip the pull request pass")
	scoutCmd.Flags().Bool("skip-issues", false, "Skip the issue pass")
	scoutCmd.Flags().StringP("output-dir", "o", "", "Directory to write the export to (default from OUTPUT_DIR env)")
	scoutCmd.Flags().StringP("format", "f", "csv", "Export format: csv or xlsx")
}

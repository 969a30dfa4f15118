package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/naka-gawa/standups-report/internal/config"
	"github.com/naka-gawa/standups-report/internal/domain"
	"github.com/naka-gawa/standups-report/internal/gateway"
	"github.com/naka-gawa/standups-report/internal/usecase"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Prints the standups report for a day or a date range",
	Long: `Fetches the status updates of a standups project, groups them per user and
prints them with a one-line summary of every referenced bug. Without --date or
--start/--end the report covers today.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
		if verbose {
			logger.SetOutput(os.Stderr)
		}

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		wiki, _ := cmd.Flags().GetBool("wiki")
		query, err := buildQuery(cmd, cfg.Project)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		lookup, urlPrefix, err := newIssueLookup(cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create issue tracker gateway: %v\n", err)
			os.Exit(1)
		}
		cache := gateway.NewCachingLookup(lookup, cfg.LookupConcurrency, logger)

		var renderer usecase.Renderer = usecase.NewPlainRenderer(cache, urlPrefix)
		if wiki {
			renderer = usecase.NewWikiRenderer(cache)
		}

		httpClient := gateway.NewHTTPClient(cfg.HTTPTimeout)
		var source gateway.TimelineSource = gateway.NewStandupsGateway(httpClient, cfg.StandupsURL, logger)
		var prefetcher gateway.Prefetcher = cache
		if !verbose {
			source = &spinnerSource{next: source}
			prefetcher = &spinnerPrefetcher{next: cache}
		}

		reporter := usecase.NewReporter(source, renderer, logger).WithPrefetcher(prefetcher)
		if err := reporter.Run(ctx, os.Stdout, query); err != nil {
			fmt.Fprintf(os.Stderr, "\nFailed to generate report: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().BoolP("wiki", "w", false, "Output report in mediawiki format")
	reportCmd.Flags().StringP("date", "d", "", "The date (YYYY-MM-DD)")
	reportCmd.Flags().StringP("start", "s", "", "Start date of the range (YYYY-MM-DD)")
	reportCmd.Flags().StringP("end", "e", "", "End date of the range (YYYY-MM-DD)")
	reportCmd.Flags().StringP("project", "p", "", "Standups project slug (overrides STANDUPS_PROJECT)")
	reportCmd.MarkFlagsMutuallyExclusive("date", "start")
	reportCmd.MarkFlagsMutuallyExclusive("date", "end")
	reportCmd.MarkFlagsRequiredTogether("start", "end")
}

// buildQuery validates the date flags and builds the timeline query.
func buildQuery(cmd *cobra.Command, defaultProject string) (domain.TimelineQuery, error) {
	project, _ := cmd.Flags().GetString("project")
	if project == "" {
		project = defaultProject
	}
	date, _ := cmd.Flags().GetString("date")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")

	dates := []struct{ flag, value string }{
		{"--date", date},
		{"--start", start},
		{"--end", end},
	}
	for _, d := range dates {
		if d.value == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, d.value); err != nil {
			return domain.TimelineQuery{}, fmt.Errorf("invalid %s date format, please use YYYY-MM-DD: %w", d.flag, err)
		}
	}
	if date == "" && start == "" && end == "" {
		date = time.Now().Format(dateLayout)
	}

	query := domain.TimelineQuery{Project: project, Date: date, Start: start, End: end}
	return query, query.Validate()
}

// newIssueLookup returns the configured tracker and the link prefix for plain reports.
func newIssueLookup(cfg *config.Config, logger *log.Logger) (gateway.IssueLookup, string, error) {
	switch cfg.Tracker {
	case config.TrackerGitHub:
		gh, err := gateway.NewGitHubIssueGateway(cfg.GitHubToken, cfg.GitHubRepo, cfg.HTTPTimeout, logger)
		if err != nil {
			return nil, "", err
		}
		return gh, gh.IssueURLPrefix(), nil
	default:
		httpClient := gateway.NewHTTPClient(cfg.HTTPTimeout)
		return gateway.NewBugzillaGateway(httpClient, cfg.BugzillaURL, cfg.BugzillaAPIKey, cfg.LookupRate, logger), usecase.DefaultIssueURLPrefix, nil
	}
}

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/civicdocs/meeting-docs/internal/browser"
	"github.com/civicdocs/meeting-docs/internal/crawler"
	"github.com/civicdocs/meeting-docs/internal/docfetch"
	"github.com/civicdocs/meeting-docs/internal/logger"
	"github.com/civicdocs/meeting-docs/internal/report"
	"github.com/civicdocs/meeting-docs/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagBaseURL      string
	flagDownloadsDir string
	flagOutput       string
	flagFromYear     int
	flagToYear       int
	flagMaxPages     int
	flagVerbose      bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meeting-docs",
		Short: "Download meeting documents from the county meetings page",
		Long: `A CLI tool that crawls the paginated county meetings listing,
downloads every linked PDF document (agendas, packets, action reports,
minutes, COAD reports), and writes a summary CSV with one row per
downloaded file.`,
		RunE:          runCrawl,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Define flags
	cmd.Flags().StringVar(&flagBaseURL, "base-url", "https://www.fluvannacounty.org/meetings", "Meetings listing URL")
	cmd.Flags().StringVar(&flagDownloadsDir, "downloads-dir", "downloads", "Directory for downloaded PDFs")
	cmd.Flags().StringVar(&flagOutput, "output", "meeting_documents.csv", "Path for the summary CSV")
	cmd.Flags().IntVar(&flagFromYear, "from-year", 2000, "First calendar year of the date filter")
	cmd.Flags().IntVar(&flagToYear, "to-year", 2025, "Last calendar year of the date filter")
	cmd.Flags().IntVar(&flagMaxPages, "max-pages", crawler.DefaultMaxPages, "Maximum number of listing pages to walk")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runCrawl is the main command logic
func runCrawl(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	origin, err := originOf(flagBaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	// Initialize the downloads directory
	store, err := storage.New(flagDownloadsDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	// Start the headless browser; unavailability here is fatal.
	session, err := browser.New(context.Background())
	if err != nil {
		return fmt.Errorf("starting browser session: %w", err)
	}
	defer session.Close()

	reporter := report.New()
	c := crawler.New(
		crawler.Config{
			BaseURL:   flagBaseURL,
			Origin:    origin,
			MaxPages:  flagMaxPages,
			PageDelay: crawler.DefaultPageDelay,
		},
		crawler.DefaultParams(flagFromYear, flagToYear),
		session,
		docfetch.New(),
		store,
		reporter,
	)

	var spin *spinner.Spinner
	if !flagVerbose {
		spin = spinner.New(spinner.CharSets[9], 100*time.Millisecond)
		spin.Suffix = " Crawling meeting pages..."
		spin.Start()
	}

	runErr := c.Run(context.Background())

	if spin != nil {
		spin.Stop()
	}

	// Flush accumulated records even when the walk ended with an error; an
	// unwritable CSV is the only fatal outcome here.
	if err := reporter.WriteCSV(flagOutput); err != nil {
		return fmt.Errorf("writing summary CSV: %w", err)
	}

	if runErr != nil {
		return fmt.Errorf("crawling meetings: %w", runErr)
	}

	fmt.Printf("Downloaded %d documents; summary written to %s\n", reporter.Count(), flagOutput)

	if flagVerbose {
		snapshot, err := json.MarshalIndent(logger.GetMetricsSnapshot(), "", "  ")
		if err == nil {
			fmt.Fprintln(os.Stderr, string(snapshot))
		}
	}

	return nil
}

// originOf reduces a URL to its scheme://host prefix.
func originOf(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("missing scheme or host in %q", rawURL)
	}
	return u.Scheme + "://" + u.Host, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}

package crawler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/civicdocs/meeting-docs/internal/browser"
	"github.com/civicdocs/meeting-docs/internal/logger"
	"github.com/civicdocs/meeting-docs/internal/meeting"
	"github.com/civicdocs/meeting-docs/internal/report"
	"github.com/civicdocs/meeting-docs/internal/scraper"
	"github.com/civicdocs/meeting-docs/internal/storage"
)

const (
	// DefaultMaxPages bounds the walk so an upstream site that never
	// returns an empty page cannot loop the crawl forever.
	DefaultMaxPages = 500

	// DefaultPageDelay is the pause between page fetches.
	DefaultPageDelay = 1 * time.Second
)

// PageLoader renders a listing page and returns its HTML. Implemented by
// browser.Session.
type PageLoader interface {
	LoadPage(url string) (string, error)
}

// DocumentFetcher probes and downloads document links. Implemented by
// docfetch.Client.
type DocumentFetcher interface {
	IsPDF(url string) bool
	Download(url string) ([]byte, error)
}

// Config holds the fixed settings for one crawl run.
type Config struct {
	// BaseURL is the listing path the query string is appended to.
	BaseURL string
	// Origin is the scheme://host prefix for resolving relative hrefs.
	Origin string
	// MaxPages caps the number of pages walked.
	MaxPages int
	// PageDelay is the pause between pages.
	PageDelay time.Duration
}

// Crawler walks the paginated listing and accumulates download records.
// It is the run context for one crawl: query state, session handle, store,
// and reporter travel together and live exactly as long as the run.
type Crawler struct {
	config   Config
	params   Params
	loader   PageLoader
	fetcher  DocumentFetcher
	store    *storage.Store
	reporter *report.Reporter
}

// New creates a Crawler. A non-positive MaxPages falls back to
// DefaultMaxPages; a zero PageDelay disables the inter-page pause.
func New(config Config, params Params, loader PageLoader, fetcher DocumentFetcher, store *storage.Store, reporter *report.Reporter) *Crawler {
	if config.MaxPages <= 0 {
		config.MaxPages = DefaultMaxPages
	}
	if config.PageDelay < 0 {
		config.PageDelay = 0
	}
	return &Crawler{
		config:   config,
		params:   params,
		loader:   loader,
		fetcher:  fetcher,
		store:    store,
		reporter: reporter,
	}
}

// Run walks pages from index 0 until a page times out, yields zero rows,
// the page cap is reached, or ctx is cancelled. Link-level failures are
// logged and skipped; only browser and parse failures abort the walk.
func (c *Crawler) Run(ctx context.Context) error {
	for c.params.Page = 0; c.params.Page < c.config.MaxPages; c.params.Page++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		pageURL := c.config.BaseURL + "?" + c.params.Encode()
		logger.Info("Checking page", logger.Fields{"page": c.params.Page})

		start := time.Now()
		html, err := c.loader.LoadPage(pageURL)
		if err != nil {
			if errors.Is(err, browser.ErrLoadTimeout) {
				logger.Info("Timed out waiting for page to load, stopping", logger.Fields{"page": c.params.Page})
				return nil
			}
			return fmt.Errorf("loading page %d: %w", c.params.Page, err)
		}
		logger.RecordTiming("crawl.page_load", time.Since(start))

		meetings, err := scraper.ParseMeetings(strings.NewReader(html), c.config.Origin)
		if err != nil {
			return fmt.Errorf("parsing page %d: %w", c.params.Page, err)
		}
		if len(meetings) == 0 {
			logger.Info("No meeting rows found, stopping", logger.Fields{"page": c.params.Page})
			return nil
		}

		logger.IncrCounter("crawl.pages")
		logger.AddCounter("crawl.rows", int64(len(meetings)))
		logger.Info("Found meeting rows", logger.Fields{
			"page":  c.params.Page,
			"count": len(meetings),
		})

		for _, m := range meetings {
			c.processMeeting(m)
		}

		if c.config.PageDelay > 0 {
			time.Sleep(c.config.PageDelay)
		}
	}

	logger.Warn("Reached page limit, stopping", logger.Fields{"max_pages": c.config.MaxPages})
	return nil
}

// processMeeting probes the row's document links in label order, then
// downloads and records each confirmed PDF.
func (c *Crawler) processMeeting(m *meeting.Meeting) {
	logger.Debug("Meeting", logger.Fields{"title": m.Title, "date": m.Date})

	// Probe all labels first, keeping only links that serve a PDF.
	pdfURLs := make(map[meeting.Label]string)
	for _, label := range meeting.Labels() {
		docURL, ok := m.Documents[label]
		if !ok {
			continue
		}
		logger.IncrCounter("crawl.probes")
		if c.fetcher.IsPDF(docURL) {
			pdfURLs[label] = docURL
		}
	}

	for _, label := range meeting.Labels() {
		pdfURL, ok := pdfURLs[label]
		if !ok {
			continue
		}

		start := time.Now()
		data, err := c.fetcher.Download(pdfURL)
		if err != nil {
			logger.Error("Failed to download document", logger.Fields{"url": pdfURL}, err)
			logger.IncrCounter("crawl.download_failures")
			continue
		}

		path, err := c.store.SaveDocument(pdfURL, data)
		if err != nil {
			logger.Error("Failed to save document", logger.Fields{"url": pdfURL}, err)
			logger.IncrCounter("crawl.download_failures")
			continue
		}
		logger.RecordTiming("crawl.download", time.Since(start))
		logger.IncrCounter("crawl.downloads")

		c.reporter.Add(meeting.Record{
			Title:  m.Title,
			Date:   m.Date,
			PDFURL: pdfURL,
			File:   path,
		})
		logger.Info("Downloaded document", logger.Fields{
			"label": string(label),
			"url":   pdfURL,
			"file":  path,
		})
	}
}

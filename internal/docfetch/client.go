package docfetch

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/civicdocs/meeting-docs/internal/logger"
)

const (
	// UserAgent mimics a browser; the county site serves some documents
	// differently to unidentified clients.
	UserAgent = "Mozilla/5.0"

	// PDFContentType is the content type a probe must observe before a
	// download is attempted.
	PDFContentType = "application/pdf"

	ProbeTimeout    = 10 * time.Second
	DownloadTimeout = 15 * time.Second
)

// Client probes document links and downloads confirmed PDFs.
type Client struct {
	probeClient    *http.Client
	downloadClient *http.Client
}

// New creates a new document fetch client with the fixed probe and
// download timeouts.
func New() *Client {
	return &Client{
		probeClient: &http.Client{
			Timeout: ProbeTimeout,
		},
		downloadClient: &http.Client{
			Timeout: DownloadTimeout,
		},
	}
}

// IsPDF issues a probe request against rawURL and reports whether the
// response's Content-Type contains application/pdf. Only the headers are
// read; the body is closed without being consumed. Network and timeout
// errors are logged and reported as false.
func (c *Client) IsPDF(rawURL string) bool {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		logger.Warn("Skipping malformed document URL", logger.Fields{"url": rawURL})
		return false
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.probeClient.Do(req)
	if err != nil {
		logger.Error("Probe request failed", logger.Fields{"url": rawURL}, err)
		logger.IncrCounter("crawl.probe_failures")
		return false
	}
	defer resp.Body.Close()

	return strings.Contains(resp.Header.Get("Content-Type"), PDFContentType)
}

// Download fetches the full document at rawURL and returns its bytes.
// A response status of 400 or above is an error.
func (c *Client) Download(rawURL string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.downloadClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return data, nil
}

package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

const (
	// rowSelector is the element the walker waits for before treating a
	// page as loaded.
	rowSelector = ".views-row"

	// RowWaitTimeout bounds how long LoadPage waits for result rows to
	// appear. A page still empty after this is treated as end-of-results.
	RowWaitTimeout = 10 * time.Second
)

// ErrLoadTimeout is returned by LoadPage when the page renders without any
// result row inside RowWaitTimeout.
var ErrLoadTimeout = errors.New("timed out waiting for result rows")

// Session wraps one headless Chrome process shared across all page loads.
type Session struct {
	ctx           context.Context
	cancelBrowser context.CancelFunc
	cancelAlloc   context.CancelFunc
}

// New starts a headless browser. The returned Session must be closed with
// Close. An error here means the browser engine is unavailable and the
// crawl cannot run.
func New(parent context.Context) (*Session, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
		chromedp.NoSandbox,
		chromedp.DisableGPU,
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	// Run with no actions to launch the process now, so a missing Chrome
	// binary fails at startup instead of on the first page.
	if err := chromedp.Run(browserCtx); err != nil {
		cancelBrowser()
		cancelAlloc()
		return nil, fmt.Errorf("starting browser: %w", err)
	}

	return &Session{
		ctx:           browserCtx,
		cancelBrowser: cancelBrowser,
		cancelAlloc:   cancelAlloc,
	}, nil
}

// Close shuts down the browser process.
func (s *Session) Close() {
	s.cancelBrowser()
	s.cancelAlloc()
}

// LoadPage navigates to url, waits for at least one result row to render,
// and returns the page's outer HTML. Returns ErrLoadTimeout when no row
// appears within RowWaitTimeout.
func (s *Session) LoadPage(url string) (string, error) {
	loadCtx, cancel := context.WithTimeout(s.ctx, RowWaitTimeout)
	defer cancel()

	var html string
	err := chromedp.Run(loadCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady(rowSelector, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrLoadTimeout
		}
		return "", fmt.Errorf("loading page: %w", err)
	}

	return html, nil
}

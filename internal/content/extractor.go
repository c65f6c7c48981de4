// Package content extracts plain text from URLs for summarization.
package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"

	"tldw/internal/urls"
)

// Extractor turns a URL into plain text. An empty result with a nil error
// means the page rendered nothing worth summarizing; callers treat that the
// same as a failure, without retrying.
type Extractor interface {
	Extract(ctx context.Context, url string, kind urls.Kind) (string, error)
}

// BrowserConfig holds the headless-browser settings.
type BrowserConfig struct {
	Headless   bool
	ChromePath string
}

// BrowserExtractor renders pages in headless Chrome and extracts the visible
// body text. One Chrome allocator is shared across extractions; each Extract
// call runs in its own tab.
type BrowserExtractor struct {
	cfg         BrowserConfig
	logger      zerolog.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

func NewBrowserExtractor(cfg BrowserConfig, logger zerolog.Logger) *BrowserExtractor {
	return &BrowserExtractor{cfg: cfg, logger: logger}
}

// Start launches Chrome. Must be called before Extract.
func (e *BrowserExtractor) Start(ctx context.Context) error {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", e.cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(1280, 900),
	)
	if e.cfg.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(e.cfg.ChromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	e.allocCtx = allocCtx
	e.allocCancel = cancel

	tabCtx, tabCancel := chromedp.NewContext(e.allocCtx)
	defer tabCancel()
	if err := chromedp.Run(tabCtx); err != nil {
		return fmt.Errorf("start browser: %w", err)
	}

	e.logger.Info().Bool("headless", e.cfg.Headless).Msg("browser started")
	return nil
}

// Stop shuts down Chrome.
func (e *BrowserExtractor) Stop() {
	if e.allocCancel != nil {
		e.allocCancel()
	}
}

// Extract navigates to the URL and returns the visible page text. The
// caller's ctx bounds the whole navigation; pass one with a deadline.
func (e *BrowserExtractor) Extract(ctx context.Context, url string, kind urls.Kind) (string, error) {
	if e.allocCtx == nil {
		return "", fmt.Errorf("browser not started")
	}

	tabCtx, cancel := chromedp.NewContext(e.allocCtx)
	defer cancel()
	tabCtx, cancelDeadline := mergeDeadline(tabCtx, ctx)
	defer cancelDeadline()

	var body string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Text("body", &body, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("extract %s content: %w", kind, err)
	}
	return collapseWhitespace(body), nil
}

// mergeDeadline applies the deadline of src (the caller's context) onto dst
// (the tab context), since chromedp tabs must descend from the allocator.
func mergeDeadline(dst, src context.Context) (context.Context, context.CancelFunc) {
	if deadline, ok := src.Deadline(); ok {
		return context.WithDeadline(dst, deadline)
	}
	return context.WithCancel(dst)
}

func collapseWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var clean []string
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l != "" {
			clean = append(clean, l)
		}
	}
	return strings.Join(clean, "\n")
}

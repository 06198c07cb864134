package chart

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/chromedp"

	"hoopstats/internal/stats"
)

const (
	screenshotTimeout = 20 * time.Second
	// echarts animates the first paint.
	settleDelay = 1500 * time.Millisecond
)

// PNGRenderer screenshots the HTML chart in headless Chrome.
type PNGRenderer struct {
	html    *HTMLRenderer
	timeout time.Duration
}

func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{html: NewHTMLRenderer(), timeout: screenshotTimeout}
}

func (r *PNGRenderer) Render(ctx context.Context, rows []stats.StatRow, stat stats.Stat, style Style) (Artifact, error) {
	if len(rows) == 0 {
		return Artifact{}, ErrNoRows
	}
	if err := EnsureHeadlessAvailable(ctx); err != nil {
		return Artifact{}, fmt.Errorf("headless chrome unavailable: %w", err)
	}
	page, err := r.html.Render(ctx, rows, stat, style)
	if err != nil {
		return Artifact{}, err
	}
	png, err := renderHTMLToPNG(ctx, page.Bytes, style.Width, style.Height, r.timeout)
	if err != nil {
		return Artifact{}, fmt.Errorf("screenshot %s: %w", page.Filename, err)
	}
	return Artifact{
		Bytes:       png,
		Filename:    strings.TrimSuffix(page.Filename, "."+FormatHTML) + "." + FormatPNG,
		ContentType: "image/png",
		Description: page.Description,
	}, nil
}

var (
	headlessOnce sync.Once
	headlessErr  error
)

// EnsureHeadlessAvailable starts Chrome once per process and caches the result.
func EnsureHeadlessAvailable(ctx context.Context) error {
	headlessOnce.Do(func() {
		targetCtx := ctx
		if targetCtx == nil {
			targetCtx = context.Background()
		}
		parent, cancel := chromedp.NewContext(targetCtx)
		defer cancel()
		headlessErr = chromedp.Run(parent)
	})
	return headlessErr
}

func renderHTMLToPNG(ctx context.Context, html []byte, width, height int, timeout time.Duration) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		timeout = screenshotTimeout
	}
	parent, cancel := chromedp.NewContext(ctx)
	defer cancel()

	timeoutCtx, cancelTimeout := context.WithTimeout(parent, timeout)
	defer cancelTimeout()

	dataURI := "data:text/html;base64," + base64.StdEncoding.EncodeToString(html)
	var screenshot []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(width), int64(height)),
		chromedp.Navigate(dataURI),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(settleDelay),
		chromedp.FullScreenshot(&screenshot, 100),
	}
	if err := chromedp.Run(timeoutCtx, tasks...); err != nil {
		return nil, err
	}
	return screenshot, nil
}

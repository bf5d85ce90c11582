// Package export converts rendered CV pages into downloadable PDF files
// using headless Chrome.
package export

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/mlefevre/cv-builder/internal/cv"
	"github.com/mlefevre/cv-builder/internal/render"
)

// ErrContainerMissing is returned when the rendered page has no preview
// container to rasterize. The export aborts cleanly instead of producing an
// empty document.
var ErrContainerMissing = errors.New("export: rendered page has no preview container")

// A4 paper width in inches. Page height is derived from the rasterized
// content's aspect ratio, so a long CV yields one tall page rather than
// being split across page breaks.
const paperWidthInches = 8.27

// Options configures a PDF export.
type Options struct {
	// Scale is the rasterization supersampling factor. Values below 2 are
	// raised to 2 to keep print quality.
	Scale float64
	// Timeout bounds the whole browser session.
	Timeout time.Duration
}

func (o Options) normalized() Options {
	if o.Scale < 2 {
		o.Scale = 2
	}
	if o.Timeout <= 0 {
		o.Timeout = 60 * time.Second
	}
	return o
}

// PDF rasterizes a rendered CV page and returns single-page PDF bytes. The
// page must contain the render.PreviewContainerID container.
func PDF(ctx context.Context, html string, opts Options) ([]byte, error) {
	opts = opts.normalized()

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, opts.Timeout)
	defer cancel()

	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))

	// Measure the preview container first; a missing container means the
	// renderer never mounted and the export must abort.
	var dims []float64
	measure := fmt.Sprintf(
		`(() => { const el = document.getElementById(%q); return el ? [el.offsetWidth, el.offsetHeight] : null })()`,
		render.PreviewContainerID,
	)

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		chromedp.Evaluate(measure, &dims),
		chromedp.ActionFunc(func(ctx context.Context) error {
			if len(dims) != 2 || dims[0] <= 0 {
				return ErrContainerMissing
			}
			width, height := dims[0], dims[1]

			// Supersample the raster output.
			if err := emulation.SetDeviceMetricsOverride(int64(width), int64(height), opts.Scale, false).Do(ctx); err != nil {
				return fmt.Errorf("failed to set device metrics: %w", err)
			}

			paperHeight := paperWidthInches * height / width
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeight).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(false).
				Do(ctx)
			if err != nil {
				return fmt.Errorf("failed to print page: %w", err)
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		if errors.Is(err, ErrContainerMissing) {
			return nil, ErrContainerMissing
		}
		return nil, fmt.Errorf("pdf export failed: %w", err)
	}

	return pdf, nil
}

// FileName builds the download file name from the CV owner's name,
// "cv.pdf" when no name is set.
func FileName(pi cv.PersonalInfo) string {
	parts := []string{}
	for _, p := range []string{pi.FirstName, pi.LastName} {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, sanitizeToken(p))
		}
	}
	if len(parts) == 0 {
		return "cv.pdf"
	}
	return "CV_" + strings.Join(parts, "_") + ".pdf"
}

// sanitizeToken keeps file names shell- and header-safe.
func sanitizeToken(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-':
			sb.WriteRune(r)
		case r == ' ':
			sb.WriteRune('-')
		}
	}
	return sb.String()
}

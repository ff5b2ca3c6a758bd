package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/ledongthuc/pdf"
)

// Renderer produces PDF bytes from a Document using headless Chrome.
// Pagination and overflow are handled by the print engine.
type Renderer interface {
	Render(ctx context.Context, doc Document) ([]byte, error)
}

// ChromeRenderer renders via the Chrome DevTools print-to-PDF protocol.
type ChromeRenderer struct {
	timeout time.Duration
}

// NewChromeRenderer constructs a ChromeRenderer. CHROME_PATH overrides the
// browser binary when set.
func NewChromeRenderer() *ChromeRenderer {
	return &ChromeRenderer{timeout: 60 * time.Second}
}

// Render lays out the document as HTML and prints it to an A4 PDF. The
// produced bytes are verified to be a readable PDF before being returned;
// no partial output is ever considered valid.
func (r *ChromeRenderer) Render(ctx context.Context, doc Document) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, r.timeout)
	defer cancelRun()

	// The document travels as a data URL so nothing touches disk.
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(doc.HTML()))

	var pdfBuf []byte
	err := chromedp.Run(runCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm in inches.
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	if err := VerifyPDF(pdfBuf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return pdfBuf, nil
}

// VerifyPDF checks that data is a parseable PDF with extractable text.
func VerifyPDF(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty pdf output")
	}
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("invalid pdf output: %w", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return fmt.Errorf("invalid pdf output: %w", err)
	}
	if _, err := io.Copy(io.Discard, plain); err != nil {
		return fmt.Errorf("invalid pdf output: %w", err)
	}
	return nil
}

var _ Renderer = (*ChromeRenderer)(nil)

package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ReceiptData is the flat field set printed on a payment receipt
type ReceiptData struct {
	ReferenceNo   string
	ClientName    string
	Date          string
	Reason        string
	Amount        float64
	AmountInWords string
	ModeOfPayment string
	ReceivedBy    string
	// Office identity printed in the header
	OfficeName    string
	OfficeAddress string
}

// ReceiptFileName returns the download name for a receipt
func ReceiptFileName(referenceNo string) string {
	return fmt.Sprintf("Receipt_%s.pdf", referenceNo)
}

// The receipt layout is fixed: logo block top-left, business address
// right-aligned, a horizontal rule, a centered rounded title badge, then
// label/value rows over underlines, and a footer row of label/value pairs.
// Field order and placement are part of the document's identity; keep them.
var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; font-size: 12pt; margin: 0; }
  .header { display: flex; justify-content: space-between; align-items: flex-start; }
  .logo { font-size: 20pt; font-weight: bold; }
  .address { text-align: right; white-space: pre-line; }
  hr { border: none; border-top: 2px solid #000; margin: 12px 0 24px 0; }
  .badge { width: 220px; margin: 0 auto 28px auto; text-align: center;
           border: 2px solid #000; border-radius: 16px; padding: 8px 0;
           font-weight: bold; letter-spacing: 2px; }
  .row { display: flex; margin-bottom: 22px; }
  .row .label { width: 160px; font-weight: bold; }
  .row .value { flex: 1; border-bottom: 1px solid #000; padding-left: 6px; }
  .footer { display: flex; justify-content: space-between; margin-top: 48px; }
  .footer .cell { display: flex; }
  .footer .label { font-weight: bold; margin-right: 6px; }
  .footer .value { min-width: 140px; border-bottom: 1px solid #000; padding: 0 6px; }
</style>
</head>
<body>
  <div class="header">
    <div class="logo">{{.OfficeName}}</div>
    <div class="address">{{.OfficeAddress}}</div>
  </div>
  <hr>
  <div class="badge">RECEIPT</div>
  <div class="row"><div class="label">Receipt No:</div><div class="value">{{.ReferenceNo}}</div></div>
  <div class="row"><div class="label">Received From:</div><div class="value">{{.ClientName}}</div></div>
  <div class="row"><div class="label">Being Payment Of:</div><div class="value">{{.Reason}}</div></div>
  <div class="row"><div class="label">Amount:</div><div class="value">{{printf "%.2f" .Amount}}</div></div>
  <div class="row"><div class="label">Amount In Words:</div><div class="value">{{.AmountInWords}}</div></div>
  <div class="footer">
    <div class="cell"><div class="label">Date:</div><div class="value">{{.Date}}</div></div>
    <div class="cell"><div class="label">Mode of Payment:</div><div class="value">{{.ModeOfPayment}}</div></div>
    <div class="cell"><div class="label">Received By:</div><div class="value">{{.ReceivedBy}}</div></div>
  </div>
</body>
</html>`))

// RenderReceiptHTML renders the fixed receipt layout for the given fields
func RenderReceiptHTML(data ReceiptData) (string, error) {
	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.String(), nil
}

// getChromePath returns the Chrome executable path from environment variable
func getChromePath() string {
	return os.Getenv("CHROME_PATH")
}

// GenerateReceiptPDF renders the receipt to a one-page PDF using headless Chrome
func GenerateReceiptPDF(ctx context.Context, data ReceiptData) ([]byte, error) {
	htmlContent, err := RenderReceiptHTML(data)
	if err != nil {
		return nil, err
	}
	return renderHTMLToPDF(ctx, htmlContent)
}

// renderHTMLToPDF prints HTML content to a letter-sized PDF page
func renderHTMLToPDF(parent context.Context, htmlContent string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
	)

	// Check for custom Chrome path (for headless-shell in Docker)
	if chromePath := getChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(parent, opts...)
	defer allocCancel()

	ctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	var pdfBuf []byte

	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.Sleep(100*time.Millisecond),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPaperWidth(8.5).
				WithPaperHeight(11.0).
				WithMarginTop(0.75).
				WithMarginBottom(0.75).
				WithMarginLeft(0.75).
				WithMarginRight(0.75).
				WithPrintBackground(true).
				WithDisplayHeaderFooter(false).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfBuf = buf
			return nil
		}),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}

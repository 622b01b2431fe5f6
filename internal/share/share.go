// Package share renders an itinerary into shareable artefacts: a plain-text
// summary, a QR code of that summary, and a one-page PDF trip card.
package share

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"github.com/travelglobal/planner/internal/budget"
	"github.com/travelglobal/planner/internal/domain"
)

// Text builds the shareable trip summary. It returns "" for an empty itinerary.
// siteURL is appended as the call to action.
func Text(items []domain.ItineraryItem, siteURL string) string {
	if len(items) == 0 {
		return ""
	}
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = fmt.Sprintf("📍 %s (%s)", it.Name, it.Country)
	}
	return fmt.Sprintf("✈️ My Travel Global Trip!\n\n%s\n\n🌍 %d countries • 📅 %d days\n\nPlan yours at %s",
		strings.Join(lines, "\n"),
		domain.CountryCount(items),
		domain.TotalStayDays(items),
		siteURL,
	)
}

// QRCode encodes content as a size×size PNG.
func QRCode(content string, size int) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("share.QRCode: %w", err)
	}
	return png, nil
}

// Card renders a one-page A5 PDF listing each stop and, when est is non-nil,
// the budget in est's currency.
func Card(items []domain.ItineraryItem, est *budget.Breakdown) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	// Core fonts are cp1252; translate so names like "Café" survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("My Travel Global Trip", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "My Travel Global Trip", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("%d destinations, %d countries, %d days",
		len(items), domain.CountryCount(items), domain.TotalStayDays(items)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(10, 7, "#", "B", 0, "L", false, 0, "")
	pdf.CellFormat(70, 7, "Destination", "B", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, "Country", "B", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Days", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range items {
		pdf.CellFormat(10, 7, fmt.Sprintf("%d", it.Order+1), "", 0, "L", false, 0, "")
		pdf.CellFormat(70, 7, tr(it.Name), "", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, tr(it.Country), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, fmt.Sprintf("%d", it.StayDays()), "", 1, "R", false, 0, "")
	}

	if est != nil {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, tr("Estimated total: "+est.Format(est.GrandTotal)), "T", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("share.Card: %w", err)
	}
	return buf.Bytes(), nil
}

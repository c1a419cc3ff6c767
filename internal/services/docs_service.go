package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"backend/internal/catalog"
	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders booking invoices as PDF.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	Catalog     *catalog.Catalog
	RequestID   string

	// Loader overrides record lookup in tests.
	Loader func(int64) (models.BookingRecord, error)
}

func (s DocsService) GenerateInvoice(bookingID int64) ([]byte, string, error) {
	rec, err := s.loadRecord(bookingID)
	if err != nil {
		return nil, "", err
	}

	title := rec.PackageID
	if s.Catalog != nil {
		if pkg, err := s.Catalog.ByID(rec.PackageID); err == nil {
			title = pkg.Title
		}
	}

	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("booking_id=%d", bookingID))
	return buildInvoicePDF(rec, title)
}

func (s DocsService) loadRecord(bookingID int64) (models.BookingRecord, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}
	return s.BookingRepo.GetByID(bookingID)
}

func buildInvoicePDF(rec models.BookingRecord, packageTitle string) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING INVOICE")
	pdf.Ln(12)

	totalRupees := rec.AmountPaise / 100
	perTraveler := totalRupees
	if rec.Travelers > 0 {
		perTraveler = totalRupees / int64(rec.Travelers)
	}

	travelDate := rec.TravelDate
	if ts, err := utils.ParseDate(rec.TravelDate); err == nil {
		travelDate = utils.FormatDate(ts)
	}

	invNo := fmt.Sprintf("INV-%d-%s", rec.ID, safeFilenamePart(rec.OrderID))
	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Invoice No     : %s", invNo),
		fmt.Sprintf("Date           : %s", time.Now().Format("2006-01-02 15:04")),
		fmt.Sprintf("Order ID       : %s", safe(rec.OrderID, "-")),
		fmt.Sprintf("Guest          : %s", safe(rec.FullName, "-")),
		fmt.Sprintf("Phone          : %s", safe(rec.Phone, "-")),
		fmt.Sprintf("Package        : %s", safe(packageTitle, "-")),
		fmt.Sprintf("Travel Date    : %s", safe(travelDate, "-")),
		fmt.Sprintf("Travelers      : %d", rec.Travelers),
		fmt.Sprintf("Price / Person : Rs. %d", perTraveler),
		fmt.Sprintf("Total          : Rs. %d %s", totalRupees, rec.Currency),
		fmt.Sprintf("Payment Status : %s", safe(rec.PaymentStatus, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if rec.Demo {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Note: this booking was created in demo mode; no live payment was collected.", "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%d_%s.pdf", rec.ID, safeFilenamePart(rec.FullName))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "X"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-")
	return replacer.Replace(s)
}

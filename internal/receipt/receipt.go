package receipt

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/mathangi54/travel-booking-client/internal/models"
)

// Generate renders a booking confirmation receipt as PDF bytes. No
// filesystem access; callers decide where the bytes go.
func Generate(booking *models.Booking) ([]byte, error) {
	if booking == nil {
		return nil, fmt.Errorf("booking is required")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Header bar
	pdf.SetFillColor(13, 37, 63)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Sri Lanka Tours", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Booking Confirmation", "", 1, "L", false, 0, "")

	pdf.SetY(38)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 37, 63)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	sectionHeader("Booking Details")
	row("Booking ID", fmt.Sprintf("%d", booking.ID))
	if booking.TourName != "" {
		row("Tour", booking.TourName)
	}
	row("Travel Date", booking.TravelDate)
	row("Travelers", fmt.Sprintf("%d", booking.Guests))
	row("Package", booking.PackageType)
	row("Total Amount", fmt.Sprintf("$%.2f", booking.TotalPrice))
	if booking.Status != "" {
		row("Status", booking.Status)
	}
	pdf.Ln(4)

	sectionHeader("Contact")
	row("Name", booking.CustomerName)
	row("Email", booking.CustomerEmail)
	row("Phone", booking.CustomerPhone)
	if booking.SpecialRequests != "" {
		row("Special Requests", booking.SpecialRequests)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(110, 110, 110)
	pdf.MultiCell(170, 4, fmt.Sprintf(
		"Issued %s. We will contact you within 24 hours to confirm your Sri Lankan adventure.",
		time.Now().Format("2 January 2006 15:04")), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}

package services

import (
	"bytes"
	"fmt"
	"strings"

	"transfer-backend/internal/domain/models"
	"transfer-backend/internal/repositories"
	"transfer-backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the printable transfer voucher for a booking.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	RequestID   string
}

func (s DocsService) GenerateVoucher(bookingID int64) ([]byte, string, error) {
	booking, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_voucher", fmt.Sprintf("booking_id=%d", bookingID))
	return buildVoucherPDF(booking)
}

func buildVoucherPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Transfer Voucher", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRANSFER VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking No   : %s", safe(b.BookingNumber, "-")),
		fmt.Sprintf("Customer     : %s", safe(b.CustomerName, "-")),
		fmt.Sprintf("Phone        : %s", safe(b.CustomerPhone, "-")),
		fmt.Sprintf("Route        : %s -> %s", safe(b.PickupLocation, "-"), safe(b.DropoffLocation, "-")),
		fmt.Sprintf("Date / Time  : %s %s", safe(b.PickupDate, "-"), safe(b.PickupTime, "-")),
		fmt.Sprintf("Passengers   : %d", b.Passengers),
		fmt.Sprintf("Luggage      : %d", b.Luggage),
		fmt.Sprintf("Vehicle      : %s", safe(b.VehicleName, "-")),
		fmt.Sprintf("Driver       : %s", safe(b.DriverName, "to be assigned")),
		fmt.Sprintf("Total        : %.2f %s", b.TotalPrice, b.Currency),
		fmt.Sprintf("Status       : %s / payment %s", b.Status, b.PaymentStatus),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please show this voucher to your driver at pickup. The booking number identifies your transfer.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("VOUCHER_%s.pdf", safeFilenamePart(b.BookingNumber))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}

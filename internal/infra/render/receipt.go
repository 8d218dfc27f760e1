package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/m04kA/bookminton/internal/domain"
)

const (
	receiptQRImage = "checkin-qr"
	receiptQRSize  = 45.0 // мм
)

// ReceiptPDF формирует квитанцию бронирования в формате A4
// Время сессий выводится в часовом поясе арены
func ReceiptPDF(r *domain.Receipt, loc *time.Location) ([]byte, error) {
	if loc == nil {
		loc = time.UTC
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking receipt "+r.Code, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, fallback(r.Arena.Name, "Badminton Arena"), "", 1, "C", false, 0, "")
	if r.Arena.Address != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, r.Arena.Address, "", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Booking "+r.Code, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	row(pdf, "Court", r.CourtName)
	row(pdf, "Customer", r.CustomerName)
	row(pdf, "Phone", r.CustomerPhone)
	row(pdf, "Date", r.Date.In(loc).Format(domain.DateFormat))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(60, 8, "Session", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Hours", "1", 0, "C", false, 0, "")
	pdf.CellFormat(0, 8, "Status", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, s := range r.Sessions {
		span := s.StartAt.In(loc).Format(domain.TimeFormat) + " - " + s.EndAt.In(loc).Format(domain.TimeFormat)
		pdf.CellFormat(60, 8, span, "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 8, FormatHours(s.EndAt.Sub(s.StartAt).Hours()), "1", 0, "C", false, 0, "")
		pdf.CellFormat(0, 8, string(s.Status), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	row(pdf, "Total hours", FormatHours(r.TotalHours))
	row(pdf, "Total price", FormatRupiah(r.TotalPrice))

	if len(r.Sessions) > 0 && r.Sessions[0].CheckInToken != "" {
		png, err := QRCodePNG(r.Sessions[0].CheckInToken, DefaultQRSize)
		if err != nil {
			return nil, err
		}

		pdf.Ln(6)
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(receiptQRImage, opts, bytes.NewReader(png))
		pdf.ImageOptions(receiptQRImage, (210-receiptQRSize)/2, pdf.GetY(), receiptQRSize, receiptQRSize, true, opts, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 6, "Show this code at the front desk to check in", "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDF, err)
	}

	return buf.Bytes(), nil
}

func row(pdf *fpdf.Fpdf, label, value string) {
	pdf.CellFormat(45, 7, label+":", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

// FormatHours часы без лишних нулей: 1, 1.5, 2.25
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// FormatRupiah сумма с разделителями тысяч: Rp 100.000
func FormatRupiah(amount float64) string {
	digits := strconv.FormatInt(int64(amount+0.5), 10)

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	return "Rp " + b.String()
}

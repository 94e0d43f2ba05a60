// Package certpdf renders certificates of completion as A4 PDF documents.
package certpdf

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

// DateLayout is the issue date format printed on the certificate
const DateLayout = "Mon Jan 02 2006"

const (
	pageWidth  = 210.0
	pageHeight = 297.0
	margin     = 10.0
	fontFamily = "Helvetica"
)

// brand colors
var (
	purple = [3]int{0x6b, 0x21, 0xa8}
	slate  = [3]int{0x33, 0x41, 0x55}
	gray   = [3]int{0x6b, 0x72, 0x80}
)

// Data is the content printed on a certificate
type Data struct {
	StudentName   string
	CourseTitle   string
	IssuedAt      time.Time
	CertificateNo string
}

// Validate reports missing certificate fields
func (d Data) Validate() error {
	switch {
	case d.StudentName == "":
		return errors.New("certpdf: student name is required")
	case d.CourseTitle == "":
		return errors.New("certpdf: course title is required")
	case d.CertificateNo == "":
		return errors.New("certpdf: certificate number is required")
	case d.IssuedAt.IsZero():
		return errors.New("certpdf: issue date is required")
	}
	return nil
}

// Render writes the certificate for d to w as a single-page A4 portrait PDF
func Render(w io.Writer, d Data) error {
	if err := d.Validate(); err != nil {
		return err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Certificate of Completion", true)
	pdf.SetAuthor("Learnify", true)
	pdf.SetCreationDate(d.IssuedAt)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// core fonts are cp1252; names outside it degrade instead of failing
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetDrawColor(purple[0], purple[1], purple[2])
	pdf.SetLineWidth(2)
	pdf.Rect(margin, margin, pageWidth-2*margin, pageHeight-2*margin, "D")

	line := func(style string, size float64, color [3]int, text string, height float64) {
		pdf.SetFont(fontFamily, style, size)
		pdf.SetTextColor(color[0], color[1], color[2])
		pdf.SetX(margin)
		pdf.MultiCell(pageWidth-2*margin, height, tr(text), "", "C", false)
	}

	pdf.SetY(40)
	line("B", 36, purple, "Learnify", 16)
	line("", 14, gray, "Learning Management Platform", 8)

	pdf.Ln(20)
	line("B", 26, slate, "Certificate of Completion", 12)

	pdf.Ln(16)
	line("", 14, gray, "This is to certify that", 8)
	pdf.Ln(6)
	line("B", 24, slate, d.StudentName, 12)
	pdf.Ln(6)
	line("", 14, gray, "has successfully completed the course", 8)
	pdf.Ln(6)
	line("B", 20, purple, d.CourseTitle, 10)

	pdf.Ln(24)
	line("", 12, slate, "Issued on: "+d.IssuedAt.Format(DateLayout), 7)
	line("", 10, gray, "Certificate ID: "+d.CertificateNo, 6)

	pdf.SetY(pageHeight - 40)
	line("I", 11, purple, "Learnify LMS", 6)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("certpdf: render: %w", err)
	}
	return nil
}

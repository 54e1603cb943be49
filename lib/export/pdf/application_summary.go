// Package pdfexport renders a one-page PDF summary of a career application
// for the admin dashboard.
package pdfexport

import (
	"bytes"
	"sort"
	"time"

	"kridavista-backend/models"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

func GenerateApplicationSummary(app models.Application) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateApplicationSummary panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Career Application "+app.ID, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, app.RoleTitle, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeRow(pdf, "Name", app.Name)
	writeRow(pdf, "Email", app.Email)
	phone := app.Phone
	if phone == "" {
		phone = "N/A"
	}
	writeRow(pdf, "Phone", phone)
	writeRow(pdf, "Role", app.RoleTitle)
	writeRow(pdf, "Resume file", app.Resume)
	writeRow(pdf, "Submitted", app.SubmittedAt.Format(time.RFC3339))

	if len(app.Fields) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 9, "Application Responses", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)

		keys := make([]string, 0, len(app.Fields))
		for key := range app.Fields {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(0, 7, key, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(0, 6, app.Fields[key], "", "L", false)
			pdf.Ln(2)
		}
	}

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	var buf bytes.Buffer
	if err = pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to render pdf")
	}
	return buf.Bytes(), nil
}

func writeRow(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(45, 7, label+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}

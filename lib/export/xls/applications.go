// Package xlsexport renders career applications as an XLSX workbook for the
// admin dashboard.
package xlsexport

import (
	"time"

	"kridavista-backend/models"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	Applications(apps []models.Application) ([]byte, error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{}
}

type impl struct{}

const sheetName = "Applications"

func (i impl) Applications(apps []models.Application) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, errors.Wrap(err, "failed to prepare sheet")
	}

	headers := []string{"Application ID", "Name", "Email", "Phone", "Role", "Resume file", "Submitted at"}
	row, err := writeHeader(f, sheetName, 0, headers)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write header")
	}

	for _, app := range apps {
		row++
		values := []interface{}{
			app.ID,
			app.Name,
			app.Email,
			app.Phone,
			app.RoleTitle,
			app.Resume,
			app.SubmittedAt.Format(time.RFC3339),
		}
		for col, value := range values {
			if err = writeColumn(f, sheetName, col+1, row, value); err != nil {
				return nil, errors.Wrap(err, "failed to write row")
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize workbook")
	}
	return buf.Bytes(), nil
}

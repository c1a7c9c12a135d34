// Package export renders captured data into downloadable workbooks.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"github.com/coastalrealty/coastal-api/internal/models"
)

// leadSheetName is the workbook's single sheet.
const leadSheetName = "Leads"

// leadExportHeader lists the columns in output order.
var leadExportHeader = []string{
	"ID",
	"Name",
	"Email",
	"Phone",
	"Type",
	"Source",
	"Message",
	"Captured At",
}

// leadColumnWidths matches leadExportHeader by index.
var leadColumnWidths = []float64{
	8,  // ID
	25, // Name
	30, // Email
	18, // Phone
	12, // Type
	15, // Source
	60, // Message
	22, // Captured At
}

// LeadsWorkbook builds an Excel workbook with one row per lead under a
// styled header row.
func LeadsWorkbook(leads []models.Lead) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(leadSheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range leadExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(leadSheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(leadSheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for i, width := range leadColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(leadSheetName, col, col, width); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for rowIdx, lead := range leads {
		row := rowIdx + 2

		phone := ""
		if lead.Phone != nil {
			phone = *lead.Phone
		}
		message := ""
		if lead.Message != nil {
			message = *lead.Message
		}

		values := []interface{}{
			lead.ID,
			lead.Name,
			lead.Email,
			phone,
			lead.Type,
			lead.Source,
			message,
			lead.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(leadSheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	return f, nil
}

// WriteLeadsFile writes the leads workbook to path.
func WriteLeadsFile(leads []models.Lead, path string) error {
	f, err := LeadsWorkbook(leads)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write workbook to %s: %w", path, err)
	}
	return nil
}

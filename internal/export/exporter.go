// Package export renders employees as XLSX workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/locvowork/employee_service/internal/domain"
)

// ContentType is the media type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Exporter writes employees into a single-sheet workbook following a Layout.
type Exporter struct {
	layout Layout
}

func NewExporter(layout Layout) *Exporter {
	return &Exporter{layout: layout}
}

// Write streams a header row followed by one row per employee to w.
func (x *Exporter) Write(w io.Writer, employees []domain.EmployeeDTO) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", x.layout.Sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(x.layout.Sheet)
	if err != nil {
		return fmt.Errorf("open stream writer: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	// Column widths must be set before the first row.
	headers := make([]interface{}, len(x.layout.Columns))
	for i, col := range x.layout.Columns {
		if col.Width > 0 {
			if err := sw.SetColWidth(i+1, i+1, col.Width); err != nil {
				return fmt.Errorf("set width of column %d: %w", i+1, err)
			}
		}
		headers[i] = excelize.Cell{Value: col.Header, StyleID: headerStyle}
	}
	if err := sw.SetRow("A1", headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for r, e := range employees {
		row := make([]interface{}, len(x.layout.Columns))
		for i, col := range x.layout.Columns {
			row[i] = fieldValues[col.Field](e)
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return fmt.Errorf("locate row %d: %w", r+2, err)
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("write row %d: %w", r+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

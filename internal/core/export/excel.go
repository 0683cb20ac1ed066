package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExcelExporter implements table export using excelize
type ExcelExporter struct {
	sheetName string
}

// NewExcelExporter creates a new Excel exporter writing a single named sheet
func NewExcelExporter(sheetName string) *ExcelExporter {
	if sheetName == "" {
		sheetName = "Sheet1"
	}
	return &ExcelExporter{sheetName: sheetName}
}

// Export exports data to Excel format
func (e *ExcelExporter) Export(data *ExportData, writer io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", e.sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	rowIndex := 1
	if data.Title != "" {
		titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
		if err != nil {
			return fmt.Errorf("failed to create title style: %w", err)
		}
		if err := e.setRow(f, rowIndex, []interface{}{data.Title}); err != nil {
			return err
		}
		f.SetCellStyle(e.sheetName, "A1", "A1", titleStyle)
		rowIndex++

		if data.Description != "" {
			if err := e.setRow(f, rowIndex, []interface{}{data.Description}); err != nil {
				return err
			}
			rowIndex++
		}
		rowIndex++
	}

	headerColor := stripHashFromColor(data.Style.HeaderBgColor)
	if headerColor == "" {
		headerColor = "4472C4"
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{headerColor},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	moneyFormat := "#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFormat})
	if err != nil {
		return fmt.Errorf("failed to create money style: %w", err)
	}

	headerRow := rowIndex
	titles := make([]interface{}, len(data.Columns))
	for i, col := range data.Columns {
		titles[i] = col.Title
		if col.Width > 0 {
			name, _ := excelize.ColumnNumberToName(i + 1)
			f.SetColWidth(e.sheetName, name, name, col.Width)
		}
	}
	if err := e.setRow(f, headerRow, titles); err != nil {
		return err
	}
	first, _ := excelize.CoordinatesToCellName(1, headerRow)
	last, _ := excelize.CoordinatesToCellName(len(data.Columns), headerRow)
	f.SetCellStyle(e.sheetName, first, last, headerStyle)
	rowIndex++

	for _, row := range data.Rows {
		if err := e.setRow(f, rowIndex, row); err != nil {
			return err
		}
		for i, col := range data.Columns {
			if col.Money {
				cell, _ := excelize.CoordinatesToCellName(i+1, rowIndex)
				f.SetCellStyle(e.sheetName, cell, cell, moneyStyle)
			}
		}
		rowIndex++
	}

	if data.Style.FreezeHeader {
		topLeft, _ := excelize.CoordinatesToCellName(1, headerRow+1)
		f.SetPanes(e.sheetName, &excelize.Panes{
			Freeze:      true,
			YSplit:      headerRow,
			TopLeftCell: topLeft,
			ActivePane:  "bottomLeft",
		})
	}

	if data.Style.AutoFilter && len(data.Columns) > 0 && len(data.Rows) > 0 {
		end, _ := excelize.CoordinatesToCellName(len(data.Columns), headerRow+len(data.Rows))
		f.AutoFilter(e.sheetName, first+":"+end, nil)
	}

	if len(data.Summary) > 0 {
		rowIndex++
		for _, line := range data.Summary {
			if err := e.setRow(f, rowIndex, []interface{}{line.Label, line.Value}); err != nil {
				return err
			}
			rowIndex++
		}
	}

	if err := f.Write(writer); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}

	return nil
}

func (e *ExcelExporter) setRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(e.sheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

// GetContentType returns the MIME type for Excel files
func (e *ExcelExporter) GetContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// GetFileExtension returns the file extension for Excel files
func (e *ExcelExporter) GetFileExtension() string {
	return ".xlsx"
}

// stripHashFromColor removes # from hex color codes
func stripHashFromColor(color string) string {
	if len(color) > 0 && color[0] == '#' {
		return color[1:]
	}
	return color
}

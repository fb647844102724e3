package excel

import (
	"io"

	"manhour-tracker/internal/domain/sheet"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// Renderer writes a table as a single-sheet xlsx workbook with a bold header row.
type Renderer struct{}

func NewRenderer() *Renderer { return &Renderer{} }

func (r *Renderer) Render(w io.Writer, t sheet.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	name := defaultSheet
	if t.Name != "" && t.Name != defaultSheet {
		if err := f.SetSheetName(defaultSheet, t.Name); err != nil {
			return err
		}
		name = t.Name
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})
	if err != nil {
		return err
	}

	for i, h := range t.Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(name, cell, cell, bold); err != nil {
			return err
		}
	}
	if len(t.Headers) > 0 {
		last, _ := excelize.ColumnNumberToName(len(t.Headers))
		if err := f.SetColWidth(name, "A", last, 20); err != nil {
			return err
		}
	}

	for i, row := range t.Rows {
		for j, v := range row {
			v = deref(v)
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(name, cell, v); err != nil {
				return err
			}
		}
	}
	return f.Write(w)
}

// deref unwraps the nullable column types used by the domain; nil pointers become nil.
func deref(v any) any {
	switch p := v.(type) {
	case *string:
		if p == nil {
			return nil
		}
		return *p
	case *int:
		if p == nil {
			return nil
		}
		return *p
	case *int64:
		if p == nil {
			return nil
		}
		return *p
	case *float64:
		if p == nil {
			return nil
		}
		return *p
	}
	return v
}

package excel

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"manhour-tracker/internal/domain/sheet"

	"github.com/xuri/excelize/v2"
)

// Parser reads the first worksheet of an xlsx workbook. Row 1 is the header
// row; fully blank data rows are skipped but keep their sheet row numbers.
type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) Parse(r io.Reader) (*sheet.Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	name := f.GetSheetName(0)
	if name == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	out := &sheet.Sheet{}
	if len(rows) == 0 {
		return out, nil
	}
	for _, h := range rows[0] {
		out.Headers = append(out.Headers, strings.TrimSpace(h))
	}

	dates := newDateFormats(f)
	for i := 1; i < len(rows); i++ {
		rowNum := i + 1
		cells := make(map[string]sheet.Cell, len(out.Headers))
		for col, raw := range rows[i] {
			if col >= len(out.Headers) || out.Headers[col] == "" || raw == "" {
				continue
			}
			header := out.Headers[col]
			if _, dup := cells[header]; dup {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return nil, err
			}
			c, err := readCell(f, name, ref, raw, dates)
			if err != nil {
				return nil, fmt.Errorf("cell %s: %w", ref, err)
			}
			if !c.IsEmpty() {
				cells[header] = c
			}
		}
		if len(cells) == 0 {
			continue
		}
		out.Rows = append(out.Rows, sheet.Row{Number: rowNum, Cells: cells})
	}
	return out, nil
}

func readCell(f *excelize.File, sheetName, ref, raw string, dates *dateFormats) (sheet.Cell, error) {
	typ, err := f.GetCellType(sheetName, ref)
	if err != nil {
		return sheet.Cell{}, err
	}
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula, excelize.CellTypeError:
		return sheet.TextCell(raw), nil
	case excelize.CellTypeBool:
		if raw == "1" {
			return sheet.TextCell("TRUE"), nil
		}
		return sheet.TextCell("FALSE"), nil
	case excelize.CellTypeDate:
		if t, ok := parseISO(raw); ok {
			return sheet.DateCell(t), nil
		}
		return sheet.TextCell(raw), nil
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return sheet.TextCell(raw), nil
	}
	styleID, err := f.GetCellStyle(sheetName, ref)
	if err != nil {
		return sheet.Cell{}, err
	}
	isDate, err := dates.isDate(styleID)
	if err != nil {
		return sheet.Cell{}, err
	}
	if isDate {
		t, err := excelize.ExcelDateToTime(n, false)
		if err != nil {
			return sheet.Cell{}, err
		}
		return sheet.DateCell(t), nil
	}
	return sheet.NumberCell(n), nil
}

var isoLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}

func parseISO(s string) (time.Time, bool) {
	for _, l := range isoLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dateFormats caches whether a style id renders numbers as dates.
type dateFormats struct {
	f     *excelize.File
	cache map[int]bool
}

func newDateFormats(f *excelize.File) *dateFormats {
	return &dateFormats{f: f, cache: map[int]bool{}}
}

func (d *dateFormats) isDate(styleID int) (bool, error) {
	if styleID == 0 {
		return false, nil
	}
	if v, ok := d.cache[styleID]; ok {
		return v, nil
	}
	style, err := d.f.GetStyle(styleID)
	if err != nil {
		return false, err
	}
	v := builtinDateFormat(style.NumFmt)
	if style.CustomNumFmt != nil {
		v = customDateFormat(*style.CustomNumFmt)
	}
	d.cache[styleID] = v
	return v, nil
}

// builtinDateFormat reports the built-in number format ids that render dates or times.
func builtinDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22, id >= 27 && id <= 36, id >= 45 && id <= 47, id >= 50 && id <= 58:
		return true
	}
	return false
}

// customDateFormat looks for date tokens outside quoted literals and [..] sections.
func customDateFormat(code string) bool {
	var quoted, bracket bool
	for _, r := range strings.ToLower(code) {
		switch {
		case r == '"':
			quoted = !quoted
		case quoted:
		case r == '[':
			bracket = true
		case r == ']':
			bracket = false
		case bracket:
		case r == 'y', r == 'd', r == 'm', r == 'h', r == 's':
			return true
		}
	}
	return false
}

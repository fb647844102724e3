package sheet

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

type Kind uint8

const (
	Empty Kind = iota
	Text
	Number
	Date
)

// Cell is one typed spreadsheet value.
type Cell struct {
	Kind   Kind
	Text   string
	Number float64
	Time   time.Time
}

func TextCell(s string) Cell { return Cell{Kind: Text, Text: s} }
func NumberCell(n float64) Cell { return Cell{Kind: Number, Number: n} }
func DateCell(t time.Time) Cell { return Cell{Kind: Date, Time: t} }
func (c Cell) IsEmpty() bool { return c.Kind == Empty }

// String stringifies the cell the way it would be shown as plain text.
func (c Cell) String() string {
	switch c.Kind {
	case Text:
		return c.Text
	case Number:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case Date:
		if c.Time.Hour() == 0 && c.Time.Minute() == 0 && c.Time.Second() == 0 {
			return c.Time.Format(DateLayout)
		}
		return c.Time.Format("2006-01-02 15:04:05")
	}
	return ""
}

var ErrNotNumeric = errors.New("not a numeric value")

// Int parses the cell as a number and truncates it toward zero.
func (c Cell) Int() (int, error) {
	var f float64
	switch c.Kind {
	case Number:
		f = c.Number
	case Text:
		v, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
		if err != nil {
			return 0, ErrNotNumeric
		}
		f = v
	default:
		return 0, ErrNotNumeric
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotNumeric
	}
	f = math.Trunc(f)
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, ErrNotNumeric
	}
	return int(f), nil
}

const DateLayout = "2006-01-02"

// NormalizeDate formats a date cell as YYYY-MM-DD, stringifies anything else
// as-is and maps an empty cell to nil.
func NormalizeDate(c Cell) *string {
	switch c.Kind {
	case Empty:
		return nil
	case Date:
		s := c.Time.Format(DateLayout)
		return &s
	}
	s := c.String()
	return &s
}

// Row is one data row keyed by header; Number is its 1-based sheet row.
type Row struct {
	Number int
	Cells  map[string]Cell
}

// Get returns an Empty cell for absent columns.
func (r Row) Get(column string) Cell {
	return r.Cells[column]
}

// Sheet is a parsed upload: the header row plus its data rows.
type Sheet struct {
	Headers []string
	Rows    []Row
}

// Missing returns the columns of want absent from the header row.
func (s Sheet) Missing(want ...string) []string {
	have := make(map[string]struct{}, len(s.Headers))
	for _, h := range s.Headers {
		have[h] = struct{}{}
	}
	var out []string
	for _, w := range want {
		if _, ok := have[w]; !ok {
			out = append(out, w)
		}
	}
	return out
}

// Table is a result set to render; nil values become blank cells.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]any
}

type Parser interface {
	Parse(r io.Reader) (*Sheet, error)
}

type Renderer interface {
	Render(w io.Writer, t Table) error
}

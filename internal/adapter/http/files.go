package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"manhour-tracker/internal/domain/apperr"
	"manhour-tracker/internal/domain/sheet"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
)

const (
	uploadField = "file"
	mimeXLSX    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	errNoFilePart   = apperr.Validation("No file part in the request")
	errNoFileName   = apperr.Validation("No selected file")
	errNotExcel     = apperr.Validation("Invalid file type. Please upload an Excel file (.xlsx or .xls)")
	errEmptyUpload  = apperr.Validation("Uploaded file is empty")
	excelExtensions = map[string]struct{}{".xlsx": {}, ".xls": {}}

	// xlsx sniffs as zip, xls as an OLE compound file
	excelMIMEs = []string{mimeXLSX, "application/vnd.ms-excel", "application/zip", "application/x-ole-storage"}
)

// Files reads spreadsheet uploads and writes spreadsheet downloads.
type Files struct {
	parser   sheet.Parser
	renderer sheet.Renderer
}

func NewFiles(p sheet.Parser, r sheet.Renderer) *Files {
	return &Files{parser: p, renderer: r}
}

// Read validates the multipart upload and parses it into a sheet.
func (f *Files) Read(c echo.Context) (*sheet.Sheet, error) {
	data, err := readUpload(c)
	if err != nil {
		return nil, err
	}
	s, err := f.parser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "Error processing Excel file: "+err.Error(), err)
	}
	return s, nil
}

func readUpload(c echo.Context) ([]byte, error) {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		// a part sent without a filename is parsed as a plain value
		if form := c.Request().MultipartForm; form != nil {
			if _, ok := form.Value[uploadField]; ok {
				return nil, errNoFileName
			}
		}
		return nil, errNoFilePart
	}
	if strings.TrimSpace(fh.Filename) == "" {
		return nil, errNoFileName
	}
	if _, ok := excelExtensions[strings.ToLower(filepath.Ext(fh.Filename))]; !ok {
		return nil, errNotExcel
	}
	if fh.Size == 0 {
		return nil, errEmptyUpload
	}
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, errEmptyUpload
	}
	if !isExcel(data) {
		return nil, errNotExcel
	}
	return data, nil
}

func isExcel(data []byte) bool {
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		for _, want := range excelMIMEs {
			if m.Is(want) {
				return true
			}
		}
	}
	return false
}

// Send renders t as an xlsx attachment named filename.
func (f *Files) Send(c echo.Context, filename string, t sheet.Table) error {
	var buf bytes.Buffer
	if err := f.renderer.Render(&buf, t); err != nil {
		return writeError(c, fmt.Errorf("render %s: %w", filename, err))
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, mimeXLSX, buf.Bytes())
}

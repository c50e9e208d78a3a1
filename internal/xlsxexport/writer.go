package xlsxexport

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Completion"

// baseColumns are the fixed leading columns of the completion matrix; one
// column per document type follows them.
var baseColumns = []string{
	"Project",
	"Item Name",
	"Part No",
	"Customer",
	"Status",
	"Completed At",
}

// BaseColumnCount is the number of fixed columns before the per-type ones.
var BaseColumnCount = len(baseColumns)

// Writer builds the completion-matrix workbook.
type Writer struct {
	f   *excelize.File
	row int
}

// NewWriter creates a Writer with a single empty sheet.
func NewWriter() (*Writer, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}
	return &Writer{f: f}, nil
}

// WriteHeader writes the bold header row: the fixed columns followed by one
// column per document-type code.
func (w *Writer) WriteHeader(docTypeCodes []string) error {
	headers := make([]string, 0, len(baseColumns)+len(docTypeCodes))
	headers = append(headers, baseColumns...)
	headers = append(headers, docTypeCodes...)

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := w.f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	style, err := w.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	first, _ := excelize.CoordinatesToCellName(1, 1)
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := w.f.SetCellStyle(sheetName, first, last, style); err != nil {
		return err
	}

	w.row = 1
	return nil
}

// WriteRow appends one data row below the rows written so far.
func (w *Writer) WriteRow(values []string) error {
	w.row++
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, w.row)
		if err != nil {
			return err
		}
		if err := w.f.SetCellValue(sheetName, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// Bytes serializes the workbook. The Writer is closed afterwards.
func (w *Writer) Bytes() ([]byte, error) {
	defer func() { _ = w.f.Close() }()
	buf, err := w.f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns the download filename for a completion report.
// Format: completion_report_{YYYY-MM-DD}.xlsx
func BuildFilename() string {
	return fmt.Sprintf("completion_report_%s.xlsx", time.Now().Format("2006-01-02"))
}

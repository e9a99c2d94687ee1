package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"mockcheck/internal/domain"
)

const (
	resultsSheet       = "Results"
	defaultColumnWidth = 18
	wideColumnWidth    = 48

	patternType   = "pattern"
	patternValue  = 1
	failedBgColor = "FFC7CE"
	passedBgColor = "C6EFCE"
	headerBgColor = "D9E1F2"
)

var excelHeaders = []string{
	"#", "Name", "Method", "URL", "Expected", "Actual", "Status", "Result", "Duration (ms)", "Error", "curl",
}

// ExcelExporter writes reports as xlsx workbooks
type ExcelExporter struct{}

// NewExcelExporter creates a new ExcelExporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export writes one row per case followed by a summary block
func (e *ExcelExporter) Export(output *domain.TestResultsOutput, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	styles, err := newStyles(f)
	if err != nil {
		return err
	}

	lastCol, _ := excelize.ColumnNumberToName(len(excelHeaders))
	if err := f.SetColWidth(resultsSheet, "A", lastCol, defaultColumnWidth); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	for _, col := range []string{"D", "E", "F", "K"} {
		if err := f.SetColWidth(resultsSheet, col, col, wideColumnWidth); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	for i, header := range excelHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(resultsSheet, cell, header)
	}
	f.SetCellStyle(resultsSheet, "A1", lastCol+"1", styles.header)

	for i, result := range output.Results {
		if err := writeResultRow(f, i+2, i+1, result, styles); err != nil {
			return err
		}
	}

	writeSummary(f, len(output.Results)+3, output.Meta)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx report: %w", err)
	}
	return nil
}

type excelStyles struct {
	header, passed, failed int
}

func newStyles(f *excelize.File) (excelStyles, error) {
	var s excelStyles
	var err error
	fill := func(color string) *excelize.Style {
		return &excelize.Style{Fill: excelize.Fill{Type: patternType, Pattern: patternValue, Color: []string{color}}}
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: patternType, Pattern: patternValue, Color: []string{headerBgColor}},
	}); err != nil {
		return s, fmt.Errorf("create header style: %w", err)
	}
	if s.passed, err = f.NewStyle(fill(passedBgColor)); err != nil {
		return s, fmt.Errorf("create passed style: %w", err)
	}
	if s.failed, err = f.NewStyle(fill(failedBgColor)); err != nil {
		return s, fmt.Errorf("create failed style: %w", err)
	}
	return s, nil
}

func writeResultRow(f *excelize.File, row, number int, result domain.TestResult, styles excelStyles) error {
	verdict, style := "PASS", styles.passed
	if !result.Passed {
		verdict, style = "FAIL", styles.failed
	}

	cells := []interface{}{
		number,
		result.Name,
		result.Method,
		result.URL,
		result.Expected,
		result.Actual,
		result.Status,
		verdict,
		float64(result.Duration.Microseconds()) / 1000,
		result.Error,
		result.Curl,
	}

	for i, value := range cells {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		if err := f.SetCellValue(resultsSheet, cell, value); err != nil {
			return fmt.Errorf("write %s: %w", cell, err)
		}
	}

	verdictCell, _ := excelize.CoordinatesToCellName(8, row)
	return f.SetCellStyle(resultsSheet, verdictCell, verdictCell, style)
}

func writeSummary(f *excelize.File, startRow int, meta domain.TestResultsMeta) {
	lines := [][2]interface{}{
		{"Summary", ""},
		{"Run ID", meta.RunID},
		{"Base URL", meta.BaseURL},
		{"Total", meta.Total},
		{"Passed", meta.Passed},
		{"Failed", meta.Failed},
		{"Duration", meta.Duration},
		{"Timestamp", meta.Timestamp},
	}
	for i, line := range lines {
		f.SetCellValue(resultsSheet, fmt.Sprintf("A%d", startRow+i), line[0])
		f.SetCellValue(resultsSheet, fmt.Sprintf("B%d", startRow+i), line[1])
	}
}

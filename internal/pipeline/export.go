package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// writeSheet fills a sheet from string rows starting at A1.
func writeSheet(f *excelize.File, sheet string, rows [][]string) error {
	for r, row := range rows {
		for c, val := range row {
			if val == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return err
			}
		}
	}
	return nil
}

func addSheet(f *excelize.File, name string, rows [][]string) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	return writeSheet(f, name, rows)
}

func saveWorkbook(f *excelize.File, outputPath string) error {
	// excelize seeds every workbook with Sheet1.
	_ = f.DeleteSheet("Sheet1")
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

// ExportOrderForm writes a vendor order form: header row with an
// autofilter and uniform column widths, one unit per row.
func ExportOrderForm(result *ClassifyResult, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "발주서"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	rows := append([][]string{result.Header}, result.Rows...)
	if err := writeSheet(f, sheet, rows); err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(len(result.Header))
	if err != nil {
		return err
	}
	if err := f.AutoFilter(sheet, fmt.Sprintf("A1:%s1", lastCol), nil); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 15); err != nil {
		return err
	}
	return saveWorkbook(f, outputPath)
}

// ExportMergeResult writes both invoice projections as separate
// workbooks next to each other in outputDir.
func ExportMergeResult(result *MergeResult, outputDir string) (mgmtPath, uploadPath string, err error) {
	mgmtPath = filepath.Join(outputDir, result.MgmtFileName)
	uploadPath = filepath.Join(outputDir, result.UploadFileName)

	mgmt := excelize.NewFile()
	defer mgmt.Close()
	if err := addSheet(mgmt, "기록용", append([][]string{result.Header}, result.MgmtRows...)); err != nil {
		return "", "", err
	}
	if err := saveWorkbook(mgmt, mgmtPath); err != nil {
		return "", "", err
	}

	upload := excelize.NewFile()
	defer upload.Close()
	if err := addSheet(upload, "업로드용", append([][]string{result.Header}, result.UploadRows...)); err != nil {
		return "", "", err
	}
	if err := saveWorkbook(upload, uploadPath); err != nil {
		return "", "", err
	}
	return mgmtPath, uploadPath, nil
}

// ExportMergedUpload writes the cross-company upload workbook.
func ExportMergedUpload(header []string, rows [][]string, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()
	aoa := rows
	if len(header) > 0 {
		aoa = append([][]string{header}, rows...)
	}
	if err := addSheet(f, "병합송장", aoa); err != nil {
		return err
	}
	return saveWorkbook(f, outputPath)
}

// ExportDepositList writes the transfer checklist workbook.
func ExportDepositList(rows [][]string, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := addSheet(f, "입금내역", rows); err != nil {
		return err
	}
	return saveWorkbook(f, outputPath)
}

// ExportWorkLog writes the daily work-log workbook. Empty sections are
// skipped; the deposit sheet is always present.
func ExportWorkLog(log *WorkLog, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	if len(log.SummaryRows) > 0 {
		if err := addSheet(f, "요약시트", log.SummaryRows); err != nil {
			return err
		}
	}
	if err := addSheet(f, "입금내역", log.DepositRows); err != nil {
		return err
	}
	if len(log.OrderRows) > 0 {
		if err := addSheet(f, "발주시트", log.OrderRows); err != nil {
			return err
		}
	}
	if len(log.InvoiceRows) > 0 {
		if err := addSheet(f, "송장시트", log.InvoiceRows); err != nil {
			return err
		}
	}
	if len(log.MarginRows) > 0 {
		if err := addSheet(f, "마진시트", log.MarginRows); err != nil {
			return err
		}
	}
	return saveWorkbook(f, outputPath)
}

// ReadSheetRows loads the first sheet of a workbook as string rows.
func ReadSheetRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sheet := f.GetSheetName(0)
	return f.GetRows(sheet)
}

// ReadAllSheets loads every sheet of a workbook in order.
func ReadAllSheets(path string) ([]NamedSheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var sheets []NamedSheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, NamedSheet{Name: name, Rows: rows})
	}
	return sheets, nil
}

package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"farmsight/config"
	"farmsight/models"
)

var exportColumns = []struct {
	Key   string
	Label string
}{
	{"field_name", "Field Name"},
	{"state", "State"},
	{"district", "District"},
	{"crop_type", "Crop"},
	{"yield_per_hectare", "Yield (t/ha)"},
	{"field_size_hectares", "Area (ha)"},
	{"data_source", "Source"},
	{"created_at", "Recorded"},
}

// ExportCropRecords dispatches on ?format=xlsx|csv, defaulting to xlsx.
func ExportCropRecords(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("format") {
	case "", "xlsx", "excel":
		exportCropRecordsToExcel(w, r)
	case "csv":
		exportCropRecordsToCSV(w, r)
	default:
		http.Error(w, "format must be xlsx or csv", http.StatusBadRequest)
	}
}

// exportCropRecordsToExcel streams the filtered crop records as a styled
// xlsx workbook.
func exportCropRecordsToExcel(w http.ResponseWriter, r *http.Request) {
	records, err := fetchExportRecords(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	excelFile, err := createRecordsWorkbook(records)
	if err != nil {
		http.Error(w, "Failed to generate Excel file", http.StatusInternalServerError)
		return
	}
	buffer, err := excelFile.WriteToBuffer()
	if err != nil {
		http.Error(w, "Failed to write Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("crop_records_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

// exportCropRecordsToCSV streams the filtered crop records as CSV.
func exportCropRecordsToCSV(w http.ResponseWriter, r *http.Request) {
	records, err := fetchExportRecords(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	csvData, err := createRecordsCSV(records)
	if err != nil {
		http.Error(w, "Failed to generate CSV file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("crop_records_%s.csv", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(csvData)))
	w.WriteHeader(http.StatusOK)
	w.Write(csvData)
}

// fetchExportRecords loads records matching the same filters as the list
// endpoint. Unlike the list, an export covers every matching row; the
// page/limit parameters apply only when the caller sends them.
func fetchExportRecords(r *http.Request) ([]models.CropRecord, error) {
	params, err := models.ParseListParams(r)
	if err != nil {
		return nil, err
	}
	q := recordQuery(config.DB, params).Order("created_at DESC")
	if exportPaginated(r) {
		q = q.Limit(params.Limit).Offset(params.Offset())
	}
	var records []models.CropRecord
	if err := q.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return records, nil
}

// exportPaginated reports whether the caller asked for a page rather
// than the full matching set.
func exportPaginated(r *http.Request) bool {
	return r.URL.Query().Get("limit") != "" || r.URL.Query().Get("page") != ""
}

func recordCells(rec models.CropRecord) []interface{} {
	return []interface{}{
		rec.FieldName,
		rec.State,
		rec.District,
		rec.CropType,
		rec.YieldPerHectare,
		rec.FieldSizeHectares,
		rec.DataSource,
		rec.CreatedAt.Format("2006-01-02"),
	}
}

func createRecordsWorkbook(records []models.CropRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Crop Records"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
	})
	f.SetCellValue(sheetName, "A1", "Crop Records")
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	f.SetRowHeight(sheetName, 1, 30)

	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")))

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for colIdx, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 4)
		f.SetCellValue(sheetName, cell, col.Label)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
		f.SetColWidth(sheetName, columnIndexToLetter(colIdx+1), columnIndexToLetter(colIdx+1), 18)
	}

	dataStyle, _ := f.NewStyle(&excelize.Style{
		Border: []excelize.Border{
			{Type: "left", Color: "CCCCCC", Style: 1},
			{Type: "right", Color: "CCCCCC", Style: 1},
			{Type: "top", Color: "CCCCCC", Style: 1},
			{Type: "bottom", Color: "CCCCCC", Style: 1},
		},
	})

	for rowIdx, rec := range records {
		for colIdx, value := range recordCells(rec) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+5)
			f.SetCellValue(sheetName, cell, value)
			f.SetCellStyle(sheetName, cell, cell, dataStyle)
		}
	}

	summaryRow := len(records) + 7
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E7E6E6"},
			Pattern: 1,
		},
	})
	cell, _ := excelize.CoordinatesToCellName(1, summaryRow)
	f.SetCellValue(sheetName, cell, "Summary")
	f.SetCellStyle(sheetName, cell, cell, summaryStyle)

	var totalArea float64
	for _, rec := range records {
		totalArea += rec.FieldSizeHectares
	}
	keyCell, _ := excelize.CoordinatesToCellName(1, summaryRow+1)
	valueCell, _ := excelize.CoordinatesToCellName(2, summaryRow+1)
	f.SetCellValue(sheetName, keyCell, "Total records")
	f.SetCellValue(sheetName, valueCell, len(records))
	keyCell, _ = excelize.CoordinatesToCellName(1, summaryRow+2)
	valueCell, _ = excelize.CoordinatesToCellName(2, summaryRow+2)
	f.SetCellValue(sheetName, keyCell, "Total area (ha)")
	f.SetCellValue(sheetName, valueCell, totalArea)

	f.DeleteSheet("Sheet1")
	return f, nil
}

func createRecordsCSV(records []models.CropRecord) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{}
	for _, col := range exportColumns {
		headers = append(headers, col.Label)
	}
	writer.Write(headers)

	for _, rec := range records {
		row := []string{}
		for _, value := range recordCells(rec) {
			row = append(row, fmt.Sprintf("%v", value))
		}
		writer.Write(row)
	}

	writer.Flush()
	return buf.Bytes(), writer.Error()
}

func columnIndexToLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+(col%26))) + result
		col /= 26
	}
	return result
}

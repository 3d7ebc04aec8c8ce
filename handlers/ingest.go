package handlers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"farmsight/config"
	"farmsight/middleware"
	"farmsight/models"
)

// Columns a crop-record CSV must carry. Extra columns are ignored.
var requiredColumns = []string{
	"field_name",
	"state",
	"district",
	"crop_type",
	"yield_per_hectare",
	"field_size_hectares",
}

const maxRowErrors = 10

type ingestResult struct {
	BatchID      string   `json:"batch_id"`
	Filename     string   `json:"filename"`
	TotalRows    int      `json:"total_rows"`
	ValidRows    int      `json:"valid_rows"`
	InvalidRows  int      `json:"invalid_rows"`
	Errors       []string `json:"errors,omitempty"`
	ProcessingMS int64    `json:"processing_ms"`
}

// UploadCropRecordsCSV ingests a multipart CSV of crop records. Rows that
// fail validation are skipped and reported; valid rows are inserted in one
// batch together with an upload-batch record for traceability.
func UploadCropRecordsCSV(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "could not parse form: "+err.Error(), http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		http.Error(w, "only .csv files are accepted", http.StatusBadRequest)
		return
	}

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	headerRow, err := reader.Read()
	if err != nil {
		http.Error(w, "could not read CSV header", http.StatusBadRequest)
		return
	}

	colIndex, missing := mapColumns(headerRow)
	if len(missing) > 0 {
		http.Error(w, "missing required columns: "+strings.Join(missing, ", "), http.StatusBadRequest)
		return
	}

	user := middleware.GetUser(r)

	batch := models.UploadBatch{
		Filename: header.Filename,
		FileSize: header.Size,
		Status:   "processing",
		UserID:   user.ID,
	}
	if err := config.DB.Create(&batch).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var (
		records   []models.CropRecord
		rowErrors []string
		totalRows int
	)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			totalRows++
			if len(rowErrors) < maxRowErrors {
				rowErrors = append(rowErrors, fmt.Sprintf("row %d: malformed CSV: %v", totalRows+1, err))
			}
			continue
		}
		totalRows++

		record, rowErr := parseRecordRow(row, colIndex)
		if rowErr != nil {
			if len(rowErrors) < maxRowErrors {
				rowErrors = append(rowErrors, fmt.Sprintf("row %d: %v", totalRows+1, rowErr))
			}
			continue
		}
		record.DataSource = "csv_upload"
		record.UploadBatchID = &batch.ID
		record.UploadedBy = user.ID
		records = append(records, record)
	}

	if len(records) > 0 {
		if err := config.DB.CreateInBatches(&records, 500).Error; err != nil {
			batch.Status = "failed"
			config.DB.Save(&batch)
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}

	batch.TotalRows = totalRows
	batch.ValidRows = len(records)
	batch.InvalidRows = totalRows - len(records)
	batch.Status = "completed"
	if err := config.DB.Save(&batch).Error; err != nil {
		log.Printf("[INGEST] failed to finalize batch %s: %v", batch.ID, err)
	}

	elapsed := time.Since(start)
	log.Printf("[INGEST] %s: %d rows, %d valid, %d invalid in %s",
		header.Filename, totalRows, batch.ValidRows, batch.InvalidRows, elapsed)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ingestResult{
		BatchID:      batch.ID.String(),
		Filename:     header.Filename,
		TotalRows:    totalRows,
		ValidRows:    batch.ValidRows,
		InvalidRows:  batch.InvalidRows,
		Errors:       rowErrors,
		ProcessingMS: elapsed.Milliseconds(),
	})
}

// mapColumns resolves required column positions from a CSV header row.
// Header names are matched case-insensitively with surrounding space ignored.
func mapColumns(header []string) (map[string]int, []string) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	return index, missing
}

func parseRecordRow(row []string, colIndex map[string]int) (models.CropRecord, error) {
	cell := func(col string) string {
		i := colIndex[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	record := models.CropRecord{
		FieldName: cell("field_name"),
		State:     cell("state"),
		District:  cell("district"),
		CropType:  cell("crop_type"),
	}
	for _, pair := range []struct {
		col string
		val string
	}{
		{"field_name", record.FieldName},
		{"state", record.State},
		{"district", record.District},
		{"crop_type", record.CropType},
	} {
		if pair.val == "" {
			return models.CropRecord{}, fmt.Errorf("%s is empty", pair.col)
		}
	}

	yield, err := strconv.ParseFloat(cell("yield_per_hectare"), 64)
	if err != nil {
		return models.CropRecord{}, fmt.Errorf("yield_per_hectare %q is not a number", cell("yield_per_hectare"))
	}
	if yield <= 0 {
		return models.CropRecord{}, fmt.Errorf("yield_per_hectare must be positive, got %v", yield)
	}

	size, err := strconv.ParseFloat(cell("field_size_hectares"), 64)
	if err != nil {
		return models.CropRecord{}, fmt.Errorf("field_size_hectares %q is not a number", cell("field_size_hectares"))
	}
	if size <= 0 {
		return models.CropRecord{}, fmt.Errorf("field_size_hectares must be positive, got %v", size)
	}

	record.YieldPerHectare = yield
	record.FieldSizeHectares = size
	return record, nil
}

// Package tabular parses uploaded response files (CSV and Excel) into the
// same label -> value maps the sheet fetcher produces.
package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gi-scribe/models"
	"gi-scribe/providers"
)

var supportedExtensions = map[string]bool{
	".csv":  true,
	".xlsx": true,
	".xlsm": true,
}

// Supported reports whether the file extension is an accepted upload format.
func Supported(filename string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Reader parses uploaded response files.
type Reader struct {
	maxSize int64
	logger  *zap.Logger
}

func NewReader(maxSize int64, logger *zap.Logger) *Reader {
	return &Reader{maxSize: maxSize, logger: logger}
}

// Read parses data into responses. The first row must carry the field
// labels. Files without data rows map to ErrSourceUnavailable.
func (r *Reader) Read(filename string, data []byte) ([]models.RawResponse, error) {
	if !Supported(filename) {
		return nil, fmt.Errorf("unsupported file type %q (want csv or xlsx)", filepath.Ext(filename))
	}
	if r.maxSize > 0 && int64(len(data)) > r.maxSize {
		return nil, fmt.Errorf("file %s exceeds upload limit of %d bytes", filename, r.maxSize)
	}

	var (
		rows [][]string
		err  error
	)
	if strings.ToLower(filepath.Ext(filename)) == ".csv" {
		rows, err = parseCSV(data)
	} else {
		rows, err = parseExcel(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: %s holds no responses", providers.ErrSourceUnavailable, filename)
	}

	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = strings.TrimSpace(cell)
	}

	out := make([]models.RawResponse, 0, len(rows)-1)
	for _, row := range rows[1:] {
		resp := make(models.RawResponse, len(header))
		for i, label := range header {
			if label == "" {
				continue
			}
			if i < len(row) {
				resp[label] = row[i]
			} else {
				resp[label] = ""
			}
		}
		out = append(out, resp)
	}
	r.logger.Info("parsed uploaded responses",
		zap.String("file", filename),
		zap.Int("responses", len(out)))
	return out, nil
}

func parseCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	// Response exports have ragged rows when trailing answers are empty.
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

func parseExcel(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

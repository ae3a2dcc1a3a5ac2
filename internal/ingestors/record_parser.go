package ingestors

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"traffic-insights/internal/models"
)

var csvHeader = []string{"timestamp", "vehicle_count", "violator_count", "avg_speed", "peak_speed", "p85"}

// csvTimestampLayout accepts "2006-01-02 15:04:05" alongside RFC3339.
const csvTimestampLayout = "2006-01-02 15:04:05"

func parseJSONRecords(buf []byte) ([]models.IntervalRecord, error) {
	var records []models.IntervalRecord
	if err := json.Unmarshal(buf, &records); err != nil {
		return nil, errValidationFailed("invalid json", err)
	}
	for i, record := range records {
		if err := validateRecord(record); err != nil {
			return nil, errValidationFailed(fmt.Sprintf("record[%d]: %s", i, err.Error()), nil)
		}
	}
	return records, nil
}

func parseCSVRecords(buf []byte) ([]models.IntervalRecord, error) {
	reader := csv.NewReader(strings.NewReader(string(buf)))
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errValidationFailed("invalid csv", err)
	}
	if len(rows) == 0 {
		return nil, errValidationFailed("csv is missing a header row", nil)
	}
	if err := validateCSVHeader(rows[0]); err != nil {
		return nil, err
	}

	records := make([]models.IntervalRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		record, err := parseCSVRow(row)
		if err != nil {
			return nil, errValidationFailed(fmt.Sprintf("record[%d]: %s", i, err.Error()), nil)
		}
		if err := validateRecord(record); err != nil {
			return nil, errValidationFailed(fmt.Sprintf("record[%d]: %s", i, err.Error()), nil)
		}
		records = append(records, record)
	}
	return records, nil
}

func validateCSVHeader(header []string) error {
	if len(header) != len(csvHeader) {
		return errValidationFailed(fmt.Sprintf("csv header must have %d columns", len(csvHeader)), nil)
	}
	for i, col := range header {
		if strings.TrimSpace(strings.ToLower(col)) != csvHeader[i] {
			return errValidationFailed(fmt.Sprintf("csv header column %d: expected %q, got %q", i, csvHeader[i], col), nil)
		}
	}
	return nil
}

func parseCSVRow(row []string) (models.IntervalRecord, error) {
	var record models.IntervalRecord
	if len(row) != len(csvHeader) {
		return record, fmt.Errorf("expected %d columns, got %d", len(csvHeader), len(row))
	}

	timestamp, err := parseCSVTimestamp(strings.TrimSpace(row[0]))
	if err != nil {
		return record, err
	}
	record.Timestamp = timestamp

	if record.VehicleCount, err = parseCSVInt(row[1], "vehicle_count"); err != nil {
		return record, err
	}
	if record.ViolatorCount, err = parseCSVInt(row[2], "violator_count"); err != nil {
		return record, err
	}
	if record.AvgSpeed, err = parseCSVFloat(row[3], "avg_speed"); err != nil {
		return record, err
	}
	if record.PeakSpeed, err = parseCSVFloat(row[4], "peak_speed"); err != nil {
		return record, err
	}
	if record.DirectP85, err = parseCSVFloat(row[5], "p85"); err != nil {
		return record, err
	}
	return record, nil
}

func parseCSVTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(csvTimestampLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
	}
	return t, nil
}

func parseCSVInt(value string, field string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, nil
	}
	parsed, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", field, value)
	}
	return parsed, nil
}

func parseCSVFloat(value string, field string) (float64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, nil
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", field, value)
	}
	return parsed, nil
}

func validateRecord(record models.IntervalRecord) error {
	if record.VehicleCount < 0 {
		return fmt.Errorf("vehicleCount cannot be negative")
	}
	if record.ViolatorCount < 0 {
		return fmt.Errorf("violatorCount cannot be negative")
	}
	if record.AvgSpeed < 0 {
		return fmt.Errorf("avgSpeed cannot be negative")
	}
	if record.PeakSpeed < 0 {
		return fmt.Errorf("peakSpeed cannot be negative")
	}
	if record.DirectP85 < 0 {
		return fmt.Errorf("p85 cannot be negative")
	}
	return nil
}

func validISODate(value string) bool {
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

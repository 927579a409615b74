package timelog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
)

// Append adds rec to the CSV file at path. The header row is written only
// when the file did not exist before the call. The file is opened in
// append mode and never truncated. Concurrent writers are not serialized.
func Append(path string, rec Record) error {
	writeHeader := false
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		writeHeader = true
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if writeHeader {
		if err := w.Write(Header); err != nil {
			return fmt.Errorf("failed to write result to CSV: %w", err)
		}
	}
	if err := w.Write(rec.Fields()); err != nil {
		return fmt.Errorf("failed to write result to CSV: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write result to CSV: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return f.Close()
}

// ReadAll returns the records stored at path, skipping the header row.
// A missing file holds no records.
func ReadAll(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(Header)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	var records []Record
	for i, row := range rows {
		if i == 0 && row[0] == Header[0] {
			continue
		}
		rec, err := ParseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

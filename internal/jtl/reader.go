package jtl

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// Column names as emitted by JMeter. Matching is exact; JTL headers are
// produced by machines, not humans.
const (
	colTimestamp = "timeStamp"
	colElapsed   = "elapsed"
	colSuccess   = "success"
)

// FieldError reports a cell that is present but cannot be interpreted.
// Line numbers are 1-based and count the header row.
type FieldError struct {
	Line  int
	Field string
	Value string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("jtl: line %d: invalid %s value %q", e.Line, e.Field, e.Value)
}

// Read loads all samples from the JTL file at path.
// A missing file is reported as an error wrapping fs.ErrNotExist so
// callers can distinguish "no such file" from a malformed one.
func Read(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("jtl: result file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("jtl: failed to open %s: %w", path, err)
	}
	defer f.Close()

	samples, err := ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, path)
	}
	return samples, nil
}

// ReadFrom parses JTL CSV content from r. The first row must be the
// header. An input with a header and no data rows yields zero samples,
// which is not an error.
func ReadFrom(r io.Reader) ([]Sample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // JTL rows can be ragged when optional columns trail off

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("jtl: failed to read header: %w", err)
	}

	cols := columnIndex(header)

	var samples []Sample
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("jtl: malformed CSV: %w", err)
		}
		line++

		sample, err := parseRecord(record, cols, line)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}

	return samples, nil
}

// columnIndex maps the columns of interest to their positions.
// Absent columns map to -1, making every cell in them "missing".
func columnIndex(header []string) map[string]int {
	cols := map[string]int{
		colTimestamp: -1,
		colElapsed:   -1,
		colSuccess:   -1,
	}
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, ok := cols[name]; ok {
			cols[name] = i
		}
	}
	return cols
}

func parseRecord(record []string, cols map[string]int, line int) (Sample, error) {
	timestamp, err := parseMillis(cell(record, cols[colTimestamp]), colTimestamp, line)
	if err != nil {
		return Sample{}, err
	}

	elapsed, err := parseMillis(cell(record, cols[colElapsed]), colElapsed, line)
	if err != nil {
		return Sample{}, err
	}

	success, err := parseSuccess(cell(record, cols[colSuccess]), line)
	if err != nil {
		return Sample{}, err
	}

	return Sample{Timestamp: timestamp, Elapsed: elapsed, Success: success}, nil
}

// cell returns the value at index i, or "" when the column is absent or
// the row is too short to have it.
func cell(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// parseMillis interprets a millisecond cell. Empty means missing and
// defaults to 0; anything else must be a non-negative integer.
func parseMillis(value, field string, line int) (int64, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n < 0 {
		return 0, &FieldError{Line: line, Field: field, Value: value}
	}
	return n, nil
}

// parseSuccess interprets a success cell. Empty means missing and
// defaults to true; otherwise only "true"/"false" (case-insensitive)
// are recognized.
func parseSuccess(value string, line int) (bool, error) {
	if value == "" {
		return true, nil
	}
	switch strings.ToLower(value) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, &FieldError{Line: line, Field: colSuccess, Value: value}
}

package trace

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mrldupuis/scalogramify/logging"
)

// ReadFile loads one accelerometer record. The first line is a
// comma-separated header whose last two fields declare the sample count
// and the sampling interval in seconds; every following line carries one
// sample value. Blank lines are skipped.
//
// The time vector is rebuilt from the header: exactly count steps of dt
// starting at zero, so the declared count wins over any floating-point
// range arithmetic.
func ReadFile(path string) (*Record, error) {
	logger := logging.WithFields(logging.Fields{
		"component": "trace_reader",
		"path":      path,
	})

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open record: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		return nil, &FormatError{Path: path, Reason: "empty file"}
	}

	count, dt, err := parseHeader(path, scanner.Text())
	if err != nil {
		return nil, err
	}

	values := make([]float64, 0, count)
	line := 1
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		if strings.Contains(text, ",") {
			return nil, &FormatError{
				Path:   path,
				Reason: fmt.Sprintf("line %d: expected a single column, got %q", line, text),
			}
		}

		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, &FormatError{
				Path:   path,
				Reason: fmt.Sprintf("line %d: %q is not a number", line, text),
			}
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}

	if len(values) != count {
		return nil, &FormatError{
			Path:   path,
			Reason: fmt.Sprintf("header declares %d samples, file has %d", count, len(values)),
		}
	}

	times := make([]float64, count)
	for i := range times {
		times[i] = float64(i) * dt
	}

	rec := &Record{Path: path, Dt: dt, Time: times, Value: values}

	logger.Debug("record loaded", logging.Fields{
		"samples":  rec.Len(),
		"dt":       dt,
		"duration": rec.Duration(),
	})

	return rec, nil
}

// parseHeader extracts the sample count and sampling interval from the
// record's first line. Leading fields are vendor metadata and ignored.
func parseHeader(path, header string) (count int, dt float64, err error) {
	fields := strings.Split(header, ",")
	if len(fields) < 2 {
		return 0, 0, &FormatError{
			Path:   path,
			Reason: "header needs at least a sample count and a sampling interval",
		}
	}

	countField := strings.TrimSpace(fields[len(fields)-2])
	dtField := strings.TrimSpace(fields[len(fields)-1])

	count, err = strconv.Atoi(countField)
	if err != nil {
		return 0, 0, &FormatError{
			Path:   path,
			Reason: fmt.Sprintf("sample count %q is not an integer", countField),
		}
	}
	if count < 0 {
		return 0, 0, &FormatError{
			Path:   path,
			Reason: fmt.Sprintf("negative sample count %d", count),
		}
	}

	dt, err = strconv.ParseFloat(dtField, 64)
	if err != nil {
		return 0, 0, &FormatError{
			Path:   path,
			Reason: fmt.Sprintf("sampling interval %q is not a number", dtField),
		}
	}
	if dt <= 0 {
		return 0, 0, &FormatError{
			Path:   path,
			Reason: fmt.Sprintf("sampling interval must be positive, got %v", dt),
		}
	}

	return count, dt, nil
}

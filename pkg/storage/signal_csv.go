package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/RyanBlaney/latency-benchmark-common/logging"
)

// SaveSignalCSV writes a signal as a two-column CSV with a "time,signal"
// header, one row per sample. Floats use the shortest exact representation.
func SaveSignalCSV(path string, timeGrid, signal []float64) error {
	if len(timeGrid) != len(signal) {
		return NewStoreError(path, ErrCodeFormat,
			fmt.Sprintf("time and signal lengths differ: %d vs %d", len(timeGrid), len(signal)), nil)
	}

	f, err := os.Create(path)
	if err != nil {
		return NewStoreError(path, ErrCodeWrite, "failed to create signal CSV", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"time", "signal"}); err != nil {
		return NewStoreError(path, ErrCodeWrite, "failed to write CSV header", err)
	}
	for i := range signal {
		row := []string{
			strconv.FormatFloat(timeGrid[i], 'g', -1, 64),
			strconv.FormatFloat(signal[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return NewStoreError(path, ErrCodeWrite, "failed to write CSV row", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return NewStoreError(path, ErrCodeWrite, "failed to flush CSV", err)
	}

	logging.Debug("signal saved", logging.Fields{
		"path":    path,
		"samples": len(signal),
	})
	return nil
}

// LoadSignalCSV reads a signal CSV written by SaveSignalCSV
func LoadSignalCSV(path string) (timeGrid, signal []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, NewStoreError(path, ErrCodeRead, "failed to open signal CSV", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, NewStoreError(path, ErrCodeRead, "failed to read signal CSV", err)
	}
	if len(records) == 0 || len(records[0]) != 2 {
		return nil, nil, NewStoreError(path, ErrCodeFormat, "signal CSV must have two columns", nil)
	}

	// Skip the header row
	for _, rec := range records[1:] {
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, nil, NewStoreError(path, ErrCodeFormat, "invalid time value "+rec[0], err)
		}
		s, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, nil, NewStoreError(path, ErrCodeFormat, "invalid signal value "+rec[1], err)
		}
		timeGrid = append(timeGrid, t)
		signal = append(signal, s)
	}
	return timeGrid, signal, nil
}

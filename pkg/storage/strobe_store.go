package storage

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/RyanBlaney/latency-benchmark-common/logging"
	"github.com/RyanBlaney/signal-workbench/pkg/strobe"
)

// A strobe persists as two sibling files sharing a base name:
// <base>.raw holds the complex128 samples (element count then little-endian
// real/imag float64 pairs), <base>.json holds the metadata with 2-space
// indentation. The pair is coupled only by the base name; keeping the files
// together is the caller's job.
const (
	rawExt  = ".raw"
	metaExt = ".json"
)

// SaveStrobe writes both halves of a strobe. Both writes are attempted even
// if the first fails, so a readable metadata file is never silently missing
// its data file when only one write failed.
func SaveStrobe(base string, data []complex128, meta *strobe.Metadata) error {
	rawErr := writeRaw(base+rawExt, data)
	metaErr := writeMeta(base+metaExt, meta)

	if rawErr != nil || metaErr != nil {
		err := errors.Join(rawErr, metaErr)
		logging.Error(err, "failed to save strobe", logging.Fields{"base": base})
		return err
	}

	logging.Debug("strobe saved", logging.Fields{
		"base":    base,
		"samples": len(data),
	})
	return nil
}

// LoadStrobe reads both halves back and reconstructs the buffer bit for bit
func LoadStrobe(base string) ([]complex128, *strobe.Metadata, error) {
	data, err := readRaw(base + rawExt)
	if err != nil {
		return nil, nil, err
	}
	meta, err := readMeta(base + metaExt)
	if err != nil {
		return nil, nil, err
	}
	return data, meta, nil
}

func writeRaw(path string, data []complex128) error {
	buf := make([]byte, 8+16*len(data))
	binary.LittleEndian.PutUint64(buf[0:8], uint64(len(data)))
	for i, c := range data {
		off := 8 + 16*i
		binary.LittleEndian.PutUint64(buf[off:off+8], math.Float64bits(real(c)))
		binary.LittleEndian.PutUint64(buf[off+8:off+16], math.Float64bits(imag(c)))
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return NewStoreError(path, ErrCodeWrite, "failed to write strobe data", err)
	}
	return nil
}

func readRaw(path string) ([]complex128, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, NewStoreError(path, ErrCodeRead, "failed to read strobe data", err)
	}
	if len(buf) < 8 {
		return nil, NewStoreError(path, ErrCodeFormat, "strobe data file too short", nil)
	}
	n := binary.LittleEndian.Uint64(buf[0:8])
	if uint64(len(buf)-8) != 16*n {
		return nil, NewStoreError(path, ErrCodeFormat,
			fmt.Sprintf("strobe data length mismatch: header says %d samples, file holds %d bytes", n, len(buf)-8), nil)
	}

	data := make([]complex128, n)
	for i := range data {
		off := 8 + 16*i
		re := math.Float64frombits(binary.LittleEndian.Uint64(buf[off : off+8]))
		im := math.Float64frombits(binary.LittleEndian.Uint64(buf[off+8 : off+16]))
		data[i] = complex(re, im)
	}
	return data, nil
}

func writeMeta(path string, meta *strobe.Metadata) error {
	encoded, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return NewStoreError(path, ErrCodeWrite, "failed to encode strobe metadata", err)
	}
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return NewStoreError(path, ErrCodeWrite, "failed to write strobe metadata", err)
	}
	return nil
}

func readMeta(path string) (*strobe.Metadata, error) {
	encoded, err := os.ReadFile(path)
	if err != nil {
		return nil, NewStoreError(path, ErrCodeRead, "failed to read strobe metadata", err)
	}
	var meta strobe.Metadata
	if err := json.Unmarshal(encoded, &meta); err != nil {
		return nil, NewStoreError(path, ErrCodeFormat, "failed to parse strobe metadata", err)
	}
	return &meta, nil
}

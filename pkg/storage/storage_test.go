package storage

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/signal-workbench/pkg/strobe"
)

func TestSignalCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signal.csv")

	timeGrid := []float64{0, 0.001, 0.002, 0.003}
	signal := []float64{0, 0.707, 1.0, -0.5}

	require.NoError(t, SaveSignalCSV(path, timeGrid, signal))

	gotTime, gotSignal, err := LoadSignalCSV(path)
	require.NoError(t, err)
	assert.Equal(t, timeGrid, gotTime)
	assert.Equal(t, signal, gotSignal)
}

func TestSignalCSVHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signal.csv")

	require.NoError(t, SaveSignalCSV(path, []float64{0.5}, []float64{1.5}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "time,signal", lines[0])
	assert.Equal(t, "0.5,1.5", lines[1])
}

func TestSignalCSVLengthMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signal.csv")

	err := SaveSignalCSV(path, []float64{0, 1}, []float64{0})
	require.Error(t, err)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, ErrCodeFormat, storeErr.Code)
}

func TestSignalCSVLoadMissingFile(t *testing.T) {
	_, _, err := LoadSignalCSV(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, ErrCodeRead, storeErr.Code)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestStrobeRoundTripBitIdentical(t *testing.T) {
	base := filepath.Join(t.TempDir(), "capture")

	assembler := strobe.NewAssembler(strobe.NewCompositor(strobe.NewNoiseSourceSeeded(5)))
	data, meta, err := assembler.AssembleTestStrobe()
	require.NoError(t, err)

	require.NoError(t, SaveStrobe(base, data, meta))

	gotData, gotMeta, err := LoadStrobe(base)
	require.NoError(t, err)

	require.Len(t, gotData, len(data))
	for i := range data {
		assert.Equal(t, math.Float64bits(real(data[i])), math.Float64bits(real(gotData[i])), "real part at %d", i)
		assert.Equal(t, math.Float64bits(imag(data[i])), math.Float64bits(imag(gotData[i])), "imag part at %d", i)
	}
	assert.Equal(t, meta, gotMeta)
}

func TestStrobeFilePairOnDisk(t *testing.T) {
	base := filepath.Join(t.TempDir(), "pair")

	data := []complex128{complex(1, -1), complex(0.5, 0)}
	meta := &strobe.Metadata{StrobeID: "pair", TotalLength: 2, NumRays: 1, PointsPerRay: 2, SampleRate: 1000}

	require.NoError(t, SaveStrobe(base, data, meta))

	raw, err := os.ReadFile(base + ".raw")
	require.NoError(t, err)
	// 8-byte count plus 16 bytes per sample
	assert.Len(t, raw, 8+16*2)
	assert.Equal(t, byte(2), raw[0])

	encoded, err := os.ReadFile(base + ".json")
	require.NoError(t, err)
	assert.Contains(t, string(encoded), "\"strobe_id\": \"pair\"")
}

func TestStrobeSpecialFloatValuesSurvive(t *testing.T) {
	base := filepath.Join(t.TempDir(), "special")

	data := []complex128{
		complex(math.Inf(1), math.Inf(-1)),
		complex(math.NaN(), 0),
		complex(math.Copysign(0, -1), math.SmallestNonzeroFloat64),
	}
	meta := &strobe.Metadata{StrobeID: "special", TotalLength: 3, NumRays: 1, PointsPerRay: 3, SampleRate: 1}

	require.NoError(t, SaveStrobe(base, data, meta))
	got, _, err := LoadStrobe(base)
	require.NoError(t, err)

	for i := range data {
		assert.Equal(t, math.Float64bits(real(data[i])), math.Float64bits(real(got[i])))
		assert.Equal(t, math.Float64bits(imag(data[i])), math.Float64bits(imag(got[i])))
	}
}

func TestLoadStrobeMissingData(t *testing.T) {
	_, _, err := LoadStrobe(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, ErrCodeRead, storeErr.Code)
}

func TestLoadStrobeTruncatedData(t *testing.T) {
	base := filepath.Join(t.TempDir(), "trunc")

	require.NoError(t, SaveStrobe(base, []complex128{1, 2}, &strobe.Metadata{StrobeID: "trunc"}))

	raw, err := os.ReadFile(base + ".raw")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(base+".raw", raw[:len(raw)-4], 0644))

	_, _, err = LoadStrobe(base)
	require.Error(t, err)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, ErrCodeFormat, storeErr.Code)
}

func TestStoreErrorUnwrap(t *testing.T) {
	cause := errors.New("disk gone")
	err := NewStoreError("/tmp/x", ErrCodeWrite, "write failed", cause)

	assert.Equal(t, "write failed: disk gone", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))

	bare := NewStoreError("/tmp/x", ErrCodeRead, "read failed", nil)
	assert.Equal(t, "read failed", bare.Error())
	assert.Nil(t, errors.Unwrap(bare))
}

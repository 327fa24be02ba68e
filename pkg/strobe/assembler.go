package strobe

import (
	"fmt"

	"github.com/RyanBlaney/latency-benchmark-common/logging"
)

// Assembler lays out independently generated rays into one fixed-length
// complex buffer. Rays are placed sequentially at offsets that are multiples
// of PointsPerRay; a ray whose window would run past the end of the buffer
// is dropped, not truncated, and its descriptor still records the assigned
// window. Gaps at the tail stay zero.
//
// The assembler keeps a convenience copy of the last generated strobe,
// scoped to the instance.
type Assembler struct {
	compositor *Compositor
	logger     logging.Logger

	lastParams *Parameters
	lastData   []complex128
}

// NewAssembler creates a strobe assembler
func NewAssembler(compositor *Compositor) *Assembler {
	if compositor == nil {
		compositor = NewCompositor(nil)
	}
	return &Assembler{
		compositor: compositor,
		logger: logging.WithFields(logging.Fields{
			"component": "strobe_assembler",
		}),
	}
}

// Assemble generates every ray and scatters them into the output buffer.
// A ray generation failure aborts the whole assembly; there is no
// partial-success result.
func (a *Assembler) Assemble(params Parameters) ([]complex128, *Metadata, error) {
	if err := params.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid strobe parameters: %w", err)
	}

	data := make([]complex128, params.TotalLength)
	meta := &Metadata{
		StrobeID:     params.StrobeID,
		TotalLength:  params.TotalLength,
		NumRays:      params.NumRays,
		PointsPerRay: params.PointsPerRay,
		SampleRate:   params.SampleRate,
		Rays:         make([]RayDescriptor, 0, params.NumRays),
	}

	for rayIdx, rayParams := range params.Rays {
		raySamples, err := a.compositor.BuildRay(rayParams, params.PointsPerRay, params.SampleRate)
		if err != nil {
			return nil, nil, fmt.Errorf("strobe %s: %w", params.StrobeID, err)
		}

		start := rayIdx * params.PointsPerRay
		end := start + params.PointsPerRay
		written := placeRay(data, raySamples, start, end)
		if !written {
			a.logger.Warn("ray window exceeds strobe buffer, dropped", logging.Fields{
				"strobe_id":    params.StrobeID,
				"ray_id":       rayParams.RayID,
				"start_index":  start,
				"end_index":    end,
				"total_length": params.TotalLength,
			})
		}

		meta.Rays = append(meta.Rays, RayDescriptor{
			RayID:      rayParams.RayID,
			SignalType: rayParams.SignalType,
			Frequency:  rayParams.Frequency,
			Amplitude:  rayParams.Amplitude,
			Phase:      rayParams.Phase,
			StartIndex: start,
			EndIndex:   end,
			DataLength: len(raySamples),
		})
	}

	a.lastParams = &params
	a.lastData = data

	a.logger.Debug("assembled strobe", logging.Fields{
		"strobe_id":    params.StrobeID,
		"num_rays":     params.NumRays,
		"total_length": params.TotalLength,
	})

	return data, meta, nil
}

// placeRay writes samples into buf[start:end] and reports whether the write
// happened. Placement is all-or-nothing: a window past the end of the buffer
// means the ray is skipped entirely.
func placeRay(buf, samples []complex128, start, end int) bool {
	if start < 0 || end > len(buf) {
		return false
	}
	copy(buf[start:end], samples)
	return true
}

// Last returns the cached parameters and buffer from the most recent Assemble
func (a *Assembler) Last() (*Parameters, []complex128) {
	return a.lastParams, a.lastData
}

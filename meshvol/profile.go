package meshvol

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

// A VolumeProfile tabulates the cross-sectional areas of a mesh at
// evenly spaced elevations over its full vertical extent, so that
// enclosed volumes at arbitrary cutoffs can be interpolated without
// re-slicing the mesh.
type VolumeProfile struct {
	// MinElevation and MaxElevation are the vertical bounds of the
	// profiled mesh.
	MinElevation float64
	MaxElevation float64

	// Areas holds the cross-sectional areas at evenly spaced
	// elevations from MinElevation to MaxElevation, inclusive.
	Areas []float64
}

// Profile tabulates cross-section areas across the mesh's whole
// vertical extent using the estimator's settings.
//
// The profile's Volume agrees exactly with Estimate at the top of the
// mesh, and everywhere else to within the resolution of one band. A
// mesh with no geometry gives nil.
func (v *VolumeEstimator) Profile(m *Mesh) *VolumeProfile {
	elevations, areas := v.sample(m, math.Inf(1))
	if len(elevations) == 0 {
		return nil
	}
	return &VolumeProfile{
		MinElevation: elevations[0],
		MaxElevation: elevations[len(elevations)-1],
		Areas:        areas,
	}
}

// NumSamples returns the number of tabulated area samples.
func (p *VolumeProfile) NumSamples() int {
	return len(p.Areas)
}

// Elevation returns the elevation of the i-th area sample.
func (p *VolumeProfile) Elevation(i int) float64 {
	if i == len(p.Areas)-1 {
		return p.MaxElevation
	}
	height := (p.MaxElevation - p.MinElevation) / float64(len(p.Areas)-1)
	return p.MinElevation + float64(i)*height
}

// Volume computes the enclosed volume from the bottom of the profiled
// mesh up to the given elevation, interpolating areas within the band
// the elevation falls in. Elevations below the profile give 0, and
// elevations above it give the full volume.
func (p *VolumeProfile) Volume(elevation float64) float64 {
	if len(p.Areas) < 2 || elevation < p.MinElevation {
		return 0
	}
	if elevation > p.MaxElevation {
		elevation = p.MaxElevation
	}
	var total float64
	for i := 0; i+1 < len(p.Areas); i++ {
		lo, hi := p.Elevation(i), p.Elevation(i+1)
		if elevation >= hi {
			total += (hi - lo) * (p.Areas[i] + p.Areas[i+1]) / 2
			continue
		}
		frac := 0.0
		if hi > lo {
			frac = (elevation - lo) / (hi - lo)
		}
		cutArea := p.Areas[i] + (p.Areas[i+1]-p.Areas[i])*frac
		total += (elevation - lo) * (p.Areas[i] + cutArea) / 2
		break
	}
	return total
}

// WriteVolumeProfile serializes a profile in a binary format.
func WriteVolumeProfile(w io.Writer, p *VolumeProfile) error {
	bounds := [2]float64{p.MinElevation, p.MaxElevation}
	if err := binary.Write(w, binary.LittleEndian, bounds); err != nil {
		return errors.Wrap(err, "write volume profile")
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(p.Areas))); err != nil {
		return errors.Wrap(err, "write volume profile")
	}
	if err := binary.Write(w, binary.LittleEndian, p.Areas); err != nil {
		return errors.Wrap(err, "write volume profile")
	}
	return nil
}

// profileReadChunk bounds how many samples ReadVolumeProfile reads at
// a time.
const profileReadChunk = 4096

// ReadVolumeProfile reads a profile written by WriteVolumeProfile.
// Samples are read in bounded chunks, so a stream whose declared
// sample count exceeds its payload fails with an error instead of a
// huge allocation.
func ReadVolumeProfile(r io.Reader) (*VolumeProfile, error) {
	var bounds [2]float64
	if err := binary.Read(r, binary.LittleEndian, &bounds); err != nil {
		return nil, errors.Wrap(err, "read volume profile")
	}
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, errors.Wrap(err, "read volume profile")
	}
	chunk := int64(count)
	if chunk > profileReadChunk {
		chunk = profileReadChunk
	}
	areas := make([]float64, 0, chunk)
	buf := make([]float64, chunk)
	for remaining := int64(count); remaining > 0; {
		n := int64(len(buf))
		if n > remaining {
			n = remaining
		}
		if err := binary.Read(r, binary.LittleEndian, buf[:n]); err != nil {
			return nil, errors.Wrap(err, "read volume profile")
		}
		areas = append(areas, buf[:n]...)
		remaining -= n
	}
	return &VolumeProfile{
		MinElevation: bounds[0],
		MaxElevation: bounds[1],
		Areas:        areas,
	}, nil
}

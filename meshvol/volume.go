package meshvol

import (
	"math"

	"github.com/unixpickle/essentials"
)

// DefaultSliceCount is the number of integration bands used by
// EstimateVolume and by a VolumeEstimator whose Slices field is zero.
const DefaultSliceCount = 100

// EstimateVolume computes the volume enclosed by the mesh surface from
// its lowest point up to the given elevation, using default settings.
//
// See VolumeEstimator.Estimate.
func EstimateVolume(m *Mesh, elevation float64) float64 {
	return (&VolumeEstimator{}).Estimate(m, elevation)
}

// A VolumeEstimator integrates horizontal cross-sectional area over
// elevation to measure the volume enclosed by a mesh surface.
type VolumeEstimator struct {
	// Slices is the number of trapezoidal integration bands between
	// the bottom of the mesh and the cutoff elevation. More slices
	// track area changes more closely at the cost of more
	// cross-section evaluations. If it is 0 or negative,
	// DefaultSliceCount is used.
	Slices int

	// Concurrency is the maximum number of Goroutines to use for
	// cross-section evaluation. If it is 0, GOMAXPROCS is used.
	Concurrency int

	// Area evaluates the cross-sectional area at one elevation.
	// If it is nil, CrossSectionArea is used.
	Area SectionFunc
}

// Estimate computes the volume enclosed by the mesh surface between
// the bottom of the mesh and the given elevation.
//
// Elevations above the top of the mesh are clamped to it, so the
// result never exceeds the estimate for the whole surface. A mesh with
// no geometry, or an elevation below the bottom of the mesh, gives 0.
//
// Results are deterministic for fixed arguments regardless of
// Concurrency: the slice areas are evaluated in parallel, but summed
// in a fixed order.
func (v *VolumeEstimator) Estimate(m *Mesh, elevation float64) float64 {
	elevations, areas := v.sample(m, elevation)
	var total float64
	for i := 0; i+1 < len(elevations); i++ {
		total += (elevations[i+1] - elevations[i]) * (areas[i] + areas[i+1]) / 2
	}
	return total
}

// sample measures cross-section areas at evenly spaced elevations from
// the bottom of the mesh to the clamped cutoff, inclusive. Degenerate
// inputs give nil slices.
func (v *VolumeEstimator) sample(m *Mesh, elevation float64) (elevations, areas []float64) {
	if m == nil || len(m.Positions) == 0 || len(m.Indices) == 0 {
		return nil, nil
	}
	bottom := m.Min().Z
	if elevation < bottom {
		return nil, nil
	}
	top := math.Min(elevation, m.Max().Z)

	numSlices := v.Slices
	if numSlices <= 0 {
		numSlices = DefaultSliceCount
	}
	areaFunc := v.Area
	if areaFunc == nil {
		areaFunc = CrossSectionArea
	}

	height := (top - bottom) / float64(numSlices)
	elevations = make([]float64, numSlices+1)
	for i := range elevations {
		elevations[i] = bottom + float64(i)*height
	}
	elevations[numSlices] = top

	areas = make([]float64, len(elevations))
	essentials.ConcurrentMap(v.Concurrency, len(areas), func(i int) {
		areas[i] = areaFunc(m, elevations[i])
	})
	return elevations, areas
}

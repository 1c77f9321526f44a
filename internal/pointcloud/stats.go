package pointcloud

import (
	"fmt"

	"github.com/seqsense/pcgol/pc"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/robostack-edu/envcheck/internal/model"
)

// Stats computes the axis-aligned bounding box and the centroid of a
// point cloud.
//
// Coordinates are widened to float64 before aggregation so the mean does
// not accumulate float32 rounding error over large clouds. Returns
// ErrEmptyCloud for a nil or zero-point cloud.
func Stats(pp *pc.PointCloud) (model.CloudStats, error) {
	if pp == nil || pp.Points == 0 {
		return model.CloudStats{}, ErrEmptyCloud
	}

	it, err := pp.Vec3Iterator()
	if err != nil {
		return model.CloudStats{}, fmt.Errorf("point cloud has no x/y/z fields: %w", err)
	}

	// One slice per axis, sized up front: gonum's floats/stat helpers
	// operate on plain []float64 columns.
	var axes [3][]float64
	for a := range axes {
		axes[a] = make([]float64, 0, pp.Points)
	}
	for ; it.IsValid(); it.Incr() {
		v := it.Vec3()
		for a := 0; a < 3; a++ {
			axes[a] = append(axes[a], float64(v[a]))
		}
	}
	if len(axes[0]) == 0 {
		return model.CloudStats{}, ErrEmptyCloud
	}

	stats := model.CloudStats{Points: len(axes[0])}
	for a := 0; a < 3; a++ {
		stats.Min[a] = floats.Min(axes[a])
		stats.Max[a] = floats.Max(axes[a])
		stats.Centroid[a] = stat.Mean(axes[a], nil)
	}
	return stats, nil
}

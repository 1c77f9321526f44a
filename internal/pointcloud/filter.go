package pointcloud

import (
	"fmt"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

// FilterMinRange prunes points closer to the origin than a squared-range
// threshold: a point survives when x²+y²+z² > minSquaredRange.
//
// The filter is deterministic and order-preserving, so repeated runs over
// the same input produce byte-identical output. The result is a fresh
// x/y/z float32 cloud — extra channels of the input (intensity, rgb) are
// not carried over, matching the derived-file contract of the checker.
func FilterMinRange(pp *pc.PointCloud, minSquaredRange float64) (*pc.PointCloud, error) {
	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, fmt.Errorf("point cloud has no x/y/z fields: %w", err)
	}

	var kept []mat.Vec3
	for ; it.IsValid(); it.Incr() {
		v := it.Vec3()
		sq := float64(v[0])*float64(v[0]) + float64(v[1])*float64(v[1]) + float64(v[2])*float64(v[2])
		if sq > minSquaredRange {
			kept = append(kept, v)
		}
	}

	out := newXYZCloud(len(kept))
	if len(kept) > 0 {
		oit, err := out.Vec3Iterator()
		if err != nil {
			return nil, fmt.Errorf("failed to build filtered cloud: %w", err)
		}
		for _, v := range kept {
			oit.SetVec3(v)
			oit.Incr()
		}
	}
	return out, nil
}

// newXYZCloud allocates an unorganized (height 1) cloud with bare
// x/y/z float32 fields and capacity for n points.
func newXYZCloud(n int) *pc.PointCloud {
	return &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Version:   0.7,
			Fields:    []string{"x", "y", "z"},
			Size:      []int{4, 4, 4},
			Type:      []string{"F", "F", "F"},
			Count:     []int{1, 1, 1},
			Width:     n,
			Height:    1,
			Viewpoint: []float32{0, 0, 0, 1, 0, 0, 0},
		},
		Points: n,
		Data:   make([]byte, n*3*4),
	}
}

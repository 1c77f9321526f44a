// Package pointcloud provides PCD file I/O and descriptive statistics for
// the point-cloud checker.
//
// File encoding and decoding are delegated to github.com/seqsense/pcgol,
// which handles PCD v0.7 in ascii, binary, and binary_compressed form.
// This package layers the checker-specific operations on top: empty-cloud
// detection, bounding box and centroid statistics, and the deterministic
// minimum-range filter applied before writing the derived output file.
package pointcloud

import (
	"errors"
	"fmt"
	"os"

	"github.com/seqsense/pcgol/pc"
)

// ErrEmptyCloud marks a structurally valid PCD file that contains zero
// points. An empty sample indicates broken course data, so callers treat
// it the same as an unreadable file.
var ErrEmptyCloud = errors.New("point cloud contains no points")

// Load reads and decodes a PCD file from disk.
//
// Errors name the offending path and wrap the underlying cause: a missing
// or unreadable file, a malformed PCD stream, or ErrEmptyCloud for a
// zero-point cloud.
func Load(path string) (*pc.PointCloud, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open point cloud %s: %w", path, err)
	}
	defer f.Close()

	pp, err := pc.Unmarshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode point cloud %s: %w", path, err)
	}
	if pp.Points == 0 {
		return nil, fmt.Errorf("point cloud %s: %w", path, ErrEmptyCloud)
	}
	return pp, nil
}

// Save encodes a point cloud to the given path.
//
// os.Create truncates an existing file, so rerunning the checker
// overwrites the previous derived output instead of erroring. The Close
// error is checked because PCD encoding is buffered through the OS —
// a full disk surfaces there.
func Save(path string, pp *pc.PointCloud) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}

	if err := pc.Marshal(pp, f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode point cloud to %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

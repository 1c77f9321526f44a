package probe

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"

	"github.com/robostack-edu/envcheck/internal/checkup"
	"github.com/robostack-edu/envcheck/internal/model"
	"github.com/robostack-edu/envcheck/internal/pointcloud"
)

// restoreHint builds the remediation for a damaged bundled asset.
func restoreHint(path string) string {
	return fmt.Sprintf("re-clone the repository or run `git checkout -- %s`", path)
}

// SampleImage returns a check that decodes the bundled PNG sample. The
// decode goes through image/png rather than a bare existence test so a
// truncated or corrupted file is caught, not just a deleted one.
func SampleImage(path string) checkup.Check {
	return checkup.Check{
		Name: "sample image",
		Run: func(ctx context.Context) model.CheckResult {
			f, err := os.Open(path)
			if err != nil {
				return model.Fail("sample image", restoreHint(path), "sample image not readable at %s: %v", path, err)
			}
			defer f.Close()

			img, err := png.Decode(f)
			if err != nil {
				return model.Fail("sample image", restoreHint(path), "failed to decode %s: %v", path, err)
			}

			bounds := img.Bounds()
			return model.Pass("sample image", "decoded %s (%dx%d)", path, bounds.Dx(), bounds.Dy())
		},
	}
}

// SampleCloud returns a check that loads the bundled PCD sample and
// verifies it is non-empty. It shares the loader with the pointcloud
// subcommand, so a pass here means the full I/O checker has its input.
func SampleCloud(path string) checkup.Check {
	return checkup.Check{
		Name: "sample point cloud",
		Run: func(ctx context.Context) model.CheckResult {
			pp, err := pointcloud.Load(path)
			if err != nil {
				if errors.Is(err, pointcloud.ErrEmptyCloud) {
					return model.Fail("sample point cloud", restoreHint(path), "%s read but contained 0 points", path)
				}
				return model.Fail("sample point cloud", restoreHint(path), "%v", err)
			}
			return model.Pass("sample point cloud", "loaded %s with %d points", path, pp.Points)
		},
	}
}

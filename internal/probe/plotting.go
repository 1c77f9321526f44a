package probe

import (
	"context"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/robostack-edu/envcheck/internal/checkup"
	"github.com/robostack-edu/envcheck/internal/model"
)

// PlotRender returns a check that renders a minimal line plot to a PNG
// file and verifies the file came out non-empty. This exercises the whole
// rendering stack — fonts, rasterization, PNG encoding — which is the
// part of a plotting toolchain that breaks on misconfigured machines.
//
// dir is the scratch directory for the probe image; an empty string means
// the system temp directory. The file is removed after the check.
func PlotRender(dir string) checkup.Check {
	return checkup.Check{
		Name: "plot rendering",
		Run: func(ctx context.Context) model.CheckResult {
			if dir == "" {
				dir = os.TempDir()
			}

			p := plot.New()
			p.Title.Text = "envcheck render probe"
			p.X.Label.Text = "x"
			p.Y.Label.Text = "y"

			line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
			if err != nil {
				return model.Fail("plot rendering", "", "failed to build probe line: %v", err)
			}
			line.Width = vg.Points(1)
			p.Add(line)

			target := filepath.Join(dir, "envcheck_plot_probe.png")
			defer os.Remove(target)

			if err := p.Save(4*vg.Inch, 3*vg.Inch, target); err != nil {
				return model.Fail("plot rendering", "", "failed to render probe plot: %v", err)
			}

			info, err := os.Stat(target)
			if err != nil || info.Size() == 0 {
				return model.Fail("plot rendering", "", "probe plot was not written to %s", target)
			}
			return model.Pass("plot rendering", "rendered %d byte probe plot", info.Size())
		},
	}
}

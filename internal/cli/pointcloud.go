package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robostack-edu/envcheck/internal/manifest"
	"github.com/robostack-edu/envcheck/internal/model"
	"github.com/robostack-edu/envcheck/internal/pointcloud"
)

// pointCloudFlags holds the command-line flags for the pointcloud command.
type pointCloudFlags struct {
	input  string
	output string
}

// pointCloudOutput is the JSON shape printed on success with --json.
type pointCloudOutput struct {
	Input      string     `json:"input"`
	Points     int        `json:"points"`
	Min        [3]float64 `json:"min"`
	Max        [3]float64 `json:"max"`
	Centroid   [3]float64 `json:"centroid"`
	KeptPoints int        `json:"keptPoints"`
	Output     string     `json:"output"`
}

// NewPointCloudCommand creates the 'pointcloud' subcommand that runs the
// point-cloud I/O round trip against the sample asset.
func NewPointCloudCommand() *cobra.Command {
	flags := &pointCloudFlags{}

	cmd := &cobra.Command{
		Use:   "pointcloud",
		Short: "Verify point-cloud I/O against the sample PCD asset",
		Long: `Pointcloud loads the sample PCD file, computes its bounding box and
centroid, prunes points within the minimum-range threshold, and writes
the filtered cloud back to disk, overwriting any output from a previous
run.

The command is the end-to-end proof that the point-cloud toolchain on
this machine can read, process, and write sensor data. On any failure
the exit code is non-zero and no output file is produced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPointCloud(flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "Input PCD path (default: sample asset from the manifest)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output PCD path (default: input path with a _filtered suffix)")

	return cmd
}

// runPointCloud implements the pointcloud command: load, measure,
// filter, save. Each stage maps its failures to a distinct exit code so
// scripted callers can tell a broken asset from a full disk.
func runPointCloud(flags *pointCloudFlags) error {
	m, err := manifest.Load(configPath)
	if err != nil {
		return err
	}

	input := flags.input
	if input == "" {
		input = m.SamplePointCloud
	}
	output := flags.output
	if output == "" {
		output = m.FilteredOutput
	}
	if output == "" {
		output = derivedOutputPath(input)
	}

	VerboseLog("Loading point cloud from %s", input)
	pp, err := pointcloud.Load(input)
	if err != nil {
		return model.WrapCLIError(
			model.ExitAssetError,
			"sample point cloud is unusable",
			err,
		)
	}

	stats, err := pointcloud.Stats(pp)
	if err != nil {
		return model.WrapCLIError(
			model.ExitAssetError,
			"failed to measure point cloud",
			err,
		)
	}
	if err := stats.Validate(); err != nil {
		return model.WrapCLIError(
			model.ExitGeneralError,
			"computed statistics are inconsistent",
			err,
		)
	}

	VerboseLog("Filtering with squared-range threshold %g", m.MinSquaredRange)
	filtered, err := pointcloud.FilterMinRange(pp, m.MinSquaredRange)
	if err != nil {
		return model.WrapCLIError(
			model.ExitGeneralError,
			"failed to filter point cloud",
			err,
		)
	}

	if err := pointcloud.Save(output, filtered); err != nil {
		return model.WrapCLIError(
			model.ExitOutputError,
			fmt.Sprintf("failed to write filtered cloud to %s", output),
			err,
		)
	}

	if IsJSONOutput() {
		return printPointCloudJSON(pointCloudOutput{
			Input:      input,
			Points:     stats.Points,
			Min:        stats.Min,
			Max:        stats.Max,
			Centroid:   stats.Centroid,
			KeptPoints: filtered.Points,
			Output:     output,
		})
	}

	printPointCloudText(input, output, stats, filtered.Points)
	return nil
}

// printPointCloudText prints the round-trip summary in human-readable
// text format.
func printPointCloudText(input, output string, stats model.CloudStats, kept int) {
	fmt.Printf("Loaded %d points from %s\n", stats.Points, input)
	fmt.Printf("  Min:      [%.4f, %.4f, %.4f]\n", stats.Min[0], stats.Min[1], stats.Min[2])
	fmt.Printf("  Max:      [%.4f, %.4f, %.4f]\n", stats.Max[0], stats.Max[1], stats.Max[2])
	fmt.Printf("  Centroid: [%.4f, %.4f, %.4f]\n", stats.Centroid[0], stats.Centroid[1], stats.Centroid[2])
	fmt.Printf("Wrote %d points (pruned %d) to %s\n", kept, stats.Points-kept, output)
}

// printPointCloudJSON prints the round-trip summary as indented JSON.
func printPointCloudJSON(out pointCloudOutput) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result as JSON: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}

// derivedOutputPath places the filtered cloud next to the input with a
// "_filtered" suffix before the extension, so reruns overwrite the same
// derived file instead of piling up copies.
func derivedOutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_filtered" + ext
}

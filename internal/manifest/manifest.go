// Package manifest handles loading of the envcheck check manifest.
//
// The manifest describes what the environment checker should verify:
// the minimum Python interpreter version, the CLI tools that must be on
// PATH, the bundled sample asset paths, and the point-cloud filter
// threshold. It is a JSONC (JSON with Comments) file so course staff can
// annotate entries for students; this package uses github.com/tidwall/jsonc
// to strip comments before parsing with the standard encoding/json library.
//
// A manifest file is optional. When the default path does not exist, the
// built-in defaults are used as-is. When a file is present, its fields are
// merged over the defaults so partial manifests stay valid.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/robostack-edu/envcheck/internal/model"
)

// DefaultPath is the manifest location probed when no --config flag is
// given. It is resolved relative to the working directory, which for the
// course checklist is the repository root.
const DefaultPath = "envcheck.jsonc"

// ToolRequirement describes one external CLI tool that must be
// discoverable on the execution PATH.
type ToolRequirement struct {
	// Name is the binary name looked up on PATH (e.g., "ros2").
	Name string `json:"name"`

	// Remediation is the suggested install/source step shown when the
	// tool is missing.
	Remediation string `json:"remediation,omitempty"`

	// Optional marks tools whose absence produces a warn verdict
	// instead of a fail verdict.
	Optional bool `json:"optional,omitempty"`
}

// Manifest is the parsed check manifest. Zero-valued fields fall back to
// the built-in defaults during Load.
type Manifest struct {
	// PythonMin is the minimum accepted Python interpreter version,
	// in "major.minor" form.
	PythonMin string `json:"pythonMin,omitempty"`

	// Tools lists the external CLI tools to look up on PATH.
	Tools []ToolRequirement `json:"tools,omitempty"`

	// SampleImage is the path of the bundled sample image asset.
	SampleImage string `json:"sampleImage,omitempty"`

	// SamplePointCloud is the path of the bundled sample PCD asset.
	SamplePointCloud string `json:"samplePointCloud,omitempty"`

	// FilteredOutput is the destination path for the derived point
	// cloud. Empty means "derive from the input path" (see OutputPath
	// in the pointcloud command).
	FilteredOutput string `json:"filteredOutput,omitempty"`

	// MinSquaredRange is the point-cloud filter threshold: points with
	// x²+y²+z² at or below this value are pruned.
	MinSquaredRange float64 `json:"minSquaredRange,omitempty"`
}

// Default returns the built-in manifest used when no file is present.
//
// The tool list covers the two required external CLI tools of the course
// toolchain (ros2 and colcon) plus the optional container runtime used by
// students who run ROS 2 inside Docker.
func Default() *Manifest {
	return &Manifest{
		PythonMin: "3.10",
		Tools: []ToolRequirement{
			{
				Name:        "ros2",
				Remediation: "source /opt/ros/humble/setup.bash or add the ROS 2 bin directory to PATH",
			},
			{
				Name:        "colcon",
				Remediation: "sudo apt install python3-colcon-common-extensions",
			},
			{
				Name:        "docker",
				Remediation: "install Docker Engine (https://docs.docker.com/engine/install/ubuntu/)",
				Optional:    true,
			},
		},
		SampleImage:      "data/sample_image.png",
		SamplePointCloud: "data/sample_pointcloud.pcd",
		MinSquaredRange:  0.0005,
	}
}

// Load reads and parses a manifest file, merging it over the defaults.
//
// Path handling:
//   - path == "": probe DefaultPath; if absent, return Default() without
//     error (the manifest file is optional).
//   - explicit path: the file must exist and parse; otherwise a CLIError
//     with ExitManifestError is returned.
//
// Unknown JSON fields are silently ignored, which keeps old binaries
// compatible with newer manifests.
func Load(path string) (*Manifest, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			// No manifest file — run with the built-in check list.
			return Default(), nil
		}
		return nil, model.WrapCLIError(
			model.ExitManifestError,
			fmt.Sprintf("check manifest not readable: %s", path),
			err,
		)
	}

	// Strip JSONC comments (// and /* */) and trailing commas before
	// parsing. Manifests shipped with the course material are commented
	// for students, so plain encoding/json would reject them.
	cleanJSON := jsonc.ToJSON(data)

	var m Manifest
	if err := json.Unmarshal(cleanJSON, &m); err != nil {
		return nil, model.WrapCLIError(
			model.ExitManifestError,
			fmt.Sprintf("failed to parse check manifest at %s", path),
			err,
		)
	}

	return merge(Default(), &m), nil
}

// merge overlays the non-zero fields of override onto base and returns
// base. The tool list is replaced wholesale when the override defines
// one — per-tool merging would make it impossible to drop a default tool.
func merge(base, override *Manifest) *Manifest {
	if override.PythonMin != "" {
		base.PythonMin = override.PythonMin
	}
	if len(override.Tools) > 0 {
		base.Tools = override.Tools
	}
	if override.SampleImage != "" {
		base.SampleImage = override.SampleImage
	}
	if override.SamplePointCloud != "" {
		base.SamplePointCloud = override.SamplePointCloud
	}
	if override.FilteredOutput != "" {
		base.FilteredOutput = override.FilteredOutput
	}
	if override.MinSquaredRange > 0 {
		base.MinSquaredRange = override.MinSquaredRange
	}
	return base
}

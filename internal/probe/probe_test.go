package probe

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robostack-edu/envcheck/internal/manifest"
	"github.com/robostack-edu/envcheck/internal/model"
)

func TestSnapshot(t *testing.T) {
	result := Snapshot().Run(context.Background())

	assert.Equal(t, model.StatusPass, result.Status)
	assert.Contains(t, result.Message, "goVersion")
	assert.Contains(t, result.Message, "platform")
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input    string
		major    int
		minor    int
		hasError bool
	}{
		{"3.10", 3, 10, false},
		{"3.10.12", 3, 10, false},
		{"3.8.0", 3, 8, false},
		{" 3.11 ", 3, 11, false},
		{"3", 0, 0, true},
		{"", 0, 0, true},
		{"x.y", 0, 0, true},
		{"3.y", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			major, minor, err := parseVersion(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.major, major)
				assert.Equal(t, tt.minor, minor)
			}
		})
	}
}

// TestPythonVersion_BadManifestFloor verifies an unparseable minimum
// version from the manifest is reported as a failure, not a crash.
func TestPythonVersion_BadManifestFloor(t *testing.T) {
	result := PythonVersion("not-a-version").Run(context.Background())

	assert.Equal(t, model.StatusFail, result.Status)
	assert.Contains(t, result.Message, "not-a-version")
}

// TestPythonVersion_Probe exercises the real interpreter when one is
// available. Any Python 3.x satisfies a floor of 3.0, so the verdict is
// deterministic on machines that have python3 at all.
func TestPythonVersion_Probe(t *testing.T) {
	if _, err := exec.LookPath("python3"); err != nil {
		t.Skip("python3 not on PATH")
	}

	result := PythonVersion("3.0").Run(context.Background())
	assert.Equal(t, model.StatusPass, result.Status)
	assert.Contains(t, result.Message, "Python version OK")
}

// TestPythonVersion_Missing points the probe at an empty PATH so the
// interpreter lookup fails, and verifies the remediation survives.
func TestPythonVersion_Missing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	result := PythonVersion("3.10").Run(context.Background())
	assert.Equal(t, model.StatusFail, result.Status)
	assert.Equal(t, pythonRemediation, result.Remediation)
}

// fakeTool drops an executable stub into dir so exec.LookPath can
// resolve it.
func fakeTool(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755))
}

func TestToolLookup(t *testing.T) {
	dir := t.TempDir()
	fakeTool(t, dir, "ros2")
	t.Setenv("PATH", dir)

	tests := []struct {
		name     string
		tool     manifest.ToolRequirement
		expected model.CheckStatus
	}{
		{
			name:     "present tool passes",
			tool:     manifest.ToolRequirement{Name: "ros2"},
			expected: model.StatusPass,
		},
		{
			name:     "missing required tool fails",
			tool:     manifest.ToolRequirement{Name: "colcon", Remediation: "sudo apt install python3-colcon-common-extensions"},
			expected: model.StatusFail,
		},
		{
			name:     "missing optional tool warns",
			tool:     manifest.ToolRequirement{Name: "docker", Remediation: "install Docker Engine", Optional: true},
			expected: model.StatusWarn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToolLookup(tt.tool).Run(context.Background())
			assert.Equal(t, tt.expected, result.Status)
			if tt.expected != model.StatusPass {
				assert.Equal(t, tt.tool.Remediation, result.Remediation)
			}
		})
	}
}

func TestLinearAlgebra(t *testing.T) {
	result := LinearAlgebra().Run(context.Background())
	assert.Equal(t, model.StatusPass, result.Status)
}

func TestFFT(t *testing.T) {
	result := FFT().Run(context.Background())
	assert.Equal(t, model.StatusPass, result.Status)
	assert.Contains(t, result.Message, "finite coefficients")
}

// TestPlotRender verifies the rendering probe passes and cleans up its
// scratch file.
func TestPlotRender(t *testing.T) {
	dir := t.TempDir()

	result := PlotRender(dir).Run(context.Background())
	require.Equal(t, model.StatusPass, result.Status, "message: %s", result.Message)

	_, err := os.Stat(filepath.Join(dir, "envcheck_plot_probe.png"))
	assert.True(t, os.IsNotExist(err), "probe image should be removed after the check")
}

func TestSampleImage(t *testing.T) {
	t.Run("valid png passes", func(t *testing.T) {
		result := SampleImage(filepath.Join("testdata", "sample_image.png")).Run(context.Background())
		require.Equal(t, model.StatusPass, result.Status, "message: %s", result.Message)
		assert.Contains(t, result.Message, "decoded")
	})

	t.Run("missing file fails with restore hint", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gone.png")
		result := SampleImage(path).Run(context.Background())
		assert.Equal(t, model.StatusFail, result.Status)
		assert.Contains(t, result.Message, path)
		assert.Contains(t, result.Remediation, "git checkout")
	})

	t.Run("corrupt file fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "junk.png")
		require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))
		result := SampleImage(path).Run(context.Background())
		assert.Equal(t, model.StatusFail, result.Status)
	})
}

func TestSampleCloud(t *testing.T) {
	t.Run("valid sample passes", func(t *testing.T) {
		result := SampleCloud(filepath.Join("testdata", "sample_pointcloud.pcd")).Run(context.Background())
		require.Equal(t, model.StatusPass, result.Status, "message: %s", result.Message)
		assert.Contains(t, result.Message, "points")
	})

	t.Run("missing file fails", func(t *testing.T) {
		result := SampleCloud(filepath.Join(t.TempDir(), "gone.pcd")).Run(context.Background())
		assert.Equal(t, model.StatusFail, result.Status)
		assert.Contains(t, result.Remediation, "git checkout")
	})
}

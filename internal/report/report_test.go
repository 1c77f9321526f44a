package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/robostack-edu/envcheck/internal/model"
)

func sampleReport() *model.Report {
	return &model.Report{
		GeneratedAt: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
		Platform:    "linux/amd64",
		Results: []model.CheckResult{
			model.Pass("python", "Python version OK: 3.10.12"),
			model.Warn("container runtime", "install Docker Engine", "docker socket not found"),
			model.Fail("tool: colcon", "sudo apt install python3-colcon-common-extensions", "required tool \"colcon\" not found on PATH"),
		},
	}
}

// TestRenderText_Failure verifies the per-check lines, the remediation
// lines, and the aggregate failure verdict.
func TestRenderText_Failure(t *testing.T) {
	var buf bytes.Buffer
	RenderText(&buf, sampleReport())
	out := buf.String()

	assert.Contains(t, out, "[PASS] python: Python version OK: 3.10.12")
	assert.Contains(t, out, "[WARN] container runtime: docker socket not found")
	assert.Contains(t, out, "[FAIL] tool: colcon:")
	assert.Contains(t, out, "fix: sudo apt install python3-colcon-common-extensions")
	assert.Contains(t, out, "Environment check failed (1 issue, 1 passed, 1 warnings).")
	assert.NotContains(t, out, "All checks passed")
}

// TestRenderText_Success verifies the success verdict line required by
// the checker contract, with and without warnings.
func TestRenderText_Success(t *testing.T) {
	clean := &model.Report{Results: []model.CheckResult{
		model.Pass("a", "ok"),
		model.Pass("b", "ok"),
	}}

	var buf bytes.Buffer
	RenderText(&buf, clean)
	assert.Contains(t, buf.String(), "All checks passed (2 passed).")

	withWarn := &model.Report{Results: []model.CheckResult{
		model.Pass("a", "ok"),
		model.Warn("b", "fix", "missing optional"),
	}}

	buf.Reset()
	RenderText(&buf, withWarn)
	assert.Contains(t, buf.String(), "All checks passed (1 passed, 1 warnings).")
}

// TestRenderText_NoFixLineForPass verifies remediation lines only appear
// for warn/fail verdicts.
func TestRenderText_NoFixLineForPass(t *testing.T) {
	rep := &model.Report{Results: []model.CheckResult{
		{Name: "a", Status: model.StatusPass, Message: "ok", Remediation: "should not print"},
	}}

	var buf bytes.Buffer
	RenderText(&buf, rep)
	assert.NotContains(t, buf.String(), "fix:")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, sampleReport()))

	var decoded model.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Results, 3)
	assert.Equal(t, "linux/amd64", decoded.Platform)
	assert.Equal(t, model.StatusFail, decoded.Results[2].Status)
}

// TestWrite verifies the YAML report round-trips and that a rerun
// overwrites the previous report file.
func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")

	require.NoError(t, Write(path, sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded model.Report
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Len(t, decoded.Results, 3)
	assert.Equal(t, "python", decoded.Results[0].Name)

	// Second run with a smaller report must replace, not append.
	small := &model.Report{Results: []model.CheckResult{model.Pass("only", "ok")}}
	require.NoError(t, Write(path, small))

	data, err = os.ReadFile(path)
	require.NoError(t, err)

	var rewritten model.Report
	require.NoError(t, yaml.Unmarshal(data, &rewritten))
	assert.Len(t, rewritten.Results, 1)
}

// TestWrite_BadPath verifies the write failure is reported with the
// destination path and the output-error exit code.
func TestWrite_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "report.yaml")

	err := Write(path, sampleReport())
	require.Error(t, err)

	cliErr, ok := err.(*model.CLIError)
	require.True(t, ok)
	assert.Equal(t, model.ExitOutputError, cliErr.Code)
	assert.Contains(t, cliErr.Message, path)
}

package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/robostack-edu/envcheck/internal/checkup"
	"github.com/robostack-edu/envcheck/internal/manifest"
	"github.com/robostack-edu/envcheck/internal/model"
)

// pythonProbeTimeout bounds the `python3 --version` invocation. A healthy
// interpreter answers in milliseconds; anything slower than this is as
// good as broken for the course tooling.
const pythonProbeTimeout = 10 * time.Second

// pythonRemediation is the fix suggested for a missing or outdated
// interpreter. Ubuntu 22.04 ships Python 3.10, so a stock install passes.
const pythonRemediation = "install Python 3.10 or newer (Ubuntu 22.04 ships 3.10) and ensure python3 is on PATH"

// Snapshot returns an informational check that records the host platform,
// Go runtime, working directory, and executable path. It always passes;
// its value is the context it adds to reports attached to support requests.
func Snapshot() checkup.Check {
	return checkup.Check{
		Name: "environment",
		Run: func(ctx context.Context) model.CheckResult {
			exe, _ := os.Executable()
			cwd, _ := os.Getwd()

			snap := map[string]string{
				"platform":   runtime.GOOS + "/" + runtime.GOARCH,
				"goVersion":  runtime.Version(),
				"cwd":        cwd,
				"executable": exe,
			}
			// Marshalling a map[string]string cannot fail; the error is
			// ignored deliberately.
			data, _ := json.Marshal(snap)
			return model.Pass("environment", "%s", data)
		},
	}
}

// PythonVersion returns a check that runs `python3 --version` and
// verifies the reported version is at least minVersion ("major.minor").
//
// The interpreter is probed by execution rather than by PATH lookup
// because a present-but-broken python3 (e.g., a dangling pyenv shim) must
// be reported as a failure, not a pass.
func PythonVersion(minVersion string) checkup.Check {
	return checkup.Check{
		Name: "python",
		Run: func(ctx context.Context) model.CheckResult {
			minMajor, minMinor, err := parseVersion(minVersion)
			if err != nil {
				return model.Fail("python", "", "invalid minimum version %q in manifest: %v", minVersion, err)
			}

			runCtx, cancel := context.WithTimeout(ctx, pythonProbeTimeout)
			defer cancel()

			out, err := exec.CommandContext(runCtx, "python3", "--version").CombinedOutput()
			if err != nil {
				return model.Fail("python", pythonRemediation, "python3 is not runnable: %v", err)
			}

			// Expected output: "Python 3.10.12".
			version := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(string(out)), "Python"))
			major, minor, err := parseVersion(version)
			if err != nil {
				return model.Fail("python", pythonRemediation, "unexpected python3 --version output %q: %v", strings.TrimSpace(string(out)), err)
			}

			if major < minMajor || (major == minMajor && minor < minMinor) {
				return model.Fail("python", pythonRemediation, "Python %s detected (< %s)", version, minVersion)
			}
			return model.Pass("python", "Python version OK: %s", version)
		},
	}
}

// ToolLookup returns a check that resolves the tool on PATH via
// exec.LookPath. A missing required tool fails the run; a missing
// optional tool is reported as a warning.
func ToolLookup(tool manifest.ToolRequirement) checkup.Check {
	name := "tool: " + tool.Name
	return checkup.Check{
		Name: name,
		Run: func(ctx context.Context) model.CheckResult {
			path, err := exec.LookPath(tool.Name)
			if err != nil {
				if tool.Optional {
					return model.Warn(name, tool.Remediation, "optional tool %q not found on PATH", tool.Name)
				}
				return model.Fail(name, tool.Remediation, "required tool %q not found on PATH", tool.Name)
			}
			return model.Pass(name, "%q found at %s", tool.Name, path)
		},
	}
}

// parseVersion extracts the major and minor components from a version
// string like "3.10" or "3.10.12". Patch level and any trailing qualifier
// are ignored — the course contract is expressed in major.minor terms.
func parseVersion(v string) (major, minor int, err error) {
	parts := strings.SplitN(strings.TrimSpace(v), ".", 3)
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("expected at least major.minor, got %q", v)
	}
	major, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid major component %q", parts[0])
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minor component %q", parts[1])
	}
	return major, minor, nil
}

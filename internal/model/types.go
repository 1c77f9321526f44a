package model

import (
	"fmt"
	"strings"
	"time"
)

// CheckStatus represents the verdict recorded for a single environment check.
//
// The status values form a severity order: pass < warn < fail. Only fail
// affects the process exit code — warn marks optional capabilities that
// could not be verified but do not block the course setup.
type CheckStatus string

const (
	// StatusPass indicates the check succeeded.
	StatusPass CheckStatus = "pass"

	// StatusWarn indicates an optional capability is missing or could not
	// be verified. Warnings are reported but never fail the run.
	StatusWarn CheckStatus = "warn"

	// StatusFail indicates a required capability is missing or broken.
	// At least one fail verdict makes the overall run exit non-zero.
	StatusFail CheckStatus = "fail"
)

// String returns the string representation of CheckStatus.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI commands and reports.
func (s CheckStatus) String() string {
	return string(s)
}

// IsValid checks whether the CheckStatus value is one of the
// predefined valid statuses.
func (s CheckStatus) IsValid() bool {
	switch s {
	case StatusPass, StatusWarn, StatusFail:
		return true
	default:
		return false
	}
}

// ParseCheckStatus converts a string to a CheckStatus.
// Returns an error if the string does not match any valid status.
func ParseCheckStatus(s string) (CheckStatus, error) {
	status := CheckStatus(strings.ToLower(s))
	if !status.IsValid() {
		return "", fmt.Errorf("invalid check status: %q (valid: pass, warn, fail)", s)
	}
	return status, nil
}

// CheckResult is the verdict recorded for one named check.
//
// A result is created by a probe, appended to the run's Report, printed,
// and discarded — nothing is persisted between runs. Remediation carries
// the suggested fix (typically an install command) and is only meaningful
// for warn/fail verdicts.
type CheckResult struct {
	// Name identifies the check (e.g., "python version", "tool: ros2").
	Name string `json:"name" yaml:"name"`

	// Status is the verdict for this check.
	Status CheckStatus `json:"status" yaml:"status"`

	// Message is the human-readable outcome description.
	Message string `json:"message" yaml:"message"`

	// Remediation is the suggested fix for a warn/fail verdict,
	// e.g. "sudo apt install python3-colcon-common-extensions".
	Remediation string `json:"remediation,omitempty" yaml:"remediation,omitempty"`
}

// Failed reports whether this result blocks overall success.
// Only StatusFail counts — warnings are informational.
func (r CheckResult) Failed() bool {
	return r.Status == StatusFail
}

// Pass constructs a passing CheckResult for the named check.
func Pass(name, format string, args ...interface{}) CheckResult {
	return CheckResult{Name: name, Status: StatusPass, Message: fmt.Sprintf(format, args...)}
}

// Warn constructs a warning CheckResult with a remediation hint.
func Warn(name, remediation, format string, args ...interface{}) CheckResult {
	return CheckResult{Name: name, Status: StatusWarn, Message: fmt.Sprintf(format, args...), Remediation: remediation}
}

// Fail constructs a failing CheckResult with a remediation hint.
func Fail(name, remediation, format string, args ...interface{}) CheckResult {
	return CheckResult{Name: name, Status: StatusFail, Message: fmt.Sprintf(format, args...), Remediation: remediation}
}

// Report aggregates the verdicts of one complete check run.
// It is the input to both the console renderer and the YAML report writer.
type Report struct {
	// GeneratedAt is the wall-clock time the run finished.
	GeneratedAt time.Time `json:"generatedAt" yaml:"generatedAt"`

	// Platform describes the host the run executed on ("linux/amd64").
	Platform string `json:"platform" yaml:"platform"`

	// Results lists every check verdict in execution order. All checks
	// always run — a failure never truncates this list.
	Results []CheckResult `json:"results" yaml:"results"`
}

// Counts returns the number of pass, warn, and fail verdicts in the report.
func (rep *Report) Counts() (passed, warned, failed int) {
	for _, r := range rep.Results {
		switch r.Status {
		case StatusPass:
			passed++
		case StatusWarn:
			warned++
		case StatusFail:
			failed++
		}
	}
	return passed, warned, failed
}

// Failed reports whether any required check failed.
func (rep *Report) Failed() bool {
	_, _, failed := rep.Counts()
	return failed > 0
}

// CloudStats holds the descriptive statistics computed for a point cloud:
// the axis-aligned bounding box and the centroid (mean of coordinates).
// Axis order is x, y, z throughout.
type CloudStats struct {
	// Points is the number of points the statistics were computed over.
	Points int `json:"points" yaml:"points"`

	// Min and Max are the per-axis bounding box extents.
	Min [3]float64 `json:"min" yaml:"min,flow"`
	Max [3]float64 `json:"max" yaml:"max,flow"`

	// Centroid is the per-axis mean of the point coordinates.
	Centroid [3]float64 `json:"centroid" yaml:"centroid,flow"`
}

// Validate checks the internal consistency of the statistics:
// the cloud must be non-empty, min <= max on every axis, and the
// centroid must lie inside the bounding box.
func (s CloudStats) Validate() error {
	if s.Points <= 0 {
		return fmt.Errorf("cloud statistics: no points")
	}
	for axis := 0; axis < 3; axis++ {
		if s.Min[axis] > s.Max[axis] {
			return fmt.Errorf("cloud statistics: axis %d min %g exceeds max %g", axis, s.Min[axis], s.Max[axis])
		}
		if s.Centroid[axis] < s.Min[axis] || s.Centroid[axis] > s.Max[axis] {
			return fmt.Errorf("cloud statistics: axis %d centroid %g outside bounds [%g, %g]",
				axis, s.Centroid[axis], s.Min[axis], s.Max[axis])
		}
	}
	return nil
}

// String renders the statistics in the one-line form used by CLI output.
func (s CloudStats) String() string {
	return fmt.Sprintf("%d points, min=[%.4f %.4f %.4f], max=[%.4f %.4f %.4f], centroid=[%.4f %.4f %.4f]",
		s.Points,
		s.Min[0], s.Min[1], s.Min[2],
		s.Max[0], s.Max[1], s.Max[2],
		s.Centroid[0], s.Centroid[1], s.Centroid[2])
}

// ExitCode defines the CLI exit codes. Exit code 0 means every required
// check passed; any non-zero code means at least one failure, with the
// specific value identifying the failure class for scripts and CI systems.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitChecksFailed indicates at least one required environment
	// check recorded a fail verdict.
	ExitChecksFailed ExitCode = 2

	// ExitManifestError indicates the check manifest could not be
	// loaded or parsed.
	ExitManifestError ExitCode = 3

	// ExitAssetError indicates a sample asset (image or point cloud)
	// was missing, unreadable, or empty.
	ExitAssetError ExitCode = 4

	// ExitOutputError indicates the derived output file could not
	// be written.
	ExitOutputError ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
// This follows Go's error wrapping convention introduced in Go 1.13.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

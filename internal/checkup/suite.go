// Package checkup implements the sequential check suite runner.
//
// A Suite is an ordered list of named checks. The runner executes every
// check start-to-finish, single-threaded, and records one CheckResult per
// check. The central contract is partial-failure visibility: a failing
// check NEVER stops the checks after it — students get the complete
// picture of their environment in one run instead of fixing problems one
// reported failure at a time.
package checkup

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/robostack-edu/envcheck/internal/model"
)

// Check pairs a display name with the probe function that produces its
// verdict. Probe functions must be self-contained: they report problems
// through the returned CheckResult, not through panics or process exits.
type Check struct {
	// Name identifies the check in console output and reports.
	Name string

	// Run evaluates the check and returns its verdict. The context
	// bounds any external process invocations the probe makes.
	Run func(ctx context.Context) model.CheckResult
}

// Suite is an ordered collection of checks. Checks share no state and are
// idempotent, so a Suite can be rerun against a changing environment to
// watch it converge to all-pass.
type Suite struct {
	checks []Check
}

// NewSuite creates a Suite with the given checks in execution order.
func NewSuite(checks ...Check) *Suite {
	return &Suite{checks: checks}
}

// Add appends further checks to the end of the suite.
func (s *Suite) Add(checks ...Check) {
	s.checks = append(s.checks, checks...)
}

// Len returns the number of registered checks.
func (s *Suite) Len() int {
	return len(s.checks)
}

// Run executes every check in order and aggregates the verdicts into a
// Report. All checks always run — the report length equals Len()
// regardless of failures.
//
// A panicking probe is converted into a fail verdict for that check so
// one broken probe cannot swallow the rest of the report. Anything going
// wrong outside a probe still crashes the process normally.
func (s *Suite) Run(ctx context.Context) *model.Report {
	report := &model.Report{
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}

	for _, check := range s.checks {
		report.Results = append(report.Results, runOne(ctx, check))
	}

	report.GeneratedAt = time.Now().UTC()
	return report
}

// runOne executes a single check with panic recovery.
func runOne(ctx context.Context, check Check) (result model.CheckResult) {
	defer func() {
		if r := recover(); r != nil {
			result = model.Fail(check.Name, "", "check panicked: %v", r)
		}
	}()

	result = check.Run(ctx)
	if result.Name == "" {
		result.Name = check.Name
	}
	if !result.Status.IsValid() {
		// A probe that forgets to set a status is a programming error;
		// surface it as a failure rather than guessing.
		result = model.Fail(check.Name, "", "check returned invalid status %q", string(result.Status))
	}
	return result
}

// ExitError translates a finished report into the command's error value:
// nil when every required check passed, or a CLIError carrying
// ExitChecksFailed naming the failure count.
func ExitError(report *model.Report) error {
	_, _, failed := report.Counts()
	if failed == 0 {
		return nil
	}

	noun := "issue"
	if failed != 1 {
		noun = "issues"
	}
	return model.NewCLIError(
		model.ExitChecksFailed,
		fmt.Sprintf("environment check failed (%d %s)", failed, noun),
	)
}

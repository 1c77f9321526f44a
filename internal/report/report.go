// Package report renders and persists the outcome of a check run.
//
// Three output forms are supported: human-readable text for the console
// (the default), indented JSON for --json consumers, and a YAML report
// file for attaching to support requests or collecting in a classroom.
// All three are views over the same model.Report — this package holds no
// state of its own.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/robostack-edu/envcheck/internal/model"
)

// RenderText writes the per-check verdict lines and the aggregate
// verdict to w. Failed and warned checks get an indented "fix:" line
// when a remediation is known.
func RenderText(w io.Writer, rep *model.Report) {
	for _, r := range rep.Results {
		fmt.Fprintf(w, "[%s] %s: %s\n", strings.ToUpper(r.Status.String()), r.Name, r.Message)
		if r.Status != model.StatusPass && r.Remediation != "" {
			fmt.Fprintf(w, "       fix: %s\n", r.Remediation)
		}
	}

	passed, warned, failed := rep.Counts()
	fmt.Fprintln(w)
	if failed > 0 {
		noun := "issue"
		if failed != 1 {
			noun = "issues"
		}
		fmt.Fprintf(w, "Environment check failed (%d %s, %d passed, %d warnings).\n", failed, noun, passed, warned)
		return
	}
	if warned > 0 {
		fmt.Fprintf(w, "All checks passed (%d passed, %d warnings).\n", passed, warned)
		return
	}
	fmt.Fprintf(w, "All checks passed (%d passed).\n", passed)
}

// RenderJSON writes the report to w as indented JSON.
func RenderJSON(w io.Writer, rep *model.Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report as JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// Write persists the report as YAML at the given path, overwriting any
// report from a previous run.
func Write(path string, rep *model.Report) error {
	data, err := yaml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("failed to encode report as YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return model.WrapCLIError(
			model.ExitOutputError,
			fmt.Sprintf("failed to write report to %s", path),
			err,
		)
	}
	return nil
}

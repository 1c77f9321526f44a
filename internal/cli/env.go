package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/robostack-edu/envcheck/internal/checkup"
	"github.com/robostack-edu/envcheck/internal/manifest"
	"github.com/robostack-edu/envcheck/internal/probe"
	"github.com/robostack-edu/envcheck/internal/report"
)

// envFlags holds the command-line flags for the env command.
type envFlags struct {
	reportPath string
}

// NewEnvCommand creates the 'env' subcommand that verifies the
// interpreter, the required CLI tools, the numeric/plotting stack, and
// the bundled sample assets.
func NewEnvCommand() *cobra.Command {
	flags := &envFlags{}

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Check the interpreter, toolchain, and sample assets",
		Long: `Check runs the full environment suite: interpreter version, required CLI
tools on PATH, linear-algebra / FFT / plot-rendering sanity, sample asset
integrity, and the optional container runtime.

All checks run even when one fails, so a single invocation reports the
complete state of the machine. The exit code is 0 only when every
required check passed; warnings from optional checks never affect it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnv(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.reportPath, "report", "", "Write a YAML report to this path in addition to console output")

	return cmd
}

// runEnv implements the env command: load the manifest, run the suite,
// render the verdicts, and map failures to the exit code.
func runEnv(cmd *cobra.Command, flags *envFlags) error {
	m, err := manifest.Load(configPath)
	if err != nil {
		return err
	}
	VerboseLog("Manifest loaded: python >= %s, %d tool lookups", m.PythonMin, len(m.Tools))

	suite := buildSuite(m)
	VerboseLog("Running %d checks", suite.Len())

	rep := suite.Run(cmd.Context())

	if IsJSONOutput() {
		if err := report.RenderJSON(os.Stdout, rep); err != nil {
			return err
		}
	} else {
		report.RenderText(os.Stdout, rep)
	}

	if flags.reportPath != "" {
		if err := report.Write(flags.reportPath, rep); err != nil {
			return err
		}
		VerboseLog("Report written to %s", flags.reportPath)
	}

	return checkup.ExitError(rep)
}

// buildSuite assembles the check suite in its fixed execution order:
// environment snapshot first, the interpreter and tool lookups next,
// then the in-process library probes, and the asset checks last.
func buildSuite(m *manifest.Manifest) *checkup.Suite {
	suite := checkup.NewSuite(
		probe.Snapshot(),
		probe.PythonVersion(m.PythonMin),
	)
	for _, tool := range m.Tools {
		suite.Add(probe.ToolLookup(tool))
	}
	suite.Add(
		probe.LinearAlgebra(),
		probe.FFT(),
		probe.PlotRender(""),
		probe.SampleImage(m.SampleImage),
		probe.SampleCloud(m.SamplePointCloud),
		probe.ContainerRuntime(),
	)
	return suite
}

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robostack-edu/envcheck/internal/manifest"
)

// TestBuildSuite verifies the suite composition: every manifest tool
// gets a lookup check and the fixed probes surround them in order.
func TestBuildSuite(t *testing.T) {
	m := manifest.Default()

	suite := buildSuite(m)

	// 2 leading (snapshot, python) + tools + 6 trailing probes.
	assert.Equal(t, 2+len(m.Tools)+6, suite.Len())
}

// TestBuildSuite_ManifestToolsReplace verifies a custom tool list drives
// the suite size.
func TestBuildSuite_ManifestToolsReplace(t *testing.T) {
	m := manifest.Default()
	m.Tools = []manifest.ToolRequirement{{Name: "ros2"}}

	assert.Equal(t, 9, buildSuite(m).Len())
}

// TestRootCommand_UnknownSubcommand pins the cobra error path so typos do
// not fall through to the env suite.
func TestRootCommand_UnknownSubcommand(t *testing.T) {
	err := runCommand("bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

// TestRootCommand_HasSubcommands verifies both checker commands are
// registered under the root.
func TestRootCommand_HasSubcommands(t *testing.T) {
	rootCmd := NewRootCommand()

	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "env")
	assert.Contains(t, names, "pointcloud")
}

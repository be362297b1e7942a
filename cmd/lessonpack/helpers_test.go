package main

import (
	"testing"

	"github.com/hsmedia/lessonpack/internal/testutil"
)

// setupTestConfigFile writes a config file under tmpDir, points the package
// level config flag at it and clears the environment overrides so tests do
// not pick up keys from the host.
func setupTestConfigFile(t *testing.T, tmpDir string) {
	t.Helper()

	t.Setenv("PEXELS_API_KEY", "")
	t.Setenv("CTE_TEMPLATE_PATH", "")
	t.Setenv("CTE_OUTPUT_DIR", "")

	configPath := testutil.SetupTestConfig(t, tmpDir)
	oldConfigFile := configFile
	configFile = configPath
	t.Cleanup(func() { configFile = oldConfigFile })
}

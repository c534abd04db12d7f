package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeRelayConfig(home))

	_, stderr, err := runGathering(t, binaryPath, home, "link", "set", "100", "Rider")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runGathering(t, binaryPath, home, "link", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "100\tRider")

	stdout, stderr, err = runGathering(t, binaryPath, home, "communities")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "communities: 1")
	assert.Contains(t, stdout, "Alpha")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "gathering-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/gathering")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build gathering binary: %s", string(output))
	return binaryPath
}

func runGathering(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = home
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"XDG_CONFIG_HOME="+filepath.Join(home, ".config"),
		"GATHERING_CONFIG=",
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeRelayConfig(home string) error {
	configDir := filepath.Join(home, ".config", "gathering")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	relay := `[relay]
guild = "relay-guild"

[[communities]]
id = "alpha"
name = "Alpha"
ping_role = "900"
`

	return os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(relay), 0o644)
}

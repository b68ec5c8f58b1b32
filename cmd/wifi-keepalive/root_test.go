package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs args against a freshly built command tree, so parsed
// flag state cannot leak from one test into the next.
func executeCommand(args ...string) (string, error) {
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	// A nil slice would make cobra fall back to os.Args.
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestExecute_MissingHost(t *testing.T) {
	_, err := executeCommand()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestExecute_ZeroInterval(t *testing.T) {
	_, err := executeCommand("198.51.100.7", "--interval", "0")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "interval must be at least 1 second")
}

func TestExecute_NegativeInterval(t *testing.T) {
	_, err := executeCommand("198.51.100.7", "-i", "-5")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "interval must be at least 1 second")
}

func TestExecute_CheckMissingHost(t *testing.T) {
	_, err := executeCommand("check")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestExecute_WakeInvalidMAC(t *testing.T) {
	_, err := executeCommand("wake", "not-a-mac")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid MAC address")
}

func TestExecute_Help(t *testing.T) {
	output, err := executeCommand("--help")

	require.NoError(t, err)
	assert.Contains(t, output, "Usage:")
	assert.Contains(t, output, "wifi-keepalive <host>")
}

func TestExecute_HelpDoesNotLeakIntoNextRun(t *testing.T) {
	_, err := executeCommand("--help")
	require.NoError(t, err)

	// A shared command tree would still see the parsed help flag here and
	// print usage instead of validating the interval.
	_, err = executeCommand("198.51.100.7", "--interval", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interval must be at least 1 second")
}

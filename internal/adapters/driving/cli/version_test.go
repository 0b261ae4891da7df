package cli

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	SetVersion("1.2.3")
	defer func() { version = originalVersion }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "edi version 1.2.3\n", buf.String())
}

func TestVersionCmd_DisplaysDevByDefault(t *testing.T) {
	originalVersion := version
	version = "dev"
	defer func() { version = originalVersion }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "edi version dev")
}

func TestVersionCmd_CountsRoutingKeys(t *testing.T) {
	setupTestServices(t)

	stdout, _, err := executeCommand(t, "", "version")

	require.NoError(t, err)
	want := fmt.Sprintf("routing keys: %d X12, 0 EDIFACT\n", len(capabilityCatalog.Keys()))
	assert.Contains(t, stdout, want)
}

func TestVersionCmd_RejectsArgs(t *testing.T) {
	_, _, err := executeCommand(t, "", "version", "extra")

	assert.Error(t, err)
}

package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCommand_Valid(t *testing.T) {
	out, err := runCommand(t, "validate", "240537802894")
	require.NoError(t, err)
	assert.Equal(t, "valid\n", out)
}

func TestValidateCommand_Invalid(t *testing.T) {
	out, err := runCommand(t, "validate", "240537802892")
	require.Error(t, err)
	assert.Equal(t, "invalid\n", out)
}

func TestValidateCommand_Quiet(t *testing.T) {
	out, err := runCommand(t, "validate", "--quiet", "240537802892")
	require.Error(t, err)
	assert.Empty(t, out)
}

func TestValidateCommand_RequiresArg(t *testing.T) {
	_, err := runCommand(t, "validate")
	assert.Error(t, err)
}

func TestGenerateCommand(t *testing.T) {
	out, err := runCommand(t, "generate", "24053780289")
	require.NoError(t, err)
	assert.Equal(t, "240537802894\n", out)
}

func TestGenerateCommand_DigitOnly(t *testing.T) {
	out, err := runCommand(t, "generate", "--digit-only", "24053780289")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)
}

func TestGenerateCommand_BadPrefix(t *testing.T) {
	_, err := runCommand(t, "generate", "123")
	require.Error(t, err)
}

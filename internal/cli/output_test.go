package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormatterSuccessText(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: buf}

	err := f.Success("all good")
	require.NoError(t, err)
	assert.Equal(t, "all good\n", buf.String())
}

func TestOutputFormatterSuccessJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf}

	err := f.Success(map[string]int{"modules": 3})
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Nil(t, resp.Error)
}

func TestOutputFormatterErrorJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf}

	err := f.Error(ErrCodeNotFound, "manifest directory not found", nil)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
}

func TestOutputFormatterErrorText(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: buf}

	err := f.Error(ErrCodeNoFiles, "no CUE files found", nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Error [E003]: no CUE files found")
}

func TestVerboseLog(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// Disabled: nothing written anywhere.
	quiet := &OutputFormatter{Format: "text", Writer: out, ErrWriter: errOut}
	quiet.VerboseLog("hidden %d", 1)
	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())

	// Enabled with ErrWriter: diagnostics land on stderr.
	verbose := &OutputFormatter{Format: "json", Writer: out, ErrWriter: errOut, Verbose: true}
	verbose.VerboseLog("loaded %d file(s)", 2)
	assert.Empty(t, out.String(), "verbose logs must not corrupt JSON output")
	assert.Equal(t, "loaded 2 file(s)\n", errOut.String())

	// Enabled without ErrWriter: falls back to Writer.
	fallback := &OutputFormatter{Format: "text", Writer: out, Verbose: true}
	fallback.VerboseLog("note")
	assert.Equal(t, "note\n", out.String())
}

func TestExitError(t *testing.T) {
	plain := NewExitError(ExitFailure, "cycles found")
	assert.Equal(t, "cycles found", plain.Error())
	assert.Nil(t, plain.Unwrap())

	inner := fmt.Errorf("disk gone")
	wrapped := WrapExitError(ExitCommandError, "loading manifest", inner)
	assert.Equal(t, "loading manifest: disk gone", wrapped.Error())
	assert.Equal(t, inner, wrapped.Unwrap())
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain error")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad path")))

	// Wrapped ExitError still resolves via errors.As.
	wrapped := fmt.Errorf("context: %w", NewExitError(ExitFailure, "cycles"))
	assert.Equal(t, ExitFailure, GetExitCode(wrapped))
}

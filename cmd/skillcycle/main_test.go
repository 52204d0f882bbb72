package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillcycle/internal/domain"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPagesCmd_List(t *testing.T) {
	out, err := execute(t, "pages")
	require.NoError(t, err)
	assert.Contains(t, out, "home")
	assert.Contains(t, out, "The Problem")
	assert.Contains(t, out, "solution")
}

func TestPagesCmd_Show(t *testing.T) {
	out, err := execute(t, "pages", "solution")
	require.NoError(t, err)
	assert.Contains(t, out, "The Solution")
	assert.Contains(t, out, "## Built for students")
	assert.Contains(t, out, "- 100% Offline: Works without any internet connection")
}

func TestPagesCmd_UnknownSlug(t *testing.T) {
	_, err := execute(t, "pages", "pricing")
	require.Error(t, err)
	assert.Equal(t, domain.CodePageNotFound, domain.CodeOf(err))
}

func TestDemoCmd_RejectsUnknownKind(t *testing.T) {
	_, err := execute(t, "demo", "weather")
	assert.Error(t, err)

	_, err = execute(t, "demo")
	assert.Error(t, err)
}

func TestDemoCmd_RequiresTerminal(t *testing.T) {
	orig := isTerminal
	isTerminal = func(*os.File) bool { return false }
	t.Cleanup(func() { isTerminal = orig })

	_, err := execute(t, "demo", "math")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs an interactive terminal")
}

package editor_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/nicolagi/tjp/internal/editor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// script writes an executable shell script standing in for an editor.
func script(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "fake-editor")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0700))
	return path
}

func TestCommand(t *testing.T) {
	t.Setenv("EDITOR", "")
	assert.Equal(t, "vim", editor.Command(""))
	assert.Equal(t, "ed", editor.Command(" ed "))
	t.Setenv("EDITOR", "nano")
	assert.Equal(t, "nano", editor.Command(""))
	assert.Equal(t, "code --wait", editor.Command("code --wait"))
}

func TestEdit(t *testing.T) {
	e := editor.New(script(t, `echo "call mom" >> "$1"`))
	edited, err := e.Edit(context.Background(), "buy milk\n")
	require.NoError(t, err)
	assert.Equal(t, "buy milk\ncall mom\n", edited)
}

func TestEditArguments(t *testing.T) {
	e := editor.New(script(t, `echo "$1" > "$2"`) + " replaced")
	edited, err := e.Edit(context.Background(), "original")
	require.NoError(t, err)
	assert.Equal(t, "replaced\n", edited)
}

func TestEditFailure(t *testing.T) {
	e := editor.New(script(t, "exit 3"))
	_, err := e.Edit(context.Background(), "text")
	assert.EqualError(t, err, "editor exited with status 3")
}

func TestEditNoCommand(t *testing.T) {
	_, err := editor.New("  ").Edit(context.Background(), "text")
	assert.Error(t, err)
}

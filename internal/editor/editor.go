// Package editor lets the user edit text with an external editor.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// DefaultCommand is used when neither the configuration nor $EDITOR name an editor.
const DefaultCommand = "vim"

// IsInteractive returns true if stdin is a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Command picks the editor command: the configured one, else $EDITOR, else DefaultCommand.
func Command(configured string) string {
	if c := strings.TrimSpace(configured); c != "" {
		return c
	}
	if c := strings.TrimSpace(os.Getenv("EDITOR")); c != "" {
		return c
	}
	return DefaultCommand
}

// Editor runs an editor command on a temporary file. The command may carry arguments, e.g.,
// "code --wait"; the file name is appended.
type Editor struct {
	Command string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns an Editor attached to the standard streams.
func New(command string) *Editor {
	return &Editor{
		Command: command,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Edit writes text to a temporary file, waits for the editor to exit and returns the file content.
func (e *Editor) Edit(ctx context.Context, text string) (edited string, err error) {
	args := strings.Fields(e.Command)
	if len(args) == 0 {
		return "", errors.New("no editor command")
	}
	f, err := os.CreateTemp("", "tjp-*.md")
	if err != nil {
		return "", fmt.Errorf("create temporary file: %w", err)
	}
	defer func() {
		if rerr := os.Remove(f.Name()); rerr != nil {
			log.WithFields(log.Fields{
				"path":  f.Name(),
				"cause": rerr,
			}).Warn("Could not remove temporary file")
		}
	}()
	if _, err := f.WriteString(text); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write temporary file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("write temporary file: %w", err)
	}

	cmd := exec.CommandContext(ctx, args[0], append(args[1:], f.Name())...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	log.WithFields(log.Fields{
		"command": e.Command,
		"path":    f.Name(),
	}).Debug("Running editor")
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return "", fmt.Errorf("run editor: %w", err)
	}

	b, err := os.ReadFile(f.Name())
	if err != nil {
		return "", fmt.Errorf("read temporary file: %w", err)
	}
	return string(b), nil
}

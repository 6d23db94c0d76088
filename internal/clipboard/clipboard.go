// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

// Package clipboard copies text to the user's clipboard. The system
// clipboard is tried first; when it is unavailable (headless session, SSH,
// missing xclip/xsel) the text is sent to the terminal as an OSC 52 escape
// sequence, which most modern terminals forward to the local clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
	"github.com/toeirei/keydash/internal/logging"
	"golang.org/x/term"
)

// Writer writes text to one clipboard mechanism.
type Writer interface {
	Write(text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(text string) error

// Write calls f(text).
func (f WriterFunc) Write(text string) error { return f(text) }

// System writes through the OS clipboard (pbcopy, xclip, wl-copy, ...).
var System Writer = WriterFunc(func(text string) error {
	if clipboard.Unsupported {
		return errors.New("system clipboard unsupported")
	}
	return clipboard.WriteAll(text)
})

// Terminal writes an OSC 52 sequence to Out. When Out is a file it must be
// a terminal; a redirected stream would only receive the encoded text.
type Terminal struct {
	Out  io.Writer
	Tmux bool // wrap the sequence for tmux passthrough
}

// Write emits the escape sequence carrying text.
func (t Terminal) Write(text string) error {
	if t.Out == nil {
		return errors.New("no terminal output for OSC 52")
	}
	if f, ok := t.Out.(interface{ Fd() uintptr }); ok && !term.IsTerminal(int(f.Fd())) {
		return errors.New("OSC 52 output is not a terminal")
	}
	seq := osc52.New(text)
	if t.Tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(t.Out); err != nil {
		return fmt.Errorf("write OSC 52 sequence: %w", err)
	}
	return nil
}

// Copier tries the primary writer and falls back to the secondary one.
type Copier struct {
	Primary  Writer
	Fallback Writer
}

// New returns the default copier: system clipboard, then OSC 52 on stderr
// (stdout belongs to the TUI renderer).
func New() *Copier {
	return &Copier{
		Primary:  System,
		Fallback: Terminal{Out: os.Stderr, Tmux: os.Getenv("TMUX") != ""},
	}
}

// Copy writes text to the clipboard. It only fails when both mechanisms
// fail, in which case the returned error carries both causes.
func (c *Copier) Copy(text string) error {
	var primaryErr error
	if c.Primary != nil {
		if primaryErr = c.Primary.Write(text); primaryErr == nil {
			return nil
		}
		logging.Debugf("clipboard: primary copy failed, trying fallback: %v", primaryErr)
	} else {
		primaryErr = errors.New("no primary clipboard")
	}

	if c.Fallback == nil {
		return fmt.Errorf("copy to clipboard: %w", primaryErr)
	}
	if err := c.Fallback.Write(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", errors.Join(primaryErr, err))
	}
	return nil
}

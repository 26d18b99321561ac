// Package clipboard copies text to the system clipboard, falling back to an
// OSC52 terminal escape sequence when no clipboard tool is available.
package clipboard

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Transport names the mechanism that carried the copied text.
type Transport string

const (
	TransportSystem Transport = "system" // xclip, xsel, wl-copy, pbcopy, ...
	TransportOSC52  Transport = "osc52"
)

// Copier writes text to the clipboard.
type Copier struct {
	writeAll    func(string) error
	unsupported bool
	out         io.Writer // terminal receiving the OSC52 sequence
	getenv      func(string) string
}

// New returns a Copier using the system clipboard tools, with OSC52
// sequences written to out (os.Stderr when nil).
func New(out io.Writer) *Copier {
	if out == nil {
		out = os.Stderr
	}
	return &Copier{
		writeAll:    clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
		out:         out,
		getenv:      os.Getenv,
	}
}

// Copy places text on the clipboard and reports which transport was used.
func (c *Copier) Copy(text string) (Transport, error) {
	var systemErr error
	if !c.unsupported {
		if systemErr = c.writeAll(text); systemErr == nil {
			return TransportSystem, nil
		}
	}

	seq := osc52.New(text)
	switch {
	case c.getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(c.getenv("TERM"), "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(c.out); err != nil {
		if systemErr != nil {
			return "", fmt.Errorf("copy to clipboard: %w (system clipboard: %v)", err, systemErr)
		}
		return "", fmt.Errorf("copy to clipboard: %w", err)
	}
	return TransportOSC52, nil
}

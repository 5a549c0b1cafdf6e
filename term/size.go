//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package term

import (
	"errors"

	"golang.org/x/crypto/ssh/terminal"
	xterm "golang.org/x/term"
)

var ErrNotTerminal = errors.New("not a terminal")

func IsTerminal(fd int) bool {
	return terminal.IsTerminal(fd)
}

// GetSize returns the dimensions of the terminal attached to fd.
func GetSize(fd int) (rows int, cols int, err error) {
	if !IsTerminal(fd) {
		return 0, 0, ErrNotTerminal
	}
	cols, rows, err = xterm.GetSize(fd)
	if err == nil && cols <= 0 {
		err = errors.New("terminal reported zero width")
	}
	return
}

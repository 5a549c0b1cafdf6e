//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package term

import (
	"golang.org/x/sys/unix"
)

// TTYState holds the terminal settings in effect before EnterRaw.
type TTYState struct {
	fd  int
	old unix.Termios
}

// EnterRaw stops the terminal from echoing keystrokes over the clock. Signal
// generation is left on so that Ctrl-C still raises SIGINT.
func EnterRaw(fd int) (*TTYState, error) {
	tios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, err
	}
	state := &TTYState{fd: fd, old: *tios}

	tios.Lflag &^= unix.ECHO | unix.ICANON
	tios.Lflag |= unix.ISIG
	tios.Cc[unix.VMIN] = 1
	tios.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, tios); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *TTYState) LeaveRaw() error {
	if s == nil {
		return nil
	}
	return unix.IoctlSetTermios(s.fd, ioctlWriteTermios, &s.old)
}

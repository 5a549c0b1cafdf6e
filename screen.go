package termclock

import (
	"bytes"
	"io"
	"strings"
)

// Screen is the terminal driver the clock renders through.
type Screen interface {
	ClearAndHideCursor() error
	RestoreCursorPosition() error
	ShowCursorAndClear() error
	Write(rows []string) error
}

const (
	escClearHome  = "\x1b[2J\x1b[0;0H"
	escSaveCursor = "\x1b[s"
	escLoadCursor = "\x1b[u"
	escHideCursor = "\x1b[?25l"
	escShowCursor = "\x1b[?25h"
)

// NewTermScreen returns a Screen that writes ANSI escape sequences to w.
// Frames are drawn from a cursor position saved when the screen is cleared.
func NewTermScreen(w io.Writer) Screen {
	return &termScreen{
		writer: w,
		buf:    new(bytes.Buffer),
	}
}

type termScreen struct {
	writer io.Writer
	buf    *bytes.Buffer
}

func (t *termScreen) ClearAndHideCursor() error {
	return t.emit(escClearHome + escSaveCursor + escHideCursor + "\n")
}

func (t *termScreen) RestoreCursorPosition() error {
	return t.emit(escLoadCursor)
}

func (t *termScreen) ShowCursorAndClear() error {
	return t.emit(escClearHome + escShowCursor)
}

func (t *termScreen) Write(rows []string) error {
	t.buf.Reset()
	t.buf.WriteString(strings.Join(rows, "\n"))
	t.buf.WriteByte('\n')
	log.Debug("Writing to screen: rows=%d bytes=%d", len(rows), t.buf.Len())
	_, err := io.Copy(t.writer, t.buf)
	return err
}

func (t *termScreen) emit(seq string) error {
	_, err := io.WriteString(t.writer, seq)
	return err
}

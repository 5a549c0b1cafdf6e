package termclock

import (
	"github.com/gdamore/tcell/v2"
)

// NewTcellScreen adapts an initialised tcell screen. Rows are painted from
// the top left corner, so restoring the cursor is a no-op.
func NewTcellScreen(s tcell.Screen) Screen {
	return &tcellScreen{
		screen: s,
		style:  tcell.StyleDefault,
	}
}

type tcellScreen struct {
	screen tcell.Screen
	style  tcell.Style
}

func (t *tcellScreen) ClearAndHideCursor() error {
	t.screen.HideCursor()
	t.screen.Clear()
	t.screen.Show()
	return nil
}

func (t *tcellScreen) RestoreCursorPosition() error {
	return nil
}

func (t *tcellScreen) ShowCursorAndClear() error {
	t.screen.Clear()
	t.screen.ShowCursor(0, 0)
	t.screen.Show()
	t.screen.Fini()
	return nil
}

func (t *tcellScreen) Write(rows []string) error {
	for y, row := range rows {
		x := 0
		for _, ch := range row {
			t.screen.SetContent(x, y, ch, nil, t.style)
			x++
		}
	}
	t.screen.Show()
	return nil
}

// CollectTcellKeys stops the reactor on Escape, Ctrl-C or 'q'. tcell holds the
// terminal in raw mode, so Ctrl-C arrives here instead of as SIGINT.
func CollectTcellKeys(r Reactor, s tcell.Screen) {
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			if key, ok := ev.(*tcell.EventKey); ok && isQuitKey(key) {
				r.Stop(nil)
				return
			}
		}
	}()
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

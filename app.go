package termclock

import (
	"sync"
	"time"
)

type App interface {
	Initialise() error
	Tick(now time.Time) error
	Close() error
}

type app struct {
	cfg    Config
	width  int
	screen Screen

	compositor *Compositor
	scroller   *Scroller // nil unless sliding

	closeOnce sync.Once
	closeErr  error
}

// NewApp builds a clock for a terminal termWidth columns wide.
func NewApp(cfg Config, font *GlyphTable, termWidth int, screen Screen) App {
	a := &app{
		cfg:        cfg,
		width:      termWidth,
		screen:     screen,
		compositor: NewCompositor(font),
	}
	if cfg.Slide {
		a.scroller = NewScroller(font.Height(), termWidth)
	}
	return a
}

func (a *app) Initialise() error {
	log.Info("Initialising clock: width=%d slide=%t content=%d", a.width, a.cfg.Slide, a.compositor.Width())
	if !a.cfg.Slide && a.width < a.compositor.Width() {
		log.Warn("Terminal narrower than clock (%d < %d), rows will not be centred.", a.width, a.compositor.Width())
	}
	return a.screen.ClearAndHideCursor()
}

func (a *app) Tick(now time.Time) error {
	h, m, s := now.Clock()
	a.compositor.UpdateContent(h, m, s)

	var rows []string
	if a.scroller != nil {
		a.scroller.AdvanceWindow(a.compositor.Content())
		rows = a.scroller.Rows()
	} else {
		rows = CenteredRows(a.compositor.Content(), a.width)
	}

	if err := a.screen.RestoreCursorPosition(); err != nil {
		return err
	}
	return a.screen.Write(rows)
}

// Close restores the terminal. Only the first call touches the screen.
func (a *app) Close() error {
	a.closeOnce.Do(func() {
		log.Info("Restoring terminal.")
		a.closeErr = a.screen.ShowCursorAndClear()
	})
	return a.closeErr
}

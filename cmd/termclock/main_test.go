//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/madmuggle/termclock"
)

func TestParseArgs(t *testing.T) {
	for i, test := range []struct {
		args      []string
		wantSlide bool
		wantErr   bool
	}{
		{nil, false, false},
		{[]string{"slide"}, true, false},
		{[]string{"-slide"}, true, false},
		{[]string{"-slide", "slide"}, true, false},
		{[]string{"bogus"}, false, true},
		{[]string{"slide", "slide"}, false, true},
		{[]string{"-nope"}, false, true},
		{[]string{"-interval", "0s"}, false, true},
	} {
		opts, err := parseArgs(test.args, io.Discard)
		if (err != nil) != test.wantErr {
			t.Errorf("%d: args=%q err=%v wantErr=%t", i, test.args, err, test.wantErr)
			continue
		}
		if err == nil && opts.config.Slide != test.wantSlide {
			t.Errorf("%d: args=%q Got slide=%t Want=%t", i, test.args, opts.config.Slide, test.wantSlide)
		}
	}
}

func TestParseArgsDefaults(t *testing.T) {
	opts, err := parseArgs([]string{"-font", "f.txt", "-driver", "tcell", "-interval", "20ms"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if opts.config.FontPath != "f.txt" || opts.config.Driver != "tcell" || opts.config.Interval != 20*time.Millisecond {
		t.Errorf("Got=%+v", opts.config)
	}

	opts, err = parseArgs(nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if opts.config.Driver != "ansi" || opts.config.Interval != 50*time.Millisecond || opts.config.FontPath != "" {
		t.Errorf("Got=%+v", opts.config)
	}
}

type failingTTY struct {
	calls int
}

func (f *failingTTY) LeaveRaw() error {
	f.calls++
	return errors.New("bad fd")
}

func TestTeardownLogsRestoreFailure(t *testing.T) {
	var screen, logged bytes.Buffer
	lg := termclock.NewWriterLogger(&logged)
	app := termclock.NewApp(termclock.Config{}, termclock.DefaultFont(), 80, termclock.NewTermScreen(&screen))
	tty := &failingTTY{}

	teardown(app, tty, lg)

	if tty.calls != 1 {
		t.Errorf("Got %d LeaveRaw calls Want 1", tty.calls)
	}
	if !strings.Contains(screen.String(), "\x1b[?25h") {
		t.Errorf("cursor not restored: %q", screen.String())
	}
	if !strings.Contains(logged.String(), "Could not restore terminal state: bad fd") {
		t.Errorf("restore failure not logged: %q", logged.String())
	}
}

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/madmuggle/termclock"
	"github.com/madmuggle/termclock/term"
)

const version = "termclock <unversioned>"

type options struct {
	config  termclock.Config
	logfile string
	version bool
}

var errUsage = errors.New("usage")

// parseArgs reads flags from args, which excludes the program name. A lone
// "slide" argument is accepted in place of -slide.
func parseArgs(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("termclock", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.logfile, "debug-logfile", "", "debug logfile")
	fs.BoolVar(&opts.version, "version", false, "version")
	fs.BoolVar(&opts.config.Slide, "slide", false, "scroll the clock across the terminal")
	fs.StringVar(&opts.config.FontPath, "font", "", "font file (default: built-in font)")
	fs.DurationVar(&opts.config.Interval, "interval", termclock.DefaultInterval, "time between frames")
	fs.StringVar(&opts.config.Driver, "driver", termclock.DriverANSI, "terminal driver: ansi or tcell")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch {
	case fs.NArg() == 0:
	case fs.NArg() == 1 && fs.Arg(0) == "slide":
		opts.config.Slide = true
	default:
		fs.Usage()
		return opts, errUsage
	}

	if opts.config.Interval <= 0 {
		return opts, fmt.Errorf("interval must be positive: %v", opts.config.Interval)
	}
	return opts, nil
}

type rawTTY interface {
	LeaveRaw() error
}

// teardown restores the screen, then the tty settings, and flushes the log.
func teardown(app termclock.App, tty rawTTY, log termclock.Logger) {
	if err := app.Close(); err != nil {
		log.Warn("Could not restore screen: %v", err)
	}
	if err := tty.LeaveRaw(); err != nil {
		log.Warn("Could not restore terminal state: %v", err)
	}
	log.Flush()
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	switch {
	case err == flag.ErrHelp:
		return
	case err == errUsage:
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if opts.version {
		fmt.Println(version)
		return
	}

	logfile := opts.logfile
	config := opts.config

	var log termclock.Logger = termclock.NullLogger{}
	if logfile != "" {
		var err error
		log, err = termclock.FileLogger(logfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open debug logfile %q: %s\n", logfile, err)
			os.Exit(1)
		}
		termclock.SetLogger(log)
	}

	font := termclock.DefaultFont()
	if config.FontPath != "" {
		var err error
		font, err = termclock.LoadFontFile(config.FontPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not load font: %v\n", err)
			os.Exit(1)
		}
	}

	reactor := termclock.NewReactor()

	var screen termclock.Screen
	var width int
	var ttyState *term.TTYState
	switch config.Driver {
	case termclock.DriverANSI:
		var err error
		_, width, err = term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not get terminal size: %v\n", err)
			os.Exit(1)
		}
		// Stdin may be redirected, in which case keystrokes simply echo.
		ttyState, _ = term.EnterRaw(int(os.Stdin.Fd()))
		screen = termclock.NewTermScreen(os.Stdout)
		termclock.CollectInterrupt(reactor)
	case termclock.DriverTcell:
		s, err := tcell.NewScreen()
		if err == nil {
			err = s.Init()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not initialise terminal: %v\n", err)
			os.Exit(1)
		}
		width, _ = s.Size()
		screen = termclock.NewTcellScreen(s)
		termclock.CollectTcellKeys(reactor, s)
		termclock.CollectInterrupt(reactor)
	default:
		fmt.Fprintf(os.Stderr, "Unknown driver %q (use \"ansi\" or \"tcell\")\n", config.Driver)
		os.Exit(1)
	}

	app := termclock.NewApp(config, font, width, screen)
	err = app.Initialise()
	if err == nil {
		termclock.CollectTicks(reactor, config.Interval, time.Now, func(now time.Time) {
			if err := app.Tick(now); err != nil {
				reactor.Stop(err)
			}
		})
		err = reactor.Run()
	}

	teardown(app, ttyState, log)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package termclock

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"
)

type Logger interface {
	Info(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Flush() error
	SetCycle(int)
}

// The terminal owns stdout while the clock runs, so logging is silent unless
// a log file is configured.
var log Logger = NullLogger{}

func SetLogger(l Logger) {
	log = l
}

type NullLogger struct{}

func (NullLogger) Info(format string, args ...interface{})  {}
func (NullLogger) Debug(format string, args ...interface{}) {}
func (NullLogger) Warn(format string, args ...interface{})  {}
func (NullLogger) SetCycle(int)                             {}
func (NullLogger) Flush() error                             { return nil }

func FileLogger(filepath string) (Logger, error) {
	f, err := os.OpenFile(filepath, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0664)
	if err != nil {
		return nil, err
	}
	return NewWriterLogger(f), nil
}

// NewWriterLogger buffers log lines and copies them to w on Flush.
func NewWriterLogger(w io.Writer) Logger {
	return &writerLogger{
		buf: new(bytes.Buffer),
		out: w,
		now: time.Now,
	}
}

type writerLogger struct {
	buf   *bytes.Buffer
	out   io.Writer
	err   error
	cycle int
	now   func() time.Time
}

type level int

const (
	info level = iota
	debug
	warn
)

func (l level) String() string {
	switch l {
	case info:
		return "Info"
	case debug:
		return "Debug"
	case warn:
		return "Warn"
	default:
		assert(false)
		return ""
	}
}

func (w *writerLogger) Info(format string, args ...interface{}) {
	w.log(info, format, args...)
}

func (w *writerLogger) Debug(format string, args ...interface{}) {
	w.log(debug, format, args...)
}

func (w *writerLogger) Warn(format string, args ...interface{}) {
	w.log(warn, format, args...)
	w.Flush()
}

func (w *writerLogger) log(lvl level, format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	format = fmt.Sprintf(
		"%s [%-5s] [%d] %s\n",
		w.now().Format("15:04:05.000000"),
		lvl,
		w.cycle,
		format,
	)
	_, w.err = fmt.Fprintf(w.buf, format, args...)
}

func (w *writerLogger) SetCycle(cycle int) {
	w.cycle = cycle
}

func (w *writerLogger) Flush() error {
	if w.err != nil {
		return w.err
	}
	_, err := io.Copy(w.out, w.buf)
	w.buf.Reset()
	if err != nil {
		w.err = err
	}
	return err
}

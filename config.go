package termclock

import "time"

const DefaultInterval = 50 * time.Millisecond

// Drivers selectable with Config.Driver.
const (
	DriverANSI  = "ansi"
	DriverTcell = "tcell"
)

type Config struct {
	Slide    bool
	FontPath string // empty selects DefaultFont
	Interval time.Duration
	Driver   string
}

package termclock

import "math"

// Scroller slides the content buffer from right to left across a window as
// wide as the terminal, wrapping once the content has fully left the screen.
type Scroller struct {
	width  int
	offset int // window column of the content's first column
	window [][]rune
}

func NewScroller(height, width int) *Scroller {
	window := make([][]rune, height)
	for r := range window {
		window[r] = blankRow(width)
	}
	return &Scroller{width: width, window: window}
}

// AdvanceWindow copies the visible part of content into the window at the
// current offset, blanking every other column, then moves one column left.
func (s *Scroller) AdvanceWindow(content [][]rune) {
	assert(len(content) == len(s.window))
	contentWidth := 0
	if len(content) > 0 {
		contentWidth = len(content[0])
	}

	for r := range s.window {
		for c := 0; c < s.width; c++ {
			if c >= s.offset && c-s.offset <= contentWidth-1 {
				s.window[r][c] = content[r][c-s.offset]
			} else {
				s.window[r][c] = ' '
			}
		}
	}

	s.offset--
	if s.offset+contentWidth < 0 {
		s.offset = s.width
	}
}

func (s *Scroller) Offset() int {
	return s.offset
}

// Window returns the window buffer. It is overwritten by the next advance.
func (s *Scroller) Window() [][]rune {
	return s.window
}

func (s *Scroller) Rows() []string {
	return bufferRows(s.window)
}

// Indent is the left padding that centres contentWidth columns in a terminal
// termWidth columns wide. Halves round to even; narrow terminals get zero.
func Indent(termWidth, contentWidth int) int {
	indent := int(math.RoundToEven(float64(termWidth-contentWidth) / 2))
	if indent < 0 {
		return 0
	}
	return indent
}

// CenteredRows renders content for static mode.
func CenteredRows(content [][]rune, termWidth int) []string {
	rows := bufferRows(content)
	if len(rows) == 0 {
		return rows
	}
	pad := string(blankRow(Indent(termWidth, len(content[0]))))
	for i := range rows {
		rows[i] = pad + rows[i]
	}
	return rows
}

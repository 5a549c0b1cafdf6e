package termclock

// Cell positions within the content buffer.
const (
	NumCells = 8
	sepCell1 = 2
	sepCell2 = 5
)

// Compositor paints the time, one glyph per cell, into a content buffer that
// is exactly NumCells glyphs wide.
type Compositor struct {
	font *GlyphTable

	// Invariants:
	//  1) len(content) == font.Height()
	//  2) Each row has exactly NumCells*font.Width() runes.
	content [][]rune

	sepIdx     int // next separator glyph to paint, SepPrimary or SepAlt
	prevSecond int
}

func NewCompositor(font *GlyphTable) *Compositor {
	content := make([][]rune, font.Height())
	for r := range content {
		content[r] = blankRow(font.Width() * NumCells)
	}
	return &Compositor{
		font:    font,
		content: content,
		sepIdx:  SepPrimary,
	}
}

// UpdateContent paints h, m and s into the digit cells. The separators are
// repainted only when s differs from the second seen by the previous call.
func (c *Compositor) UpdateContent(hour, minute, second int) {
	for i, field := range [...]int{hour, minute, second} {
		cell := i * 3
		c.fillGlyph(field%10, cell+1)
		c.fillGlyph(field/10, cell)
	}
	if second != c.prevSecond {
		c.ReverseSeparator()
		c.prevSecond = second
	}
}

// ReverseSeparator paints the current separator shape into both separator
// cells, then switches to the other shape for next time.
func (c *Compositor) ReverseSeparator() {
	c.fillGlyph(c.sepIdx, sepCell1)
	c.fillGlyph(c.sepIdx, sepCell2)
	if c.sepIdx == SepAlt {
		c.sepIdx = SepPrimary
	} else {
		c.sepIdx = SepAlt
	}
}

func (c *Compositor) fillGlyph(idx, cell int) {
	glyph := c.font.Glyph(idx)
	col := cell * c.font.Width()
	for r := range glyph {
		copy(c.content[r][col:col+c.font.Width()], glyph[r])
	}
}

// Separator returns the separator glyph index the next ReverseSeparator
// will paint.
func (c *Compositor) Separator() int {
	return c.sepIdx
}

// Cell returns a copy of the glyph currently painted at cell.
func (c *Compositor) Cell(cell int) Glyph {
	w := c.font.Width()
	g := make(Glyph, len(c.content))
	for r := range c.content {
		g[r] = append([]rune(nil), c.content[r][cell*w:(cell+1)*w]...)
	}
	return g
}

// Content returns the content buffer. It is overwritten by the next update.
func (c *Compositor) Content() [][]rune {
	return c.content
}

func (c *Compositor) Width() int {
	return c.font.Width() * NumCells
}

func (c *Compositor) Rows() []string {
	return bufferRows(c.content)
}

func blankRow(n int) []rune {
	row := make([]rune, n)
	for i := range row {
		row[i] = ' '
	}
	return row
}

func bufferRows(buf [][]rune) []string {
	rows := make([]string, len(buf))
	for r := range buf {
		rows[r] = string(buf[r])
	}
	return rows
}

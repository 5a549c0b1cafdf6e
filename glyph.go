package termclock

// Glyph table layout: digits 0-9 followed by the two separator shapes that
// alternate once per second.
const (
	NumGlyphs  = 12
	SepPrimary = 10
	SepAlt     = 11
)

// Glyph is a rectangular character bitmap, indexed [row][col].
type Glyph [][]rune

// GlyphTable is an immutable set of NumGlyphs equally sized glyphs.
type GlyphTable struct {
	glyphs        [NumGlyphs]Glyph
	width, height int
}

func (g *GlyphTable) Width() int {
	return g.width
}

func (g *GlyphTable) Height() int {
	return g.height
}

// Glyph returns the bitmap at idx. The returned rows must not be modified.
func (g *GlyphTable) Glyph(idx int) Glyph {
	return g.glyphs[idx]
}

// Index returns the glyph index whose bitmap equals cell, or -1.
func (g *GlyphTable) Index(cell Glyph) int {
	for i, glyph := range g.glyphs {
		if glyphsEqual(glyph, cell) {
			return i
		}
	}
	return -1
}

func glyphsEqual(a, b Glyph) bool {
	if len(a) != len(b) {
		return false
	}
	for r := range a {
		if string(a[r]) != string(b[r]) {
			return false
		}
	}
	return true
}

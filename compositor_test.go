package termclock

import "testing"

func decodeCells(t *testing.T, c *Compositor, font *GlyphTable) [NumCells]int {
	t.Helper()
	var got [NumCells]int
	for i := range got {
		got[i] = font.Index(c.Cell(i))
	}
	return got
}

func TestUpdateContentRoundTrip(t *testing.T) {
	font := testFont(t, 1, 1)
	c := NewCompositor(font)
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			for s := 0; s < 60; s++ {
				c.UpdateContent(h, m, s)
				cells := decodeCells(t, c, font)
				gotH := cells[0]*10 + cells[1]
				gotM := cells[3]*10 + cells[4]
				gotS := cells[6]*10 + cells[7]
				if gotH != h || gotM != m || gotS != s {
					t.Fatalf("Got=%02d:%02d:%02d Want=%02d:%02d:%02d", gotH, gotM, gotS, h, m, s)
				}
			}
		}
	}
}

func TestUpdateContentDefaultFont(t *testing.T) {
	font := DefaultFont()
	c := NewCompositor(font)
	for i, test := range []struct {
		h, m, s int
	}{
		{0, 0, 1},
		{12, 34, 56},
		{23, 59, 59},
		{19, 8, 27},
	} {
		c.UpdateContent(test.h, test.m, test.s)
		cells := decodeCells(t, c, font)
		want := [NumCells]int{
			test.h / 10, test.h % 10, cells[2],
			test.m / 10, test.m % 10, cells[5],
			test.s / 10, test.s % 10,
		}
		if cells != want {
			t.Errorf("%d: Got=%v Want=%v", i, cells, want)
		}
		if cells[2] != SepPrimary && cells[2] != SepAlt {
			t.Errorf("%d: separator cell holds glyph %d", i, cells[2])
		}
	}
}

func TestUpdateContentExample(t *testing.T) {
	font := testFont(t, 5, 3)
	c := NewCompositor(font)
	if c.Width() != 40 {
		t.Fatalf("Got width=%d Want=40", c.Width())
	}

	c.UpdateContent(9, 5, 7)
	want := [NumCells]int{0, 9, SepPrimary, 0, 5, SepPrimary, 0, 7}
	if got := decodeCells(t, c, font); got != want {
		t.Errorf("Got=%v Want=%v", got, want)
	}
	wantRow := "00000" + "99999" + ":::::" + "00000" + "55555" + ":::::" + "00000" + "77777"
	for r, got := range c.Rows() {
		if got != wantRow {
			t.Errorf("row %d: Got=%q Want=%q", r, got, wantRow)
		}
	}
	sep := c.Separator()

	c.UpdateContent(9, 5, 7)
	if got := decodeCells(t, c, font); got != want {
		t.Errorf("same second: Got=%v Want=%v", got, want)
	}
	if c.Separator() != sep {
		t.Errorf("same second toggled separator: Got=%d Want=%d", c.Separator(), sep)
	}
}

func TestSeparatorBlink(t *testing.T) {
	font := testFont(t, 2, 2)
	c := NewCompositor(font)

	// Nothing is painted between the fields until the first new second.
	c.UpdateContent(12, 0, 0)
	if got := font.Index(c.Cell(2)); got != -1 {
		t.Errorf("separator painted before first second change: %d", got)
	}

	for i, test := range []struct {
		second int
		want   int
	}{
		{1, SepPrimary},
		{1, SepPrimary},
		{2, SepAlt},
		{2, SepAlt},
		{2, SepAlt},
		{3, SepPrimary},
		{59, SepAlt},
		{0, SepPrimary},
	} {
		c.UpdateContent(12, 0, test.second)
		for _, cell := range []int{2, 5} {
			if got := font.Index(c.Cell(cell)); got != test.want {
				t.Errorf("%d: cell %d Got=%d Want=%d", i, cell, got, test.want)
			}
		}
	}
}

func TestReverseSeparator(t *testing.T) {
	font := testFont(t, 1, 1)
	c := NewCompositor(font)
	for i, want := range []int{SepPrimary, SepAlt, SepPrimary, SepAlt} {
		c.ReverseSeparator()
		if got := c.Rows()[0]; got[2] != byte(glyphChar(want)) || got[5] != byte(glyphChar(want)) {
			t.Errorf("%d: Got=%q Want separator %q", i, got, glyphChar(want))
		}
	}
}

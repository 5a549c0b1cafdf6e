package termclock

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

//go:embed fonts/default.txt
var defaultFont []byte

// Every glyph character must occupy exactly one terminal column, regardless
// of the user's locale.
var widthCond = &runewidth.Condition{EastAsianWidth: false}

// LoadError reports a font source that could not be read or decoded.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	path := e.Path
	if path == "" {
		path = "<font>"
	}
	if e.Err != nil {
		return fmt.Sprintf("load font %s: %s: %v", path, e.Reason, e.Err)
	}
	return fmt.Sprintf("load font %s: %s", path, e.Reason)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// DefaultFont returns the glyph table compiled into the binary.
func DefaultFont() *GlyphTable {
	tbl, err := LoadFont(bytes.NewReader(defaultFont))
	assert(err == nil)
	return tbl
}

// LoadFontFile reads a font from path. Relative paths that don't exist under
// the working directory are looked up next to the executable.
func LoadFontFile(path string) (*GlyphTable, error) {
	path = ResolveFontPath(path)
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "cannot open", Err: err}
	}
	defer f.Close()

	tbl, err := LoadFont(f)
	if lerr, ok := err.(*LoadError); ok {
		lerr.Path = path
	}
	return tbl, err
}

func ResolveFontPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	exe, err := os.Executable()
	if err != nil {
		return path
	}
	return filepath.Join(filepath.Dir(exe), path)
}

// LoadFont decodes NumGlyphs blank-line separated blocks. Every block must
// have the same number of rows, and every row the same number of columns.
func LoadFont(r io.Reader) (*GlyphTable, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Reason: "cannot read", Err: err}
	}

	if !utf8.Valid(raw) {
		return nil, &LoadError{Reason: "source is not valid UTF-8"}
	}

	text := strings.Replace(string(raw), "\r\n", "\n", -1)
	text = strings.TrimSuffix(text, "\n")

	blocks := strings.Split(text, "\n\n")
	if len(blocks) != NumGlyphs {
		return nil, &LoadError{Reason: fmt.Sprintf("want %d glyph blocks, got %d", NumGlyphs, len(blocks))}
	}

	tbl := &GlyphTable{}
	for i, block := range blocks {
		lines := strings.Split(block, "\n")
		glyph := make(Glyph, len(lines))
		for row, line := range lines {
			glyph[row] = []rune(line)
			for _, ch := range glyph[row] {
				if widthCond.RuneWidth(ch) != 1 {
					return nil, &LoadError{Reason: fmt.Sprintf("glyph %d row %d: character %q is not one column wide", i, row, ch)}
				}
			}
		}

		if i == 0 {
			tbl.height = len(glyph)
			tbl.width = len(glyph[0])
			if tbl.width == 0 {
				return nil, &LoadError{Reason: "glyph 0 has zero width"}
			}
		}
		if len(glyph) != tbl.height {
			return nil, &LoadError{Reason: fmt.Sprintf("glyph %d has %d rows, want %d", i, len(glyph), tbl.height)}
		}
		for row := range glyph {
			if len(glyph[row]) != tbl.width {
				return nil, &LoadError{Reason: fmt.Sprintf("glyph %d row %d has %d columns, want %d", i, row, len(glyph[row]), tbl.width)}
			}
		}
		tbl.glyphs[i] = glyph
	}

	log.Debug("Loaded font: glyphs=%d width=%d height=%d", NumGlyphs, tbl.width, tbl.height)
	return tbl, nil
}

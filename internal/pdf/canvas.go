package pdf

import (
	"strings"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
	"github.com/samber/lo"
)

// canvas wraps an fpdf document with the text helpers the invoice needs.
// Every string goes through the cp1252 translator of the core fonts.
type canvas struct {
	f      *fpdf.Fpdf
	tr     func(string) string
	family string
}

func newCanvas(f *fpdf.Fpdf, family string) *canvas {
	return &canvas{
		f:      f,
		tr:     f.UnicodeTranslatorFromDescriptor(""),
		family: family,
	}
}

func (c *canvas) font(style string, size float64) {
	c.f.SetFont(c.family, style, size)
}

func (c *canvas) text(x, y float64, s string) {
	if s == "" {
		return
	}
	c.f.Text(x, y, c.tr(s))
}

func (c *canvas) textRight(x, y float64, s string) {
	s = c.tr(s)
	c.f.Text(x-c.f.GetStringWidth(s), y, s)
}

func (c *canvas) textCenter(x, y float64, s string) {
	s = c.tr(s)
	c.f.Text(x-c.f.GetStringWidth(s)/2, y, s)
}

func (c *canvas) rule(x1, x2, y float64) {
	c.f.Line(x1, y, x2, y)
}

// wrap breaks s on spaces into translated lines no wider than width.
// Words wider than width are broken between glyphs.
func (c *canvas) wrap(s string, width float64) []string {
	words := strings.Fields(c.tr(s))
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := ""
	for _, word := range words {
		for _, piece := range c.breakWord(word, width) {
			switch {
			case line == "":
				line = piece
			case c.f.GetStringWidth(line+" "+piece) <= width:
				line += " " + piece
			default:
				lines = append(lines, line)
				line = piece
			}
		}
	}
	return append(lines, line)
}

// breakWord splits a translated word into pieces no wider than width.
// Translated text is single byte cp1252, so byte offsets are glyph offsets.
func (c *canvas) breakWord(word string, width float64) []string {
	if c.f.GetStringWidth(word) <= width {
		return []string{word}
	}

	var pieces []string
	start := 0
	for end := start + 2; end <= len(word); end++ {
		if c.f.GetStringWidth(word[start:end]) > width {
			pieces = append(pieces, word[start:end-1])
			start = end - 1
		}
	}
	return append(pieces, word[start:])
}

// unprintable returns the distinct runes of s that the core font encoding
// has no glyph for. The translator turns those into '.'.
func (c *canvas) unprintable(s string) []rune {
	var out []rune
	for _, r := range s {
		if r < utf8.RuneSelf {
			continue
		}
		if c.tr(string(r)) == "." && !lo.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}

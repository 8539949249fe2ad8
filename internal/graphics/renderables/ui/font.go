package ui

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Glyph atlas built from the 7x13 bitmap face. Covers printable ASCII;
// anything outside the range renders as a space.
const (
	glyphFirst  = 32
	glyphLast   = 126
	glyphWidth  = 7
	glyphHeight = 13
)

// buildFontAtlas rasterizes the ASCII range into a single-row RGBA strip:
// white glyphs on transparent background, one fixed-width cell per rune.
func buildFontAtlas() *image.RGBA {
	atlas := image.NewRGBA(image.Rect(0, 0, (glyphLast-glyphFirst+1)*glyphWidth, glyphHeight))
	d := font.Drawer{
		Dst:  atlas,
		Src:  image.White,
		Face: basicfont.Face7x13,
	}
	for c := glyphFirst; c <= glyphLast; c++ {
		d.Dot = fixed.P((c-glyphFirst)*glyphWidth, basicfont.Face7x13.Ascent)
		d.DrawString(string(rune(c)))
	}
	return atlas
}

// glyphCell returns the atlas column for a rune.
func glyphCell(r rune) int {
	if r < glyphFirst || r > glyphLast {
		r = ' '
	}
	return int(r) - glyphFirst
}

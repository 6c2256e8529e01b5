// Package render draws age grids: as text, on a tcell terminal, or into an
// ebiten image when built with the ebiten tag.
package render

import "image/color"

var (
	deadColor  = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	youngColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	oldColor   = color.RGBA{R: 190, G: 190, B: 190, A: 255}
)

// AgePalette returns maxAge+1 colors. Index 0 is the dead background; living
// cells start dark and fade to gray as they approach maxAge.
func AgePalette(maxAge int) []color.RGBA {
	if maxAge < 1 {
		maxAge = 1
	}
	palette := make([]color.RGBA, maxAge+1)
	palette[0] = deadColor
	for age := 1; age <= maxAge; age++ {
		t := 0.0
		if maxAge > 1 {
			t = float64(age-1) / float64(maxAge-1)
		}
		palette[age] = lerp(youngColor, oldColor, t)
	}
	return palette
}

// ColorFor picks the palette entry for age, clamping ages past the end.
func ColorFor(palette []color.RGBA, age int) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{}
	}
	if age < 0 {
		age = 0
	}
	if last := len(palette) - 1; age > last {
		age = last
	}
	return palette[age]
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-t) + float64(y)*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// fillAgeRGBA converts cell ages into RGBA pixels using a palette. When the
// palette is empty the buffer is cleared to transparent black.
func fillAgeRGBA(buf []byte, ages []int, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range ages {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	for i, age := range ages {
		base := i * 4
		col := ColorFor(palette, age)
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

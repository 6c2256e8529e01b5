package render

import (
	"image/color"
	"testing"
)

func TestAgePaletteFadesFromDarkToGray(t *testing.T) {
	p := AgePalette(20)
	if len(p) != 21 {
		t.Fatalf("palette has %d entries, want 21", len(p))
	}
	if p[0] != deadColor {
		t.Fatalf("dead color = %v", p[0])
	}
	if p[1] != youngColor || p[20] != oldColor {
		t.Fatalf("endpoints %v..%v, want %v..%v", p[1], p[20], youngColor, oldColor)
	}
	for age := 2; age <= 20; age++ {
		if p[age].R < p[age-1].R {
			t.Fatalf("palette darkens at age %d", age)
		}
	}
}

func TestColorForClamps(t *testing.T) {
	p := AgePalette(3)
	if ColorFor(p, 99) != p[3] {
		t.Fatal("ages past max must use the last color")
	}
	if ColorFor(p, -1) != p[0] {
		t.Fatal("negative ages must use the dead color")
	}
	if ColorFor(nil, 1) != (color.RGBA{}) {
		t.Fatal("empty palette must yield zero color")
	}
}

func TestFillAgeRGBA(t *testing.T) {
	p := AgePalette(2)
	ages := []int{0, 1, 5}
	buf := make([]byte, 4*len(ages))
	fillAgeRGBA(buf, ages, p)
	for i, age := range ages {
		want := ColorFor(p, age)
		got := color.RGBA{R: buf[i*4], G: buf[i*4+1], B: buf[i*4+2], A: buf[i*4+3]}
		if got != want {
			t.Fatalf("pixel %d = %v, want %v", i, got, want)
		}
	}

	fillAgeRGBA(buf, ages, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d after clearing", i, b)
		}
	}
}

package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 2)

	// empty canvas renders only blank braille cells
	for _, r := range strings.ReplaceAll(c.String(), "\n", "") {
		if r != 0x2800 {
			t.Fatalf("fresh canvas not blank: %q", r)
		}
	}

	c.Set(0, 0)
	line := []rune(strings.SplitN(c.String(), "\n", 2)[0])
	if line[0] == 0x2800 {
		t.Error("set dot did not light its cell")
	}

	// out-of-range dots are dropped, not wrapped
	c.Set(-1, 0)
	c.Set(0, -5)
	c.Set(4*2, 0)
	c.Set(0, 2*4)
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(3, 3)
	c.Clear()
	for _, r := range strings.ReplaceAll(c.String(), "\n", "") {
		if r != 0x2800 {
			t.Error("clear left dots behind")
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 19, 39)

	lit := 0
	for _, r := range strings.ReplaceAll(c.String(), "\n", "") {
		if r != 0x2800 {
			lit++
		}
	}
	if lit == 0 {
		t.Error("line lit no cells")
	}
}

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillCircle(10, 20, 0)
	line := []rune(strings.Split(c.String(), "\n")[5])
	if line[5] == 0x2800 {
		t.Error("zero-radius circle did not set its center dot")
	}

	c.Clear()
	c.FillCircle(10, 20, 6)
	lit := 0
	for _, r := range strings.ReplaceAll(c.String(), "\n", "") {
		if r != 0x2800 {
			lit++
		}
	}
	if lit < 9 {
		t.Errorf("filled circle too sparse: %d cells", lit)
	}
}

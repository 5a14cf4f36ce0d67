package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'P', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'P' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'P'", c)
	}

	// Out of bounds writes are ignored
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(20, 5)
	end := s.DrawTextColor(2, 1, "Sauce", ColorRed)

	if end != 7 {
		t.Errorf("DrawTextColor returned %d, expected 7", end)
	}
	if got := strings.TrimSpace(s.Row(1)); got != "Sauce" {
		t.Errorf("Row(1) = %q, expected %q", got, "Sauce")
	}
	if s.GetCell(2, 1).Color != ColorRed {
		t.Error("text should carry its colour")
	}

	// Clipped at right boundary
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorDefault)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
}

func TestScreenResizeAndString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	if s.String() != "a  \n   " {
		t.Errorf("String() = %q", s.String())
	}

	s.Resize(4, 1)
	if s.Width() != 4 || s.Height() != 1 {
		t.Errorf("Resize: got %dx%d", s.Width(), s.Height())
	}
	if s.Row(0) != "    " {
		t.Errorf("Resize should clear the buffer, got %q", s.Row(0))
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawHLine(1, 0, 10, '-', ColorGray)

	if got := s.Row(0); got != " -----" {
		t.Errorf("Row(0) = %q, expected %q", got, " -----")
	}
	if c := s.GetCell(3, 0).Color; c != ColorGray {
		t.Errorf("color = %d, expected gray", c)
	}
}

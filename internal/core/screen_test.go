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

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	s.SetColor(2, 3, '@', ColorGreen)
	if c := s.GetCell(2, 3); c.Rune != '@' || c.Color != ColorGreen {
		t.Errorf("GetCell(2, 3) = %+v, expected green '@'", c)
	}

	// out of bounds writes are dropped
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.SetColor(0, 100, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
	if c := s.GetCell(0, 100); c.Color != ColorDefault {
		t.Errorf("out of bounds GetCell color = %v, expected default", c.Color)
	}
}

func TestScreenClearAndFill(t *testing.T) {
	s := NewScreen(4, 3)
	s.Fill('#')
	if s.Row(1) != "####" {
		t.Errorf("Row(1) after Fill = %q", s.Row(1))
	}
	s.SetColor(0, 0, 'x', ColorRed)
	s.Clear()
	if c := s.GetCell(0, 0); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("cell after Clear = %+v, expected blank", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(0, 0, "Hello")
	if got := s.Row(0)[:5]; got != "Hello" {
		t.Errorf("DrawText = %q, expected 'Hello'", got)
	}

	// clipped at the right edge
	s.DrawText(17, 1, "Overflow")
	if got := s.Row(1)[17:]; got != "Ove" {
		t.Errorf("clipped text = %q, expected 'Ove'", got)
	}

	// multibyte runes occupy one cell each
	s.DrawTextColor(0, 2, "█▓x", ColorBlue)
	if s.Get(2, 2) != 'x' {
		t.Errorf("Get(2, 2) = %q, expected 'x'", s.Get(2, 2))
	}
	if s.GetCell(0, 2).Color != ColorBlue {
		t.Error("DrawTextColor should color the cells")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawTextCentered(0, "Hi")
	if s.Get(9, 0) != 'H' || s.Get(10, 0) != 'i' {
		t.Errorf("centered text at wrong position: %q", s.Row(0))
	}

	s.DrawTextCenteredColor(1, "▶ Go", ColorYellow)
	if s.Get(8, 1) != '▶' {
		t.Errorf("rune-counted centering wrong: %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(0, 0, 5, 3))

	corners := []struct {
		x, y int
		r    rune
	}{
		{0, 0, '┌'}, {4, 0, '┐'}, {0, 2, '└'}, {4, 2, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.r {
			t.Errorf("corner (%d, %d) = %q, expected %q", c.x, c.y, got, c.r)
		}
	}
	if s.Get(2, 0) != '─' || s.Get(0, 1) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRectColor(NewRect(1, 1, 3, 2), '#', ColorBrown)

	if s.Row(1) != " ###  " || s.Row(2) != " ###  " {
		t.Errorf("rect rows = %q / %q", s.Row(1), s.Row(2))
	}
	if s.GetCell(2, 2).Color != ColorBrown {
		t.Error("DrawRectColor should color the cells")
	}
}

func TestScreenDrawSprite(t *testing.T) {
	s := NewScreen(6, 3)
	s.Fill('.')
	s.DrawSprite(1, 0, []string{"o o", " ^ "}, ColorGreen)

	if s.Row(0) != ".o.o.." {
		t.Errorf("row 0 = %q, expected spaces to stay transparent", s.Row(0))
	}
	if s.Row(1) != "..^..." {
		t.Errorf("row 1 = %q", s.Row(1))
	}
	if s.GetCell(1, 0).Color != ColorGreen || s.GetCell(2, 0).Color != ColorDefault {
		t.Error("only drawn sprite cells should take the sprite color")
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawHLine(0, 0, 10, '=')
	s.DrawVLine(4, 0, 5, '|')

	if s.Row(0) != "====|" {
		t.Errorf("row 0 = %q", s.Row(0))
	}
	if s.Get(4, 1) != '|' {
		t.Error("vertical line missing")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawTextColor(0, 0, "Hello", ColorCyan)

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Fatalf("size after grow = %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") || s.GetCell(0, 0).Color != ColorCyan {
		t.Error("content should survive grow")
	}

	s.Resize(3, 1)
	if s.Row(0) != "Hel" {
		t.Errorf("row after shrink = %q", s.Row(0))
	}

	s.Resize(-4, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Error("negative size should clamp to zero")
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	if s.Row(-1) != "    " || s.Row(2) != "    " {
		t.Error("out of bounds Row should be spaces")
	}
}

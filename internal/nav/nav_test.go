package nav

import "testing"

func TestSelection_Wraps(t *testing.T) {
	tests := []struct {
		name  string
		count int
		moves []string
		want  int
	}{
		{"next from start", 3, []string{"next"}, 1},
		{"next wraps to first", 3, []string{"next", "next", "next"}, 0},
		{"previous wraps to last", 3, []string{"prev"}, 2},
		{"previous then next", 4, []string{"prev", "next"}, 0},
		{"single item", 1, []string{"next", "prev", "next"}, 0},
		{"empty next", 0, []string{"next"}, 0},
		{"empty previous", 0, []string{"prev", "prev"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := NewSelection(tt.count)
			for _, move := range tt.moves {
				if move == "next" {
					sel.Next()
				} else {
					sel.Previous()
				}
			}
			if sel.Index() != tt.want {
				t.Errorf("Index() = %d, want %d", sel.Index(), tt.want)
			}
		})
	}
}

func TestSelection_StaysInBounds(t *testing.T) {
	sel := NewSelection(5)
	for i := 0; i < 23; i++ {
		sel.Next()
		if sel.Index() < 0 || sel.Index() >= sel.Count() {
			t.Fatalf("index %d out of [0,%d)", sel.Index(), sel.Count())
		}
	}
	for i := 0; i < 17; i++ {
		sel.Previous()
		if sel.Index() < 0 || sel.Index() >= sel.Count() {
			t.Fatalf("index %d out of [0,%d)", sel.Index(), sel.Count())
		}
	}
}

func TestSelection_Resize(t *testing.T) {
	sel := NewSelection(10)
	for i := 0; i < 8; i++ {
		sel.Next()
	}

	sel.Resize(4)
	if sel.Index() != 3 {
		t.Errorf("after shrink Index() = %d, want 3", sel.Index())
	}

	sel.Resize(0)
	if sel.Index() != 0 || !sel.Empty() {
		t.Errorf("after clear Index() = %d, Empty() = %v", sel.Index(), sel.Empty())
	}

	sel.Resize(6)
	if sel.Index() != 0 || sel.Count() != 6 {
		t.Errorf("after grow Index() = %d, Count() = %d", sel.Index(), sel.Count())
	}
}

func TestNewSelection_NegativeCount(t *testing.T) {
	sel := NewSelection(-2)
	sel.Next()
	if sel.Count() != 0 || sel.Index() != 0 {
		t.Errorf("got index %d count %d", sel.Index(), sel.Count())
	}
}

func TestLifecycle(t *testing.T) {
	var l Lifecycle
	if l != Running || l.Done() {
		t.Fatalf("zero value should be running, got %s", l)
	}

	l.Quit()
	if !l.Done() || l.String() != "quitting" {
		t.Errorf("after Quit got %s", l)
	}

	l.Quit()
	if l != Quitting {
		t.Errorf("Quit should be terminal, got %s", l)
	}
}

func TestPaletteCursor(t *testing.T) {
	c := NewPaletteCursor([]string{"blue", "emerald", "indigo", "red"}, 2)

	if got, _ := c.Current(); got != "indigo" {
		t.Errorf("start palette = %q, want indigo", got)
	}

	c.Next()
	c.Next()
	if got, _ := c.Current(); got != "blue" {
		t.Errorf("after wrap = %q, want blue", got)
	}

	c.Previous()
	if got, _ := c.Current(); got != "red" || c.Index() != 3 {
		t.Errorf("after previous = %q at %d, want red at 3", got, c.Index())
	}
}

func TestPaletteCursor_Empty(t *testing.T) {
	c := NewPaletteCursor[string](nil, 5)
	c.Next()

	if _, ok := c.Current(); ok {
		t.Error("empty cursor should report no palette")
	}
}

func TestPaletteCursor_OutOfRangeStart(t *testing.T) {
	c := NewPaletteCursor([]int{1, 2}, 9)
	if got, _ := c.Current(); got != 1 {
		t.Errorf("Current() = %d, want first palette", got)
	}
}

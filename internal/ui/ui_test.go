package ui

import (
	"image/color"
	"testing"
)

func TestButtonHitTest(t *testing.T) {
	b := NewButton(10, 20, 100, 30, "Start")
	cases := []struct {
		name string
		x, y int
		want bool
	}{
		{"top_left", 10, 20, true},
		{"inside", 60, 35, true},
		{"right_edge", 110, 35, false},
		{"above", 60, 19, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := b.IsClicked(c.x, c.y); got != c.want {
				t.Fatalf("expected %t, got %t", c.want, got)
			}
		})
	}

	b.Enabled = false
	if b.IsClicked(60, 35) {
		t.Fatalf("disabled button should ignore clicks")
	}
	if !b.Contains(60, 35) {
		t.Fatalf("Contains does not depend on Enabled")
	}
}

func TestSpeedButtonState(t *testing.T) {
	b := NewSpeedButton(100, 100, 10, []color.Color{color.White, color.Black})
	if !b.IsClicked(110, 100) || b.IsClicked(120, 100) {
		t.Fatalf("hit radius should be 1.5x size")
	}
	clicked := b.LastClickTime
	b.SetState(1)
	if b.CurrentState != 1 || !b.LastClickTime.After(clicked) {
		t.Fatalf("state change should be recorded")
	}
	last := b.LastClickTime
	b.SetState(1)
	if !b.LastClickTime.Equal(last) {
		t.Fatalf("same state should not restart the pulse")
	}
}

package scene

import (
	"errors"
	"testing"
)

func TestAppendAssignsMonotonicIDs(t *testing.T) {
	s := NewSceneState()

	for i := 0; i < 5; i++ {
		b := s.Append(float32(i), 0.5, 0)
		if b.ID != i {
			t.Errorf("block %d got ID %d", i, b.ID)
		}
	}
	if s.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", s.Len())
	}

	// Insertion order equals identifier order
	for i, b := range s.Blocks() {
		if b.ID != i {
			t.Errorf("Blocks()[%d].ID = %d", i, b.ID)
		}
	}
}

func TestByID(t *testing.T) {
	s := NewSceneState()
	placed := s.Append(1, 0.5, 2)

	got, err := s.ByID(placed.ID)
	if err != nil {
		t.Fatalf("ByID(%d) unexpected error: %v", placed.ID, err)
	}
	if got != placed {
		t.Errorf("ByID returned a different block")
	}

	if _, err := s.ByID(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("ByID(99) err = %v, want ErrNotFound", err)
	}
}

func TestCountInColumn(t *testing.T) {
	s := NewSceneState()
	s.Append(0, 0.5, 0)
	s.Append(0, 1.5, 0)
	s.Append(2, 0.5, 0)

	if got := s.CountInColumn(0, 0, 0.001); got != 2 {
		t.Errorf("CountInColumn(0,0) = %d, want 2", got)
	}
	if got := s.CountInColumn(2, 0, 0.001); got != 1 {
		t.Errorf("CountInColumn(2,0) = %d, want 1", got)
	}
	if got := s.CountInColumn(9, 9, 0.001); got != 0 {
		t.Errorf("CountInColumn(9,9) = %d, want 0", got)
	}
}

func TestToggleStyleAssignsHues(t *testing.T) {
	s := NewSceneState()
	for i := 0; i < 25; i++ {
		s.Append(float32(i), 0.5, 0)
	}

	if s.Style() != StyleTransparent {
		t.Fatalf("initial style = %v, want transparent", s.Style())
	}

	s.ToggleStyle()
	if s.Style() != StyleOpaque {
		t.Fatalf("style after toggle = %v, want opaque", s.Style())
	}
	for _, b := range s.Blocks() {
		if b.Style != StyleOpaque {
			t.Errorf("block %d style = %v, want opaque", b.ID, b.Style)
		}
		want := float32(b.ID) * HueStep
		want -= float32(int(want))
		if diff := b.Hue - want; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("block %d hue = %v, want %v", b.ID, b.Hue, want)
		}
		if b.Hue < 0 || b.Hue >= 1 {
			t.Errorf("block %d hue %v out of [0,1)", b.ID, b.Hue)
		}
	}

	// Hue wraps: id 20 lands back on 0.0
	b20, err := s.ByID(20)
	if err != nil {
		t.Fatal(err)
	}
	if b20.Hue > 1e-6 {
		t.Errorf("block 20 hue = %v, want 0 (wrapped)", b20.Hue)
	}
}

func TestToggleStyleTwiceRestores(t *testing.T) {
	s := NewSceneState()
	for i := 0; i < 4; i++ {
		s.Append(float32(i), 0.5, 0)
	}

	type tag struct {
		style BlockStyle
		hue   float32
	}
	before := make([]tag, 0, s.Len())
	for _, b := range s.Blocks() {
		before = append(before, tag{b.Style, b.Hue})
	}

	s.ToggleStyle()
	s.ToggleStyle()

	for i, b := range s.Blocks() {
		if b.Style != before[i].style || b.Hue != before[i].hue {
			t.Errorf("block %d changed: style %v hue %v, want style %v hue %v",
				b.ID, b.Style, b.Hue, before[i].style, before[i].hue)
		}
	}
}

func TestAppendUnderOpaqueStyleGetsHueImmediately(t *testing.T) {
	s := NewSceneState()
	s.ToggleStyle() // opaque now

	b := s.Append(0, 0.5, 0)
	s.Append(1, 0.5, 0) // id 1
	b1, _ := s.ByID(1)

	if b.Style != StyleOpaque || b1.Style != StyleOpaque {
		t.Fatalf("blocks created under opaque style not tagged opaque")
	}
	if b1.Hue != float32(0.05) {
		t.Errorf("block 1 hue = %v, want 0.05", b1.Hue)
	}
}

func TestBlockColorByStyle(t *testing.T) {
	transparent := &Block{ID: 1, Style: StyleTransparent}
	if c := transparent.Color(); c.W() >= 1 {
		t.Errorf("transparent alpha = %v, want < 1", c.W())
	}

	opaque := &Block{ID: 1, Style: StyleOpaque, Hue: 0.05}
	if c := opaque.Color(); c.W() != 1 {
		t.Errorf("opaque alpha = %v, want 1", c.W())
	}

	// Different hues resolve to different colors
	a := (&Block{Style: StyleOpaque, Hue: 0.1}).Color()
	b := (&Block{Style: StyleOpaque, Hue: 0.6}).Color()
	if a == b {
		t.Errorf("distinct hues produced identical colors: %v", a)
	}
}

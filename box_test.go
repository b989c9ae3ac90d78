package debugtex

import "testing"

func TestBox_CenterSize(t *testing.T) {
	b := Box{Min: Pt(128, 256), Max: Pt(256, 384)}
	if got := b.Center(); got != Pt(192, 320) {
		t.Errorf("Center() = %v, want (192, 320)", got)
	}
	if got := b.Size(); got != Pt(128, 128) {
		t.Errorf("Size() = %v, want (128, 128)", got)
	}
}

func TestRect(t *testing.T) {
	b := Rect(10, 20, 30, 40)
	want := Box{Min: Pt(10, 20), Max: Pt(40, 60)}
	if b != want {
		t.Errorf("Rect() = %v, want %v", b, want)
	}
}

func TestBox_WithSize(t *testing.T) {
	b := Rect(5, 5, 1, 1).WithSize(Pt(10, 20))
	if b.Min != Pt(5, 5) || b.Max != Pt(15, 25) {
		t.Errorf("WithSize() = %v", b)
	}
}

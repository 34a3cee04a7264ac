package tileproto

import (
	"image"
	"testing"
)

func TestTileUpdateMap(t *testing.T) {
	u := TileUpdate{Rect: RectFrom(image.Rect(64, 0, 67, 2)), Counts: []int{1, 2, 3, 4, 5, 6}}
	m := u.Map()
	if m.Rows != 2 || m.Cols != 3 || m.At(1, 2) != 6 {
		t.Fatalf("map %+v", m)
	}
	if u.Origin() != image.Pt(64, 0) {
		t.Fatalf("origin %v", u.Origin())
	}
}

package geometry

import (
	"reflect"
	"testing"
)

func TestEdgeCorners(t *testing.T) {
	bounds := Bounds{W: 4, H: 3}
	offset := Position{X: 2, Y: 5}

	expected := map[EdgeKind]Position{
		BottomLeft:  {X: 2, Y: 5},
		BottomRight: {X: 5, Y: 5},
		TopLeft:     {X: 2, Y: 7},
		TopRight:    {X: 5, Y: 7},
	}

	for kind, want := range expected {
		got := Edge(kind, bounds, offset)
		if got != want {
			t.Errorf("Edge(%s) = %s, expected %s", kind, got, want)
		}
	}
}

func TestEdgeSingleCellRegion(t *testing.T) {
	offset := Position{X: -3, Y: 9}
	for _, kind := range EdgeKinds {
		if got := Edge(kind, Bounds{W: 1, H: 1}, offset); got != offset {
			t.Errorf("Edge(%s) on a 1x1 region = %s, expected %s", kind, got, offset)
		}
	}
}

func TestSideAllOrdering(t *testing.T) {
	got := Side(All, Bounds{W: 2, H: 2}, Position{})
	expected := []Position{
		{0, 0}, {0, 1},
		{1, 0}, {1, 1},
		{-1, 0}, {1, 0},
		{-1, 1}, {1, 1},
	}

	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Side(All) = %v, expected %v", got, expected)
	}
}

func TestSingleSides(t *testing.T) {
	bounds := Bounds{W: 3, H: 2}
	offset := Position{X: 10, Y: 4}

	tests := []struct {
		kind     SideKind
		expected []Position
	}{
		{Bottom, []Position{{10, 4}, {11, 4}, {12, 4}}},
		{Top, []Position{{10, 5}, {11, 5}, {12, 5}}},
		{Left, []Position{{9, 4}, {9, 5}}},
		{Right, []Position{{12, 4}, {12, 5}}},
	}

	for _, tt := range tests {
		got := Side(tt.kind, bounds, offset)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("Side(%s) = %v, expected %v", tt.kind, got, tt.expected)
		}
	}
}

func TestSideAllLength(t *testing.T) {
	bounds := Bounds{W: 5, H: 7}
	got := Side(All, bounds, Position{X: 1, Y: 1})
	if len(got) != 2*bounds.W+2*bounds.H {
		t.Errorf("Expected %d cells, got %d", 2*bounds.W+2*bounds.H, len(got))
	}
}

func TestIsFirstPlatform(t *testing.T) {
	if !IsFirstPlatform(Position{}) {
		t.Error("Expected origin to be the first platform")
	}
	for _, p := range []Position{{1, 0}, {0, 1}, {-1, -1}} {
		if IsFirstPlatform(p) {
			t.Errorf("Did not expect %s to be the first platform", p)
		}
	}
}

func TestRegionHelpers(t *testing.T) {
	r := Region{Bounds: Bounds{W: 4, H: 3}, Offset: Position{X: 2, Y: 5}}

	if r.Edge(TopRight) != (Position{X: 5, Y: 7}) {
		t.Errorf("Unexpected top right corner %s", r.Edge(TopRight))
	}
	if len(r.Side(Bottom)) != 4 {
		t.Errorf("Expected 4 bottom cells, got %d", len(r.Side(Bottom)))
	}
	if r.IsFirstPlatform() {
		t.Error("Region at (2,5) is not the first platform")
	}
	if !r.Contains(Position{X: 2, Y: 5}) || !r.Contains(Position{X: 5, Y: 7}) {
		t.Error("Expected corners to be inside the region")
	}
	if r.Contains(Position{X: 6, Y: 7}) || r.Contains(Position{X: 2, Y: 4}) {
		t.Error("Expected cells past the bounds to be outside the region")
	}
}

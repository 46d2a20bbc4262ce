package tilemap

import "testing"

func TestTileUVRect(t *testing.T) {
	tests := []struct {
		index int
		want  UVRect
	}{
		{0, UVRect{0, 0, 0.125, 0.125}},
		{9, UVRect{0.125, 0.125, 0.25, 0.25}},
		{7, UVRect{0.875, 0, 1, 0.125}},
		{63, UVRect{0.875, 0.875, 1, 1}},
	}

	for _, tt := range tests {
		if got := TileUVRect(tt.index, 8); got != tt.want {
			t.Errorf("TileUVRect(%d, 8) = %+v, want %+v", tt.index, got, tt.want)
		}
	}
}

func TestAtlasCell(t *testing.T) {
	col, row := AtlasCell(9, 8)
	if col != 1 || row != 1 {
		t.Errorf("AtlasCell(9, 8) = (%d, %d), want (1, 1)", col, row)
	}
}

func TestUVCornersOrder(t *testing.T) {
	got := TileUVRect(9, 8).Corners()
	want := [8]float32{
		0.125, 0.125, // top-left
		0.25, 0.125, // top-right
		0.125, 0.25, // bottom-left
		0.25, 0.25, // bottom-right
	}
	if got != want {
		t.Errorf("Corners() = %v, want %v", got, want)
	}
}

func TestAtlasIndexAt(t *testing.T) {
	tests := []struct {
		x, y float64
		want int
	}{
		{0, 0, 0},
		{63.9, 0, 0},
		{64, 0, 1},
		{70, 70, 9},
		{511, 511, 63},
		{512, 10, -1},
		{-1, 10, -1},
	}

	for _, tt := range tests {
		if got := AtlasIndexAt(tt.x, tt.y, 512, 512, 8); got != tt.want {
			t.Errorf("AtlasIndexAt(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestMaterialsAppendOnly(t *testing.T) {
	m := NewMaterials()

	a, added := m.Index("grassy_tiles")
	if a != 0 || !added {
		t.Fatalf("first Index = (%d, %v), want (0, true)", a, added)
	}
	b, added := m.Index("water_tiles")
	if b != 1 || !added {
		t.Fatalf("second Index = (%d, %v), want (1, true)", b, added)
	}
	again, added := m.Index("grassy_tiles")
	if again != 0 || added {
		t.Errorf("repeat Index = (%d, %v), want (0, false)", again, added)
	}
	if m.Len() != 2 || m.At(1) != "water_tiles" || m.At(5) != "" {
		t.Errorf("unexpected materials state: len=%d at(1)=%q", m.Len(), m.At(1))
	}
}

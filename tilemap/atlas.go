package tilemap

import "math"

// UVRect is a normalized rectangle inside an atlas image. V grows downward,
// so row 0 is the top row of the atlas.
type UVRect struct {
	U0, V0, U1, V1 float32
}

// Corners returns the rectangle as four (u, v) pairs in quad vertex order:
// top-left, top-right, bottom-left, bottom-right.
func (r UVRect) Corners() [8]float32 {
	return [8]float32{
		r.U0, r.V0,
		r.U1, r.V0,
		r.U0, r.V1,
		r.U1, r.V1,
	}
}

// AtlasCell returns the column and row of tile index in an n×n atlas.
func AtlasCell(index, n int) (col, row int) {
	return index % n, index / n
}

// TileUVRect returns the UV rectangle of tile index in an n×n atlas.
func TileUVRect(index, n int) UVRect {
	col, row := AtlasCell(index, n)
	s := 1 / float32(n)
	return UVRect{
		U0: s * float32(col),
		V0: s * float32(row),
		U1: s * float32(col+1),
		V1: s * float32(row+1),
	}
}

// AtlasIndexAt maps a point inside a w×h picture of an n×n atlas to the tile
// index under it. It returns -1 when the point lies outside the picture.
func AtlasIndexAt(x, y, w, h float64, n int) int {
	if w <= 0 || h <= 0 || x < 0 || y < 0 || x >= w || y >= h {
		return -1
	}
	col := int(math.Floor(x / w * float64(n)))
	row := int(math.Floor(y / h * float64(n)))
	return row*n + col
}

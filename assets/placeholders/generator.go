// Package placeholders draws the procedural tile-set atlases, sprite sheets
// and sound blips the game ships with instead of art files.
package placeholders

import (
	"image"
	"image/color"
	"image/draw"
)

// TileSize is the pixel size of one atlas cell and one sprite frame.
const TileSize = 16

// Palette holds the colours the generators draw with.
var Palette = struct {
	Grass     color.RGBA
	GrassDark color.RGBA
	Path      color.RGBA
	Rock      color.RGBA
	Tree      color.RGBA
	Water     color.RGBA
	WaterDeep color.RGBA
	Foam      color.RGBA
	Missing   color.RGBA

	Player      color.RGBA
	WingLeft    color.RGBA
	WingRight   color.RGBA
	Outline     color.RGBA
	Transparent color.RGBA
}{
	Grass:     color.RGBA{96, 168, 72, 255},
	GrassDark: color.RGBA{64, 128, 56, 255},
	Path:      color.RGBA{196, 164, 112, 255},
	Rock:      color.RGBA{128, 128, 136, 255},
	Tree:      color.RGBA{32, 96, 40, 255},
	Water:     color.RGBA{56, 120, 200, 255},
	WaterDeep: color.RGBA{32, 80, 160, 255},
	Foam:      color.RGBA{200, 224, 248, 255},
	Missing:   color.RGBA{255, 0, 255, 255},

	Player:      color.RGBA{240, 200, 64, 255},
	WingLeft:    color.RGBA{240, 120, 200, 255},
	WingRight:   color.RGBA{200, 96, 240, 255},
	Outline:     color.RGBA{24, 24, 32, 255},
	Transparent: color.RGBA{0, 0, 0, 0},
}

// CreateSolidTile creates a simple solid-coloured tile.
func CreateSolidTile(col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateBorderedTile creates a tile with a border.
func CreateBorderedTile(fill, border color.RGBA, width int) *image.RGBA {
	img := CreateSolidTile(fill)
	for i := 0; i < width; i++ {
		for p := 0; p < TileSize; p++ {
			img.Set(p, i, border)
			img.Set(p, TileSize-1-i, border)
			img.Set(i, p, border)
			img.Set(TileSize-1-i, p, border)
		}
	}
	return img
}

// CreatePatternedTile creates a tile with a simple pattern: "dots",
// "stripes", "checker" or "cross". Unknown patterns leave the tile solid.
func CreatePatternedTile(base, accent color.RGBA, pattern string) *image.RGBA {
	img := CreateSolidTile(base)

	switch pattern {
	case "dots":
		q := TileSize / 4
		for _, p := range []image.Point{{q, q}, {3 * q, q}, {2 * q, 2 * q}, {q, 3 * q}, {3 * q, 3 * q}} {
			img.Set(p.X, p.Y, accent)
		}
	case "stripes":
		for y := 2; y < TileSize; y += 4 {
			for x := 0; x < TileSize; x++ {
				img.Set(x, y, accent)
			}
		}
	case "checker":
		for y := 0; y < TileSize; y++ {
			for x := 0; x < TileSize; x++ {
				if (x/4+y/4)%2 == 0 {
					img.Set(x, y, accent)
				}
			}
		}
	case "cross":
		mid := TileSize / 2
		for i := 2; i < TileSize-2; i++ {
			img.Set(mid, i, accent)
			img.Set(i, mid, accent)
		}
	}

	return img
}

// CreateCircle draws a filled, outlined circle on a transparent frame.
func CreateCircle(fill, outline color.RGBA, radius int) *image.RGBA {
	img := CreateSolidTile(Palette.Transparent)
	c := TileSize / 2
	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			dx, dy := x-c, y-c
			d := dx*dx + dy*dy
			if d <= radius*radius {
				img.Set(x, y, fill)
			} else if d <= (radius+1)*(radius+1) {
				img.Set(x, y, outline)
			}
		}
	}
	return img
}

// CreateAtlas lays tiles out row by row, columns wide. Nil tiles stay
// transparent.
func CreateAtlas(tiles []*image.RGBA, columns int) *image.RGBA {
	rows := (len(tiles) + columns - 1) / columns
	atlas := image.NewRGBA(image.Rect(0, 0, columns*TileSize, rows*TileSize))

	for i, tile := range tiles {
		if tile == nil {
			continue
		}
		x := (i % columns) * TileSize
		y := (i / columns) * TileSize
		draw.Draw(atlas, image.Rect(x, y, x+TileSize, y+TileSize), tile, image.Point{}, draw.Src)
	}

	return atlas
}

// Darken returns a darker version of a colour.
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a colour.
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}

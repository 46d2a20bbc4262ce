package placeholders

import "image"

// PlayerSheet is a single-frame sprite sheet.
func PlayerSheet() *image.RGBA {
	return CreateAtlas([]*image.RGBA{CreateCircle(Palette.Player, Palette.Outline, TileSize/2-3)}, 1)
}

// ButterflySheet has two frames: wings open, wings closed.
func ButterflySheet() *image.RGBA {
	return CreateAtlas([]*image.RGBA{butterflyFrame(true), butterflyFrame(false)}, 2)
}

func butterflyFrame(open bool) *image.RGBA {
	img := CreateSolidTile(Palette.Transparent)
	mid := TileSize / 2
	span := 3
	if open {
		span = 6
	}
	for y := mid - 4; y < mid+4; y++ {
		for dx := 1; dx <= span; dx++ {
			img.Set(mid-dx, y, Palette.WingLeft)
			img.Set(mid+dx-1, y, Palette.WingRight)
		}
	}
	for y := mid - 5; y < mid+5; y++ {
		img.Set(mid-1, y, Palette.Outline)
		img.Set(mid, y, Palette.Outline)
	}
	return img
}

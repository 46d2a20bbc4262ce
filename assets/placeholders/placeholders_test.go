package placeholders

import (
	"context"
	"image"
	"image/color"
	"testing"
)

func TestCreateAtlasLayout(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	atlas := CreateAtlas([]*image.RGBA{CreateSolidTile(red), nil, CreateSolidTile(blue)}, 2)

	if got := atlas.Bounds().Size(); got != (image.Point{X: 2 * TileSize, Y: 2 * TileSize}) {
		t.Fatalf("atlas size = %v", got)
	}
	if got := atlas.RGBAAt(1, 1); got != red {
		t.Errorf("cell 0 = %v, want red", got)
	}
	if got := atlas.RGBAAt(TileSize+1, 1); got.A != 0 {
		t.Errorf("nil cell = %v, want transparent", got)
	}
	if got := atlas.RGBAAt(1, TileSize+1); got != blue {
		t.Errorf("cell 2 = %v, want blue", got)
	}
}

func TestGenerateTileSetUnknownIsMissing(t *testing.T) {
	atlas := GenerateTileSet("no_such_set", 2)
	if got := atlas.Bounds().Size(); got != (image.Point{X: 2 * TileSize, Y: 2 * TileSize}) {
		t.Fatalf("atlas size = %v", got)
	}
	if got := atlas.RGBAAt(5, 1); got != Palette.Missing {
		t.Errorf("pixel = %v, want missing colour", got)
	}
}

func TestGenerateTileSets(t *testing.T) {
	atlases, err := GenerateTileSets(context.Background(), 8)
	if err != nil {
		t.Fatalf("GenerateTileSets: %v", err)
	}
	for _, id := range []string{"grassy_tiles", "water_tiles", MissingTileSet} {
		img, ok := atlases[id]
		if !ok {
			t.Errorf("missing atlas %q", id)
			continue
		}
		if img.Bounds().Dx() != 8*TileSize || img.Bounds().Dy() != 8*TileSize {
			t.Errorf("%s bounds = %v", id, img.Bounds())
		}
	}
}

func TestGenerateTileSetsRejectsEmptyAtlas(t *testing.T) {
	if _, err := GenerateTileSets(context.Background(), 0); err == nil {
		t.Error("expected error for zero-width atlas")
	}
}

func TestGenerateTileSetsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := GenerateTileSets(ctx, 8); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestButterflySheetFrames(t *testing.T) {
	sheet := ButterflySheet()
	if sheet.Bounds().Dx() != 2*TileSize || sheet.Bounds().Dy() != TileSize {
		t.Fatalf("sheet bounds = %v", sheet.Bounds())
	}
	// Only the open-wing frame reaches the outer columns.
	if sheet.RGBAAt(2, TileSize/2).A == 0 {
		t.Error("open frame should have wing pixels at the edge")
	}
	if sheet.RGBAAt(TileSize+2, TileSize/2).A != 0 {
		t.Error("closed frame should be transparent at the edge")
	}
}

func TestToneLength(t *testing.T) {
	pcm := Tone(44100, 440, 100)
	if want := 4410 * 4; len(pcm) != want {
		t.Fatalf("len = %d, want %d", len(pcm), want)
	}
	// Sine starts at zero.
	if pcm[0] != 0 || pcm[1] != 0 {
		t.Errorf("first sample = %v", pcm[:4])
	}
	// Left and right channels match.
	for i := 0; i < len(pcm); i += 4 {
		if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
			t.Fatalf("channels differ at frame %d", i/4)
		}
	}
}

func TestToneZeroDuration(t *testing.T) {
	if pcm := Tone(44100, 440, 0); len(pcm) != 0 {
		t.Errorf("len = %d, want 0", len(pcm))
	}
}

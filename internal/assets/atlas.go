package assets

import (
	"image"
	"image/color"

	"github.com/Faultbox/libsm64-go/internal/anim"
)

// DefaultAtlas draws the procedural texture atlas: one TileSize square per
// anim tile, laid out left to right, RGBA8.
func DefaultAtlas() []byte {
	img := image.NewNRGBA(image.Rect(0, 0, anim.TextureWidth, anim.TextureHeight))
	for tile := 0; tile < anim.NumTiles; tile++ {
		drawTile(img, tile)
	}
	return img.Pix
}

// AtlasImage wraps raw atlas bytes for encoders.
func AtlasImage(atlas []byte) *image.NRGBA {
	return &image.NRGBA{
		Pix:    atlas,
		Stride: anim.TextureWidth * 4,
		Rect:   image.Rect(0, 0, anim.TextureWidth, anim.TextureHeight),
	}
}

var (
	transparent = color.NRGBA{}
	white       = color.NRGBA{255, 255, 255, 255}
	black       = color.NRGBA{0, 0, 0, 255}
	red         = color.NRGBA{255, 0, 0, 255}
	yellow      = color.NRGBA{255, 220, 0, 255}
	brown       = color.NRGBA{60, 20, 5, 255}
	skin        = color.NRGBA{254, 193, 121, 255}
	eyeBlue     = color.NRGBA{30, 120, 255, 255}
	featherGr   = color.NRGBA{220, 220, 230, 255}
)

func drawTile(img *image.NRGBA, tile int) {
	const s = anim.TileSize
	x0 := tile * s
	set := func(x, y int, c color.NRGBA) { img.SetNRGBA(x0+x, y, c) }
	fill := func(c color.NRGBA) {
		for y := 0; y < s; y++ {
			for x := 0; x < s; x++ {
				set(x, y, c)
			}
		}
	}
	disc := func(cx, cy, r float64, c color.NRGBA) {
		for y := 0; y < s; y++ {
			for x := 0; x < s; x++ {
				dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
				if dx*dx+dy*dy <= r*r {
					set(x, y, c)
				}
			}
		}
	}
	eye := func(cx float64, open float64) {
		for y := 0; y < s; y++ {
			for x := 0; x < s; x++ {
				dx, dy := (float64(x)+0.5-cx)/9, (float64(y)+0.5-28)/(16*open)
				if open > 0 && dx*dx+dy*dy <= 1 {
					set(x, y, white)
				}
			}
		}
		if open > 0.3 {
			disc(cx+2, 30, 5*open, eyeBlue)
			disc(cx+2, 30, 2.5*open, black)
		} else {
			for x := int(cx) - 9; x <= int(cx)+9; x++ {
				set(x, 28, black)
				set(x, 29, black)
			}
		}
	}

	switch tile {
	case anim.TileButton:
		fill(transparent)
		disc(32, 32, 14, yellow)
		disc(32, 32, 10, color.NRGBA{230, 190, 0, 255})
	case anim.TileLogo:
		fill(red)
		disc(32, 32, 24, white)
		for y := 18; y < 46; y++ {
			for _, x := range []int{20, 21, 22, 41, 42, 43} {
				set(x, y, red)
			}
			d := (y - 18) / 2
			if d < 8 {
				set(23+d, y, red)
				set(40-d, y, red)
			}
		}
	case anim.TileSideburn:
		fill(transparent)
		for y := 8; y < 56; y++ {
			for x := 16; x < 48-(y-8)/3; x++ {
				set(x, y, brown)
			}
		}
	case anim.TileMustache:
		fill(transparent)
		disc(20, 30, 14, brown)
		disc(44, 30, 14, brown)
	case anim.TileEyesOpen, anim.TileEyesHalf, anim.TileEyesClosed:
		fill(skin)
		open := map[int]float64{anim.TileEyesOpen: 1, anim.TileEyesHalf: 0.5, anim.TileEyesClosed: 0}[tile]
		eye(20, open)
		eye(44, open)
	case anim.TileEyesDead:
		fill(skin)
		for i := -8; i <= 8; i++ {
			for _, cx := range []int{20, 44} {
				set(cx+i, 28+i, black)
				set(cx+i, 28-i, black)
			}
		}
	case anim.TileWingLeft, anim.TileWingRight:
		fill(transparent)
		for y := 8; y < 56; y++ {
			span := 56 - y
			for i := 0; i < span; i++ {
				x := 4 + i
				if tile == anim.TileWingRight {
					x = s - 5 - i
				}
				c := white
				if (i/6)%2 == 1 {
					c = featherGr
				}
				set(x, y, c)
			}
		}
	case anim.TileMetal:
		for y := 0; y < s; y++ {
			for x := 0; x < s; x++ {
				v := uint8(140 + (x+y)*100/(2*s))
				set(x, y, color.NRGBA{v, v, v + 10, 255})
			}
		}
	}
}

//go:build js || sdl

package main

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/tiles"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
)

const Tiles = true

// fontSize is the size in points of the monospace font used for tiles.
const fontSize = 18

// ColorToRGBA maps a palette color to its true color, depending on the
// configured theme.
func ColorToRGBA(c gruid.Color, fg bool) color.Color {
	cl := paletteRGB(c, fg)
	return color.RGBA{cl.R, cl.G, cl.B, 255}
}

// fontTileManager implements the TileManager interface of the sdl and js
// drivers: each cell is drawn as a glyph of the Go mono font.
type fontTileManager struct {
	regular *tiles.Drawer
	bold    *tiles.Drawer
}

// newFontTileManager prepares the regular and bold tile drawers.
func newFontTileManager() (*fontTileManager, error) {
	regular, err := newDrawer(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("regular font: %v", err)
	}
	bold, err := newDrawer(gomonobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("bold font: %v", err)
	}
	return &fontTileManager{regular: regular, bold: bold}, nil
}

func newDrawer(ttf []byte) (*tiles.Drawer, error) {
	fnt, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size: fontSize,
		DPI:  72,
	})
	if err != nil {
		return nil, err
	}
	return tiles.NewDrawer(face)
}

// mustTileManager returns the font tile manager, exiting on failure: the
// fonts are embedded, so this only happens on programming errors.
func mustTileManager() *fontTileManager {
	tm, err := newFontTileManager()
	if err != nil {
		log.Fatalf("building tiles: %v", err)
	}
	return tm
}

func (tm *fontTileManager) TileSize() gruid.Point {
	return tm.regular.Size()
}

func (tm *fontTileManager) GetImage(gc gruid.Cell) image.Image {
	fgc := ColorToRGBA(gc.Style.Fg, true)
	bgc := ColorToRGBA(gc.Style.Bg, false)
	if gc.Style.Attrs&AttrReverse != 0 {
		fgc, bgc = bgc, fgc
	}
	dr := tm.regular
	if gc.Style.Attrs&AttrBold != 0 {
		dr = tm.bold
	}
	return dr.Draw(gc.Rune, image.NewUniform(fgc), image.NewUniform(bgc))
}

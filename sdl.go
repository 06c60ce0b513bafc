//go:build sdl

package main

import (
	"codeberg.org/anaseto/gruid"
	sdl "codeberg.org/anaseto/gruid-sdl"
)

var driver gruid.Driver

func initDriver(fullscreen bool, sx, sy float64) {
	dr := sdl.NewDriver(sdl.Config{
		TileManager: mustTileManager(),
		Fullscreen:  fullscreen,
		WindowTitle: "Build Your Own World",
	})
	if sx != 1 || sy != 1 {
		dr.SetScale(float32(sx), float32(sy))
	}
	driver = dr
}

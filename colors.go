package main

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// Thoses are the colors of the main palette. They are given 16-palette color
// numbers compatible with terminals, though they are then mapped to more
// precise colors depending on options and the driver. Dark colorscheme is
// assumed by default, but it can be changed in configuration.
const (
	ColorBackground          gruid.Color = gruid.ColorDefault // background
	ColorBackgroundSecondary gruid.Color = 1 + 0              // black
	ColorForeground          gruid.Color = gruid.ColorDefault
	ColorForegroundSecondary gruid.Color = 1 + 7  // white
	ColorForegroundEmph      gruid.Color = 1 + 15 // bright white
	ColorRed                 gruid.Color = 1 + 9  // bright red
	ColorGreen               gruid.Color = 1 + 2
	ColorYellow              gruid.Color = 1 + 3
	ColorBlue                gruid.Color = 1 + 4
	ColorMagenta             gruid.Color = 1 + 5
	ColorCyan                gruid.Color = 1 + 6
	ColorOrange              gruid.Color = 1 + 1  // red
	ColorViolet              gruid.Color = 1 + 12 // bright blue
)

// Those constants represent available styling attributes.
const (
	AttrInMap gruid.AttrMask = 1 << iota
	AttrReverse
	AttrBold
)

// TileStyle returns the style used to draw a given terrain.
func TileStyle(t rl.Cell) gruid.Style {
	st := gruid.Style{Attrs: AttrInMap}
	switch t {
	case Floor:
		st.Fg = ColorGreen
	case Wall:
		st.Fg = ColorOrange
		st.Bg = ColorBackgroundSecondary
	case Avatar:
		st.Fg = ColorForegroundEmph
		st.Attrs |= AttrBold
	}
	return st
}

// rgb is a 24-bit color.
type rgb struct {
	R, G, B uint8
}

// selenized maps palette colors to their dark and light variants from the
// selenized palette:
//
//	https://github.com/jan-warchol/selenized
var selenized = map[gruid.Color][2]rgb{
	ColorBackgroundSecondary: {{24, 73, 86}, {236, 227, 204}},
	ColorRed:                 {{250, 87, 80}, {210, 33, 45}},
	ColorGreen:               {{117, 185, 56}, {72, 145, 0}},
	ColorYellow:              {{219, 179, 45}, {173, 137, 0}},
	ColorBlue:                {{88, 163, 255}, {0, 114, 212}}, // bright blue in dark theme
	ColorMagenta:             {{242, 117, 190}, {202, 72, 152}},
	ColorCyan:                {{65, 199, 185}, {0, 156, 143}},
	ColorOrange:              {{237, 134, 73}, {194, 93, 30}},
	ColorViolet:              {{175, 136, 235}, {135, 98, 198}},
	ColorForegroundEmph:      {{202, 216, 217}, {58, 77, 83}},
	ColorForegroundSecondary: {{114, 137, 143}, {144, 153, 149}},
}

var (
	selenizedFg = [2]rgb{{173, 188, 188}, {83, 103, 109}}
	selenizedBg = [2]rgb{{16, 60, 72}, {251, 243, 219}}
)

// paletteRGB returns the true color for a palette color, depending on the
// configured theme. Default colors differ for foreground and background.
func paletteRGB(c gruid.Color, fg bool) rgb {
	variant := 1
	if GameConfig.DarkColors {
		variant = 0
	}
	if v, ok := selenized[c]; ok {
		return v[variant]
	}
	if fg {
		return selenizedFg[variant]
	}
	return selenizedBg[variant]
}

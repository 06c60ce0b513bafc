//go:build !sdl && !js

package main

import (
	"codeberg.org/anaseto/gruid"
	tcell "codeberg.org/anaseto/gruid-tcell"
	tc "github.com/gdamore/tcell/v2"
)

const Tiles = false

var driver gruid.Driver

func initDriver(_ bool, _, _ float64) {
	st := styler{}
	dr := tcell.NewDriver(tcell.Config{StyleManager: st})
	driver = dr
}

// styler implements the tcell.StyleManager interface.
type styler struct{}

func (sty styler) GetStyle(cst gruid.Style) tc.Style {
	st := tc.StyleDefault
	switch ColorMode {
	case ColorMode256:
		cst.Fg = map16ColorTo256(cst.Fg, true)
		cst.Bg = map16ColorTo256(cst.Bg, false)
		st = st.Background(tc.ColorValid + tc.Color(cst.Bg)).Foreground(tc.ColorValid + tc.Color(cst.Fg))
	case ColorMode24bit:
		fg, bg := paletteRGB(cst.Fg, true), paletteRGB(cst.Bg, false)
		st = st.Foreground(tc.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B)))
		st = st.Background(tc.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
	default:
		// ColorMode16 & ColorMode8
		if !GameConfig.DarkColors {
			cst.Fg = map16ColorToLight(cst.Fg)
			cst.Bg = map16ColorToLight(cst.Bg)
		}
		if ColorMode == ColorMode8 {
			cst.Fg = map16ColorTo8Color(cst.Fg)
			cst.Bg = map16ColorTo8Color(cst.Bg)
		}
		if cst.Bg == gruid.ColorDefault {
			st = st.Background(tc.ColorDefault)
		} else {
			st = st.Background(tc.ColorValid + tc.Color(cst.Bg) - 1)
		}
		if cst.Fg == gruid.ColorDefault {
			st = st.Foreground(tc.ColorDefault)
		} else {
			st = st.Foreground(tc.ColorValid + tc.Color(cst.Fg) - 1)
		}
	}
	if cst.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	if cst.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	return st
}

func map16ColorTo8Color(c gruid.Color) gruid.Color {
	if c >= 1+8 {
		c -= 8
	}
	return c
}

func map16ColorToLight(c gruid.Color) gruid.Color {
	switch c {
	case ColorBackgroundSecondary:
		return ColorForegroundEmph
	case ColorForegroundSecondary, ColorForegroundEmph:
		return ColorBackgroundSecondary
	default:
		return c
	}
}

// xterm solarized colors: http://ethanschoonover.com/solarized
var solarized256 = map[gruid.Color]gruid.Color{
	ColorYellow:  136,
	ColorOrange:  166,
	ColorRed:     160,
	ColorMagenta: 125,
	ColorViolet:  61,
	ColorBlue:    33,
	ColorCyan:    37,
	ColorGreen:   64,
}

// solarizedBase256 gives the dark and light theme variants of the base
// colors.
var solarizedBase256 = map[gruid.Color][2]gruid.Color{
	ColorBackgroundSecondary: {235, 254},
	ColorForegroundEmph:      {245, 240},
	ColorForegroundSecondary: {240, 245},
}

func map16ColorTo256(c gruid.Color, fg bool) gruid.Color {
	variant := 1
	if GameConfig.DarkColors {
		variant = 0
	}
	if c == ColorBackground {
		if fg {
			return [2]gruid.Color{244, 241}[variant]
		}
		return [2]gruid.Color{234, 230}[variant]
	}
	if v, ok := solarizedBase256[c]; ok {
		return v[variant]
	}
	if v, ok := solarized256[c]; ok {
		return v
	}
	return c
}

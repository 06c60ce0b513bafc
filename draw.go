// This file defines the Draw method for the model.

package main

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/ui"
)

// Markups contains the styling markup-characters we use for StyledText.
var Markups = map[rune]gruid.Style{
	'B': {Fg: ColorBlue},
	'C': {Fg: ColorCyan},
	'G': {Fg: ColorGreen},
	'M': {Fg: ColorMagenta},
	'O': {Fg: ColorOrange},
	'R': {Fg: ColorRed},
	'Y': {Fg: ColorYellow},
}

func menuRange() gruid.Range {
	return gruid.NewRange(UIWidth/2-8, 12, UIWidth, 15)
}

// Draw implements Draw() for gruid.Model.
func (md *model) Draw() gruid.Grid {
	md.gd.Fill(gruid.Cell{Rune: ' '})
	switch md.mode {
	case modeQuitting:
		return md.gd.Slice(gruid.Range{})
	case modeMenu, modeSeed:
		md.drawMainMenu()
		return md.gd
	}
	// Log drawing.
	md.log.Content = md.DrawLog()
	md.log.Draw(md.gd.Slice(md.gd.Range().Lines(0, 2)))
	// Map drawing.
	md.drawMap(md.gd.Slice(md.gd.Range().Lines(2, 2+MapHeight)))
	md.drawStatus(md.gd.Slice(md.gd.Range().Line(UIHeight - 1)))
	return md.gd
}

func (md *model) drawMainMenu() {
	ui.Text("CS61B: Build Your Own World").WithStyle(gruid.Style{Fg: ColorMagenta}).
		Draw(md.gd.Slice(gruid.NewRange(UIWidth/2-14, 8, UIWidth, 9)))
	md.gd.Slice(menuRange()).Copy(md.menu.Draw())
	if md.mode == modeSeed {
		ui.Textf("Enter seed, then press S: %s", string(md.seed)).WithStyle(gruid.Style{Fg: ColorCyan}).
			Draw(md.gd.Slice(gruid.NewRange(UIWidth/2-14, 17, UIWidth, 18)))
	}
	md.log.Content = md.DrawLog()
	md.log.Draw(md.gd.Slice(gruid.NewRange(4, 20, UIWidth, 22)))
}

// drawMap draws the visible terrain. Rows are flipped so that y grows
// upwards on screen.
func (md *model) drawMap(gd gruid.Grid) {
	for p, t := range md.w.VisibleTerrain().All() {
		q := gruid.Point{X: p.X, Y: MapHeight - 1 - p.Y}
		gd.Set(q, gruid.Cell{Rune: TileRune(t), Style: TileStyle(t)})
	}
}

func (md *model) drawStatus(gd gruid.Grid) {
	los := "@Goff@N"
	if md.w.LineOfSight {
		los = "@Yon@N"
	}
	ap := md.w.Avatar()
	text := fmt.Sprintf("Seed %d │ %s (%d, %d) │ line of sight %s │ :q save & quit",
		md.w.Seed, TerrainName(Avatar), ap.X, ap.Y, los)
	if md.mode == modeCommand {
		text = ":"
	}
	md.status.Content = ui.StyledText{}.WithMarkups(Markups).WithText(text)
	md.status.Draw(gd)
}

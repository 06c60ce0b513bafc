package main

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// MapPath implements the paths.Pather interface and is used to provide
// connectivity information over the terrain (4-connected moves only).
type MapPath struct {
	passable func(gruid.Point) bool
	nbs      paths.Neighbors
}

func (mp *MapPath) Neighbors(p gruid.Point) []gruid.Point {
	return mp.nbs.Cardinal(p, mp.passable)
}

// Reachable returns the number of passable cells reachable from the avatar,
// the avatar's own cell included.
func (w *World) Reachable() int {
	pr := paths.NewPathRange(gruid.NewRange(0, 0, MapWidth, MapHeight))
	pass := func(p gruid.Point) bool {
		return inMap(p) && Passable(w.terrain.At(p))
	}
	return len(pr.CCMap(&MapPath{passable: pass}, w.avatar))
}

package main

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// MaxSightRange is the maximum Euclidean distance at which tiles are visible
// when line of sight is enabled.
const MaxSightRange = 7

// IsTileVisible reports whether the tile at p can be seen from the avatar.
// Without line of sight, every tile is visible. Otherwise, the tile has to be
// within MaxSightRange and the straight line to it must not cross walls.
// Walls themselves are never visible with line of sight on.
func (w *World) IsTileVisible(p gruid.Point) bool {
	if !w.LineOfSight {
		return true
	}
	d := p.Sub(w.avatar)
	if d.X*d.X+d.Y*d.Y > MaxSightRange*MaxSightRange {
		return false
	}
	return w.clearPath(w.avatar, p)
}

// clearPath walks the Bresenham line from p to q and reports whether no wall
// blocks it. The destination must not be a wall either.
func (w *World) clearPath(p, q gruid.Point) bool {
	dx, dy := abs(q.X-p.X), abs(q.Y-p.Y)
	sx, sy := sign(q.X-p.X), sign(q.Y-p.Y)
	err := dx - dy
	for p != q {
		if w.terrain.At(p) == Wall {
			return false
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			p.X += sx
		}
		if e2 < dx {
			err += dx
			p.Y += sy
		}
	}
	return w.terrain.At(q) != Wall
}

// VisibleTerrain returns a copy of the terrain where tiles that cannot be
// seen from the avatar are Empty.
func (w *World) VisibleTerrain() rl.Grid {
	gd := w.Terrain()
	if !w.LineOfSight {
		return gd
	}
	for p := range gd.Points() {
		if !w.IsTileVisible(p) {
			gd.Set(p, Empty)
		}
	}
	return gd
}

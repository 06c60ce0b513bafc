package main

import (
	"math"

	"codeberg.org/anaseto/gruid"
)

// Room represents a rectangular room of the world. The rectangle spans
// [X, X+W) × [Y, Y+H): its outer lines are walls and the inside is floor.
type Room struct {
	X, Y int // lower-left corner
	W, H int // width and height, walls included
}

// NewRoom returns a room at (x, y) whose dimensions are derived from the
// given shape codes. Codes may be any integer, including negative ones.
func NewRoom(x, y, widthCode, heightCode int) *Room {
	return &Room{
		X: x,
		Y: y,
		W: floorMod(widthCode, MapWidth/10) + MapWidth/10,
		H: floorMod(heightCode, MapHeight/10) + MapHeight/10,
	}
}

// Center returns the room's center, rounded down.
func (r *Room) Center() gruid.Point {
	return gruid.Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Range returns the room's rectangle as a gruid range.
func (r *Room) Range() gruid.Range {
	return gruid.NewRange(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Distance returns the Euclidean distance between two room centers,
// truncated to an integer.
func (r *Room) Distance(other *Room) int {
	c, oc := r.Center(), other.Center()
	dx, dy := float64(c.X-oc.X), float64(c.Y-oc.Y)
	return int(math.Sqrt(dx*dx + dy*dy))
}

// edge is a candidate corridor between two rooms.
type edge struct {
	from, to *Room
	dist     int
}

// edgeLess orders edges by increasing distance.
func edgeLess(a, b edge) bool {
	return a.dist < b.dist
}

// This file contains map-related code.

package main

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

const (
	MapWidth  = 70 // world width in tiles
	MapHeight = 60 // world height in tiles
)

// These constants represent the different kind of map tiles. Empty is the
// zero value, so a fresh rl.Grid is all Empty.
const (
	Empty  rl.Cell = iota // nothing (outside of rooms and hallways)
	Floor                 // walkable ground
	Wall                  // obstructing and blocks vision
	Avatar                // the player's avatar
)

func TerrainName(t rl.Cell) string {
	switch t {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	case Avatar:
		return "avatar"
	default:
		return "nothing"
	}
}

// Passable reports whether a given terrain type can be walked on.
func Passable(t rl.Cell) bool {
	return t == Floor || t == Avatar
}

// TileRune returns the character rune representing a given terrain, as used
// both on screen and in save files.
func TileRune(t rl.Cell) (r rune) {
	switch t {
	case Avatar:
		r = '@'
	case Floor:
		r = '·'
	case Wall:
		r = '#'
	default:
		r = ' '
	}
	return r
}

// RuneToTile returns the terrain represented by a character rune. It returns
// an error wrapping ErrSaveFormat for unknown characters.
func RuneToTile(r rune) (rl.Cell, error) {
	switch r {
	case '@':
		return Avatar, nil
	case '·':
		return Floor, nil
	case '#':
		return Wall, nil
	case ' ':
		return Empty, nil
	default:
		return Empty, fmt.Errorf("%w: invalid tile character %q", ErrSaveFormat, r)
	}
}

// inMap reports whether a position is within map bounds.
func inMap(p gruid.Point) bool {
	return p.X >= 0 && p.X < MapWidth && p.Y >= 0 && p.Y < MapHeight
}

// onBorder reports whether a position belongs to the outermost ring of the
// map.
func onBorder(p gruid.Point) bool {
	return p.X == 0 || p.X == MapWidth-1 || p.Y == 0 || p.Y == MapHeight-1
}

// CacheGrid represents a map-sized grid of any type.
type CacheGrid[T any] []T

// At returns the value in the grid at a given position. Out of range
// positions yield the zero value.
func (bs CacheGrid[T]) At(p gruid.Point) T {
	var zero T
	if !inMap(p) || len(bs) == 0 {
		return zero
	}
	return bs[p.Y*MapWidth+p.X]
}

// Set puts a value at the given position in the grid. Out of range positions
// are ignored.
func (bs CacheGrid[T]) Set(p gruid.Point, v T) {
	if !inMap(p) || len(bs) == 0 {
		return
	}
	bs[p.Y*MapWidth+p.X] = v
}

// New prepares a map-sized grid of zero values. It uses bs if already
// initialized.
func (bs CacheGrid[T]) New() CacheGrid[T] {
	if bs == nil {
		return make(CacheGrid[T], MapWidth*MapHeight)
	}
	clear(bs)
	return bs
}

package main

import (
	"errors"
	"log"
	"slices"
	"unicode"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// ErrNoFloor is returned when a world has no floor cell to put the avatar on.
var ErrNoFloor = errors.New("no floor cell for the avatar")

// World represents a generated world: its terrain, the rooms it was built
// from, and the avatar walking in it.
type World struct {
	Seed        int64       // seed the world was generated from
	LineOfSight bool        // whether visibility is restricted to line of sight
	terrain     rl.Grid     // map terrain, avatar included
	rooms       []*Room     // rooms in creation order (nil for loaded worlds)
	avatar      gruid.Point // avatar position
	step        stepper     // sound played on each accepted move
}

// placeAvatar puts the avatar on the first floor cell found scanning rows
// from the top (highest y) down, and each row from left to right.
func (w *World) placeAvatar() error {
	for y := MapHeight - 1; y >= 0; y-- {
		for x := range MapWidth {
			p := gruid.Point{X: x, Y: y}
			if w.terrain.At(p) == Floor {
				w.terrain.Set(p, Avatar)
				w.avatar = p
				return nil
			}
		}
	}
	return ErrNoFloor
}

// Avatar returns the avatar's position.
func (w *World) Avatar() gruid.Point {
	return w.avatar
}

// Rooms returns the rooms the world was generated from.
func (w *World) Rooms() []*Room {
	return slices.Clone(w.rooms)
}

// At returns the terrain at p. Positions out of the map are Empty.
func (w *World) At(p gruid.Point) rl.Cell {
	return w.terrain.At(p)
}

// Terrain returns a copy of the world's terrain.
func (w *World) Terrain() rl.Grid {
	gd := rl.NewGrid(MapWidth, MapHeight)
	gd.Copy(w.terrain)
	return gd
}

// SetStepper sets the sound played on each accepted avatar move. A nil value
// disables sound.
func (w *World) SetStepper(s stepper) {
	if s == nil {
		s = silentStepper{}
	}
	w.step = s
}

// ToggleLineOfSight switches line-of-sight visibility on or off.
func (w *World) ToggleLineOfSight() {
	w.LineOfSight = !w.LineOfSight
}

// moveDelta returns the avatar displacement for a movement key. Keys are case
// insensitive, and y grows upwards.
func moveDelta(key rune) (gruid.Point, bool) {
	switch unicode.ToLower(key) {
	case 'w':
		return gruid.Point{X: 0, Y: 1}, true
	case 's':
		return gruid.Point{X: 0, Y: -1}, true
	case 'a':
		return gruid.Point{X: -1, Y: 0}, true
	case 'd':
		return gruid.Point{X: 1, Y: 0}, true
	}
	return gruid.Point{}, false
}

// MoveAvatar moves the avatar according to one of the w, a, s, d keys. It
// reports whether the avatar moved. Unknown keys and moves into walls or out
// of the map leave the world unchanged.
func (w *World) MoveAvatar(key rune) bool {
	delta, ok := moveDelta(key)
	if !ok {
		if LogGame {
			log.Printf("ignoring unknown movement key %q", key)
		}
		return false
	}
	to := w.avatar.Add(delta)
	if !inMap(to) || w.terrain.At(to) == Wall {
		return false
	}
	w.terrain.Set(w.avatar, Floor)
	w.terrain.Set(to, Avatar)
	w.avatar = to
	if w.step != nil {
		w.step.Step()
	}
	return true
}

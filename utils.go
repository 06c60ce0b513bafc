package main

import (
	"iter"

	"codeberg.org/anaseto/gruid"
)

func abs(i int) int {
	if i < 0 {
		i = -i
	}
	return i
}

// sign returns -1, 0 or 1 depending on the sign of i.
func sign(i int) int {
	switch {
	case i > 0:
		return 1
	case i < 0:
		return -1
	}
	return 0
}

// floorMod returns n modulo m with the sign of m, so that the result is in
// [0, m) for positive m, even for negative n.
func floorMod(n, m int) int {
	r := n % m
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r
}

// Neighbors returns an iterator over in-map cardinal neighbors of the given
// position.
func Neighbors(p gruid.Point) iter.Seq[gruid.Point] {
	return NeighborsFunc(p, inMap)
}

// NeighborsFunc returns an iterator over cardinal neighbors of the given
// position that statisfy the given predicate.
func NeighborsFunc(p gruid.Point, f func(gruid.Point) bool) iter.Seq[gruid.Point] {
	return func(yield func(gruid.Point) bool) {
		for i := -1; i <= 1; i += 2 {
			q := p.Shift(i, 0)
			if f(q) && !yield(q) {
				return
			}
			q = p.Shift(0, i)
			if f(q) && !yield(q) {
				return
			}
		}
	}
}

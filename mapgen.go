package main

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"codeberg.org/anaseto/gruid/rl"
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

const (
	minRooms             = 10     // minimum number of rooms
	roomsSpread          = 6      // number of possible room counts above minRooms
	extraHallwaysDivisor = 3      // one extra corridor every that many rooms
	maxPlacementAttempts = 200000 // room placement attempts before giving up
	seedStream           = 0x9e3779b97f4a7c15
)

// ErrRoomPlacement is returned when rooms could not be placed within the
// allowed number of attempts.
var ErrRoomPlacement = errors.New("room placement did not converge")

// MapGen gathers all terrain and room information while generating a new
// world.
type MapGen struct {
	terrain  rl.Grid         // map terrain
	occupied CacheGrid[bool] // cells already claimed by a room or hallway
	rooms    []*Room         // rooms in creation order
	PR       *paths.PathRange
	rand     *rand.Rand
}

// newMapGen returns a generator whose random source is fully determined by
// seed.
func newMapGen(seed int64) *MapGen {
	mg := &MapGen{
		terrain: rl.NewGrid(MapWidth, MapHeight),
		PR:      paths.NewPathRange(gruid.NewRange(0, 0, MapWidth, MapHeight)),
		rand:    rand.New(rand.NewPCG(uint64(seed), seedStream)),
	}
	mg.occupied = mg.occupied.New()
	return mg
}

// draw returns a random integer over the whole signed 32-bit range.
func (mg *MapGen) draw() int {
	return int(int32(mg.rand.Uint32()))
}

// Generate produces a new world from the given seed. The same seed always
// yields the same world.
func Generate(seed int64) (*World, error) {
	mg := newMapGen(seed)
	if err := mg.genRooms(); err != nil {
		return nil, fmt.Errorf("generating world for seed %d: %w", seed, err)
	}
	mg.stampRooms()
	mg.cleanWallArtifacts()
	mg.genHallways()
	mg.frameBorder()
	mg.sealExposedFloor()
	mg.keepConnected()
	w := &World{
		Seed:    seed,
		terrain: mg.terrain,
		rooms:   mg.rooms,
		step:    silentStepper{},
	}
	if err := w.placeAvatar(); err != nil {
		return nil, fmt.Errorf("generating world for seed %d: %w", seed, err)
	}
	return w, nil
}

// genRooms places between minRooms and minRooms+roomsSpread-1 non-overlapping
// rooms using rejection sampling. Rejected candidates do not count.
func (mg *MapGen) genRooms() error {
	n := floorMod(mg.draw(), roomsSpread) + minRooms
	mx, my := MapWidth/15, MapHeight/15
	for y := range MapHeight {
		for x := range MapWidth {
			if x <= mx || x >= MapWidth-mx || y <= my || y >= MapHeight-my {
				mg.occupied.Set(gruid.Point{X: x, Y: y}, true)
			}
		}
	}
	for range maxPlacementAttempts {
		if len(mg.rooms) == n {
			return nil
		}
		x := floorMod(mg.draw(), MapWidth)
		y := floorMod(mg.draw(), MapHeight)
		wc := mg.draw()
		hc := mg.draw()
		r := NewRoom(x, y, wc, hc)
		if !mg.roomFits(r) {
			continue
		}
		mg.rooms = append(mg.rooms, r)
		for x := r.X; x < r.X+r.W; x++ {
			for y := r.Y; y < r.Y+r.H; y++ {
				mg.occupied.Set(gruid.Point{X: x, Y: y}, true)
			}
		}
	}
	if len(mg.rooms) == n {
		return nil
	}
	return fmt.Errorf("%w: placed %d of %d rooms", ErrRoomPlacement, len(mg.rooms), n)
}

// roomFits reports whether a candidate room lies within the map and does not
// touch occupied cells, one extra column and row included.
func (mg *MapGen) roomFits(r *Room) bool {
	if r.X+r.W >= MapWidth || r.Y+r.H >= MapHeight {
		return false
	}
	for x := r.X; x <= r.X+r.W; x++ {
		for y := r.Y; y <= r.Y+r.H; y++ {
			if mg.occupied.At(gruid.Point{X: x, Y: y}) {
				return false
			}
		}
	}
	return true
}

// stampRooms writes every room to the terrain: walls on the outline, floor
// inside.
func (mg *MapGen) stampRooms() {
	for _, r := range mg.rooms {
		for x := r.X; x < r.X+r.W; x++ {
			for y := r.Y; y < r.Y+r.H; y++ {
				p := gruid.Point{X: x, Y: y}
				if x == r.X || x == r.X+r.W-1 || y == r.Y || y == r.Y+r.H-1 {
					mg.terrain.Set(p, Wall)
				} else {
					mg.terrain.Set(p, Floor)
				}
				mg.occupied.Set(p, true)
			}
		}
	}
}

// cleanWallArtifacts turns into floor the room walls that are either
// surrounded by too many walls or squeezed between two floor cells. Cells are
// updated in place, so later cells see earlier changes.
func (mg *MapGen) cleanWallArtifacts() {
	for _, r := range mg.rooms {
		for x := r.X; x < r.X+r.W; x++ {
			for y := r.Y; y < r.Y+r.H; y++ {
				p := gruid.Point{X: x, Y: y}
				if mg.terrain.At(p) != Wall {
					continue
				}
				if mg.wallNeighbors(p) > 3 || mg.squeezedWall(p) {
					mg.terrain.Set(p, Floor)
				}
			}
		}
	}
}

// wallNeighbors returns the number of in-map walls among the 8 neighbors of
// p.
func (mg *MapGen) wallNeighbors(p gruid.Point) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			q := p.Shift(dx, dy)
			if inMap(q) && mg.terrain.At(q) == Wall {
				count++
			}
		}
	}
	return count
}

// squeezedWall reports whether p has floor on two opposite sides.
func (mg *MapGen) squeezedWall(p gruid.Point) bool {
	floor := func(dx, dy int) bool {
		return mg.terrain.At(p.Shift(dx, dy)) == Floor
	}
	return floor(-1, 0) && floor(1, 0) ||
		floor(0, -1) && floor(0, 1) ||
		floor(-1, -1) && floor(1, 1) ||
		floor(-1, 1) && floor(1, -1)
}

// allEdges returns a min-heap of candidate corridors between every ordered
// pair of distinct rooms.
func (mg *MapGen) allEdges() *heap.Heap[edge] {
	h := heap.New(edgeLess)
	for _, r := range mg.rooms {
		for _, s := range mg.rooms {
			if r == s {
				continue
			}
			h.Push(edge{from: r, to: s, dist: r.Distance(s)})
		}
	}
	return h
}

// hallway is a corridor to carve between two rooms, in that argument order.
type hallway struct {
	from, to *Room
}

// genHallways carves the corridors planned by planHallways, in order.
func (mg *MapGen) genHallways() {
	for _, h := range mg.planHallways() {
		mg.connectRooms(h.from, h.to)
	}
}

// planHallways returns the corridors connecting all rooms to the first one.
// Targets are always the anchor's nearest unconnected rooms, but each
// corridor starts from the connected room nearest to the target, the latest
// connected one on ties. A few random extra corridors follow.
func (mg *MapGen) planHallways() []hallway {
	if len(mg.rooms) == 0 {
		return nil
	}
	edges := mg.allEdges()
	anchor := mg.rooms[0]
	connected := mapset.New[*Room]()
	connected.Put(anchor)
	order := []*Room{anchor} // connected rooms, in connection order
	var hs []hallway
	for connected.Size() < len(mg.rooms) {
		var target *Room
		for {
			e, ok := edges.Pop()
			if !ok {
				return hs
			}
			// Anchor edges reach each room once: Has only guards the
			// invariant that a room is never connected twice.
			if e.from == anchor && !connected.Has(e.to) {
				target = e.to
				break
			}
		}
		closest := anchor
		for _, r := range order {
			if r.Distance(target) <= closest.Distance(target) {
				closest = r
			}
		}
		hs = append(hs, hallway{from: closest, to: target})
		connected.Put(target)
		order = append(order, target)
	}
	n := len(mg.rooms)
	for range n / extraHallwaysDivisor {
		i := floorMod(mg.draw(), n)
		j := floorMod(mg.draw(), n)
		hs = append(hs, hallway{from: mg.rooms[i], to: mg.rooms[j]})
	}
	return hs
}

// lowHigh returns the rooms ordered by their lower edge, r1 first on ties.
func lowHigh(r1, r2 *Room) (low, high *Room) {
	if r1.Y > r2.Y {
		return r2, r1
	}
	return r1, r2
}

// carveFloor sets p to floor and claims it.
func (mg *MapGen) carveFloor(p gruid.Point) {
	if !inMap(p) {
		return
	}
	mg.terrain.Set(p, Floor)
	mg.occupied.Set(p, true)
}

// claimWall sets p to wall if nothing claimed it yet.
func (mg *MapGen) claimWall(p gruid.Point) {
	if !inMap(p) || mg.occupied.At(p) {
		return
	}
	mg.terrain.Set(p, Wall)
	mg.occupied.Set(p, true)
}

// connectRooms carves an L-shaped corridor between two rooms: a vertical leg
// along the lower room's center column, then a horizontal leg.
func (mg *MapGen) connectRooms(r1, r2 *Room) {
	low, high := lowHigh(r1, r2)
	lc, hc := low.Center(), high.Center()
	dy := sign(hc.Y - lc.Y)
	for y := lc.Y; y != hc.Y; {
		y += dy
		mg.carveFloor(gruid.Point{X: lc.X, Y: y})
		mg.claimWall(gruid.Point{X: lc.X + 1, Y: y})
		mg.claimWall(gruid.Point{X: lc.X - 1, Y: y})
	}
	mg.connectRoomsHorizontal(r1, r2)
}

// connectRoomsHorizontal carves the horizontal leg of a corridor and patches
// the walls where it meets the rooms.
func (mg *MapGen) connectRoomsHorizontal(r1, r2 *Room) {
	left, right := r1, r2
	if r1.X > r2.X {
		left, right = r2, r1
	}
	low, _ := lowHigh(r1, r2)
	lc := low.Center()
	from, to := right, left
	if right == low {
		from, to = left, right
	}
	fc, tc := from.Center(), to.Center()
	dx := sign(tc.X - fc.X)
	for x := fc.X; x != tc.X; {
		x += dx
		mg.carveFloor(gruid.Point{X: x, Y: fc.Y})
		mg.claimWall(gruid.Point{X: x, Y: fc.Y + 1})
		mg.claimWall(gruid.Point{X: x, Y: fc.Y - 1})
	}
	if from.X > lc.X {
		mg.carveFloor(gruid.Point{X: from.X, Y: fc.Y})
	}
	if fc.Y > low.Y+low.H {
		mg.carveFloor(gruid.Point{X: lc.X, Y: low.Y + low.H})
	}
	if right == low {
		mg.claimWall(gruid.Point{X: lc.X + 1, Y: fc.Y + 1})
	} else {
		mg.claimWall(gruid.Point{X: lc.X - 1, Y: fc.Y + 1})
	}
}

// frameBorder turns the outermost ring of the map into walls.
func (mg *MapGen) frameBorder() {
	for p := range mg.terrain.Points() {
		if onBorder(p) {
			mg.terrain.Set(p, Wall)
		}
	}
}

// sealExposedFloor turns into walls the floor cells that touch the void.
func (mg *MapGen) sealExposedFloor() {
	for x := range MapWidth {
		for y := range MapHeight {
			p := gruid.Point{X: x, Y: y}
			if mg.terrain.At(p) != Floor {
				continue
			}
			for q := range Neighbors(p) {
				if mg.terrain.At(q) == Empty {
					mg.terrain.Set(p, Wall)
					break
				}
			}
		}
	}
}

// keepConnected replaces by walls the floor cells unreachable from the first
// room's center.
func (mg *MapGen) keepConnected() {
	if len(mg.rooms) == 0 {
		return
	}
	pass := func(p gruid.Point) bool {
		return Passable(mg.terrain.At(p))
	}
	start := mg.rooms[0].Center()
	mg.PR.CCMap(&MapPath{passable: pass}, start)
	for p, t := range mg.terrain.All() {
		if t == Floor && mg.PR.CCMapAt(p) == -1 {
			mg.terrain.Set(p, Wall)
		}
	}
}

package main

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"codeberg.org/anaseto/gruid/rl"
)

const rounds = 100

func connex(mt rl.Grid, pr *paths.PathRange, from gruid.Point) bool {
	pass := func(p gruid.Point) bool {
		return Passable(mt.At(p))
	}
	pr.CCMap(&MapPath{passable: pass}, from)
	for p, t := range mt.All() {
		if Passable(t) && pr.CCMapAt(p) == -1 {
			return false
		}
	}
	return true
}

// map2String returns the map as seen on screen, with the highest row first.
func map2String(mt rl.Grid) string {
	var sb strings.Builder
	for y := MapHeight - 1; y >= 0; y-- {
		for x := range MapWidth {
			sb.WriteRune(TileRune(mt.At(gruid.Point{X: x, Y: y})))
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

func testSeeds() []int64 {
	r := rand.New(rand.NewPCG(1, 2))
	seeds := []int64{0, 1, 42, -1, -42, 1 << 40}
	for range rounds {
		seeds = append(seeds, r.Int64())
	}
	return seeds
}

func TestGenerateInvariants(t *testing.T) {
	pr := paths.NewPathRange(gruid.NewRange(0, 0, MapWidth, MapHeight))
	for _, seed := range testSeeds() {
		w, err := Generate(seed)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		mt := w.Terrain()
		if n := len(w.Rooms()); n < minRooms || n >= minRooms+roomsSpread {
			t.Errorf("seed %d: %d rooms", seed, n)
		}
		avatars := 0
		for p, c := range mt.All() {
			if onBorder(p) && c != Wall {
				t.Errorf("seed %d: border cell %v is %s", seed, p, TerrainName(c))
			}
			if c == Avatar {
				avatars++
			}
			if !Passable(c) {
				continue
			}
			for q := range Neighbors(p) {
				if mt.At(q) == Empty {
					t.Errorf("seed %d: exposed floor at %v:\n%s", seed, p, map2String(mt))
				}
			}
		}
		if avatars != 1 {
			t.Errorf("seed %d: %d avatars", seed, avatars)
		}
		if mt.At(w.Avatar()) != Avatar {
			t.Errorf("seed %d: avatar position %v holds %s", seed, w.Avatar(), TerrainName(mt.At(w.Avatar())))
		}
		if !connex(mt, pr, w.Avatar()) {
			t.Errorf("seed %d: not connex map:\n%s", seed, map2String(mt))
		}
	}
}

func overlap(r, s *Room) bool {
	return !r.Range().Intersect(s.Range()).Empty()
}

func TestRoomsDisjoint(t *testing.T) {
	for _, seed := range testSeeds() {
		w, err := Generate(seed)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		rooms := w.Rooms()
		for i, r := range rooms {
			if r.X+r.W >= MapWidth || r.Y+r.H >= MapHeight || r.X <= MapWidth/15 || r.Y <= MapHeight/15 {
				t.Errorf("seed %d: room %+v out of placement area", seed, *r)
			}
			for _, s := range rooms[i+1:] {
				if overlap(r, s) {
					t.Errorf("seed %d: rooms %+v and %+v overlap", seed, *r, *s)
				}
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, seed := range testSeeds()[:20] {
		w1, err1 := Generate(seed)
		w2, err2 := Generate(seed)
		if err1 != nil || err2 != nil {
			t.Fatalf("seed %d: %v, %v", seed, err1, err2)
		}
		if s1, s2 := map2String(w1.Terrain()), map2String(w2.Terrain()); s1 != s2 {
			t.Errorf("seed %d: different maps:\n%s\n%s", seed, s1, s2)
		}
		if w1.Avatar() != w2.Avatar() {
			t.Errorf("seed %d: avatars %v and %v", seed, w1.Avatar(), w2.Avatar())
		}
		r1, r2 := w1.Rooms(), w2.Rooms()
		if len(r1) != len(r2) {
			t.Fatalf("seed %d: %d and %d rooms", seed, len(r1), len(r2))
		}
		for i := range r1 {
			if *r1[i] != *r2[i] {
				t.Errorf("seed %d: room %d differs: %+v %+v", seed, i, *r1[i], *r2[i])
			}
		}
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	w1, err := Generate(1)
	if err != nil {
		t.Fatal(err)
	}
	w2, err := Generate(2)
	if err != nil {
		t.Fatal(err)
	}
	if map2String(w1.Terrain()) == map2String(w2.Terrain()) {
		t.Errorf("seeds 1 and 2 produced the same world")
	}
}

func TestSeed42(t *testing.T) {
	w, err := Generate(42)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(w.Rooms()); n < 10 || n > 15 {
		t.Errorf("%d rooms", n)
	}
	ap := w.Avatar()
	reachable := false
	for q := range Neighbors(ap) {
		if w.At(q) == Floor {
			reachable = true
		}
	}
	if !reachable {
		t.Errorf("avatar at %v has no floor neighbor:\n%s", ap, map2String(w.Terrain()))
	}
	if w.Reachable() < 2 {
		t.Errorf("only %d reachable cells", w.Reachable())
	}
	// No floor above the avatar's row, nor left of it in the same row.
	for p, c := range w.Terrain().All() {
		if c == Floor && (p.Y > ap.Y || p.Y == ap.Y && p.X < ap.X) {
			t.Errorf("floor at %v scanned before avatar at %v", p, ap)
		}
	}
}

func TestCleanWallArtifacts(t *testing.T) {
	mg := newMapGen(0)
	mg.rooms = []*Room{{X: 10, Y: 10, W: 7, H: 6}}
	mg.stampRooms()
	// A wall squeezed between two floors in the room's outline.
	mg.terrain.Set(gruid.Point{X: 9, Y: 12}, Floor)
	mg.cleanWallArtifacts()
	if c := mg.terrain.At(gruid.Point{X: 10, Y: 12}); c != Floor {
		t.Errorf("squeezed wall not cleaned: %s", TerrainName(c))
	}
	if c := mg.terrain.At(gruid.Point{X: 10, Y: 11}); c != Wall {
		t.Errorf("regular wall cleaned: %s", TerrainName(c))
	}
}

func TestRoomPlacementCap(t *testing.T) {
	mg := newMapGen(0)
	// Everything is occupied, so no room can ever be placed.
	for p := range mg.terrain.Points() {
		mg.occupied.Set(p, true)
	}
	if mg.roomFits(NewRoom(20, 20, 0, 0)) {
		t.Fatalf("room fits in occupied map")
	}
	if err := mg.genRooms(); !errors.Is(err, ErrRoomPlacement) {
		t.Errorf("expected placement error, got %v", err)
	}
}

func TestRoomFits(t *testing.T) {
	free := newMapGen(0)
	if !free.roomFits(NewRoom(20, 20, 0, 0)) {
		t.Errorf("room does not fit in empty map")
	}
	if free.roomFits(NewRoom(MapWidth-7, 20, 0, 0)) {
		t.Errorf("room crossing the right edge fits")
	}
	free.occupied.Set(gruid.Point{X: 27, Y: 26}, true)
	if free.roomFits(NewRoom(20, 20, 0, 0)) {
		t.Errorf("room fits over the occupied cell just past its corner")
	}
}

func TestConnectRoomsLinks(t *testing.T) {
	for _, rooms := range [][2]*Room{
		{{X: 10, Y: 10, W: 7, H: 6}, {X: 40, Y: 30, W: 9, H: 8}},
		{{X: 40, Y: 10, W: 7, H: 6}, {X: 10, Y: 30, W: 9, H: 8}},
		{{X: 10, Y: 30, W: 9, H: 8}, {X: 40, Y: 10, W: 7, H: 6}},
		{{X: 10, Y: 10, W: 13, H: 11}, {X: 30, Y: 12, W: 7, H: 6}},
	} {
		mg := newMapGen(0)
		mg.rooms = rooms[:]
		mg.stampRooms()
		mg.connectRooms(rooms[0], rooms[1])
		pr := paths.NewPathRange(gruid.NewRange(0, 0, MapWidth, MapHeight))
		pass := func(p gruid.Point) bool {
			return Passable(mg.terrain.At(p))
		}
		pr.CCMap(&MapPath{passable: pass}, rooms[0].Center())
		if pr.CCMapAt(rooms[1].Center()) == -1 {
			t.Errorf("rooms %+v and %+v not connected:\n%s", *rooms[0], *rooms[1], map2String(mg.terrain))
		}
	}
}

func TestPlanHallwaysTies(t *testing.T) {
	a := &Room{X: 10, Y: 10, W: 7, H: 6} // center (13, 13)
	b := &Room{X: 20, Y: 10, W: 7, H: 6} // center (23, 13)
	c := &Room{X: 10, Y: 20, W: 7, H: 6} // center (13, 23)
	d := &Room{X: 20, Y: 20, W: 7, H: 6} // center (23, 23)
	mg := newMapGen(0)
	mg.rooms = []*Room{a, b, c, d}
	hs := mg.planHallways()
	if len(hs) != 3+1 {
		t.Fatalf("%d hallways", len(hs))
	}
	// b and c are both at distance 10 from the anchor, in any order.
	first, second := hs[0].to, hs[1].to
	if !(first == b && second == c || first == c && second == b) {
		t.Fatalf("bad first targets %+v %+v", *first, *second)
	}
	if hs[0].from != a || hs[1].from != a {
		t.Errorf("first corridors do not start from the anchor")
	}
	if hs[2].to != d {
		t.Fatalf("bad last target %+v", *hs[2].to)
	}
	// d is at distance 10 from both b and c: the later connected room wins.
	if hs[2].from != second {
		t.Errorf("corridor to d starts from %+v, expected %+v", *hs[2].from, *second)
	}
}

func TestPlanHallways(t *testing.T) {
	for _, seed := range testSeeds()[:30] {
		mg := newMapGen(seed)
		if err := mg.genRooms(); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		n := len(mg.rooms)
		anchor := mg.rooms[0]
		hs := mg.planHallways()
		if len(hs) != n-1+n/3 {
			t.Fatalf("seed %d: %d hallways for %d rooms", seed, len(hs), n)
		}
		connected := []*Room{anchor}
		prev := 0
		for _, h := range hs[:n-1] {
			if h.to == anchor || slices.Contains(connected, h.to) {
				t.Fatalf("seed %d: room %+v connected twice", seed, *h.to)
			}
			// Targets come by increasing distance from the anchor, not
			// from the growing connected set.
			if d := anchor.Distance(h.to); d < prev {
				t.Errorf("seed %d: target at distance %d after %d", seed, d, prev)
			} else {
				prev = d
			}
			best := anchor
			for _, r := range connected {
				if r.Distance(h.to) <= best.Distance(h.to) {
					best = r
				}
			}
			if h.from != best {
				t.Errorf("seed %d: corridor to %+v from %+v, expected %+v", seed, *h.to, *h.from, *best)
			}
			connected = append(connected, h.to)
		}
		for _, h := range hs[n-1:] {
			if !slices.Contains(mg.rooms, h.from) || !slices.Contains(mg.rooms, h.to) {
				t.Errorf("seed %d: extra corridor between unknown rooms", seed)
			}
		}
	}
}

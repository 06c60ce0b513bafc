package main

import (
	"bufio"
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// ErrSaveFormat is returned when a saved world cannot be decoded.
var ErrSaveFormat = errors.New("invalid save format")

// EncodeWorld writes a world in the text save format: the seed on the first
// line, the avatar's "x y" position on the second, then one line of
// MapWidth tiles per row, starting with row y = 0.
func EncodeWorld(w io.Writer, wd *World) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%d %d\n", wd.Seed, wd.avatar.X, wd.avatar.Y)
	for y := range MapHeight {
		for x := range MapWidth {
			bw.WriteRune(TileRune(wd.terrain.At(gruid.Point{X: x, Y: y})))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// DecodeWorld reads a world written by EncodeWorld. The world is rebuilt from
// the saved tiles, without regenerating it from the seed.
func DecodeWorld(r io.Reader) (*World, error) {
	sc := bufio.NewScanner(r)
	line := 0
	next := func(what string) (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", fmt.Errorf("%w: line %d: %w", ErrSaveFormat, line+1, err)
			}
			return "", fmt.Errorf("%w: missing %s (line %d)", ErrSaveFormat, what, line+1)
		}
		line++
		return strings.TrimSuffix(sc.Text(), "\r"), nil
	}
	s, err := next("seed")
	if err != nil {
		return nil, err
	}
	seed, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad seed %q", ErrSaveFormat, s)
	}
	s, err = next("avatar position")
	if err != nil {
		return nil, err
	}
	ap, err := parsePosition(s)
	if err != nil {
		return nil, err
	}
	wd := &World{Seed: seed, terrain: rl.NewGrid(MapWidth, MapHeight), avatar: ap, step: silentStepper{}}
	avatars := 0
	for y := range MapHeight {
		s, err := next(fmt.Sprintf("row %d", y))
		if err != nil {
			return nil, err
		}
		x := 0
		for _, c := range s {
			if x >= MapWidth {
				return nil, fmt.Errorf("%w: row %d longer than %d", ErrSaveFormat, y, MapWidth)
			}
			t, err := RuneToTile(c)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", y, x, err)
			}
			if t == Avatar {
				avatars++
			}
			wd.terrain.Set(gruid.Point{X: x, Y: y}, t)
			x++
		}
		if x != MapWidth {
			return nil, fmt.Errorf("%w: row %d has %d tiles, expected %d", ErrSaveFormat, y, x, MapWidth)
		}
	}
	if avatars != 1 || !inMap(ap) || wd.terrain.At(ap) != Avatar {
		return nil, fmt.Errorf("%w: expected a single avatar at %v, found %d", ErrSaveFormat, ap, avatars)
	}
	return wd, nil
}

// parsePosition parses an "x y" avatar position line.
func parsePosition(s string) (gruid.Point, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return gruid.Point{}, fmt.Errorf("%w: bad avatar position %q", ErrSaveFormat, s)
	}
	x, errx := strconv.Atoi(fields[0])
	y, erry := strconv.Atoi(fields[1])
	if errx != nil || erry != nil {
		return gruid.Point{}, fmt.Errorf("%w: bad avatar position %q", ErrSaveFormat, s)
	}
	return gruid.Point{X: x, Y: y}, nil
}

// Config describes available configuration options.
type Config struct {
	DarkColors  bool   // whether to use a dark color theme
	LineOfSight bool   // whether new worlds start with line of sight on
	Sound       bool   // whether to play step sounds
	StepSound   string // optional wav file for step sounds
	Version     string // config's game version
}

// ConfigSave returns encoded config data for saving.
func (c *Config) ConfigSave() ([]byte, error) {
	data := bytes.Buffer{}
	enc := gob.NewEncoder(&data)
	err := enc.Encode(c)
	if err != nil {
		return nil, err
	}
	return data.Bytes(), nil
}

// DecodeConfigSave retrieves a *Config object from config data encoded with
// ConfigSave.
func DecodeConfigSave(data []byte) (*Config, error) {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	c := &Config{}
	err := dec.Decode(c)
	if err != nil {
		return nil, err
	}
	return c, nil
}

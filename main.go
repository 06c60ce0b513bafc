//go:build !js

package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strconv"
	"syscall"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/ui"
)

// options gathers command line options.
type options struct {
	seed       string
	print      bool
	replay     string
	gameLogs   bool
	mute       bool
	los        bool
	light      bool
	step       string
	version    bool
	colors16   bool
	colors256  bool
	trueColor  bool
	fullscreen bool
	scaleW     float64
	scaleH     float64
}

func parseOptions() *options {
	opts := &options{scaleW: 1, scaleH: 1}
	flag.StringVar(&opts.seed, "seed", "", "start directly with a new world generated from this seed")
	flag.BoolVar(&opts.print, "print", false, "print the world generated from -seed in save format and exit")
	flag.StringVar(&opts.replay, "r", "", "path to replay file (_ means default location)")
	flag.BoolVar(&opts.gameLogs, "l", false, "write game logs to log file")
	flag.BoolVar(&opts.mute, "q", false, "disable step sounds")
	flag.BoolVar(&opts.los, "los", false, "start worlds with line of sight on (saved in config)")
	flag.BoolVar(&opts.light, "light", false, "use light color theme (saved in config)")
	flag.StringVar(&opts.step, "step", "", "wav file played on each step (saved in config)")
	flag.BoolVar(&opts.version, "version", false, "print build info")
	if Tiles {
		flag.BoolVar(&opts.fullscreen, "F", false, "fullscreen")
		flag.Float64Var(&opts.scaleW, "w", 1.0, "window width scale factor (examples: 0.75, 1.25)")
		flag.Float64Var(&opts.scaleH, "h", 1.0, "window height scale factor (examples: 0.75, 1.25)")
	} else {
		flag.BoolVar(&opts.colors16, "s", false, "use standard 16-color palette (default on most systems)")
		flag.BoolVar(&opts.colors256, "x", false, "use xterm 256-color palette (solarized approximation)")
		flag.BoolVar(&opts.trueColor, "t", false, "use true color selenized palette (not supported by all terminals)")
	}
	flag.Parse()
	return opts
}

func main() {
	opts := parseOptions()
	if opts.version {
		fmt.Printf("byow\t%v\n", Version)
		if bi, ok := debug.ReadBuildInfo(); ok {
			fmt.Print(bi)
		}
		return
	}
	log.SetPrefix("byow ")
	var seed *int64
	if opts.seed != "" {
		n, err := strconv.ParseInt(opts.seed, 10, 64)
		if err != nil {
			log.Fatalf("invalid seed %q: %v", opts.seed, err)
		}
		seed = &n
	}
	if opts.print {
		if seed == nil {
			log.Fatal("-print requires -seed")
		}
		if err := PrintWorld(os.Stdout, *seed); err != nil {
			log.Fatal(err)
		}
		return
	}
	switch {
	case opts.colors256:
		ColorMode = ColorMode256
	case opts.colors16:
		ColorMode = ColorMode16
	case opts.trueColor:
		ColorMode = ColorMode24bit
	case runtime.GOOS == "windows":
		ColorMode = ColorMode8
	}
	if err := InitConfig(); err != nil {
		log.Print(err)
	}
	if updateConfig(opts) {
		if err := SaveConfig(); err != nil {
			log.Printf("saving config: %v", err)
		}
	}
	if opts.mute {
		GameConfig.Sound = false
	}
	LogGame = opts.gameLogs
	initDriver(opts.fullscreen, opts.scaleW, opts.scaleH)
	var err error
	if opts.replay != "" {
		err = RunReplay(opts.replay)
	} else {
		err = RunGame(seed)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// updateConfig applies the config flags given on the command line to
// GameConfig and reports whether there was any.
func updateConfig(opts *options) bool {
	changed := false
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "los":
			GameConfig.LineOfSight = opts.los
		case "light":
			GameConfig.DarkColors = !opts.light
		case "step":
			GameConfig.StepSound = opts.step
		default:
			return
		}
		changed = true
	})
	return changed
}

// PrintWorld generates the world for the given seed and writes it to w in
// save format.
func PrintWorld(w io.Writer, seed int64) error {
	wd, err := Generate(seed)
	if err != nil {
		return err
	}
	return EncodeWorld(w, wd)
}

// replayRecorder records the frames of a session in the data directory.
type replayRecorder struct {
	f   *os.File
	dir string
}

func newReplayRecorder() (*replayRecorder, error) {
	dir, err := DataDir()
	if err != nil {
		return nil, err
	}
	RemoveReplay()
	f, err := os.OpenFile(filepath.Join(dir, replayPartName), os.O_RDWR|os.O_APPEND|os.O_CREATE, 0o666)
	if err != nil {
		return nil, fmt.Errorf("opening replay file: %w", err)
	}
	return &replayRecorder{f: f, dir: dir}, nil
}

func (rr *replayRecorder) Write(p []byte) (int, error) {
	return rr.f.Write(p)
}

// Close ends the recording: the partial replay becomes the default replay.
func (rr *replayRecorder) Close() error {
	if err := rr.f.Close(); err != nil {
		return err
	}
	return os.Rename(rr.f.Name(), filepath.Join(rr.dir, replayFileName))
}

// RunGame starts the game, directly in a new world if seed is non-nil. The
// replay and the log file are closed before it returns.
func RunGame(seed *int64) error {
	md := &model{gd: gruid.NewGrid(UIWidth, UIHeight), startSeed: seed}
	cfg := gruid.AppConfig{Driver: driver, Model: md}
	rec, err := newReplayRecorder()
	if err != nil {
		log.Print(err)
	} else {
		cfg.FrameWriter = rec
		defer func() {
			if err := rec.Close(); err != nil {
				log.Printf("writing replay: %v", err)
			}
		}()
	}
	defer redirectLog()()
	return gruid.NewApp(cfg).Start(context.Background())
}

// frameDecoder returns a decoder for a replay, either raw or base64 encoded
// as exported from the web version.
func frameDecoder(r io.ReadSeeker) (*gruid.FrameDecoder, error) {
	fd, err := gruid.NewFrameDecoder(r)
	if err == nil {
		return fd, nil
	}
	if _, serr := r.Seek(0, io.SeekStart); serr != nil {
		return nil, serr
	}
	fd, b64err := gruid.NewFrameDecoder(base64.NewDecoder(base64.StdEncoding, r))
	if b64err != nil {
		return nil, err
	}
	return fd, nil
}

// RunReplay plays the given replay file, or the last session's replay if
// file is "_".
func RunReplay(file string) error {
	if file == "_" {
		path, err := dataPath(replayFileName)
		if err != nil {
			return err
		}
		file = path
	}
	replay, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("loading replay file: %w", err)
	}
	defer replay.Close()
	fd, err := frameDecoder(replay)
	if err != nil {
		return fmt.Errorf("frame decoder: %w", err)
	}
	rep := ui.NewReplay(ui.ReplayConfig{
		Grid:         gruid.NewGrid(UIWidth, UIHeight),
		FrameDecoder: fd,
	})
	defer redirectLog()()
	return gruid.NewApp(gruid.AppConfig{Driver: driver, Model: rep}).Start(context.Background())
}

// redirectLog sends standard log output to the logs file and returns a
// function that closes it and restores logging to stderr.
func redirectLog() func() {
	f := setLogOutput()
	return func() {
		log.SetOutput(os.Stderr)
		if f == nil {
			return
		}
		if err := f.Close(); err != nil {
			log.Printf("closing log file: %v", err)
		}
	}
}

// setLogOutput redirects standard log output to the logs file in the data
// directory. Tile backends keep logging to stderr too.
func setLogOutput() *os.File {
	path, err := dataPath("logs.txt")
	if err != nil {
		log.Print(err)
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		log.Print(err)
		return nil
	}
	if Tiles {
		log.SetOutput(io.MultiWriter(f, os.Stderr))
	} else {
		log.SetOutput(f)
	}
	return f
}

// subSig is a subscription that intercepts SIGTERM for closing the game
// gracefully.
func subSig(ctx context.Context, msgs chan<- gruid.Msg) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)
	select {
	case <-ctx.Done():
	case <-sig:
		msgs <- gruid.MsgQuit{}
	}
}

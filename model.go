// This files defines the model structure, as well as initialization functions.

package main

import (
	"fmt"
	"log"
	"runtime"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/ui"
)

// Version is the game's version, used to discard incompatible config files.
const Version = "v0.1.0"

const (
	UIWidth  = 80            // UI width
	UIHeight = MapHeight + 3 // UI height: two log lines, the map and a status line
)

var (
	LogGame   = false       // write game logs to file
	ColorMode = ColorMode16 // default 16-color palette
)

// colorMode represents various color compatibility modes.
type colorMode int

const (
	ColorMode16    colorMode = iota
	ColorMode8               // use 8-color compatibility mode (default for windows)
	ColorMode256             // use solarized 256-color approximation
	ColorMode24bit           // use true color selenized palette
)

// GameConfig contains the current game config.
var GameConfig Config

// mode represents the main model mode
type mode int

const (
	modeMenu     mode = iota // main menu: new game, load, quit
	modeSeed                 // seed entry for a new game
	modeNormal               // map game mode
	modeCommand              // waiting for a command after ':'
	modeQuitting             // wait until end message
)

// model describes the gruid.Model of the game.
type model struct {
	action     Action     // action to handle
	gd         gruid.Grid // drawing grid
	keysNormal map[gruid.Key]Action
	log        *ui.Label // game's last log messages
	logs       Logs      // message log
	menu       *ui.Menu  // main menu
	mode       mode      // main mode
	seed       []rune    // digits typed in seed entry
	startSeed  *int64    // seed given on the command line, if any
	status     *ui.Label // status line
	step       stepper   // step sound
	w          *World    // current world (nil in main menu)
}

func (md *model) init() gruid.Effect {
	md.mode = modeMenu
	md.initWidgets()
	md.initKeys()
	md.step = newStepper(GameConfig)
	if md.startSeed != nil {
		md.newWorld(*md.startSeed)
	}
	if runtime.GOOS == "js" {
		return nil
	}
	return gruid.Sub(subSig)
}

func (md *model) initWidgets() {
	md.log = ui.NewLabel(ui.StyledText{}.WithMarkups(Markups))
	md.status = ui.NewLabel(ui.StyledText{}.WithMarkups(Markups))
	md.status.AdjustWidth = false
	style := ui.MenuStyle{
		Active: gruid.Style{Fg: ColorYellow},
	}
	md.menu = ui.NewMenu(ui.MenuConfig{
		Grid: gruid.NewGrid(UIWidth/2, 3),
		Entries: []ui.MenuEntry{
			{Text: ui.Text("(N)ew game"), Keys: []gruid.Key{"n", "N"}},
			{Text: ui.Text("(L)oad game"), Keys: []gruid.Key{"l", "L"}},
			{Text: ui.Text("(Q)uit"), Keys: []gruid.Key{"q", "Q"}},
		},
		Style: style,
	})
}

func (md *model) initKeys() {
	md.keysNormal = map[gruid.Key]Action{
		gruid.KeyEscape:     ActionNone{},
		gruid.KeyArrowLeft:  ActionMove{Key: 'a'},
		gruid.KeyArrowDown:  ActionMove{Key: 's'},
		gruid.KeyArrowUp:    ActionMove{Key: 'w'},
		gruid.KeyArrowRight: ActionMove{Key: 'd'},
		"l":                 ActionToggleLineOfSight{},
		"L":                 ActionToggleLineOfSight{},
		":":                 ActionCommand{},
	}
	for _, r := range "wasdWASD" {
		md.keysNormal[gruid.Key(r)] = ActionMove{Key: r}
	}
}

// newWorld generates a new world and switches to normal mode. On failure, the
// error is logged and the mode is left unchanged.
func (md *model) newWorld(seed int64) {
	w, err := Generate(seed)
	if err != nil {
		md.LogStyled(fmt.Sprintf("Could not generate world: %v", err), logError)
		log.Print(err)
		return
	}
	md.setWorld(w)
	md.LogStyled(fmt.Sprintf("New world from seed %d.", seed), logNotable)
}

// setWorld makes w the current world.
func (md *model) setWorld(w *World) {
	w.LineOfSight = GameConfig.LineOfSight
	w.SetStepper(md.step)
	md.w = w
	md.mode = modeNormal
}

// InitConfig loads saved config, if any, and initializes GameConfig.
func InitConfig() error {
	GameConfig.DarkColors = true // default to dark theme
	GameConfig.Sound = true
	GameConfig.Version = Version
	_, err := LoadConfig()
	if err != nil {
		err = fmt.Errorf("error loading config: %v", err)
		saverr := SaveConfig()
		if saverr != nil {
			log.Printf("error resetting badly loaded config: %v", err)
		}
		return err
	}
	return nil
}

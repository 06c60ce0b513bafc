// This file defines the Update method for the model.

package main

import (
	"fmt"
	"log"
	"strconv"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/ui"
)

// Update implements Update() for gruid.Model.
func (md *model) Update(msg gruid.Msg) gruid.Effect {
	if _, ok := msg.(gruid.MsgInit); ok {
		return md.init()
	}
	if _, ok := msg.(gruid.MsgQuit); ok {
		if md.mode != modeQuitting && md.w != nil {
			// Save world before quitting.
			if err := SaveWorld(md.w); err != nil {
				log.Printf("saving before quitting: %v", err)
			}
		}
		md.mode = modeQuitting
		return gruid.End()
	}
	return md.update(msg)
}

func (md *model) update(msg gruid.Msg) gruid.Effect {
	md.action = ActionNone{}
	switch md.mode {
	case modeMenu:
		return md.updateMenu(msg)
	case modeSeed:
		md.updateSeed(msg)
	case modeNormal:
		if msg, ok := msg.(gruid.MsgKeyDown); ok {
			md.updateKeyDown(msg)
		}
	case modeCommand:
		if msg, ok := msg.(gruid.MsgKeyDown); ok {
			md.updateCommand(msg)
		}
	case modeQuitting:
		// Do nothing.
		return nil
	}
	return md.action.Handle(md)
}

func (md *model) updateMenu(msg gruid.Msg) gruid.Effect {
	md.menu.Update(menuRange().RelMsg(msg))
	if md.menu.Action() != ui.MenuInvoke {
		return nil
	}
	switch md.menu.ActiveInvokable() {
	case 0:
		md.seed = md.seed[:0]
		md.mode = modeSeed
	case 1:
		md.loadWorld()
	case 2:
		md.mode = modeQuitting
		return gruid.End()
	}
	return nil
}

// loadWorld resumes the saved world, if any.
func (md *model) loadWorld() {
	w, ok, err := LoadWorld()
	switch {
	case err != nil:
		md.LogStyled("Could not load saved world.", logError)
		log.Printf("loading world: %v", err)
	case !ok:
		md.Log("No saved game to load.")
	default:
		md.setWorld(w)
		md.LogStyled(fmt.Sprintf("Welcome back to world %d.", w.Seed), logNotable)
	}
}

func (md *model) updateSeed(msg gruid.Msg) {
	msgk, ok := msg.(gruid.MsgKeyDown)
	if !ok {
		return
	}
	switch msgk.Key {
	case gruid.KeyEscape:
		md.mode = modeMenu
	case gruid.KeyBackspace:
		if len(md.seed) > 0 {
			md.seed = md.seed[:len(md.seed)-1]
		}
	case gruid.KeyEnter, "s", "S":
		if len(md.seed) == 0 {
			md.Log("Type a seed first.")
			return
		}
		seed, err := strconv.ParseInt(string(md.seed), 10, 64)
		if err != nil {
			md.LogStyled("Seed too large.", logError)
			return
		}
		md.newWorld(seed)
	default:
		if !msgk.Key.IsRune() {
			return
		}
		r := []rune(string(msgk.Key))[0]
		if r >= '0' && r <= '9' {
			md.seed = append(md.seed, r)
		}
	}
}

func (md *model) updateKeyDown(msg gruid.MsgKeyDown) {
	a := md.keysNormal[msg.Key]
	if a != nil {
		md.action = a
	} else if msg.Key.IsRune() && LogGame {
		log.Printf("ignoring key %q", msg.Key)
	}
}

func (md *model) updateCommand(msg gruid.MsgKeyDown) {
	switch msg.Key {
	case "q", "Q":
		md.action = ActionSaveQuit{}
	default:
		md.mode = modeNormal
	}
}

package main

import (
	"log"

	"codeberg.org/anaseto/gruid"
)

// Action represents a player action in the game.
type Action interface {
	// Handle processes an action and returns possibly an effect.
	Handle(*model) gruid.Effect
}

// ActionNone does nothing.
type ActionNone struct{}

func (a ActionNone) Handle(md *model) gruid.Effect {
	return nil
}

// ActionMove moves the avatar according to one of the w, a, s, d keys.
type ActionMove struct {
	Key rune
}

func (a ActionMove) Handle(md *model) gruid.Effect {
	if !md.w.MoveAvatar(a.Key) {
		md.Log("You cannot go there.")
	}
	return nil
}

// ActionToggleLineOfSight switches line-of-sight visibility.
type ActionToggleLineOfSight struct{}

func (a ActionToggleLineOfSight) Handle(md *model) gruid.Effect {
	md.w.ToggleLineOfSight()
	if md.w.LineOfSight {
		md.Log("Line of sight enabled.")
	} else {
		md.Log("Line of sight disabled.")
	}
	return nil
}

// ActionCommand waits for a command key.
type ActionCommand struct{}

func (a ActionCommand) Handle(md *model) gruid.Effect {
	md.mode = modeCommand
	return nil
}

// ActionSaveQuit saves the world and quits.
type ActionSaveQuit struct{}

func (a ActionSaveQuit) Handle(md *model) gruid.Effect {
	if err := SaveWorld(md.w); err != nil {
		md.LogStyled("Error while saving world.", logError)
		log.Printf("saving world: %v", err)
		md.mode = modeNormal
		return nil
	}
	md.mode = modeQuitting
	return gruid.End()
}

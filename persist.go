package main

import (
	"bytes"
	"fmt"
	"log"
)

// Data files, relative to the data directory (or keys of the local storage
// for the js backend).
const (
	saveFileName   = "save.txt"
	configFileName = "config"
	replayFileName = "replay"
)

// SaveWorld saves the world in text save format.
func SaveWorld(wd *World) error {
	var buf bytes.Buffer
	if err := EncodeWorld(&buf, wd); err != nil {
		return fmt.Errorf("encoding world: %w", err)
	}
	if err := SaveFile(saveFileName, buf.Bytes()); err != nil {
		return fmt.Errorf("writing save: %w", err)
	}
	return nil
}

// LoadWorld loads the saved world. It returns false and no error when there
// is no save.
func LoadWorld() (*World, bool, error) {
	data, err := ReadDataFile(saveFileName)
	if err != nil || data == nil {
		return nil, false, err
	}
	wd, err := DecodeWorld(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("loading save: %w", err)
	}
	return wd, true, nil
}

// SaveConfig saves the game's config.
func SaveConfig() error {
	data, err := GameConfig.ConfigSave()
	if err != nil {
		return err
	}
	return SaveFile(configFileName, data)
}

// LoadConfig loads the game's config into GameConfig and reports whether
// there was a compatible one. Configs from other versions are removed.
func LoadConfig() (bool, error) {
	data, err := ReadDataFile(configFileName)
	if err != nil || data == nil {
		return false, err
	}
	c, err := DecodeConfigSave(data)
	if err != nil {
		return false, err
	}
	if c.Version != GameConfig.Version {
		log.Printf("ignoring config from version %s", c.Version)
		if err := RemoveDataFile(configFileName); err != nil {
			log.Printf("removing old config: %v", err)
		}
		return false, nil
	}
	GameConfig = *c
	return true, nil
}

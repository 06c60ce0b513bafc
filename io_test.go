//go:build !js

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// tempDataDir points the data directory to a fresh temporary directory and
// restores the game config at the end of the test.
func tempDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("LOCALAPPDATA", dir)
	conf := GameConfig
	t.Cleanup(func() {
		GameConfig = conf
	})
	GameConfig = Config{Version: Version}
	return filepath.Join(dir, "byow")
}

func TestSaveLoadWorld(t *testing.T) {
	dir := tempDataDir(t)
	w, ok, err := LoadWorld()
	if w != nil || ok || err != nil {
		t.Fatalf("load without save: %v %v %v", w, ok, err)
	}
	w, err = Generate(7)
	if err != nil {
		t.Fatal(err)
	}
	w.MoveAvatar('s')
	if err := SaveWorld(w); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, saveFileName)); err != nil {
		t.Fatalf("no save file: %v", err)
	}
	wd, ok, err := LoadWorld()
	if err != nil || !ok {
		t.Fatalf("load: %v %v", ok, err)
	}
	if wd.Seed != 7 || wd.Avatar() != w.Avatar() || map2String(wd.Terrain()) != map2String(w.Terrain()) {
		t.Errorf("loaded world differs from saved one")
	}
	if err := os.WriteFile(filepath.Join(dir, saveFileName), []byte("7\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadWorld(); err == nil {
		t.Errorf("truncated save loaded")
	}
}

func TestSaveLoadConfig(t *testing.T) {
	dir := tempDataDir(t)
	if ok, err := LoadConfig(); ok || err != nil {
		t.Fatalf("load without config: %v %v", ok, err)
	}
	GameConfig.LineOfSight = true
	GameConfig.StepSound = "step.wav"
	if err := SaveConfig(); err != nil {
		t.Fatal(err)
	}
	GameConfig = Config{Version: Version}
	ok, err := LoadConfig()
	if err != nil || !ok {
		t.Fatalf("load: %v %v", ok, err)
	}
	if !GameConfig.LineOfSight || GameConfig.StepSound != "step.wav" {
		t.Errorf("bad loaded config %+v", GameConfig)
	}
	GameConfig.Version = "v0.0.0"
	if err := SaveConfig(); err != nil {
		t.Fatal(err)
	}
	GameConfig = Config{Version: Version}
	if ok, err := LoadConfig(); ok || err != nil {
		t.Errorf("old config loaded: %v %v", ok, err)
	}
	if GameConfig.LineOfSight {
		t.Errorf("old config applied")
	}
	if _, err := os.Stat(filepath.Join(dir, configFileName)); !os.IsNotExist(err) {
		t.Errorf("old config not removed: %v", err)
	}
}

func TestInitConfigDefaults(t *testing.T) {
	tempDataDir(t)
	if err := InitConfig(); err != nil {
		t.Fatal(err)
	}
	if !GameConfig.DarkColors || !GameConfig.Sound || GameConfig.LineOfSight || GameConfig.Version != Version {
		t.Errorf("bad default config %+v", GameConfig)
	}
}

func TestRemoveDataFile(t *testing.T) {
	dir := tempDataDir(t)
	if err := RemoveDataFile("missing"); err != nil {
		t.Errorf("removing missing file: %v", err)
	}
	if err := SaveFile(replayPartName, []byte("frames")); err != nil {
		t.Fatal(err)
	}
	RemoveReplay()
	if _, err := os.Stat(filepath.Join(dir, replayPartName)); !os.IsNotExist(err) {
		t.Errorf("replay not removed: %v", err)
	}
}

func TestPrintWorld(t *testing.T) {
	var sb1, sb2 strings.Builder
	if err := PrintWorld(&sb1, 42); err != nil {
		t.Fatal(err)
	}
	if err := PrintWorld(&sb2, 42); err != nil {
		t.Fatal(err)
	}
	if sb1.String() != sb2.String() || !strings.HasPrefix(sb1.String(), "42\n") {
		t.Errorf("bad printed world:\n%s", sb1.String())
	}
}

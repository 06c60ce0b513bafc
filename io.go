//go:build !js

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"runtime"
)

// replayPartName is the replay of the running session, renamed to
// replayFileName when the session ends.
const replayPartName = replayFileName + ".part"

// DataDir returns the directory holding saves, config, replays and logs. It
// is created if needed.
func DataDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if runtime.GOOS == "windows" {
		base = os.Getenv("LOCALAPPDATA")
	}
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locating data directory: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}
	dir := filepath.Join(base, "byow")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("building data directory: %w", err)
	}
	return dir, nil
}

// dataPath returns the path of a file in the data directory.
func dataPath(name string) (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// SaveFile replaces the named data file with data. The file is first
// written aside and then renamed, so an interrupted save never leaves a
// truncated file behind.
func SaveFile(name string, data []byte) error {
	path, err := dataPath(name)
	if err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), name+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// ReadDataFile returns the contents of the named data file, or nil and no
// error if it does not exist.
func ReadDataFile(name string) ([]byte, error) {
	path, err := dataPath(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

// RemoveDataFile removes the named data file, if it exists.
func RemoveDataFile(name string) error {
	path, err := dataPath(name)
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// RemoveReplay removes the partial replay of a previous session, if any.
func RemoveReplay() {
	if err := RemoveDataFile(replayPartName); err != nil {
		log.Printf("removing replay: %v", err)
	}
}

//go:build js

package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"log"
	"syscall/js"

	"codeberg.org/anaseto/gruid"
	jsd "codeberg.org/anaseto/gruid-js"
)

var driver gruid.Driver

func initDriver() {
	driver = jsd.NewDriver(jsd.Config{
		TileManager: mustTileManager(),
		AppCanvasId: "gamecanvas",
		AppDivId:    "gamediv",
	})
}

func main() {
	log.SetPrefix("byow ")
	initDriver()
	if err := InitConfig(); err != nil {
		log.Print(err)
	}
	if err := RunGame(); err != nil {
		log.Fatal(err)
	}
}

// RunGame starts the game. The session's replay is kept in local storage
// once the game ends.
func RunGame() error {
	md := &model{gd: gruid.NewGrid(UIWidth, UIHeight)}
	var frames bytes.Buffer
	app := gruid.NewApp(gruid.AppConfig{
		Driver:      driver,
		Model:       md,
		FrameWriter: &frames,
	})
	err := app.Start(context.Background())
	if serr := SaveFile(replayFileName, frames.Bytes()); serr != nil {
		log.Printf("saving replay: %v", serr)
	}
	return err
}

// storageKey returns the local storage key of a data file.
func storageKey(name string) string {
	return "byow-" + name
}

func localStorage() (js.Value, error) {
	storage := js.Global().Get("localStorage")
	if storage.Type() != js.TypeObject {
		return js.Value{}, errors.New("localStorage not found")
	}
	return storage, nil
}

// SaveFile stores data base64 encoded in local storage.
func SaveFile(name string, data []byte) error {
	storage, err := localStorage()
	if err != nil {
		return err
	}
	storage.Call("setItem", storageKey(name), base64.StdEncoding.EncodeToString(data))
	return nil
}

// ReadDataFile returns the decoded contents of a local storage item, or nil
// and no error if there is no such item.
func ReadDataFile(name string) ([]byte, error) {
	storage, err := localStorage()
	if err != nil {
		return nil, err
	}
	item := storage.Call("getItem", storageKey(name))
	if item.Type() != js.TypeString {
		return nil, nil
	}
	return base64.StdEncoding.DecodeString(item.String())
}

// RemoveDataFile removes an item from local storage.
func RemoveDataFile(name string) error {
	storage, err := localStorage()
	if err != nil {
		return err
	}
	storage.Call("removeItem", storageKey(name))
	return nil
}

// subSig does nothing: the browser has no signals.
func subSig(ctx context.Context, msgs chan<- gruid.Msg) {}

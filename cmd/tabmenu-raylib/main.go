//go:build raylib

// Command tabmenu-raylib draws the configured menus in a raylib window.
package main

import (
	"flag"
	"log"

	"github.com/OpticalFlyer/tabmenu/config"
	"github.com/OpticalFlyer/tabmenu/geom"
	"github.com/OpticalFlyer/tabmenu/render/raylibr"
	"github.com/OpticalFlyer/tabmenu/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML layout file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	windows, err := config.Build(cfg)
	if err != nil {
		log.Fatal(err)
	}

	controller := ui.NewController()
	controller.Debug = cfg.Debug
	for _, w := range windows {
		controller.Add(w)
	}
	defer controller.Dispose()

	clearColor, err := cfg.Window.ClearColor()
	if err != nil {
		log.Fatal(err)
	}
	backend := raylibr.New(clearColor)
	size := geom.Vec(float32(cfg.Window.Width), float32(cfg.Window.Height))
	if err := backend.InitWindow(cfg.Window.Title, size); err != nil {
		log.Fatal(err)
	}
	defer backend.Close()
	if err := backend.Init(); err != nil {
		log.Fatal(err)
	}

	for !backend.ShouldClose() {
		p := raylibr.MousePosition()
		controller.HandleInput(p.X, p.Y, raylibr.MouseDown())

		controller.FPS = raylibr.FPS()
		backend.PreFrame()
		controller.Draw(backend)
		backend.Present()
	}
}

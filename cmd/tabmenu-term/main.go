// Command tabmenu-term draws the configured menus in a terminal.
package main

import (
	"flag"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/OpticalFlyer/tabmenu/config"
	"github.com/OpticalFlyer/tabmenu/render/termr"
	"github.com/OpticalFlyer/tabmenu/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML layout file")
	logPath := flag.String("log", "", "append log output to this file")
	flag.Parse()

	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "tabmenu")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

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

	canvas := termr.New()
	if err := canvas.InitWindow(cfg.Window.Title, windowSize(cfg)); err != nil {
		log.Fatal(err)
	}
	if err := canvas.Init(); err != nil {
		log.Fatal(err)
	}

	m := newModel(controller, canvas, windows)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		os.Exit(1)
	}
}

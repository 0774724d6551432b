package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/tabmenu/config"
	"github.com/OpticalFlyer/tabmenu/geom"
	"github.com/OpticalFlyer/tabmenu/render/ebitenr"
	"github.com/OpticalFlyer/tabmenu/ui"
)

// Overlay implements ebiten.Game interface.
type Overlay struct {
	ui      *ui.Controller
	backend *ebitenr.Backend

	touch touchTracker
}

func (o *Overlay) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.ui.Debug = !o.ui.Debug
	}

	// Touch input takes over the pointer while any finger is tracked
	if o.handleTouchEvents() {
		return nil
	}

	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	o.ui.HandleInput(float32(x), float32(y), pressed)
	return nil
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.ui.FPS = ebiten.ActualFPS()

	o.backend.Begin(screen)
	o.backend.PreFrame()
	o.ui.Draw(o.backend)
	o.backend.Present()
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "", "path to a TOML layout file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Backend != "ebiten" {
		log.Printf("Backend %q is served by another host; using ebiten", cfg.Backend)
	}

	windows, err := config.Build(cfg)
	if err != nil {
		log.Fatal(err)
	}

	uiController := ui.NewController()
	uiController.Debug = cfg.Debug
	for _, w := range windows {
		uiController.Add(w)
	}
	defer uiController.Dispose()

	clearColor, err := cfg.Window.ClearColor()
	if err != nil {
		log.Fatal(err)
	}
	backend := ebitenr.New(clearColor, cfg.Window.VSync)
	size := geom.Vec(float32(cfg.Window.Width), float32(cfg.Window.Height))
	if err := backend.InitWindow(cfg.Window.Title, size); err != nil {
		log.Fatal(err)
	}
	if err := backend.Init(); err != nil {
		log.Fatal(err)
	}

	app := &Overlay{
		ui:      uiController,
		backend: backend,
	}
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}

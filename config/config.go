// Package config loads the window and menu layout for the demo hosts.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/OpticalFlyer/tabmenu/geom"
	"github.com/OpticalFlyer/tabmenu/ui"
)

// EnvConfigPath names the environment variable that overrides the config path.
const EnvConfigPath = "TABMENU_CONFIG"

// Config holds application configuration.
type Config struct {
	Window  WindowConfig
	Backend string
	Debug   bool
	Menus   []MenuConfig
}

// WindowConfig holds the host window settings.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	VSync  bool
	Clear  string
}

// MenuConfig describes one tabbed window.
type MenuConfig struct {
	Name          string
	X, Y          float32
	Width, Height float32

	TitleColor    string `mapstructure:"title_color"`
	TabColor      string `mapstructure:"tab_color"`
	TabTitleColor string `mapstructure:"tab_title_color"`
	TabTextColor  string `mapstructure:"tab_text_color"`

	TabBarHeight float32 `mapstructure:"tab_bar_height"`
	BorderWidth  float32 `mapstructure:"border_width"`
	DefaultTab   uint32  `mapstructure:"default_tab"`
	Tabs         []string
}

// Default returns the layout used when no config file is present.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "tabmenu",
			Width:  800,
			Height: 600,
			VSync:  true,
			Clear:  "#202020",
		},
		Backend: "ebiten",
		Menus: []MenuConfig{{
			Name:          "Settings",
			X:             10,
			Y:             10,
			Width:         300,
			Height:        220,
			TitleColor:    "#3c3c3c",
			TabColor:      "#646464",
			TabTitleColor: "#2196f3",
			TabTextColor:  "#000000",
			TabBarHeight:  ui.DefaultTabBarHeight,
			BorderWidth:   ui.DefaultBorderWidth,
			Tabs:          []string{"General", "Audio", "Video"},
		}},
	}
}

// Load reads configuration from path, or from $TABMENU_CONFIG, or from
// $HOME/.config/tabmenu/config.toml. Missing files fall back to Default. A
// file that is found owns the menu list, so an empty or absent list yields no
// menus. Env var overrides use prefix TABMENU_.
func Load(path string) (Config, error) {
	def := Default()
	v := viper.New()

	// default values
	v.SetDefault("window.title", def.Window.Title)
	v.SetDefault("window.width", def.Window.Width)
	v.SetDefault("window.height", def.Window.Height)
	v.SetDefault("window.vsync", def.Window.VSync)
	v.SetDefault("window.clear", def.Window.Clear)
	v.SetDefault("backend", def.Backend)
	v.SetDefault("debug", false)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tabmenu"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TABMENU")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	found := true
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		found = false
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if !found {
		c.Menus = def.Menus
	}
	for i := range c.Menus {
		c.Menus[i].applyDefaults()
	}
	return c, nil
}

func (m *MenuConfig) applyDefaults() {
	if m.TabBarHeight == 0 {
		m.TabBarHeight = ui.DefaultTabBarHeight
	}
	if m.BorderWidth == 0 {
		m.BorderWidth = ui.DefaultBorderWidth
	}
	if m.TabTextColor == "" {
		m.TabTextColor = "#000000"
	}
}

// ClearColor parses the window clear color.
func (w WindowConfig) ClearColor() (geom.Color, error) {
	return geom.ParseHexColor(w.Clear)
}

// Context converts the menu description into a TabbedWindowContext.
func (m MenuConfig) Context() (ui.TabbedWindowContext, error) {
	ctx := ui.NewTabbedWindowContext()
	ctx.WindowName = m.Name
	ctx.Position = geom.Vec(m.X, m.Y)
	ctx.Size = geom.Vec(m.Width, m.Height)
	ctx.DefaultTabFocusIndex = m.DefaultTab
	if m.TabBarHeight != 0 {
		ctx.TabBarHeight = m.TabBarHeight
	}
	if m.BorderWidth != 0 {
		ctx.BorderWidth = m.BorderWidth
	}

	colors := []struct {
		field string
		value string
		dst   *geom.Color
	}{
		{"title_color", m.TitleColor, &ctx.TitleFillColor},
		{"tab_color", m.TabColor, &ctx.TabFillColor},
		{"tab_title_color", m.TabTitleColor, &ctx.TabTitleFillColor},
		{"tab_text_color", m.TabTextColor, &ctx.TabTextColor},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		clr, err := geom.ParseHexColor(c.value)
		if err != nil {
			return ui.TabbedWindowContext{}, fmt.Errorf("menu %q %s: %w", m.Name, c.field, err)
		}
		*c.dst = clr
	}
	return ctx, nil
}

// Build constructs one TabbedWindow per configured menu with its tabs added.
// A menu without tabs becomes a window with no pages.
func Build(c Config) ([]*ui.TabbedWindow, error) {
	windows := make([]*ui.TabbedWindow, 0, len(c.Menus))
	for _, m := range c.Menus {
		ctx, err := m.Context()
		if err != nil {
			return nil, err
		}
		w := ui.NewTabbedWindow(ctx)
		for _, tab := range m.Tabs {
			w.AddTabPage(tab)
		}
		windows = append(windows, w)
	}
	return windows, nil
}

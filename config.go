package main

import (
	"flag"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

var (
	configPath = flag.String("c", "", "toml config file")
	widthFlag  = flag.Int("w", 640, "window width")
	heightFlag = flag.Int("h", 480, "window height")
	titleFlag  = flag.String("title", "Hello World", "window title")
	sceneFlag  = flag.String("scene", "triangle", "scene to draw: triangle or quad")
	shaderFlag = flag.String("shader", "", "shader file, empty uses the builtin Basic.shader")
	vsyncFlag  = flag.Bool("vsync", true, "enable vsync")
)

type Config struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	Scene  string `toml:"scene"`
	Shader string `toml:"shader"`
	VSync  bool   `toml:"vsync"`
}

func defaultConfig() Config {
	return Config{
		Width:  640,
		Height: 480,
		Title:  "Hello World",
		Scene:  "triangle",
		VSync:  true,
	}
}

// LoadConfig reads the toml file at path over the defaults. Keys missing
// from the file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("bad window size %dx%d", c.Width, c.Height)
	}
	if _, err := FindScene(c.Scene); err != nil {
		return err
	}
	return nil
}

// applyFlags overrides cfg with the flags explicitly set on fs and returns
// the names of those flags.
func applyFlags(cfg *Config, fs *flag.FlagSet) (map[string]bool, error) {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
		v := f.Value.(flag.Getter).Get()
		switch f.Name {
		case "w":
			cfg.Width = v.(int)
		case "h":
			cfg.Height = v.(int)
		case "title":
			cfg.Title = v.(string)
		case "scene":
			cfg.Scene = v.(string)
		case "shader":
			cfg.Shader = v.(string)
		case "vsync":
			cfg.VSync = v.(bool)
		}
	})
	return set, cfg.validate()
}

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/blueprint/audio"
	"github.com/lixenwraith/blueprint/flow"
	"github.com/lixenwraith/blueprint/input"
	"github.com/lixenwraith/blueprint/parameter"
	"github.com/lixenwraith/blueprint/parameter/visual"
	"github.com/lixenwraith/blueprint/render"
	"github.com/lixenwraith/blueprint/terminal"
)

// Config represents the complete blueprint configuration
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Scene   SceneConfig   `yaml:"scene"`
	Pointer PointerConfig `yaml:"pointer"`
	Audio   AudioConfig   `yaml:"audio"`
	Content ContentConfig `yaml:"content"`
	Log     LogConfig     `yaml:"log"`
}

// RenderConfig contains frame loop and raster settings
type RenderConfig struct {
	FPS        int     `yaml:"fps"`
	CellWidth  float64 `yaml:"cell_width"`  // logical px per terminal column
	CellHeight float64 `yaml:"cell_height"` // logical px per terminal row
	FadeAlpha  float64 `yaml:"fade_alpha"`  // trail persistence, lower keeps trails longer
}

// SceneConfig contains the pipeline layout and palette
type SceneConfig struct {
	Background string       `yaml:"background"`
	Nodes      []NodeConfig `yaml:"nodes"` // exactly three when set
}

// NodeConfig defines one pipeline stage
type NodeConfig struct {
	Label string  `yaml:"label"`
	X     float64 `yaml:"x"` // fraction of canvas width
	Y     float64 `yaml:"y"` // fraction of canvas height
	Color string  `yaml:"color"`
}

// PointerConfig contains trail interpolation settings
type PointerConfig struct {
	Spacing    float64 `yaml:"spacing"`
	MaxSteps   int     `yaml:"max_steps"`
	LeftColor  string  `yaml:"left_color"`
	RightColor string  `yaml:"right_color"`
}

// AudioConfig contains arrival chime settings
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	FrequencyHz float64 `yaml:"frequency_hz"`
	DurationMs  int     `yaml:"duration_ms"`
	Volume      float64 `yaml:"volume"`
}

// ContentConfig contains the portfolio content store location
type ContentConfig struct {
	DBPath   string `yaml:"db_path"`
	SeedPath string `yaml:"seed_path"`
}

// LogConfig contains debug log settings
type LogConfig struct {
	Debug bool   `yaml:"debug"`
	Dir   string `yaml:"dir"`
}

// Default returns the built-in configuration
func Default() *Config {
	nodes := make([]NodeConfig, len(visual.DefaultNodes))
	for i, n := range visual.DefaultNodes {
		nodes[i] = NodeConfig{Label: n.Label, X: n.X, Y: n.Y, Color: n.Color.Hex()}
	}
	return &Config{
		Render: RenderConfig{
			FPS:        parameter.FrameRate,
			CellWidth:  parameter.CellWidth,
			CellHeight: parameter.CellHeight,
			FadeAlpha:  parameter.FadeAlpha,
		},
		Scene: SceneConfig{
			Background: visual.RgbBackground.Hex(),
			Nodes:      nodes,
		},
		Pointer: PointerConfig{
			Spacing:    parameter.PointerSpawnSpacing,
			MaxSteps:   parameter.PointerMaxSteps,
			LeftColor:  visual.RgbPointerLeft.Hex(),
			RightColor: visual.RgbPointerRight.Hex(),
		},
		Audio: AudioConfig{
			Enabled:     true,
			FrequencyHz: parameter.ChimeFrequency,
			DurationMs:  int(parameter.ChimeDuration / time.Millisecond),
			Volume:      parameter.ChimeVolume,
		},
		Content: ContentConfig{
			DBPath: "blueprint.db",
		},
		Log: LogConfig{
			Dir: parameter.LogDir,
		},
	}
}

// Load reads a YAML file layered over Default, an empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate rejects out-of-range values, all violations are joined
func (c *Config) Validate() error {
	var errs []error

	if c.Render.FPS < 1 || c.Render.FPS > 240 {
		errs = append(errs, fmt.Errorf("render.fps must be in [1, 240], got %d", c.Render.FPS))
	}
	if c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0 {
		errs = append(errs, errors.New("render.cell_width and render.cell_height must be positive"))
	}
	if c.Render.FadeAlpha <= 0 || c.Render.FadeAlpha > 1 {
		errs = append(errs, fmt.Errorf("render.fade_alpha must be in (0, 1], got %g", c.Render.FadeAlpha))
	}

	if _, err := render.ParseHex(c.Scene.Background); err != nil {
		errs = append(errs, fmt.Errorf("scene.background: %w", err))
	}
	if len(c.Scene.Nodes) != 3 {
		errs = append(errs, fmt.Errorf("scene.nodes must list 3 nodes, got %d", len(c.Scene.Nodes)))
	}
	for i, n := range c.Scene.Nodes {
		if n.X < 0 || n.X > 1 || n.Y < 0 || n.Y > 1 {
			errs = append(errs, fmt.Errorf("scene.nodes[%d]: position must be fractions in [0, 1]", i))
		}
		if _, err := render.ParseHex(n.Color); err != nil {
			errs = append(errs, fmt.Errorf("scene.nodes[%d].color: %w", i, err))
		}
	}

	if c.Pointer.Spacing <= 0 {
		errs = append(errs, fmt.Errorf("pointer.spacing must be positive, got %g", c.Pointer.Spacing))
	}
	if c.Pointer.MaxSteps < 1 {
		errs = append(errs, fmt.Errorf("pointer.max_steps must be at least 1, got %d", c.Pointer.MaxSteps))
	}
	for name, hex := range map[string]string{"left_color": c.Pointer.LeftColor, "right_color": c.Pointer.RightColor} {
		if _, err := render.ParseHex(hex); err != nil {
			errs = append(errs, fmt.Errorf("pointer.%s: %w", name, err))
		}
	}

	if c.Audio.FrequencyHz <= 0 || c.Audio.FrequencyHz >= parameter.AudioSampleRate/2 {
		errs = append(errs, fmt.Errorf("audio.frequency_hz must be in (0, %d), got %g", parameter.AudioSampleRate/2, c.Audio.FrequencyHz))
	}
	if c.Audio.DurationMs < 1 {
		errs = append(errs, fmt.Errorf("audio.duration_ms must be positive, got %d", c.Audio.DurationMs))
	}
	if c.Audio.Volume <= 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in (0, 1], got %g", c.Audio.Volume))
	}

	return errors.Join(errs...)
}

// FrameInterval converts FPS to the dispatcher tick
func (c *Config) FrameInterval() time.Duration {
	if c.Render.FPS <= 0 {
		return parameter.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.Render.FPS)
}

// SceneOptions builds flow options, colors must already be valid
func (c *Config) SceneOptions() (flow.Options, error) {
	opts := flow.DefaultOptions()
	bg, err := render.ParseHex(c.Scene.Background)
	if err != nil {
		return opts, fmt.Errorf("scene.background: %w", err)
	}
	opts.Background = bg
	opts.FadeAlpha = c.Render.FadeAlpha

	for i, n := range c.Scene.Nodes {
		if i >= len(opts.Nodes) {
			break
		}
		color, err := render.ParseHex(n.Color)
		if err != nil {
			return opts, fmt.Errorf("scene.nodes[%d].color: %w", i, err)
		}
		opts.Nodes[i] = flow.Node{Index: i, X: n.X, Y: n.Y, Label: n.Label, Color: color}
	}
	return opts, nil
}

// PointerOptions builds the pointer adapter settings
func (c *Config) PointerOptions() (input.PointerConfig, error) {
	left, err := render.ParseHex(c.Pointer.LeftColor)
	if err != nil {
		return input.PointerConfig{}, fmt.Errorf("pointer.left_color: %w", err)
	}
	right, err := render.ParseHex(c.Pointer.RightColor)
	if err != nil {
		return input.PointerConfig{}, fmt.Errorf("pointer.right_color: %w", err)
	}
	return input.PointerConfig{
		Spacing:    c.Pointer.Spacing,
		MaxSteps:   c.Pointer.MaxSteps,
		LeftColor:  left,
		RightColor: right,
	}, nil
}

// ChimeOptions builds the arrival chime settings
func (c *Config) ChimeOptions() audio.ChimeConfig {
	return audio.ChimeConfig{
		Enabled:   c.Audio.Enabled,
		Frequency: c.Audio.FrequencyHz,
		Duration:  time.Duration(c.Audio.DurationMs) * time.Millisecond,
		Volume:    c.Audio.Volume,
		MinGap:    parameter.MinChimeGap,
	}
}

// SurfaceOptions builds the terminal surface geometry
func (c *Config) SurfaceOptions() (terminal.SurfaceOptions, error) {
	bg, err := render.ParseHex(c.Scene.Background)
	if err != nil {
		return terminal.SurfaceOptions{}, fmt.Errorf("scene.background: %w", err)
	}
	return terminal.SurfaceOptions{
		CellWidth:  c.Render.CellWidth,
		CellHeight: c.Render.CellHeight,
		Background: bg,
	}, nil
}

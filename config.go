package easel

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Tool kinds accepted in ToolConfig.Kind.
const (
	ToolKindBrush  = "brush"
	ToolKindEraser = "eraser"
	ToolKindLine   = "line"
)

// LayerConfig describes a surface created when a session starts.
type LayerConfig struct {
	Name       string `yaml:"name"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`
}

// ToolConfig describes a palette tool created when a session starts.
type ToolConfig struct {
	Name  string  `yaml:"name"`
	Kind  string  `yaml:"kind"`
	Width float64 `yaml:"width"`
	Color string  `yaml:"color"`
}

// Config holds session settings. The zero value is not usable; start from
// DefaultConfig or ParseConfig.
type Config struct {
	// Width and Height are the drawing area (stack bounds) in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// BaseOrder is the stacking order of the first layer.
	BaseOrder int `yaml:"base_order"`

	// Background is the default layer background color.
	Background string `yaml:"background"`

	// PaletteWidth is the width of the tool palette strip left of the
	// drawing area.
	PaletteWidth int `yaml:"palette_width"`

	// Debug enables development logging and layer-count warnings.
	Debug bool `yaml:"debug"`

	// SnapshotDir is where Snapshot writes PNG files.
	SnapshotDir string `yaml:"snapshot_dir"`

	Layers []LayerConfig `yaml:"layers"`
	Tools  []ToolConfig  `yaml:"tools"`
}

// DefaultConfig returns the settings used when no file is given: an 800x600
// drawing area with one white layer, a brush, an eraser and a line tool.
func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       600,
		BaseOrder:    DefaultBaseOrder,
		Background:   DefaultBackground,
		PaletteWidth: 40,
		SnapshotDir:  "snapshots",
		Layers: []LayerConfig{
			{Name: "background", Width: 640, Height: 480},
		},
		Tools: []ToolConfig{
			{Name: "brush", Kind: ToolKindBrush, Width: 4, Color: "#000000"},
			{Name: "eraser", Kind: ToolKindEraser, Width: 12},
			{Name: "line", Kind: ToolKindLine, Width: 2, Color: "#000000"},
		},
	}
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML over DefaultConfig, so omitted keys keep their
// defaults, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem in the config, not just the first.
func (c Config) Validate() error {
	var err error
	if c.Width <= 0 || c.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("config: drawing area %dx%d: %w", c.Width, c.Height, ErrInvalidDimension))
	}
	if c.PaletteWidth < 0 {
		err = multierr.Append(err, fmt.Errorf("config: negative palette_width %d", c.PaletteWidth))
	}
	if _, perr := ParseColor(c.Background); perr != nil {
		err = multierr.Append(err, fmt.Errorf("config: background: %w", perr))
	}
	for i, l := range c.Layers {
		if l.Width <= 0 || l.Height <= 0 {
			err = multierr.Append(err, fmt.Errorf("config: layers[%d] %dx%d: %w", i, l.Width, l.Height, ErrInvalidDimension))
		}
		if l.Background != "" {
			if _, perr := ParseColor(l.Background); perr != nil {
				err = multierr.Append(err, fmt.Errorf("config: layers[%d] background: %w", i, perr))
			}
		}
	}
	seen := make(map[string]bool, len(c.Tools))
	for i, t := range c.Tools {
		if t.Name == "" {
			err = multierr.Append(err, fmt.Errorf("config: tools[%d] has no name", i))
		} else if seen[t.Name] {
			err = multierr.Append(err, fmt.Errorf("config: tools[%d] duplicate name %q", i, t.Name))
		}
		seen[t.Name] = true
		switch t.Kind {
		case ToolKindBrush, ToolKindEraser, ToolKindLine:
		default:
			err = multierr.Append(err, fmt.Errorf("config: tools[%d] unknown kind %q", i, t.Kind))
		}
		if t.Width <= 0 {
			err = multierr.Append(err, fmt.Errorf("config: tools[%d] width %v must be positive", i, t.Width))
		}
		if t.Color != "" {
			if _, perr := ParseColor(t.Color); perr != nil {
				err = multierr.Append(err, fmt.Errorf("config: tools[%d] color: %w", i, perr))
			}
		}
	}
	return err
}

// NewToolFromConfig builds the tool described by tc.
func NewToolFromConfig(tc ToolConfig) (*Tool, error) {
	c := ColorBlack
	if tc.Color != "" {
		var err error
		if c, err = ParseColor(tc.Color); err != nil {
			return nil, fmt.Errorf("tool %q: %w", tc.Name, err)
		}
	}
	switch tc.Kind {
	case ToolKindBrush:
		return NewPaintBrush(tc.Name, tc.Width, c), nil
	case ToolKindEraser:
		return NewEraser(tc.Name, tc.Width), nil
	case ToolKindLine:
		return NewLineTool(tc.Name, tc.Width, c), nil
	default:
		return nil, fmt.Errorf("%w: tool %q has unknown kind %q", ErrTypeKindMismatch, tc.Name, tc.Kind)
	}
}

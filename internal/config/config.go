package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"blockdrop/internal/grid"
)

// Settings holds the demo configuration. Values come from defaults,
// optionally overridden by a YAML file.
type Settings struct {
	WindowWidth  int     `yaml:"window_width"`
	WindowHeight int     `yaml:"window_height"`
	FPSLimit     int     `yaml:"fps_limit"` // 0 disables the limiter
	GridSize     float32 `yaml:"grid_size"`
	Epsilon      float32 `yaml:"epsilon"`
	// Half-extent, in cells, of the area the Add Block button places into.
	SpawnRadius int `yaml:"spawn_radius"`
	// Ground plane half-extent in cells.
	GroundRadius int `yaml:"ground_radius"`
}

// Default returns the stock configuration: a 900x600 window over a unit grid.
func Default() Settings {
	return Settings{
		WindowWidth:  900,
		WindowHeight: 600,
		FPSLimit:     120,
		GridSize:     grid.DefaultSize,
		Epsilon:      grid.DefaultEpsilon,
		SpawnRadius:  4,
		GroundRadius: 10,
	}
}

// Load reads settings from the YAML file at path, applied over Default().
// An empty path returns the defaults unchanged.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("could not read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("could not parse settings file %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate rejects configurations the placement core cannot operate on.
func (s Settings) Validate() error {
	if _, err := grid.NewParams(s.GridSize, s.Epsilon); err != nil {
		return err
	}
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size %dx%d", grid.ErrInvalidConfiguration, s.WindowWidth, s.WindowHeight)
	}
	if s.SpawnRadius < 0 || s.GroundRadius <= 0 {
		return fmt.Errorf("%w: spawn radius %d, ground radius %d", grid.ErrInvalidConfiguration, s.SpawnRadius, s.GroundRadius)
	}
	return nil
}

// GridParams returns the validated grid configuration.
func (s Settings) GridParams() (grid.Params, error) {
	return grid.NewParams(s.GridSize, s.Epsilon)
}

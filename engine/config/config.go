// Package config loads the demo's TOML settings. Every section has a default, so a file only
// needs the keys it changes.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is matched by every validation failure returned from Validate, Load and Parse.
var ErrInvalid = errors.New("invalid config")

// Window configures the GLFW window and GL context.
type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	VSync  bool   `toml:"vsync"`
	// Debug requests a debug context and routes driver messages to the logger.
	Debug bool `toml:"debug"`
}

// Camera configures the rig shared by the demo's camera controls.
type Camera struct {
	Speed         float32 `toml:"speed"`
	RotationSpeed float32 `toml:"rotation_speed"`
	ZoomSpeed     float32 `toml:"zoom_speed"`
	Sensitivity   float32 `toml:"sensitivity"`
	// FovY is the initial vertical field of view in degrees.
	FovY float32 `toml:"fov_y"`
}

// Fog configures linear distance fog.
type Fog struct {
	Color   [3]float32 `toml:"color"`
	Start   float32    `toml:"start"`
	End     float32    `toml:"end"`
	Enabled bool       `toml:"enabled"`
}

// Lighting configures fog and the effective ranges used to pick light attenuation.
type Lighting struct {
	Fog        Fog     `toml:"fog"`
	PointRange float32 `toml:"point_range"`
	SpotRange  float32 `toml:"spot_range"`
	Blinn      bool    `toml:"blinn"`
}

// Mirror configures the off-screen mirror pass.
type Mirror struct {
	// Size is the edge length of the square mirror texture in pixels.
	Size int `toml:"size"`
}

// Logging configures the zap logger.
type Logging struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// Assets locates textures and shader sources on disk.
type Assets struct {
	Root string `toml:"root"`
	// WatchShaders reloads programs when their source files change.
	WatchShaders bool `toml:"watch_shaders"`
}

// Config is the root of the settings file.
type Config struct {
	Window   Window   `toml:"window"`
	Camera   Camera   `toml:"camera"`
	Lighting Lighting `toml:"lighting"`
	Mirror   Mirror   `toml:"mirror"`
	Logging  Logging  `toml:"logging"`
	Assets   Assets   `toml:"assets"`
}

// Default returns the settings the demo runs with when no file is given.
//
// Returns:
//   - Config: the default settings
func Default() Config {
	return Config{
		Window: Window{
			Title:  "World of Chaos",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Camera: Camera{
			Speed:         5,
			RotationSpeed: 0.5,
			ZoomSpeed:     0.01,
			Sensitivity:   0.002,
			FovY:          45,
		},
		Lighting: Lighting{
			Fog: Fog{
				Color: [3]float32{0.7, 0.7, 0.7},
				Start: 10,
				End:   50,
			},
			PointRange: 50,
			SpotRange:  100,
		},
		Mirror: Mirror{Size: 1024},
		Logging: Logging{
			Level: "info",
		},
		Assets: Assets{Root: "assets"},
	}
}

// Parse decodes TOML on top of Default and validates the result. Unknown keys are rejected.
//
// Parameters:
//   - data: the TOML document
//
// Returns:
//   - Config: the merged settings
//   - error: a decode error, or an error matching ErrInvalid
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			keys := make([]string, 0, len(strict.Errors))
			for _, e := range strict.Errors {
				keys = append(keys, strings.Join(e.Key(), "."))
			}
			return Config{}, fmt.Errorf("failed to decode config: unknown keys %s", strings.Join(keys, ", "))
		}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return Config{}, fmt.Errorf("failed to decode config at %d:%d: %w", row, col, err)
		}
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
//
// Parameters:
//   - path: the TOML file
//
// Returns:
//   - Config: the merged settings
//   - error: a read, decode or validation error
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
//
// Returns:
//   - []byte: the TOML document
//   - error: an encoding error
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Validate reports the first setting outside its valid range.
//
// Returns:
//   - error: nil, or an error matching ErrInvalid
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Camera.Speed < 0 || c.Camera.RotationSpeed < 0 || c.Camera.ZoomSpeed < 0:
		return fmt.Errorf("%w: camera speeds must not be negative", ErrInvalid)
	case c.Camera.Sensitivity < 0:
		return fmt.Errorf("%w: camera sensitivity %v must not be negative", ErrInvalid, c.Camera.Sensitivity)
	case c.Camera.FovY <= 0 || c.Camera.FovY >= 180:
		return fmt.Errorf("%w: camera fov_y %v must be in (0, 180)", ErrInvalid, c.Camera.FovY)
	case c.Lighting.Fog.Start < 0 || c.Lighting.Fog.End <= c.Lighting.Fog.Start:
		return fmt.Errorf("%w: fog range %v..%v", ErrInvalid, c.Lighting.Fog.Start, c.Lighting.Fog.End)
	case c.Lighting.PointRange <= 0 || c.Lighting.SpotRange <= 0:
		return fmt.Errorf("%w: light ranges must be positive", ErrInvalid)
	case c.Mirror.Size <= 0:
		return fmt.Errorf("%w: mirror size %d must be positive", ErrInvalid, c.Mirror.Size)
	case c.Logging.Level == "":
		return fmt.Errorf("%w: logging level is empty", ErrInvalid)
	}
	return nil
}

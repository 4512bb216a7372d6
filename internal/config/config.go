// Package config handles application configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Globe    GlobeConfig    `yaml:"globe"`
	Surface  SurfaceConfig  `yaml:"surface"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// GlobeConfig holds the simulation tuning constants. They are fixed for
// the lifetime of a session.
type GlobeConfig struct {
	Radius        float32 `yaml:"radius"`
	ArcSegments   int     `yaml:"arc_segments"`
	ArcBaseOffset float32 `yaml:"arc_base_offset"`
	ArcHeight     float32 `yaml:"arc_height"`
	FlightSpeed   float32 `yaml:"flight_speed"`
	SpinStep      float32 `yaml:"spin_step"`
	PinOffset     float32 `yaml:"pin_offset"`
}

// SurfaceConfig holds the ordered globe surface candidates. Each entry
// is a file path or http(s) URL; the first that loads wins.
type SurfaceConfig struct {
	Sources []string `yaml:"sources"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Globe: GlobeConfig{
			Radius:        200,
			ArcSegments:   64,
			ArcBaseOffset: 1.5,
			ArcHeight:     40,
			FlightSpeed:   0.04,
			SpinStep:      0.0025,
			PinOffset:     2,
		},
		Surface: SurfaceConfig{
			Sources: []string{
				"assets/earth_day_4k.jpg",
				"assets/earth_day_2k.jpg",
				"assets/earth_day_1k.png",
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

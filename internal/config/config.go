// Package config provides Viper-based configuration loading for the level generator.
package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/levelgen/internal/game/level"
	"github.com/cory-johannsen/levelgen/internal/game/levelgen"
)

// PlayerRange is an inclusive range of required players.
type PlayerRange struct {
	Min int `mapstructure:"min" yaml:"min"`
	Max int `mapstructure:"max" yaml:"max"`
}

// TerminalPlayersConfig holds the required player range of terminals per ring.
type TerminalPlayersConfig struct {
	Inside  PlayerRange `mapstructure:"inside" yaml:"inside"`
	Middle  PlayerRange `mapstructure:"middle" yaml:"middle"`
	Outside PlayerRange `mapstructure:"outside" yaml:"outside"`
}

// GeneratorConfig holds level generation settings.
type GeneratorConfig struct {
	// MapRadius is the outer radius of the level in grid cells.
	MapRadius float64 `mapstructure:"map_radius" yaml:"map_radius"`
	// InnerCircleFrac is the inner ring radius as a fraction of MapRadius.
	InnerCircleFrac float64 `mapstructure:"inner_circle_frac" yaml:"inner_circle_frac"`
	// MiddleCircleFrac is the middle ring radius as a fraction of MapRadius.
	MiddleCircleFrac float64 `mapstructure:"middle_circle_frac" yaml:"middle_circle_frac"`
	// SeparationBetweenLayers is the radial gap opened between rings.
	SeparationBetweenLayers float64 `mapstructure:"separation_between_layers" yaml:"separation_between_layers"`
	// NumRooms is the total room count, spawn room included.
	NumRooms int `mapstructure:"num_rooms" yaml:"num_rooms"`
	// NumTerminalRooms is split evenly across the rings, the outside ring taking the remainder.
	NumTerminalRooms        int                   `mapstructure:"num_terminal_rooms" yaml:"num_terminal_rooms"`
	MaxHallwayLength        float64               `mapstructure:"max_hallway_length" yaml:"max_hallway_length"`
	AddEdgesBackProb        float64               `mapstructure:"add_edges_back_prob" yaml:"add_edges_back_prob"`
	MaxNumEdges             int                   `mapstructure:"max_num_edges" yaml:"max_num_edges"`
	HallwayRadius           float64               `mapstructure:"hallway_radius" yaml:"hallway_radius"`
	InnerConnections        int                   `mapstructure:"inner_connections" yaml:"inner_connections"`
	OuterConnections        int                   `mapstructure:"outer_connections" yaml:"outer_connections"`
	TerminalArc             float64               `mapstructure:"terminal_arc" yaml:"terminal_arc"`
	MaxSeparationPasses     int                   `mapstructure:"max_separation_passes" yaml:"max_separation_passes"`
	TerminalPlayers         TerminalPlayersConfig `mapstructure:"terminal_players" yaml:"terminal_players"`
	// Seed makes generation reproducible. When nil an entropy seed is used.
	Seed *uint64 `mapstructure:"seed" yaml:"seed,omitempty"`
}

// Build converts the settings into a generator config. Derived values are
// recomputed by the generator config setters.
//
// Postcondition: Returns a non-nil config.
func (g GeneratorConfig) Build() *levelgen.Config {
	c := levelgen.NewConfig()
	c.SetMapRadius(g.MapRadius)
	c.SetInnerCircleFrac(g.InnerCircleFrac)
	c.SetMiddleCircleFrac(g.MiddleCircleFrac)
	c.SetSeparationBetweenLayers(g.SeparationBetweenLayers)
	c.SetNumRooms(g.NumRooms)
	c.SetNumTerminalRooms(g.NumTerminalRooms)
	c.SetMaxHallwayLength(g.MaxHallwayLength)
	c.SetAddEdgesBackProb(g.AddEdgesBackProb)
	c.SetMaxNumEdges(g.MaxNumEdges)
	c.SetHallwayRadius(g.HallwayRadius)
	c.SetLayerConnections(g.InnerConnections, g.OuterConnections)
	c.SetTerminalArc(g.TerminalArc)
	c.SetMaxSeparationPasses(g.MaxSeparationPasses)
	c.SetTerminalPlayers(levelgen.RingInside, g.TerminalPlayers.Inside.Min, g.TerminalPlayers.Inside.Max)
	c.SetTerminalPlayers(levelgen.RingMiddle, g.TerminalPlayers.Middle.Min, g.TerminalPlayers.Middle.Max)
	c.SetTerminalPlayers(levelgen.RingOutside, g.TerminalPlayers.Outside.Min, g.TerminalPlayers.Outside.Max)
	return c
}

// CatalogueConfig locates the room template catalogue.
type CatalogueConfig struct {
	// Path is a YAML catalogue file. Empty selects the built-in catalogue.
	Path string `mapstructure:"path" yaml:"path"`
}

// Load returns the configured catalogue.
//
// Postcondition: Returns a validated catalogue or a non-nil error.
func (c CatalogueConfig) Load() (*level.Catalogue, error) {
	if c.Path == "" {
		return level.DefaultCatalogue(), nil
	}
	return level.LoadCatalogueFromFile(c.Path)
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level" yaml:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format" yaml:"format"`
	// Output is where logs are written: "stderr", "stdout" or a file path.
	Output string `mapstructure:"output" yaml:"output"`
}

// Config is the top-level application configuration.
type Config struct {
	Generator GeneratorConfig `mapstructure:"generator" yaml:"generator"`
	Catalogue CatalogueConfig `mapstructure:"catalogue" yaml:"catalogue"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateGenerator(c.Generator); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGenerator(g GeneratorConfig) error {
	var errs []string
	if g.MapRadius <= 0 {
		errs = append(errs, fmt.Sprintf("generator.map_radius must be > 0, got %g", g.MapRadius))
	}
	if g.InnerCircleFrac <= 0 || g.InnerCircleFrac >= 1 {
		errs = append(errs, fmt.Sprintf("generator.inner_circle_frac must be in (0,1), got %g", g.InnerCircleFrac))
	}
	if g.MiddleCircleFrac <= g.InnerCircleFrac || g.MiddleCircleFrac >= 1 {
		errs = append(errs, fmt.Sprintf("generator.middle_circle_frac must be in (inner_circle_frac,1), got %g", g.MiddleCircleFrac))
	}
	if g.SeparationBetweenLayers < 0 {
		errs = append(errs, fmt.Sprintf("generator.separation_between_layers must be >= 0, got %g", g.SeparationBetweenLayers))
	}
	if g.NumRooms < 1 {
		errs = append(errs, fmt.Sprintf("generator.num_rooms must be >= 1, got %d", g.NumRooms))
	}
	if g.NumTerminalRooms < 0 {
		errs = append(errs, fmt.Sprintf("generator.num_terminal_rooms must be >= 0, got %d", g.NumTerminalRooms))
	}
	if g.MaxHallwayLength < 0 {
		errs = append(errs, fmt.Sprintf("generator.max_hallway_length must be >= 0, got %g", g.MaxHallwayLength))
	}
	if g.AddEdgesBackProb < 0 || g.AddEdgesBackProb > 1 {
		errs = append(errs, fmt.Sprintf("generator.add_edges_back_prob must be in [0,1], got %g", g.AddEdgesBackProb))
	}
	if g.MaxNumEdges < 1 {
		errs = append(errs, fmt.Sprintf("generator.max_num_edges must be >= 1, got %d", g.MaxNumEdges))
	}
	if g.HallwayRadius < 0 {
		errs = append(errs, fmt.Sprintf("generator.hallway_radius must be >= 0, got %g", g.HallwayRadius))
	}
	if g.InnerConnections < 0 || g.OuterConnections < 0 {
		errs = append(errs, "generator.inner_connections and generator.outer_connections must be >= 0")
	}
	if g.TerminalArc <= 0 || g.TerminalArc > 2*math.Pi {
		errs = append(errs, fmt.Sprintf("generator.terminal_arc must be in (0, 2π], got %g", g.TerminalArc))
	}
	if g.MaxSeparationPasses < 1 {
		errs = append(errs, fmt.Sprintf("generator.max_separation_passes must be >= 1, got %d", g.MaxSeparationPasses))
	}
	for _, ring := range []struct {
		name string
		pr   PlayerRange
	}{
		{"inside", g.TerminalPlayers.Inside},
		{"middle", g.TerminalPlayers.Middle},
		{"outside", g.TerminalPlayers.Outside},
	} {
		if ring.pr.Min < 0 || ring.pr.Min > ring.pr.Max {
			errs = append(errs, fmt.Sprintf("generator.terminal_players.%s must satisfy 0 <= min <= max, got [%d,%d]",
				ring.name, ring.pr.Min, ring.pr.Max))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	if l.Output == "" {
		return fmt.Errorf("logging.output must not be empty")
	}
	return nil
}

// NewViper returns a Viper instance with defaults and LEVELGEN_ environment
// overrides applied. If path is non-empty it is set as the config file.
//
// Postcondition: Returns a non-nil Viper instance or a non-nil error; no file
// is read yet.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	}

	// Environment variable overrides with LEVELGEN_ prefix
	v.SetEnvPrefix("LEVELGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// generator.seed has no default, so AutomaticEnv alone never sees it.
	if err := v.BindEnv("generator.seed"); err != nil {
		return nil, fmt.Errorf("binding generator.seed: %w", err)
	}

	// Defaults
	setDefaults(v)
	return v, nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and
// environment overrides only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v, err := NewViper(path)
	if err != nil {
		return Config{}, err
	}
	if path != "" {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := levelgen.NewConfig()
	inner, outer := d.LayerConnections()

	v.SetDefault("generator.map_radius", d.MapRadius())
	v.SetDefault("generator.inner_circle_frac", d.InnerCircleFrac())
	v.SetDefault("generator.middle_circle_frac", d.MiddleCircleFrac())
	v.SetDefault("generator.separation_between_layers", d.SeparationBetweenLayers())
	v.SetDefault("generator.num_rooms", d.NumRooms())
	v.SetDefault("generator.num_terminal_rooms", d.NumTerminalRooms())
	v.SetDefault("generator.max_hallway_length", d.MaxHallwayLength())
	v.SetDefault("generator.add_edges_back_prob", d.AddEdgesBackProb())
	v.SetDefault("generator.max_num_edges", d.MaxNumEdges())
	v.SetDefault("generator.hallway_radius", d.HallwayRadius())
	v.SetDefault("generator.inner_connections", inner)
	v.SetDefault("generator.outer_connections", outer)
	v.SetDefault("generator.terminal_arc", d.TerminalArc())
	v.SetDefault("generator.max_separation_passes", d.MaxSeparationPasses())
	for ring, key := range map[levelgen.Ring]string{
		levelgen.RingInside:  "inside",
		levelgen.RingMiddle:  "middle",
		levelgen.RingOutside: "outside",
	} {
		pr := d.TerminalPlayers(ring)
		v.SetDefault("generator.terminal_players."+key+".min", pr.Min)
		v.SetDefault("generator.terminal_players."+key+".max", pr.Max)
	}

	v.SetDefault("catalogue.path", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stderr")
}

// Package config loads the optional HCL configuration for the console game.
//
// Example sevens.hcl:
//
//	log_level = "debug"
//	log_file  = "sevens.log"
//	color     = false
//
//	seat "Alice" {
//	  kind = "human"
//	}
//
//	seat "Computer" {
//	  kind = "computer"
//	}
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Seat kinds
const (
	KindHuman    = "human"
	KindComputer = "computer"
)

// MaxSeats is the most seats a 36-card deal supports
const MaxSeats = 36

// Config represents the complete console game configuration
type Config struct {
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
	Color    *bool  `hcl:"color,optional"`
	Seats    []Seat `hcl:"seat,block"`
}

// Seat describes one player at the table, in seat order
type Seat struct {
	Name string `hcl:"name,label"`
	Kind string `hcl:"kind,optional"`
}

// IsHuman reports whether the seat is played from the console
func (s Seat) IsHuman() bool {
	return s.Kind == KindHuman
}

// Default returns the default configuration. It has no seats, so the
// startup menu decides who plays.
func Default() *Config {
	color := true
	return &Config{
		LogLevel: "info",
		LogFile:  "sevens.log",
		Color:    &color,
	}
}

// Load loads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and applies defaults
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.LogFile == "" {
		c.LogFile = defaults.LogFile
	}
	if c.Color == nil {
		c.Color = defaults.Color
	}
	for i := range c.Seats {
		if c.Seats[i].Kind == "" {
			c.Seats[i].Kind = KindHuman
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	if len(c.Seats) > MaxSeats {
		return fmt.Errorf("too many seats: %d (max %d)", len(c.Seats), MaxSeats)
	}
	for _, s := range c.Seats {
		if s.Name == "" {
			return fmt.Errorf("seat name is required")
		}
		if s.Kind != KindHuman && s.Kind != KindComputer {
			return fmt.Errorf("seat %s: invalid kind %s", s.Name, s.Kind)
		}
	}
	return nil
}

// ColorEnabled returns whether styled output is wanted
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// Level returns the parsed log level, defaulting to info
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

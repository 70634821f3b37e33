// Package config loads and persists tsforge configuration. Settings are
// merged from TOML files (system, user, project) and TSFORGE_* environment
// variables, with later sources taking precedence.
package config

import (
	"fmt"

	"github.com/tsforge/tsforge/dsl"
)

// Config represents the full tsforge configuration
type Config struct {
	Generator GeneratorConfig `mapstructure:"generator"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Registry  RegistryConfig  `mapstructure:"registry"`
}

// GeneratorConfig controls which artifacts are emitted and how
type GeneratorConfig struct {
	OptionalByDefault bool   `mapstructure:"optional_by_default"` // properties without ! or ? default to optional
	Strict            bool   `mapstructure:"strict"`              // schemas reject undeclared keys
	EmitInterface     bool   `mapstructure:"emit_interface"`
	EmitSchema        bool   `mapstructure:"emit_schema"`
	EmitExample       bool   `mapstructure:"emit_example"`
	OutDir            string `mapstructure:"out_dir"` // default directory for --out
}

// ServerConfig configures the tsforge HTTP server
type ServerConfig struct {
	Port            int      `mapstructure:"port"`
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	RatePerSecond   float64  `mapstructure:"rate_per_second"` // per-client request budget
	RateBurst       int      `mapstructure:"rate_burst"`
	MaxBodyBytes    int64    `mapstructure:"max_body_bytes"`
	ShutdownSeconds int      `mapstructure:"shutdown_seconds"` // graceful shutdown grace period
}

// LogConfig configures log output
type LogConfig struct {
	JSON bool `mapstructure:"json"` // structured JSON instead of the console encoder
}

// RegistryConfig configures the npm registry lookup used by version --check
type RegistryConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// DefaultServerPort is used when no port is configured
const DefaultServerPort = 8780

// DSLConfig converts the generator section to the parser/generator config
func (c *Config) DSLConfig() dsl.Config {
	return dsl.Config{
		OptionalByDefault: c.Generator.OptionalByDefault,
		EmitInterface:     c.Generator.EmitInterface,
		EmitSchema:        c.Generator.EmitSchema,
		EmitExample:       c.Generator.EmitExample,
		StrictSchema:      c.Generator.Strict,
	}
}

// String returns a short summary for logs
func (c *Config) String() string {
	return fmt.Sprintf("Config{Server: {Port: %d}, Generator: {OptionalByDefault: %t, Strict: %t}}",
		c.Server.Port, c.Generator.OptionalByDefault, c.Generator.Strict)
}

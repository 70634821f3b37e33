package config

import (
	"github.com/spf13/viper"
)

// Directory and file permissions for config artifacts
const (
	DefaultDirPermissions  = 0750
	DefaultFilePermissions = 0644
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Generator defaults
	v.SetDefault("generator.optional_by_default", false)
	v.SetDefault("generator.strict", false)
	v.SetDefault("generator.emit_interface", true)
	v.SetDefault("generator.emit_schema", true)
	v.SetDefault("generator.emit_example", true)
	v.SetDefault("generator.out_dir", ".")

	// Server defaults
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.allowed_origins", []string{
		"http://localhost",
		"https://localhost",
		"http://127.0.0.1",
		"https://127.0.0.1",
	})
	v.SetDefault("server.rate_per_second", 10.0)
	v.SetDefault("server.rate_burst", 20)
	v.SetDefault("server.max_body_bytes", 1<<20) // 1 MiB, DSL lines are tiny
	v.SetDefault("server.shutdown_seconds", 10)

	// Log defaults
	v.SetDefault("log.json", false)

	// Registry defaults (version --check)
	v.SetDefault("registry.base_url", "https://registry.npmjs.org")
	v.SetDefault("registry.timeout_seconds", 10)
}

// BindEnvOverrides explicitly binds deployment-sensitive values to
// environment variables so they can be set without a config file
func BindEnvOverrides(v *viper.Viper) {
	v.BindEnv("server.port", "TSFORGE_SERVER_PORT")
	v.BindEnv("log.json", "TSFORGE_LOG_JSON")
	v.BindEnv("registry.base_url", "TSFORGE_REGISTRY_BASE_URL")
}

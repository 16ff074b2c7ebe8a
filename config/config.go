package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ============================================================================
// CONFIG — File, env, and default settings
// ============================================================================
// Precedence: flags > env (HRLENS_*) > config file > defaults.
// ============================================================================

// Config holds process-wide settings.
type Config struct {
	DataPath   string `mapstructure:"data_path" yaml:"data_path"`     // employee CSV source
	ListenAddr string `mapstructure:"listen_addr" yaml:"listen_addr"` // HTTP adapter address
	LogoPath   string `mapstructure:"logo_path" yaml:"logo_path"`     // optional decorative asset
	ExportName string `mapstructure:"export_name" yaml:"export_name"` // download filename
}

// Load reads configuration from cfgFile (or the default location), the
// HRLENS_* environment, and built-in defaults.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HRLENS")
	v.AutomaticEnv()

	v.SetDefault("data_path", "Employee_data.csv")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("logo_path", filepath.Join("assets", "logo.png"))
	v.SetDefault("export_name", "employee_data_filtered.csv")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".hrlens"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		// Missing config file is fine — env and defaults still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Save writes the configuration to cfgFile, or to ~/.hrlens/config.yaml when
// cfgFile is empty, creating the directory if necessary.
func Save(c *Config, cfgFile string) error {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".hrlens")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}

	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

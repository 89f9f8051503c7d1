// Package config loads themify settings from a config file or the
// "themify" key of package.json.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"bennypowers.dev/themify/internal/palette"
	"bennypowers.dev/themify/internal/themify"
)

// ConfigName is the base name of the config file searched for, e.g. themify.yaml
const ConfigName = "themify"

// Config is the user-facing configuration
type Config struct {
	// CreateVars prepends the palette's custom property blocks to every output
	CreateVars bool `mapstructure:"createVars" json:"createVars"`

	// Pallete is the inline palette. Keys are lowercased by the loader;
	// use PalleteFile for case-sensitive variable names.
	Pallete map[string]any `mapstructure:"pallete" json:"pallete"`

	// PalleteFile is a JSON, YAML or DTCG tokens file holding the palette,
	// relative to the config file
	PalleteFile string `mapstructure:"palleteFile" json:"palleteFile"`

	ClassPrefix string `mapstructure:"classPrefix" json:"classPrefix"`

	// ScrewIE11 disables the legacy fallback bundle
	ScrewIE11 bool `mapstructure:"screwIE11" json:"screwIE11"`

	// SassPalette prepends the $pallete map
	SassPalette bool `mapstructure:"sassPalette" json:"sassPalette"`

	Fallback themify.Fallback `mapstructure:"fallback" json:"fallback"`

	// Input lists glob patterns of stylesheets to compile
	Input []string `mapstructure:"input" json:"input"`

	// OutDir receives compiled stylesheets
	OutDir string `mapstructure:"outDir" json:"outDir"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `mapstructure:"logLevel" json:"logLevel"`

	// dir is the directory relative paths are resolved against
	dir string
}

// Default returns the default configuration
func Default() Config {
	return Config{
		CreateVars:  true,
		ScrewIE11:   true,
		SassPalette: true,
		Input:       []string{"**/*.css"},
		OutDir:      "dist",
		LogLevel:    "info",
	}
}

// SetDefaults registers the defaults on v
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("createVars", d.CreateVars)
	v.SetDefault("screwIE11", d.ScrewIE11)
	v.SetDefault("sassPalette", d.SassPalette)
	v.SetDefault("input", d.Input)
	v.SetDefault("outDir", d.OutDir)
	v.SetDefault("logLevel", d.LogLevel)
}

// Load reads the configuration. An explicit file wins; otherwise dir is
// searched for themify.{yaml,yml,json,toml}, then for a "themify" key in
// dir/package.json. No config anywhere yields the defaults.
func Load(v *viper.Viper, file, dir string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix("THEMIFY")
	v.AutomaticEnv()

	cfgDir := dir
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", file, err)
		}
		cfgDir = filepath.Dir(file)
	} else {
		v.AddConfigPath(dir)
		v.SetConfigName(ConfigName)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("failed to read config: %w", err)
			}
			pkg, err := ReadPackageJSONConfig(dir)
			if err != nil {
				return Config{}, err
			}
			if pkg != nil {
				if err := v.MergeConfigMap(pkg); err != nil {
					return Config{}, fmt.Errorf("failed to merge package.json config: %w", err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.dir = cfgDir
	return cfg, nil
}

// Dir returns the directory relative paths are resolved against
func (c Config) Dir() string {
	return c.dir
}

// Resolve makes path relative to the config directory
func (c Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.dir, path)
}

// Palette returns the configured palette. The file wins over the inline map.
func (c Config) Palette() (palette.Palette, error) {
	if c.PalleteFile != "" {
		return palette.LoadFile(c.Resolve(c.PalleteFile))
	}
	if c.Pallete == nil {
		return nil, themify.ErrPaletteRequired
	}
	return palette.FromMap(c.Pallete)
}

// Options converts the configuration into compile options
func (c Config) Options() (themify.Options, error) {
	p, err := c.Palette()
	if err != nil {
		return themify.Options{}, err
	}
	opts := themify.DefaultOptions()
	opts.CreateVars = c.CreateVars
	opts.Palette = p
	opts.ClassPrefix = c.ClassPrefix
	opts.ScrewIE11 = c.ScrewIE11
	opts.SassPalette = c.SassPalette
	opts.Fallback = themify.Fallback{
		CSSPath:     c.Resolve(c.Fallback.CSSPath),
		DynamicPath: c.Resolve(c.Fallback.DynamicPath),
	}
	return opts, nil
}

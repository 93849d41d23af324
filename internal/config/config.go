package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Modules    []string       `toml:"modules" yaml:"modules"`
	Delimiter  string         `toml:"delimiter" yaml:"delimiter"`
	TitleColor string         `toml:"title_color" yaml:"title_color"`
	Colors     ColorConfig    `toml:"colors" yaml:"colors"`
	UserHost   UserHostConfig `toml:"user_host" yaml:"user_host"`
	IP         IPConfig       `toml:"ip" yaml:"ip"`
	Disk       DiskConfig     `toml:"disk" yaml:"disk"`

	// Unknown lists keys in the file that were ignored.
	Unknown []string `toml:"-" yaml:"-"`
}

type ColorConfig struct {
	Enabled      bool `toml:"enabled" yaml:"enabled"`
	ShowBgColors bool `toml:"show_bg_colors" yaml:"show_bg_colors"`
}

type UserHostConfig struct {
	Line       bool   `toml:"line" yaml:"line"`
	LineSymbol string `toml:"line_symbol" yaml:"line_symbol"`
	LineColor  string `toml:"line_color" yaml:"line_color"`
}

type IPConfig struct {
	Public bool `toml:"public" yaml:"public"`
}

type DiskConfig struct {
	Path string `toml:"path" yaml:"path"`
}

const (
	appDir         = "rfetch"
	configFileName = "config.toml"
)

// Default returns the built-in configuration used when no file is found.
// Values read from a file are decoded on top of it.
func Default() *Config {
	return &Config{
		Modules:    GetDefaultModules(),
		Delimiter:  "~>",
		TitleColor: "blue",
		Colors: ColorConfig{
			Enabled:      true,
			ShowBgColors: false,
		},
		UserHost: UserHostConfig{
			Line:       true,
			LineSymbol: "-",
			LineColor:  "magenta",
		},
		IP:   IPConfig{Public: false},
		Disk: DiskConfig{Path: "/"},
	}
}

func GetDefaultModules() []string {
	return []string{
		"user_host", "shell", "distro", "packages", "uptime", "memory", "kernel", "battery",
	}
}

// Load reads filename and decodes it over the defaults. The format is picked
// from the extension: .yaml and .yml use YAML, everything else TOML.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", filename, err)
	}

	cfg, err := Parse(data, formatOf(filename))
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", filename, err)
	}
	return cfg, nil
}

type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func formatOf(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Parse decodes data over Default and validates the result.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatYAML:
		unknown, err := decodeYAML(data, cfg)
		if err != nil {
			return nil, err
		}
		cfg.Unknown = unknown
	default:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, err
		}
		for _, key := range md.Undecoded() {
			cfg.Unknown = append(cfg.Unknown, key.String())
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decodeYAML decodes data into cfg. A strict pass finds the fields cfg has
// no place for; if a lenient pass then succeeds, those are the only problems
// and are returned as unknown keys.
func decodeYAML(data []byte, cfg *Config) ([]string, error) {
	strict := *cfg
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(&strict)
	if err == nil || errors.Is(err, io.EOF) {
		*cfg = strict
		return nil, nil
	}

	var typeErr *yaml.TypeError
	if !errors.As(err, &typeErr) {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// "line 3: field colours not found in type config.Config"
	unknown := make([]string, 0, len(typeErr.Errors))
	for _, msg := range typeErr.Errors {
		key := msg
		if _, rest, ok := strings.Cut(msg, "field "); ok {
			key, _, _ = strings.Cut(rest, " not found")
		}
		unknown = append(unknown, key)
	}
	return unknown, nil
}

func (c *Config) Validate() error {
	if c.Modules == nil {
		c.Modules = []string{}
	}
	if c.UserHost.Line && c.UserHost.LineSymbol == "" {
		return errors.New("user_host.line_symbol must not be empty when user_host.line is enabled")
	}
	if c.Disk.Path == "" {
		c.Disk.Path = "/"
	}
	return nil
}

// Resolve finds the configuration to use: the explicit path when given,
// otherwise the search locations in order. Defaults are returned when no
// file exists; the second return value is the file that was loaded, empty
// for defaults. A file that exists but cannot be read or parsed is an error.
func Resolve(explicit string) (*Config, string, error) {
	if explicit != "" {
		path, err := homedir.Expand(explicit)
		if err != nil {
			return nil, "", fmt.Errorf("expanding config path %s: %w", explicit, err)
		}
		cfg, err := Load(path)
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), "", nil
		}
		if err != nil {
			return nil, "", err
		}
		return cfg, path, nil
	}

	paths, err := SearchPaths()
	if err != nil {
		return nil, "", err
	}
	for _, path := range paths {
		cfg, err := Load(path)
		if err == nil {
			return cfg, path, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return nil, "", err
	}
	return Default(), "", nil
}

// SearchPaths lists the config locations in priority order.
func SearchPaths() ([]string, error) {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, appDir, configFileName))
	}

	home, err := homedir.Dir()
	if err != nil {
		return nil, fmt.Errorf("locating home directory: %w", err)
	}
	paths = append(paths, filepath.Join(home, ".config", appDir, configFileName))

	return paths, nil
}

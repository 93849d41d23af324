package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mitchellh/go-homedir"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseTOMLFull(t *testing.T) {
	data := `
modules = ["kernel", "distro"]
delimiter = "=>"
title_color = "green"

[colors]
enabled = false
show_bg_colors = true

[user_host]
line = true
line_symbol = "*"
line_color = "red"

[ip]
public = true

[disk]
path = "/home"
`
	cfg, err := Parse([]byte(data), FormatTOML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := &Config{
		Modules:    []string{"kernel", "distro"},
		Delimiter:  "=>",
		TitleColor: "green",
		Colors:     ColorConfig{Enabled: false, ShowBgColors: true},
		UserHost:   UserHostConfig{Line: true, LineSymbol: "*", LineColor: "red"},
		IP:         IPConfig{Public: true},
		Disk:       DiskConfig{Path: "/home"},
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Fatalf("Parse = %+v; want %+v", cfg, want)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`delimiter = "->"`), FormatTOML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	def := Default()
	if cfg.Delimiter != "->" {
		t.Fatalf("Delimiter = %q; want %q", cfg.Delimiter, "->")
	}
	if !reflect.DeepEqual(cfg.Modules, def.Modules) {
		t.Fatalf("Modules = %v; want defaults %v", cfg.Modules, def.Modules)
	}
	if cfg.UserHost != def.UserHost || cfg.Colors != def.Colors || cfg.TitleColor != def.TitleColor {
		t.Fatalf("partial config lost defaults: %+v", cfg)
	}
}

func TestParseYAML(t *testing.T) {
	data := `
modules: [uptime, memory]
title_color: cyan
colors:
  enabled: true
  show_bg_colors: true
`
	cfg, err := Parse([]byte(data), FormatYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(cfg.Modules, []string{"uptime", "memory"}) {
		t.Fatalf("Modules = %v", cfg.Modules)
	}
	if cfg.TitleColor != "cyan" || !cfg.Colors.ShowBgColors {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Delimiter != "~>" {
		t.Fatalf("Delimiter = %q; want default", cfg.Delimiter)
	}
}

func TestParseEmptyYAMLIsDefault(t *testing.T) {
	cfg, err := Parse(nil, FormatYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("empty YAML = %+v; want defaults", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"malformed toml", `modules = ["kernel"`, FormatTOML},
		{"wrong type", `delimiter = 3`, FormatTOML},
		{"empty line symbol", "[user_host]\nline = true\nline_symbol = \"\"\n", FormatTOML},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.data), tc.format); err == nil {
				t.Fatalf("Parse(%q) succeeded; want error", tc.data)
			}
		})
	}
}

func TestParseIgnoresUnknownKeys(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		want   string
	}{
		{"toml top level", "colours = true\ndelimiter = \"|\"\n", FormatTOML, "colours"},
		{"toml table", "delimiter = \"|\"\n[extra]\nfoo = 1\n", FormatTOML, "extra.foo"},
		{"yaml", "colours: true\ndelimiter: '|'\n", FormatYAML, "colours"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tc.data), tc.format)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if cfg.Delimiter != "|" {
				t.Fatalf("Delimiter = %q; want known keys still applied", cfg.Delimiter)
			}
			found := false
			for _, key := range cfg.Unknown {
				found = found || key == tc.want
			}
			if !found {
				t.Fatalf("Unknown = %q; want it to contain %q", cfg.Unknown, tc.want)
			}
		})
	}
}

func TestParseYAMLUnknownKeyWithBadValue(t *testing.T) {
	if _, err := Parse([]byte("colours: true\ndelimiter: [1]\n"), FormatYAML); err == nil {
		t.Fatal("Parse succeeded; want type error for delimiter")
	}
}

func TestLoadPicksFormatFromExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "rfetch.yml", "delimiter: '|'\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Delimiter != "|" {
		t.Fatalf("Delimiter = %q; want %q", cfg.Delimiter, "|")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Load error = %v; want fs.ErrNotExist", err)
	}
}

func setHome(t *testing.T, home string) {
	t.Helper()
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
}

func TestResolveDefaultsWhenNothingFound(t *testing.T) {
	setHome(t, t.TempDir())

	cfg, path, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if path != "" {
		t.Fatalf("path = %q; want empty", path)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("Resolve = %+v; want defaults", cfg)
	}
}

func TestResolveSearchOrder(t *testing.T) {
	home := t.TempDir()
	setHome(t, home)
	homePath := writeFile(t, home, ".config/rfetch/config.toml", `delimiter = "home"`)

	cfg, path, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if path != homePath || cfg.Delimiter != "home" {
		t.Fatalf("Resolve = %q from %q; want home config", cfg.Delimiter, path)
	}

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	xdgPath := writeFile(t, xdg, "rfetch/config.toml", `delimiter = "xdg"`)

	cfg, path, err = Resolve("")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if path != xdgPath || cfg.Delimiter != "xdg" {
		t.Fatalf("Resolve = %q from %q; want xdg config", cfg.Delimiter, path)
	}
}

func TestResolveMalformedIsFatal(t *testing.T) {
	home := t.TempDir()
	setHome(t, home)
	writeFile(t, home, ".config/rfetch/config.toml", `modules = [`)

	if _, _, err := Resolve(""); err == nil {
		t.Fatal("Resolve succeeded on malformed config; want error")
	}
}

func TestResolveExplicitMissingUsesDefaults(t *testing.T) {
	cfg, path, err := Resolve(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if path != "" {
		t.Fatalf("path = %q; want empty for defaults", path)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("config = %+v; want defaults", cfg)
	}
}

func TestResolveExplicitUnreadable(t *testing.T) {
	// a directory exists but cannot be read as a file
	if _, _, err := Resolve(t.TempDir()); err == nil {
		t.Fatal("Resolve succeeded on a directory; want error")
	}
}

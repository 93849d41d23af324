package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"rfetch/internal/collector"
	"rfetch/internal/config"
	"rfetch/internal/display"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var configFile string

	flagSet := pflag.NewFlagSet("rfetch", pflag.ContinueOnError)
	flagSet.StringVarP(&configFile, "config", "c", "", "Path to config file")
	flagSet.Usage = func() { printHelp(flagSet) }

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}

	logger := newLogger()

	cfg, path, err := config.Resolve(configFile)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return 1
	}
	switch {
	case configFile != "" && path == "":
		logger.Warn("config file not found, using defaults", "path", configFile)
	case path == "":
		logger.Info("no config file found, using defaults")
	default:
		logger.Info("loaded config", "path", path)
	}
	for _, key := range cfg.Unknown {
		logger.Warn("ignoring unknown config key", "key", key)
	}

	c := collector.New(collector.WithLogger(logger.Named("collector")))
	r := display.NewRenderer(c, cfg,
		display.WithColor(colorEnabled()),
		display.WithLogger(logger.Named("display")),
	)

	out, err := r.Render()
	if err != nil {
		logger.Error("failed to read system information", "error", err)
		return 1
	}

	fmt.Print(out)
	return 0
}

func newLogger() hclog.Logger {
	level := hclog.LevelFromString(os.Getenv("RFETCH_LOG"))
	if level == hclog.NoLevel {
		level = hclog.Warn
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "rfetch",
		Level:  level,
		Output: os.Stderr,
	})
}

// colorEnabled reports whether stdout is a terminal that accepts styling.
func colorEnabled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func printHelp(flagSet *pflag.FlagSet) {
	modules := display.NewRenderer(nil, config.Default()).Modules()
	sort.Strings(modules)

	fmt.Fprintf(os.Stderr, `rfetch - Display system information

USAGE:
    rfetch [OPTIONS]

OPTIONS:
%s
CONFIG:
    $XDG_CONFIG_HOME/rfetch/config.toml, then ~/.config/rfetch/config.toml

MODULES:
    %s
`, flagSet.FlagUsages(), strings.Join(modules, ", "))
}

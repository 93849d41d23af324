package display

import (
	"regexp"
	"strings"

	"github.com/fatih/color"
)

const ansiReset = "\x1b[0m"

var colorNames = map[string]color.Attribute{
	"black":          color.FgBlack,
	"red":            color.FgRed,
	"green":          color.FgGreen,
	"yellow":         color.FgYellow,
	"blue":           color.FgBlue,
	"magenta":        color.FgMagenta,
	"purple":         color.FgMagenta,
	"cyan":           color.FgCyan,
	"white":          color.FgWhite,
	"bright_black":   color.FgHiBlack,
	"bright_red":     color.FgHiRed,
	"bright_green":   color.FgHiGreen,
	"bright_yellow":  color.FgHiYellow,
	"bright_blue":    color.FgHiBlue,
	"bright_magenta": color.FgHiMagenta,
	"bright_cyan":    color.FgHiCyan,
	"bright_white":   color.FgHiWhite,
}

// colorAttr maps a configured color name to a foreground attribute. Unknown
// names fall back to white.
func colorAttr(name string) color.Attribute {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	if attr, ok := colorNames[key]; ok {
		return attr
	}
	return color.FgWhite
}

type style struct {
	enabled bool
	title   *color.Color
	bold    *color.Color
	at      *color.Color
	line    *color.Color
}

func (r *Renderer) newStyle() style {
	return style{
		enabled: r.color,
		title:   r.paint(colorAttr(r.cfg.TitleColor)),
		bold:    r.paint(color.Bold),
		at:      r.paint(color.FgMagenta),
		line:    r.paint(colorAttr(r.cfg.UserHost.LineColor)),
	}
}

// paint builds a color that obeys the renderer's switch rather than the
// package-wide color.NoColor default.
func (r *Renderer) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if r.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

var ansiColorHint = regexp.MustCompile(`^[0-9]+(;[0-9]+)*$`)

// hint wraps s in the raw SGR parameters from os-release ANSI_COLOR.
func (s style) hint(params, text string) string {
	if !s.enabled || !ansiColorHint.MatchString(params) {
		return text
	}
	return "\x1b[" + params + "m" + text + ansiReset
}

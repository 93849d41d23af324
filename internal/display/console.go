// Package display turns the configured module list into the fetch output.
package display

import (
	"net/netip"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"rfetch/internal/config"
	"rfetch/internal/model"
)

// Source is the set of probes the renderer draws on. collector.Collector
// implements it.
type Source interface {
	User() (model.UserInfo, bool)
	Machine() (model.MachineInfo, error)
	Distro() (model.Distro, bool)
	Memory() (model.MemInfo, bool)
	Sys() (model.SysInfo, error)
	CPUs() ([]model.CPUInfo, bool)
	DiskUsage(path string) (model.FsInfo, bool)
	Locale() (model.LocaleInfo, bool)
	Device() (model.DeviceInfo, bool)
	Temperature() (model.Temperature, bool)
	Packages(distro string) (int, bool)
	IP(mode model.IPMode) (netip.Addr, bool)
	Battery() (model.BatteryInfo, bool)
	Terminal() (string, bool)
	ColorScheme() []model.Color
	Now() time.Time
}

type moduleFunc func(f *frame) error

type Renderer struct {
	src     Source
	cfg     *config.Config
	color   bool
	logger  hclog.Logger
	modules map[string]moduleFunc
}

type Option func(*Renderer)

// WithColor switches ANSI styling of titles, names and values. The color
// swatch is controlled by the colors.enabled setting alone.
func WithColor(enabled bool) Option {
	return func(r *Renderer) { r.color = enabled }
}

func WithLogger(logger hclog.Logger) Option {
	return func(r *Renderer) { r.logger = logger }
}

func NewRenderer(src Source, cfg *config.Config, opts ...Option) *Renderer {
	r := &Renderer{
		src:     src,
		cfg:     cfg,
		color:   true,
		logger:  hclog.NewNullLogger(),
		modules: make(map[string]moduleFunc),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.registerModule("user_host", (*frame).userHost)
	r.registerModule("shell", (*frame).shell)
	r.registerModule("distro", (*frame).distro)
	r.registerModule("packages", (*frame).packages)
	r.registerModule("uptime", (*frame).uptime)
	r.registerModule("memory", (*frame).memory)
	r.registerModule("kernel", (*frame).kernel)
	r.registerModule("ip", (*frame).ip)
	r.registerModule("cpu", (*frame).cpu)
	r.registerModule("disk_usage", (*frame).diskUsage)
	r.registerModule("process_num", (*frame).processNum)
	r.registerModule("arch", (*frame).arch)
	r.registerModule("temp", (*frame).temp)
	r.registerModule("locale", (*frame).locale)
	r.registerModule("device_name", (*frame).deviceName)
	r.registerModule("time", (*frame).clock)
	r.registerModule("date", (*frame).date)
	r.registerModule("battery", (*frame).battery)
	r.registerModule("terminal", (*frame).terminal)
	r.registerModule("colors", (*frame).colorsInline)

	return r
}

func (r *Renderer) registerModule(name string, fn moduleFunc) {
	r.modules[name] = fn
}

// Modules lists the recognized module names.
func (r *Renderer) Modules() []string {
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	return names
}

// Render produces the whole output. Module lines follow the configured order
// and the swatch, when enabled, comes last. An error means a kernel-mandatory
// fact could not be read and nothing should be printed.
func (r *Renderer) Render() (string, error) {
	f := &frame{r: r, style: r.newStyle()}

	if _, err := f.machine(); err != nil {
		return "", err
	}

	for _, name := range r.cfg.Modules {
		fn, ok := r.modules[name]
		if !ok {
			r.logger.Debug("skipping unknown module", "module", name)
			continue
		}
		if err := fn(f); err != nil {
			return "", err
		}
	}

	if r.cfg.Colors.Enabled {
		f.out.WriteString("\n")
		f.out.WriteString(swatch(r.src.ColorScheme(), r.cfg.Colors.ShowBgColors))
	}

	return f.out.String(), nil
}

// swatch renders the first eight cells on one line and, with showBg, the
// remaining cells on a second line.
func swatch(colors []model.Color, showBg bool) string {
	var b strings.Builder
	for i, c := range colors {
		if i == 8 {
			if !showBg {
				break
			}
			b.WriteString("\n")
		}
		b.WriteString(string(c))
		b.WriteString("  ")
		b.WriteString(ansiReset)
	}
	b.WriteString("\n")
	return b.String()
}

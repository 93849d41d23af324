package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"rfetch/internal/model"
)

func (f *frame) userHost() error {
	user, ok := f.user()
	if !ok {
		return nil
	}
	machine, err := f.machine()
	if err != nil {
		return err
	}

	s := f.style
	fmt.Fprintf(&f.out, "%s%s%s\n", s.bold.Sprint(user.Name), s.at.Sprint("@"), s.bold.Sprint(machine.Hostname))

	cfg := f.r.cfg.UserHost
	if cfg.Line {
		width := runewidth.StringWidth(user.Name) + runewidth.StringWidth(machine.Hostname) + 1
		fmt.Fprintf(&f.out, "%s\n", s.line.Sprint(strings.Repeat(cfg.LineSymbol, width)))
	}
	return nil
}

func (f *frame) shell() error {
	if user, ok := f.user(); ok && user.Shell != "" {
		f.line("sh", user.Shell)
	}
	return nil
}

func (f *frame) distro() error {
	if d, ok := f.distroFact(); ok {
		f.line("os", f.style.hint(d.Color, d.Name))
	}
	return nil
}

func (f *frame) packages() error {
	d, ok := f.distroFact()
	if !ok {
		return nil
	}
	count, ok := f.pkgCount.get(func() (int, bool) { return f.r.src.Packages(d.Name) })
	if ok {
		f.line("pkgs", strconv.Itoa(count))
	}
	return nil
}

func (f *frame) uptime() error {
	sys, err := f.sys()
	if err != nil {
		return err
	}
	f.line("up", formatUptime(sys.Uptime))
	return nil
}

func (f *frame) memory() error {
	if mem, ok := f.memInfo.get(f.r.src.Memory); ok {
		f.line("mem", formatUsage(mem.Used, mem.Total))
	}
	return nil
}

func (f *frame) kernel() error {
	machine, err := f.machine()
	if err != nil {
		return err
	}
	f.line("kern", machine.Kernel)
	return nil
}

func (f *frame) ip() error {
	mode := model.IPPrivate
	if f.r.cfg.IP.Public {
		mode = model.IPPublic
	}

	addr, ok := f.ipAddr.get(func() (string, bool) {
		ip, ok := f.r.src.IP(mode)
		if !ok {
			return "", false
		}
		return ip.String(), true
	})
	if !ok {
		addr = "not connected"
	}
	f.line("ip", addr)
	return nil
}

func (f *frame) cpu() error {
	if cpus, ok := f.cpuInfo.get(f.r.src.CPUs); ok && len(cpus) > 0 {
		f.line("cpu", formatCPU(cpus))
	}
	return nil
}

func (f *frame) diskUsage() error {
	path := f.r.cfg.Disk.Path
	fs, ok := f.fsInfo.get(func() (model.FsInfo, bool) { return f.r.src.DiskUsage(path) })
	if ok {
		f.line("disk", fmt.Sprintf("%s (%d%%)", formatUsage(fs.Used, fs.Total), formatPercentage(fs.Used, fs.Total)))
	}
	return nil
}

func (f *frame) processNum() error {
	sys, err := f.sys()
	if err != nil {
		return err
	}
	f.line("proc", strconv.Itoa(sys.Processes))
	return nil
}

func (f *frame) arch() error {
	machine, err := f.machine()
	if err != nil {
		return err
	}
	f.line("arch", machine.Arch)
	return nil
}

func (f *frame) temp() error {
	if t, ok := f.tempInfo.get(f.r.src.Temperature); ok {
		f.line("temp", fmt.Sprintf("%.1f°C", t.Celsius()))
	}
	return nil
}

func (f *frame) locale() error {
	if l, ok := f.localeInfo.get(f.r.src.Locale); ok {
		f.line("lang", fmt.Sprintf("%s (%s)", l.Language, l.Locale))
	}
	return nil
}

func (f *frame) deviceName() error {
	if d, ok := f.deviceInfo.get(f.r.src.Device); ok {
		f.line("host", d.Product)
	}
	return nil
}

func (f *frame) clock() error {
	f.line("time", f.r.src.Now().Format("15:04:05"))
	return nil
}

func (f *frame) date() error {
	f.line("date", f.r.src.Now().Format("Mon, 02 Jan 2006"))
	return nil
}

func (f *frame) battery() error {
	if b, ok := f.batteryInfo.get(f.r.src.Battery); ok {
		f.line("bat", fmt.Sprintf("%d%% (%s)", b.Percent, b.Status))
	}
	return nil
}

func (f *frame) terminal() error {
	if name, ok := f.termName.get(f.r.src.Terminal); ok {
		f.line("term", name)
	}
	return nil
}

// colorsInline is a no-op: the swatch is always appended after the last
// module when colors.enabled is set.
func (f *frame) colorsInline() error {
	f.r.logger.Trace("colors module placement ignored; swatch is rendered last")
	return nil
}

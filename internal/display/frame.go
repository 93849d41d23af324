package display

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"rfetch/internal/model"
)

const titleWidth = 4

// memo holds one probe result for the duration of a render so a fact is
// read at most once no matter how many modules use it.
type memo[T any] struct {
	done bool
	v    T
	ok   bool
	err  error
}

func (m *memo[T]) get(fetch func() (T, bool)) (T, bool) {
	if !m.done {
		m.v, m.ok = fetch()
		m.done = true
	}
	return m.v, m.ok
}

func (m *memo[T]) getErr(fetch func() (T, error)) (T, error) {
	if !m.done {
		m.v, m.err = fetch()
		m.done = true
	}
	return m.v, m.err
}

// frame is the state of a single render.
type frame struct {
	r     *Renderer
	style style
	out   strings.Builder

	machineInfo memo[model.MachineInfo]
	sysInfo     memo[model.SysInfo]
	userInfo    memo[model.UserInfo]
	distroInfo  memo[model.Distro]
	memInfo     memo[model.MemInfo]
	cpuInfo     memo[[]model.CPUInfo]
	fsInfo      memo[model.FsInfo]
	localeInfo  memo[model.LocaleInfo]
	deviceInfo  memo[model.DeviceInfo]
	tempInfo    memo[model.Temperature]
	pkgCount    memo[int]
	ipAddr      memo[string]
	batteryInfo memo[model.BatteryInfo]
	termName    memo[string]
}

func (f *frame) machine() (model.MachineInfo, error) {
	return f.machineInfo.getErr(f.r.src.Machine)
}

func (f *frame) sys() (model.SysInfo, error) {
	return f.sysInfo.getErr(f.r.src.Sys)
}

func (f *frame) user() (model.UserInfo, bool) {
	return f.userInfo.get(f.r.src.User)
}

func (f *frame) distroFact() (model.Distro, bool) {
	return f.distroInfo.get(f.r.src.Distro)
}

// line appends "<title> <delimiter> <value>" with the title padded to a
// fixed display width.
func (f *frame) line(title, value string) {
	pad := titleWidth - runewidth.StringWidth(title)
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(&f.out, "%s%s %s %s\n",
		f.style.title.Sprint(title),
		strings.Repeat(" ", pad),
		f.r.cfg.Delimiter,
		value)
}

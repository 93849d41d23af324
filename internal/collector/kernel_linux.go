//go:build linux

package collector

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"

	"rfetch/internal/model"
)

// Machine reads uname(2). The kernel always provides it, so a failure is
// reported as an error rather than an absence.
func (c *Collector) Machine() (model.MachineInfo, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return model.MachineInfo{}, fmt.Errorf("uname: %w", err)
	}

	return model.MachineInfo{
		Arch:     unix.ByteSliceToString(uts.Machine[:]),
		Kernel:   unix.ByteSliceToString(uts.Release[:]),
		Hostname: unix.ByteSliceToString(uts.Nodename[:]),
	}, nil
}

// Sys reads sysinfo(2) for uptime and the process count.
func (c *Collector) Sys() (model.SysInfo, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return model.SysInfo{}, fmt.Errorf("sysinfo: %w", err)
	}

	return model.SysInfo{
		Uptime:    time.Duration(info.Uptime) * time.Second,
		Processes: int(info.Procs),
	}, nil
}

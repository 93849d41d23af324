//go:build !linux

package collector

import (
	"fmt"
	"runtime"

	"rfetch/internal/model"
)

func (c *Collector) Machine() (model.MachineInfo, error) {
	return model.MachineInfo{}, fmt.Errorf("uname is not supported on %s", runtime.GOOS)
}

func (c *Collector) Sys() (model.SysInfo, error) {
	return model.SysInfo{}, fmt.Errorf("sysinfo is not supported on %s", runtime.GOOS)
}

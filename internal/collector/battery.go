package collector

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"rfetch/internal/model"
)

const powerSupplyDir = "/sys/class/power_supply"

// Battery reports the first battery whose capacity can be read.
func (c *Collector) Battery() (model.BatteryInfo, bool) {
	batteries, _ := filepath.Glob(filepath.Join(c.path(powerSupplyDir), "BAT*"))
	sort.Strings(batteries)

	for _, batteryPath := range batteries {
		capacityStr, err := readTrimmed(filepath.Join(batteryPath, "capacity"))
		if err != nil {
			continue
		}
		capacity, err := strconv.Atoi(capacityStr)
		if err != nil || capacity < 0 || capacity > 100 {
			continue
		}

		status, _ := readTrimmed(filepath.Join(batteryPath, "status"))
		return model.BatteryInfo{
			Percent: capacity,
			Status:  batteryStatus(status),
		}, true
	}

	c.absent("battery", nil, "batteries", len(batteries))
	return model.BatteryInfo{}, false
}

func batteryStatus(s string) model.BatteryStatus {
	switch strings.ToLower(s) {
	case "charging":
		return model.BatteryCharging
	case "discharging":
		return model.BatteryDischarging
	case "full":
		return model.BatteryFull
	default:
		return model.BatteryUnknown
	}
}

package display

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"rfetch/internal/model"
)

// formatUptime renders days, hours and minutes, skipping zero units. Minutes
// are always shown when nothing else is.
func formatUptime(uptime time.Duration) string {
	total := int(uptime.Minutes())
	units := []struct {
		n    int
		name string
	}{
		{total / (24 * 60), "day"},
		{total / 60 % 24, "hour"},
		{total % 60, "min"},
	}

	var parts []string
	for i, u := range units {
		last := i == len(units)-1
		if u.n == 0 && !(last && len(parts) == 0) {
			continue
		}
		parts = append(parts, pluralize(u.n, u.name))
	}
	return strings.Join(parts, ", ")
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}

func formatUsage(used, total uint64) string {
	return fmt.Sprintf("%s / %s", humanize.IBytes(used), humanize.IBytes(total))
}

func formatPercentage(used, total uint64) int {
	if total == 0 {
		return 0
	}
	return int(float64(used) / float64(total) * 100)
}

// formatCPU summarises the per-core records as "<model> (<cores>) @ <GHz>GHz"
// using the fastest reported clock.
func formatCPU(cpus []model.CPUInfo) string {
	maxMHz := 0.0
	for _, c := range cpus {
		if c.MHz > maxMHz {
			maxMHz = c.MHz
		}
	}
	return fmt.Sprintf("%s (%d) @ %.2fGHz", cleanCPUName(cpus[0].ModelName), len(cpus), maxMHz/1000)
}

func cleanCPUName(name string) string {
	removeStrings := []string{
		"(R)", "(TM)", " CPU", " FPU", " APU", " Processor", " processor",
		" Dual-Core", " Quad-Core", " Six-Core", " Eight-Core",
		" with Radeon Graphics", " with Radeon Vega Graphics",
	}

	for _, s := range removeStrings {
		name = strings.ReplaceAll(name, s, "")
	}

	if idx := strings.Index(name, "@"); idx != -1 {
		name = name[:idx]
	}

	return strings.Join(strings.Fields(name), " ")
}

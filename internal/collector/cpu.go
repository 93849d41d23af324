package collector

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"rfetch/internal/model"
)

const (
	cpuInfoPath     = "/proc/cpuinfo"
	thermalZonePath = "/sys/class/thermal/thermal_zone0/temp"
)

func (c *Collector) CPUs() ([]model.CPUInfo, bool) {
	f, err := os.Open(c.path(cpuInfoPath))
	if err != nil {
		c.absent("cpu", err)
		return nil, false
	}
	defer f.Close()

	cpus, err := parseCPUInfo(f)
	if err != nil {
		c.absent("cpu", err)
		return nil, false
	}
	if len(cpus) == 0 {
		c.absent("cpu", nil, "reason", "no model name/cpu MHz pairs")
		return nil, false
	}
	return cpus, true
}

// parseCPUInfo pairs consecutive "model name" and "cpu MHz" lines into one
// record per logical core. A pair with an unparsable clock, or a trailing
// line with no partner, produces no record.
func parseCPUInfo(r io.Reader) ([]model.CPUInfo, error) {
	var values []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "model name") && !strings.HasPrefix(line, "cpu MHz") {
			continue
		}
		_, value, ok := strings.Cut(line, ": ")
		if !ok {
			value = ""
		}
		values = append(values, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	cpus := make([]model.CPUInfo, 0, len(values)/2)
	for i := 0; i+1 < len(values); i += 2 {
		name := strings.TrimSpace(values[i])
		mhz, err := strconv.ParseFloat(strings.TrimSpace(values[i+1]), 64)
		if name == "" || err != nil {
			continue
		}
		cpus = append(cpus, model.CPUInfo{ModelName: name, MHz: mhz})
	}

	return cpus, nil
}

func (c *Collector) Temperature() (model.Temperature, bool) {
	raw, err := readTrimmed(c.path(thermalZonePath))
	if err != nil {
		c.absent("temp", err)
		return model.Temperature{}, false
	}

	milli, err := strconv.Atoi(raw)
	if err != nil {
		c.absent("temp", err)
		return model.Temperature{}, false
	}
	return model.Temperature{Millidegrees: milli}, true
}

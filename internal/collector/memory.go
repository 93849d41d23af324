package collector

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"rfetch/internal/model"
)

const memInfoPath = "/proc/meminfo"

func (c *Collector) Memory() (model.MemInfo, bool) {
	f, err := os.Open(c.path(memInfoPath))
	if err != nil {
		c.absent("memory", err)
		return model.MemInfo{}, false
	}
	defer f.Close()

	mem, err := parseMemInfo(f)
	if err != nil {
		c.absent("memory", err)
		return model.MemInfo{}, false
	}
	return mem, true
}

// parseMemInfo reads the /proc/meminfo format. All of MemTotal,
// MemAvailable, Cached and Buffers must be present.
func parseMemInfo(r io.Reader) (model.MemInfo, error) {
	memInfo := make(map[string]uint64)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		key := strings.TrimSuffix(fields[0], ":")
		value, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		memInfo[key] = value * 1024 // kB to bytes
	}
	if err := scanner.Err(); err != nil {
		return model.MemInfo{}, err
	}

	var values [4]uint64
	for i, key := range []string{"MemTotal", "MemAvailable", "Cached", "Buffers"} {
		v, ok := memInfo[key]
		if !ok {
			return model.MemInfo{}, fmt.Errorf("meminfo has no %s", key)
		}
		values[i] = v
	}

	total, avail := values[0], values[1]
	if avail > total {
		return model.MemInfo{}, fmt.Errorf("MemAvailable %d exceeds MemTotal %d", avail, total)
	}

	return model.MemInfo{
		Total:     total,
		Available: avail,
		Cached:    values[2],
		Buffers:   values[3],
		Used:      total - avail,
	}, nil
}

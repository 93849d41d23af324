package collector

import (
	"github.com/shirou/gopsutil/v3/disk"

	"rfetch/internal/model"
)

// DiskUsage reports the filesystem mounted at path. Free counts only blocks
// available to unprivileged users, and Used is everything else.
func (c *Collector) DiskUsage(path string) (model.FsInfo, bool) {
	st, err := disk.Usage(c.path(path))
	if err != nil {
		c.absent("disk_usage", err, "path", path)
		return model.FsInfo{}, false
	}
	if st.Free > st.Total {
		c.absent("disk_usage", nil, "path", path, "reason", "free exceeds total")
		return model.FsInfo{}, false
	}

	return model.FsInfo{
		Total: st.Total,
		Free:  st.Free,
		Used:  st.Total - st.Free,
	}, true
}

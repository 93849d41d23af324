package collector

import (
	"strings"

	"github.com/jaypipes/ghw"

	"rfetch/internal/model"
)

// Device reads the DMI product name (/sys/class/dmi/id/product_name).
func (c *Collector) Device() (model.DeviceInfo, bool) {
	product, err := ghw.Product(ghw.WithChroot(c.root), ghw.WithDisableWarnings())
	if err != nil {
		c.absent("device_name", err)
		return model.DeviceInfo{}, false
	}

	name := strings.TrimSpace(product.Name)
	if name == "" || strings.EqualFold(name, "unknown") {
		c.absent("device_name", nil, "reason", "product name not reported")
		return model.DeviceInfo{}, false
	}
	return model.DeviceInfo{Product: name}, true
}

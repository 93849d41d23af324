package collector

import (
	"fmt"
	"io"
	"os"

	"rfetch/internal/model"
)

const osReleasePath = "/etc/os-release"

func (c *Collector) Distro() (model.Distro, bool) {
	f, err := os.Open(c.path(osReleasePath))
	if err != nil {
		c.absent("distro", err)
		return model.Distro{}, false
	}
	defer f.Close()

	distro, err := parseOSRelease(f)
	if err != nil {
		c.absent("distro", err)
		return model.Distro{}, false
	}
	return distro, true
}

// parseOSRelease extracts NAME and ANSI_COLOR. NAME is required; a missing
// ANSI_COLOR leaves the color hint empty.
func parseOSRelease(r io.Reader) (model.Distro, error) {
	osInfo, err := parseKeyValue(r)
	if err != nil {
		return model.Distro{}, err
	}

	name := osInfo["NAME"]
	if name == "" {
		return model.Distro{}, fmt.Errorf("os-release has no NAME")
	}

	return model.Distro{
		Name:  name,
		Color: osInfo["ANSI_COLOR"],
	}, nil
}

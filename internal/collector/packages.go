package collector

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	gentooPkgDir   = "/var/db/pkg"
	dpkgStatusPath = "/var/lib/dpkg/status"
)

type packageCounter func(c *Collector) (int, error)

// packageCounters is keyed by the os-release NAME of each supported distro.
var packageCounters = map[string]packageCounter{
	"Arch Linux":       countPacman,
	"Gentoo":           countEmerge,
	"Debian GNU/Linux": countDpkg,
	"Ubuntu":           countDpkg,
	"Fedora Linux":     countRPM,
}

// Packages counts installed packages using the strategy for distro. Distros
// without a strategy report no count.
func (c *Collector) Packages(distro string) (int, bool) {
	count, ok := packageCounters[distro]
	if !ok {
		c.absent("packages", nil, "distro", distro, "reason", "unsupported distro")
		return 0, false
	}

	n, err := count(c)
	if err != nil {
		c.absent("packages", err, "distro", distro)
		return 0, false
	}
	return n, true
}

func countPacman(c *Collector) (int, error) {
	out, err := c.run("pacman", "-Qq")
	if err != nil {
		return 0, fmt.Errorf("pacman -Qq: %w", err)
	}
	return countLines(out), nil
}

func countRPM(c *Collector) (int, error) {
	out, err := c.run("rpm", "-qa")
	if err != nil {
		return 0, fmt.Errorf("rpm -qa: %w", err)
	}
	return countLines(out), nil
}

// countEmerge counts the entries of every category directory under
// /var/db/pkg.
func countEmerge(c *Collector) (int, error) {
	base := c.path(gentooPkgDir)
	categories, err := os.ReadDir(base)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, category := range categories {
		if !category.IsDir() {
			continue
		}
		entries, err := os.ReadDir(filepath.Join(base, category.Name()))
		if err != nil {
			return 0, err
		}
		count += len(entries)
	}
	return count, nil
}

func countDpkg(c *Collector) (int, error) {
	f, err := os.Open(c.path(dpkgStatusPath))
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return countDpkgStatus(f)
}

// countDpkgStatus counts stanzas marked "install ok installed".
func countDpkgStatus(r io.Reader) (int, error) {
	count := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	inPackage := false
	isInstalled := false

	flush := func() {
		if inPackage && isInstalled {
			count++
		}
		inPackage = false
		isInstalled = false
	}

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "Package:"):
			flush()
			inPackage = true
		case inPackage && strings.HasPrefix(line, "Status:"):
			isInstalled = strings.Contains(line, "install ok installed")
		case line == "":
			flush()
		}
	}
	flush()

	return count, scanner.Err()
}

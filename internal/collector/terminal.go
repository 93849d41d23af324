package collector

import (
	"fmt"
	"strings"
)

const maxProcessDepth = 16

var shells = map[string]bool{
	"sh": true, "bash": true, "zsh": true, "fish": true, "dash": true,
	"ksh": true, "mksh": true, "tcsh": true, "csh": true, "nu": true,
	"elvish": true, "xonsh": true,
}

// Terminal names the terminal emulator: TERM_PROGRAM when set, otherwise the
// first ancestor process that is not a shell.
func (c *Collector) Terminal() (string, bool) {
	if term := c.getenv("TERM_PROGRAM"); term != "" {
		return term, true
	}

	name, err := c.terminalFromProcesses()
	if err != nil {
		c.absent("terminal", err)
		return "", false
	}
	return name, true
}

func (c *Collector) terminalFromProcesses() (string, error) {
	pid := c.getppid()
	for depth := 0; depth < maxProcessDepth && pid > 1; depth++ {
		proc, err := c.findProcess(pid)
		if err != nil {
			return "", err
		}
		if proc == nil {
			return "", fmt.Errorf("process %d not found", pid)
		}

		name := strings.TrimPrefix(proc.Executable(), "-")
		switch {
		case shells[name]:
			pid = proc.PPid()
			continue
		case name == "login" || name == "init" || name == "systemd":
			return "", fmt.Errorf("no terminal emulator above %s", name)
		}
		return name, nil
	}
	return "", fmt.Errorf("no terminal emulator within %d ancestors", maxProcessDepth)
}

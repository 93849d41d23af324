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

const passwdPath = "/etc/passwd"

// User looks up the current uid in the password database.
func (c *Collector) User() (model.UserInfo, bool) {
	f, err := os.Open(c.path(passwdPath))
	if err != nil {
		c.absent("user", err)
		return model.UserInfo{}, false
	}
	defer f.Close()

	uid := c.getuid()
	user, err := lookupPasswd(f, uid)
	if err != nil {
		c.absent("user", err, "uid", uid)
		return model.UserInfo{}, false
	}
	return user, true
}

func lookupPasswd(r io.Reader, uid int) (model.UserInfo, error) {
	want := strconv.Itoa(uid)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// name:password:uid:gid:gecos:home:shell
		fields := strings.Split(line, ":")
		if len(fields) < 7 || fields[2] != want {
			continue
		}
		return model.UserInfo{
			Name:  fields[0],
			Home:  fields[5],
			Shell: fields[6],
		}, nil
	}
	if err := scanner.Err(); err != nil {
		return model.UserInfo{}, err
	}
	return model.UserInfo{}, fmt.Errorf("no passwd entry for uid %d", uid)
}

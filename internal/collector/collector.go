// Package collector implements the probes that read host state. Every probe
// is best effort: it returns the fact and true, or a zero value and false
// when the fact is unavailable. The reason for an absence is logged at debug
// level and never returned. Only the kernel-mandatory probes, Machine and
// Sys, return an error.
package collector

import (
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/go-ps"
)

const defaultPublicIPURL = "http://ifconfig.me/ip"

// CommandRunner runs a program and returns its standard output.
type CommandRunner func(name string, args ...string) ([]byte, error)

// InterfaceAddrs lists interface addresses in CIDR or plain form, in
// interface order.
type InterfaceAddrs func() ([]string, error)

// ProcessFinder looks up a process by pid. A nil process with a nil error
// means the pid does not exist.
type ProcessFinder func(pid int) (ps.Process, error)

type Collector struct {
	root        string
	logger      hclog.Logger
	client      *http.Client
	publicIPURL string
	run         CommandRunner
	addrs       InterfaceAddrs
	findProcess ProcessFinder
	getenv      func(string) string
	getuid      func() int
	getppid     func() int
	now         func() time.Time
}

type Option func(*Collector)

// WithRoot resolves every host file path under dir instead of "/".
func WithRoot(dir string) Option {
	return func(c *Collector) { c.root = dir }
}

func WithLogger(logger hclog.Logger) Option {
	return func(c *Collector) { c.logger = logger }
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Collector) { c.client = client }
}

func WithPublicIPURL(url string) Option {
	return func(c *Collector) { c.publicIPURL = url }
}

func WithCommandRunner(run CommandRunner) Option {
	return func(c *Collector) { c.run = run }
}

func WithInterfaceAddrs(addrs InterfaceAddrs) Option {
	return func(c *Collector) { c.addrs = addrs }
}

func WithProcessFinder(find ProcessFinder) Option {
	return func(c *Collector) { c.findProcess = find }
}

func WithEnv(getenv func(string) string) Option {
	return func(c *Collector) { c.getenv = getenv }
}

func WithUID(getuid func() int) Option {
	return func(c *Collector) { c.getuid = getuid }
}

func WithParentPID(getppid func() int) Option {
	return func(c *Collector) { c.getppid = getppid }
}

func WithClock(now func() time.Time) Option {
	return func(c *Collector) { c.now = now }
}

func New(opts ...Option) *Collector {
	c := &Collector{
		root:        "/",
		logger:      hclog.NewNullLogger(),
		client:      &http.Client{Timeout: 5 * time.Second},
		publicIPURL: defaultPublicIPURL,
		run:         runCommand,
		addrs:       interfaceAddrs,
		findProcess: ps.FindProcess,
		getenv:      os.Getenv,
		getuid:      os.Getuid,
		getppid:     os.Getppid,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Now is the wall clock used by the time and date modules.
func (c *Collector) Now() time.Time {
	return c.now()
}

func (c *Collector) path(p string) string {
	return filepath.Join(c.root, p)
}

func (c *Collector) absent(probe string, err error, args ...interface{}) {
	if err != nil {
		args = append(args, "error", err)
	}
	c.logger.Debug("fact unavailable", append([]interface{}{"probe", probe}, args...)...)
}

func runCommand(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

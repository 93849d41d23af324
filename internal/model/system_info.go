package model

import "time"

type UserInfo struct {
	Name  string `json:"name"`
	Home  string `json:"home"`
	Shell string `json:"shell"`
}

type MachineInfo struct {
	Arch     string `json:"arch"`
	Kernel   string `json:"kernel"`
	Hostname string `json:"hostname"`
}

// Distro is the subset of os-release the renderer uses. Color is the raw
// ANSI_COLOR value, e.g. "0;36", and may be empty.
type Distro struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// MemInfo sizes are in bytes.
type MemInfo struct {
	Total     uint64 `json:"total"`
	Available uint64 `json:"available"`
	Cached    uint64 `json:"cached"`
	Buffers   uint64 `json:"buffers"`
	Used      uint64 `json:"used"`
}

type SysInfo struct {
	Uptime    time.Duration `json:"uptime"`
	Processes int           `json:"processes"`
}

type CPUInfo struct {
	ModelName string  `json:"model_name"`
	MHz       float64 `json:"mhz"`
}

type FsInfo struct {
	Total uint64 `json:"total"`
	Used  uint64 `json:"used"`
	Free  uint64 `json:"free"`
}

type LocaleInfo struct {
	Locale   string `json:"locale"`
	Language string `json:"language"`
}

type DeviceInfo struct {
	Product string `json:"product"`
}

type Temperature struct {
	Millidegrees int `json:"millidegrees"`
}

// Celsius returns the reading in degrees.
func (t Temperature) Celsius() float64 {
	return float64(t.Millidegrees) / 1000.0
}

type BatteryStatus string

const (
	BatteryCharging    BatteryStatus = "charging"
	BatteryDischarging BatteryStatus = "discharging"
	BatteryFull        BatteryStatus = "full"
	BatteryUnknown     BatteryStatus = "unknown"
)

type BatteryInfo struct {
	Percent int           `json:"percent"`
	Status  BatteryStatus `json:"status"`
}

// Color is a raw ANSI escape sequence for one swatch cell.
type Color string

type IPMode int

const (
	IPPrivate IPMode = iota
	IPPublic
)

func (m IPMode) String() string {
	if m == IPPublic {
		return "public"
	}
	return "private"
}

package collector

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"net/netip"
	"strings"

	psnet "github.com/shirou/gopsutil/v3/net"

	"rfetch/internal/model"
)

func (c *Collector) IP(mode model.IPMode) (netip.Addr, bool) {
	var (
		addr netip.Addr
		err  error
	)
	switch mode {
	case model.IPPublic:
		addr, err = c.publicIP()
	default:
		addr, err = c.privateIP()
	}
	if err != nil {
		c.absent("ip", err, "mode", mode.String())
		return netip.Addr{}, false
	}
	return addr, true
}

// privateIP returns the first IPv4 address inside an RFC 1918 range.
func (c *Collector) privateIP() (netip.Addr, error) {
	addrs, err := c.addrs()
	if err != nil {
		return netip.Addr{}, err
	}

	for _, a := range addrs {
		if addr, ok := privateIPv4(a); ok {
			return addr, nil
		}
	}
	return netip.Addr{}, fmt.Errorf("no private IPv4 address among %d interface addresses", len(addrs))
}

func privateIPv4(s string) (netip.Addr, bool) {
	var ip net.IP
	if strings.Contains(s, "/") {
		parsed, _, err := net.ParseCIDR(s)
		if err != nil {
			return netip.Addr{}, false
		}
		ip = parsed
	} else {
		ip = net.ParseIP(s)
	}

	ip4 := ip.To4()
	if ip4 == nil || !ip4.IsPrivate() {
		return netip.Addr{}, false
	}
	addr, ok := netip.AddrFromSlice(ip4)
	return addr, ok
}

func (c *Collector) publicIP() (netip.Addr, error) {
	req, err := http.NewRequest(http.MethodGet, c.publicIPURL, nil)
	if err != nil {
		return netip.Addr{}, err
	}
	req.Header.Set("User-Agent", "rfetch")

	resp, err := c.client.Do(req)
	if err != nil {
		return netip.Addr{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return netip.Addr{}, fmt.Errorf("%s returned %s", c.publicIPURL, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return netip.Addr{}, err
	}

	addr, err := netip.ParseAddr(strings.TrimSpace(string(body)))
	if err != nil {
		return netip.Addr{}, err
	}
	if !addr.Is4() {
		return netip.Addr{}, fmt.Errorf("%s is not an IPv4 address", addr)
	}
	return addr, nil
}

func interfaceAddrs() ([]string, error) {
	interfaces, err := psnet.Interfaces()
	if err != nil {
		return nil, err
	}

	var addrs []string
	for _, iface := range interfaces {
		for _, a := range iface.Addrs {
			addrs = append(addrs, a.Addr)
		}
	}
	return addrs, nil
}

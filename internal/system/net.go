package system

import (
	"context"
	"errors"
	"net"
)

var ErrNoAddress = errors.New("no non-loopback IPv4 address")

// InterfaceNetInfo reports the first non-loopback IPv4 address of an up interface.
type InterfaceNetInfo struct{}

func (InterfaceNetInfo) IP(ctx context.Context) (string, error) { return LocalIPv4() }

func LocalIPv4() (string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return "", err
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		if ip := firstIPv4(addrs); ip != "" {
			return ip, nil
		}
	}
	return "", ErrNoAddress
}

func firstIPv4(addrs []net.Addr) string {
	for _, addr := range addrs {
		var ip net.IP
		switch a := addr.(type) {
		case *net.IPNet:
			ip = a.IP
		case *net.IPAddr:
			ip = a.IP
		}
		if ip4 := ip.To4(); ip4 != nil && !ip4.IsLoopback() && !ip4.IsLinkLocalUnicast() {
			return ip4.String()
		}
	}
	return ""
}

// KioskURL builds the address phones open from the host IP and listen address.
// It returns "" when the listen address is unusable.
func KioskURL(ip, listenAddr string) string {
	if ip == "" {
		return ""
	}
	_, port, err := net.SplitHostPort(listenAddr)
	if err != nil {
		return ""
	}
	if port == "" || port == "80" {
		return "http://" + ip + "/"
	}
	return "http://" + net.JoinHostPort(ip, port) + "/"
}

package system

import (
	"net"
	"testing"
)

func TestFirstIPv4(t *testing.T) {
	tests := []struct {
		name  string
		addrs []net.Addr
		want  string
	}{
		{"empty", nil, ""},
		{"skips v6 and loopback", []net.Addr{
			&net.IPNet{IP: net.ParseIP("fe80::1")},
			&net.IPNet{IP: net.ParseIP("127.0.0.1")},
			&net.IPNet{IP: net.ParseIP("192.168.1.20")},
		}, "192.168.1.20"},
		{"skips link-local", []net.Addr{&net.IPAddr{IP: net.ParseIP("169.254.3.4")}}, ""},
		{"ip addr", []net.Addr{&net.IPAddr{IP: net.ParseIP("10.1.2.3")}}, "10.1.2.3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstIPv4(tt.addrs); got != tt.want {
				t.Errorf("firstIPv4 = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKioskURL(t *testing.T) {
	tests := []struct {
		ip, listen, want string
	}{
		{"10.0.0.2", ":80", "http://10.0.0.2/"},
		{"10.0.0.2", ":8080", "http://10.0.0.2:8080/"},
		{"10.0.0.2", "0.0.0.0:9000", "http://10.0.0.2:9000/"},
		{"", ":80", ""},
		{"10.0.0.2", "bogus", ""},
	}
	for _, tt := range tests {
		if got := KioskURL(tt.ip, tt.listen); got != tt.want {
			t.Errorf("KioskURL(%q, %q) = %q, want %q", tt.ip, tt.listen, got, tt.want)
		}
	}
}

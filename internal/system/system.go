// Package system holds the Linux console, input and host helpers used by the kiosk.
package system

import "context"

// NetInfo reports the address the kiosk is reachable at.
type NetInfo interface {
	IP(ctx context.Context) (string, error)
}

type NoopNetInfo struct{}

func (NoopNetInfo) IP(ctx context.Context) (string, error) { return "", nil }

package domain

import (
	"fmt"
	"strings"
)

type ServerID int

type Server struct {
	ID         ServerID
	Name       string
	Identifier InstanceIdentifier
	MemoryMB   int
	CPUPercent int
	DiskMB     int
}

type ServerDetails struct {
	Name       string
	Identifier InstanceIdentifier
	SFTPHost   string
	SFTPPort   int
}

type PowerSignal string

const (
	PowerStart   PowerSignal = "start"
	PowerStop    PowerSignal = "stop"
	PowerRestart PowerSignal = "restart"
	PowerKill    PowerSignal = "kill"
)

func ParsePowerSignal(raw string) (PowerSignal, error) {
	switch signal := PowerSignal(strings.ToLower(strings.TrimSpace(raw))); signal {
	case PowerStart, PowerStop, PowerRestart, PowerKill:
		return signal, nil
	default:
		return "", fmt.Errorf("unsupported power signal %q", raw)
	}
}

// ApplicationKey is the admin-scope panel credential.
type ApplicationKey string

// ClientKey is a per-user panel credential, valid only for that user's servers.
type ClientKey string

package domain

import (
	"strings"
	"unicode/utf8"
)

const MaxServerNameLength = 40

type AllocationID int

type Allocation struct {
	ID       AllocationID
	IP       string
	Port     int
	Assigned bool
}

// InstanceIdentifier is the panel's short opaque server identifier.
type InstanceIdentifier string

// Bounds caps the resources one request may ask for.
type Bounds struct {
	MaxMemoryMB   int
	MaxCPUPercent int
	MaxDiskMB     int
}

// Minimum accepted limits for any request.
const (
	MinMemoryMB   = 128
	MinCPUPercent = 10
	MinDiskMB     = 512
)

type ProvisioningRequest struct {
	Name         string
	Owner        PanelUserID
	Offering     OfferingKey
	MemoryMB     int
	CPUPercent   int
	DiskMB       int
	AllocationID AllocationID
}

func ValidateServerName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", NewValidationError("name", "must not be empty")
	}
	if utf8.RuneCountInString(trimmed) > MaxServerNameLength {
		return "", NewValidationError("name", "must be at most %d characters", MaxServerNameLength)
	}
	return trimmed, nil
}

// Validate checks the request against bounds. The owner must be resolved.
func (r ProvisioningRequest) Validate(bounds Bounds) error {
	if _, err := ValidateServerName(r.Name); err != nil {
		return err
	}
	if r.Owner <= 0 {
		return ErrAccountNotLinked
	}
	if r.MemoryMB < MinMemoryMB || r.MemoryMB > bounds.MaxMemoryMB {
		return NewValidationError("memory", "must be between %d and %d MB", MinMemoryMB, bounds.MaxMemoryMB)
	}
	if r.CPUPercent < MinCPUPercent || r.CPUPercent > bounds.MaxCPUPercent {
		return NewValidationError("cpu", "must be between %d and %d %%", MinCPUPercent, bounds.MaxCPUPercent)
	}
	if r.DiskMB < MinDiskMB || r.DiskMB > bounds.MaxDiskMB {
		return NewValidationError("disk", "must be between %d and %d MB", MinDiskMB, bounds.MaxDiskMB)
	}
	return nil
}

package domain

import (
	"fmt"
	"strings"
)

// Tier is a named bundle of maximum resource limits unlocked at MinInvites.
type Tier struct {
	Name          string
	MinInvites    int
	MaxMemoryMB   int
	MaxCPUPercent int
	MaxDiskMB     int
}

// Bounds returns the tier limits as provisioning bounds.
func (t Tier) Bounds() Bounds {
	return Bounds{
		MaxMemoryMB:   t.MaxMemoryMB,
		MaxCPUPercent: t.MaxCPUPercent,
		MaxDiskMB:     t.MaxDiskMB,
	}
}

// Tiers is ordered by strictly increasing MinInvites. Build it with NewTiers.
type Tiers []Tier

func NewTiers(tiers []Tier) (Tiers, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("tier table is empty")
	}

	out := make(Tiers, len(tiers))
	copy(out, tiers)

	if out[0].MinInvites != 0 {
		return nil, fmt.Errorf("lowest tier %q must start at 0 invites, got %d", out[0].Name, out[0].MinInvites)
	}

	seen := make(map[string]struct{}, len(out))
	for i, tier := range out {
		name := strings.TrimSpace(tier.Name)
		if name == "" {
			return nil, fmt.Errorf("tier %d: name is required", i)
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("tier %q is defined twice", name)
		}
		seen[key] = struct{}{}

		if tier.MaxMemoryMB <= 0 || tier.MaxCPUPercent <= 0 || tier.MaxDiskMB <= 0 {
			return nil, fmt.Errorf("tier %q: limits must be positive", name)
		}
		if i > 0 && tier.MinInvites <= out[i-1].MinInvites {
			return nil, fmt.Errorf("tier %q: threshold %d must be greater than %q threshold %d", name, tier.MinInvites, out[i-1].Name, out[i-1].MinInvites)
		}
	}

	return out, nil
}

// Resolve returns the tier with the greatest threshold <= invites. Negative
// counts resolve to the lowest tier.
func (ts Tiers) Resolve(invites int) Tier {
	if len(ts) == 0 {
		return Tier{}
	}

	resolved := ts[0]
	for _, tier := range ts[1:] {
		if tier.MinInvites > invites {
			break
		}
		resolved = tier
	}

	return resolved
}

// Next returns the lowest tier whose threshold is strictly above current's.
func (ts Tiers) Next(current Tier) (Tier, bool) {
	for _, tier := range ts {
		if tier.MinInvites > current.MinInvites {
			return tier, true
		}
	}

	return Tier{}, false
}

func DefaultTiers() Tiers {
	return Tiers{
		{Name: "Basic", MinInvites: 0, MaxMemoryMB: 4096, MaxCPUPercent: 150, MaxDiskMB: 10000},
		{Name: "Advanced", MinInvites: 4, MaxMemoryMB: 6144, MaxCPUPercent: 200, MaxDiskMB: 15000},
		{Name: "Pro", MinInvites: 6, MaxMemoryMB: 7168, MaxCPUPercent: 230, MaxDiskMB: 20000},
		{Name: "Premium", MinInvites: 8, MaxMemoryMB: 9216, MaxCPUPercent: 270, MaxDiskMB: 25000},
		{Name: "Elite", MinInvites: 15, MaxMemoryMB: 12288, MaxCPUPercent: 320, MaxDiskMB: 30000},
		{Name: "Ultimate", MinInvites: 20, MaxMemoryMB: 16384, MaxCPUPercent: 400, MaxDiskMB: 35000},
	}
}

package model

import (
	"encoding/json"
	"math"
	"sort"
	"strings"
)

// Attribute names a combat stat that points can be assigned to
type Attribute string

const (
	AttrHP         Attribute = "hp"
	AttrPower      Attribute = "power"
	AttrAgility    Attribute = "agility"
	AttrProtection Attribute = "protection"
)

// Attributes returns the allocatable attributes in display order
func Attributes() []Attribute {
	return []Attribute{AttrHP, AttrPower, AttrAgility, AttrProtection}
}

// Allocation is a validated distribution of points over the four attributes
type Allocation struct {
	HP         int `json:"hp"`
	Power      int `json:"power"`
	Agility    int `json:"agility"`
	Protection int `json:"protection"`
}

// Total returns the number of points the allocation spends
func (a Allocation) Total() int {
	return a.HP + a.Power + a.Agility + a.Protection
}

// Set assigns points to a single attribute
func (a *Allocation) Set(attr Attribute, points int) {
	switch attr {
	case AttrHP:
		a.HP = points
	case AttrPower:
		a.Power = points
	case AttrAgility:
		a.Agility = points
	case AttrProtection:
		a.Protection = points
	}
}

// Add returns the element-wise sum of two allocations
func (a Allocation) Add(other Allocation) Allocation {
	return Allocation{
		HP:         a.HP + other.HP,
		Power:      a.Power + other.Power,
		Agility:    a.Agility + other.Agility,
		Protection: a.Protection + other.Protection,
	}
}

// RawAllocation is an allocation object exactly as the client sent it.
// Values are kept undecoded so that missing keys, fractions and negative
// numbers can each be reported.
type RawAllocation map[string]any

// Exact requires every attribute to be present with a non-negative integer
// and rejects unknown keys.
func (r RawAllocation) Exact() (Allocation, error) {
	if err := r.checkKeys(); err != nil {
		return Allocation{}, err
	}
	var a Allocation
	for _, attr := range Attributes() {
		v, ok := r[string(attr)]
		if !ok {
			return Allocation{}, NewValidationError(ErrInvalidAllocation,
				"Allocation must include hp, power, agility and protection.")
		}
		n, ok := pointValue(v)
		if !ok {
			return Allocation{}, invalidPoints(attr)
		}
		a.Set(attr, n)
	}
	return a, nil
}

// Partial accepts any subset of the attributes; missing ones count as zero.
func (r RawAllocation) Partial() (Allocation, error) {
	if err := r.checkKeys(); err != nil {
		return Allocation{}, err
	}
	var a Allocation
	for _, attr := range Attributes() {
		v, ok := r[string(attr)]
		if !ok {
			continue
		}
		n, ok := pointValue(v)
		if !ok {
			return Allocation{}, invalidPoints(attr)
		}
		a.Set(attr, n)
	}
	return a, nil
}

func (r RawAllocation) checkKeys() error {
	var unknown []string
	for k := range r {
		switch Attribute(k) {
		case AttrHP, AttrPower, AttrAgility, AttrProtection:
		default:
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return NewValidationError(ErrInvalidAllocation,
			"Unknown attribute(s): %s.", strings.Join(unknown, ", "))
	}
	return nil
}

func invalidPoints(attr Attribute) error {
	return NewValidationError(ErrInvalidAllocation,
		"Points for %s must be a non-negative integer.", attr)
}

// pointValue converts a decoded JSON value into a non-negative point count
func pointValue(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n < 0 || n != math.Trunc(n) || n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil || i < 0 || i > math.MaxInt32 {
			return 0, false
		}
		return int(i), true
	case int:
		return n, n >= 0
	default:
		return 0, false
	}
}

package delivery

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidZones is returned by ParseZones for malformed input.
	ErrInvalidZones = errors.New("invalid delivery zone list")
)

// Zones is the allow-list of neighborhoods served and their delivery fee.
type Zones struct {
	fees map[string]decimal.Decimal
}

// NewZones builds an allow-list. Neighborhood names are trimmed; fees must not be negative.
func NewZones(fees map[string]decimal.Decimal) (Zones, error) {
	z := Zones{fees: make(map[string]decimal.Decimal, len(fees))}
	for name, fee := range fees {
		name = strings.TrimSpace(name)
		if name == "" {
			return Zones{}, fmt.Errorf("%w: empty neighborhood", ErrInvalidZones)
		}
		if fee.IsNegative() {
			return Zones{}, fmt.Errorf("%w: negative fee for %q", ErrInvalidZones, name)
		}
		z.fees[name] = fee
	}
	return z, nil
}

// DefaultZones returns the neighborhoods served out of the box.
func DefaultZones() Zones {
	return Zones{fees: map[string]decimal.Decimal{
		"Jardim Antártica": decimal.NewFromInt(5),
		"Vila Tibério":     decimal.NewFromInt(5),
		"Jardim Paiva":     decimal.NewFromInt(10),
	}}
}

// ParseZones reads a "Name:fee,Name:fee" list. An empty string yields DefaultZones.
func ParseZones(list string) (Zones, error) {
	list = strings.TrimSpace(list)
	if list == "" {
		return DefaultZones(), nil
	}

	fees := make(map[string]decimal.Decimal)
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idx := strings.LastIndex(part, ":")
		if idx <= 0 {
			return Zones{}, fmt.Errorf("%w: %q", ErrInvalidZones, part)
		}
		name := strings.TrimSpace(part[:idx])
		fee, err := decimal.NewFromString(strings.TrimSpace(part[idx+1:]))
		if err != nil {
			return Zones{}, fmt.Errorf("%w: fee in %q: %v", ErrInvalidZones, part, err)
		}
		if _, dup := fees[name]; dup {
			return Zones{}, fmt.Errorf("%w: duplicate neighborhood %q", ErrInvalidZones, name)
		}
		fees[name] = fee
	}
	if len(fees) == 0 {
		return Zones{}, fmt.Errorf("%w: no zones", ErrInvalidZones)
	}
	return NewZones(fees)
}

// Fee returns the delivery fee for neighborhood.
func (z Zones) Fee(neighborhood string) (decimal.Decimal, bool) {
	fee, ok := z.fees[strings.TrimSpace(neighborhood)]
	return fee, ok
}

// Neighborhoods returns the served neighborhoods in alphabetical order.
func (z Zones) Neighborhoods() []string {
	names := make([]string, 0, len(z.fees))
	for name := range z.fees {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of served neighborhoods.
func (z Zones) Len() int {
	return len(z.fees)
}

package delivery

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrUndeliverable is returned when the address is outside every served neighborhood.
var ErrUndeliverable = errors.New("neighborhood not served")

// Zone is a resolved delivery destination.
type Zone struct {
	PostalCode    string
	Neighborhood  string
	Fee           decimal.Decimal
	AddressPrefix string
}

// Resolver maps a postal code to a served Zone.
type Resolver struct {
	directory Directory
	zones     Zones
}

// NewResolver creates a resolver backed by directory and the zones allow-list.
func NewResolver(directory Directory, zones Zones) *Resolver {
	return &Resolver{directory: directory, zones: zones}
}

// Zones returns the allow-list in use.
func (r *Resolver) Zones() Zones {
	return r.zones
}

// Resolve looks code up and checks it against the allow-list. code must already be
// normalized.
func (r *Resolver) Resolve(ctx context.Context, code string) (Zone, error) {
	addr, err := r.directory.Lookup(ctx, code)
	if err != nil {
		return Zone{}, err
	}
	if addr == nil {
		return Zone{}, fmt.Errorf("%w: empty address", ErrLookupFailed)
	}

	fee, ok := r.zones.Fee(addr.Neighborhood)
	if !ok {
		return Zone{}, fmt.Errorf("%w: %q", ErrUndeliverable, addr.Neighborhood)
	}

	return Zone{
		PostalCode:    code,
		Neighborhood:  addr.Neighborhood,
		Fee:           fee,
		AddressPrefix: addr.Prefix(),
	}, nil
}

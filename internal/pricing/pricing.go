// Package pricing holds the authoritative fare computation. It is pure:
// callers supply the catalog data, nothing here touches storage.
package pricing

import (
	"errors"
	"strconv"
	"strings"

	"transfer-booking/internal/data/entity"
)

var (
	ErrUnknownRoute = errors.New("invalid route")
	ErrInvalidPrice = errors.New("invalid price")
)

// returnDiscount was a 10% round-trip reduction. It is intentionally
// disabled as a product decision, not dead code to clean up.
const returnDiscount = 0.0

// Quote returns the total fare for a route's vehicle options, a vehicle
// class and a trip type. The class picks option position 0 (sedan) or 1
// (vclass); a missing option or unparsable price fails with ErrInvalidPrice.
func Quote(options []*entity.VehicleOption, class entity.VehicleClass, trip entity.TripType) (float64, error) {
	idx, ok := class.OptionIndex()
	if !ok {
		return 0, ErrInvalidPrice
	}
	if idx >= len(options) || options[idx] == nil {
		return 0, ErrInvalidPrice
	}

	base, err := ParsePrice(options[idx].FixedPrice)
	if err != nil {
		return 0, ErrInvalidPrice
	}

	total := base * float64(trip.Legs())
	total -= total * returnDiscount

	return total, nil
}

// QuoteRoute is Quote with the route presence check folded in: a nil route
// fails with ErrUnknownRoute.
func QuoteRoute(route *entity.Route, options []*entity.VehicleOption, class entity.VehicleClass, trip entity.TripType) (float64, error) {
	if route == nil {
		return 0, ErrUnknownRoute
	}
	return Quote(options, class, trip)
}

// ParsePrice parses a stored price string, stripping currency symbols and
// other formatting characters ("€65", "65.00", "1 200").
func ParsePrice(raw string) (float64, error) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return 0, ErrInvalidPrice
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, ErrInvalidPrice
	}

	return value, nil
}

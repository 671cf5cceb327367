package entity

import (
	"github.com/google/uuid"
)

type VehicleClass string

const (
	VehicleClassSedan  VehicleClass = "sedan"
	VehicleClassVClass VehicleClass = "vclass"
)

// OptionIndex maps the class to its position in a route's vehicle-option
// list: 0 is the sedan (cheapest), 1 is the V-Class.
func (c VehicleClass) OptionIndex() (int, bool) {
	switch c {
	case VehicleClassSedan:
		return 0, true
	case VehicleClassVClass:
		return 1, true
	default:
		return 0, false
	}
}

func (c VehicleClass) Valid() bool {
	_, ok := c.OptionIndex()
	return ok
}

// Route is a fixed origin/destination pair with per-vehicle fixed pricing.
type Route struct {
	Base
	Slug           string `db:"slug"`
	FromLocation   string `db:"from_location"`
	ToLocation     string `db:"to_location"`
	Description    string `db:"description"`
	SEOTitle       string `db:"seo_title"`
	SEODescription string `db:"seo_description"`
	Active         bool   `db:"active"`
}

// Title is the display name shown in route selectors.
func (r *Route) Title() string {
	return r.FromLocation + " → " + r.ToLocation
}

// VehicleOption is a priced vehicle class attached to a route. FixedPrice is
// kept as the display string the CMS stores (it may carry currency symbols).
type VehicleOption struct {
	BaseSimple
	RouteID       uuid.UUID    `db:"route_id"`
	VehicleClass  VehicleClass `db:"vehicle_class"`
	FixedPrice    string       `db:"fixed_price"`
	MaxPassengers int          `db:"max_passengers"`
	IdealFor      string       `db:"ideal_for"`
	Position      int          `db:"position"`
}

type RouteFAQ struct {
	BaseSimple
	RouteID  uuid.UUID `db:"route_id"`
	Question string    `db:"question"`
	Answer   string    `db:"answer"`
	Position int       `db:"position"`
}

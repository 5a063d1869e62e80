package kernel

import (
	"errors"
	"fmt"

	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/guard"
)

// Geocoordinate bounds in decimal degrees.
const (
	latitudeMin  = -90.0
	latitudeMax  = 90.0
	longitudeMin = -180.0
	longitudeMax = 180.0
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created through NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Geopoint is an optional latitude/longitude pair attached to an address so a
// delivery agent can navigate to the destination.
type Geopoint struct {
	Latitude  float64
	Longitude float64
}

// Address is the shipping destination of an order: a free-form street line and
// city, optionally pinned to a geocoordinate. Address is an immutable value
// object; the zero value is invalid.
//
// Example:
//
//	geo := &kernel.Geopoint{Latitude: 6.52, Longitude: 3.38}
//	addr, err := kernel.NewAddress("14 Broad Street", "Lagos", geo)
//	if err != nil {
//	    // Handle validation error
//	}
type Address struct {
	street   string
	city     string
	geopoint *Geopoint

	guard guard.ConstructorGuard
}

// NewAddress creates a validated shipping address. Street and city must be
// non-empty; the geopoint is optional but, when present, must hold coordinates
// within valid decimal-degree bounds.
func NewAddress(street, city string, geopoint *Geopoint) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setStreet(street),
		address.setCity(city),
		address.setGeopoint(geopoint),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate checks the Address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// Geopoint returns a copy of the optional geocoordinate, or nil when the
// address was created without one.
func (a Address) Geopoint() *Geopoint {
	if a.geopoint == nil {
		return nil
	}
	point := *a.geopoint
	return &point
}

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	if a.street != other.street || a.city != other.city {
		return false
	}
	if (a.geopoint == nil) != (other.geopoint == nil) {
		return false
	}
	if a.geopoint != nil && *a.geopoint != *other.geopoint {
		return false
	}
	return true
}

// String returns a single-line rendering, e.g. "14 Broad Street, Lagos".
func (a Address) String() string {
	return fmt.Sprintf("%s, %s", a.street, a.city)
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setGeopoint(geopoint *Geopoint) error {
	if geopoint == nil {
		return nil
	}
	if geopoint.Latitude < latitudeMin || geopoint.Latitude > latitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", geopoint.Latitude, latitudeMin, latitudeMax)
	}
	if geopoint.Longitude < longitudeMin || geopoint.Longitude > longitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", geopoint.Longitude, longitudeMin, longitudeMax)
	}
	point := *geopoint
	a.geopoint = &point
	return nil
}

// Package units converts lengths between distance units.
package units

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownUnit is returned by Parse for an unrecognised name.
var ErrUnknownUnit = errors.New("unknown distance unit")

// Unit is a distance unit valued in ten-thousandths of a millimetre.
type Unit int64

// Fine measurements.
const (
	Centimeter Unit = 100
	Inch       Unit = 254
)

// Local measurements.
const (
	Foot  Unit = 3048
	Meter Unit = 10000
)

// Geographical measurements.
const (
	Kilometer Unit = 10000000
	Mile      Unit = 16093440
)

// All lists every unit from smallest to largest.
var All = []Unit{Centimeter, Inch, Foot, Meter, Kilometer, Mile}

var names = map[Unit]string{
	Centimeter: "centimeter",
	Inch:       "inch",
	Foot:       "foot",
	Meter:      "meter",
	Kilometer:  "kilometer",
	Mile:       "mile",
}

// ConvertTo expresses distance, measured in u, in other.
func (u Unit) ConvertTo(other Unit, distance float64) float64 {
	return distance * (float64(u) / float64(other))
}

// ConvertFrom expresses distance, measured in other, in u.
func (u Unit) ConvertFrom(other Unit, distance float64) float64 {
	return distance * (float64(other) / float64(u))
}

func (u Unit) String() string {
	if name, ok := names[u]; ok {
		return name
	}
	return fmt.Sprintf("Unit(%d)", int64(u))
}

// Parse returns the unit with the given name, plural or abbreviation.
// Case is ignored.
func Parse(s string) (Unit, error) {
	if u, ok := aliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return u, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

var aliases = map[string]Unit{
	"centimeter": Centimeter, "centimeters": Centimeter, "cm": Centimeter,
	"inch": Inch, "inches": Inch, "in": Inch,
	"foot": Foot, "feet": Foot, "ft": Foot,
	"meter": Meter, "meters": Meter, "m": Meter,
	"kilometer": Kilometer, "kilometers": Kilometer, "km": Kilometer,
	"mile": Mile, "miles": Mile, "mi": Mile,
}

package model

import (
	"fmt"
	"strconv"
	"strings"
)

// UnitType is the unit suffix of a length or number.
type UnitType uint8

const (
	UnitNone UnitType = iota // unitless user units
	UnitPx
	UnitPercent
	UnitEm
	UnitEx
	UnitIn
	UnitCm
	UnitMm
	UnitPt
	UnitPc
)

var unitSuffixes = [...]string{
	UnitNone:    "",
	UnitPx:      "px",
	UnitPercent: "%",
	UnitEm:      "em",
	UnitEx:      "ex",
	UnitIn:      "in",
	UnitCm:      "cm",
	UnitMm:      "mm",
	UnitPt:      "pt",
	UnitPc:      "pc",
}

// String returns the unit suffix.
func (t UnitType) String() string {
	if int(t) < len(unitSuffixes) {
		return unitSuffixes[t]
	}
	return "?"
}

// Unit is a number with a unit.
type Unit struct {
	Value float64
	Type  UnitType
}

// Number returns a unitless value.
func Number(v float64) Unit { return Unit{Value: v} }

// Px returns a pixel length.
func Px(v float64) Unit { return Unit{Value: v, Type: UnitPx} }

// Percent returns a percentage, where 100 means 100%.
func Percent(v float64) Unit { return Unit{Value: v, Type: UnitPercent} }

// Ptr returns a pointer to u, for optional attributes.
func (u Unit) Ptr() *Unit { return &u }

// IsPercent reports whether u is a percentage.
func (u Unit) IsPercent() bool { return u.Type == UnitPercent }

// String formats the unit in attribute syntax.
func (u Unit) String() string {
	return strconv.FormatFloat(u.Value, 'g', -1, 64) + u.Type.String()
}

// ParseUnit parses a length such as "10", "-10%", "2.5em" or "1e2px".
func ParseUnit(s string) (Unit, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unit{}, fmt.Errorf("model: empty length")
	}

	typ := UnitNone
	num := s
	for i := len(unitSuffixes) - 1; i > 0; i-- {
		suffix := unitSuffixes[i]
		if strings.HasSuffix(s, suffix) {
			typ = UnitType(i)
			num = strings.TrimSpace(s[:len(s)-len(suffix)])
			break
		}
	}

	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Unit{}, fmt.Errorf("model: invalid length %q: %w", s, err)
	}
	return Unit{Value: v, Type: typ}, nil
}

// CoordinateUnits selects the coordinate system of filter and primitive
// regions.
type CoordinateUnits uint8

const (
	UserSpaceOnUse CoordinateUnits = iota
	ObjectBoundingBox
)

// String returns the attribute spelling.
func (c CoordinateUnits) String() string {
	if c == ObjectBoundingBox {
		return "objectBoundingBox"
	}
	return "userSpaceOnUse"
}

// Ptr returns a pointer to c, for optional attributes.
func (c CoordinateUnits) Ptr() *CoordinateUnits { return &c }

// ParseCoordinateUnits parses a filterUnits or primitiveUnits value.
func ParseCoordinateUnits(s string) (CoordinateUnits, bool) {
	switch strings.TrimSpace(s) {
	case "userSpaceOnUse":
		return UserSpaceOnUse, true
	case "objectBoundingBox":
		return ObjectBoundingBox, true
	default:
		return UserSpaceOnUse, false
	}
}

// OptionalNumbers holds a "number-optional-number" attribute: zero, one
// or two values.
type OptionalNumbers []float64

// Pair returns both numbers. With no values it returns the defaults, with
// one value it returns that value twice.
func (n OptionalNumbers) Pair(defX, defY float64) (x, y float64) {
	switch len(n) {
	case 0:
		return defX, defY
	case 1:
		return n[0], n[0]
	default:
		return n[0], n[1]
	}
}

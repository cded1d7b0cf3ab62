// filters/filters.go
package filters

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gewnthar/neotrack/models"
)

// ErrUnsupportedCriterion signals a filter that was built without a concrete
// attribute or with an unknown operator. That is a defect in the code that
// constructed the filter, never a user-input problem, so evaluating such a
// filter panics with this error.
var ErrUnsupportedCriterion = errors.New("unsupported filter criterion")

// Operator is one of the six binary comparison operators a filter can apply
// between the extracted attribute and its reference value.
type Operator int

const (
	OpEq Operator = iota + 1
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

// String returns the operator's comparison symbol.
func (op Operator) String() string {
	switch op {
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// Attribute selects which value a filter extracts from a close approach.
// The zero value is deliberately not a valid attribute.
type Attribute int

const (
	attrNone Attribute = iota
	AttrDate
	AttrDistance
	AttrVelocity
	AttrDiameter
	AttrHazardous
)

// String returns the attribute's name.
func (a Attribute) String() string {
	switch a {
	case AttrDate:
		return "date"
	case AttrDistance:
		return "distance"
	case AttrVelocity:
		return "velocity"
	case AttrDiameter:
		return "diameter"
	case AttrHazardous:
		return "hazardous"
	}
	return fmt.Sprintf("Attribute(%d)", int(a))
}

// AttributeFilter is a single predicate over a close approach: it extracts
// one attribute (possibly reaching through to the approach's NEO) and
// compares it against a fixed reference value with one operator.
//
// The zero value is an unspecialized filter; calling Matches on it panics
// with ErrUnsupportedCriterion.
type AttributeFilter struct {
	attr Attribute
	op   Operator

	// Exactly one of these holds the reference value, per attr.
	date time.Time
	num  float64
	flag bool
}

// DateFilter builds a filter on the calendar date of the approach (time of
// day is ignored).
func DateFilter(op Operator, date time.Time) AttributeFilter {
	year, month, day := date.Date()
	return AttributeFilter{
		attr: AttrDate,
		op:   op,
		date: time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
	}
}

// DistanceFilter builds a filter on the nominal approach distance (au).
func DistanceFilter(op Operator, distance float64) AttributeFilter {
	return AttributeFilter{attr: AttrDistance, op: op, num: distance}
}

// VelocityFilter builds a filter on the relative approach velocity (km/s).
func VelocityFilter(op Operator, velocity float64) AttributeFilter {
	return AttributeFilter{attr: AttrVelocity, op: op, num: velocity}
}

// DiameterFilter builds a filter on the diameter (km) of the approach's NEO.
// An NEO with an unknown (NaN) diameter never satisfies any comparison,
// equality included.
func DiameterFilter(op Operator, diameter float64) AttributeFilter {
	return AttributeFilter{attr: AttrDiameter, op: op, num: diameter}
}

// HazardousFilter builds a filter on the hazardous flag of the approach's NEO.
func HazardousFilter(op Operator, hazardous bool) AttributeFilter {
	return AttributeFilter{attr: AttrHazardous, op: op, flag: hazardous}
}

// Attribute returns the attribute this filter inspects.
func (f AttributeFilter) Attribute() Attribute { return f.attr }

// Operator returns the comparison operator this filter applies.
func (f AttributeFilter) Operator() Operator { return f.op }

// String returns a description like "distance <= 0.5".
func (f AttributeFilter) String() string {
	switch f.attr {
	case AttrDate:
		return fmt.Sprintf("%s %s %s", f.attr, f.op, f.date.Format("2006-01-02"))
	case AttrDistance, AttrVelocity, AttrDiameter:
		return fmt.Sprintf("%s %s %v", f.attr, f.op, f.num)
	case AttrHazardous:
		return fmt.Sprintf("%s %s %t", f.attr, f.op, f.flag)
	}
	return "unsupported filter"
}

// Matches reports whether the approach satisfies this filter.
//
// Filters that reach through to the NEO (diameter, hazardous) never match an
// approach whose designation could not be resolved: an unknown object has no
// attribute worth comparing.
func (f AttributeFilter) Matches(approach *models.CloseApproach) bool {
	switch f.attr {
	case AttrDate:
		return compareDates(f.op, approach.Date(), f.date)
	case AttrDistance:
		return compareFloats(f.op, approach.Distance, f.num)
	case AttrVelocity:
		return compareFloats(f.op, approach.Velocity, f.num)
	case AttrDiameter:
		if approach.NEO == nil {
			return compareFloats(f.op, math.NaN(), f.num)
		}
		return compareFloats(f.op, approach.NEO.Diameter, f.num)
	case AttrHazardous:
		if approach.NEO == nil {
			return false
		}
		return compareBools(f.op, approach.NEO.Hazardous, f.flag)
	}
	panic(ErrUnsupportedCriterion)
}

// compareFloats applies op between a and b. IEEE semantics make every
// comparison except != fail when either side is NaN, which is exactly the
// behavior required for unknown diameters.
func compareFloats(op Operator, a, b float64) bool {
	switch op {
	case OpEq:
		return a == b
	case OpNe:
		return a != b
	case OpLt:
		return a < b
	case OpLe:
		return a <= b
	case OpGt:
		return a > b
	case OpGe:
		return a >= b
	}
	panic(ErrUnsupportedCriterion)
}

func compareDates(op Operator, a, b time.Time) bool {
	switch op {
	case OpEq:
		return a.Equal(b)
	case OpNe:
		return !a.Equal(b)
	case OpLt:
		return a.Before(b)
	case OpLe:
		return a.Before(b) || a.Equal(b)
	case OpGt:
		return a.After(b)
	case OpGe:
		return a.After(b) || a.Equal(b)
	}
	panic(ErrUnsupportedCriterion)
}

func compareBools(op Operator, a, b bool) bool {
	switch op {
	case OpEq:
		return a == b
	case OpNe:
		return a != b
	}
	// Booleans are not ordered; asking for < or >= is a defect.
	panic(ErrUnsupportedCriterion)
}

// filters/criteria.go
package filters

import (
	"iter"
	"time"
)

// Criteria holds the user's query options. Every field is optional: a nil
// pointer means "no constraint on this attribute". Note that a Hazardous
// pointer to false is a real constraint (match only non-hazardous objects)
// and must not be confused with leaving Hazardous unset.
type Criteria struct {
	Date      *time.Time
	StartDate *time.Time
	EndDate   *time.Time

	DistanceMin *float64
	DistanceMax *float64

	VelocityMin *float64
	VelocityMax *float64

	DiameterMin *float64
	DiameterMax *float64

	Hazardous *bool
}

// CreateFilters builds one AttributeFilter per criteria field that is set.
//
// When no field is set it returns nil, which the database's Query treats as
// "return everything". That nil is deliberate: an empty filter collection
// would also match everything under AND semantics, but callers that want to
// distinguish "user asked for no filtering" rely on the nil.
func CreateFilters(c Criteria) []AttributeFilter {
	var fs []AttributeFilter

	if c.Date != nil {
		fs = append(fs, DateFilter(OpEq, *c.Date))
	}
	if c.StartDate != nil {
		fs = append(fs, DateFilter(OpGe, *c.StartDate))
	}
	if c.EndDate != nil {
		fs = append(fs, DateFilter(OpLe, *c.EndDate))
	}
	if c.DistanceMin != nil {
		fs = append(fs, DistanceFilter(OpGe, *c.DistanceMin))
	}
	if c.DistanceMax != nil {
		fs = append(fs, DistanceFilter(OpLe, *c.DistanceMax))
	}
	if c.VelocityMin != nil {
		fs = append(fs, VelocityFilter(OpGe, *c.VelocityMin))
	}
	if c.VelocityMax != nil {
		fs = append(fs, VelocityFilter(OpLe, *c.VelocityMax))
	}
	if c.DiameterMin != nil {
		fs = append(fs, DiameterFilter(OpGe, *c.DiameterMin))
	}
	if c.DiameterMax != nil {
		fs = append(fs, DiameterFilter(OpLe, *c.DiameterMax))
	}
	if c.Hazardous != nil {
		fs = append(fs, HazardousFilter(OpEq, *c.Hazardous))
	}

	return fs
}

// Limit caps a lazy sequence at the first n elements. When n is zero or
// negative the sequence passes through untouched; zero means "no limit",
// never "produce nothing". Elements beyond the n-th are never pulled from
// the source.
func Limit[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	if n <= 0 {
		return seq
	}
	return func(yield func(T) bool) {
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}
}

// models/neo.go
package models

import (
	"fmt"
	"math"
)

// NearEarthObject represents a single near-Earth object from the NASA
// small-body dataset. Each NEO has a unique primary designation, an optional
// IAU name, an optional diameter in kilometers, and a flag marking whether it
// is classified as potentially hazardous.
//
// Diameter uses math.NaN() when the dataset does not record one. Name is the
// empty string when the object has not been named.
//
// Approaches starts empty and is populated by the database during the join
// phase; it is append-only and holds the object's close approaches in the
// order they appeared in the source data.
type NearEarthObject struct {
	Designation string
	Name        string
	Diameter    float64
	Hazardous   bool
	Approaches  []*CloseApproach
}

// NewNearEarthObject creates a NEO with no close approaches attached yet.
func NewNearEarthObject(designation, name string, diameter float64, hazardous bool) *NearEarthObject {
	return &NearEarthObject{
		Designation: designation,
		Name:        name,
		Diameter:    diameter,
		Hazardous:   hazardous,
	}
}

// HasName reports whether the object carries an IAU name.
func (n *NearEarthObject) HasName() bool {
	return n.Name != ""
}

// HasDiameter reports whether the dataset records a diameter for this object.
func (n *NearEarthObject) HasDiameter() bool {
	return !math.IsNaN(n.Diameter)
}

// FullName returns the designation, followed by the name in parentheses when
// the object has one, e.g. "433 (Eros)".
func (n *NearEarthObject) FullName() string {
	if n.HasName() {
		return fmt.Sprintf("%s (%s)", n.Designation, n.Name)
	}
	return n.Designation
}

// AddApproach appends a close approach to this object's collection.
// Called only by the database while it resolves the join.
func (n *NearEarthObject) AddApproach(approach *CloseApproach) {
	n.Approaches = append(n.Approaches, approach)
}

// String returns a human-readable description of the NEO.
func (n *NearEarthObject) String() string {
	verb := "is not"
	if n.Hazardous {
		verb = "is"
	}
	if !n.HasDiameter() {
		return fmt.Sprintf("NEO %s has an unknown diameter and %s potentially hazardous", n.FullName(), verb)
	}
	return fmt.Sprintf("NEO %s has a diameter of %.3f km and %s potentially hazardous", n.FullName(), n.Diameter, verb)
}

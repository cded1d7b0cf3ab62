// models/approach.go
package models

import (
	"fmt"
	"time"
)

// ApproachTimeLayout is the timestamp layout used by the NASA close-approach
// dataset, e.g. "2027-Apr-30 12:00". Seconds are never present on input.
const ApproachTimeLayout = "2006-Jan-02 15:04"

// CloseApproach represents one recorded close approach to Earth by an NEO:
// the approach time (UTC), the nominal approach distance in astronomical
// units, and the relative approach velocity in kilometers per second.
//
// Designation is the foreign key into the NEO dataset. NEO is nil until the
// database resolves the join; it stays nil when the designation does not
// exist in the NEO set, which is a data-quality quirk rather than an error.
type CloseApproach struct {
	Designation string
	Time        time.Time
	Distance    float64
	Velocity    float64
	NEO         *NearEarthObject
}

// NewCloseApproach creates a close approach with an unresolved NEO reference.
func NewCloseApproach(designation string, t time.Time, distance, velocity float64) *CloseApproach {
	return &CloseApproach{
		Designation: designation,
		Time:        t,
		Distance:    distance,
		Velocity:    velocity,
	}
}

// ParseApproachTime parses a timestamp in the dataset's calendar format.
func ParseApproachTime(value string) (time.Time, error) {
	t, err := time.ParseInLocation(ApproachTimeLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse approach time %q: %w", value, err)
	}
	return t, nil
}

// Date returns the calendar date of the approach with the time of day
// stripped. Used by date filters.
func (c *CloseApproach) Date() time.Time {
	year, month, day := c.Time.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// TimeString formats the approach time as "YYYY-MM-DD HH:MM". A seconds
// component is appended only when it is nonzero; the source data never
// carries seconds, so trailing ":00" would be false precision.
func (c *CloseApproach) TimeString() string {
	if c.Time.Second() != 0 {
		return c.Time.Format("2006-01-02 15:04:05")
	}
	return c.Time.Format("2006-01-02 15:04")
}

// Resolved reports whether the join has attached the NEO for this approach.
func (c *CloseApproach) Resolved() bool {
	return c.NEO != nil
}

// String returns a human-readable description of the close approach.
func (c *CloseApproach) String() string {
	who := c.Designation
	if c.NEO != nil {
		who = c.NEO.FullName()
	}
	return fmt.Sprintf("On %s, %s approaches Earth at a distance of %.2f au and a velocity of %.2f km/s",
		c.TimeString(), who, c.Distance, c.Velocity)
}

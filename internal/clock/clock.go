// Package clock supplies the reference "today" used by date computations.
//
// Domain code never reads the wall clock directly. Callers pass a time
// obtained from a Clock, and only the outermost layer (the CLI) picks
// System.
package clock

import (
	"fmt"
	"time"
)

// DateLayout is the dd/mm/yyyy layout shared by birth dates and --today.
const DateLayout = "02/01/2006"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in the local time zone.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }

// ParseDate parses a dd/mm/yyyy date at midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must use the dd/mm/yyyy format", s)
	}
	return t, nil
}

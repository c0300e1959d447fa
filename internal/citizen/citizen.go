// Package citizen extends person.Person with Mexican residency identifiers
// (CURP, RFC) and an age bracket classification.
//
// Citizen embeds a person.Person value, so the person setters, getters and
// computations are available directly on a Citizen.
package citizen

import (
	"regexp"

	"github.com/roach88/padron/internal/person"
)

var (
	// 4 letters, birth date yymmdd, sex, 5 letters, homoclave, check digit.
	curpPattern = regexp.MustCompile(`^[A-Z]{4}\d{6}[HM][A-Z]{5}[A-Z0-9]\d$`)

	// 4 letters (Ñ and & allowed), birth date yymmdd, 3 character homoclave.
	rfcPattern = regexp.MustCompile(`^[A-ZÑ&]{4}\d{6}[A-Z0-9]{3}$`)
)

var (
	ErrInvalidCURP  = person.NewInvalidArgument("curp", "invalid CURP")
	ErrMalformedRFC = person.NewInvalidArgument("rfc", "malformed RFC")
)

// Citizen is a person with a residence place and Mexican registry codes.
type Citizen struct {
	person.Person

	residencePlace string
	curp           string
	rfc            string
}

// New creates a Citizen from validated person fields. The residence place
// and registry codes start empty.
func New(name string, age int, height, weight float64) (*Citizen, error) {
	p, err := person.New(name, age, height, weight)
	if err != nil {
		return nil, err
	}
	return &Citizen{Person: *p}, nil
}

// NewIdentified creates a Citizen carrying only the residence place and
// registry codes. The person fields keep their zero values.
func NewIdentified(residencePlace, curp, rfc string) (*Citizen, error) {
	c := &Citizen{residencePlace: residencePlace}
	if err := c.SetCURP(curp); err != nil {
		return nil, err
	}
	if err := c.SetRFC(rfc); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Citizen) ResidencePlace() string { return c.residencePlace }
func (c *Citizen) CURP() string           { return c.curp }
func (c *Citizen) RFC() string            { return c.rfc }

func (c *Citizen) SetResidencePlace(place string) {
	c.residencePlace = place
}

// SetCURP stores an 18 character CURP. An empty value is rejected.
func (c *Citizen) SetCURP(curp string) error {
	if !curpPattern.MatchString(curp) {
		return ErrInvalidCURP
	}
	c.curp = curp
	return nil
}

// SetRFC stores a 13 character RFC. An empty value is rejected.
//
// The age of the citizen is not consulted: minors are not barred from
// holding an RFC here.
func (c *Citizen) SetRFC(rfc string) error {
	if !rfcPattern.MatchString(rfc) {
		return ErrMalformedRFC
	}
	c.rfc = rfc
	return nil
}

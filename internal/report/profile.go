// Package report summarises a citizen and its derived values for output.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/roach88/padron/internal/citizen"
	"github.com/roach88/padron/internal/clock"
	"github.com/roach88/padron/internal/person"
)

// Profile is the printable summary of a citizen.
type Profile struct {
	Name           string             `json:"name"`
	Age            int                `json:"age"`
	Height         float64            `json:"height"`
	Weight         float64            `json:"weight"`
	Residence      string             `json:"residence,omitempty"`
	CURP           string             `json:"curp,omitempty"`
	RFC            string             `json:"rfc,omitempty"`
	BirthDate      string             `json:"birth_date,omitempty"`
	DaysLived      *int               `json:"days_lived,omitempty"`
	BMI            *float64           `json:"bmi,omitempty"`
	BMIError       string             `json:"bmi_error,omitempty"`
	Classification citizen.AgeBracket `json:"classification"`
	Today          string             `json:"today"`
}

// Build computes the profile of c as of today. birthDate is optional; when
// given it must be a dd/mm/yyyy date not after today.
//
// A zero height does not fail the profile: BMIError carries the reason.
func Build(c *citizen.Citizen, birthDate string, today time.Time) (*Profile, error) {
	bracket, err := c.Classification()
	if err != nil {
		return nil, err
	}

	p := &Profile{
		Name:           c.Name(),
		Age:            c.Age(),
		Height:         c.Height(),
		Weight:         c.Weight(),
		Residence:      c.ResidencePlace(),
		CURP:           c.CURP(),
		RFC:            c.RFC(),
		BirthDate:      birthDate,
		Classification: bracket,
		Today:          today.Format(clock.DateLayout),
	}

	if birthDate != "" {
		days, err := c.DaysLivedSince(birthDate, today)
		if err != nil {
			return nil, err
		}
		p.DaysLived = &days
	}

	if bmi, err := c.BodyMassIndex(); err != nil {
		p.BMIError = person.Message(err)
	} else {
		p.BMI = &bmi
	}

	return p, nil
}

// WriteText renders p as aligned "label value" lines. Empty optional
// fields are skipped.
func (p *Profile) WriteText(w io.Writer) error {
	lines := [][2]string{
		{"Name", p.Name},
		{"Age", strconv.Itoa(p.Age)},
		{"Height", formatFloat(p.Height) + " m"},
		{"Weight", formatFloat(p.Weight) + " kg"},
		{"Residence", p.Residence},
		{"CURP", p.CURP},
		{"RFC", p.RFC},
		{"Birth date", p.BirthDate},
	}
	if p.DaysLived != nil {
		lines = append(lines, [2]string{"Days lived", fmt.Sprintf("%d (as of %s)", *p.DaysLived, p.Today)})
	}
	if p.BMI != nil {
		lines = append(lines, [2]string{"BMI", fmt.Sprintf("%.2f", *p.BMI)})
	} else {
		lines = append(lines, [2]string{"BMI", "n/a (" + p.BMIError + ")"})
	}
	lines = append(lines, [2]string{"Classification", p.Classification.String()})

	for _, l := range lines {
		if l[1] == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%-16s%s\n", l[0], l[1]); err != nil {
			return err
		}
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

package record

import (
	"errors"
	"fmt"
	"time"

	"github.com/roach88/padron/internal/person"
	"github.com/roach88/padron/internal/report"
)

// Result is the outcome of checking one record.
type Result struct {
	Index   int             `json:"index"`
	Name    string          `json:"name"`
	Valid   bool            `json:"valid"`
	Errors  []string        `json:"errors,omitempty"`
	Profile *report.Profile `json:"profile,omitempty"`
}

// CheckReport summarises a record file.
type CheckReport struct {
	Results []Result `json:"results"`
	Valid   int      `json:"valid"`
	Invalid int      `json:"invalid"`
	Total   int      `json:"total"`
}

// Check builds every record and, for the valid ones, computes the profile
// as of today. A birth date in the future or in the wrong format makes
// the record invalid.
func Check(records []Record, today time.Time) CheckReport {
	rep := CheckReport{
		Results: make([]Result, 0, len(records)),
		Total:   len(records),
	}

	for i, r := range records {
		res := Result{Index: i, Name: r.Name}

		c, errs := r.Build()
		if len(errs) == 0 {
			p, err := report.Build(c, r.BirthDate, today)
			if err != nil {
				errs = append(errs, err)
			} else {
				res.Profile = p
			}
		}

		for _, err := range errs {
			res.Errors = append(res.Errors, describe(err))
		}
		res.Valid = len(errs) == 0

		if res.Valid {
			rep.Valid++
		} else {
			rep.Invalid++
		}
		rep.Results = append(rep.Results, res)
	}

	return rep
}

// describe renders err as "field: message" when it is a person error.
func describe(err error) string {
	var pe *person.Error
	if errors.As(err, &pe) {
		return fmt.Sprintf("%s: %s", pe.Field, pe.Message)
	}
	return err.Error()
}

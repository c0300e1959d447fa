// Package record loads citizen records from YAML or CUE files and checks
// them against the citizen rules.
//
// # File Format
//
// Both formats carry a top-level list named records:
//
//	records:
//	  - name: Raul Hernandez
//	    age: 32
//	    height: 1.63
//	    weight: 72.6
//	    birth_date: 12/02/1994
//	    residence: Guerrero
//	    curp: HERR940212HGRRNL07
//	    rfc: HERR940212AB1
//
// name, age, height and weight are required; the rest are optional.
package record

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/roach88/padron/internal/citizen"
	"github.com/roach88/padron/internal/person"
)

// Record is one citizen as read from a file. Numeric fields are pointers
// so a missing value can be told apart from zero.
type Record struct {
	Name      string   `yaml:"name" json:"name"`
	Age       *int     `yaml:"age" json:"age"`
	Height    *float64 `yaml:"height" json:"height"`
	Weight    *float64 `yaml:"weight" json:"weight"`
	BirthDate string   `yaml:"birth_date,omitempty" json:"birth_date,omitempty"`
	Residence string   `yaml:"residence,omitempty" json:"residence,omitempty"`
	CURP      string   `yaml:"curp,omitempty" json:"curp,omitempty"`
	RFC       string   `yaml:"rfc,omitempty" json:"rfc,omitempty"`
}

type file struct {
	Records []Record `yaml:"records" json:"records"`
}

var (
	ErrAgeRequired    = person.NewInvalidArgument("age", "age is required")
	ErrHeightRequired = person.NewInvalidArgument("height", "height is required")
	ErrWeightRequired = person.NewInvalidArgument("weight", "weight is required")
)

// Load reads records from path, choosing the decoder by file extension.
func Load(path string) ([]Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".cue":
		return LoadCUE(path)
	default:
		return nil, fmt.Errorf("unsupported record file %q: want .yaml, .yml or .cue", path)
	}
}

// Build runs every field through the citizen setters and returns all
// failures, not only the first one. Empty CURP and RFC are left unset.
func (r Record) Build() (*citizen.Citizen, []error) {
	c := &citizen.Citizen{}
	var errs []error
	check := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	check(c.SetName(r.Name))

	if r.Age == nil {
		check(ErrAgeRequired)
	} else {
		check(c.SetAge(*r.Age))
	}
	if r.Height == nil {
		check(ErrHeightRequired)
	} else {
		check(c.SetHeight(*r.Height))
	}
	if r.Weight == nil {
		check(ErrWeightRequired)
	} else {
		check(c.SetWeight(*r.Weight))
	}

	c.SetResidencePlace(r.Residence)
	if r.CURP != "" {
		check(c.SetCURP(r.CURP))
	}
	if r.RFC != "" {
		check(c.SetRFC(r.RFC))
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return c, nil
}

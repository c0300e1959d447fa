package citizen

import "github.com/roach88/padron/internal/person"

// AgeBracket is the age-based classification label of a citizen.
type AgeBracket string

const (
	Minor       AgeBracket = "minor"        // 0-17
	Adult       AgeBracket = "adult"        // 18-64
	SeniorAdult AgeBracket = "senior adult" // 65 and over
)

// Age limits (inclusive lower bounds) of the adult brackets.
const (
	AdultAge       = 18
	SeniorAdultAge = 65
)

func (b AgeBracket) String() string { return string(b) }

// Classify returns the bracket for age. Negative ages are rejected with
// person.ErrNegativeAge.
func Classify(age int) (AgeBracket, error) {
	switch {
	case age < 0:
		return "", person.ErrNegativeAge
	case age < AdultAge:
		return Minor, nil
	case age < SeniorAdultAge:
		return Adult, nil
	default:
		return SeniorAdult, nil
	}
}

// Classification returns the bracket for the citizen's current age.
func (c *Citizen) Classification() (AgeBracket, error) {
	return Classify(c.Age())
}

// ParseAgeBracket maps a label back to its AgeBracket.
func ParseAgeBracket(label string) (AgeBracket, bool) {
	switch b := AgeBracket(label); b {
	case Minor, Adult, SeniorAdult:
		return b, true
	}
	return "", false
}

package person

import (
	"regexp"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/padron/internal/clock"
)

// namePattern accepts one or more capitalized words separated by single spaces.
// Accented capitals are limited to the Spanish vowels.
var namePattern = regexp.MustCompile(`^[A-ZÁÉÍÓÚ][a-zñáéíóú]+(\s[A-ZÁÉÍÓÚ][a-zñáéíóú]+)*$`)

// Person holds validated demographic data.
//
// The zero value is an empty person; populate it through the setters.
// Every setter leaves the person unchanged when it returns an error.
type Person struct {
	name   string
	age    int
	height float64 // meters
	weight float64 // kilograms
}

// New creates a Person, running every field through its setter.
// The first rejected field is returned as the error.
func New(name string, age int, height, weight float64) (*Person, error) {
	p := &Person{}
	if err := p.SetName(name); err != nil {
		return nil, err
	}
	if err := p.SetAge(age); err != nil {
		return nil, err
	}
	if err := p.SetHeight(height); err != nil {
		return nil, err
	}
	if err := p.SetWeight(weight); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Person) Name() string    { return p.name }
func (p *Person) Age() int        { return p.age }
func (p *Person) Height() float64 { return p.height }
func (p *Person) Weight() float64 { return p.weight }

// SetName stores name in NFC form. An empty string counts as absent.
func (p *Person) SetName(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	name = norm.NFC.String(name)
	if !namePattern.MatchString(name) {
		return ErrNameFormat
	}
	p.name = name
	return nil
}

func (p *Person) SetAge(age int) error {
	if age < 0 {
		return ErrNegativeAge
	}
	p.age = age
	return nil
}

// SetHeight accepts zero even though BodyMassIndex cannot use it.
func (p *Person) SetHeight(height float64) error {
	if !(height >= 0) {
		return ErrNegativeHeight
	}
	p.height = height
	return nil
}

func (p *Person) SetWeight(weight float64) error {
	if !(weight > 0) {
		return ErrNonPositiveWeight
	}
	p.weight = weight
	return nil
}

// DaysLivedSince returns the number of calendar days between birthDate
// (dd/mm/yyyy) and the calendar date of today, in today's location.
func (p *Person) DaysLivedSince(birthDate string, today time.Time) (int, error) {
	born, err := time.ParseInLocation(clock.DateLayout, birthDate, today.Location())
	if err != nil {
		return 0, ErrBirthDateFormat
	}

	days := civilDay(today) - civilDay(born)
	if days < 0 {
		return 0, ErrFutureBirthDate
	}
	return int(days), nil
}

// BodyMassIndex returns weight / height².
func (p *Person) BodyMassIndex() (float64, error) {
	if p.height <= 0 {
		return 0, ErrZeroHeight
	}
	return p.weight / (p.height * p.height), nil
}

// civilDay maps the calendar date of t to a day count since the Unix epoch,
// ignoring time of day and DST offsets.
func civilDay(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

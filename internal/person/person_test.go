package person

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p, err := New("Raul Hernandez", 32, 1.63, 72.6)
	require.NoError(t, err)

	assert.Equal(t, "Raul Hernandez", p.Name())
	assert.Equal(t, 32, p.Age())
	assert.Equal(t, 1.63, p.Height())
	assert.Equal(t, 72.6, p.Weight())
}

func TestNewRejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name   string
		pName  string
		age    int
		height float64
		weight float64
		want   error
	}{
		{"empty name", "", 30, 1.7, 70, ErrNameRequired},
		{"lowercase name", "ana hernandez", 30, 1.7, 70, ErrNameFormat},
		{"negative age", "Ana", -1, 1.7, 70, ErrNegativeAge},
		{"negative height", "Ana", 30, -0.1, 70, ErrNegativeHeight},
		{"zero weight", "Ana", 30, 1.7, 0, ErrNonPositiveWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.pName, tt.age, tt.height, tt.weight)
			require.Error(t, err)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, IsInvalidArgument(err))
		})
	}
}

func TestSetName(t *testing.T) {
	valid := []string{
		"Ana",
		"Raul Hernandez",
		"Ángel Núñez",
		"María José Ibáñez",
		"Óscar",
	}
	for _, name := range valid {
		t.Run("valid/"+name, func(t *testing.T) {
			var p Person
			require.NoError(t, p.SetName(name))
			assert.Equal(t, name, p.Name())
		})
	}

	invalid := []string{
		"ana hernandez",
		"Ana  Hernandez",
		"Ana hernandez",
		"A",
		"ANA",
		"Ana-Maria",
		"Ana!",
		"Ana ",
		" Ana",
		"Ñandu",
	}
	for _, name := range invalid {
		t.Run("invalid/"+name, func(t *testing.T) {
			var p Person
			err := p.SetName(name)
			assert.ErrorIs(t, err, ErrNameFormat)
			assert.Empty(t, p.Name())
		})
	}
}

func TestSetNameMessages(t *testing.T) {
	var p Person

	err := p.SetName("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a name must be provided")

	err = p.SetName("ana hernandez")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid name; must start with a capital letter")
}

func TestSetNameNormalizesToNFC(t *testing.T) {
	var p Person

	// "José" with a combining acute accent.
	require.NoError(t, p.SetName("Jose\u0301"))
	assert.Equal(t, "José", p.Name())
}

func TestSetNameKeepsPreviousValueOnError(t *testing.T) {
	var p Person
	require.NoError(t, p.SetName("Lucia"))

	require.Error(t, p.SetName("lucia"))
	require.Error(t, p.SetName(""))
	assert.Equal(t, "Lucia", p.Name())
}

func TestSetAge(t *testing.T) {
	var p Person
	require.NoError(t, p.SetAge(0))
	require.NoError(t, p.SetAge(40))
	assert.Equal(t, 40, p.Age())

	err := p.SetAge(-12)
	assert.ErrorIs(t, err, ErrNegativeAge)
	assert.Contains(t, err.Error(), "age cannot be negative")
	assert.Equal(t, 40, p.Age())
}

func TestSetHeight(t *testing.T) {
	var p Person
	require.NoError(t, p.SetHeight(1.75))

	err := p.SetHeight(-1)
	assert.ErrorIs(t, err, ErrNegativeHeight)
	assert.Equal(t, 1.75, p.Height())

	// Zero is accepted here; BodyMassIndex rejects it later.
	require.NoError(t, p.SetHeight(0))
	assert.Equal(t, 0.0, p.Height())
}

func TestSetWeight(t *testing.T) {
	var p Person
	require.NoError(t, p.SetWeight(0.5))

	for _, w := range []float64{0, -3.2} {
		err := p.SetWeight(w)
		assert.ErrorIs(t, err, ErrNonPositiveWeight)
		assert.Contains(t, err.Error(), "weight cannot be negative or zero")
	}
	assert.Equal(t, 0.5, p.Weight())
}

func TestBodyMassIndex(t *testing.T) {
	p, err := New("Raul Hernandez", 32, 1.63, 72.6)
	require.NoError(t, err)

	bmi, err := p.BodyMassIndex()
	require.NoError(t, err)
	assert.InDelta(t, 27.325, bmi, 0.001)
}

func TestBodyMassIndexFormula(t *testing.T) {
	for _, h := range []float64{0.5, 1.2, 1.63, 2.1} {
		for _, w := range []float64{3.5, 50, 72.6, 140} {
			t.Run(fmt.Sprintf("%v/%v", h, w), func(t *testing.T) {
				p, err := New("Ana", 20, h, w)
				require.NoError(t, err)

				bmi, err := p.BodyMassIndex()
				require.NoError(t, err)
				assert.InDelta(t, w/(h*h), bmi, 1e-9)
			})
		}
	}
}

func TestBodyMassIndexZeroHeight(t *testing.T) {
	p, err := New("Ana", 20, 0, 60)
	require.NoError(t, err)

	_, err = p.BodyMassIndex()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrZeroHeight)
	assert.True(t, IsArithmetic(err))
	assert.False(t, IsInvalidArgument(err))
}

func TestDaysLivedSince(t *testing.T) {
	today := time.Date(2026, time.October, 16, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		birth string
		want  int
	}{
		{"16/10/2026", 0},
		{"15/10/2026", 1},
		{"16/10/2025", 365},
		{"16/10/2024", 730},
		{"01/01/2000", 9785},
		{"31/12/1969", 20743},
	}

	var p Person
	for _, tt := range tests {
		t.Run(tt.birth, func(t *testing.T) {
			got, err := p.DaysLivedSince(tt.birth, today)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDaysLivedSinceLeapDay(t *testing.T) {
	var p Person
	today := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	got, err := p.DaysLivedSince("29/02/2024", today)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestDaysLivedSinceIgnoresTimeOfDay(t *testing.T) {
	var p Person
	loc := time.FixedZone("CST", -6*60*60)

	early := time.Date(2026, time.October, 16, 0, 0, 1, 0, loc)
	late := time.Date(2026, time.October, 16, 23, 59, 59, 0, loc)

	a, err := p.DaysLivedSince("15/10/2026", early)
	require.NoError(t, err)
	b, err := p.DaysLivedSince("15/10/2026", late)
	require.NoError(t, err)
	assert.Equal(t, 1, a)
	assert.Equal(t, a, b)
}

func TestDaysLivedSinceFutureDate(t *testing.T) {
	var p Person
	today := time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC)

	for _, birth := range []string{"17/10/2026", "23/03/2028"} {
		_, err := p.DaysLivedSince(birth, today)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFutureBirthDate)
		assert.True(t, IsInvalidArgument(err))
	}
}

func TestDaysLivedSinceBadFormat(t *testing.T) {
	var p Person
	today := time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC)

	for _, birth := range []string{"", "2000-01-01", "1/1/2000", "31/02/2000", "01/13/2000", "hoy"} {
		t.Run(birth, func(t *testing.T) {
			_, err := p.DaysLivedSince(birth, today)
			assert.ErrorIs(t, err, ErrBirthDateFormat)
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	wrapped := fmt.Errorf("record 3: %w", ErrNegativeAge)
	assert.True(t, IsInvalidArgument(wrapped))
	assert.False(t, IsArithmetic(wrapped))
	assert.True(t, errors.Is(wrapped, ErrNegativeAge))

	assert.False(t, IsInvalidArgument(errors.New("plain")))
	assert.False(t, IsArithmetic(nil))

	assert.Equal(t, "INVALID_ARGUMENT: age cannot be negative", ErrNegativeAge.Error())
	assert.Equal(t, "ARITHMETIC: cannot divide by zero height", ErrZeroHeight.Error())
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "cannot divide by zero height", Message(ErrZeroHeight))
	assert.Equal(t, "age cannot be negative", Message(fmt.Errorf("wrapped: %w", ErrNegativeAge)))
	assert.Equal(t, "plain", Message(errors.New("plain")))
}

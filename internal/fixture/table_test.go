package fixture

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadClassificationTable(t *testing.T) {
	rows, err := LoadClassificationTable(filepath.Join("testdata", "classification.csv"))
	require.NoError(t, err)
	require.Len(t, rows, 11)

	assert.Equal(t, ClassificationRow{Line: 3, Age: -12, Expected: ExpectError}, rows[0])
	assert.Equal(t, ClassificationRow{Line: 11, Age: 65, Expected: "senior adult"}, rows[8])
}

func TestLoadClassificationTableMissingFile(t *testing.T) {
	_, err := LoadClassificationTable(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open table")
}

func TestParseClassificationTable(t *testing.T) {
	input := "3, minor\n  40 ,adult\n"

	rows, err := ParseClassificationTable(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []ClassificationRow{
		{Line: 1, Age: 3, Expected: "minor"},
		{Line: 2, Age: 40, Expected: "adult"},
	}, rows)
}

func TestParseClassificationTableErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty", "", "no rows"},
		{"header only", "age,expected\n", "no rows"},
		{"bad age", "age,expected\nten,minor\n", `line 2: age "ten" is not an integer`},
		{"bad label", "10,child\n", `line 1: unknown label "child"`},
		{"spanish label", "70,Adulto mayor\n", "unknown label"},
		{"extra column", "10,minor,x\n", "wrong number of fields"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseClassificationTable(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRunClassificationTable(t *testing.T) {
	rows, err := LoadClassificationTable(filepath.Join("testdata", "classification.csv"))
	require.NoError(t, err)

	report := RunClassificationTable(rows)
	assert.Equal(t, 11, report.Total)
	assert.Equal(t, 11, report.Passed)
	assert.Zero(t, report.Failed)
	assert.Empty(t, report.Failures())
}

func TestRunClassificationTableReportsMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("17,adult\n18,adult\n-3,minor\n"), 0644))

	rows, err := LoadClassificationTable(path)
	require.NoError(t, err)

	report := RunClassificationTable(rows)
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 2, report.Failed)

	failures := report.Failures()
	require.Len(t, failures, 2)
	assert.Equal(t, 17, failures[0].Age)
	assert.Equal(t, "minor", failures[0].Got)
	assert.Equal(t, -3, failures[1].Age)
	assert.Equal(t, ExpectError, failures[1].Got)
}

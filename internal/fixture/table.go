package fixture

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/roach88/padron/internal/citizen"
)

// ExpectError is the label for rows whose age must be rejected.
const ExpectError = "error"

// ClassificationRow is one age/label pair from a table.
type ClassificationRow struct {
	Line     int    `json:"line"`
	Age      int    `json:"age"`
	Expected string `json:"expected"`
}

// RowResult is the outcome of checking one row.
type RowResult struct {
	ClassificationRow
	Got  string `json:"got"`
	Pass bool   `json:"pass"`
}

// TableReport holds the outcome of a whole table.
type TableReport struct {
	Rows   []RowResult `json:"rows"`
	Passed int         `json:"passed"`
	Failed int         `json:"failed"`
	Total  int         `json:"total"`
}

// LoadClassificationTable reads and parses a table file.
func LoadClassificationTable(path string) ([]ClassificationRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table: %w", err)
	}
	defer f.Close()

	rows, err := ParseClassificationTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// ParseClassificationTable parses table rows from r.
func ParseClassificationTable(r io.Reader) ([]ClassificationRow, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	var rows []ClassificationRow
	for first := true; ; first = false {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		ageField := strings.TrimSpace(record[0])
		label := strings.TrimSpace(record[1])
		if first && strings.EqualFold(ageField, "age") {
			continue
		}

		age, err := strconv.Atoi(ageField)
		if err != nil {
			return nil, fmt.Errorf("line %d: age %q is not an integer", line, ageField)
		}
		if _, ok := citizen.ParseAgeBracket(label); !ok && label != ExpectError {
			return nil, fmt.Errorf("line %d: unknown label %q", line, label)
		}

		rows = append(rows, ClassificationRow{Line: line, Age: age, Expected: label})
	}

	if len(rows) == 0 {
		return nil, errors.New("table has no rows")
	}
	return rows, nil
}

// RunClassificationTable classifies every row and compares the label.
func RunClassificationTable(rows []ClassificationRow) TableReport {
	report := TableReport{
		Rows:  make([]RowResult, 0, len(rows)),
		Total: len(rows),
	}

	for _, row := range rows {
		res := RowResult{ClassificationRow: row}

		bracket, err := citizen.Classify(row.Age)
		if err != nil {
			res.Got = ExpectError
		} else {
			res.Got = bracket.String()
		}
		res.Pass = res.Got == row.Expected

		if res.Pass {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Rows = append(report.Rows, res)
	}

	return report
}

// Failures returns the rows that did not match.
func (r TableReport) Failures() []RowResult {
	var out []RowResult
	for _, row := range r.Rows {
		if !row.Pass {
			out = append(out, row)
		}
	}
	return out
}

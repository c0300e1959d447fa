package record

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

//go:embed schema.cue
var schemaSource string

// ErrNoRecords is returned for files without any record.
var ErrNoRecords = errors.New("no records found")

// SchemaError reports CUE parse or schema violations, one Issue per
// underlying CUE error.
type SchemaError struct {
	Path   string
	Issues []Issue
}

// Issue is a single CUE error with its source line (0 when unknown).
type Issue struct {
	Line    int    `json:"line,omitempty"`
	Message string `json:"message"`
}

func (e *SchemaError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		if is.Line > 0 {
			msgs[i] = fmt.Sprintf("line %d: %s", is.Line, is.Message)
		} else {
			msgs[i] = is.Message
		}
	}
	return fmt.Sprintf("%s: %s", e.Path, strings.Join(msgs, "; "))
}

// LoadCUE reads a CUE record file and checks it against the record schema.
func LoadCUE(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}
	return ParseCUE(path, data)
}

// ParseCUE compiles CUE record data named filename, unifies it with the
// record schema and decodes the records.
func ParseCUE(filename string, data []byte) ([]Record, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("record schema: %w", err)
	}

	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, newSchemaError(filename, err)
	}

	v = schema.Unify(v)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, newSchemaError(filename, err)
	}

	var f file
	if err := v.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	if len(f.Records) == 0 {
		return nil, ErrNoRecords
	}
	return f.Records, nil
}

func newSchemaError(path string, err error) *SchemaError {
	se := &SchemaError{Path: path}
	for _, e := range cueerrors.Errors(err) {
		se.Issues = append(se.Issues, Issue{
			Line:    lineOf(e, path),
			Message: e.Error(),
		})
	}
	if len(se.Issues) == 0 {
		se.Issues = append(se.Issues, Issue{Message: err.Error()})
	}
	return se
}

// lineOf returns the line of the first position of e inside filename,
// so schema-side positions do not point into the embedded schema.
func lineOf(e cueerrors.Error, filename string) int {
	positions := append([]token.Pos{e.Position()}, e.InputPositions()...)
	for _, pos := range positions {
		if pos.IsValid() && pos.Filename() == filename {
			return pos.Line()
		}
	}
	return 0
}

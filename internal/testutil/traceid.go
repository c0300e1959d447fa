package testutil

// FixedTraceID returns the same trace id every time.
//
// CLI tests use it in place of the UUIDv7 generator so JSON responses are
// byte-identical across runs.
type FixedTraceID struct {
	id string
}

// NewFixedTraceID creates a fixed trace id generator.
// If id is empty, Generate() returns "test-trace-default".
func NewFixedTraceID(id string) *FixedTraceID {
	if id == "" {
		id = "test-trace-default"
	}
	return &FixedTraceID{id: id}
}

// Generate returns the fixed trace id.
func (g *FixedTraceID) Generate() string {
	return g.id
}

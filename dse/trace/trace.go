package trace

// TraceLevel controls the verbosity of search tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures the verdict for every enumerated configuration.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// Enabled reports whether records should be collected.
func (c TraceConfig) Enabled() bool {
	return c.Level == TraceLevelDecisions
}

// SearchTrace collects candidate records during one search, in enumeration order.
type SearchTrace struct {
	Config     TraceConfig
	Candidates []CandidateRecord
}

// NewSearchTrace creates a SearchTrace ready for recording.
func NewSearchTrace(config TraceConfig) *SearchTrace {
	return &SearchTrace{
		Config:     config,
		Candidates: make([]CandidateRecord, 0),
	}
}

// RecordCandidate appends a candidate record.
func (st *SearchTrace) RecordCandidate(record CandidateRecord) {
	st.Candidates = append(st.Candidates, record)
}

// Append moves all records of other to the end of st. A nil other is a no-op.
func (st *SearchTrace) Append(other *SearchTrace) {
	if other == nil {
		return
	}
	st.Candidates = append(st.Candidates, other.Candidates...)
}

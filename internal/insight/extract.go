package insight

import (
	"fmt"
	"strings"

	"careersight/internal/util/jsonutil"
)

// ExtractionError reports model output that could not be turned into a
// valid report. Raw carries the untouched model text for logging.
type ExtractionError struct {
	Raw    string
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("insight: extract: %s: %v", e.Reason, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Extract strips incidental markdown framing from raw model output,
// decodes it and validates the result against the report schema.
// It never guesses: anything short of a fully valid report is returned
// as an ExtractionError.
func Extract(raw string) (Report, error) {
	cleaned := stripFences(raw)

	candidate, err := jsonutil.Decode([]byte(cleaned))
	if err != nil {
		return Report{}, &ExtractionError{Raw: raw, Reason: "decode", Err: err}
	}
	rep, err := Validate(candidate)
	if err != nil {
		return Report{}, &ExtractionError{Raw: raw, Reason: "schema", Err: err}
	}
	return rep, nil
}

// stripFences removes a leading ``` or ```json fence line and a trailing
// ``` fence, plus surrounding whitespace. Text without fences passes
// through unchanged.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
		s = strings.TrimPrefix(s, "json")
		if i := strings.IndexByte(s, '\n'); i >= 0 && strings.TrimSpace(s[:i]) == "" {
			s = s[i+1:]
		}
	}
	if strings.HasSuffix(strings.TrimSpace(s), "```") {
		s = strings.TrimSpace(s)
		s = s[:len(s)-len("```")]
	}
	return strings.TrimSpace(s)
}

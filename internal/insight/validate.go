package insight

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValidationError reports the first field that violated the report schema.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "insight: " + e.Rule
	}
	return fmt.Sprintf("insight: field %q %s", e.Field, e.Rule)
}

// Validate checks arbitrary decoded JSON against the report schema and
// returns a typed Report. It fails fast on the first violated constraint.
// The only coercion performed is numeric string to number; everything else
// is a validation failure, not a silent fix.
func Validate(candidate any) (Report, error) {
	obj, ok := candidate.(map[string]any)
	if !ok {
		return Report{}, &ValidationError{Rule: "payload is not a JSON object"}
	}

	var rep Report

	ranges, err := salaryRangesField(obj, "salaryRanges")
	if err != nil {
		return Report{}, err
	}
	rep.SalaryRanges = ranges

	growth, err := numberField(obj, "growthRate")
	if err != nil {
		return Report{}, err
	}
	rep.GrowthRate = growth

	demand, err := enumField(obj, "demandLevel", string(DemandHigh), string(DemandMedium), string(DemandLow))
	if err != nil {
		return Report{}, err
	}
	rep.DemandLevel = DemandLevel(demand)

	skills, err := stringsField(obj, "topSkills", MinTopSkills)
	if err != nil {
		return Report{}, err
	}
	rep.TopSkills = skills

	outlook, err := enumField(obj, "marketOutlook", string(OutlookPositive), string(OutlookNeutral), string(OutlookNegative))
	if err != nil {
		return Report{}, err
	}
	rep.MarketOutlook = MarketOutlook(outlook)

	trends, err := stringsField(obj, "keyTrends", MinKeyTrends)
	if err != nil {
		return Report{}, err
	}
	rep.KeyTrends = trends

	recommended, err := stringsField(obj, "recommendedSkills", 0)
	if err != nil {
		return Report{}, err
	}
	rep.RecommendedSkills = recommended

	if cat, ok := obj["category"]; ok {
		s, ok := cat.(string)
		if !ok {
			return Report{}, &ValidationError{Field: "category", Rule: "must be a string"}
		}
		rep.Category = strings.TrimSpace(s)
	}

	return rep, nil
}

func salaryRangesField(obj map[string]any, field string) ([]SalaryRange, error) {
	raw, ok := obj[field]
	if !ok {
		return nil, &ValidationError{Field: field, Rule: "is required"}
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, &ValidationError{Field: field, Rule: "must be an array"}
	}
	if len(list) < MinSalaryRanges {
		return nil, &ValidationError{Field: field, Rule: fmt.Sprintf("must have at least %d entries", MinSalaryRanges)}
	}
	out := make([]SalaryRange, 0, len(list))
	for i, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, &ValidationError{Field: indexed(field, i), Rule: "must be an object"}
		}
		var sr SalaryRange
		role, err := stringField(entry, indexed(field, i)+".role", "role")
		if err != nil {
			return nil, err
		}
		sr.Role = role
		for _, num := range []struct {
			key string
			dst *float64
		}{
			{"min", &sr.Min},
			{"max", &sr.Max},
			{"median", &sr.Median},
		} {
			v, err := numberValue(entry, indexed(field, i)+"."+num.key, num.key)
			if err != nil {
				return nil, err
			}
			*num.dst = v
		}
		loc, err := stringField(entry, indexed(field, i)+".location", "location")
		if err != nil {
			return nil, err
		}
		sr.Location = loc
		out = append(out, sr)
	}
	return out, nil
}

func stringField(obj map[string]any, path, key string) (string, error) {
	raw, ok := obj[key]
	if !ok {
		return "", &ValidationError{Field: path, Rule: "is required"}
	}
	s, ok := raw.(string)
	if !ok {
		return "", &ValidationError{Field: path, Rule: "must be a string"}
	}
	return s, nil
}

func numberField(obj map[string]any, field string) (float64, error) {
	return numberValue(obj, field, field)
}

func numberValue(obj map[string]any, path, key string) (float64, error) {
	raw, ok := obj[key]
	if !ok {
		return 0, &ValidationError{Field: path, Rule: "is required"}
	}
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, &ValidationError{Field: path, Rule: "must be a finite number"}
		}
		return v, nil
	case string:
		// Models occasionally quote numbers; normalize them here.
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, &ValidationError{Field: path, Rule: "must be a finite number"}
		}
		return f, nil
	default:
		return 0, &ValidationError{Field: path, Rule: "must be a number"}
	}
}

func enumField(obj map[string]any, field string, allowed ...string) (string, error) {
	raw, ok := obj[field]
	if !ok {
		return "", &ValidationError{Field: field, Rule: "is required"}
	}
	s, ok := raw.(string)
	if !ok {
		return "", &ValidationError{Field: field, Rule: "must be a string"}
	}
	for _, a := range allowed {
		if s == a {
			return s, nil
		}
	}
	return "", &ValidationError{Field: field, Rule: fmt.Sprintf("must be one of %s", strings.Join(allowed, "|"))}
}

func stringsField(obj map[string]any, field string, min int) ([]string, error) {
	raw, ok := obj[field]
	if !ok {
		return nil, &ValidationError{Field: field, Rule: "is required"}
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, &ValidationError{Field: field, Rule: "must be an array"}
	}
	if len(list) < min {
		return nil, &ValidationError{Field: field, Rule: fmt.Sprintf("must have at least %d entries", min)}
	}
	out := make([]string, 0, len(list))
	for i, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, &ValidationError{Field: indexed(field, i), Rule: "must be a string"}
		}
		out = append(out, s)
	}
	return out, nil
}

func indexed(field string, i int) string {
	return fmt.Sprintf("%s[%d]", field, i)
}

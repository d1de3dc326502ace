package insight

import (
	"encoding/json"
	"testing"
)

const validPayload = `{
  "salaryRanges": [
    {"role": "Data Engineer", "min": 90000, "max": 160000, "median": 120000, "location": "US"},
    {"role": "ML Engineer", "min": 100000, "max": 190000, "median": 140000, "location": "US"},
    {"role": "Backend Engineer", "min": 85000, "max": 150000, "median": 115000, "location": "US"},
    {"role": "SRE", "min": 95000, "max": 170000, "median": 130000, "location": "US"},
    {"role": "Engineering Manager", "min": 120000, "max": 220000, "median": 160000, "location": "US"}
  ],
  "growthRate": 12.5,
  "demandLevel": "High",
  "topSkills": ["Go", "SQL", "Kubernetes", "Terraform", "Observability"],
  "marketOutlook": "Positive",
  "keyTrends": ["AI adoption", "Platform teams", "Edge compute", "FinOps", "Security shift-left"],
  "recommendedSkills": ["Go", "Rust"]
}`

func decodePayload(t *testing.T, payload string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return v
}

func mutatedPayload(t *testing.T, mutate func(map[string]any)) any {
	t.Helper()
	obj := decodePayload(t, validPayload).(map[string]any)
	mutate(obj)
	return obj
}

func TestValidateAcceptsWellFormedReport(t *testing.T) {
	rep, err := Validate(decodePayload(t, validPayload))
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if got := len(rep.SalaryRanges); got != 5 {
		t.Fatalf("salaryRanges len = %d, want 5", got)
	}
	if rep.GrowthRate != 12.5 {
		t.Fatalf("growthRate = %v, want 12.5", rep.GrowthRate)
	}
	if rep.DemandLevel != DemandHigh {
		t.Fatalf("demandLevel = %q, want High", rep.DemandLevel)
	}
	if rep.MarketOutlook != OutlookPositive {
		t.Fatalf("marketOutlook = %q, want Positive", rep.MarketOutlook)
	}
	if rep.SalaryRanges[0].Role != "Data Engineer" {
		t.Fatalf("salaryRanges[0].role = %q", rep.SalaryRanges[0].Role)
	}
}

func TestValidateCoercesNumericStrings(t *testing.T) {
	v := mutatedPayload(t, func(obj map[string]any) {
		obj["growthRate"] = "12.5"
		obj["salaryRanges"].([]any)[0].(map[string]any)["min"] = "90000"
	})
	rep, err := Validate(v)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if rep.GrowthRate != 12.5 {
		t.Fatalf("growthRate = %v, want 12.5", rep.GrowthRate)
	}
	if rep.SalaryRanges[0].Min != 90000 {
		t.Fatalf("salaryRanges[0].min = %v, want 90000", rep.SalaryRanges[0].Min)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name      string
		candidate any
		wantField string
	}{
		{
			name:      "not an object",
			candidate: []any{"nope"},
			wantField: "",
		},
		{
			name: "missing growthRate",
			candidate: mutatedPayload(t, func(obj map[string]any) {
				delete(obj, "growthRate")
			}),
			wantField: "growthRate",
		},
		{
			name: "lowercase enum value",
			candidate: mutatedPayload(t, func(obj map[string]any) {
				obj["demandLevel"] = "high"
			}),
			wantField: "demandLevel",
		},
		{
			name: "too few salary ranges",
			candidate: mutatedPayload(t, func(obj map[string]any) {
				obj["salaryRanges"] = obj["salaryRanges"].([]any)[:4]
			}),
			wantField: "salaryRanges",
		},
		{
			name: "too few top skills",
			candidate: mutatedPayload(t, func(obj map[string]any) {
				obj["topSkills"] = []any{"Go", "SQL"}
			}),
			wantField: "topSkills",
		},
		{
			name: "non-numeric growth rate",
			candidate: mutatedPayload(t, func(obj map[string]any) {
				obj["growthRate"] = "fast"
			}),
			wantField: "growthRate",
		},
		{
			name: "non-finite growth rate",
			candidate: mutatedPayload(t, func(obj map[string]any) {
				obj["growthRate"] = "NaN"
			}),
			wantField: "growthRate",
		},
		{
			name: "salary range entry not an object",
			candidate: mutatedPayload(t, func(obj map[string]any) {
				list := obj["salaryRanges"].([]any)
				list[2] = "oops"
			}),
			wantField: "salaryRanges[2]",
		},
		{
			name: "trend entry not a string",
			candidate: mutatedPayload(t, func(obj map[string]any) {
				list := obj["keyTrends"].([]any)
				list[0] = 42.0
			}),
			wantField: "keyTrends[0]",
		},
		{
			name: "missing recommendedSkills",
			candidate: mutatedPayload(t, func(obj map[string]any) {
				delete(obj, "recommendedSkills")
			}),
			wantField: "recommendedSkills",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Validate(tc.candidate)
			if err == nil {
				t.Fatalf("Validate() error = nil, want rejection")
			}
			verr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("Validate() error type = %T, want *ValidationError", err)
			}
			if verr.Field != tc.wantField {
				t.Fatalf("ValidationError.Field = %q, want %q", verr.Field, tc.wantField)
			}
		})
	}
}

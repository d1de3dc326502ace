package insight

// Fallback returns a fixed, schema-valid report used whenever generation
// or extraction fails, so downstream consumers always have renderable
// data. Each call returns fresh slices; callers may mutate the result.
func Fallback() Report {
	return Report{
		SalaryRanges: []SalaryRange{
			{Role: "Senior Engineer", Min: 90000, Max: 180000, Median: 125000, Location: "US"},
			{Role: "Mid-level Engineer", Min: 60000, Max: 110000, Median: 80000, Location: "US"},
			{Role: "Junior Engineer", Min: 40000, Max: 70000, Median: 52000, Location: "US"},
			{Role: "Engineering Manager", Min: 110000, Max: 210000, Median: 150000, Location: "US"},
			{Role: "Product Manager", Min: 80000, Max: 160000, Median: 110000, Location: "US"},
		},
		GrowthRate:  3.5,
		DemandLevel: DemandMedium,
		TopSkills: []string{
			"Communication", "Problem Solving", "Coding", "Collaboration", "Adaptability",
		},
		MarketOutlook: OutlookNeutral,
		KeyTrends: []string{
			"Remote work", "AI-assisted development", "Microservices", "Cloud migration", "Continuous upskilling",
		},
		RecommendedSkills: []string{"TypeScript", "Cloud", "Testing"},
	}
}

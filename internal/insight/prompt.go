package insight

import "fmt"

// promptTemplate instructs the model to answer with a bare JSON object of
// the exact report shape. Deviations (prose, markdown fences, short lists)
// are handled by the extractor, not tolerated here.
const promptTemplate = `Analyze the current state of the %s industry and provide insights in ONLY the following JSON format without any additional notes or explanations:
{
  "salaryRanges": [
    { "role": "string", "min": number, "max": number, "median": number, "location": "string" }
  ],
  "growthRate": number,
  "demandLevel": "High" | "Medium" | "Low",
  "topSkills": ["skill1", "skill2"],
  "marketOutlook": "Positive" | "Neutral" | "Negative",
  "keyTrends": ["trend1", "trend2"],
  "recommendedSkills": ["skill1", "skill2"]
}

IMPORTANT: Return ONLY the JSON. No additional text, notes, or markdown formatting.
Include at least 5 common roles for salary ranges.
Growth rate should be a percentage.
Include at least 5 skills and trends.`

// BuildPrompt renders the fixed generation prompt for a category.
// The same category always yields the same prompt.
func BuildPrompt(category string) string {
	return fmt.Sprintf(promptTemplate, category)
}

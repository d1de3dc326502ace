package insight

// DemandLevel is the hiring-demand classification for a category.
type DemandLevel string

const (
	DemandHigh   DemandLevel = "High"
	DemandMedium DemandLevel = "Medium"
	DemandLow    DemandLevel = "Low"
)

// MarketOutlook is the overall market sentiment for a category.
type MarketOutlook string

const (
	OutlookPositive MarketOutlook = "Positive"
	OutlookNeutral  MarketOutlook = "Neutral"
	OutlookNegative MarketOutlook = "Negative"
)

// SalaryRange is one role's compensation band.
type SalaryRange struct {
	Role     string  `json:"role"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Location string  `json:"location"`
}

// Report is a synthesized analytical record for one industry category.
// Category is stamped by the pipeline from the request key; the model is
// never asked to echo it back.
type Report struct {
	Category          string        `json:"category,omitempty"`
	SalaryRanges      []SalaryRange `json:"salaryRanges"`
	GrowthRate        float64       `json:"growthRate"`
	DemandLevel       DemandLevel   `json:"demandLevel"`
	TopSkills         []string      `json:"topSkills"`
	MarketOutlook     MarketOutlook `json:"marketOutlook"`
	KeyTrends         []string      `json:"keyTrends"`
	RecommendedSkills []string      `json:"recommendedSkills"`
}

// MinSalaryRanges, MinTopSkills and MinKeyTrends are the minimum sequence
// lengths a report must carry to be considered renderable.
const (
	MinSalaryRanges = 5
	MinTopSkills    = 5
	MinKeyTrends    = 5
)

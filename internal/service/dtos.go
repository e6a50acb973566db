package service

// ResponseCount is one Likert category within a question's distribution.
// Percentage is relative to the question's recognized, non-empty responses.
type ResponseCount struct {
	Label      string `json:"label"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// QuestionDistribution holds the response breakdown for one classified
// question. Responses follow Likert scale order; zero-count categories are
// omitted.
type QuestionDistribution struct {
	Question  string          `json:"question"`
	Responses []ResponseCount `json:"responses"`
}

type RatedQuestion struct {
	Question   string `json:"question"`
	Percentage int    `json:"percentage"`
}

type ExecutiveSummary struct {
	TotalResponses      int           `json:"totalResponses"`
	HighestRated        RatedQuestion `json:"highestRated"`
	LowestRated         RatedQuestion `json:"lowestRated"`
	OverallSatisfaction int           `json:"overallSatisfaction"`
}

// SurveySummary is the executive summary plus the mean percentage of each
// Likert category across all classified questions, used for category badges.
type SurveySummary struct {
	ExecutiveSummary
	CategoryAverages map[string]int `json:"categoryAverages"`
}

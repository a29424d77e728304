package model

// CareerProfile is a static knowledge base entry. BaseMatchWeight feeds the
// evaluator's scoring; declaration order within a tier is the tie-break.
type CareerProfile struct {
	CareerPath      string   `json:"careerPath"`
	Description     string   `json:"description"`
	RequiredSkills  []string `json:"requiredSkills"`
	SalaryRange     string   `json:"salaryRange"`
	GrowthProspects string   `json:"growthProspects"`
	NextSteps       []string `json:"nextSteps"`
	BaseMatchWeight float64  `json:"baseMatchWeight"`
}

// CareerSuggestion is one ranked evaluation result. MatchPercentage is a
// relative score normalized against the best match of the same evaluation,
// not an absolute probability.
//
// swagger:model CareerSuggestion
type CareerSuggestion struct {
	CareerPath      string   `json:"careerPath"`
	MatchPercentage int      `json:"matchPercentage"`
	Description     string   `json:"description"`
	RequiredSkills  []string `json:"requiredSkills"`
	SalaryRange     string   `json:"salaryRange"`
	GrowthProspects string   `json:"growthProspects"`
	Steps           []string `json:"steps"`
}

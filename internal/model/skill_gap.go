package model

// SkillRecommendation describes how to close one missing skill.
type SkillRecommendation struct {
	Skill       string   `json:"skill"`
	Courses     []string `json:"courses"`
	Resources   []string `json:"resources"`
	TimeToLearn string   `json:"timeToLearn"`
}

// SkillGapReport is the set difference between a user's current skills and
// a target career's required skills, with one recommendation per missing
// skill in requiredSkills order.
//
// swagger:model SkillGapReport
type SkillGapReport struct {
	CareerPath      string                `json:"careerPath"`
	CurrentSkills   []string              `json:"currentSkills"`
	RequiredSkills  []string              `json:"requiredSkills"`
	MissingSkills   []string              `json:"missingSkills"`
	Recommendations []SkillRecommendation `json:"recommendations"`
}

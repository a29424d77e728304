package model

import "fmt"

// EducationTier gates which quiz catalog and knowledge base bucket apply.
type EducationTier string

const (
	TenthPass   EducationTier = "tenth"
	TwelfthPass EducationTier = "twelfth"
	Graduate    EducationTier = "graduate"
)

// Tiers lists all education tiers in their canonical order.
func Tiers() []EducationTier {
	return []EducationTier{TenthPass, TwelfthPass, Graduate}
}

func ParseEducationTier(s string) (EducationTier, error) {
	switch EducationTier(s) {
	case TenthPass, TwelfthPass, Graduate:
		return EducationTier(s), nil
	}
	return "", fmt.Errorf("unknown education tier %q", s)
}

type QuestionKind string

const (
	ChoiceQuestion QuestionKind = "multiple_choice"
	RatingQuestion QuestionKind = "rating"
)

// Question is an immutable quiz catalog entry. Options is present only for
// choice questions; Category keys the evaluator into the knowledge base.
//
// swagger:model Question
type Question struct {
	ID       string       `json:"id"`
	Prompt   string       `json:"question"`
	Kind     QuestionKind `json:"type"`
	Options  []string     `json:"options,omitempty"`
	Category string       `json:"category"`
}

// Response is a single answer keyed by question id. Exactly one of Choice
// or Rating is meaningful, depending on the question's kind.
type Response struct {
	Choice string `json:"choice,omitempty"`
	Rating int    `json:"rating,omitempty"`
}

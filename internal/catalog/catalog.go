package catalog

import (
	"fmt"

	"careerpath_backend/internal/model"
)

// Catalog holds the per-tier question sequences. It is loaded once at
// process start and is read-only afterwards, so it is safe for
// unsynchronized concurrent reads.
type Catalog struct {
	questions map[model.EducationTier][]model.Question
}

// NewCatalog returns the built-in quiz catalog.
func NewCatalog() *Catalog {
	return &Catalog{questions: quizQuestions()}
}

// ForTier returns the ordered question sequence for a tier. Callers must
// treat the returned slice as immutable.
func (c *Catalog) ForTier(tier model.EducationTier) ([]model.Question, error) {
	qs, ok := c.questions[tier]
	if !ok {
		return nil, fmt.Errorf("no quiz catalog for tier %q", tier)
	}
	return qs, nil
}

// Question looks up a single question by tier and id.
func (c *Catalog) Question(tier model.EducationTier, id string) (model.Question, bool) {
	qs, ok := c.questions[tier]
	if !ok {
		return model.Question{}, false
	}
	for _, q := range qs {
		if q.ID == id {
			return q, true
		}
	}
	return model.Question{}, false
}

func quizQuestions() map[model.EducationTier][]model.Question {
	return map[model.EducationTier][]model.Question{
		model.TenthPass: {
			{
				ID:       "1",
				Prompt:   "Which subject interests you the most?",
				Kind:     model.ChoiceQuestion,
				Options:  []string{"Mathematics & Science", "Arts & Literature", "Business & Commerce", "Practical & Technical Skills"},
				Category: "academic_interest",
			},
			{
				ID:       "2",
				Prompt:   "How much do you enjoy working with your hands?",
				Kind:     model.RatingQuestion,
				Category: "work_style",
			},
			{
				ID:       "3",
				Prompt:   "What type of career environment appeals to you?",
				Kind:     model.ChoiceQuestion,
				Options:  []string{"Creative Workshop", "Corporate Office", "Healthcare Setting", "Technical Laboratory"},
				Category: "work_environment",
			},
			{
				ID:       "4",
				Prompt:   "Rate your interest in technology and computers",
				Kind:     model.RatingQuestion,
				Category: "technology_interest",
			},
			{
				ID:       "5",
				Prompt:   "Which activity would you prefer?",
				Kind:     model.ChoiceQuestion,
				Options:  []string{"Solving complex problems", "Helping others", "Creating something new", "Leading a team"},
				Category: "core_motivation",
			},
		},
		model.TwelfthPass: {
			{
				ID:       "1",
				Prompt:   "Which field aligns best with your career goals?",
				Kind:     model.ChoiceQuestion,
				Options:  []string{"Engineering & Technology", "Medical & Healthcare", "Business & Management", "Arts & Design", "Law & Governance"},
				Category: "career_field",
			},
			{
				ID:       "2",
				Prompt:   "How important is work-life balance to you?",
				Kind:     model.RatingQuestion,
				Category: "lifestyle_preference",
			},
			{
				ID:       "3",
				Prompt:   "What motivates you most in a career?",
				Kind:     model.ChoiceQuestion,
				Options:  []string{"High salary potential", "Social impact", "Creative expression", "Job security", "Innovation opportunities"},
				Category: "motivation",
			},
			{
				ID:       "4",
				Prompt:   "Rate your comfort with public speaking and presentations",
				Kind:     model.RatingQuestion,
				Category: "communication_skills",
			},
			{
				ID:       "5",
				Prompt:   "Which work setting do you prefer?",
				Kind:     model.ChoiceQuestion,
				Options:  []string{"Remote/Flexible", "Traditional Office", "Field Work", "Laboratory/Research", "Client-facing"},
				Category: "work_setting",
			},
		},
		model.Graduate: {
			{
				ID:       "1",
				Prompt:   "What is your primary career objective?",
				Kind:     model.ChoiceQuestion,
				Options:  []string{"Rapid career advancement", "Skill specialization", "Entrepreneurship", "Work-life balance", "Social impact"},
				Category: "career_objective",
			},
			{
				ID:       "2",
				Prompt:   "Rate your leadership and management skills",
				Kind:     model.RatingQuestion,
				Category: "leadership_skills",
			},
			{
				ID:       "3",
				Prompt:   "Which industry excites you most?",
				Kind:     model.ChoiceQuestion,
				Options:  []string{"Technology & Software", "Financial Services", "Healthcare & Biotech", "Education & Training", "Manufacturing & Engineering"},
				Category: "industry_preference",
			},
			{
				ID:       "4",
				Prompt:   "How comfortable are you with continuous learning and upskilling?",
				Kind:     model.RatingQuestion,
				Category: "learning_mindset",
			},
			{
				ID:       "5",
				Prompt:   "What type of role appeals to you most?",
				Kind:     model.ChoiceQuestion,
				Options:  []string{"Individual contributor", "Team lead", "Project manager", "Consultant", "Researcher"},
				Category: "role_preference",
			},
		},
	}
}

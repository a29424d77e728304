// Standalone consistency check for the quiz catalog and knowledge base.
// Run before deploying a data change:
//
//	go run scripts/kb_check.go
//
// It validates the static tables and prints a per-tier summary so a broken
// bucket or missing career profile is caught without starting the server.
package main

import (
	"fmt"
	"log"
	"os"

	"careerpath_backend/internal/catalog"
	"careerpath_backend/internal/model"

	"gopkg.in/yaml.v3"
)

type quizSettings struct {
	Quiz struct {
		HighRatingThreshold int `yaml:"high_rating_threshold"`
		RatingBonus         int `yaml:"rating_bonus"`
		MaxSuggestions      int `yaml:"max_suggestions"`
	} `yaml:"quiz"`
}

func main() {
	cat := catalog.NewCatalog()
	kb := catalog.NewKnowledgeBase()

	if err := kb.Validate(); err != nil {
		log.Fatalf("knowledge base validation failed: %v", err)
	}

	for _, tier := range model.Tiers() {
		questions, err := cat.ForTier(tier)
		if err != nil {
			log.Fatalf("catalog error for tier %s: %v", tier, err)
		}
		profiles := kb.Profiles(tier)
		fmt.Printf("%-9s %d questions, %d career profiles\n", tier, len(questions), len(profiles))
		for _, p := range profiles {
			fmt.Printf("  - %s (base weight %.0f, %d required skills)\n",
				p.CareerPath, p.BaseMatchWeight, len(p.RequiredSkills))
		}
	}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		fmt.Println("no configs/config.yaml; skipping scoring summary")
		return
	}
	var settings quizSettings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		log.Fatalf("failed to parse configs/config.yaml: %v", err)
	}
	fmt.Printf("scoring: threshold=%d bonus=%d max_suggestions=%d\n",
		settings.Quiz.HighRatingThreshold, settings.Quiz.RatingBonus, settings.Quiz.MaxSuggestions)
}

package catalog

import "careerpath_backend/internal/model"

// Career profile tables per education tier. Declaration order matters: it
// is the tie-break when two careers accrue equal weight.
func careerProfiles() map[model.EducationTier]*tierKnowledge {
	return map[model.EducationTier]*tierKnowledge{
		model.TenthPass: {
			profiles: []model.CareerProfile{
				{
					CareerPath:      "Engineering Preparation",
					Description:     "Prepare for engineering entrance exams through Science stream",
					RequiredSkills:  []string{"Mathematics", "Physics", "Chemistry", "Problem Solving"},
					SalaryRange:     "₹3-8 LPA after graduation",
					GrowthProspects: "High demand in technology sector",
					NextSteps:       []string{"Complete 12th Science", "Prepare for JEE/other entrance exams", "Choose engineering specialization"},
					BaseMatchWeight: 85,
				},
				{
					CareerPath:      "Medical Field Preparation",
					Description:     "Pursue medical studies through Science stream with Biology",
					RequiredSkills:  []string{"Biology", "Chemistry", "Physics", "Dedication to study"},
					SalaryRange:     "₹5-15 LPA after specialization",
					GrowthProspects: "Always in demand, respected profession",
					NextSteps:       []string{"Complete 12th Science with Biology", "Prepare for NEET", "Complete MBBS/other medical courses"},
					BaseMatchWeight: 80,
				},
				{
					CareerPath:      "Business & Management",
					Description:     "Excel in business, commerce, and management fields",
					RequiredSkills:  []string{"Communication", "Mathematics", "Business Acumen", "Leadership"},
					SalaryRange:     "₹2.5-6 LPA initially",
					GrowthProspects: "Wide opportunities in corporate sector",
					NextSteps:       []string{"Complete 12th Commerce", "Pursue BBA/B.Com", "Consider MBA for advancement"},
					BaseMatchWeight: 90,
				},
				{
					CareerPath:      "Technical Vocational Training",
					Description:     "Skilled technical roles through ITI, Polytechnic courses",
					RequiredSkills:  []string{"Technical Aptitude", "Hands-on Skills", "Problem Solving"},
					SalaryRange:     "₹2-5 LPA",
					GrowthProspects: "High demand for skilled technicians",
					NextSteps:       []string{"Complete ITI/Polytechnic", "Gain practical experience", "Specialize in emerging technologies"},
					BaseMatchWeight: 88,
				},
				{
					CareerPath:      "Creative Arts & Design",
					Description:     "Build a career in visual arts, writing, and design",
					RequiredSkills:  []string{"Creativity", "Visual Design", "Communication", "Portfolio Building"},
					SalaryRange:     "₹2-6 LPA initially",
					GrowthProspects: "Growing demand in media and digital content",
					NextSteps:       []string{"Complete 12th Arts/Humanities", "Build a creative portfolio", "Pursue design or fine arts degree"},
					BaseMatchWeight: 82,
				},
			},
			buckets: map[string]map[string][]string{
				"academic_interest": {
					"Mathematics & Science":        {"Engineering Preparation", "Medical Field Preparation"},
					"Arts & Literature":            {"Creative Arts & Design"},
					"Business & Commerce":          {"Business & Management"},
					"Practical & Technical Skills": {"Technical Vocational Training"},
				},
				"work_environment": {
					"Creative Workshop":    {"Creative Arts & Design"},
					"Corporate Office":     {"Business & Management"},
					"Healthcare Setting":   {"Medical Field Preparation"},
					"Technical Laboratory": {"Engineering Preparation"},
				},
				"core_motivation": {
					"Solving complex problems": {"Engineering Preparation"},
					"Helping others":           {"Medical Field Preparation"},
					"Creating something new":   {"Creative Arts & Design"},
					"Leading a team":           {"Business & Management"},
				},
			},
			ratings: map[string][]string{
				"work_style":          {"Technical Vocational Training"},
				"technology_interest": {"Engineering Preparation"},
			},
		},
		model.TwelfthPass: {
			profiles: []model.CareerProfile{
				{
					CareerPath:      "Software Engineering",
					Description:     "Build software applications and systems",
					RequiredSkills:  []string{"Programming", "Problem Solving", "Mathematics", "Logical Thinking"},
					SalaryRange:     "₹4-12 LPA",
					GrowthProspects: "Excellent growth in tech industry",
					NextSteps:       []string{"Complete B.Tech/B.E. in CSE/IT", "Learn programming languages", "Build projects and gain experience"},
					BaseMatchWeight: 92,
				},
				{
					CareerPath:      "Healthcare Professional",
					Description:     "Provide medical care and health services",
					RequiredSkills:  []string{"Medical Knowledge", "Empathy", "Communication", "Attention to Detail"},
					SalaryRange:     "₹5-20 LPA",
					GrowthProspects: "Always in demand, fulfilling career",
					NextSteps:       []string{"Complete medical degree", "Gain clinical experience", "Consider specialization"},
					BaseMatchWeight: 88,
				},
				{
					CareerPath:      "Business Analyst",
					Description:     "Analyze business processes and recommend improvements",
					RequiredSkills:  []string{"Analytical Skills", "Communication", "Business Knowledge", "Data Analysis"},
					SalaryRange:     "₹3-8 LPA",
					GrowthProspects: "High demand across industries",
					NextSteps:       []string{"Complete business degree", "Learn data analysis tools", "Gain industry experience"},
					BaseMatchWeight: 85,
				},
				{
					CareerPath:      "UX & Product Design",
					Description:     "Design digital products people love to use",
					RequiredSkills:  []string{"Visual Design", "User Research", "Prototyping", "Communication"},
					SalaryRange:     "₹3-10 LPA",
					GrowthProspects: "Strong demand in product companies",
					NextSteps:       []string{"Complete design degree or bootcamp", "Build a UX portfolio", "Intern with product teams"},
					BaseMatchWeight: 84,
				},
				{
					CareerPath:      "Legal Services",
					Description:     "Practice law and advise on governance and compliance",
					RequiredSkills:  []string{"Legal Reasoning", "Communication", "Research", "Attention to Detail"},
					SalaryRange:     "₹3-12 LPA",
					GrowthProspects: "Stable demand in corporate and public sectors",
					NextSteps:       []string{"Prepare for CLAT", "Complete LLB", "Clerk or intern with a firm"},
					BaseMatchWeight: 80,
				},
			},
			buckets: map[string]map[string][]string{
				"career_field": {
					"Engineering & Technology": {"Software Engineering"},
					"Medical & Healthcare":     {"Healthcare Professional"},
					"Business & Management":    {"Business Analyst"},
					"Arts & Design":            {"UX & Product Design"},
					"Law & Governance":         {"Legal Services"},
				},
				"motivation": {
					"High salary potential":    {"Software Engineering"},
					"Social impact":            {"Healthcare Professional"},
					"Creative expression":      {"UX & Product Design"},
					"Job security":             {"Legal Services"},
					"Innovation opportunities": {"Software Engineering"},
				},
				"work_setting": {
					"Remote/Flexible":     {"Software Engineering"},
					"Traditional Office":  {"Business Analyst"},
					"Field Work":          {"Healthcare Professional"},
					"Laboratory/Research": {"Healthcare Professional"},
					"Client-facing":       {"Business Analyst", "Legal Services"},
				},
			},
			ratings: map[string][]string{
				// Lifestyle preference is a pure preference signal with no
				// career affinity; it contributes nothing either way.
				"communication_skills": {"Business Analyst", "Legal Services"},
			},
		},
		model.Graduate: {
			profiles: []model.CareerProfile{
				{
					CareerPath:      "Senior Software Developer",
					Description:     "Lead software development projects and mentor junior developers",
					RequiredSkills:  []string{"Advanced Programming", "System Design", "Leadership", "Project Management"},
					SalaryRange:     "₹8-25 LPA",
					GrowthProspects: "Can progress to architect or management roles",
					NextSteps:       []string{"Gain 2-3 years experience", "Learn system design", "Take leadership responsibilities"},
					BaseMatchWeight: 90,
				},
				{
					CareerPath:      "Financial Analyst",
					Description:     "Analyze financial data and market trends for investment decisions",
					RequiredSkills:  []string{"Financial Modeling", "Data Analysis", "Market Knowledge", "Communication"},
					SalaryRange:     "₹6-15 LPA",
					GrowthProspects: "Can advance to portfolio manager or investment banking",
					NextSteps:       []string{"Get relevant certifications", "Build financial modeling skills", "Gain market experience"},
					BaseMatchWeight: 87,
				},
				{
					CareerPath:      "Healthcare Administrator",
					Description:     "Manage operations of hospitals and healthcare organizations",
					RequiredSkills:  []string{"Operations Management", "Communication", "Healthcare Regulations", "Data Analysis"},
					SalaryRange:     "₹5-14 LPA",
					GrowthProspects: "Expanding sector with steady leadership demand",
					NextSteps:       []string{"Pursue MHA or healthcare MBA", "Intern in hospital operations", "Build regulatory knowledge"},
					BaseMatchWeight: 83,
				},
				{
					CareerPath:      "Learning & Development Specialist",
					Description:     "Design and deliver corporate training programs",
					RequiredSkills:  []string{"Instructional Design", "Communication", "Facilitation", "Content Development"},
					SalaryRange:     "₹4-10 LPA",
					GrowthProspects: "Growing with the upskilling economy",
					NextSteps:       []string{"Earn a training certification", "Build sample curricula", "Join an L&D team"},
					BaseMatchWeight: 80,
				},
				{
					CareerPath:      "Operations Manager",
					Description:     "Run production and supply chain operations end to end",
					RequiredSkills:  []string{"Operations Management", "Leadership", "Process Improvement", "Data Analysis"},
					SalaryRange:     "₹6-16 LPA",
					GrowthProspects: "Path to plant head and COO roles",
					NextSteps:       []string{"Learn lean/six sigma", "Lead a small team", "Rotate across functions"},
					BaseMatchWeight: 85,
				},
			},
			buckets: map[string]map[string][]string{
				"industry_preference": {
					"Technology & Software":       {"Senior Software Developer"},
					"Financial Services":          {"Financial Analyst"},
					"Healthcare & Biotech":        {"Healthcare Administrator"},
					"Education & Training":        {"Learning & Development Specialist"},
					"Manufacturing & Engineering": {"Operations Manager"},
				},
				"career_objective": {
					"Rapid career advancement": {"Senior Software Developer", "Financial Analyst"},
					"Skill specialization":     {"Senior Software Developer"},
					"Entrepreneurship":         {"Operations Manager"},
					"Work-life balance":        {"Learning & Development Specialist"},
					"Social impact":            {"Healthcare Administrator"},
				},
				"role_preference": {
					"Individual contributor": {"Senior Software Developer"},
					"Team lead":              {"Operations Manager"},
					"Project manager":        {"Operations Manager"},
					"Consultant":             {"Financial Analyst"},
					"Researcher":             {"Healthcare Administrator"},
				},
			},
			ratings: map[string][]string{
				"leadership_skills": {"Operations Manager", "Senior Software Developer"},
				"learning_mindset":  {"Senior Software Developer", "Financial Analyst"},
			},
		},
	}
}

// Curated learning recommendations keyed by skill name. Missing skills
// still surface in reports with a generic placeholder.
func skillTemplates() map[string]model.SkillRecommendation {
	return map[string]model.SkillRecommendation{
		"System Design": {
			Skill:       "System Design",
			Courses:     []string{"System Design Course on Udemy", "AWS Architecture Certification"},
			Resources:   []string{"High Scalability Blog", "System Design Primer"},
			TimeToLearn: "3-6 months",
		},
		"Project Management": {
			Skill:       "Project Management",
			Courses:     []string{"PMP Certification", "Agile Project Management"},
			Resources:   []string{"PMI Resources", "Scrum Guide"},
			TimeToLearn: "2-4 months",
		},
		"Programming": {
			Skill:       "Programming",
			Courses:     []string{"CS50x", "The Odin Project"},
			Resources:   []string{"freeCodeCamp", "Exercism"},
			TimeToLearn: "4-6 months",
		},
		"Advanced Programming": {
			Skill:       "Advanced Programming",
			Courses:     []string{"Design Patterns in Depth", "Advanced Algorithms Specialization"},
			Resources:   []string{"Refactoring Guru", "LeetCode"},
			TimeToLearn: "4-8 months",
		},
		"Leadership": {
			Skill:       "Leadership",
			Courses:     []string{"Leadership Principles (Coursera)", "First-Time Manager Training"},
			Resources:   []string{"Harvard Business Review", "Manager Tools Podcast"},
			TimeToLearn: "3-6 months",
		},
		"Communication": {
			Skill:       "Communication",
			Courses:     []string{"Business Communication Essentials", "Public Speaking Practicum"},
			Resources:   []string{"Toastmasters", "Writing Well Guide"},
			TimeToLearn: "2-3 months",
		},
		"Data Analysis": {
			Skill:       "Data Analysis",
			Courses:     []string{"Google Data Analytics Certificate", "SQL for Data Analysis"},
			Resources:   []string{"Kaggle Learn", "Mode SQL Tutorial"},
			TimeToLearn: "3-5 months",
		},
		"Financial Modeling": {
			Skill:       "Financial Modeling",
			Courses:     []string{"CFI Financial Modeling", "Valuation Fundamentals"},
			Resources:   []string{"Investopedia", "Macabacus Templates"},
			TimeToLearn: "3-6 months",
		},
		"Analytical Skills": {
			Skill:       "Analytical Skills",
			Courses:     []string{"Critical Thinking & Problem Solving", "Business Analytics Basics"},
			Resources:   []string{"Case Interview Prep", "HBR Analytics Articles"},
			TimeToLearn: "2-4 months",
		},
		"Mathematics": {
			Skill:       "Mathematics",
			Courses:     []string{"Khan Academy Mathematics", "NCERT Foundations"},
			Resources:   []string{"Brilliant.org", "3Blue1Brown"},
			TimeToLearn: "3-6 months",
		},
		"Problem Solving": {
			Skill:       "Problem Solving",
			Courses:     []string{"Computational Thinking", "Math Olympiad Primer"},
			Resources:   []string{"Project Euler", "Brilliant.org"},
			TimeToLearn: "2-4 months",
		},
		"Visual Design": {
			Skill:       "Visual Design",
			Courses:     []string{"Graphic Design Specialization", "UI Design Fundamentals"},
			Resources:   []string{"Figma Community", "Dribbble"},
			TimeToLearn: "3-5 months",
		},
	}
}

// Bespoke roadmap milestone sets for flagship careers. Everything else
// falls back to genericMilestones.
func milestoneTemplates() map[string][]MilestoneTemplate {
	return map[string][]MilestoneTemplate{
		"Software Engineering": {
			{
				Title:       "Core Programming Foundations",
				Description: "Learn one language deeply and the fundamentals of computing",
				Type:        model.StepCourse,
				Duration:    "4 months",
				Resources:   []string{"CS50x", "The Odin Project"},
			},
			{
				Title:       "Data Structures & Algorithms",
				Description: "Practice problem solving for interviews and real work",
				Type:        model.StepCourse,
				Duration:    "3 months",
				Resources:   []string{"LeetCode", "NeetCode Roadmap"},
			},
			{
				Title:       "Real-World Projects",
				Description: "Ship two or three substantial projects end to end",
				Type:        model.StepProject,
				Duration:    "4 months",
				Resources:   []string{"GitHub", "Personal portfolio site"},
			},
			{
				Title:       "Open Source Contribution",
				Description: "Contribute fixes and features to an established project",
				Type:        model.StepProject,
				Duration:    "2 months",
				Resources:   []string{"Good First Issues", "Hacktoberfest"},
			},
			{
				Title:       "Internship or First Role",
				Description: "Apply skills in a production codebase with a team",
				Type:        model.StepInternship,
				Duration:    "6 months",
				Resources:   []string{"Company internships", "Campus placements"},
			},
		},
		"Senior Software Developer": {
			{
				Title:       "System Design Mastery",
				Description: "Design scalable services and data systems",
				Type:        model.StepCourse,
				Duration:    "4 months",
				Resources:   []string{"System Design Primer", "Designing Data-Intensive Applications"},
			},
			{
				Title:       "Architecture Certification",
				Description: "Validate cloud and architecture skills",
				Type:        model.StepCertification,
				Duration:    "3 months",
				Resources:   []string{"AWS Solutions Architect", "CNCF certifications"},
			},
			{
				Title:       "Lead a Project",
				Description: "Own delivery of a multi-engineer initiative",
				Type:        model.StepProject,
				Duration:    "6 months",
				Resources:   []string{"Internal initiatives", "Cross-team programs"},
			},
			{
				Title:       "Mentorship Practice",
				Description: "Mentor juniors and run design reviews",
				Type:        model.StepSkill,
				Duration:    "3 months",
				Resources:   []string{"Engineering ladders guide", "Mentoring circles"},
			},
		},
		"Business & Management": {
			{
				Title:       "Commerce Foundations",
				Description: "Accounting, economics, and business math basics",
				Type:        model.StepCourse,
				Duration:    "6 months",
				Resources:   []string{"NCERT Commerce", "Khan Academy Economics"},
			},
			{
				Title:       "Business Communication",
				Description: "Presentation, writing, and negotiation practice",
				Type:        model.StepSkill,
				Duration:    "3 months",
				Resources:   []string{"Toastmasters", "Business writing courses"},
			},
			{
				Title:       "Entrepreneurship Project",
				Description: "Run a small venture or school business project",
				Type:        model.StepProject,
				Duration:    "4 months",
				Resources:   []string{"School business clubs", "Local mentorship programs"},
			},
			{
				Title:       "Management Internship",
				Description: "Shadow operations in a local business",
				Type:        model.StepInternship,
				Duration:    "3 months",
				Resources:   []string{"Local businesses", "Family enterprises"},
			},
		},
		"Financial Analyst": {
			{
				Title:       "Financial Accounting & Markets",
				Description: "Statements, valuation basics, and market structure",
				Type:        model.StepCourse,
				Duration:    "4 months",
				Resources:   []string{"CFA Level 1 Prep", "Investopedia Academy"},
			},
			{
				Title:       "Financial Modeling Certification",
				Description: "Excel and modeling credential",
				Type:        model.StepCertification,
				Duration:    "3 months",
				Resources:   []string{"CFI FMVA", "Wall Street Prep"},
			},
			{
				Title:       "Equity Research Project",
				Description: "Publish two full company analyses",
				Type:        model.StepProject,
				Duration:    "3 months",
				Resources:   []string{"Screener.in", "Annual reports"},
			},
			{
				Title:       "Analyst Internship",
				Description: "Work with a research or investment team",
				Type:        model.StepInternship,
				Duration:    "6 months",
				Resources:   []string{"Brokerage internships", "Fintech startups"},
			},
		},
	}
}

// Generic four-stage roadmap used when a career has no bespoke templates.
func genericMilestones() []MilestoneTemplate {
	return []MilestoneTemplate{
		{
			Title:       "Foundation Skills",
			Description: "Build core technical and soft skills",
			Type:        model.StepSkill,
			Duration:    "3 months",
			Resources:   []string{"Online courses", "Practice projects"},
		},
		{
			Title:       "Specialized Training",
			Description: "Complete industry-specific certifications",
			Type:        model.StepCertification,
			Duration:    "6 months",
			Resources:   []string{"Professional certifications", "Bootcamps"},
		},
		{
			Title:       "Practical Experience",
			Description: "Gain hands-on experience through internships",
			Type:        model.StepInternship,
			Duration:    "6 months",
			Resources:   []string{"Company internships", "Freelance projects"},
		},
		{
			Title:       "Portfolio Development",
			Description: "Build a strong portfolio showcasing your skills",
			Type:        model.StepProject,
			Duration:    "3 months",
			Resources:   []string{"Personal projects", "Open source contributions"},
		},
	}
}

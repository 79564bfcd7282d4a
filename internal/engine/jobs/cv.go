package jobs

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/anatolykoptev/go_career/internal/engine"
)

// CVAnalysis is the structured result of resume text analysis.
type CVAnalysis struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	Education       []string `json:"education"`
	Certifications  []string `json:"certifications"`
	JobCategories   []string `json:"job_categories"`
	JobKeywords     string   `json:"job_keywords"`
	SuggestedRoles  []string `json:"suggested_roles"`
}

// skillKeywords is the flat technology/competency vocabulary matched against
// resume text by substring.
var skillKeywords = []string{
	"python", "javascript", "java", "c++", "c#", "php", "ruby", "go", "rust", "swift", "kotlin",
	"react", "angular", "vue", "node.js", "django", "flask", "spring", "express", "laravel",
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "git", "github", "gitlab",
	"machine learning", "ai", "data science", "pandas", "numpy", "tensorflow", "pytorch",
	"html", "css", "bootstrap", "sass", "webpack", "gulp",
	"agile", "scrum", "kanban", "devops", "ci/cd", "microservices",
	"excel", "power bi", "tableau", "salesforce", "marketing", "finance", "accounting",
	"project management", "leadership", "communication", "analytics", "strategy",
}

var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:in\s*)?(?:the\s*)?field`),
	regexp.MustCompile(`(?i)(\d+)\s*to\s*\d+\s*years?\s*experience`),
}

var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(Bachelor|Master|PhD|B\.S\.|M\.S\.|Ph\.D\.|B\.A\.|M\.A\.)\s*(?:in\s*)?([A-Za-z\s]+)`),
	regexp.MustCompile(`(?i)(Computer Science|Engineering|Mathematics|Physics|Business|Economics)`),
}

var certPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(AWS|Azure|GCP|Google Cloud|Amazon Web Services)\s*[Cc]ertified`),
	regexp.MustCompile(`(?i)(PMP|CISSP|CISA|CISM|ITIL|Agile|Scrum)\s*[Cc]ertified?`),
	regexp.MustCompile(`(?i)(Microsoft|Oracle|Cisco|CompTIA)\s*[Cc]ertified?`),
}

// roleMapping suggests concrete job titles per category.
var roleMapping = map[string][]string{
	"Data Science & AI":               {"Data Scientist", "Machine Learning Engineer", "AI Engineer", "Data Analyst"},
	"Frontend Development":            {"Frontend Developer", "React Developer", "UI Developer", "Web Developer"},
	"Backend Development":             {"Backend Developer", "Python Developer", "Java Developer", "API Developer"},
	"DevOps & Cloud":                  {"DevOps Engineer", "Cloud Engineer", "AWS Engineer", "Infrastructure Engineer"},
	"Software Development":            {"Software Engineer", "Software Developer", "Full Stack Developer"},
	"Business Analytics & Finance":    {"Business Analyst", "Financial Analyst", "Data Analyst"},
	"Marketing & Sales":               {"Marketing Manager", "Sales Manager", "Digital Marketing Specialist"},
	"Project Management & Leadership": {"Project Manager", "Team Lead", "Product Manager"},
}

// keywordMapping turns categories into search keywords.
var keywordMapping = map[string][]string{
	"Data Science & AI":               {"Data Scientist", "Machine Learning Engineer", "AI Engineer", "Data Analyst"},
	"Frontend Development":            {"Frontend Developer", "React Developer", "UI/UX Developer", "Web Developer"},
	"Backend Development":             {"Backend Developer", "Python Developer", "Java Developer", "API Developer"},
	"DevOps & Cloud":                  {"DevOps Engineer", "Cloud Engineer", "AWS Engineer", "Infrastructure Engineer"},
	"Software Development":            {"Software Engineer", "Software Developer", "Full Stack Developer"},
	"Business Analytics & Finance":    {"Business Analyst", "Financial Analyst", "Data Analyst", "Business Intelligence"},
	"Marketing & Sales":               {"Marketing Manager", "Sales Manager", "Digital Marketing", "Business Development"},
	"Project Management & Leadership": {"Project Manager", "Team Lead", "Product Manager", "Scrum Master"},
}

// AnalyzeCV extracts skills, experience, education, certifications and
// search keywords from resume text. Pure, no LLM involved.
func AnalyzeCV(resumeText string) CVAnalysis {
	engine.IncrCVAnalyses()

	skills := ExtractSkills(resumeText)
	years := extractExperienceYears(resumeText)
	education := extractEducation(resumeText)
	certs := extractCertifications(resumeText)
	categories := DetermineJobCategories(skills, years)

	return CVAnalysis{
		Skills:          skills,
		ExperienceYears: years,
		Education:       education,
		Certifications:  certs,
		JobCategories:   categories,
		JobKeywords:     GenerateJobKeywords(categories, skills),
		SuggestedRoles:  suggestedRoles(categories, years),
	}
}

// ExtractSkills returns the known skills found in text, sorted for stable output.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, skill := range skillKeywords {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}
	sort.Strings(found)
	return found
}

func extractExperienceYears(text string) int {
	for _, re := range experiencePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n
			}
		}
	}
	return 2 // default when not stated
}

func extractEducation(text string) []string {
	var education []string
	seen := make(map[string]bool)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			education = append(education, s)
		}
	}

	for _, re := range degreePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if len(m) > 2 {
				add(m[1] + " " + strings.TrimSpace(m[2]))
			} else {
				add(m[1])
			}
		}
	}

	if len(education) == 0 {
		return []string{"Bachelor's Degree"}
	}
	return education
}

func extractCertifications(text string) []string {
	var certs []string
	seen := make(map[string]bool)
	for _, re := range certPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if !seen[m[1]] {
				seen[m[1]] = true
				certs = append(certs, m[1])
			}
		}
	}
	return certs
}

func hasAny(skills []string, wanted ...string) bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		set[s] = true
	}
	for _, w := range wanted {
		if set[w] {
			return true
		}
	}
	return false
}

// DetermineJobCategories classifies a skill set into broad job categories,
// falling back to an experience-based tier when nothing matches.
func DetermineJobCategories(skills []string, experienceYears int) []string {
	var categories []string

	if hasAny(skills, "python", "javascript", "java", "c++", "c#", "php", "ruby", "go") {
		switch {
		case hasAny(skills, "machine learning", "ai", "data science", "pandas", "numpy"):
			categories = append(categories, "Data Science & AI")
		case hasAny(skills, "react", "angular", "vue", "html", "css"):
			categories = append(categories, "Frontend Development")
		case hasAny(skills, "node.js", "django", "flask", "spring", "express"):
			categories = append(categories, "Backend Development")
		case hasAny(skills, "aws", "azure", "gcp", "docker", "kubernetes"):
			categories = append(categories, "DevOps & Cloud")
		default:
			categories = append(categories, "Software Development")
		}
	}

	if hasAny(skills, "excel", "power bi", "tableau", "analytics", "finance", "accounting") {
		categories = append(categories, "Business Analytics & Finance")
	}
	if hasAny(skills, "marketing", "sales", "strategy", "communication") {
		categories = append(categories, "Marketing & Sales")
	}
	if hasAny(skills, "project management", "leadership", "agile", "scrum") {
		categories = append(categories, "Project Management & Leadership")
	}

	if len(categories) == 0 {
		switch {
		case experienceYears >= 5:
			categories = append(categories, "Senior Professional")
		case experienceYears >= 2:
			categories = append(categories, "Mid-Level Professional")
		default:
			categories = append(categories, "Entry-Level Professional")
		}
	}
	return categories
}

// GenerateJobKeywords builds an "OR"-joined query from categories and top
// tech skills, capped at 10 terms.
func GenerateJobKeywords(categories, skills []string) string {
	var keywords []string
	for _, category := range categories {
		keywords = append(keywords, keywordMapping[category]...)
	}

	var tech []string
	for _, s := range skills {
		switch s {
		case "python", "javascript", "java", "react", "angular", "vue", "django", "flask":
			tech = append(tech, s)
		}
	}
	if len(tech) > 3 {
		tech = tech[:3]
	}
	for _, s := range tech {
		keywords = append(keywords, capitalize(s)+" Developer")
	}

	if len(keywords) > 10 {
		keywords = keywords[:10]
	}
	return strings.Join(keywords, " OR ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// suggestedRoles picks up to 5 roles, seniority-prefixed by experience.
func suggestedRoles(categories []string, experienceYears int) []string {
	var roles []string
	for _, category := range categories {
		base := roleMapping[category]
		if len(base) > 2 {
			base = base[:2]
		}
		for _, r := range base {
			switch {
			case experienceYears >= 5:
				roles = append(roles, "Senior "+r)
			case experienceYears >= 2:
				roles = append(roles, r)
			default:
				roles = append(roles, "Junior "+r)
			}
		}
	}
	if len(roles) > 5 {
		roles = roles[:5]
	}
	return roles
}
